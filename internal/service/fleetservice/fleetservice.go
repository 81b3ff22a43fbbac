package fleetservice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/fuelfleet/internal/domain"
	"github.com/GlebRadaev/fuelfleet/internal/pg"
)

//go:generate mockgen -source=fleetservice.go -destination=mock_fleetservice.go -package=fleetservice

type FuelRepo interface {
	Create(ctx context.Context, fuel *domain.Fuel) error
	FindByID(ctx context.Context, id string) (*domain.Fuel, error)
	List(ctx context.Context) ([]domain.Fuel, error)
	Update(ctx context.Context, fuel *domain.Fuel) error
	Delete(ctx context.Context, id string) error
}

type CarRepo interface {
	Create(ctx context.Context, car *domain.Car) error
	FindByID(ctx context.Context, id string) (*domain.Car, error)
	List(ctx context.Context) ([]domain.Car, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]domain.Car, error)
	ListEaa(ctx context.Context) ([]domain.Car, error)
	Update(ctx context.Context, car *domain.Car) error
	Delete(ctx context.Context, id string) error
}

type MaintenanceRepo interface {
	Create(ctx context.Context, maintenance *domain.Maintenance) error
	FindByID(ctx context.Context, id string) (*domain.Maintenance, error)
	List(ctx context.Context) ([]domain.Maintenance, error)
	Update(ctx context.Context, maintenance *domain.Maintenance) error
	Delete(ctx context.Context, id string) error
	ListTypes(ctx context.Context) ([]domain.MaintenanceType, error)
}

type TankRepo interface {
	List(ctx context.Context) ([]domain.Tank, error)
}

// EmployeeLister returns employees with their cars attached.
type EmployeeLister interface {
	List(ctx context.Context) ([]domain.Employee, error)
}

type Service struct {
	fuels       FuelRepo
	cars        CarRepo
	maintenance MaintenanceRepo
	tanks       TankRepo
	employees   EmployeeLister
	txManager   pg.TXManager
}

func New(fuels FuelRepo, cars CarRepo, maintenance MaintenanceRepo, tanks TankRepo, employees EmployeeLister, txManager pg.TXManager) *Service {
	return &Service{
		fuels:       fuels,
		cars:        cars,
		maintenance: maintenance,
		tanks:       tanks,
		employees:   employees,
		txManager:   txManager,
	}
}

func (s *Service) CreateFuel(ctx context.Context, name string, price decimal.Decimal) (*domain.Fuel, error) {
	if name == "" {
		return nil, fmt.Errorf("name is required: %w", domain.ErrValidation)
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("price cannot be negative: %w", domain.ErrValidation)
	}
	now := time.Now()
	fuel := &domain.Fuel{ID: uuid.NewString(), Name: name, Price: price, CreatedAt: now, UpdatedAt: now}
	if err := s.fuels.Create(ctx, fuel); err != nil {
		zap.L().Error("can't create fuel", zap.Error(err))
		return nil, err
	}
	return fuel, nil
}

func (s *Service) UpdateFuel(ctx context.Context, id, name string, price decimal.Decimal) (*domain.Fuel, error) {
	if name == "" {
		return nil, fmt.Errorf("name is required: %w", domain.ErrValidation)
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("price cannot be negative: %w", domain.ErrValidation)
	}
	fuel, err := s.fuels.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	fuel.Name = name
	fuel.Price = price
	fuel.UpdatedAt = time.Now()
	if err := s.fuels.Update(ctx, fuel); err != nil {
		return nil, err
	}
	return fuel, nil
}

func (s *Service) GetFuel(ctx context.Context, id string) (*domain.Fuel, error) {
	return s.fuels.FindByID(ctx, id)
}

func (s *Service) ListFuels(ctx context.Context) ([]domain.Fuel, error) {
	return s.fuels.List(ctx)
}

// DeleteFuel fails with ErrConflict while a tank, car or order still uses
// the fuel.
func (s *Service) DeleteFuel(ctx context.Context, id string) error {
	if err := s.fuels.Delete(ctx, id); err != nil {
		zap.L().Error("can't delete fuel", zap.String("fuel", id), zap.Error(err))
		return err
	}
	return nil
}

func validateCar(plate, fuelID string) error {
	switch {
	case plate == "":
		return fmt.Errorf("plate is required: %w", domain.ErrValidation)
	case fuelID == "":
		return fmt.Errorf("fuelId is required: %w", domain.ErrValidation)
	}
	return nil
}

// CreateCar registers a car. A nil employeeID leaves it unassigned, which is
// how organisation-owned cars are stored.
func (s *Service) CreateCar(ctx context.Context, employeeID *string, model, plate, fuelID string, eaa bool) (*domain.Car, error) {
	if err := validateCar(plate, fuelID); err != nil {
		return nil, err
	}
	car := &domain.Car{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		CarModel:   model,
		Plate:      plate,
		FuelID:     fuelID,
		IsEaaCar:   eaa,
		CreatedAt:  time.Now(),
	}
	err := s.cars.Create(ctx, car)
	if pg.IsReferenced(err) {
		return nil, fmt.Errorf("car references an unknown employee or fuel: %w", domain.ErrValidation)
	}
	if err != nil {
		zap.L().Error("can't create car", zap.Error(err))
		return nil, err
	}
	return car, nil
}

// UpdateCar replaces every editable field of a car, including its owner. A
// nil employeeID hands the car back to the organisation.
func (s *Service) UpdateCar(ctx context.Context, id string, employeeID *string, model, plate, fuelID string, eaa bool) (*domain.Car, error) {
	if err := validateCar(plate, fuelID); err != nil {
		return nil, err
	}
	car, err := s.cars.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	car.EmployeeID = employeeID
	car.CarModel = model
	car.Plate = plate
	car.FuelID = fuelID
	car.IsEaaCar = eaa

	err = s.cars.Update(ctx, car)
	if pg.IsReferenced(err) {
		return nil, fmt.Errorf("car references an unknown employee or fuel: %w", domain.ErrValidation)
	}
	if err != nil {
		zap.L().Error("can't update car", zap.String("car", id), zap.Error(err))
		return nil, err
	}
	return car, nil
}

func (s *Service) GetCar(ctx context.Context, id string) (*domain.Car, error) {
	return s.cars.FindByID(ctx, id)
}

func (s *Service) ListCars(ctx context.Context) ([]domain.Car, error) {
	return s.cars.List(ctx)
}

func (s *Service) ListCarsByEmployee(ctx context.Context, employeeID string) ([]domain.Car, error) {
	return s.cars.ListByEmployee(ctx, employeeID)
}

func (s *Service) ListEaaCars(ctx context.Context) ([]domain.Car, error) {
	return s.cars.ListEaa(ctx)
}

func (s *Service) DeleteCar(ctx context.Context, id string) error {
	if err := s.cars.Delete(ctx, id); err != nil {
		zap.L().Error("can't delete car", zap.String("car", id), zap.Error(err))
		return err
	}
	return nil
}

func validateMaintenance(carID string, cost decimal.Decimal, odo int64, typeIDs []string) error {
	switch {
	case carID == "":
		return fmt.Errorf("carId is required: %w", domain.ErrValidation)
	case len(typeIDs) == 0:
		return fmt.Errorf("at least one maintenance type is required: %w", domain.ErrValidation)
	case cost.IsNegative():
		return fmt.Errorf("cost cannot be negative: %w", domain.ErrValidation)
	case odo < 0:
		return fmt.Errorf("odometer cannot be negative: %w", domain.ErrValidation)
	}
	return nil
}

func maintenanceTypes(typeIDs []string) []domain.MaintenanceType {
	types := make([]domain.MaintenanceType, 0, len(typeIDs))
	for _, id := range typeIDs {
		types = append(types, domain.MaintenanceType{ID: id})
	}
	return types
}

// CreateMaintenance stores a maintenance record together with its type links
// in one transaction.
func (s *Service) CreateMaintenance(ctx context.Context, carID, description string, cost decimal.Decimal, odo int64, typeIDs []string) (*domain.Maintenance, error) {
	if err := validateMaintenance(carID, cost, odo, typeIDs); err != nil {
		return nil, err
	}
	maintenance := &domain.Maintenance{
		ID:          uuid.NewString(),
		CarID:       carID,
		Description: description,
		Cost:        cost,
		OdoMeter:    odo,
		Types:       maintenanceTypes(typeIDs),
		CreatedAt:   time.Now(),
	}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.cars.FindByID(ctx, carID); err != nil {
			return err
		}
		return s.maintenance.Create(ctx, maintenance)
	})
	if pg.IsReferenced(err) {
		return nil, fmt.Errorf("unknown maintenance type: %w", domain.ErrValidation)
	}
	if err != nil {
		zap.L().Error("can't create maintenance", zap.String("car", carID), zap.Error(err))
		return nil, err
	}
	return s.maintenance.FindByID(ctx, maintenance.ID)
}

// UpdateMaintenance rewrites a record and replaces its type links. The row
// update and the link swap commit together or not at all.
func (s *Service) UpdateMaintenance(ctx context.Context, id, carID, description string, cost decimal.Decimal, odo int64, typeIDs []string) (*domain.Maintenance, error) {
	if err := validateMaintenance(carID, cost, odo, typeIDs); err != nil {
		return nil, err
	}
	maintenance := &domain.Maintenance{
		ID:          id,
		CarID:       carID,
		Description: description,
		Cost:        cost,
		OdoMeter:    odo,
		Types:       maintenanceTypes(typeIDs),
	}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.cars.FindByID(ctx, carID); err != nil {
			return err
		}
		return s.maintenance.Update(ctx, maintenance)
	})
	if pg.IsReferenced(err) {
		return nil, fmt.Errorf("unknown maintenance type: %w", domain.ErrValidation)
	}
	if err != nil {
		zap.L().Error("can't update maintenance", zap.String("maintenance", id), zap.Error(err))
		return nil, err
	}
	return s.maintenance.FindByID(ctx, id)
}

func (s *Service) GetMaintenance(ctx context.Context, id string) (*domain.Maintenance, error) {
	return s.maintenance.FindByID(ctx, id)
}

func (s *Service) ListMaintenance(ctx context.Context) ([]domain.Maintenance, error) {
	return s.maintenance.List(ctx)
}

func (s *Service) DeleteMaintenance(ctx context.Context, id string) error {
	return s.maintenance.Delete(ctx, id)
}

func (s *Service) ListMaintenanceTypes(ctx context.Context) ([]domain.MaintenanceType, error) {
	return s.maintenance.ListTypes(ctx)
}

// EaaBundle returns organisation cars together with the maintenance types,
// which is what the maintenance entry form needs.
func (s *Service) EaaBundle(ctx context.Context) (*domain.EaaBundle, error) {
	var bundle domain.EaaBundle
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		bundle.Cars, err = s.cars.ListEaa(ctx)
		return err
	})
	g.Go(func() (err error) {
		bundle.Types, err = s.maintenance.ListTypes(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("failed to load eaa bundle", zap.Error(err))
		return nil, err
	}
	return &bundle, nil
}

func (s *Service) FormData(ctx context.Context) (*domain.FormData, error) {
	var data domain.FormData
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		data.Employees, err = s.employees.List(ctx)
		return err
	})
	g.Go(func() (err error) {
		data.Tanks, err = s.tanks.List(ctx)
		return err
	})
	g.Go(func() (err error) {
		data.Cars, err = s.cars.List(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("failed to load form data", zap.Error(err))
		return nil, err
	}
	return &data, nil
}
