package memrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/GlebRadaev/fuelfleet/internal/domain"
)

type FuelRepo struct {
	s *Store
}

func (r *FuelRepo) Create(ctx context.Context, fuel *domain.Fuel) error {
	return r.s.do(ctx, func(st *state) error {
		st.fuels.put(fuel.ID, *fuel, st.next())
		return nil
	})
}

func (r *FuelRepo) FindByID(ctx context.Context, id string) (*domain.Fuel, error) {
	var fuel domain.Fuel
	err := r.s.do(ctx, func(st *state) error {
		f, ok := st.fuels.get(id)
		if !ok {
			return fmt.Errorf("fuel %s: %w", id, domain.ErrNotFound)
		}
		fuel = f
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &fuel, nil
}

func (r *FuelRepo) List(ctx context.Context) ([]domain.Fuel, error) {
	var fuels []domain.Fuel
	err := r.s.do(ctx, func(st *state) error {
		fuels = st.fuels.list()
		return nil
	})
	return fuels, err
}

func (r *FuelRepo) Update(ctx context.Context, fuel *domain.Fuel) error {
	return r.s.do(ctx, func(st *state) error {
		old, ok := st.fuels.get(fuel.ID)
		if !ok {
			return fmt.Errorf("fuel %s: %w", fuel.ID, domain.ErrNotFound)
		}
		updated := *fuel
		updated.CreatedAt = old.CreatedAt
		st.fuels.put(fuel.ID, updated, 0)
		return nil
	})
}

func (r *FuelRepo) Delete(ctx context.Context, id string) error {
	return r.s.do(ctx, func(st *state) error {
		if _, ok := st.fuels.get(id); !ok {
			return fmt.Errorf("fuel %s: %w", id, domain.ErrNotFound)
		}
		if st.fuelReferenced(id) {
			return fmt.Errorf("fuel %s is used by tanks, cars or orders: %w", id, domain.ErrConflict)
		}
		st.fuels.remove(id)
		return nil
	})
}

func (st *state) fuelReferenced(id string) bool {
	for _, t := range st.tanks.rows {
		if t.FuelID == id {
			return true
		}
	}
	for _, c := range st.cars.rows {
		if c.FuelID == id {
			return true
		}
	}
	for _, o := range st.orders.rows {
		if o.FuelID == id {
			return true
		}
	}
	return false
}

type CarRepo struct {
	s *Store
}

func (st *state) checkCarRefs(car *domain.Car) error {
	if car.EmployeeID != nil {
		if _, ok := st.employees.get(*car.EmployeeID); !ok {
			return fkViolation("car references missing employee %s", *car.EmployeeID)
		}
	}
	if _, ok := st.fuels.get(car.FuelID); !ok {
		return fkViolation("car references missing fuel %s", car.FuelID)
	}
	return nil
}

func (r *CarRepo) Create(ctx context.Context, car *domain.Car) error {
	return r.s.do(ctx, func(st *state) error {
		if err := st.checkCarRefs(car); err != nil {
			return err
		}
		st.cars.put(car.ID, *car, st.next())
		return nil
	})
}

func (r *CarRepo) Update(ctx context.Context, car *domain.Car) error {
	return r.s.do(ctx, func(st *state) error {
		old, ok := st.cars.get(car.ID)
		if !ok {
			return fmt.Errorf("car %s: %w", car.ID, domain.ErrNotFound)
		}
		if err := st.checkCarRefs(car); err != nil {
			return err
		}
		updated := *car
		updated.CreatedAt = old.CreatedAt
		st.cars.put(car.ID, updated, 0)
		return nil
	})
}

func (r *CarRepo) FindByID(ctx context.Context, id string) (*domain.Car, error) {
	var car domain.Car
	err := r.s.do(ctx, func(st *state) error {
		c, ok := st.cars.get(id)
		if !ok {
			return fmt.Errorf("car %s: %w", id, domain.ErrNotFound)
		}
		car = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &car, nil
}

func (r *CarRepo) filter(ctx context.Context, keep func(domain.Car) bool) ([]domain.Car, error) {
	var cars []domain.Car
	err := r.s.do(ctx, func(st *state) error {
		for _, c := range st.cars.list() {
			if keep(c) {
				cars = append(cars, c)
			}
		}
		return nil
	})
	return cars, err
}

func (r *CarRepo) List(ctx context.Context) ([]domain.Car, error) {
	return r.filter(ctx, func(domain.Car) bool { return true })
}

func (r *CarRepo) ListByEmployee(ctx context.Context, employeeID string) ([]domain.Car, error) {
	return r.filter(ctx, func(c domain.Car) bool {
		return c.EmployeeID != nil && *c.EmployeeID == employeeID
	})
}

func (r *CarRepo) ListEaa(ctx context.Context) ([]domain.Car, error) {
	return r.filter(ctx, func(c domain.Car) bool { return c.IsEaaCar })
}

func (r *CarRepo) Delete(ctx context.Context, id string) error {
	return r.s.do(ctx, func(st *state) error {
		if _, ok := st.cars.get(id); !ok {
			return fmt.Errorf("car %s: %w", id, domain.ErrNotFound)
		}
		for _, tr := range st.transactions.rows {
			if tr.CarID == id {
				return fmt.Errorf("car %s has transactions: %w", id, domain.ErrConflict)
			}
		}
		for mid, m := range st.maintenance.rows {
			if m.CarID == id {
				st.maintenance.remove(mid)
			}
		}
		st.cars.remove(id)
		return nil
	})
}

type MaintenanceRepo struct {
	s *Store
}

// resolveMaintenance checks the car and type references and returns the record as it
// is stored, with type names filled in and duplicates dropped.
func (st *state) resolveMaintenance(maintenance *domain.Maintenance) (domain.Maintenance, error) {
	stored := *maintenance
	if _, ok := st.cars.get(maintenance.CarID); !ok {
		return stored, fkViolation("maintenance references missing car %s", maintenance.CarID)
	}
	stored.Types = make([]domain.MaintenanceType, 0, len(maintenance.Types))
	seen := make(map[string]bool, len(maintenance.Types))
	for _, t := range maintenance.Types {
		mt, ok := st.maintenanceTypes.get(t.ID)
		if !ok {
			return stored, fkViolation("missing maintenance type %s", t.ID)
		}
		if seen[mt.ID] {
			continue
		}
		seen[mt.ID] = true
		stored.Types = append(stored.Types, mt)
	}
	return stored, nil
}

func (r *MaintenanceRepo) Create(ctx context.Context, maintenance *domain.Maintenance) error {
	return r.s.do(ctx, func(st *state) error {
		stored, err := st.resolveMaintenance(maintenance)
		if err != nil {
			return err
		}
		st.maintenance.put(maintenance.ID, stored, st.next())
		return nil
	})
}

func (r *MaintenanceRepo) Update(ctx context.Context, maintenance *domain.Maintenance) error {
	return r.s.do(ctx, func(st *state) error {
		old, ok := st.maintenance.get(maintenance.ID)
		if !ok {
			return fmt.Errorf("maintenance %s: %w", maintenance.ID, domain.ErrNotFound)
		}
		stored, err := st.resolveMaintenance(maintenance)
		if err != nil {
			return err
		}
		stored.CreatedAt = old.CreatedAt
		st.maintenance.put(maintenance.ID, stored, 0)
		return nil
	})
}

func (r *MaintenanceRepo) FindByID(ctx context.Context, id string) (*domain.Maintenance, error) {
	var m domain.Maintenance
	err := r.s.do(ctx, func(st *state) error {
		found, ok := st.maintenance.get(id)
		if !ok {
			return fmt.Errorf("maintenance %s: %w", id, domain.ErrNotFound)
		}
		m = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// List returns the newest record first.
func (r *MaintenanceRepo) List(ctx context.Context) ([]domain.Maintenance, error) {
	var out []domain.Maintenance
	err := r.s.do(ctx, func(st *state) error {
		all := st.maintenance.list()
		for i := len(all) - 1; i >= 0; i-- {
			out = append(out, all[i])
		}
		return nil
	})
	return out, err
}

func (r *MaintenanceRepo) Delete(ctx context.Context, id string) error {
	return r.s.do(ctx, func(st *state) error {
		if !st.maintenance.remove(id) {
			return fmt.Errorf("maintenance %s: %w", id, domain.ErrNotFound)
		}
		return nil
	})
}

func (r *MaintenanceRepo) ListTypes(ctx context.Context) ([]domain.MaintenanceType, error) {
	var types []domain.MaintenanceType
	err := r.s.do(ctx, func(st *state) error {
		types = st.maintenanceTypes.list()
		return nil
	})
	return types, err
}

type UserRepo struct {
	s *Store
}

func (r *UserRepo) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	var user *domain.User
	err := r.s.do(ctx, func(st *state) error {
		for _, u := range st.users.rows {
			if u.Login == login {
				found := u
				user = &found
				return nil
			}
		}
		return nil
	})
	return user, err
}

func (r *UserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	err := r.s.do(ctx, func(st *state) error {
		u, ok := st.users.get(id)
		if !ok {
			return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
		}
		user = u
		user.PasswordHash = ""
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	err := r.s.do(ctx, func(st *state) error {
		users = st.users.list()
		for i := range users {
			users[i].PasswordHash = ""
		}
		return nil
	})
	return users, err
}

func (r *UserRepo) Delete(ctx context.Context, id string) error {
	return r.s.do(ctx, func(st *state) error {
		if !st.users.remove(id) {
			return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
		}
		return nil
	})
}

func (r *UserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	err := r.s.do(ctx, func(st *state) error {
		for _, u := range st.users.rows {
			if u.Login == user.Login {
				return fmt.Errorf("login %s: %w", user.Login, domain.ErrConflict)
			}
		}
		user.CreatedAt = time.Now()
		st.users.put(user.ID, *user, st.next())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}
