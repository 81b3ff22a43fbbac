package memrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/fuelfleet/internal/domain"
)

type TankRepo struct {
	s *Store
}

func (r *TankRepo) Create(ctx context.Context, tank *domain.Tank) error {
	return r.s.do(ctx, func(st *state) error {
		if _, ok := st.fuels.get(tank.FuelID); !ok {
			return fkViolation("tank references missing fuel %s", tank.FuelID)
		}
		st.tanks.put(tank.ID, *tank, st.next())
		return nil
	})
}

func (r *TankRepo) FindByID(ctx context.Context, id string) (*domain.Tank, error) {
	var tank domain.Tank
	err := r.s.do(ctx, func(st *state) error {
		t, ok := st.tanks.get(id)
		if !ok {
			return fmt.Errorf("tank %s: %w", id, domain.ErrNotFound)
		}
		tank = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &tank, nil
}

// LockByID is a plain read; the store lock already serialises atomic groups.
func (r *TankRepo) LockByID(ctx context.Context, id string) (*domain.Tank, error) {
	return r.FindByID(ctx, id)
}

func (r *TankRepo) List(ctx context.Context) ([]domain.Tank, error) {
	var tanks []domain.Tank
	err := r.s.do(ctx, func(st *state) error {
		tanks = st.tanks.list()
		return nil
	})
	return tanks, err
}

func (r *TankRepo) Update(ctx context.Context, tank *domain.Tank) error {
	return r.s.do(ctx, func(st *state) error {
		old, ok := st.tanks.get(tank.ID)
		if !ok {
			return fmt.Errorf("tank %s: %w", tank.ID, domain.ErrNotFound)
		}
		updated := *tank
		updated.CreatedAt = old.CreatedAt
		st.tanks.put(tank.ID, updated, 0)
		return nil
	})
}

func (r *TankRepo) AdjustLevel(ctx context.Context, id string, delta decimal.Decimal) (*domain.Tank, error) {
	var tank domain.Tank
	err := r.s.do(ctx, func(st *state) error {
		t, ok := st.tanks.get(id)
		if !ok {
			return fmt.Errorf("tank %s: %w", id, domain.ErrConflict)
		}
		t.CurrentLevel = t.CurrentLevel.Add(delta)
		t.UpdatedAt = time.Now()
		st.tanks.put(id, t, 0)
		tank = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &tank, nil
}

func (r *TankRepo) SetLevel(ctx context.Context, id string, level decimal.Decimal) error {
	return r.s.do(ctx, func(st *state) error {
		t, ok := st.tanks.get(id)
		if !ok {
			return fmt.Errorf("tank %s: %w", id, domain.ErrConflict)
		}
		t.CurrentLevel = level
		t.UpdatedAt = time.Now()
		st.tanks.put(id, t, 0)
		return nil
	})
}

func (r *TankRepo) Ledger(ctx context.Context, id string) (*domain.TankLedger, error) {
	var ledger domain.TankLedger
	err := r.s.do(ctx, func(st *state) error {
		t, ok := st.tanks.get(id)
		if !ok {
			return fmt.Errorf("tank %s: %w", id, domain.ErrNotFound)
		}
		ledger = domain.TankLedger{TankID: id, Stored: t.CurrentLevel}
		for _, o := range st.orders.rows {
			if o.TankID == id {
				ledger.OrdersTotal = ledger.OrdersTotal.Add(o.Amount)
			}
		}
		for _, tr := range st.transactions.rows {
			if tr.TankID == id {
				ledger.DispensedSum = ledger.DispensedSum.Add(tr.Amount)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ledger, nil
}

type EmployeeRepo struct {
	s *Store
}

func (r *EmployeeRepo) Create(ctx context.Context, e *domain.Employee) error {
	return r.s.do(ctx, func(st *state) error {
		stored := *e
		stored.Cars = nil
		st.employees.put(e.ID, stored, st.next())
		return nil
	})
}

func (r *EmployeeRepo) FindByID(ctx context.Context, id string) (*domain.Employee, error) {
	var e domain.Employee
	err := r.s.do(ctx, func(st *state) error {
		found, ok := st.employees.get(id)
		if !ok {
			return fmt.Errorf("employee %s: %w", id, domain.ErrNotFound)
		}
		e = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepo) LockByID(ctx context.Context, id string) (*domain.Employee, error) {
	return r.FindByID(ctx, id)
}

func (r *EmployeeRepo) List(ctx context.Context) ([]domain.Employee, error) {
	var employees []domain.Employee
	err := r.s.do(ctx, func(st *state) error {
		employees = st.employees.list()
		return nil
	})
	return employees, err
}

func (r *EmployeeRepo) Update(ctx context.Context, e *domain.Employee) error {
	return r.s.do(ctx, func(st *state) error {
		old, ok := st.employees.get(e.ID)
		if !ok {
			return fmt.Errorf("employee %s: %w", e.ID, domain.ErrNotFound)
		}
		updated := *e
		updated.Cars = nil
		updated.CreatedAt = old.CreatedAt
		st.employees.put(e.ID, updated, 0)
		return nil
	})
}

func (r *EmployeeRepo) AdjustQuota(ctx context.Context, id string, delta decimal.Decimal) (*domain.Employee, error) {
	var e domain.Employee
	err := r.s.do(ctx, func(st *state) error {
		found, ok := st.employees.get(id)
		if !ok {
			return fmt.Errorf("employee %s: %w", id, domain.ErrConflict)
		}
		found.Quota = found.Quota.Add(delta)
		found.UpdatedAt = time.Now()
		st.employees.put(id, found, 0)
		e = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepo) ResetQuotas(ctx context.Context) (int64, error) {
	var n int64
	err := r.s.do(ctx, func(st *state) error {
		now := time.Now()
		for id, e := range st.employees.rows {
			if e.Quota.Equal(e.InitialQuota) {
				continue
			}
			e.Quota = e.InitialQuota
			e.UpdatedAt = now
			st.employees.rows[id] = e
			n++
		}
		return nil
	})
	return n, err
}

// Delete detaches the employee's cars, matching ON DELETE SET NULL.
func (r *EmployeeRepo) Delete(ctx context.Context, id string) error {
	return r.s.do(ctx, func(st *state) error {
		if _, ok := st.employees.get(id); !ok {
			return fmt.Errorf("employee %s: %w", id, domain.ErrNotFound)
		}
		for _, tr := range st.transactions.rows {
			if tr.EmployeeID == id {
				return fmt.Errorf("employee %s has transactions: %w", id, domain.ErrConflict)
			}
		}
		for carID, car := range st.cars.rows {
			if car.EmployeeID != nil && *car.EmployeeID == id {
				car.EmployeeID = nil
				st.cars.rows[carID] = car
			}
		}
		st.employees.remove(id)
		return nil
	})
}
