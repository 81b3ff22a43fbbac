package memrepo

import (
	"context"
	"fmt"

	"github.com/GlebRadaev/fuelfleet/internal/domain"
)

type OrderRepo struct {
	s *Store
}

func (r *OrderRepo) Create(ctx context.Context, order *domain.Order) error {
	return r.s.do(ctx, func(st *state) error {
		if _, ok := st.tanks.get(order.TankID); !ok {
			return fkViolation("order references missing tank %s", order.TankID)
		}
		if _, ok := st.fuels.get(order.FuelID); !ok {
			return fkViolation("order references missing fuel %s", order.FuelID)
		}
		st.orders.put(order.ID, *order, st.next())
		return nil
	})
}

func (r *OrderRepo) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	var order domain.Order
	err := r.s.do(ctx, func(st *state) error {
		o, ok := st.orders.get(id)
		if !ok {
			return fmt.Errorf("order %s: %w", id, domain.ErrNotFound)
		}
		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepo) LockByID(ctx context.Context, id string) (*domain.Order, error) {
	return r.FindByID(ctx, id)
}

// List returns the newest order first.
func (r *OrderRepo) List(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.s.do(ctx, func(st *state) error {
		all := st.orders.list()
		orders = make([]domain.Order, 0, len(all))
		for i := len(all) - 1; i >= 0; i-- {
			orders = append(orders, all[i])
		}
		return nil
	})
	return orders, err
}

func (r *OrderRepo) Update(ctx context.Context, order *domain.Order) error {
	return r.s.do(ctx, func(st *state) error {
		old, ok := st.orders.get(order.ID)
		if !ok {
			return fmt.Errorf("order %s: %w", order.ID, domain.ErrConflict)
		}
		if _, ok := st.tanks.get(order.TankID); !ok {
			return fkViolation("order references missing tank %s", order.TankID)
		}
		updated := *order
		updated.CreatedAt = old.CreatedAt
		st.orders.put(order.ID, updated, 0)
		return nil
	})
}

func (r *OrderRepo) Delete(ctx context.Context, id string) error {
	return r.s.do(ctx, func(st *state) error {
		if !st.orders.remove(id) {
			return fmt.Errorf("order %s: %w", id, domain.ErrConflict)
		}
		return nil
	})
}

type TransactionRepo struct {
	s *Store
}

func (r *TransactionRepo) checkRefs(st *state, tr *domain.Transaction) error {
	if _, ok := st.tanks.get(tr.TankID); !ok {
		return fkViolation("transaction references missing tank %s", tr.TankID)
	}
	if _, ok := st.employees.get(tr.EmployeeID); !ok {
		return fkViolation("transaction references missing employee %s", tr.EmployeeID)
	}
	if _, ok := st.cars.get(tr.CarID); !ok {
		return fkViolation("transaction references missing car %s", tr.CarID)
	}
	return nil
}

func (r *TransactionRepo) Create(ctx context.Context, tr *domain.Transaction) error {
	return r.s.do(ctx, func(st *state) error {
		if err := r.checkRefs(st, tr); err != nil {
			return err
		}
		st.transactions.put(tr.ID, *tr, st.next())
		return nil
	})
}

func (r *TransactionRepo) FindByID(ctx context.Context, id string) (*domain.Transaction, error) {
	var tr domain.Transaction
	err := r.s.do(ctx, func(st *state) error {
		found, ok := st.transactions.get(id)
		if !ok {
			return fmt.Errorf("transaction %s: %w", id, domain.ErrNotFound)
		}
		tr = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &tr, nil
}

func (r *TransactionRepo) LockByID(ctx context.Context, id string) (*domain.Transaction, error) {
	return r.FindByID(ctx, id)
}

func (r *TransactionRepo) List(ctx context.Context) ([]domain.Transaction, error) {
	var out []domain.Transaction
	err := r.s.do(ctx, func(st *state) error {
		out = st.transactions.list()
		return nil
	})
	return out, err
}

func (r *TransactionRepo) ListDetailsByStatus(ctx context.Context, status domain.TransactionStatus) ([]domain.TransactionDetails, error) {
	var out []domain.TransactionDetails
	err := r.s.do(ctx, func(st *state) error {
		for _, tr := range st.transactions.list() {
			if tr.Status != status {
				continue
			}
			d := domain.TransactionDetails{Transaction: tr}
			d.Tank, _ = st.tanks.get(tr.TankID)
			d.Employee, _ = st.employees.get(tr.EmployeeID)
			d.Car, _ = st.cars.get(tr.CarID)
			d.CarFuel, _ = st.fuels.get(d.Car.FuelID)
			out = append(out, d)
		}
		return nil
	})
	return out, err
}

func (r *TransactionRepo) CountByStatus(ctx context.Context, status domain.TransactionStatus) (int64, error) {
	var n int64
	err := r.s.do(ctx, func(st *state) error {
		for _, tr := range st.transactions.rows {
			if tr.Status == status {
				n++
			}
		}
		return nil
	})
	return n, err
}

func (r *TransactionRepo) Update(ctx context.Context, tr *domain.Transaction) error {
	return r.s.do(ctx, func(st *state) error {
		old, ok := st.transactions.get(tr.ID)
		if !ok {
			return fmt.Errorf("transaction %s: %w", tr.ID, domain.ErrConflict)
		}
		if err := r.checkRefs(st, tr); err != nil {
			return err
		}
		updated := *tr
		updated.CreatedAt = old.CreatedAt
		st.transactions.put(tr.ID, updated, 0)
		return nil
	})
}

func (r *TransactionRepo) Delete(ctx context.Context, id string) error {
	return r.s.do(ctx, func(st *state) error {
		if !st.transactions.remove(id) {
			return fmt.Errorf("transaction %s: %w", id, domain.ErrConflict)
		}
		return nil
	})
}
