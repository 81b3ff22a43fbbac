// Package memrepo is an in-process ledger store with the same method sets as
// the pgx repositories. Begin serialises atomic groups behind one mutex and
// restores a snapshot when the group fails.
package memrepo

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/GlebRadaev/fuelfleet/internal/domain"
	"github.com/GlebRadaev/fuelfleet/internal/pg"
)

type table[T any] struct {
	rows map[string]T
	seq  map[string]uint64
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[string]T), seq: make(map[string]uint64)}
}

func (t *table[T]) get(id string) (T, bool) {
	v, ok := t.rows[id]
	return v, ok
}

func (t *table[T]) put(id string, v T, next uint64) {
	if _, ok := t.seq[id]; !ok {
		t.seq[id] = next
	}
	t.rows[id] = v
}

func (t *table[T]) remove(id string) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	delete(t.seq, id)
	return true
}

// list returns rows in insertion order.
func (t *table[T]) list() []T {
	ids := make([]string, 0, len(t.rows))
	for id := range t.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return t.seq[ids[i]] < t.seq[ids[j]] })
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.rows[id])
	}
	return out
}

func (t *table[T]) clone() *table[T] {
	c := newTable[T]()
	for id, v := range t.rows {
		c.rows[id] = v
		c.seq[id] = t.seq[id]
	}
	return c
}

type state struct {
	seq              uint64
	users            *table[domain.User]
	fuels            *table[domain.Fuel]
	tanks            *table[domain.Tank]
	employees        *table[domain.Employee]
	cars             *table[domain.Car]
	orders           *table[domain.Order]
	transactions     *table[domain.Transaction]
	maintenance      *table[domain.Maintenance]
	maintenanceTypes *table[domain.MaintenanceType]
}

func newState() *state {
	return &state{
		users:            newTable[domain.User](),
		fuels:            newTable[domain.Fuel](),
		tanks:            newTable[domain.Tank](),
		employees:        newTable[domain.Employee](),
		cars:             newTable[domain.Car](),
		orders:           newTable[domain.Order](),
		transactions:     newTable[domain.Transaction](),
		maintenance:      newTable[domain.Maintenance](),
		maintenanceTypes: newTable[domain.MaintenanceType](),
	}
}

func (s *state) next() uint64 {
	s.seq++
	return s.seq
}

func (s *state) clone() *state {
	return &state{
		seq:              s.seq,
		users:            s.users.clone(),
		fuels:            s.fuels.clone(),
		tanks:            s.tanks.clone(),
		employees:        s.employees.clone(),
		cars:             s.cars.clone(),
		orders:           s.orders.clone(),
		transactions:     s.transactions.clone(),
		maintenance:      s.maintenance.clone(),
		maintenanceTypes: s.maintenanceTypes.clone(),
	}
}

// fkViolation mirrors the error postgres returns for a broken reference so
// callers can use pg.IsReferenced against either store.
func fkViolation(format string, args ...any) error {
	return &pgconn.PgError{Code: "23503", Message: fmt.Sprintf(format, args...)}
}

type txKey struct{}

type Store struct {
	mu sync.Mutex
	st *state
}

var defaultMaintenanceTypes = []domain.MaintenanceType{
	{ID: "engine-oil", Name: "Engine oil"},
	{ID: "oil-filter", Name: "Oil filter"},
	{ID: "fuel-filter", Name: "Fuel filter"},
	{ID: "air-filter", Name: "Air filter"},
	{ID: "spark-plugs", Name: "Spark plugs"},
	{ID: "timing-chain", Name: "Timing chain"},
	{ID: "shock-absorbers", Name: "Shock absorbers"},
	{ID: "brake-pads", Name: "Brake pads"},
	{ID: "brake-discs", Name: "Brake discs"},
	{ID: "brake-fluid", Name: "Brake fluid"},
	{ID: "clutch", Name: "Clutch"},
	{ID: "electrical", Name: "Electrical"},
	{ID: "other", Name: "Other"},
}

// New returns an empty store seeded with the same maintenance types as the
// SQL migrations.
func New() *Store {
	st := newState()
	for _, mt := range defaultMaintenanceTypes {
		st.maintenanceTypes.put(mt.ID, mt, st.next())
	}
	return &Store{st: st}
}

func (s *Store) inTx(ctx context.Context) bool {
	owner, _ := ctx.Value(txKey{}).(*Store)
	return owner == s
}

// do runs fn against the current state, taking the store lock unless ctx
// already belongs to one of this store's atomic groups.
func (s *Store) do(ctx context.Context, fn func(st *state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !s.inTx(ctx) {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	return fn(s.st)
}

// Begin implements pg.TXManager. Nested calls join the outer group.
func (s *Store) Begin(ctx context.Context, fn pg.TransactionalFn) (err error) {
	if s.inTx(ctx) {
		return fn(ctx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	defer func() {
		if p := recover(); p != nil {
			s.st = snapshot
			panic(p)
		}
		if err != nil {
			s.st = snapshot
			zap.L().Debug("memory transaction rolled back", zap.Error(err))
		}
	}()
	return fn(context.WithValue(ctx, txKey{}, s))
}

func (s *Store) Users() *UserRepo               { return &UserRepo{s: s} }
func (s *Store) Fuels() *FuelRepo               { return &FuelRepo{s: s} }
func (s *Store) Tanks() *TankRepo               { return &TankRepo{s: s} }
func (s *Store) Employees() *EmployeeRepo       { return &EmployeeRepo{s: s} }
func (s *Store) Cars() *CarRepo                 { return &CarRepo{s: s} }
func (s *Store) Orders() *OrderRepo             { return &OrderRepo{s: s} }
func (s *Store) Transactions() *TransactionRepo { return &TransactionRepo{s: s} }
func (s *Store) Maintenance() *MaintenanceRepo  { return &MaintenanceRepo{s: s} }
