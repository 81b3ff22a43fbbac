package transactionservice

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/fuelfleet/internal/domain"
	"github.com/GlebRadaev/fuelfleet/internal/pg"
	memrepo "github.com/GlebRadaev/fuelfleet/internal/repo/memory-repo"
	"github.com/GlebRadaev/fuelfleet/internal/service/orderservice"
)

func litres(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func ptr[T any](v T) *T { return &v }

func NewMock(t *testing.T) (*Service, *MockRepo, *MockTankRepo, *MockEmployeeRepo, *MockCarRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	tanks := NewMockTankRepo(ctrl)
	employees := NewMockEmployeeRepo(ctrl)
	cars := NewMockCarRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error { return fn(ctx) }).
		AnyTimes()

	return New(repo, tanks, employees, cars, txManager, domain.DefaultPolicies()), repo, tanks, employees, cars
}

func TestCreate_Validation(t *testing.T) {
	svc, _, _, _, _ := NewMock(t)
	valid := domain.NewTransaction{TankID: "t1", EmployeeID: "e1", CarID: "c1", Amount: litres(10)}

	tests := []struct {
		name   string
		mutate func(in *domain.NewTransaction)
	}{
		{name: "zero amount", mutate: func(in *domain.NewTransaction) { in.Amount = litres(0) }},
		{name: "missing tank", mutate: func(in *domain.NewTransaction) { in.TankID = "" }},
		{name: "missing employee", mutate: func(in *domain.NewTransaction) { in.EmployeeID = "" }},
		{name: "missing car", mutate: func(in *domain.NewTransaction) { in.CarID = "" }},
		{name: "unknown status", mutate: func(in *domain.NewTransaction) { in.Status = "lost" }},
		{name: "four decimals", mutate: func(in *domain.NewTransaction) { in.Amount = decimal.RequireFromString("1.0005") }},
		{name: "beyond column range", mutate: func(in *domain.NewTransaction) { in.Amount = decimal.New(1, 15) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			_, err := svc.Create(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestCreate_LockOrderAndSteps(t *testing.T) {
	svc, repo, tanks, employees, cars := NewMock(t)
	tank := &domain.Tank{ID: "t1", CurrentLevel: litres(500)}
	employee := &domain.Employee{ID: "e1", Quota: litres(50)}

	gomock.InOrder(
		cars.EXPECT().FindByID(gomock.Any(), "c1").Return(&domain.Car{ID: "c1"}, nil),
		tanks.EXPECT().LockByID(gomock.Any(), "t1").Return(tank, nil),
		employees.EXPECT().LockByID(gomock.Any(), "e1").Return(employee, nil),
		tanks.EXPECT().AdjustLevel(gomock.Any(), "t1", litres(-120)).Return(tank, nil),
		employees.EXPECT().AdjustQuota(gomock.Any(), "e1", litres(-120)).Return(employee, nil),
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil),
	)

	tr, err := svc.Create(context.Background(), domain.NewTransaction{TankID: "t1", EmployeeID: "e1", CarID: "c1", Amount: litres(120)})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, tr.Status)
}

func TestCreate_QuotaWriteFails(t *testing.T) {
	svc, _, tanks, employees, cars := NewMock(t)
	boom := errors.New("employee row gone")

	cars.EXPECT().FindByID(gomock.Any(), "c1").Return(&domain.Car{ID: "c1"}, nil)
	tanks.EXPECT().LockByID(gomock.Any(), "t1").Return(&domain.Tank{ID: "t1"}, nil)
	employees.EXPECT().LockByID(gomock.Any(), "e1").Return(&domain.Employee{ID: "e1"}, nil)
	tanks.EXPECT().AdjustLevel(gomock.Any(), "t1", gomock.Any()).Return(&domain.Tank{}, nil)
	employees.EXPECT().AdjustQuota(gomock.Any(), "e1", gomock.Any()).Return(nil, boom)

	_, err := svc.Create(context.Background(), domain.NewTransaction{TankID: "t1", EmployeeID: "e1", CarID: "c1", Amount: litres(1)})
	assert.ErrorIs(t, err, boom)
}

func TestPending(t *testing.T) {
	svc, repo, _, _, _ := NewMock(t)

	repo.EXPECT().ListDetailsByStatus(gomock.Any(), domain.StatusPending).Return([]domain.TransactionDetails{{Transaction: domain.Transaction{ID: "tr1"}}, {Transaction: domain.Transaction{ID: "tr2"}}}, nil)
	repo.EXPECT().CountByStatus(gomock.Any(), domain.StatusPending).Return(int64(2), nil)

	pending, err := svc.ListPending(context.Background())
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	count, err := svc.CountPending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

// LedgerSuite drives the order and transaction workflows against the memory
// ledger store.
type LedgerSuite struct {
	suite.Suite
	ctx    context.Context
	store  *memrepo.Store
	orders *orderservice.Service
	svc    *Service
}

func (s *LedgerSuite) setup(policies domain.Policies) {
	s.ctx = context.Background()
	s.store = memrepo.New()
	now := time.Now()
	owner := "e1"
	s.Require().NoError(s.store.Fuels().Create(s.ctx, &domain.Fuel{ID: "diesel", CreatedAt: now}))
	for _, id := range []string{"t1", "t2"} {
		s.Require().NoError(s.store.Tanks().Create(s.ctx, &domain.Tank{ID: id, FuelID: "diesel", Capacity: litres(1000), CurrentLevel: litres(200)}))
	}
	for _, id := range []string{"e1", "e2"} {
		s.Require().NoError(s.store.Employees().Create(s.ctx, &domain.Employee{ID: id, Quota: litres(50), InitialQuota: litres(50)}))
	}
	s.Require().NoError(s.store.Cars().Create(s.ctx, &domain.Car{ID: "c1", EmployeeID: &owner, FuelID: "diesel"}))

	s.orders = orderservice.New(s.store.Orders(), s.store.Tanks(), s.store.Fuels(), s.store, policies)
	s.svc = New(s.store.Transactions(), s.store.Tanks(), s.store.Employees(), s.store.Cars(), s.store, policies)
}

func (s *LedgerSuite) SetupTest() {
	s.setup(domain.DefaultPolicies())
}

func (s *LedgerSuite) level(id string) decimal.Decimal {
	tank, err := s.store.Tanks().FindByID(s.ctx, id)
	s.Require().NoError(err)
	return tank.CurrentLevel
}

func (s *LedgerSuite) quota(id string) decimal.Decimal {
	e, err := s.store.Employees().FindByID(s.ctx, id)
	s.Require().NoError(err)
	return e.Quota
}

func (s *LedgerSuite) assertBalances(tank string, level int64, employee string, quota int64) {
	s.True(s.level(tank).Equal(litres(level)), "tank %s level %s, want %d", tank, s.level(tank), level)
	s.True(s.quota(employee).Equal(litres(quota)), "employee %s quota %s, want %d", employee, s.quota(employee), quota)
}

func (s *LedgerSuite) create(amount int64) *domain.Transaction {
	tr, err := s.svc.Create(s.ctx, domain.NewTransaction{TankID: "t1", EmployeeID: "e1", CarID: "c1", Amount: litres(amount)})
	s.Require().NoError(err)
	return tr
}

func (s *LedgerSuite) TestReverseThenReapply() {
	tr := s.create(30)
	s.assertBalances("t1", 170, "e1", 20)

	_, err := s.svc.Update(s.ctx, tr.ID, domain.TransactionPatch{Amount: ptr(litres(45))})
	s.Require().NoError(err)
	s.assertBalances("t1", 155, "e1", 5)
}

func (s *LedgerSuite) TestUpdateMovesBetweenTankAndEmployee() {
	tr := s.create(30)

	updated, err := s.svc.Update(s.ctx, tr.ID, domain.TransactionPatch{TankID: ptr("t2"), EmployeeID: ptr("e2"), Amount: ptr(litres(10))})
	s.Require().NoError(err)
	s.Equal("t2", updated.TankID)
	s.assertBalances("t1", 200, "e1", 50)
	s.assertBalances("t2", 190, "e2", 40)
}

func (s *LedgerSuite) TestStatusChangeKeepsBalances() {
	tr := s.create(30)

	updated, err := s.svc.Update(s.ctx, tr.ID, domain.TransactionPatch{Status: ptr(domain.StatusApproved)})
	s.Require().NoError(err)
	s.Equal(domain.StatusApproved, updated.Status)
	s.assertBalances("t1", 170, "e1", 20)

	count, err := s.svc.CountPending(s.ctx)
	s.Require().NoError(err)
	s.Zero(count)
}

func (s *LedgerSuite) TestDeleteRestoresState() {
	tr := s.create(30)

	s.Require().NoError(s.svc.Delete(s.ctx, tr.ID))
	s.assertBalances("t1", 200, "e1", 50)

	s.ErrorIs(s.svc.Delete(s.ctx, tr.ID), domain.ErrNotFound)
}

func (s *LedgerSuite) TestUnstorableAmountLeavesBalances() {
	tr := s.create(30)

	odd := decimal.RequireFromString("1.0005")
	_, err := s.svc.Update(s.ctx, tr.ID, domain.TransactionPatch{Amount: &odd})
	s.ErrorIs(err, domain.ErrValidation)
	s.assertBalances("t1", 170, "e1", 20)

	exact := decimal.RequireFromString("1.005")
	_, err = s.svc.Update(s.ctx, tr.ID, domain.TransactionPatch{Amount: &exact})
	s.Require().NoError(err)
	s.Require().NoError(s.svc.Delete(s.ctx, tr.ID))
	s.assertBalances("t1", 200, "e1", 50)
}

func (s *LedgerSuite) TestUnknownReferences() {
	_, err := s.svc.Create(s.ctx, domain.NewTransaction{TankID: "t9", EmployeeID: "e1", CarID: "c1", Amount: litres(1)})
	s.ErrorIs(err, domain.ErrNotFound)
	_, err = s.svc.Create(s.ctx, domain.NewTransaction{TankID: "t1", EmployeeID: "e1", CarID: "c9", Amount: litres(1)})
	s.ErrorIs(err, domain.ErrNotFound)

	tr := s.create(10)
	_, err = s.svc.Update(s.ctx, tr.ID, domain.TransactionPatch{EmployeeID: ptr("e9")})
	s.ErrorIs(err, domain.ErrNotFound)
	s.assertBalances("t1", 190, "e1", 40)
}

// Tank of 200 gets an order of 300, then an employee with 50 left draws 120.
func (s *LedgerSuite) TestConcreteScenario() {
	_, err := s.orders.Create(s.ctx, domain.NewOrder{TankID: "t1", Amount: litres(300)})
	s.Require().NoError(err)
	s.True(s.level("t1").Equal(litres(500)))

	s.create(120)
	s.assertBalances("t1", 380, "e1", -70)
}

func (s *LedgerSuite) TestQuotaPolicy() {
	tests := []struct {
		name      string
		policy    domain.Policy
		override  bool
		expectErr error
	}{
		{name: "soft rejects", policy: domain.PolicySoft, expectErr: domain.ErrQuotaExceeded},
		{name: "soft override", policy: domain.PolicySoft, override: true},
		{name: "hard", policy: domain.PolicyHard, override: true, expectErr: domain.ErrQuotaExceeded},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			policies := domain.DefaultPolicies()
			policies.Quota = tt.policy
			s.setup(policies)

			_, err := s.svc.Create(s.ctx, domain.NewTransaction{TankID: "t1", EmployeeID: "e1", CarID: "c1", Amount: litres(120), Override: tt.override})
			if tt.expectErr != nil {
				s.ErrorIs(err, tt.expectErr)
				s.assertBalances("t1", 200, "e1", 50)
				return
			}
			s.NoError(err)
			s.assertBalances("t1", 80, "e1", -70)
		})
	}
}

func (s *LedgerSuite) TestFuelPolicyCountsReversedAmount() {
	policies := domain.DefaultPolicies()
	policies.Fuel = domain.PolicyHard
	s.setup(policies)

	tr := s.create(150)
	s.assertBalances("t1", 50, "e1", -100)

	// 180 fits once the original 150 is put back.
	_, err := s.svc.Update(s.ctx, tr.ID, domain.TransactionPatch{Amount: ptr(litres(180))})
	s.Require().NoError(err)
	s.assertBalances("t1", 20, "e1", -130)

	_, err = s.svc.Update(s.ctx, tr.ID, domain.TransactionPatch{Amount: ptr(litres(201))})
	s.ErrorIs(err, domain.ErrInsufficientFuel)
	s.assertBalances("t1", 20, "e1", -130)
}

func (s *LedgerSuite) TestConcurrentCreatesDoNotLoseUpdates() {
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.svc.Create(s.ctx, domain.NewTransaction{TankID: "t1", EmployeeID: "e1", CarID: "c1", Amount: litres(5)})
			s.NoError(err)
		}()
	}
	wg.Wait()
	s.assertBalances("t1", 100, "e1", -50)
}

func TestLedgerSuite(t *testing.T) {
	suite.Run(t, new(LedgerSuite))
}
