package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// NewOrder carries the fields of an order delivery. Override lets a soft
// capacity policy through.
type NewOrder struct {
	TankID   string
	FuelID   string
	Amount   decimal.Decimal
	Number   *string
	Override bool
}

// OrderPatch holds the order fields to change; nil keeps the stored value.
type OrderPatch struct {
	TankID   *string
	FuelID   *string
	Amount   *decimal.Decimal
	Number   *string
	Override bool
}

func (p OrderPatch) Apply(o Order) Order {
	if p.TankID != nil {
		o.TankID = *p.TankID
	}
	if p.FuelID != nil {
		o.FuelID = *p.FuelID
	}
	if p.Amount != nil {
		o.Amount = *p.Amount
	}
	if p.Number != nil {
		o.Number = p.Number
	}
	return o
}

type NewTransaction struct {
	TankID     string
	EmployeeID string
	CarID      string
	Amount     decimal.Decimal
	Status     TransactionStatus
	Override   bool
}

type TransactionPatch struct {
	TankID     *string
	EmployeeID *string
	CarID      *string
	Amount     *decimal.Decimal
	Status     *TransactionStatus
	Override   bool
}

func (p TransactionPatch) Apply(t Transaction) Transaction {
	if p.TankID != nil {
		t.TankID = *p.TankID
	}
	if p.EmployeeID != nil {
		t.EmployeeID = *p.EmployeeID
	}
	if p.CarID != nil {
		t.CarID = *p.CarID
	}
	if p.Amount != nil {
		t.Amount = *p.Amount
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	return t
}

// LockOrder returns the distinct ids sorted, the order in which rows of one
// kind must be locked to keep concurrent workflows deadlock free.
func LockOrder(ids ...string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
