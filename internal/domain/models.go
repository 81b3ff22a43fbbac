package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Login        string    `db:"login"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type Fuel struct {
	ID        string          `db:"id"`
	Name      string          `db:"name"`
	Price     decimal.Decimal `db:"price"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

// Tank is a fuel reservoir. CurrentLevel is a cached running total of the
// tank's orders minus its transactions; reconciliation rebuilds it.
type Tank struct {
	ID           string          `db:"id"`
	Name         string          `db:"name"`
	FuelID       string          `db:"fuel_id"`
	Capacity     decimal.Decimal `db:"capacity"`
	CurrentLevel decimal.Decimal `db:"current_level"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}

// Employee quota is measured in litres, the same unit as transaction amounts.
type Employee struct {
	ID           string          `db:"id"`
	Name         string          `db:"name"`
	Phone        string          `db:"phone"`
	Email        string          `db:"email"`
	Team         string          `db:"team"`
	Major        string          `db:"major"`
	Quota        decimal.Decimal `db:"quota"`
	InitialQuota decimal.Decimal `db:"initial_quota"`
	StartDate    *time.Time      `db:"start_date"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
	Cars         []Car           `db:"-"`
}

type Car struct {
	ID         string    `db:"id"`
	EmployeeID *string   `db:"employee_id"`
	CarModel   string    `db:"car_model"`
	Plate      string    `db:"plate"`
	FuelID     string    `db:"fuel_id"`
	IsEaaCar   bool      `db:"is_eaa_car"`
	CreatedAt  time.Time `db:"created_at"`
}

// Order is a fuel delivery into a tank.
type Order struct {
	ID        string          `db:"id"`
	Number    *string         `db:"number"`
	TankID    string          `db:"tank_id"`
	FuelID    string          `db:"fuel_id"`
	Amount    decimal.Decimal `db:"amount"`
	CreatedAt time.Time       `db:"created_at"`
}

// Transaction is fuel dispensed from a tank into a car, charged to an
// employee's quota.
type Transaction struct {
	ID         string            `db:"id"`
	TankID     string            `db:"tank_id"`
	EmployeeID string            `db:"employee_id"`
	CarID      string            `db:"car_id"`
	Amount     decimal.Decimal   `db:"amount"`
	Status     TransactionStatus `db:"status"`
	CreatedAt  time.Time         `db:"created_at"`
}

// TransactionDetails carries the rows a transaction points at, for views that
// show it without further lookups.
type TransactionDetails struct {
	Transaction
	Tank     Tank
	Employee Employee
	Car      Car
	CarFuel  Fuel
}

type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusApproved  TransactionStatus = "approved"
	StatusCompleted TransactionStatus = "completed"
	StatusRejected  TransactionStatus = "rejected"
)

func (s TransactionStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusCompleted, StatusRejected:
		return true
	}
	return false
}

type MaintenanceType struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

type Maintenance struct {
	ID          string            `db:"id"`
	CarID       string            `db:"car_id"`
	Description string            `db:"description"`
	Cost        decimal.Decimal   `db:"cost"`
	OdoMeter    int64             `db:"odo_meter"`
	CreatedAt   time.Time         `db:"created_at"`
	Types       []MaintenanceType `db:"-"`
}

// TankLedger compares the cached level of a tank with the level derived
// from its order and transaction history.
type TankLedger struct {
	TankID       string
	Stored       decimal.Decimal
	OrdersTotal  decimal.Decimal
	DispensedSum decimal.Decimal
}

func (l TankLedger) Derived() decimal.Decimal {
	return l.OrdersTotal.Sub(l.DispensedSum)
}

func (l TankLedger) Drift() decimal.Decimal {
	return l.Stored.Sub(l.Derived())
}

// FormData bundles the reference lists the entry forms are built from.
type FormData struct {
	Employees []Employee
	Tanks     []Tank
	Cars      []Car
}

type EaaBundle struct {
	Cars  []Car
	Types []MaintenanceType
}
