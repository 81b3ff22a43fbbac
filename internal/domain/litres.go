package domain

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/fuelfleet/pkg/validate"
)

// CheckLitres rejects quantities the ledger columns would round or overflow.
func CheckLitres(field string, d decimal.Decimal) error {
	if !validate.Litres(d) {
		return fmt.Errorf("%s %s must have at most %d decimal places and at most 11 integer digits: %w",
			field, d, validate.LitreScale, ErrValidation)
	}
	return nil
}
