package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/stampcalc/stampcalc/internal/domain"
	"github.com/stampcalc/stampcalc/internal/rules"
)

var thousand = decimal.NewFromInt(1000)

// DutyCalculator computes base statutory transfer duty for any region.
type DutyCalculator struct{}

// NewDutyCalculator creates a new duty calculator.
func NewDutyCalculator() *DutyCalculator {
	return &DutyCalculator{}
}

// Calculate returns the statutory duty for a dutiable value in a region,
// rounded to the nearest cent. The value must be positive; the region must
// have a rule table.
func (dc *DutyCalculator) Calculate(value decimal.Decimal, region domain.Region) (decimal.Decimal, error) {
	if value.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("invalid input: dutiable value must be positive, got %s", value)
	}
	rr, err := rules.ForRegion(region)
	if err != nil {
		return decimal.Zero, err
	}
	return dc.apply(value, rr.Duty)
}

func (dc *DutyCalculator) apply(value decimal.Decimal, rule rules.DutyRule) (decimal.Decimal, error) {
	if rule.Formula != nil && value.LessThan(rule.Formula.Threshold) {
		// duty = c*V^2 + m*V with V in thousands.
		v := value.Div(thousand)
		duty := rule.Formula.Coefficient.Mul(v).Mul(v).Add(rule.Formula.LinearTerm.Mul(v))
		return duty.Round(2), nil
	}
	for _, b := range rule.Brackets {
		if value.GreaterThan(b.Min) && value.LessThanOrEqual(b.Max) {
			return value.Mul(b.Rate).Add(b.Fixed).Round(2), nil
		}
	}
	// Bracket tables cover (0, +inf); reaching here is a rule-table defect.
	return decimal.Zero, fmt.Errorf("rule conflict: no duty bracket covers value %s", value)
}

// ForeignSurcharge returns the foreign purchaser surcharge on the contract
// price. It is computed on price, not on the dutiable value, and no
// concession ever reduces it.
func (dc *DutyCalculator) ForeignSurcharge(price decimal.Decimal, region domain.Region) (decimal.Decimal, error) {
	if price.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("invalid input: price must be positive, got %s", price)
	}
	rr, err := rules.ForRegion(region)
	if err != nil {
		return decimal.Zero, err
	}
	return price.Mul(rr.ForeignSurchargeRate).Round(2), nil
}
