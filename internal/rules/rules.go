// Package rules holds the per-region jurisdiction rule tables: duty-rate
// brackets or formulas, concession rules, grant rules and surcharge rates.
// Each region is a flat tagged record selected by a single map lookup; there
// is no hierarchy across regions.
package rules

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/stampcalc/stampcalc/internal/domain"
)

// DutyBracket is one row of a region's transfer duty schedule. Brackets are
// half-open with the upper bound inclusive: a price V falls in the bracket
// with Min < V <= Max. Duty for the bracket is price*Rate + Fixed; Fixed is
// usually negative, chosen so adjacent brackets join up.
type DutyBracket struct {
	Min   decimal.Decimal
	Max   decimal.Decimal
	Rate  decimal.Decimal
	Fixed decimal.Decimal
}

// QuadraticFormula is the closed-form duty formula used by the Northern
// Territory below its threshold: duty = Coefficient*V^2 + LinearTerm*V with
// V = price/1000.
type QuadraticFormula struct {
	Coefficient decimal.Decimal
	LinearTerm  decimal.Decimal
	Threshold   decimal.Decimal
}

// DutyRule is either bracket-driven, or formula-driven below the formula's
// threshold with brackets taking over at and above it.
type DutyRule struct {
	Brackets []DutyBracket
	Formula  *QuadraticFormula
}

// EvalContext is the immutable snapshot concession and grant predicates
// evaluate against. SellerKnown is true once the seller section is complete;
// rules that hinge on seller-disclosed figures stay pending until then.
type EvalContext struct {
	Buyer       domain.BuyerProfile
	Property    domain.PropertyProfile
	Seller      domain.SellerDisclosure
	SellerKnown bool
}

// Predicate checks one eligibility criterion. On failure the returned reason
// is surfaced verbatim as the ineligibility explanation.
type Predicate func(ctx EvalContext) (ok bool, reason string)

// ConcessionAmount computes a concession's value given the base duty. The
// pending flag marks a concession that cannot be valued until the seller
// section is answered; it is then reported eligible with amount zero.
type ConcessionAmount func(ctx EvalContext, baseDuty decimal.Decimal) (amount decimal.Decimal, pending bool)

// ConcessionRule is one duty concession: an ordered predicate list plus an
// amount function. The first failing predicate supplies the reason.
type ConcessionRule struct {
	Code       string
	Name       string
	Predicates []Predicate
	Amount     ConcessionAmount
}

// GrantRule is one cash grant type, evaluated with the same predicate
// pattern as concessions.
type GrantRule struct {
	Code       string
	Name       string
	Predicates []Predicate
	Amount     func(ctx EvalContext) decimal.Decimal
}

// RegionRules is the complete rule table for one jurisdiction.
type RegionRules struct {
	Code                 domain.Region
	Duty                 DutyRule
	Concessions          []ConcessionRule
	Grants               []GrantRule
	ForeignSurchargeRate decimal.Decimal
}

var registry = map[domain.Region]RegionRules{
	domain.RegionNSW: newSouthWalesRules(),
	domain.RegionVIC: victoriaRules(),
	domain.RegionQLD: queenslandRules(),
	domain.RegionWA:  westernAustraliaRules(),
	domain.RegionSA:  southAustraliaRules(),
	domain.RegionTAS: tasmaniaRules(),
	domain.RegionACT: australianCapitalTerritoryRules(),
	domain.RegionNT:  northernTerritoryRules(),
}

// ForRegion looks up a region's rule table.
func ForRegion(r domain.Region) (RegionRules, error) {
	rr, ok := registry[r]
	if !ok {
		return RegionRules{}, fmt.Errorf("%w: %q", domain.ErrUnknownRegion, r)
	}
	return rr, nil
}

// Table construction helpers. Schedules below are written as the statutory
// "base amount plus marginal rate over the bracket floor"; bracket converts
// that into the price*rate+fixed form the calculator applies.

func bracket(min, max int64, rate float64, baseAtMin float64) DutyBracket {
	r := decimal.NewFromFloat(rate)
	lo := decimal.NewFromInt(min)
	return DutyBracket{
		Min:   lo,
		Max:   decimal.NewFromInt(max),
		Rate:  r,
		Fixed: decimal.NewFromFloat(baseAtMin).Sub(r.Mul(lo)),
	}
}

// flatBracket is for schedules quoted as a single rate on the whole price.
func flatBracket(min, max int64, rate float64) DutyBracket {
	return DutyBracket{
		Min:  decimal.NewFromInt(min),
		Max:  decimal.NewFromInt(max),
		Rate: decimal.NewFromFloat(rate),
	}
}

const noUpperBound = int64(999_999_999_999)
