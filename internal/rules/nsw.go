package rules

import (
	"github.com/shopspring/decimal"
	"github.com/stampcalc/stampcalc/internal/domain"
)

// newSouthWalesRules builds the NSW rule table: seven duty brackets with a
// premium rate above $3m, the First Home Buyers Assistance concession (full
// relief to $800k, tapering to $1m) and the new-homes grant with its
// house-and-land price cap.
func newSouthWalesRules() RegionRules {
	return RegionRules{
		Code: domain.RegionNSW,
		Duty: DutyRule{
			Brackets: []DutyBracket{
				bracket(0, 17_000, 0.0125, 0),
				bracket(17_000, 37_000, 0.0150, 212),
				bracket(37_000, 99_000, 0.0175, 512),
				bracket(99_000, 365_000, 0.0350, 1_597),
				bracket(365_000, 1_217_000, 0.0450, 10_907),
				bracket(1_217_000, 3_000_000, 0.0550, 49_247),
				bracket(3_000_000, noUpperBound, 0.0700, 147_312),
			},
		},
		ForeignSurchargeRate: decimal.NewFromFloat(0.08),
		Concessions: []ConcessionRule{
			{
				Code: "nsw_fhba",
				Name: "First Home Buyers Assistance",
				Predicates: []Predicate{
					requireOwnerOccupier(),
					requirePrincipalHome(),
					requireFirstHomeBuyer(),
					requireNotForeign(),
					requireDwelling(),
					maxPrice(1_000_000),
				},
				Amount: slidingRelief(800_000, 1_000_000),
			},
		},
		Grants: []GrantRule{
			{
				Code: "nsw_fhog",
				Name: "First Home Owner Grant (New Homes)",
				Predicates: []Predicate{
					requireFirstHomeBuyer(),
					requireOwnerOccupier(),
					requirePrincipalHome(),
					requireNotForeign(),
					requireNewDwelling(),
					nswGrantPriceCap(),
				},
				Amount: flatGrant(10_000),
			},
		},
	}
}

// nswGrantPriceCap: $600k for a finished new home, $750k for a
// house-and-land package.
func nswGrantPriceCap() Predicate {
	capNew := decimal.NewFromInt(600_000)
	capPackage := decimal.NewFromInt(750_000)
	return func(ctx EvalContext) (bool, string) {
		cap := capNew
		if ctx.Property.Acquisition == domain.AcquisitionHouseAndLand {
			cap = capPackage
		}
		if ctx.Property.Price.GreaterThan(cap) {
			return false, "price exceeds the $" + cap.StringFixed(0) + " cap"
		}
		return true, ""
	}
}
