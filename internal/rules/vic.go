package rules

import (
	"github.com/shopspring/decimal"
	"github.com/stampcalc/stampcalc/internal/domain"
)

// victoriaRules builds the VIC rule table. Victoria is the only region with
// a metro/regional locality split (the regional grant pays double) and the
// only region where an off-the-plan purchase may substitute a dutiable value
// for the contract price. Its first-home and pensioner concessions cannot
// both apply; the higher amount wins.
func victoriaRules() RegionRules {
	return RegionRules{
		Code: domain.RegionVIC,
		Duty: DutyRule{
			Brackets: []DutyBracket{
				bracket(0, 25_000, 0.014, 0),
				bracket(25_000, 130_000, 0.024, 350),
				bracket(130_000, 960_000, 0.060, 2_870),
				flatBracket(960_000, 2_000_000, 0.055),
				bracket(2_000_000, noUpperBound, 0.065, 110_000),
			},
		},
		ForeignSurchargeRate: decimal.NewFromFloat(0.08),
		Concessions: []ConcessionRule{
			{
				Code: "vic_fhb",
				Name: "First home buyer duty reduction",
				Predicates: []Predicate{
					requireOwnerOccupier(),
					requirePrincipalHome(),
					requireFirstHomeBuyer(),
					requireNotForeign(),
					maxPrice(750_000),
				},
				Amount: slidingRelief(600_000, 750_000),
			},
			{
				Code: "vic_pensioner",
				Name: "Pensioner duty concession",
				Predicates: []Predicate{
					requirePensionCard(),
					requireOwnerOccupier(),
					requirePrincipalHome(),
					maxPrice(750_000),
				},
				Amount: slidingRelief(600_000, 750_000),
			},
		},
		Grants: []GrantRule{
			{
				Code: "vic_fhog",
				Name: "First Home Owner Grant",
				Predicates: []Predicate{
					requireFirstHomeBuyer(),
					requireOwnerOccupier(),
					requirePrincipalHome(),
					requireNotForeign(),
					requireNewDwelling(),
					maxPrice(750_000),
				},
				Amount: flatGrant(10_000),
			},
			{
				Code: "vic_fhog_regional",
				Name: "Regional First Home Owner Grant",
				Predicates: []Predicate{
					requireFirstHomeBuyer(),
					requireOwnerOccupier(),
					requirePrincipalHome(),
					requireNotForeign(),
					requireNewDwelling(),
					requireRegionalLocality(),
					maxPrice(750_000),
				},
				Amount: flatGrant(20_000),
			},
		},
	}
}
