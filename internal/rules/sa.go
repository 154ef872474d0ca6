package rules

import (
	"github.com/shopspring/decimal"
	"github.com/stampcalc/stampcalc/internal/domain"
)

// southAustraliaRules builds the SA rule table: a nine-row duty schedule,
// full stamp duty relief for first home buyers of new dwellings, and a
// single grant type.
func southAustraliaRules() RegionRules {
	return RegionRules{
		Code: domain.RegionSA,
		Duty: DutyRule{
			Brackets: []DutyBracket{
				bracket(0, 12_000, 0.010, 0),
				bracket(12_000, 30_000, 0.020, 120),
				bracket(30_000, 50_000, 0.030, 480),
				bracket(50_000, 100_000, 0.035, 1_080),
				bracket(100_000, 200_000, 0.040, 2_830),
				bracket(200_000, 250_000, 0.0425, 6_830),
				bracket(250_000, 300_000, 0.0475, 8_955),
				bracket(300_000, 500_000, 0.050, 11_330),
				bracket(500_000, noUpperBound, 0.055, 21_330),
			},
		},
		ForeignSurchargeRate: decimal.NewFromFloat(0.07),
		Concessions: []ConcessionRule{
			{
				Code: "sa_fhb_relief",
				Name: "First home buyer stamp duty relief",
				Predicates: []Predicate{
					requireOwnerOccupier(),
					requirePrincipalHome(),
					requireFirstHomeBuyer(),
					requireNotForeign(),
					requireNewDwelling(),
					maxPrice(650_000),
				},
				Amount: fullRelief(),
			},
		},
		Grants: []GrantRule{
			{
				Code: "sa_fhog",
				Name: "First Home Owner Grant",
				Predicates: []Predicate{
					requireFirstHomeBuyer(),
					requireOwnerOccupier(),
					requirePrincipalHome(),
					requireNotForeign(),
					requireNewDwelling(),
					maxPrice(650_000),
				},
				Amount: flatGrant(15_000),
			},
		},
	}
}
