package rules

import (
	"github.com/shopspring/decimal"
	"github.com/stampcalc/stampcalc/internal/domain"
)

// westernAustraliaRules builds the WA rule table: the first home owner rate
// (full relief to $430k, tapering to $530k) plus two competing grants for
// buyers who build rather than buy established.
func westernAustraliaRules() RegionRules {
	return RegionRules{
		Code: domain.RegionWA,
		Duty: DutyRule{
			Brackets: []DutyBracket{
				bracket(0, 120_000, 0.019, 0),
				bracket(120_000, 150_000, 0.0285, 2_280),
				bracket(150_000, 360_000, 0.038, 3_135),
				bracket(360_000, 725_000, 0.0475, 11_115),
				bracket(725_000, noUpperBound, 0.0515, 28_452.50),
			},
		},
		ForeignSurchargeRate: decimal.NewFromFloat(0.07),
		Concessions: []ConcessionRule{
			{
				Code: "wa_fhor",
				Name: "First home owner rate of duty",
				Predicates: []Predicate{
					requireOwnerOccupier(),
					requirePrincipalHome(),
					requireFirstHomeBuyer(),
					requireNotForeign(),
					maxPrice(530_000),
				},
				Amount: slidingRelief(430_000, 530_000),
			},
		},
		Grants: []GrantRule{
			{
				Code: "wa_fhog",
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
				Code: "wa_building_bonus",
				Name: "Building Bonus Grant",
				Predicates: []Predicate{
					requireOwnerOccupier(),
					requirePrincipalHome(),
					acquisitionIn(domain.AcquisitionHouseAndLand, domain.AcquisitionOffThePlan),
				},
				Amount: flatGrant(20_000),
			},
		},
	}
}
