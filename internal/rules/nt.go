package rules

import (
	"github.com/shopspring/decimal"
	"github.com/stampcalc/stampcalc/internal/domain"
)

// northernTerritoryRules builds the NT rule table: the quadratic duty
// formula below $525,000 with percentage rates at and above, a house-and-land
// exemption that cannot be valued until the seller confirms construction has
// not started, and two competing grants.
func northernTerritoryRules() RegionRules {
	return RegionRules{
		Code: domain.RegionNT,
		Duty: DutyRule{
			Formula: &QuadraticFormula{
				Coefficient: decimal.NewFromFloat(0.06571441),
				LinearTerm:  decimal.NewFromInt(15),
				Threshold:   decimal.NewFromInt(525_000),
			},
			Brackets: []DutyBracket{
				flatBracket(0, 3_000_000, 0.0495),
				flatBracket(3_000_000, 5_000_000, 0.0575),
				flatBracket(5_000_000, noUpperBound, 0.0595),
			},
		},
		ForeignSurchargeRate: decimal.NewFromFloat(0.07),
		Concessions: []ConcessionRule{
			{
				Code: "nt_house_land",
				Name: "House and land package exemption",
				Predicates: []Predicate{
					requireOwnerOccupier(),
					requirePrincipalHome(),
					acquisitionIn(domain.AcquisitionHouseAndLand),
					constructionNotStarted(),
				},
				Amount: fullReliefAwaitingSeller(),
			},
		},
		Grants: []GrantRule{
			{
				Code: "nt_fhog",
				Name: "First Home Owner Grant",
				Predicates: []Predicate{
					requireFirstHomeBuyer(),
					requireOwnerOccupier(),
					requirePrincipalHome(),
					requireNewDwelling(),
				},
				Amount: flatGrant(10_000),
			},
			{
				Code: "nt_build_bonus",
				Name: "BuildBonus Grant",
				Predicates: []Predicate{
					requireOwnerOccupier(),
					requirePrincipalHome(),
					acquisitionIn(domain.AcquisitionHouseAndLand),
				},
				Amount: flatGrant(20_000),
			},
		},
	}
}
