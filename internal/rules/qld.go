package rules

import (
	"github.com/shopspring/decimal"
	"github.com/stampcalc/stampcalc/internal/domain"
)

// queenslandRules builds the QLD rule table. The home concession and the
// first home concession are variants of one relief and cannot stack; the
// grant list carries two competing grant types so the superseded path gets
// exercised whenever a first home buyer builds.
func queenslandRules() RegionRules {
	return RegionRules{
		Code: domain.RegionQLD,
		Duty: DutyRule{
			Brackets: []DutyBracket{
				flatBracket(0, 5_000, 0),
				bracket(5_000, 75_000, 0.015, 0),
				bracket(75_000, 540_000, 0.035, 1_050),
				bracket(540_000, 1_000_000, 0.045, 17_325),
				bracket(1_000_000, noUpperBound, 0.0575, 38_025),
			},
		},
		ForeignSurchargeRate: decimal.NewFromFloat(0.07),
		Concessions: []ConcessionRule{
			{
				Code: "qld_home",
				Name: "Home concession",
				Predicates: []Predicate{
					requireOwnerOccupier(),
					requirePrincipalHome(),
					requireDwelling(),
				},
				Amount: cappedRelief(7_175),
			},
			{
				Code: "qld_first_home",
				Name: "First home concession",
				Predicates: []Predicate{
					requireOwnerOccupier(),
					requirePrincipalHome(),
					requireFirstHomeBuyer(),
					requireDwelling(),
					maxPrice(550_000),
				},
				Amount: cappedRelief(15_925),
			},
		},
		Grants: []GrantRule{
			{
				Code: "qld_fhog",
				Name: "First Home Owner Grant",
				Predicates: []Predicate{
					requireFirstHomeBuyer(),
					requireOwnerOccupier(),
					requirePrincipalHome(),
					requireNotForeign(),
					requireNewDwelling(),
					maxPrice(750_000),
				},
				Amount: flatGrant(15_000),
			},
			{
				Code: "qld_building_boost",
				Name: "Regional Home Building Boost Grant",
				Predicates: []Predicate{
					requireOwnerOccupier(),
					requirePrincipalHome(),
					acquisitionIn(domain.AcquisitionNew, domain.AcquisitionHouseAndLand),
					maxPrice(750_000),
				},
				Amount: flatGrant(5_000),
			},
		},
	}
}
