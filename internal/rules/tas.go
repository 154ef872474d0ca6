package rules

import (
	"github.com/shopspring/decimal"
	"github.com/stampcalc/stampcalc/internal/domain"
)

// tasmaniaRules builds the TAS rule table. Both concessions are a 50% duty
// discount and target different buyers (first home buyers of established
// homes, pensioners downsizing); when a buyer qualifies for both, the amount
// comparison decides which is kept.
func tasmaniaRules() RegionRules {
	return RegionRules{
		Code: domain.RegionTAS,
		Duty: DutyRule{
			Brackets: []DutyBracket{
				bracket(0, 3_000, 0, 50),
				bracket(3_000, 25_000, 0.0175, 50),
				bracket(25_000, 75_000, 0.0225, 435),
				bracket(75_000, 200_000, 0.035, 1_560),
				bracket(200_000, 375_000, 0.040, 5_935),
				bracket(375_000, 725_000, 0.0425, 12_935),
				bracket(725_000, noUpperBound, 0.045, 27_810),
			},
		},
		ForeignSurchargeRate: decimal.NewFromFloat(0.08),
		Concessions: []ConcessionRule{
			{
				Code: "tas_fhb_established",
				Name: "First home buyer duty discount",
				Predicates: []Predicate{
					requireOwnerOccupier(),
					requirePrincipalHome(),
					requireFirstHomeBuyer(),
					acquisitionIn(domain.AcquisitionExisting),
					maxPrice(600_000),
				},
				Amount: percentRelief(0.5),
			},
			{
				Code: "tas_pensioner_downsize",
				Name: "Pensioner downsizing duty discount",
				Predicates: []Predicate{
					requirePensionCard(),
					requireOwnerOccupier(),
					requirePrincipalHome(),
					maxPrice(600_000),
				},
				Amount: percentRelief(0.5),
			},
		},
		Grants: []GrantRule{
			{
				Code: "tas_fhog",
				Name: "First Home Owner Grant",
				Predicates: []Predicate{
					requireFirstHomeBuyer(),
					requireOwnerOccupier(),
					requirePrincipalHome(),
					requireNotForeign(),
					requireNewDwelling(),
				},
				Amount: flatGrant(30_000),
			},
		},
	}
}
