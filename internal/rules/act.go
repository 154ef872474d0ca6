package rules

import (
	"github.com/shopspring/decimal"
	"github.com/stampcalc/stampcalc/internal/domain"
)

// australianCapitalTerritoryRules builds the ACT rule table. The ACT is the
// one region that means-tests its home buyer concession on household income
// and dependants and asks about prior five-year ownership; it pays no cash
// grant at all. Both concessions are full relief, so when a pensioner also
// passes the means test the tie falls to table order.
func australianCapitalTerritoryRules() RegionRules {
	return RegionRules{
		Code: domain.RegionACT,
		Duty: DutyRule{
			Brackets: []DutyBracket{
				bracket(0, 200_000, 0.012, 0),
				bracket(200_000, 300_000, 0.022, 2_400),
				bracket(300_000, 500_000, 0.034, 4_600),
				bracket(500_000, 750_000, 0.0432, 11_400),
				bracket(750_000, 1_000_000, 0.059, 22_200),
				bracket(1_000_000, 1_455_000, 0.064, 36_950),
				flatBracket(1_455_000, noUpperBound, 0.0454),
			},
		},
		ForeignSurchargeRate: decimal.NewFromFloat(0.04),
		Concessions: []ConcessionRule{
			{
				Code: "act_hbcs",
				Name: "Home buyer concession scheme",
				Predicates: []Predicate{
					requireOwnerOccupier(),
					requirePrincipalHome(),
					requireNoPriorOwnership(),
					incomeUnderCap(170_000, 3_300),
				},
				Amount: fullRelief(),
			},
			{
				Code: "act_pensioner",
				Name: "Pensioner duty concession",
				Predicates: []Predicate{
					requirePensionCard(),
					requireOwnerOccupier(),
					requirePrincipalHome(),
					maxPrice(1_000_000),
				},
				Amount: fullRelief(),
			},
		},
		Grants: nil,
	}
}
