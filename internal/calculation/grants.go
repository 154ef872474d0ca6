package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/stampcalc/stampcalc/internal/domain"
	"github.com/stampcalc/stampcalc/internal/rules"
)

// ResolveGrants evaluates every grant type the region defines. At most one
// grant is ever applied: when two types are simultaneously eligible the
// higher amount wins and the other is reported "superseded by higher grant",
// which the rendering layer words differently from criteria-not-met.
func ResolveGrants(rr rules.RegionRules, ctx rules.EvalContext) []domain.GrantResult {
	results := make([]domain.GrantResult, 0, len(rr.Grants))

	for _, rule := range rr.Grants {
		res := domain.GrantResult{Code: rule.Code, Name: rule.Name}
		if ok, reason := evalPredicates(rule.Predicates, ctx); !ok {
			res.Reason = reason
			results = append(results, res)
			continue
		}
		res.Eligible = true
		res.Amount = rule.Amount(ctx)
		results = append(results, res)
	}

	best := -1
	for i, res := range results {
		if !res.Eligible || !res.Amount.GreaterThan(decimal.Zero) {
			continue
		}
		if best < 0 || res.Amount.GreaterThan(results[best].Amount) {
			best = i
		}
	}
	if best >= 0 {
		results[best].Applied = true
		for i := range results {
			if i == best || !results[i].Eligible {
				continue
			}
			results[i].Eligible = false
			results[i].Superseded = true
			results[i].Reason = domain.ReasonSupersededGrant
		}
	}

	return results
}
