package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/stampcalc/stampcalc/internal/domain"
	"github.com/stampcalc/stampcalc/internal/rules"
)

// ResolveConcessions evaluates every concession rule the region defines.
// Every rule appears exactly once in the result; ineligibility is data, not
// an error. Where more than one concession passes with a nonzero amount,
// the highest amount is kept and the rest are demoted to ineligible with the
// superseded reason, so the breakdown stays explainable.
func ResolveConcessions(rr rules.RegionRules, ctx rules.EvalContext, baseDuty decimal.Decimal) []domain.ConcessionResult {
	results := make([]domain.ConcessionResult, 0, len(rr.Concessions))

	for _, rule := range rr.Concessions {
		res := domain.ConcessionResult{Code: rule.Code, Name: rule.Name}
		if ok, reason := evalPredicates(rule.Predicates, ctx); !ok {
			res.Reason = reason
			results = append(results, res)
			continue
		}
		amount, pending := rule.Amount(ctx, baseDuty)
		res.Eligible = true
		if pending {
			res.Pending = true
			res.Reason = domain.ReasonAwaitingSeller
		} else {
			res.Amount = amount
		}
		results = append(results, res)
	}

	// Keep the highest-value candidate. Strict comparison means equal
	// amounts fall to table order, so no two rules ever tie for primary.
	best := -1
	for i, res := range results {
		if !res.Eligible || res.Pending || !res.Amount.GreaterThan(decimal.Zero) {
			continue
		}
		if best < 0 || res.Amount.GreaterThan(results[best].Amount) {
			best = i
		}
	}
	if best >= 0 {
		results[best].Applied = true
		for i := range results {
			if i == best || !results[i].Eligible || results[i].Pending {
				continue
			}
			if results[i].Amount.GreaterThan(decimal.Zero) {
				results[i].Eligible = false
				results[i].Superseded = true
				results[i].Reason = domain.ReasonSupersededConcession
			}
		}
	}

	return results
}

// evalPredicates runs an ordered predicate list; the first failure supplies
// the ineligibility reason.
func evalPredicates(preds []rules.Predicate, ctx rules.EvalContext) (bool, string) {
	for _, pred := range preds {
		if ok, reason := pred(ctx); !ok {
			return false, reason
		}
	}
	return true, ""
}
