package rules

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/stampcalc/stampcalc/internal/domain"
)

// Shared eligibility predicates. Each returns ok=false with the reason shown
// to the user; the resolver stops at the first failure.

func requireOwnerOccupier() Predicate {
	return func(ctx EvalContext) (bool, string) {
		if ctx.Buyer.Type != domain.BuyerOwnerOccupier {
			return false, "available to owner-occupiers only"
		}
		return true, ""
	}
}

func requirePrincipalHome() Predicate {
	return func(ctx EvalContext) (bool, string) {
		if !ctx.Buyer.PrincipalHome {
			return false, "the property must be your principal place of residence"
		}
		return true, ""
	}
}

func requireNotForeign() Predicate {
	return func(ctx EvalContext) (bool, string) {
		if ctx.Buyer.Residency.Foreign() {
			return false, "not available to foreign purchasers"
		}
		return true, ""
	}
}

func requireFirstHomeBuyer() Predicate {
	return func(ctx EvalContext) (bool, string) {
		if !ctx.Buyer.FirstHomeBuyer {
			return false, "available to first home buyers only"
		}
		return true, ""
	}
}

func requirePensionCard() Predicate {
	return func(ctx EvalContext) (bool, string) {
		if !ctx.Buyer.HasPensionCard {
			return false, "requires an eligible pension or concession card"
		}
		return true, ""
	}
}

func requireNoPriorOwnership() Predicate {
	return func(ctx EvalContext) (bool, string) {
		if ctx.Buyer.OwnedLastFive {
			return false, "not available if you owned property in the last five years"
		}
		return true, ""
	}
}

func maxPrice(cap int64) Predicate {
	capDec := decimal.NewFromInt(cap)
	return func(ctx EvalContext) (bool, string) {
		if ctx.Property.Price.GreaterThan(capDec) {
			return false, fmt.Sprintf("price exceeds the $%s cap", capDec.StringFixed(0))
		}
		return true, ""
	}
}

func requireNewDwelling() Predicate {
	return func(ctx EvalContext) (bool, string) {
		if !ctx.Property.Acquisition.NewDwelling() {
			return false, "available for new homes only"
		}
		return true, ""
	}
}

func requireDwelling() Predicate {
	return func(ctx EvalContext) (bool, string) {
		if ctx.Property.Category == domain.CategoryLand {
			return false, "vacant land is not an eligible property type"
		}
		return true, ""
	}
}

func acquisitionIn(types ...domain.AcquisitionType) Predicate {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	label := strings.Join(names, " or ")
	return func(ctx EvalContext) (bool, string) {
		for _, t := range types {
			if ctx.Property.Acquisition == t {
				return true, ""
			}
		}
		return false, fmt.Sprintf("available for %s purchases only", label)
	}
}

func requireRegionalLocality() Predicate {
	return func(ctx EvalContext) (bool, string) {
		if !ctx.Property.Regional {
			return false, "the property must be outside the metropolitan area"
		}
		return true, ""
	}
}

// incomeUnderCap means-tests household income; the cap rises per dependant.
func incomeUnderCap(base, perDependant int64) Predicate {
	baseDec := decimal.NewFromInt(base)
	perDec := decimal.NewFromInt(perDependant)
	return func(ctx EvalContext) (bool, string) {
		cap := baseDec.Add(perDec.Mul(decimal.NewFromInt(int64(ctx.Buyer.Dependants))))
		if ctx.Buyer.AnnualIncome.GreaterThan(cap) {
			return false, fmt.Sprintf("household income exceeds the $%s means test threshold", cap.StringFixed(0))
		}
		return true, ""
	}
}

// constructionNotStarted only fails once the seller disclosure says building
// has begun. While the seller section is unanswered it passes; the amount
// function reports the concession pending instead.
func constructionNotStarted() Predicate {
	return func(ctx EvalContext) (bool, string) {
		if ctx.SellerKnown && ctx.Seller.ConstructionStarted {
			return false, "construction has already started on the land"
		}
		return true, ""
	}
}

// Amount helpers.

// fullRelief wipes the whole base duty.
func fullRelief() ConcessionAmount {
	return func(_ EvalContext, baseDuty decimal.Decimal) (decimal.Decimal, bool) {
		return baseDuty, false
	}
}

// fullReliefAwaitingSeller wipes the base duty but stays pending until the
// seller section has confirmed the disclosure it depends on.
func fullReliefAwaitingSeller() ConcessionAmount {
	return func(ctx EvalContext, baseDuty decimal.Decimal) (decimal.Decimal, bool) {
		if !ctx.SellerKnown {
			return decimal.Zero, true
		}
		return baseDuty, false
	}
}

// percentRelief returns a fixed share of the base duty.
func percentRelief(pct float64) ConcessionAmount {
	share := decimal.NewFromFloat(pct)
	return func(_ EvalContext, baseDuty decimal.Decimal) (decimal.Decimal, bool) {
		return baseDuty.Mul(share).Round(2), false
	}
}

// cappedRelief wipes duty up to a flat ceiling.
func cappedRelief(cap int64) ConcessionAmount {
	capDec := decimal.NewFromInt(cap)
	return func(_ EvalContext, baseDuty decimal.Decimal) (decimal.Decimal, bool) {
		return decimal.Min(baseDuty, capDec), false
	}
}

// slidingRelief gives full relief at or below fullTo, tapering linearly to
// nothing at cutoff.
func slidingRelief(fullTo, cutoff int64) ConcessionAmount {
	fullDec := decimal.NewFromInt(fullTo)
	cutDec := decimal.NewFromInt(cutoff)
	span := cutDec.Sub(fullDec)
	return func(ctx EvalContext, baseDuty decimal.Decimal) (decimal.Decimal, bool) {
		price := ctx.Property.Price
		if price.LessThanOrEqual(fullDec) {
			return baseDuty, false
		}
		if price.GreaterThan(cutDec) {
			return decimal.Zero, false
		}
		return baseDuty.Mul(cutDec.Sub(price)).Div(span).Round(2), false
	}
}

// flatGrant pays a fixed amount.
func flatGrant(amount int64) func(EvalContext) decimal.Decimal {
	amt := decimal.NewFromInt(amount)
	return func(EvalContext) decimal.Decimal { return amt }
}
