// Package calculation turns a profile snapshot into a cost breakdown: base
// duty, concession and grant resolution, surcharge and the gated upfront
// totals. Everything here is a pure function of its inputs, recomputed fresh
// on every call; nothing caches and nothing mutates a prior result.
package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/stampcalc/stampcalc/internal/branching"
	"github.com/stampcalc/stampcalc/internal/domain"
	"github.com/stampcalc/stampcalc/internal/rules"
)

var four = decimal.NewFromInt(4)

// Engine orchestrates the duty, concession and grant calculators into a
// single upfront cost breakdown.
type Engine struct {
	Duty *DutyCalculator
}

// NewEngine creates a new calculation engine.
func NewEngine() *Engine {
	return &Engine{Duty: NewDutyCalculator()}
}

// Breakdown computes the full upfront cost picture for a profile at a wizard
// position. Loan and seller components only count once their owning section
// is complete; values carried over from a resumed session must not be
// double-counted before the user has walked the section.
func (e *Engine) Breakdown(p domain.Profile, pos domain.WizardPosition) (*domain.CostBreakdown, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	rr, err := rules.ForRegion(p.Property.Region)
	if err != nil {
		return nil, err
	}

	sellerKnown := pos.SectionComplete(domain.SectionSeller)
	price := p.Property.Price

	dutiable := price
	if sellerKnown &&
		branching.AsksDutiableOverride(p.Property.Region, p.Property.Acquisition) &&
		p.Seller.DutiableValueOverride.GreaterThan(decimal.Zero) {
		dutiable = p.Seller.DutiableValueOverride
	}

	baseDuty, err := e.Duty.apply(dutiable, rr.Duty)
	if err != nil {
		return nil, fmt.Errorf("duty calculation for %s: %w", p.Property.Region, err)
	}

	ctx := rules.EvalContext{
		Buyer:       p.Buyer,
		Property:    p.Property,
		Seller:      p.Seller,
		SellerKnown: sellerKnown,
	}

	cb := &domain.CostBreakdown{
		Region:        p.Property.Region,
		Price:         price,
		DutiableValue: dutiable,
		BaseDuty:      baseDuty,
		Concessions:   ResolveConcessions(rr, ctx, baseDuty),
		Grants:        ResolveGrants(rr, ctx),
	}

	if p.Buyer.Residency.Foreign() {
		cb.ForeignSurcharge = price.Mul(rr.ForeignSurchargeRate).Round(2)
	}

	// Net duty: base minus the selected concession, plus the surcharge. The
	// surcharge is never subject to any concession.
	net := baseDuty
	if c := cb.AppliedConcession(); c != nil {
		net = net.Sub(c.Amount)
	}
	if net.IsNegative() {
		net = decimal.Zero
	}
	net = net.Add(cb.ForeignSurcharge)
	cb.NetDuty = net.Round(2)

	total := cb.NetDuty
	if g := cb.AppliedGrant(); g != nil {
		total = total.Sub(g.Amount)
	}

	if branching.NoLoanConfirmed(p, pos) {
		// Cash purchase: the whole price is an upfront cost.
		cb.CashPrice = price
		total = total.Add(price)
	} else if pos.SectionComplete(domain.SectionLoan) {
		cb.LoanCosts = p.Loan.Deposit.
			Add(p.Loan.SettlementFee).
			Add(p.Loan.EstablishmentFee)
		total = total.Add(cb.LoanCosts)
	}

	if sellerKnown {
		cb.SellerFees = p.Seller.LandTransferFee.
			Add(p.Seller.LegalFees).
			Add(p.Seller.InspectionFee)
		total = total.Add(cb.SellerFees)

		cb.OngoingAnnual = p.Seller.CouncilRatesAnnual.
			Add(p.Seller.WaterRatesAnnual).
			Add(p.Seller.StrataFeesQuarterly.Mul(four)).
			Round(2)
	}

	cb.Total = total.Round(2)
	return cb, nil
}
