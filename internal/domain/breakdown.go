package domain

import "github.com/shopspring/decimal"

// Reason strings reused across regions. Superseded is deliberately distinct
// from criteria-not-met: the rendering layer words them differently.
const (
	ReasonSupersededConcession = "superseded by higher concession"
	ReasonSupersededGrant      = "superseded by higher grant"
	ReasonAwaitingSeller       = "awaiting seller questions"
)

// ConcessionResult reports one concession rule's evaluation. Ineligibility is
// data, not an error: every rule defined for the region appears exactly once.
type ConcessionResult struct {
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Eligible   bool            `json:"eligible"`
	Applied    bool            `json:"applied"`
	Superseded bool            `json:"superseded"`
	// Pending marks a concession that passed its predicates but cannot be
	// valued until the seller section is answered.
	Pending bool   `json:"pending"`
	Reason  string `json:"reason,omitempty"`
}

// GrantResult reports one grant type's evaluation.
type GrantResult struct {
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Eligible   bool            `json:"eligible"`
	Applied    bool            `json:"applied"`
	Superseded bool            `json:"superseded"`
	Reason     string          `json:"reason,omitempty"`
}

// CostBreakdown is the full upfront cost picture. Always produced fresh from
// the four profiles, never mutated in place.
type CostBreakdown struct {
	Region        Region          `json:"region"`
	Price         decimal.Decimal `json:"price"`
	DutiableValue decimal.Decimal `json:"dutiableValue"`

	BaseDuty         decimal.Decimal    `json:"baseDuty"`
	Concessions      []ConcessionResult `json:"concessions"`
	Grants           []GrantResult      `json:"grants"`
	ForeignSurcharge decimal.Decimal    `json:"foreignSurcharge"`
	NetDuty          decimal.Decimal    `json:"netDuty"`

	// Gated components, zero until their owning section is complete.
	CashPrice  decimal.Decimal `json:"cashPrice"`
	LoanCosts  decimal.Decimal `json:"loanCosts"`
	SellerFees decimal.Decimal `json:"sellerFees"`

	Total decimal.Decimal `json:"total"`

	// OngoingAnnual summarises seller-disclosed recurring charges. Reported
	// beside the upfront total, never added to it.
	OngoingAnnual decimal.Decimal `json:"ongoingAnnual"`
}

// AppliedConcession returns the concession reflected in the net duty, if any.
func (cb *CostBreakdown) AppliedConcession() *ConcessionResult {
	for i := range cb.Concessions {
		if cb.Concessions[i].Applied {
			return &cb.Concessions[i]
		}
	}
	return nil
}

// AppliedGrant returns the grant reflected in the total, if any.
func (cb *CostBreakdown) AppliedGrant() *GrantResult {
	for i := range cb.Grants {
		if cb.Grants[i].Applied {
			return &cb.Grants[i]
		}
	}
	return nil
}
