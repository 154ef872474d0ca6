package branching

import (
	"github.com/stampcalc/stampcalc/internal/domain"
)

// NoLoanConfirmed reports whether the user has explicitly settled the loan
// question with "no". A suggested default is not enough: the answer must be
// confirmed and the user must have moved past the loan-decision step (or
// finished the buyer section).
func NoLoanConfirmed(p domain.Profile, pos domain.WizardPosition) bool {
	if !p.Buyer.NeedsLoan.ConfirmedNo() {
		return false
	}
	return pos.PastStep(domain.SectionBuyer, NeedsLoanStep(p.Property.Region))
}

// LoanRequired reports whether the loan section is on the required path.
func LoanRequired(p domain.Profile, pos domain.WizardPosition) bool {
	if !pos.LoanSectionVisible {
		return false
	}
	return !NoLoanConfirmed(p, pos)
}

// RequiredFields resolves the ordered set of questions this profile has to
// answer from this position. Both the cost engine and the progress tracker
// call this; it is the only place the branching predicates live.
func RequiredFields(p domain.Profile, pos domain.WizardPosition) []FieldRef {
	region := p.Property.Region
	fields := make([]FieldRef, 0, 28)

	add := func(key FieldKey, section domain.SectionID, step int) {
		fields = append(fields, FieldRef{Key: key, Section: section, Step: step})
	}

	// Property section.
	add(FieldRegion, domain.SectionProperty, 0)
	add(FieldCategory, domain.SectionProperty, 1)
	add(FieldAcquisition, domain.SectionProperty, 2)
	add(FieldPrice, domain.SectionProperty, 3)
	if AsksLocality(region) {
		add(FieldLocality, domain.SectionProperty, 4)
	}

	// Buyer section.
	add(FieldBuyerType, domain.SectionBuyer, buyerStepType)
	add(FieldPrincipalHome, domain.SectionBuyer, buyerStepPrincipalHome)
	add(FieldResidency, domain.SectionBuyer, buyerStepResidency)
	add(FieldFirstHome, domain.SectionBuyer, buyerStepFirstHome)
	if region == domain.RegionACT {
		add(FieldPriorOwnership, domain.SectionBuyer, buyerStepPriorOwnershipACT)
		add(FieldIncome, domain.SectionBuyer, buyerStepIncomeACT)
		add(FieldPensionCard, domain.SectionBuyer, buyerStepPensionCardACT)
		add(FieldDependants, domain.SectionBuyer, buyerStepDependantsACT)
		add(FieldSavings, domain.SectionBuyer, buyerStepSavingsACT)
		add(FieldNeedsLoan, domain.SectionBuyer, buyerStepNeedsLoanACT)
	} else {
		add(FieldSavings, domain.SectionBuyer, buyerStepSavingsStd)
		add(FieldPensionCard, domain.SectionBuyer, buyerStepPensionCardStd)
		add(FieldNeedsLoan, domain.SectionBuyer, buyerStepNeedsLoanStd)
	}

	// Loan section, unless the user has confirmed they pay cash.
	if LoanRequired(p, pos) {
		add(FieldDeposit, domain.SectionLoan, 0)
		add(FieldTerm, domain.SectionLoan, 1)
		add(FieldRate, domain.SectionLoan, 2)
		add(FieldLoanType, domain.SectionLoan, 3)
		add(FieldEstablishmentFee, domain.SectionLoan, 4)
		add(FieldSettlementFee, domain.SectionLoan, 5)
	}

	// Seller section.
	if pos.SellerSectionVisible {
		add(FieldCouncilRates, domain.SectionSeller, 0)
		add(FieldWaterRates, domain.SectionSeller, 1)
		add(FieldStrataFees, domain.SectionSeller, 2)
		add(FieldLandTransferFee, domain.SectionSeller, 3)
		add(FieldLegalFees, domain.SectionSeller, 4)
		add(FieldInspectionFee, domain.SectionSeller, 5)
		if AsksConstructionStart(p.Property.Acquisition) {
			add(FieldConstructionStart, domain.SectionSeller, 6)
		}
		if AsksDutiableOverride(region, p.Property.Acquisition) {
			add(FieldDutiableValue, domain.SectionSeller, 7)
		}
	}

	return fields
}
