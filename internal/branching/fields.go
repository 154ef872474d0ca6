// Package branching is the single source of truth for which questions a
// given buyer/property profile has to answer. Both the cost engine's rule
// tables and the progress tracker consult it; neither re-derives its own
// branching predicates.
package branching

import (
	"github.com/stampcalc/stampcalc/internal/domain"
)

// FieldKey names a single wizard question.
type FieldKey string

const (
	FieldRegion      FieldKey = "property.region"
	FieldCategory    FieldKey = "property.category"
	FieldAcquisition FieldKey = "property.acquisition"
	FieldPrice       FieldKey = "property.price"
	FieldLocality    FieldKey = "property.locality"

	FieldBuyerType      FieldKey = "buyer.type"
	FieldPrincipalHome  FieldKey = "buyer.principal_home"
	FieldResidency      FieldKey = "buyer.residency"
	FieldFirstHome      FieldKey = "buyer.first_home"
	FieldPriorOwnership FieldKey = "buyer.prior_ownership"
	FieldIncome         FieldKey = "buyer.income"
	FieldPensionCard    FieldKey = "buyer.pension_card"
	FieldDependants     FieldKey = "buyer.dependants"
	FieldSavings        FieldKey = "buyer.savings"
	FieldNeedsLoan      FieldKey = "buyer.needs_loan"

	FieldDeposit          FieldKey = "loan.deposit"
	FieldTerm             FieldKey = "loan.term"
	FieldRate             FieldKey = "loan.rate"
	FieldLoanType         FieldKey = "loan.type"
	FieldEstablishmentFee FieldKey = "loan.establishment_fee"
	FieldSettlementFee    FieldKey = "loan.settlement_fee"

	FieldCouncilRates      FieldKey = "seller.council_rates"
	FieldWaterRates        FieldKey = "seller.water_rates"
	FieldStrataFees        FieldKey = "seller.strata_fees"
	FieldLandTransferFee   FieldKey = "seller.land_transfer_fee"
	FieldLegalFees         FieldKey = "seller.legal_fees"
	FieldInspectionFee     FieldKey = "seller.inspection_fee"
	FieldConstructionStart FieldKey = "seller.construction_started"
	FieldDutiableValue     FieldKey = "seller.dutiable_value"
)

// FieldRef ties a question to the section and step index that asks it. The
// step index is what the progress tracker compares against the wizard
// position to decide answered-ness.
type FieldRef struct {
	Key     FieldKey
	Section domain.SectionID
	Step    int
}

// Buyer-section step indices. The ACT buyer section inserts its
// prior-ownership and means-test questions after the first-home question,
// which shifts the pension-card question to step 6; every other region asks
// it at step 5. The two tables are kept explicit because that off-by-one has
// bitten before.
const (
	buyerStepType          = 0
	buyerStepPrincipalHome = 1
	buyerStepResidency     = 2
	buyerStepFirstHome     = 3

	buyerStepSavingsStd     = 4
	buyerStepPensionCardStd = 5
	buyerStepNeedsLoanStd   = 6

	buyerStepPriorOwnershipACT = 4
	buyerStepIncomeACT         = 5
	buyerStepPensionCardACT    = 6
	buyerStepDependantsACT     = 7
	buyerStepSavingsACT        = 8
	buyerStepNeedsLoanACT      = 9
)

// PensionCardStep returns the buyer-section step that asks for the pension
// card, which differs between the ACT and everywhere else.
func PensionCardStep(region domain.Region) int {
	if region == domain.RegionACT {
		return buyerStepPensionCardACT
	}
	return buyerStepPensionCardStd
}

// NeedsLoanStep returns the buyer-section step of the loan-needed decision.
func NeedsLoanStep(region domain.Region) int {
	if region == domain.RegionACT {
		return buyerStepNeedsLoanACT
	}
	return buyerStepNeedsLoanStd
}

// AsksPriorOwnership reports whether the region's buyer section asks about
// property ownership in the previous five years. Only the ACT does.
func AsksPriorOwnership(region domain.Region) bool {
	return region == domain.RegionACT
}

// AsksIncomeTest reports whether the region means-tests its home buyer
// concession on income and dependants. Only the ACT does.
func AsksIncomeTest(region domain.Region) bool {
	return region == domain.RegionACT
}

// AsksLocality reports whether the region's property section asks the
// metro/non-metro question. Only Victoria's grant rules read it.
func AsksLocality(region domain.Region) bool {
	return region == domain.RegionVIC
}

// AsksConstructionStart reports whether the seller section needs the
// construction-start question for this acquisition type.
func AsksConstructionStart(acq domain.AcquisitionType) bool {
	return acq == domain.AcquisitionOffThePlan || acq == domain.AcquisitionHouseAndLand
}

// AsksDutiableOverride reports whether the seller section collects a dutiable
// value override: house-and-land packages everywhere, off-the-plan in
// Victoria only.
func AsksDutiableOverride(region domain.Region, acq domain.AcquisitionType) bool {
	if acq == domain.AcquisitionHouseAndLand {
		return true
	}
	return acq == domain.AcquisitionOffThePlan && region == domain.RegionVIC
}
