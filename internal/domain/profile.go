package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// BuyerType distinguishes an owner-occupier from an investor.
type BuyerType string

const (
	BuyerOwnerOccupier BuyerType = "owner_occupier"
	BuyerInvestor      BuyerType = "investor"
)

// Residency is the buyer's residency status for surcharge purposes.
type Residency string

const (
	ResidencyCitizen   Residency = "citizen"
	ResidencyPermanent Residency = "permanent_resident"
	ResidencyForeign   Residency = "foreign"
)

// Foreign reports whether the foreign purchaser surcharge applies.
func (r Residency) Foreign() bool { return r == ResidencyForeign }

// PropertyCategory is the dwelling category being purchased.
type PropertyCategory string

const (
	CategoryHouse     PropertyCategory = "house"
	CategoryApartment PropertyCategory = "apartment"
	CategoryTownhouse PropertyCategory = "townhouse"
	CategoryLand      PropertyCategory = "land"
)

// AcquisitionType is how the property is being acquired.
type AcquisitionType string

const (
	AcquisitionExisting     AcquisitionType = "existing"
	AcquisitionNew          AcquisitionType = "new"
	AcquisitionOffThePlan   AcquisitionType = "off_the_plan"
	AcquisitionHouseAndLand AcquisitionType = "house_and_land"
	AcquisitionVacantLand   AcquisitionType = "vacant_land"
)

// NewDwelling reports whether the acquisition counts as a new home for
// grant purposes.
func (a AcquisitionType) NewDwelling() bool {
	switch a {
	case AcquisitionNew, AcquisitionOffThePlan, AcquisitionHouseAndLand:
		return true
	}
	return false
}

// BuyerProfile captures everything the rule tables need to know about who is
// buying. Fields are zero-valued until the wizard asks for them; whether a
// field counts as answered is decided by wizard position, not value presence.
type BuyerProfile struct {
	Type             BuyerType       `yaml:"type" json:"type"`
	PrincipalHome    bool            `yaml:"principal_home" json:"principalHome"`
	Residency        Residency       `yaml:"residency" json:"residency"`
	FirstHomeBuyer   bool            `yaml:"first_home_buyer" json:"firstHomeBuyer"`
	OwnedLastFive    bool            `yaml:"owned_last_five" json:"ownedLastFive"` // ACT only
	HasPensionCard   bool            `yaml:"has_pension_card" json:"hasPensionCard"`
	AnnualIncome     decimal.Decimal `yaml:"annual_income" json:"annualIncome"` // ACT only
	Dependants       int             `yaml:"dependants" json:"dependants"`      // ACT only
	AvailableSavings decimal.Decimal `yaml:"available_savings" json:"availableSavings"`
	NeedsLoan        BoolAnswer      `yaml:"needs_loan" json:"needsLoan"`
}

// PropertyProfile describes the property being purchased.
type PropertyProfile struct {
	Region      Region           `yaml:"region" json:"region"`
	Category    PropertyCategory `yaml:"category" json:"category"`
	Acquisition AcquisitionType  `yaml:"acquisition" json:"acquisition"`
	Price       decimal.Decimal  `yaml:"price" json:"price"`
	// Regional is the metro/non-metro locality flag; only Victoria's grant
	// rules read it.
	Regional bool `yaml:"regional" json:"regional"`
}

// LoanProfile is only populated when the buyer needs a loan.
type LoanProfile struct {
	Deposit          decimal.Decimal `yaml:"deposit" json:"deposit"`
	TermYears        int             `yaml:"term_years" json:"termYears"`
	Rate             decimal.Decimal `yaml:"rate" json:"rate"`
	Type             string          `yaml:"type" json:"type"`
	EstablishmentFee decimal.Decimal `yaml:"establishment_fee" json:"establishmentFee"`
	SettlementFee    decimal.Decimal `yaml:"settlement_fee" json:"settlementFee"`
}

// SellerDisclosure holds the figures only the seller side can provide.
type SellerDisclosure struct {
	CouncilRatesAnnual  decimal.Decimal `yaml:"council_rates_annual" json:"councilRatesAnnual"`
	WaterRatesAnnual    decimal.Decimal `yaml:"water_rates_annual" json:"waterRatesAnnual"`
	StrataFeesQuarterly decimal.Decimal `yaml:"strata_fees_quarterly" json:"strataFeesQuarterly"`
	LandTransferFee     decimal.Decimal `yaml:"land_transfer_fee" json:"landTransferFee"`
	LegalFees           decimal.Decimal `yaml:"legal_fees" json:"legalFees"`
	InspectionFee       decimal.Decimal `yaml:"inspection_fee" json:"inspectionFee"`
	ConstructionStarted bool            `yaml:"construction_started" json:"constructionStarted"`
	// DutiableValueOverride replaces the price as the duty base for
	// house-and-land packages, and for off-the-plan purchases in Victoria.
	// Zero means no override.
	DutiableValueOverride decimal.Decimal `yaml:"dutiable_value_override" json:"dutiableValueOverride"`
}

// Profile is the full snapshot the core computes from. Immutable per
// invocation; the wizard layer replaces it wholesale on every mutation.
type Profile struct {
	Buyer    BuyerProfile     `yaml:"buyer" json:"buyer"`
	Property PropertyProfile  `yaml:"property" json:"property"`
	Loan     LoanProfile      `yaml:"loan" json:"loan"`
	Seller   SellerDisclosure `yaml:"seller" json:"seller"`
}

// Validate rejects values outside their enumerated domains. Zero values are
// permitted everywhere except price and region: a field the wizard has not
// asked yet is legitimately empty.
func (p *Profile) Validate() error {
	if !p.Property.Region.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownRegion, p.Property.Region)
	}
	if p.Property.Price.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("invalid input: price must be positive, got %s", p.Property.Price)
	}
	switch p.Buyer.Type {
	case "", BuyerOwnerOccupier, BuyerInvestor:
	default:
		return fmt.Errorf("invalid input: unknown buyer type %q", p.Buyer.Type)
	}
	switch p.Buyer.Residency {
	case "", ResidencyCitizen, ResidencyPermanent, ResidencyForeign:
	default:
		return fmt.Errorf("invalid input: unknown residency %q", p.Buyer.Residency)
	}
	switch p.Property.Category {
	case "", CategoryHouse, CategoryApartment, CategoryTownhouse, CategoryLand:
	default:
		return fmt.Errorf("invalid input: unknown property category %q", p.Property.Category)
	}
	switch p.Property.Acquisition {
	case "", AcquisitionExisting, AcquisitionNew, AcquisitionOffThePlan,
		AcquisitionHouseAndLand, AcquisitionVacantLand:
	default:
		return fmt.Errorf("invalid input: unknown acquisition type %q", p.Property.Acquisition)
	}
	if p.Loan.Deposit.IsNegative() {
		return fmt.Errorf("invalid input: deposit cannot be negative, got %s", p.Loan.Deposit)
	}
	if p.Buyer.Dependants < 0 {
		return fmt.Errorf("invalid input: dependants cannot be negative, got %d", p.Buyer.Dependants)
	}
	return nil
}
