// Package config loads and validates profile snapshot files: the combined
// buyer/property/loan/seller record plus the wizard position, as persisted
// by whatever session layer sits above the core. The core itself never
// touches storage; it only ever sees the parsed snapshot.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/stampcalc/stampcalc/internal/domain"
	"gopkg.in/yaml.v3"
)

// Amount is a currency value as stored in snapshot files. Historic sessions
// saved amounts as display strings ("$650,000"); those coerce to a clean
// decimal, and anything unparseable coerces to zero rather than failing the
// whole load.
type Amount struct {
	decimal.Decimal
}

// UnmarshalYAML implements yaml.Unmarshaler with backward-compatible
// coercion.
func (a *Amount) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		a.Decimal = decimal.Zero
		return nil
	}
	raw := strings.TrimSpace(value.Value)
	raw = strings.TrimPrefix(raw, "$")
	raw = strings.ReplaceAll(raw, ",", "")
	if raw == "" {
		a.Decimal = decimal.Zero
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		a.Decimal = decimal.Zero
		return nil
	}
	a.Decimal = d
	return nil
}

// Snapshot is a parsed profile snapshot.
type Snapshot struct {
	Resumed  bool
	Profile  domain.Profile
	Position domain.WizardPosition
}

// Raw file layout. Money fields use Amount for legacy coercion; everything
// else decodes straight into the domain enums.

type rawSnapshot struct {
	Resumed  bool        `yaml:"resumed"`
	Profile  rawProfile  `yaml:"profile"`
	Position rawPosition `yaml:"position"`
}

type rawProfile struct {
	Buyer    rawBuyer    `yaml:"buyer"`
	Property rawProperty `yaml:"property"`
	Loan     rawLoan     `yaml:"loan"`
	Seller   rawSeller   `yaml:"seller"`
}

type rawBuyer struct {
	Type           domain.BuyerType  `yaml:"type"`
	PrincipalHome  bool              `yaml:"principal_home"`
	Residency      domain.Residency  `yaml:"residency"`
	FirstHomeBuyer bool              `yaml:"first_home_buyer"`
	OwnedLastFive  bool              `yaml:"owned_last_five"`
	HasPensionCard bool              `yaml:"has_pension_card"`
	AnnualIncome   Amount            `yaml:"annual_income"`
	Dependants     int               `yaml:"dependants"`
	Savings        Amount            `yaml:"available_savings"`
	NeedsLoan      domain.BoolAnswer `yaml:"needs_loan"`
}

type rawProperty struct {
	Region      string                  `yaml:"region"`
	Category    domain.PropertyCategory `yaml:"category"`
	Acquisition domain.AcquisitionType  `yaml:"acquisition"`
	Price       Amount                  `yaml:"price"`
	Regional    bool                    `yaml:"regional"`
}

type rawLoan struct {
	Deposit          Amount `yaml:"deposit"`
	TermYears        int    `yaml:"term_years"`
	Rate             Amount `yaml:"rate"`
	Type             string `yaml:"type"`
	EstablishmentFee Amount `yaml:"establishment_fee"`
	SettlementFee    Amount `yaml:"settlement_fee"`
}

type rawSeller struct {
	CouncilRatesAnnual    Amount `yaml:"council_rates_annual"`
	WaterRatesAnnual      Amount `yaml:"water_rates_annual"`
	StrataFeesQuarterly   Amount `yaml:"strata_fees_quarterly"`
	LandTransferFee       Amount `yaml:"land_transfer_fee"`
	LegalFees             Amount `yaml:"legal_fees"`
	InspectionFee         Amount `yaml:"inspection_fee"`
	ConstructionStarted   bool   `yaml:"construction_started"`
	DutiableValueOverride Amount `yaml:"dutiable_value_override"`
}

type rawPosition struct {
	Sections             map[domain.SectionID]domain.SectionState `yaml:"sections"`
	LoanSectionVisible   *bool                                    `yaml:"loan_section_visible"`
	SellerSectionVisible *bool                                    `yaml:"seller_section_visible"`
}

// InputParser handles parsing of snapshot files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a snapshot from a YAML file. The region must be known;
// full value validation (positive price, enum domains) happens when the
// calculation engine runs, since a mid-wizard snapshot is legitimately
// incomplete.
func (ip *InputParser) LoadFromFile(filename string) (*Snapshot, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse parses snapshot YAML.
func (ip *InputParser) Parse(data []byte) (*Snapshot, error) {
	var raw rawSnapshot
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	region, err := domain.ParseRegion(raw.Profile.Property.Region)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		Resumed: raw.Resumed,
		Profile: domain.Profile{
			Buyer: domain.BuyerProfile{
				Type:             raw.Profile.Buyer.Type,
				PrincipalHome:    raw.Profile.Buyer.PrincipalHome,
				Residency:        raw.Profile.Buyer.Residency,
				FirstHomeBuyer:   raw.Profile.Buyer.FirstHomeBuyer,
				OwnedLastFive:    raw.Profile.Buyer.OwnedLastFive,
				HasPensionCard:   raw.Profile.Buyer.HasPensionCard,
				AnnualIncome:     raw.Profile.Buyer.AnnualIncome.Decimal,
				Dependants:       raw.Profile.Buyer.Dependants,
				AvailableSavings: raw.Profile.Buyer.Savings.Decimal,
				NeedsLoan:        normaliseAnswer(raw.Profile.Buyer.NeedsLoan, raw.Resumed),
			},
			Property: domain.PropertyProfile{
				Region:      region,
				Category:    raw.Profile.Property.Category,
				Acquisition: raw.Profile.Property.Acquisition,
				Price:       raw.Profile.Property.Price.Decimal,
				Regional:    raw.Profile.Property.Regional,
			},
			Loan: domain.LoanProfile{
				Deposit:          raw.Profile.Loan.Deposit.Decimal,
				TermYears:        raw.Profile.Loan.TermYears,
				Rate:             raw.Profile.Loan.Rate.Decimal,
				Type:             raw.Profile.Loan.Type,
				EstablishmentFee: raw.Profile.Loan.EstablishmentFee.Decimal,
				SettlementFee:    raw.Profile.Loan.SettlementFee.Decimal,
			},
			Seller: domain.SellerDisclosure{
				CouncilRatesAnnual:    raw.Profile.Seller.CouncilRatesAnnual.Decimal,
				WaterRatesAnnual:      raw.Profile.Seller.WaterRatesAnnual.Decimal,
				StrataFeesQuarterly:   raw.Profile.Seller.StrataFeesQuarterly.Decimal,
				LandTransferFee:       raw.Profile.Seller.LandTransferFee.Decimal,
				LegalFees:             raw.Profile.Seller.LegalFees.Decimal,
				InspectionFee:         raw.Profile.Seller.InspectionFee.Decimal,
				ConstructionStarted:   raw.Profile.Seller.ConstructionStarted,
				DutiableValueOverride: raw.Profile.Seller.DutiableValueOverride.Decimal,
			},
		},
		Position: normalisePosition(raw.Position),
	}
	return snap, nil
}

// normaliseAnswer keeps a stale confirmed answer from a resumed session from
// masquerading as current: a resumed snapshot's answer without an explicit
// state is only a suggestion until the user re-confirms it.
func normaliseAnswer(a domain.BoolAnswer, resumed bool) domain.BoolAnswer {
	if a.State != "" {
		return a
	}
	if resumed {
		return domain.SuggestedBool(a.Value)
	}
	return domain.UnansweredBool()
}

func normalisePosition(raw rawPosition) domain.WizardPosition {
	pos := domain.NewWizardPosition()
	for id, state := range raw.Sections {
		if state.Status == "" {
			state.Status = domain.SectionNotStarted
		}
		pos = pos.WithSection(id, state)
	}
	if raw.LoanSectionVisible != nil {
		pos.LoanSectionVisible = *raw.LoanSectionVisible
	}
	if raw.SellerSectionVisible != nil {
		pos.SellerSectionVisible = *raw.SellerSectionVisible
	}
	return pos
}
