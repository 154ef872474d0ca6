package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/stampcalc/stampcalc/internal/branching"
	"github.com/stampcalc/stampcalc/internal/domain"
)

// question is the prompt text and entry hint for one wizard field.
type question struct {
	Prompt string
	Hint   string
}

var questions = map[branching.FieldKey]question{
	branching.FieldRegion:      {"Which state or territory is the property in?", "nsw, vic, qld, wa, sa, tas, act, nt"},
	branching.FieldCategory:    {"What kind of property is it?", "house, apartment, townhouse, land"},
	branching.FieldAcquisition: {"How is it being acquired?", "existing, new, off_the_plan, house_and_land, vacant_land"},
	branching.FieldPrice:       {"What is the purchase price?", "e.g. 650000 or $650,000"},
	branching.FieldLocality:    {"Is the property outside the metropolitan area?", "y/n"},

	branching.FieldBuyerType:      {"Are you buying to live in or to invest?", "owner_occupier, investor"},
	branching.FieldPrincipalHome:  {"Will this be your principal place of residence?", "y/n"},
	branching.FieldResidency:      {"What is your residency status?", "citizen, permanent, foreign"},
	branching.FieldFirstHome:      {"Is this your first home?", "y/n"},
	branching.FieldPriorOwnership: {"Have you owned property in the last five years?", "y/n"},
	branching.FieldIncome:         {"What is your household's annual income?", "e.g. 120000"},
	branching.FieldPensionCard:    {"Do you hold a pensioner concession card?", "y/n"},
	branching.FieldDependants:     {"How many dependent children do you have?", "e.g. 2"},
	branching.FieldSavings:        {"How much do you have in available savings?", "e.g. 80000"},
	branching.FieldNeedsLoan:      {"Will you need a home loan?", "y/n"},

	branching.FieldDeposit:          {"How much is your deposit?", "e.g. 130000"},
	branching.FieldTerm:             {"What loan term, in years?", "e.g. 30"},
	branching.FieldRate:             {"What interest rate are you expecting?", "percent, e.g. 5.99"},
	branching.FieldLoanType:         {"What loan type?", "e.g. principal_and_interest"},
	branching.FieldEstablishmentFee: {"What is the loan establishment fee?", "e.g. 600"},
	branching.FieldSettlementFee:    {"What is the loan settlement fee?", "e.g. 250"},

	branching.FieldCouncilRates:      {"Annual council rates, per the seller?", "e.g. 1800"},
	branching.FieldWaterRates:        {"Annual water rates, per the seller?", "e.g. 900"},
	branching.FieldStrataFees:        {"Quarterly strata fees, per the seller?", "0 if none"},
	branching.FieldLandTransferFee:   {"Land transfer registration fee?", "e.g. 150"},
	branching.FieldLegalFees:         {"Conveyancing and legal fees?", "e.g. 1500"},
	branching.FieldInspectionFee:     {"Building and pest inspection fee?", "e.g. 500"},
	branching.FieldConstructionStart: {"Has construction already started?", "y/n"},
	branching.FieldDutiableValue:     {"Seller-stated dutiable value?", "0 to use the purchase price"},
}

// questionFor looks up the prompt for a field, with a generic fallback so a
// missing map entry degrades rather than blanking the wizard.
func questionFor(key branching.FieldKey) question {
	if q, ok := questions[key]; ok {
		return q
	}
	return question{Prompt: string(key), Hint: ""}
}

// applyAnswer parses one raw answer into the profile. The profile is only
// mutated on success; a parse failure leaves everything untouched so the
// user can retry.
func (m *Model) applyAnswer(f branching.FieldRef, raw string) error {
	raw = strings.TrimSpace(raw)

	switch f.Key {
	case branching.FieldRegion:
		region, err := domain.ParseRegion(raw)
		if err != nil {
			return err
		}
		m.profile.Property.Region = region

	case branching.FieldCategory:
		switch domain.PropertyCategory(strings.ToLower(raw)) {
		case domain.CategoryHouse:
			m.profile.Property.Category = domain.CategoryHouse
		case domain.CategoryApartment:
			m.profile.Property.Category = domain.CategoryApartment
		case domain.CategoryTownhouse:
			m.profile.Property.Category = domain.CategoryTownhouse
		case domain.CategoryLand:
			m.profile.Property.Category = domain.CategoryLand
		default:
			return fmt.Errorf("unknown property category %q", raw)
		}

	case branching.FieldAcquisition:
		switch domain.AcquisitionType(strings.ToLower(raw)) {
		case domain.AcquisitionExisting:
			m.profile.Property.Acquisition = domain.AcquisitionExisting
		case domain.AcquisitionNew:
			m.profile.Property.Acquisition = domain.AcquisitionNew
		case domain.AcquisitionOffThePlan:
			m.profile.Property.Acquisition = domain.AcquisitionOffThePlan
		case domain.AcquisitionHouseAndLand:
			m.profile.Property.Acquisition = domain.AcquisitionHouseAndLand
		case domain.AcquisitionVacantLand:
			m.profile.Property.Acquisition = domain.AcquisitionVacantLand
		default:
			return fmt.Errorf("unknown acquisition type %q", raw)
		}

	case branching.FieldPrice:
		price, err := parseAmount(raw)
		if err != nil {
			return err
		}
		if price.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("price must be positive")
		}
		m.profile.Property.Price = price

	case branching.FieldLocality:
		v, err := parseYesNo(raw)
		if err != nil {
			return err
		}
		m.profile.Property.Regional = v

	case branching.FieldBuyerType:
		switch strings.ToLower(raw) {
		case "owner_occupier", "owner":
			m.profile.Buyer.Type = domain.BuyerOwnerOccupier
		case "investor":
			m.profile.Buyer.Type = domain.BuyerInvestor
		default:
			return fmt.Errorf("unknown buyer type %q", raw)
		}

	case branching.FieldPrincipalHome:
		v, err := parseYesNo(raw)
		if err != nil {
			return err
		}
		m.profile.Buyer.PrincipalHome = v

	case branching.FieldResidency:
		switch strings.ToLower(raw) {
		case "citizen":
			m.profile.Buyer.Residency = domain.ResidencyCitizen
		case "permanent", "permanent_resident":
			m.profile.Buyer.Residency = domain.ResidencyPermanent
		case "foreign":
			m.profile.Buyer.Residency = domain.ResidencyForeign
		default:
			return fmt.Errorf("unknown residency %q", raw)
		}

	case branching.FieldFirstHome:
		v, err := parseYesNo(raw)
		if err != nil {
			return err
		}
		m.profile.Buyer.FirstHomeBuyer = v

	case branching.FieldPriorOwnership:
		v, err := parseYesNo(raw)
		if err != nil {
			return err
		}
		m.profile.Buyer.OwnedLastFive = v

	case branching.FieldIncome:
		income, err := parseAmount(raw)
		if err != nil {
			return err
		}
		m.profile.Buyer.AnnualIncome = income

	case branching.FieldPensionCard:
		v, err := parseYesNo(raw)
		if err != nil {
			return err
		}
		m.profile.Buyer.HasPensionCard = v

	case branching.FieldDependants:
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return fmt.Errorf("dependants must be a whole number")
		}
		m.profile.Buyer.Dependants = n

	case branching.FieldSavings:
		savings, err := parseAmount(raw)
		if err != nil {
			return err
		}
		m.profile.Buyer.AvailableSavings = savings

	case branching.FieldNeedsLoan:
		// An empty answer confirms the suggested default, if there is one.
		if raw == "" && m.profile.Buyer.NeedsLoan.State == domain.AnswerSuggested {
			m.profile.Buyer.NeedsLoan = domain.ConfirmedBool(m.profile.Buyer.NeedsLoan.Value)
			return nil
		}
		v, err := parseYesNo(raw)
		if err != nil {
			return err
		}
		m.profile.Buyer.NeedsLoan = domain.ConfirmedBool(v)

	case branching.FieldDeposit:
		deposit, err := parseAmount(raw)
		if err != nil {
			return err
		}
		m.profile.Loan.Deposit = deposit

	case branching.FieldTerm:
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return fmt.Errorf("loan term must be a positive number of years")
		}
		m.profile.Loan.TermYears = n

	case branching.FieldRate:
		rate, err := parseAmount(raw)
		if err != nil {
			return err
		}
		m.profile.Loan.Rate = rate

	case branching.FieldLoanType:
		if raw == "" {
			return fmt.Errorf("loan type cannot be empty")
		}
		m.profile.Loan.Type = strings.ToLower(raw)

	case branching.FieldEstablishmentFee:
		fee, err := parseAmount(raw)
		if err != nil {
			return err
		}
		m.profile.Loan.EstablishmentFee = fee

	case branching.FieldSettlementFee:
		fee, err := parseAmount(raw)
		if err != nil {
			return err
		}
		m.profile.Loan.SettlementFee = fee

	case branching.FieldCouncilRates:
		v, err := parseAmount(raw)
		if err != nil {
			return err
		}
		m.profile.Seller.CouncilRatesAnnual = v

	case branching.FieldWaterRates:
		v, err := parseAmount(raw)
		if err != nil {
			return err
		}
		m.profile.Seller.WaterRatesAnnual = v

	case branching.FieldStrataFees:
		v, err := parseAmount(raw)
		if err != nil {
			return err
		}
		m.profile.Seller.StrataFeesQuarterly = v

	case branching.FieldLandTransferFee:
		v, err := parseAmount(raw)
		if err != nil {
			return err
		}
		m.profile.Seller.LandTransferFee = v

	case branching.FieldLegalFees:
		v, err := parseAmount(raw)
		if err != nil {
			return err
		}
		m.profile.Seller.LegalFees = v

	case branching.FieldInspectionFee:
		v, err := parseAmount(raw)
		if err != nil {
			return err
		}
		m.profile.Seller.InspectionFee = v

	case branching.FieldConstructionStart:
		v, err := parseYesNo(raw)
		if err != nil {
			return err
		}
		m.profile.Seller.ConstructionStarted = v

	case branching.FieldDutiableValue:
		v, err := parseAmount(raw)
		if err != nil {
			return err
		}
		m.profile.Seller.DutiableValueOverride = v

	default:
		return fmt.Errorf("no handler for question %q", f.Key)
	}

	return nil
}

// parseAmount accepts the same display forms the snapshot loader does.
func parseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "$")
	raw = strings.ReplaceAll(raw, ",", "")
	if raw == "" {
		return decimal.Decimal{}, fmt.Errorf("enter an amount")
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("not a number: %q", raw)
	}
	if d.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("amount cannot be negative")
	}
	return d, nil
}

func parseYesNo(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "y", "yes", "true":
		return true, nil
	case "n", "no", "false":
		return false, nil
	}
	return false, fmt.Errorf("answer y or n")
}
