package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stampcalc/stampcalc/internal/domain"
)

func TestParse_MinimalSnapshot(t *testing.T) {
	parser := NewInputParser()
	snap, err := parser.Parse([]byte(`
profile:
  property:
    region: vic
    category: house
    acquisition: new
    price: 650000
  buyer:
    type: owner_occupier
    principal_home: true
    residency: citizen
    first_home_buyer: true
`))
	require.NoError(t, err)

	assert.Equal(t, domain.RegionVIC, snap.Profile.Property.Region)
	assert.True(t, snap.Profile.Property.Price.Equal(decimal.NewFromInt(650_000)))
	assert.True(t, snap.Profile.Buyer.FirstHomeBuyer)
	assert.Equal(t, domain.AnswerUnanswered, snap.Profile.Buyer.NeedsLoan.State)
	// Unstated visibility flags default to on-path.
	assert.True(t, snap.Position.LoanSectionVisible)
	assert.True(t, snap.Position.SellerSectionVisible)
}

func TestParse_LegacyAmountStrings(t *testing.T) {
	parser := NewInputParser()
	snap, err := parser.Parse([]byte(`
profile:
  property:
    region: NSW
    price: "$650,000"
  buyer:
    available_savings: "not a number"
  loan:
    deposit: "120000.50"
`))
	require.NoError(t, err)

	assert.True(t, snap.Profile.Property.Price.Equal(decimal.NewFromInt(650_000)),
		"display-formatted price should coerce, got %s", snap.Profile.Property.Price)
	assert.True(t, snap.Profile.Buyer.AvailableSavings.IsZero(),
		"unparseable historic value coerces to zero, never errors")
	assert.True(t, snap.Profile.Loan.Deposit.Equal(decimal.RequireFromString("120000.5")))
}

func TestParse_UnknownRegionFails(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.Parse([]byte(`
profile:
  property:
    region: ZZ
    price: 100000
`))
	assert.ErrorIs(t, err, domain.ErrUnknownRegion)
}

func TestParse_ResumedSessionDowngradesLoanAnswer(t *testing.T) {
	parser := NewInputParser()

	// A resumed legacy snapshot with a bare loan answer: the value becomes
	// a suggestion, not a confirmed answer.
	snap, err := parser.Parse([]byte(`
resumed: true
profile:
  property:
    region: QLD
    price: 420000
  buyer:
    needs_loan:
      value: false
`))
	require.NoError(t, err)
	assert.Equal(t, domain.AnswerSuggested, snap.Profile.Buyer.NeedsLoan.State)
	assert.False(t, snap.Profile.Buyer.NeedsLoan.Value)

	// An explicit state survives the resume untouched.
	snap, err = parser.Parse([]byte(`
resumed: true
profile:
  property:
    region: QLD
    price: 420000
  buyer:
    needs_loan:
      state: confirmed
      value: true
`))
	require.NoError(t, err)
	assert.Equal(t, domain.AnswerConfirmed, snap.Profile.Buyer.NeedsLoan.State)
}

func TestParse_WizardPosition(t *testing.T) {
	parser := NewInputParser()
	snap, err := parser.Parse([]byte(`
profile:
  property:
    region: ACT
    price: 800000
position:
  sections:
    property:
      status: complete
      step: 4
    buyer:
      status: in_progress
      step: 5
  loan_section_visible: false
`))
	require.NoError(t, err)

	assert.True(t, snap.Position.SectionComplete(domain.SectionProperty))
	assert.Equal(t, 5, snap.Position.State(domain.SectionBuyer).Step)
	assert.False(t, snap.Position.LoanSectionVisible)
	assert.True(t, snap.Position.SellerSectionVisible)
	assert.Equal(t, domain.SectionNotStarted, snap.Position.State(domain.SectionSeller).Status)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snapshot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
profile:
  property:
    region: TAS
    price: 380000
`), 0o644))

	parser := NewInputParser()
	snap, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, domain.RegionTAS, snap.Profile.Property.Region)

	_, err = parser.LoadFromFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
