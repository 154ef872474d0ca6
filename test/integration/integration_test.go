package integration

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stampcalc/stampcalc/internal/branching"
	"github.com/stampcalc/stampcalc/internal/calculation"
	"github.com/stampcalc/stampcalc/internal/compare"
	"github.com/stampcalc/stampcalc/internal/config"
	"github.com/stampcalc/stampcalc/internal/domain"
	"github.com/stampcalc/stampcalc/internal/output"
	"github.com/stampcalc/stampcalc/internal/progress"
)

// TestCompletedSession walks a finished snapshot end to end: load, compute,
// track and format.
func TestCompletedSession(t *testing.T) {
	parser := config.NewInputParser()
	snapshot, err := parser.LoadFromFile("../testdata/complete_session_vic.yaml")
	require.NoError(t, err, "Should load snapshot successfully")
	require.NotNil(t, snapshot)

	t.Run("snapshot_loading", func(t *testing.T) {
		assert.True(t, snapshot.Resumed)
		assert.Equal(t, domain.RegionVIC, snapshot.Profile.Property.Region)
		// Legacy display strings coerce to clean decimals.
		assert.True(t, snapshot.Profile.Property.Price.Equal(decimal.NewFromInt(600_000)),
			"price %s", snapshot.Profile.Property.Price)
		assert.True(t, snapshot.Profile.Buyer.NeedsLoan.ConfirmedYes())
	})

	t.Run("cost_breakdown", func(t *testing.T) {
		engine := calculation.NewEngine()
		cb, err := engine.Breakdown(snapshot.Profile, snapshot.Position)
		require.NoError(t, err)
		require.NotNil(t, cb)

		assert.True(t, cb.BaseDuty.Equal(decimal.NewFromInt(31_070)), "base duty %s", cb.BaseDuty)

		c := cb.AppliedConcession()
		require.NotNil(t, c, "first home concession should apply")
		assert.Equal(t, "vic_fhb", c.Code)
		assert.True(t, c.Amount.Equal(cb.BaseDuty), "full relief at the threshold")
		assert.True(t, cb.NetDuty.IsZero(), "net duty %s", cb.NetDuty)

		g := cb.AppliedGrant()
		require.NotNil(t, g, "regional grant should apply")
		assert.Equal(t, "vic_fhog_regional", g.Code)
		assert.True(t, g.Amount.Equal(decimal.NewFromInt(20_000)))
		for _, gr := range cb.Grants {
			if gr.Code == "vic_fhog" {
				assert.True(t, gr.Superseded, "metro grant loses to the regional one")
			}
		}

		assert.True(t, cb.CashPrice.IsZero(), "loan buyer pays no cash price")
		assert.True(t, cb.LoanCosts.Equal(decimal.NewFromInt(120_850)), "loan costs %s", cb.LoanCosts)
		assert.True(t, cb.SellerFees.Equal(decimal.NewFromInt(2_150)), "seller fees %s", cb.SellerFees)
		assert.True(t, cb.OngoingAnnual.Equal(decimal.NewFromInt(4_700)), "ongoing %s", cb.OngoingAnnual)
		assert.True(t, cb.Total.Equal(decimal.NewFromInt(103_000)), "total %s", cb.Total)
	})

	t.Run("progress_complete", func(t *testing.T) {
		report := progress.Track(snapshot.Profile, snapshot.Position)
		assert.Equal(t, 100, report.Percent)
		assert.Empty(t, report.Outstanding)
		assert.Equal(t, report.Total, report.Answered)
	})

	t.Run("output_formats", func(t *testing.T) {
		engine := calculation.NewEngine()
		cb, err := engine.Breakdown(snapshot.Profile, snapshot.Position)
		require.NoError(t, err)

		console, err := (&output.ConsoleFormatter{}).Format(cb)
		require.NoError(t, err)
		assert.Contains(t, console, "Victoria")
		assert.Contains(t, console, "$103000.00")

		raw, err := (&output.JSONFormatter{}).Format(cb)
		require.NoError(t, err)
		var decoded map[string]any
		require.NoError(t, json.Unmarshal([]byte(raw), &decoded))

		csvOut, err := (&output.CSVFormatter{}).Format(cb)
		require.NoError(t, err)
		assert.Contains(t, csvOut, "vic")
	})

	t.Run("region_comparison", func(t *testing.T) {
		engine := compare.NewEngine(calculation.NewEngine())
		set, err := engine.Compare(snapshot.Profile, snapshot.Position)
		require.NoError(t, err)
		require.Len(t, set.Results, len(domain.AllRegions()))

		base := set.BaseResult()
		require.NotNil(t, base)
		assert.Equal(t, domain.RegionVIC, base.Region)

		// Sorted cheapest first.
		for i := 1; i < len(set.Results); i++ {
			assert.True(t, set.Results[i-1].Breakdown.Total.LessThanOrEqual(set.Results[i].Breakdown.Total),
				"results out of order at %d", i)
		}
	})
}

// TestPartialSession checks that a mid-wizard snapshot neither counts
// suggested answers as answered nor adds gated cost components.
func TestPartialSession(t *testing.T) {
	parser := config.NewInputParser()
	snapshot, err := parser.LoadFromFile("../testdata/partial_session_vic.yaml")
	require.NoError(t, err)

	// The stored loan answer had no state, so the resumed load demotes it
	// to a suggestion.
	assert.Equal(t, domain.AnswerSuggested, snapshot.Profile.Buyer.NeedsLoan.State)

	report := progress.Track(snapshot.Profile, snapshot.Position)
	assert.Equal(t, 24, report.Total)
	assert.Equal(t, 10, report.Answered)
	assert.Equal(t, 42, report.Percent)
	assert.Contains(t, report.Outstanding, branching.FieldPensionCard)

	engine := calculation.NewEngine()
	cb, err := engine.Breakdown(snapshot.Profile, snapshot.Position)
	require.NoError(t, err)

	// Statutory costs are live immediately; everything gated stays out.
	assert.True(t, cb.BaseDuty.Equal(decimal.NewFromInt(31_070)))
	assert.True(t, cb.CashPrice.IsZero())
	assert.True(t, cb.LoanCosts.IsZero())
	assert.True(t, cb.SellerFees.IsZero())
	assert.True(t, cb.OngoingAnnual.IsZero())
}
