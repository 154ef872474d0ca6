package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/stampcalc/stampcalc/internal/domain"
	"github.com/stampcalc/stampcalc/internal/rules"
)

func findGrant(t *testing.T, results []domain.GrantResult, code string) domain.GrantResult {
	t.Helper()
	for _, r := range results {
		if r.Code == code {
			return r
		}
	}
	t.Fatalf("grant %s not in results", code)
	return domain.GrantResult{}
}

func TestResolveGrants_HigherGrantSupersedes(t *testing.T) {
	// A Victorian first home buyer building in a regional area qualifies
	// for both grant types; the regional uplift pays more and must win,
	// with the standard grant distinctly marked superseded.
	rr := regionRules(t, domain.RegionVIC)
	ctx := rules.EvalContext{
		Buyer: eligibleFirstHomeBuyer(),
		Property: domain.PropertyProfile{
			Region:      domain.RegionVIC,
			Acquisition: domain.AcquisitionNew,
			Price:       decimal.NewFromInt(600_000),
			Regional:    true,
		},
	}

	results := ResolveGrants(rr, ctx)

	regional := findGrant(t, results, "vic_fhog_regional")
	assert.True(t, regional.Applied)
	assert.True(t, regional.Amount.Equal(decimal.NewFromInt(20_000)))

	standard := findGrant(t, results, "vic_fhog")
	assert.False(t, standard.Applied)
	assert.False(t, standard.Eligible)
	assert.True(t, standard.Superseded)
	assert.Equal(t, domain.ReasonSupersededGrant, standard.Reason)
}

func TestResolveGrants_SupersededDistinctFromCriteriaNotMet(t *testing.T) {
	// Same buyer in metropolitan Melbourne: the regional grant now fails
	// its locality predicate. That is criteria-not-met, not superseded, and
	// the two must stay distinguishable.
	rr := regionRules(t, domain.RegionVIC)
	ctx := rules.EvalContext{
		Buyer: eligibleFirstHomeBuyer(),
		Property: domain.PropertyProfile{
			Region:      domain.RegionVIC,
			Acquisition: domain.AcquisitionNew,
			Price:       decimal.NewFromInt(600_000),
			Regional:    false,
		},
	}

	results := ResolveGrants(rr, ctx)

	standard := findGrant(t, results, "vic_fhog")
	assert.True(t, standard.Applied)

	regional := findGrant(t, results, "vic_fhog_regional")
	assert.False(t, regional.Eligible)
	assert.False(t, regional.Superseded)
	assert.NotEqual(t, domain.ReasonSupersededGrant, regional.Reason)
	assert.NotEmpty(t, regional.Reason)
}

func TestResolveGrants_AtMostOneApplied(t *testing.T) {
	for _, region := range domain.AllRegions() {
		rr := regionRules(t, region)
		ctx := rules.EvalContext{
			Buyer: eligibleFirstHomeBuyer(),
			Property: domain.PropertyProfile{
				Region:      region,
				Category:    domain.CategoryHouse,
				Acquisition: domain.AcquisitionHouseAndLand,
				Price:       decimal.NewFromInt(450_000),
			},
		}
		results := ResolveGrants(rr, ctx)
		assert.Len(t, results, len(rr.Grants), "region %s", region)

		applied := 0
		for _, res := range results {
			if res.Applied {
				applied++
			}
			if !res.Eligible {
				assert.NotEmpty(t, res.Reason, "region %s grant %s needs a reason", region, res.Code)
			}
		}
		assert.LessOrEqual(t, applied, 1, "region %s applied more than one grant", region)
	}
}

func TestResolveGrants_NSWCapDependsOnAcquisition(t *testing.T) {
	rr := regionRules(t, domain.RegionNSW)
	buyer := eligibleFirstHomeBuyer()

	// $700k is over the cap for a finished new home...
	ctx := rules.EvalContext{
		Buyer: buyer,
		Property: domain.PropertyProfile{
			Region:      domain.RegionNSW,
			Acquisition: domain.AcquisitionNew,
			Price:       decimal.NewFromInt(700_000),
		},
	}
	results := ResolveGrants(rr, ctx)
	fhog := findGrant(t, results, "nsw_fhog")
	assert.False(t, fhog.Eligible)

	// ...but within the house-and-land cap.
	ctx.Property.Acquisition = domain.AcquisitionHouseAndLand
	results = ResolveGrants(rr, ctx)
	fhog = findGrant(t, results, "nsw_fhog")
	assert.True(t, fhog.Applied)
}

func TestResolveGrants_ACTHasNoGrants(t *testing.T) {
	rr := regionRules(t, domain.RegionACT)
	results := ResolveGrants(rr, rules.EvalContext{Buyer: eligibleFirstHomeBuyer()})
	assert.Empty(t, results)
}
