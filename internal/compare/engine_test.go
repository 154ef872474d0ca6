package compare

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stampcalc/stampcalc/internal/calculation"
	"github.com/stampcalc/stampcalc/internal/domain"
)

func TestCompare_RanksAllRegions(t *testing.T) {
	engine := NewEngine(calculation.NewEngine())
	p := domain.Profile{
		Buyer: domain.BuyerProfile{
			Type:           domain.BuyerOwnerOccupier,
			PrincipalHome:  true,
			Residency:      domain.ResidencyCitizen,
			FirstHomeBuyer: true,
		},
		Property: domain.PropertyProfile{
			Region:      domain.RegionNSW,
			Category:    domain.CategoryHouse,
			Acquisition: domain.AcquisitionNew,
			Price:       decimal.NewFromInt(550_000),
		},
	}

	set, err := engine.Compare(p, domain.NewWizardPosition())
	require.NoError(t, err)
	require.Len(t, set.Results, len(domain.AllRegions()))

	// Sorted ascending by total.
	for i := 1; i < len(set.Results); i++ {
		assert.True(t,
			set.Results[i].Breakdown.Total.GreaterThanOrEqual(set.Results[i-1].Breakdown.Total),
			"results must be ranked by total")
	}

	base := set.BaseResult()
	require.NotNil(t, base)
	assert.Equal(t, domain.RegionNSW, base.Region)

	// Every breakdown was computed for its own region's rules.
	seen := map[domain.Region]bool{}
	for _, res := range set.Results {
		assert.Equal(t, res.Region, res.Breakdown.Region)
		seen[res.Region] = true
	}
	assert.Len(t, seen, 8)
}

func TestCompare_PropagatesCalculationErrors(t *testing.T) {
	engine := NewEngine(calculation.NewEngine())
	p := domain.Profile{
		Property: domain.PropertyProfile{Region: domain.RegionNSW}, // no price
	}

	_, err := engine.Compare(p, domain.NewWizardPosition())
	assert.Error(t, err)
}
