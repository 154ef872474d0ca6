package calculation

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stampcalc/stampcalc/internal/domain"
)

func TestCalculateDuty_PositiveForAllRegions(t *testing.T) {
	dc := NewDutyCalculator()
	prices := []int64{1, 10_000, 150_000, 450_000, 600_000, 1_500_000, 4_000_000, 10_000_000}

	for _, region := range domain.AllRegions() {
		for _, price := range prices {
			duty, err := dc.Calculate(decimal.NewFromInt(price), region)
			if err != nil {
				t.Fatalf("Calculate(%d, %s) returned error: %v", price, region, err)
			}
			if duty.IsNegative() {
				t.Errorf("Calculate(%d, %s) = %s, want non-negative", price, region, duty)
			}
		}
	}
}

func TestCalculateDuty_MonotonicInPrice(t *testing.T) {
	dc := NewDutyCalculator()

	for _, region := range domain.AllRegions() {
		prev := decimal.Zero
		// Stepping $10k at a time crosses every bracket boundary.
		for price := int64(10_000); price <= 4_000_000; price += 10_000 {
			duty, err := dc.Calculate(decimal.NewFromInt(price), region)
			if err != nil {
				t.Fatalf("Calculate(%d, %s): %v", price, region, err)
			}
			if duty.LessThan(prev) {
				t.Errorf("%s: duty decreased from %s to %s at price %d", region, prev, duty, price)
			}
			prev = duty
		}
	}
}

func TestCalculateDuty_KnownBracketValues(t *testing.T) {
	dc := NewDutyCalculator()

	tests := []struct {
		region domain.Region
		price  int64
		want   string
	}{
		// NSW $600,000: 600000*0.045 + (10907 - 0.045*365000) = 21482.00
		{domain.RegionNSW, 600_000, "21482"},
		// VIC $600,000: 600000*0.06 + (2870 - 0.06*130000) = 31070.00
		{domain.RegionVIC, 600_000, "31070"},
		// QLD $5,000 sits in the zero bracket.
		{domain.RegionQLD, 5_000, "0"},
		// QLD $500,000: 500000*0.035 + (1050 - 0.035*75000) = 15925.00
		{domain.RegionQLD, 500_000, "15925"},
		// TAS $3,000 minimum duty.
		{domain.RegionTAS, 3_000, "50"},
	}

	for _, tt := range tests {
		got, err := dc.Calculate(decimal.NewFromInt(tt.price), tt.region)
		if err != nil {
			t.Fatalf("Calculate(%d, %s): %v", tt.price, tt.region, err)
		}
		if !got.Equal(decimal.RequireFromString(tt.want)) {
			t.Errorf("Calculate(%d, %s) = %s, want %s", tt.price, tt.region, got, tt.want)
		}
	}
}

func TestCalculateDuty_FormulaRegion(t *testing.T) {
	dc := NewDutyCalculator()

	// Below the threshold NT uses the quadratic: 0.06571441*V^2 + 15*V.
	duty, err := dc.Calculate(decimal.NewFromInt(500_000), domain.RegionNT)
	if err != nil {
		t.Fatalf("Calculate(500000, NT): %v", err)
	}
	// V=500: 0.06571441*250000 + 7500 = 23928.60
	want := decimal.RequireFromString("23928.60")
	if !duty.Equal(want) {
		t.Errorf("NT formula duty = %s, want %s", duty, want)
	}
}

func TestCalculateDuty_FormulaBracketContinuity(t *testing.T) {
	dc := NewDutyCalculator()
	threshold := decimal.NewFromInt(525_000)

	atThreshold, err := dc.Calculate(threshold, domain.RegionNT)
	if err != nil {
		t.Fatalf("Calculate at threshold: %v", err)
	}
	justBelow, err := dc.Calculate(threshold.Sub(decimal.NewFromInt(1)), domain.RegionNT)
	if err != nil {
		t.Fatalf("Calculate just below threshold: %v", err)
	}

	// The quadratic and the 4.95% bracket must agree at the join within
	// rounding.
	diff := atThreshold.Sub(justBelow).Abs()
	if diff.GreaterThan(decimal.NewFromInt(1)) {
		t.Errorf("duty discontinuity at NT threshold: below=%s at=%s diff=%s",
			justBelow, atThreshold, diff)
	}
}

func TestCalculateDuty_InvalidInput(t *testing.T) {
	dc := NewDutyCalculator()

	if _, err := dc.Calculate(decimal.Zero, domain.RegionNSW); err == nil {
		t.Error("expected error for zero price, got nil")
	}
	if _, err := dc.Calculate(decimal.NewFromInt(-100), domain.RegionNSW); err == nil {
		t.Error("expected error for negative price, got nil")
	}
	_, err := dc.Calculate(decimal.NewFromInt(500_000), domain.Region("ZZ"))
	if !errors.Is(err, domain.ErrUnknownRegion) {
		t.Errorf("expected ErrUnknownRegion, got %v", err)
	}
}

func TestForeignSurcharge(t *testing.T) {
	dc := NewDutyCalculator()

	got, err := dc.ForeignSurcharge(decimal.NewFromInt(500_000), domain.RegionNSW)
	if err != nil {
		t.Fatalf("ForeignSurcharge: %v", err)
	}
	if !got.Equal(decimal.NewFromInt(40_000)) {
		t.Errorf("NSW surcharge on $500k = %s, want 40000", got)
	}
}
