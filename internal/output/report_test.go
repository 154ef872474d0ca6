package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/stampcalc/stampcalc/internal/branching"
	"github.com/stampcalc/stampcalc/internal/domain"
	"github.com/stampcalc/stampcalc/internal/progress"
)

func sampleBreakdown() *domain.CostBreakdown {
	return &domain.CostBreakdown{
		Region:        domain.RegionNSW,
		Price:         decimal.NewFromInt(600_000),
		DutiableValue: decimal.NewFromInt(600_000),
		BaseDuty:      decimal.NewFromInt(21_482),
		Concessions: []domain.ConcessionResult{
			{Code: "nsw_fhba", Name: "First Home Buyer Assistance", Amount: decimal.NewFromInt(21_482), Eligible: true, Applied: true},
			{Code: "nsw_pensioner", Name: "Pensioner duty concession", Reason: "buyer does not hold a pensioner concession card"},
		},
		Grants: []domain.GrantResult{
			{Code: "nsw_fhog", Name: "First Home Owner Grant", Amount: decimal.NewFromInt(10_000), Eligible: true, Applied: true},
		},
		NetDuty: decimal.Zero,
		Total:   decimal.NewFromInt(-10_000),
	}
}

func TestNewFormatterSelection(t *testing.T) {
	for _, name := range []string{"", "console", "json", "csv"} {
		if _, err := NewFormatter(name); err != nil {
			t.Errorf("NewFormatter(%q) = %v", name, err)
		}
	}
	if _, err := NewFormatter("xml"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestFormatCurrency(t *testing.T) {
	got := FormatCurrency(decimal.NewFromFloat(1234.5))
	if got != "$1234.50" {
		t.Errorf("FormatCurrency = %q", got)
	}
}

func TestConsoleFormat(t *testing.T) {
	out, err := (&ConsoleFormatter{}).Format(sampleBreakdown())
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"New South Wales",
		"First Home Buyer Assistance",
		"-$21482.00",
		"not eligible - buyer does not hold a pensioner concession card",
		"TOTAL UPFRONT",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("console output missing %q\n%s", want, out)
		}
	}
}

func TestJSONFormatRoundTrips(t *testing.T) {
	out, err := (&JSONFormatter{}).Format(sampleBreakdown())
	if err != nil {
		t.Fatal(err)
	}
	var decoded map[string]any
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded["region"] != "NSW" {
		t.Errorf("region = %v", decoded["region"])
	}
}

func TestCSVFormatStatuses(t *testing.T) {
	out, err := (&CSVFormatter{}).Format(sampleBreakdown())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "concession:nsw_fhba,-21482.00,applied") {
		t.Errorf("missing applied concession row:\n%s", out)
	}
	if !strings.Contains(out, "concession:nsw_pensioner,0.00,ineligible") {
		t.Errorf("missing ineligible concession row:\n%s", out)
	}
}

func TestFormatProgress(t *testing.T) {
	report := progress.Report{
		Outstanding: []branching.FieldKey{branching.FieldPensionCard},
		Answered:    9,
		Total:       10,
		Percent:     90,
	}
	out := FormatProgress(report)
	if !strings.Contains(out, "90%") || !strings.Contains(out, "9 of 10") {
		t.Errorf("unexpected header:\n%s", out)
	}
	if !strings.Contains(out, string(branching.FieldPensionCard)) {
		t.Errorf("outstanding list missing field:\n%s", out)
	}
}
