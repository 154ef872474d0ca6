// Package output renders cost breakdowns and progress reports for the CLI.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/stampcalc/stampcalc/internal/domain"
	"github.com/stampcalc/stampcalc/internal/progress"
)

// Formatter renders a cost breakdown in one output format.
type Formatter interface {
	Format(cb *domain.CostBreakdown) (string, error)
}

// NewFormatter selects a formatter by name.
func NewFormatter(format string) (Formatter, error) {
	switch format {
	case "console", "":
		return &ConsoleFormatter{}, nil
	case "json":
		return &JSONFormatter{}, nil
	case "csv":
		return &CSVFormatter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// FormatCurrency formats a decimal as a currency string.
func FormatCurrency(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// ConsoleFormatter produces the detailed human-readable breakdown.
type ConsoleFormatter struct{}

// Format renders the breakdown as a console report.
func (cf *ConsoleFormatter) Format(cb *domain.CostBreakdown) (string, error) {
	var sb strings.Builder

	sb.WriteString(strings.Repeat("=", 72) + "\n")
	fmt.Fprintf(&sb, "UPFRONT PURCHASE COSTS: %s\n", cb.Region.FullName())
	sb.WriteString(strings.Repeat("=", 72) + "\n")
	fmt.Fprintf(&sb, "Purchase price:       %s\n", FormatCurrency(cb.Price))
	if !cb.DutiableValue.Equal(cb.Price) {
		fmt.Fprintf(&sb, "Dutiable value:       %s (seller-disclosed)\n", FormatCurrency(cb.DutiableValue))
	}
	fmt.Fprintf(&sb, "Transfer duty:        %s\n", FormatCurrency(cb.BaseDuty))
	sb.WriteString("\n")

	if len(cb.Concessions) > 0 {
		sb.WriteString("CONCESSIONS\n")
		sb.WriteString(strings.Repeat("-", 72) + "\n")
		for _, c := range cb.Concessions {
			fmt.Fprintf(&sb, "  %-44s %s\n", c.Name, concessionStatus(c))
		}
		sb.WriteString("\n")
	}

	if len(cb.Grants) > 0 {
		sb.WriteString("GRANTS\n")
		sb.WriteString(strings.Repeat("-", 72) + "\n")
		for _, g := range cb.Grants {
			fmt.Fprintf(&sb, "  %-44s %s\n", g.Name, grantStatus(g))
		}
		sb.WriteString("\n")
	}

	if cb.ForeignSurcharge.GreaterThan(decimal.Zero) {
		fmt.Fprintf(&sb, "Foreign purchaser surcharge: %s\n", FormatCurrency(cb.ForeignSurcharge))
	}
	fmt.Fprintf(&sb, "Net statutory duty:   %s\n", FormatCurrency(cb.NetDuty))

	if cb.CashPrice.GreaterThan(decimal.Zero) {
		fmt.Fprintf(&sb, "Cash purchase price:  %s\n", FormatCurrency(cb.CashPrice))
	}
	if cb.LoanCosts.GreaterThan(decimal.Zero) {
		fmt.Fprintf(&sb, "Loan costs:           %s\n", FormatCurrency(cb.LoanCosts))
	}
	if cb.SellerFees.GreaterThan(decimal.Zero) {
		fmt.Fprintf(&sb, "Settlement fees:      %s\n", FormatCurrency(cb.SellerFees))
	}

	sb.WriteString(strings.Repeat("=", 72) + "\n")
	fmt.Fprintf(&sb, "TOTAL UPFRONT:        %s\n", FormatCurrency(cb.Total))
	if cb.OngoingAnnual.GreaterThan(decimal.Zero) {
		fmt.Fprintf(&sb, "Ongoing (per year):   %s\n", FormatCurrency(cb.OngoingAnnual))
	}
	sb.WriteString(strings.Repeat("=", 72) + "\n")

	return sb.String(), nil
}

func concessionStatus(c domain.ConcessionResult) string {
	switch {
	case c.Applied:
		return fmt.Sprintf("-%s", FormatCurrency(c.Amount))
	case c.Pending:
		return "eligible - " + c.Reason
	case c.Superseded:
		return "not applied - " + c.Reason
	case c.Eligible:
		return "eligible (no duty to reduce)"
	default:
		return "not eligible - " + c.Reason
	}
}

func grantStatus(g domain.GrantResult) string {
	switch {
	case g.Applied:
		return fmt.Sprintf("-%s", FormatCurrency(g.Amount))
	case g.Superseded:
		return "not applied - " + g.Reason
	default:
		return "not eligible - " + g.Reason
	}
}

// JSONFormatter renders the breakdown for machine consumers.
type JSONFormatter struct{}

// Format implements Formatter.
func (jf *JSONFormatter) Format(cb *domain.CostBreakdown) (string, error) {
	data, err := json.MarshalIndent(cb, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal breakdown: %w", err)
	}
	return string(data), nil
}

// CSVFormatter renders the breakdown as line items for spreadsheet import.
type CSVFormatter struct{}

// Format implements Formatter.
func (cf *CSVFormatter) Format(cb *domain.CostBreakdown) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	rows := [][]string{
		{"item", "amount", "status", "reason"},
		{"base_duty", cb.BaseDuty.StringFixed(2), "applied", ""},
	}
	for _, c := range cb.Concessions {
		rows = append(rows, []string{
			"concession:" + c.Code, c.Amount.Neg().StringFixed(2), resultStatus(c.Applied, c.Eligible, c.Superseded), c.Reason,
		})
	}
	for _, g := range cb.Grants {
		rows = append(rows, []string{
			"grant:" + g.Code, g.Amount.Neg().StringFixed(2), resultStatus(g.Applied, g.Eligible, g.Superseded), g.Reason,
		})
	}
	rows = append(rows,
		[]string{"foreign_surcharge", cb.ForeignSurcharge.StringFixed(2), "applied", ""},
		[]string{"net_duty", cb.NetDuty.StringFixed(2), "applied", ""},
		[]string{"cash_price", cb.CashPrice.StringFixed(2), "applied", ""},
		[]string{"loan_costs", cb.LoanCosts.StringFixed(2), "applied", ""},
		[]string{"seller_fees", cb.SellerFees.StringFixed(2), "applied", ""},
		[]string{"total", cb.Total.StringFixed(2), "applied", ""},
	)

	if err := w.WriteAll(rows); err != nil {
		return "", fmt.Errorf("failed to write CSV: %w", err)
	}
	w.Flush()
	return sb.String(), nil
}

func resultStatus(applied, eligible, superseded bool) string {
	switch {
	case applied:
		return "applied"
	case superseded:
		return "superseded"
	case eligible:
		return "eligible"
	default:
		return "ineligible"
	}
}

// FormatProgress renders a requirement tracker report for the console.
func FormatProgress(report progress.Report) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Completion: %d%% (%d of %d questions answered)\n",
		report.Percent, report.Answered, report.Total)
	if len(report.Outstanding) > 0 {
		sb.WriteString("Outstanding:\n")
		for _, key := range report.Outstanding {
			fmt.Fprintf(&sb, "  - %s\n", key)
		}
	}
	return sb.String()
}
