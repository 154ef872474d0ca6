package compare

import (
	"encoding/csv"
	"fmt"
	"strings"
)

// CSVFormatter formats comparison results as ranked rows for spreadsheet
// import.
type CSVFormatter struct{}

// Format generates comparison CSV, cheapest region first.
func (cf *CSVFormatter) Format(set *ComparisonSet) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	rows := [][]string{
		{"region", "base_duty", "net_duty", "grant", "total", "is_base_region"},
	}
	for _, res := range set.Results {
		grant := "0.00"
		if g := res.Breakdown.AppliedGrant(); g != nil {
			grant = g.Amount.StringFixed(2)
		}
		rows = append(rows, []string{
			string(res.Region),
			res.Breakdown.BaseDuty.StringFixed(2),
			res.Breakdown.NetDuty.StringFixed(2),
			grant,
			res.Breakdown.Total.StringFixed(2),
			fmt.Sprintf("%t", res.Region == set.BaseRegion),
		})
	}

	if err := w.WriteAll(rows); err != nil {
		return "", fmt.Errorf("failed to write CSV: %w", err)
	}
	w.Flush()
	return sb.String(), nil
}
