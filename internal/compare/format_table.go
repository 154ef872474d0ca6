package compare

import (
	"fmt"
	"strings"

	"github.com/stampcalc/stampcalc/internal/output"
)

// TableFormatter formats comparison results as a console table.
type TableFormatter struct{}

// Format generates a formatted table comparing all regions.
func (tf *TableFormatter) Format(set *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("CROSS-REGION COST COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 78) + "\n")
	fmt.Fprintf(&sb, "Profile region: %s\n\n", set.BaseRegion.FullName())

	nameWidth := 30
	numWidth := 15

	fmt.Fprintf(&sb, "%-*s %*s %*s %*s\n",
		nameWidth, "Region",
		numWidth, "Net Duty",
		numWidth, "Grant",
		numWidth, "Total Upfront")
	sb.WriteString(strings.Repeat("-", 78) + "\n")

	for _, res := range set.Results {
		marker := "  "
		if res.Region == set.BaseRegion {
			marker = "* "
		}
		grant := "-"
		if g := res.Breakdown.AppliedGrant(); g != nil {
			grant = output.FormatCurrency(g.Amount)
		}
		fmt.Fprintf(&sb, "%s%-*s %*s %*s %*s\n",
			marker,
			nameWidth-2, res.Region.FullName(),
			numWidth, output.FormatCurrency(res.Breakdown.NetDuty),
			numWidth, grant,
			numWidth, output.FormatCurrency(res.Breakdown.Total))
	}

	sb.WriteString(strings.Repeat("=", 78) + "\n")
	sb.WriteString("* profile's own region; other rows assume the same answers there\n")
	return sb.String()
}
