package rendering

import (
	"io"
	"math"
	"strconv"

	"github.com/jonathan/gpa-calculator/internal/gpa"
	"github.com/jonathan/gpa-calculator/internal/types"
	"github.com/olekukonko/tablewriter"
)

// LabelSource lists grade labels and their point values.
type LabelSource interface {
	Labels() []string
	PointsFor(label string) int
}

// Breakdown writes one row per subject plus a totals footer.
func Breakdown(w io.Writer, rows []gpa.Breakdown, result *types.Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Credits", "Grade", "Points", "Weighted"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	var weighted float64
	for i, row := range rows {
		weighted += row.Weighted
		table.Append([]string{
			strconv.Itoa(i + 1),
			formatNumber(row.Credits),
			row.Grade,
			strconv.Itoa(row.Points),
			formatNumber(row.Weighted),
		})
	}

	if result != nil {
		table.SetFooter([]string{"", formatNumber(result.TotalCredits), "", "GPA " + result.Display, formatNumber(weighted)})
	}
	table.Render()
}

// Scale writes the grade labels in display order with their points.
func Scale(w io.Writer, scale LabelSource) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Grade", "Points"})

	for _, label := range scale.Labels() {
		table.Append([]string{label, strconv.Itoa(scale.PointsFor(label))})
	}
	table.Render()
}

// formatNumber rounds to hundredths and drops trailing zeros: 3 -> "3", 1.5 -> "1.5".
func formatNumber(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
