// Package format renders normalized series rows as a text table, a PNG
// chart, or an Excel workbook. Renderers perform no validation of their own;
// they consume ordered rows and a display label.
package format

import (
	"fmt"
	"strings"

	"github.com/fingrid-tools/opendata-client/pkg/series"
	"github.com/montanaflynn/stats"
	"github.com/olekukonko/tablewriter"
)

const timeColumnLayout = "2006-01-02 15:04:05"

// Table renders rows as an ASCII table. When len(rows) > maxRows the head and
// tail are shown with an omission marker in between. The footer carries the
// point count and min/max/mean of the values.
func Table(rows []series.Row, label string, maxRows int) string {
	if len(rows) == 0 {
		return fmt.Sprintf("No data for %q in the given time range.", label)
	}
	if maxRows <= 0 {
		maxRows = 50
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n--- %s ---\n\n", label)

	table := tablewriter.NewWriter(&b)
	table.SetHeader([]string{"Start time (UTC)", "End time (UTC)", "Value"})
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
	})

	appendRow := func(r series.Row) {
		table.Append([]string{
			r.StartTime.Format(timeColumnLayout),
			r.EndTime.Format(timeColumnLayout),
			fmt.Sprintf("%.2f", r.Value),
		})
	}

	if len(rows) <= maxRows {
		for _, r := range rows {
			appendRow(r)
		}
	} else {
		half := maxRows / 2
		for _, r := range rows[:half] {
			appendRow(r)
		}
		table.Append([]string{"...", fmt.Sprintf("(%d rows omitted)", len(rows)-2*half), "..."})
		for _, r := range rows[len(rows)-half:] {
			appendRow(r)
		}
	}

	table.Render()

	b.WriteString("\n")
	fmt.Fprintf(&b, "Total points: %d\n", len(rows))
	b.WriteString(summaryLine(rows))

	return b.String()
}

// summaryLine computes a min/max/mean footer for the value column.
func summaryLine(rows []series.Row) string {
	values := make([]float64, len(rows))
	for i, r := range rows {
		values[i] = r.Value
	}

	min, err := stats.Min(values)
	if err != nil {
		return ""
	}
	max, _ := stats.Max(values)
	mean, _ := stats.Mean(values)

	return fmt.Sprintf("Min: %.2f  Max: %.2f  Mean: %.2f\n", min, max, mean)
}
