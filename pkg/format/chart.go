package format

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fingrid-tools/opendata-client/pkg/series"
	"github.com/wcharczuk/go-chart/v2"
)

// RenderChart plots start time vs value as a PNG and writes it to w.
func RenderChart(rows []series.Row, label string, w io.Writer) error {
	if len(rows) == 0 {
		return fmt.Errorf("no data to plot for %q", label)
	}

	times := make([]time.Time, len(rows))
	values := make([]float64, len(rows))
	for i, r := range rows {
		times[i] = r.StartTime
		values[i] = r.Value
	}

	graph := chart.Chart{
		Title:  "Fingrid Open Data: " + label,
		Width:  1000,
		Height: 500,
		XAxis: chart.XAxis{
			Name:           "Time (UTC)",
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01-02 15:04"),
		},
		YAxis: chart.YAxis{
			Name: "Value",
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    label,
				XValues: times,
				YValues: values,
			},
		},
	}

	return graph.Render(chart.PNG, w)
}

// SaveChart renders the chart to a PNG file, creating parent directories as
// needed.
func SaveChart(rows []series.Row, label, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create chart directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	if err := RenderChart(rows, label, f); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
