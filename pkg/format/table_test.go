package format

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/fingrid-tools/opendata-client/pkg/series"
)

func sampleRows(n int) []series.Row {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := make([]series.Row, n)
	for i := range rows {
		start := base.Add(time.Duration(i) * time.Hour)
		rows[i] = series.Row{
			StartTime: start,
			EndTime:   start.Add(time.Hour),
			Value:     float64(i + 1),
			DatasetID: "193",
		}
	}
	return rows
}

func TestTable(t *testing.T) {
	out := Table(sampleRows(3), "Consumption", 50)

	for _, want := range []string{
		"--- Consumption ---",
		"Start time (UTC)",
		"2024-01-01 00:00:00",
		"1.00",
		"3.00",
		"Total points: 3",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Table() missing %q:\n%s", want, out)
		}
	}
}

func TestTable_SummaryFooter(t *testing.T) {
	out := Table(sampleRows(4), "Consumption", 50)

	if !strings.Contains(out, "Min: 1.00") {
		t.Errorf("Table() missing min:\n%s", out)
	}
	if !strings.Contains(out, "Max: 4.00") {
		t.Errorf("Table() missing max:\n%s", out)
	}
	if !strings.Contains(out, "Mean: 2.50") {
		t.Errorf("Table() missing mean:\n%s", out)
	}
}

func TestTable_Truncation(t *testing.T) {
	out := Table(sampleRows(20), "Consumption", 6)

	if !strings.Contains(out, "rows omitted") {
		t.Errorf("Table() should mark omitted rows:\n%s", out)
	}
	// Head and tail survive truncation.
	if !strings.Contains(out, "1.00") {
		t.Errorf("Table() missing first row:\n%s", out)
	}
	if !strings.Contains(out, "20.00") {
		t.Errorf("Table() missing last row:\n%s", out)
	}
	// A middle row does not.
	if strings.Contains(out, fmt.Sprintf("%.2f", 10.0)) {
		t.Errorf("Table() should omit middle rows:\n%s", out)
	}
	if !strings.Contains(out, "Total points: 20") {
		t.Errorf("Table() total should count all rows:\n%s", out)
	}
}

func TestTable_Empty(t *testing.T) {
	out := Table(nil, "Wind", 50)
	if !strings.Contains(out, `No data for "Wind"`) {
		t.Errorf("Table() = %q, want no-data message", out)
	}
}
