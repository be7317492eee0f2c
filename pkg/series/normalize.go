// Package series converts raw Fingrid API records into uniform, time-ordered
// rows and exposes the fetch-and-normalize service used by the CLIs.
package series

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fingrid-tools/opendata-client/pkg/client"
)

// Row is the normalized output unit. Value is always a parseable number;
// records that fail to parse are dropped rather than surfaced.
type Row struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Value     float64   `json:"value"`
	DatasetID string    `json:"dataset_id"`
}

// Timestamp layouts accepted from the API, tried in order. Covers RFC 3339
// with and without fractional seconds, offset or Z suffixes, and the API's
// minute-precision form.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// parseTimestamp parses one API timestamp, normalizing to UTC.
func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// coerceFloat converts a loosely-typed value field to float64.
func coerceFloat(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case string:
		f, err := strconv.ParseFloat(val, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// coerceDatasetID renders a loosely-typed datasetId field as a string.
// Numeric IDs arrive as JSON numbers and must not pick up a decimal point.
func coerceDatasetID(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		if val == "" {
			return "", false
		}
		return val, true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case int:
		return strconv.Itoa(val), true
	default:
		return "", false
	}
}

// Normalize converts raw records into Rows sorted ascending by start time.
//
// The conversion is total: records missing a start time or value, or whose
// start time or value cannot be parsed, are dropped silently. A present end
// time is parsed the same way; an absent or unparseable one defaults to the
// start time. Records without a datasetId fall back to fallbackID. The sort
// is stable, so records sharing a start time keep their input order, and the
// output is ordered even when the API returns pages out of chronological
// order.
func Normalize(records []client.RawRecord, fallbackID string) []Row {
	rows := make([]Row, 0, len(records))

	for _, rec := range records {
		if rec.StartTime == nil || rec.Value == nil {
			continue
		}

		startStr, ok := rec.StartTime.(string)
		if !ok {
			continue
		}
		start, ok := parseTimestamp(startStr)
		if !ok {
			continue
		}

		value, ok := coerceFloat(rec.Value)
		if !ok {
			continue
		}

		end := start
		if endStr, ok := rec.EndTime.(string); ok {
			if parsed, ok := parseTimestamp(endStr); ok {
				end = parsed
			}
		}

		datasetID := fallbackID
		if id, ok := coerceDatasetID(rec.DatasetID); ok {
			datasetID = id
		}

		rows = append(rows, Row{
			StartTime: start,
			EndTime:   end,
			Value:     value,
			DatasetID: datasetID,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].StartTime.Before(rows[j].StartTime)
	})

	return rows
}

// NormalizeQueryTime normalizes user-supplied time input for the API.
// Accepted forms: "2006-01-02", "2006-01-02 15:04", "2006-01-02T15:04" and
// the same with seconds. A bare date becomes midnight.
func NormalizeQueryTime(s string) string {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return s
	case strings.Contains(s, "T"):
		return s
	case strings.Contains(s, " "):
		return strings.Replace(s, " ", "T", 1)
	default:
		return s + "T00:00"
	}
}

// FormatQueryTime renders a time.Time in the API's minute-precision form.
func FormatQueryTime(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04")
}
