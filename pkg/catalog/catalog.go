// Package catalog maps human-readable variable names to Fingrid dataset IDs.
// Source: https://data.fingrid.fi/en/datasets
package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// datasets maps display name -> dataset ID.
var datasets = map[string]string{
	"consumption":             "193", // Total power consumption in Finland
	"production":              "192", // Total power production in Finland
	"wind":                    "181", // Wind power production
	"hydro":                   "191", // Hydro power production
	"nuclear":                 "188", // Nuclear power production
	"solar_forecast":          "248", // Solar power forecast
	"chp":                     "201", // Combined heat and power
	"industrial_chp":          "202", // Industrial CHP
	"other_production":        "205", // Reserve power plants and small-scale production
	"transmission_estonia":    "180", // Transmission Finland-Estonia
	"transmission_sweden_se1": "87",  // Transmission Finland-Northern Sweden (SE1)
	"transmission_sweden_se3": "89",  // Transmission Finland-Central Sweden (SE3)
	"transmission_norway":     "187", // Transmission Finland-Norway
	"peak_load":               "183", // Peak load power
	"power_system_state":      "209", // Power system state (traffic lights)
	"wind_forecast":           "245", // Wind power generation forecast
	"district_heating":        "371", // Electric boiler consumption sum
}

// Resolve maps a variable name or raw numeric ID to a dataset ID.
// Returns false when the input is neither a known name nor numeric.
func Resolve(nameOrID string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(nameOrID))
	key = strings.ReplaceAll(key, " ", "_")
	if id, ok := datasets[key]; ok {
		return id, true
	}
	if isDigits(nameOrID) {
		return nameOrID, true
	}
	return "", false
}

// LabelFor returns a display label for a dataset ID, derived from the catalog
// name when the ID is known.
func LabelFor(datasetID string) (string, bool) {
	for name, id := range datasets {
		if id == datasetID {
			label := strings.ReplaceAll(name, "_", " ")
			return title(label), true
		}
	}
	return "", false
}

// Names returns all catalog names in sorted order.
func Names() []string {
	names := make([]string, 0, len(datasets))
	for name := range datasets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns a formatted listing of catalog names and IDs for display.
func List() string {
	var b strings.Builder
	b.WriteString("Available variables (use name or ID):\n\n")
	for _, name := range Names() {
		fmt.Fprintf(&b, "  %s: dataset ID %s\n", name, datasets[name])
	}
	return b.String()
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func title(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
