// Command fingrid-cli fetches electricity-related time series from the
// Fingrid Open Data API and displays them as a table, a PNG chart, or an
// Excel workbook.
//
// Usage:
//
//	fingrid-cli [flags]
//
// Examples:
//
//	# Table: consumption for the last 2 days (defaults)
//	fingrid-cli
//
//	# Table: wind production for a custom range
//	fingrid-cli -variable wind -start 2024-01-01 -end 2024-01-03
//
//	# Chart only, saved to file
//	fingrid-cli -variable production -days 7 -chart-only -output chart.png
//
//	# Excel export alongside the table
//	fingrid-cli -variable consumption -days 1 -xlsx consumption.xlsx
//
//	# List available variables
//	fingrid-cli -list-variables
//
// The API key is read from FINGRID_API_KEY (or FINGRID_OPENDATA_API_KEY /
// API_KEY), optionally via a .env file in the working directory.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/fingrid-tools/opendata-client/internal/config"
	"github.com/fingrid-tools/opendata-client/pkg/catalog"
	"github.com/fingrid-tools/opendata-client/pkg/client"
	"github.com/fingrid-tools/opendata-client/pkg/format"
	"github.com/fingrid-tools/opendata-client/pkg/logging"
	"github.com/fingrid-tools/opendata-client/pkg/series"
)

type options struct {
	variable      string
	start         string
	end           string
	days          int
	table         bool
	chart         bool
	chartOnly     bool
	output        string
	xlsx          string
	listVariables bool
	maxRows       int
	verbose       bool
}

func parseFlags() options {
	var opts options

	flag.StringVar(&opts.variable, "variable", "consumption",
		"variable/dataset name or ID (see -list-variables)")
	flag.StringVar(&opts.start, "start", "",
		"start time (e.g. 2024-01-01 or 2024-01-01T00:00); default: end minus -days")
	flag.StringVar(&opts.end, "end", "",
		"end time; default: now (UTC)")
	flag.IntVar(&opts.days, "days", 2,
		"number of days of data when -start/-end not given")
	flag.BoolVar(&opts.table, "table", true,
		"print results as a table")
	flag.BoolVar(&opts.chart, "chart", false,
		"render a PNG chart")
	flag.BoolVar(&opts.chartOnly, "chart-only", false,
		"only render the chart; do not print the table")
	flag.StringVar(&opts.output, "output", "",
		"save chart to this file (implies -chart)")
	flag.StringVar(&opts.xlsx, "xlsx", "",
		"export rows to an Excel workbook at this path")
	flag.BoolVar(&opts.listVariables, "list-variables", false,
		"list available variable names and dataset IDs, then exit")
	flag.IntVar(&opts.maxRows, "max-rows", 50,
		"max rows to show in the table before truncating")
	flag.BoolVar(&opts.verbose, "verbose", false,
		"enable debug logging")
	flag.Parse()

	if opts.chartOnly {
		opts.table = false
		opts.chart = true
	}
	if opts.output != "" {
		opts.chart = true
	}
	return opts
}

func main() {
	// Optional .env; absence is not an error.
	_ = godotenv.Load()

	opts := parseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if opts.verbose {
		cfg.LogLevel = "debug"
	}
	logging.Setup(cfg.LoggingConfig())

	if opts.listVariables {
		fmt.Println(catalog.List())
		return
	}

	if err := run(opts, cfg); err != nil {
		presentError(err)
		os.Exit(1)
	}
}

func run(opts options, cfg *config.Config) error {
	startTime, endTime := timeRange(opts)

	c, err := client.New(cfg.ClientConfig())
	if err != nil {
		return err
	}
	svc := series.NewService(c)

	rows, label, err := svc.FetchRows(context.Background(), opts.variable, startTime, endTime)
	if err != nil {
		return err
	}

	if opts.table {
		fmt.Println(format.Table(rows, label, opts.maxRows))
	}

	if opts.chart {
		path := opts.output
		if path == "" {
			path = "chart.png"
		}
		if err := format.SaveChart(rows, label, path); err != nil {
			return err
		}
		fmt.Printf("Chart saved to: %s\n", path)
	}

	if opts.xlsx != "" {
		if err := format.WriteWorkbook(rows, label, opts.xlsx); err != nil {
			return err
		}
		fmt.Printf("Workbook saved to: %s\n", opts.xlsx)
	}

	return nil
}

// timeRange computes the API start/end strings from the flags. Without -start
// and -end the range is the last -days days ending now (UTC).
func timeRange(opts options) (string, string) {
	now := time.Now().UTC()

	endStr := series.FormatQueryTime(now)
	endRef := now
	if opts.end != "" {
		endStr = series.NormalizeQueryTime(opts.end)
		if parsed, err := time.Parse("2006-01-02T15:04", endStr); err == nil {
			endRef = parsed
		} else if parsed, err := time.Parse("2006-01-02T15:04:05", endStr); err == nil {
			endRef = parsed
		}
	}

	startStr := series.FormatQueryTime(endRef.AddDate(0, 0, -opts.days))
	if opts.start != "" {
		startStr = series.NormalizeQueryTime(opts.start)
	}

	return startStr, endStr
}

// presentError prints the error verbatim plus auxiliary guidance for the
// cases a user can act on.
func presentError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)

	var unknown *series.ErrUnknownVariable
	if errors.As(err, &unknown) {
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, catalog.List())
		return
	}

	if client.IsMissingCredential(err) {
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "The API key is obtained from developer-data.fingrid.fi:")
		fmt.Fprintln(os.Stderr, "  1. Go to https://developer-data.fingrid.fi (or data.fingrid.fi -> Developer portal).")
		fmt.Fprintln(os.Stderr, "  2. Sign in/register and subscribe to 'Open Data starter'.")
		fmt.Fprintln(os.Stderr, "  3. Copy your API key and set: export FINGRID_API_KEY=your_key")
	}
}
