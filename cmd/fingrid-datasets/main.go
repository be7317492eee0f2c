// Command fingrid-datasets scans a range of dataset IDs for metadata and
// writes the id/name pairs found to a JSON file. Useful for refreshing the
// variable catalog against what the API actually serves.
//
// Usage:
//
//	export FINGRID_API_KEY=your_key
//	fingrid-datasets [-first 1] [-last 250] [-output datasets_info.json]
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/fingrid-tools/opendata-client/internal/config"
	"github.com/fingrid-tools/opendata-client/pkg/client"
	"github.com/fingrid-tools/opendata-client/pkg/logging"
)

type datasetInfo struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func main() {
	_ = godotenv.Load()

	first := flag.Int("first", 1, "first dataset ID to scan")
	last := flag.Int("last", 250, "last dataset ID to scan (inclusive)")
	output := flag.String("output", "datasets_info.json", "output file")
	delay := flag.Duration("delay", 2*time.Second, "delay between metadata requests")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger := logging.Setup(cfg.LoggingConfig())

	clientCfg := cfg.ClientConfig()
	clientCfg.RequestDelay = *delay

	c, err := client.New(clientCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	var found []datasetInfo
	var notFound []int

	for id := *first; id <= *last; id++ {
		meta, err := c.FetchDatasetMetadata(ctx, strconv.Itoa(id))
		if err != nil {
			var apiErr *client.APIError
			if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
				notFound = append(notFound, id)
				continue
			}
			// Credential and rate-limit failures will not resolve by
			// moving to the next ID.
			if client.IsMissingCredential(err) || client.IsRateLimited(err) {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			logger.Warn().Err(err).Int("dataset", id).Msg("Metadata fetch failed")
			continue
		}
		found = append(found, datasetInfo{ID: meta.ID, Name: meta.Name()})
	}

	data, err := json.MarshalIndent(found, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*output, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Info().
		Int("found", len(found)).
		Int("not_found", len(notFound)).
		Str("output", *output).
		Msg("Dataset scan complete")
	fmt.Printf("Dataset information (count): %d\n", len(found))
	fmt.Printf("Written to %s\n", *output)
}
