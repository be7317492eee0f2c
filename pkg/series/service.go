package series

import (
	"context"
	"fmt"
	"strings"

	"github.com/fingrid-tools/opendata-client/pkg/catalog"
	"github.com/fingrid-tools/opendata-client/pkg/client"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Service composes the dataset catalog, the API client, and the normalizer.
type Service struct {
	client *client.Client
	logger zerolog.Logger
}

// NewService creates a series service around an existing client.
func NewService(c *client.Client) *Service {
	return &Service{
		client: c,
		logger: log.With().Str("component", "series-service").Logger(),
	}
}

// ErrUnknownVariable is returned (wrapped) when a variable cannot be resolved
// to a dataset ID. It is a caller input problem, not an API failure, so it is
// deliberately outside the client error taxonomy.
type ErrUnknownVariable struct {
	Variable string
}

func (e *ErrUnknownVariable) Error() string {
	names := catalog.Names()
	if len(names) > 8 {
		names = names[:8]
	}
	return fmt.Sprintf("unknown variable %q; use a name (e.g. %s) or a dataset ID",
		e.Variable, strings.Join(names, ", "))
}

// FetchRows resolves variable to a dataset ID, fetches the requested time
// range, and returns normalized rows together with a display label for the
// series. Start and end must already be in API form (see NormalizeQueryTime)
// with start <= end; inverted ranges are passed through unvalidated.
func (s *Service) FetchRows(ctx context.Context, variable, startTime, endTime string) ([]Row, string, error) {
	datasetID, ok := catalog.Resolve(variable)
	if !ok {
		return nil, "", &ErrUnknownVariable{Variable: variable}
	}

	label := variable
	if l, ok := catalog.LabelFor(datasetID); ok {
		label = l
	}

	raw, err := s.client.FetchTimeseries(ctx, []string{datasetID}, startTime, endTime)
	if err != nil {
		return nil, "", err
	}

	rows := Normalize(raw, datasetID)

	s.logger.Debug().
		Str("variable", variable).
		Str("dataset_id", datasetID).
		Int("raw", len(raw)).
		Int("rows", len(rows)).
		Msg("Series normalized")

	return rows, label, nil
}
