package forecasts

import (
	"context"
	"errors"
	"fmt"

	"github.com/diwise/api-mosmix/internal/pkg/infrastructure/archive"
	"github.com/diwise/api-mosmix/internal/pkg/infrastructure/opendata"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

var errStationRequired = errors.New("the long range dataset requires a station id")

type Fetcher struct {
	client               opendata.HTTPClient
	shortRangeURL        string
	longRangeURLTemplate string
}

// NewFetcher expects longRangeURLTemplate to contain two %s verbs, both are
// replaced by the station id.
func NewFetcher(client opendata.HTTPClient, shortRangeURL, longRangeURLTemplate string) *Fetcher {
	return &Fetcher{
		client:               client,
		shortRangeURL:        shortRangeURL,
		longRangeURLTemplate: longRangeURLTemplate,
	}
}

func (f *Fetcher) URL(ds Dataset, stationID string) (string, error) {
	if !ds.IsLongRange() {
		return f.shortRangeURL, nil
	}

	if stationID == "" {
		return "", errStationRequired
	}

	return fmt.Sprintf(f.longRangeURLTemplate, stationID, stationID), nil
}

// Fetch downloads a forecast bundle and returns the first file in it
func (f *Fetcher) Fetch(ctx context.Context, ds Dataset, stationID string) ([]byte, error) {
	logger := logging.GetFromContext(ctx)

	url, err := f.URL(ds, stationID)
	if err != nil {
		return nil, err
	}

	bundle, err := opendata.Get(ctx, f.client, url)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s bundle: %w", ds.Name, err)
	}

	contents, name, err := archive.FirstEntry(bundle)
	if err != nil {
		return nil, fmt.Errorf("failed to extract %s bundle: %w", ds.Name, err)
	}

	logger.Info().Str("dataset", ds.Name).Str("entry", name).Int("size", len(contents)).Msg("forecast bundle extracted")

	return contents, nil
}
