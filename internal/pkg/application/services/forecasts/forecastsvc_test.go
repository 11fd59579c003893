package forecasts

import (
	"context"
	"errors"
	"net/http"
	"os"
	"testing"

	"github.com/diwise/api-mosmix/internal/pkg/application/services/parameters"
	"github.com/diwise/api-mosmix/internal/pkg/domain"
	"github.com/diwise/api-mosmix/internal/pkg/infrastructure/opendata"
	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

func TestForecastFetchesAndParses(t *testing.T) {
	is, parser, _ := setupParserTest(t)

	server, _ := setupBundleServer(http.StatusOK, newBundle(t, "MOSMIX_S_2024030109_240.kml", forecastDocument))
	defer server.Close()

	svc := NewForecastService(zerolog.Logger{}, NewFetcher(opendata.NewHTTPClient(), server.URL, server.URL+"/%s/%s"), parser)

	result, err := svc.Forecast(context.Background(), "10389", ShortRange, domain.NormalizeOptions{KelvinToCelsius: true})
	is.NoErr(err)
	is.Equal(result.ID, "10389")
	is.Equal(result.Parameters[0].UnitOfMeasurement, domain.UnitCelsius)
	is.Equal(result.Parameters[1].UnitOfMeasurement, domain.UnitPascal)
}

func TestForecastForUnknownStationFails(t *testing.T) {
	is, parser, _ := setupParserTest(t)

	server, _ := setupBundleServer(http.StatusOK, newBundle(t, "MOSMIX_S_2024030109_240.kml", forecastDocument))
	defer server.Close()

	svc := NewForecastService(zerolog.Logger{}, NewFetcher(opendata.NewHTTPClient(), server.URL, server.URL+"/%s/%s"), parser)

	_, err := svc.Forecast(context.Background(), "00000", ShortRange, domain.NormalizeOptions{})
	is.True(errors.Is(err, ErrStationNotFound))
}

func TestForecastAgainstTheLiveService(t *testing.T) {
	if testing.Short() || os.Getenv("MOSMIX_INTEGRATION") == "" {
		t.Skip("set MOSMIX_INTEGRATION to run tests against opendata.dwd.de")
	}

	is := is.New(t)
	client := opendata.NewHTTPClient()

	params := parameters.NewParameterService(zerolog.Logger{}, client, parameters.DefaultDefinitionsURL)
	svc := NewForecastService(zerolog.Logger{}, NewFetcher(client, DefaultShortRangeURL, DefaultLongRangeURLTemplate), NewParser(params))

	result, err := svc.Forecast(context.Background(), "10389", ShortRange, domain.NormalizeOptions{PressureToHectoPascal: true, KelvinToCelsius: true})
	is.NoErr(err)
	is.Equal(result.Dataset, "MOSMIX_S")
	is.Equal(result.IntervalMinutes, 60)
	is.Equal(result.ID, "10389")
	is.True(result.Data.Len() > 0)
}
