package stations

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"regexp"

	"github.com/diwise/api-mosmix/internal/pkg/domain"
	"github.com/diwise/api-mosmix/internal/pkg/infrastructure/opendata"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"golang.org/x/text/encoding/charmap"
)

var tracer = otel.Tracer("api-mosmix/svcs/stations")

const DefaultRegistryURL string = "https://www.dwd.de/EN/ourservices/met_application_mosmix/mosmix_stations.cfg?view=nasPublication"

var ErrNoStationFound = errors.New("no station found")

const (
	earthRadiusKm float64 = 6371

	// distance reported while only the first station has been seen
	unmeasuredDistance float64 = 999999
)

var startsWithDigit = regexp.MustCompile(`^\d`)

//go:generate moq -rm -out stationsvc_mock.go . StationService
type StationService interface {
	FindNearest(ctx context.Context, lat, lon float64) (domain.Station, float64, error)
}

func NewStationService(log zerolog.Logger, client opendata.HTTPClient, registryURL string) StationService {
	return &locator{
		registryURL: registryURL,
		client:      client,
		log:         log,
	}
}

type locator struct {
	registryURL string
	client      opendata.HTTPClient
	log         zerolog.Logger
}

// FindNearest streams the station registry and returns the station closest to
// (lat, lon) together with its distance in kilometers.
func (l *locator) FindNearest(ctx context.Context, lat, lon float64) (domain.Station, float64, error) {
	var err error
	ctx, span := tracer.Start(ctx, "find-nearest-station")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	_, ctx, logger := o11y.AddTraceIDToLoggerAndStoreInContext(span, l.log, ctx)

	body, err := opendata.Open(ctx, l.client, l.registryURL)
	if err != nil {
		err = fmt.Errorf("failed to open station registry: %w", err)
		return domain.Station{}, 0, err
	}
	defer body.Close()

	station, distance, err := nearest(logger, body, lat, lon)
	if err != nil {
		return domain.Station{}, 0, err
	}

	logger.Debug().Str("station", station.ID).Float64("distance", distance).Msg("nearest station found")

	return station, distance, nil
}

// nearest reads a Windows-1252 encoded registry line by line. The first station
// seeds the result without being measured, every following station replaces it
// when strictly closer.
func nearest(logger zerolog.Logger, registry io.Reader, lat, lon float64) (domain.Station, float64, error) {
	reader := bufio.NewReader(charmap.Windows1252.NewDecoder().Reader(registry))

	var best *domain.Station
	bestDistance := unmeasuredDistance

	for {
		line, readErr := reader.ReadString('\n')

		if startsWithDigit.MatchString(line) {
			station, err := domain.ParseStation(line)
			if err != nil {
				logger.Warn().Err(err).Msg("skipping malformed station")
			} else if best == nil {
				best = &station
			} else if d := math.Abs(Distance(station.Latitude, station.Longitude, lat, lon)); d < bestDistance {
				bestDistance = d
				best = &station
			}
		}

		if readErr == io.EOF {
			break
		}

		if readErr != nil {
			return domain.Station{}, 0, fmt.Errorf("failed to read station registry: %w", readErr)
		}
	}

	if best == nil {
		return domain.Station{}, 0, ErrNoStationFound
	}

	return *best, bestDistance, nil
}

// Distance is the great circle distance in kilometers between two points given in
// decimal degrees
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	φ1, λ1 := radians(lat1), radians(lon1)
	φ2, λ2 := radians(lat2), radians(lon2)

	dφ := φ2 - φ1
	dλ := λ2 - λ1

	a := math.Pow(math.Sin(dφ/2), 2) + math.Cos(φ1)*math.Cos(φ2)*math.Pow(math.Sin(dλ/2), 2)
	c := 2 * math.Asin(math.Sqrt(a))

	return earthRadiusKm * c
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
