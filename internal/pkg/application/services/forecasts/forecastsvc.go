package forecasts

import (
	"context"
	"fmt"

	"github.com/diwise/api-mosmix/internal/pkg/domain"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("api-mosmix/svcs/forecasts")

//go:generate moq -rm -out forecastsvc_mock.go . ForecastService
type ForecastService interface {
	Forecast(ctx context.Context, stationID string, ds Dataset, opts domain.NormalizeOptions) (*domain.ForecastResult, error)
}

func NewForecastService(log zerolog.Logger, fetcher *Fetcher, parser *Parser) ForecastService {
	return &fs{
		fetcher: fetcher,
		parser:  parser,
		log:     log,
	}
}

type fs struct {
	fetcher *Fetcher
	parser  *Parser
	log     zerolog.Logger
}

func (svc *fs) Forecast(ctx context.Context, stationID string, ds Dataset, opts domain.NormalizeOptions) (*domain.ForecastResult, error) {
	var err error
	ctx, span := tracer.Start(ctx, "forecast")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	_, ctx, logger := o11y.AddTraceIDToLoggerAndStoreInContext(span, svc.log, ctx)

	document, err := svc.fetcher.Fetch(ctx, ds, stationID)
	if err != nil {
		return nil, err
	}

	result, err := svc.parser.Parse(ctx, document, ds, stationID, opts)
	if err != nil {
		err = fmt.Errorf("failed to parse %s forecast: %w", ds.Name, err)
		return nil, err
	}

	logger.Debug().Str("station", stationID).Str("dataset", ds.Name).Int("count", result.Count).Int("parameters", len(result.Parameters)).Msg("forecast parsed")

	return result, nil
}
