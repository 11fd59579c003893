package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/diwise/api-mosmix/internal/pkg/application/services/forecasts"
	"github.com/diwise/api-mosmix/internal/pkg/application/services/stations"
	"github.com/diwise/api-mosmix/internal/pkg/domain"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

func getForecastParamsFromURL(r *http.Request) (forecasts.Dataset, domain.NormalizeOptions, error) {
	opts := domain.NormalizeOptions{}

	ds, err := forecasts.ParseDataset(r.URL.Query().Get("dataset"))
	if err != nil {
		return ds, opts, err
	}

	if opts.PressureToHectoPascal, err = getFlagFromURL(r, "hpa"); err != nil {
		return ds, opts, err
	}

	if opts.KelvinToCelsius, err = getFlagFromURL(r, "celsius"); err != nil {
		return ds, opts, err
	}

	return ds, opts, nil
}

func NewRetrieveForecastHandler(logger zerolog.Logger, svc forecasts.ForecastService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "retrieve-forecast")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		stationID, _ := url.QueryUnescape(chi.URLParam(r, "station"))
		if stationID == "" {
			err = fmt.Errorf("no station id supplied in query")
			log.Error().Err(err).Msg("bad request")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		ds, opts, err := getForecastParamsFromURL(r)
		if err != nil {
			log.Error().Err(err).Msg("bad request")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		timeout, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()

		result, err := svc.Forecast(timeout, stationID, ds, opts)
		if err != nil {
			if errors.Is(err, forecasts.ErrStationNotFound) {
				w.WriteHeader(http.StatusNotFound)
				return
			}

			err = fmt.Errorf("failed to retrieve forecast for station %s (%w)", stationID, err)
			log.Error().Err(err).Msg("internal error")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeForecast(log, w, r, result)
	})
}

func NewRetrieveForecastNearPointHandler(logger zerolog.Logger, stationSvc stations.StationService, forecastSvc forecasts.ForecastService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "retrieve-forecast-near-point")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		lat, lon, err := getLatLonFromURL(r)
		if err != nil {
			log.Error().Err(err).Msg("bad request")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		ds, opts, err := getForecastParamsFromURL(r)
		if err != nil {
			log.Error().Err(err).Msg("bad request")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		timeout, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()

		station, distance, err := stationSvc.FindNearest(timeout, lat, lon)
		if err != nil {
			if errors.Is(err, stations.ErrNoStationFound) {
				w.WriteHeader(http.StatusNotFound)
				return
			}

			err = fmt.Errorf("failed to find nearest station (%w)", err)
			log.Error().Err(err).Msg("internal error")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		log.Debug().Str("station", station.ID).Float64("distance", distance).Msg("forecasting for nearest station")

		result, err := forecastSvc.Forecast(timeout, station.ID, ds, opts)
		if err != nil {
			if errors.Is(err, forecasts.ErrStationNotFound) {
				w.WriteHeader(http.StatusNotFound)
				return
			}

			err = fmt.Errorf("failed to retrieve forecast for station %s (%w)", station.ID, err)
			log.Error().Err(err).Msg("internal error")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeForecast(log, w, r, result)
	})
}

func writeForecast(log zerolog.Logger, w http.ResponseWriter, r *http.Request, result *domain.ForecastResult) {
	if strings.HasPrefix(r.Header.Get("Accept"), "text/csv") {
		w.Header().Add("Content-Type", "text/csv")
		w.WriteHeader(http.StatusOK)
		w.Write(forecastTableAsCSV(result.Data))
		return
	}

	body, err := json.MarshalIndent(result, " ", "  ")
	if err != nil {
		log.Error().Err(err).Msg("unable to marshal results to json")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeData(w, body)
}

// forecastTableAsCSV writes one semicolon separated line per time step. Absent
// values are left empty.
func forecastTableAsCSV(table *domain.ForecastTable) []byte {
	columns := table.Columns()

	b := bytes.NewBufferString(domain.TimeColumn)
	for _, c := range columns {
		b.WriteString(";" + c)
	}

	for i := 0; i < table.Len(); i++ {
		row := table.Row(i)

		b.WriteString("\n" + table.Time()[i])
		for _, c := range columns {
			b.WriteByte(';')
			if v := row[c]; !v.IsAbsent() {
				b.WriteString(v.String())
			}
		}
	}

	return b.Bytes()
}
