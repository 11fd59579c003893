package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/diwise/api-mosmix/internal/pkg/application/services/stations"
	"github.com/diwise/api-mosmix/internal/pkg/domain"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/rs/zerolog"
)

type NearestStation struct {
	Station  domain.Station `json:"station"`
	Distance float64        `json:"distance"`
}

func NewRetrieveNearestStationHandler(logger zerolog.Logger, svc stations.StationService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "retrieve-nearest-station")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		lat, lon, err := getLatLonFromURL(r)
		if err != nil {
			log.Error().Err(err).Msg("bad request")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		timeout, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()

		station, distance, err := svc.FindNearest(timeout, lat, lon)
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

		body, err := json.MarshalIndent(NearestStation{Station: station, Distance: distance}, " ", "  ")
		if err != nil {
			err = fmt.Errorf("unable to marshal results to json (%w)", err)
			log.Error().Err(err).Msg("internal error")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeData(w, body)
	})
}
