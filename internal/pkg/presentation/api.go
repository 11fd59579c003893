package presentation

import (
	"bytes"
	"compress/flate"
	"context"
	"net/http"

	"github.com/diwise/api-mosmix/internal/pkg/application/services/forecasts"
	"github.com/diwise/api-mosmix/internal/pkg/application/services/parameters"
	"github.com/diwise/api-mosmix/internal/pkg/application/services/stations"
	"github.com/diwise/api-mosmix/internal/pkg/infrastructure/opendata"
	"github.com/diwise/api-mosmix/internal/pkg/presentation/handlers"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

type API interface {
	Start(port string) error
}

type mosmixAPI struct {
	router chi.Router
	log    zerolog.Logger
}

func NewAPI(r chi.Router, ctx context.Context, openapiResponse *bytes.Buffer) API {
	return newMosmixAPI(r, ctx, opendata.NewHTTPClient(), openapiResponse)
}

func newMosmixAPI(r chi.Router, ctx context.Context, client opendata.HTTPClient, openapiResponse *bytes.Buffer) *mosmixAPI {
	log := logging.GetFromContext(ctx)

	r.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		Debug:            false,
	}).Handler)

	// Enable gzip compression for our responses
	compressor := middleware.NewCompressor(
		flate.DefaultCompression,
		"text/csv", "application/json",
	)
	r.Use(compressor.Handler)
	r.Use(otelchi.Middleware("api-mosmix", otelchi.WithChiRoutes(r)))

	a := &mosmixAPI{
		router: r,
		log:    log,
	}

	a.addMosmixHandlers(r, log, client)
	a.addProbeHandlers(r)

	a.router.Get("/api/api-docs", a.newRetrieveOpenAPIHandler(log, openapiResponse))
	a.router.Get("/api/openapi", a.newRetrieveOpenAPIHandler(log, openapiResponse))

	return a
}

func (a *mosmixAPI) Start(port string) error {
	a.log.Info().Msgf("Starting api-mosmix on port:%s", port)
	return http.ListenAndServe(":"+port, a.router)
}

func (a *mosmixAPI) addMosmixHandlers(r chi.Router, log zerolog.Logger, client opendata.HTTPClient) {
	stationsURL := env.GetVariableOrDefault(log, "MOSMIX_STATIONS_URL", stations.DefaultRegistryURL)
	shortRangeURL := env.GetVariableOrDefault(log, "MOSMIX_S_URL", forecasts.DefaultShortRangeURL)
	longRangeURL := env.GetVariableOrDefault(log, "MOSMIX_L_URL", forecasts.DefaultLongRangeURLTemplate)
	parametersURL := env.GetVariableOrDefault(log, "MOSMIX_PARAMETERS_URL", parameters.DefaultDefinitionsURL)

	stationSvc := stations.NewStationService(log, client, stationsURL)
	parameterSvc := parameters.NewParameterService(log, client, parametersURL)
	forecastSvc := forecasts.NewForecastService(
		log,
		forecasts.NewFetcher(client, shortRangeURL, longRangeURL),
		forecasts.NewParser(parameterSvc),
	)

	r.Get(
		"/api/stations/nearest",
		handlers.NewRetrieveNearestStationHandler(log, stationSvc),
	)
	r.Get(
		"/api/forecasts",
		handlers.NewRetrieveForecastNearPointHandler(log, stationSvc, forecastSvc),
	)
	r.Get(
		"/api/forecasts/{station}",
		handlers.NewRetrieveForecastHandler(log, forecastSvc),
	)
	r.Get(
		"/api/parameters/{code}",
		handlers.NewRetrieveParameterHandler(log, parameterSvc),
	)
}

func (a *mosmixAPI) addProbeHandlers(r chi.Router) {
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func (a *mosmixAPI) newRetrieveOpenAPIHandler(log zerolog.Logger, openapiResponse *bytes.Buffer) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if openapiResponse == nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(openapiResponse.Bytes())
	})
}
