package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/diwise/api-mosmix/internal/pkg/application/services/parameters"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// NewRetrieveParameterHandler always answers 200, unknown codes are described by
// a placeholder
func NewRetrieveParameterHandler(logger zerolog.Logger, svc parameters.ParameterService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "retrieve-parameter")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		code, _ := url.QueryUnescape(chi.URLParam(r, "code"))
		if code == "" {
			err = fmt.Errorf("no parameter code supplied in query")
			log.Error().Err(err).Msg("bad request")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		body, err := json.MarshalIndent(svc.Describe(ctx, code), " ", "  ")
		if err != nil {
			err = fmt.Errorf("unable to marshal results to json (%w)", err)
			log.Error().Err(err).Msg("internal error")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeData(w, body)
	})
}
