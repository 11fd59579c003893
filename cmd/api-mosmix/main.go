package main

import (
	"bytes"
	"context"
	"flag"
	"io"
	"os"

	"github.com/diwise/api-mosmix/internal/pkg/presentation"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
)

func openOASFile(ctx context.Context, path string) *os.File {
	log := logging.GetFromContext(ctx)
	oasfile, err := os.Open(path)
	if err != nil {
		log.Info().Msgf("failed to open the OpenAPI specification file %s.", path)
		return nil
	}
	return oasfile
}

var openApiSpecFileName string
var envFileName string

func main() {
	serviceName := "api-mosmix"
	serviceVersion := buildinfo.SourceVersion()

	flag.StringVar(&openApiSpecFileName, "oas", "/opt/diwise/openapi.json", "An OpenAPI specification to be served on /api/openapi")
	flag.StringVar(&envFileName, "env", ".env", "An optional file with environment variables")
	flag.Parse()

	envFileErr := godotenv.Load(envFileName)

	ctx, log, cleanup := o11y.Init(context.Background(), serviceName, serviceVersion)
	defer cleanup()

	log.Info().Msgf("Starting up %s ...", serviceName)

	if envFileErr == nil {
		log.Info().Msgf("loaded environment from %s", envFileName)
	}

	var oasResponseBuffer *bytes.Buffer
	if oasfile := openOASFile(ctx, openApiSpecFileName); oasfile != nil {
		defer oasfile.Close()
		oasResponseBuffer = bytes.NewBuffer(nil)
		written, err := io.Copy(oasResponseBuffer, oasfile)
		if err != nil {
			log.Error().Err(err).Msgf("failed to copy OpenAPI specification into response buffer")
			oasResponseBuffer = nil
		} else {
			log.Info().Msgf("copied %d bytes from %s into openapi response buffer.", written, openApiSpecFileName)
		}
	}

	port := env.GetVariableOrDefault(log, "SERVICE_PORT", "8880")

	r := chi.NewRouter()

	app := presentation.NewAPI(r, ctx, oasResponseBuffer)
	err := app.Start(port)
	if err != nil {
		log.Fatal().Msgf("failed to start router: %s", err.Error())
	}
}
