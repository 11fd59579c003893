package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/diwise/api-mosmix/internal/pkg/application/services/forecasts"
	"github.com/diwise/api-mosmix/internal/pkg/application/services/parameters"
	"github.com/diwise/api-mosmix/internal/pkg/application/services/stations"
	"github.com/diwise/api-mosmix/internal/pkg/infrastructure/opendata"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	stationsURL   string
	shortRangeURL string
	longRangeURL  string
	parametersURL string
	verbose       bool
)

var rootCmd = &cobra.Command{
	Use:   "mosmix",
	Short: "mosmix - DWD MOSMIX point forecasts from the command line",
	Long: `mosmix looks up the MOSMIX station closest to a position, downloads
short (MOSMIX_S) or long range (MOSMIX_L) forecasts for a station and describes
forecast parameters using the DWD element definitions.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.WarnLevel
		if verbose {
			level = zerolog.DebugLevel
		}

		log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
		cmd.SetContext(logging.NewContextWithLogger(cmd.Context(), log))
	},
}

func init() {
	_ = godotenv.Load()

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&stationsURL, "stations-url", env.GetVariableOrDefault(zerolog.Nop(), "MOSMIX_STATIONS_URL", stations.DefaultRegistryURL), "station registry")
	flags.StringVar(&shortRangeURL, "s-url", env.GetVariableOrDefault(zerolog.Nop(), "MOSMIX_S_URL", forecasts.DefaultShortRangeURL), "MOSMIX_S bundle")
	flags.StringVar(&longRangeURL, "l-url", env.GetVariableOrDefault(zerolog.Nop(), "MOSMIX_L_URL", forecasts.DefaultLongRangeURLTemplate), "MOSMIX_L bundle, the station id replaces both %s")
	flags.StringVar(&parametersURL, "parameters-url", env.GetVariableOrDefault(zerolog.Nop(), "MOSMIX_PARAMETERS_URL", parameters.DefaultDefinitionsURL), "element definitions")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type services struct {
	stations   stations.StationService
	parameters parameters.ParameterService
	forecasts  forecasts.ForecastService
}

func newServices(ctx context.Context) services {
	log := logging.GetFromContext(ctx)
	client := opendata.NewHTTPClient()

	params := parameters.NewParameterService(log, client, parametersURL)

	return services{
		stations:   stations.NewStationService(log, client, stationsURL),
		parameters: params,
		forecasts: forecasts.NewForecastService(
			log,
			forecasts.NewFetcher(client, shortRangeURL, longRangeURL),
			forecasts.NewParser(params),
		),
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
