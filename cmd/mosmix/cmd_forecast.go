package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/diwise/api-mosmix/internal/pkg/application/services/forecasts"
	"github.com/diwise/api-mosmix/internal/pkg/domain"
	"github.com/spf13/cobra"
)

var (
	forecastStation string
	forecastDataset string
	forecastLat     float64
	forecastLon     float64
	forecastHPa     bool
	forecastCelsius bool
	forecastJSON    bool
)

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Download and print a station forecast",
	Long: `Download the latest MOSMIX forecast for a station, or for the station
closest to --lat/--lon, and print its first time step. Use --json for the
complete result.`,
	RunE: runForecast,
}

func init() {
	rootCmd.AddCommand(forecastCmd)

	flags := forecastCmd.Flags()
	flags.StringVar(&forecastStation, "station", "", "station id, e.g. 10389")
	flags.StringVar(&forecastDataset, "dataset", "S", "S (hourly) or L (6 hourly)")
	flags.Float64Var(&forecastLat, "lat", 0, "latitude used when no station is given")
	flags.Float64Var(&forecastLon, "lon", 0, "longitude used when no station is given")
	flags.BoolVar(&forecastHPa, "hpa", false, "convert pressure from Pa to hPa")
	flags.BoolVar(&forecastCelsius, "celsius", false, "convert temperatures from K to °C")
	flags.BoolVar(&forecastJSON, "json", false, "print the complete result as json")
}

func runForecast(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	ds, err := forecasts.ParseDataset(forecastDataset)
	if err != nil {
		return err
	}

	svc := newServices(ctx)

	stationID := forecastStation
	if stationID == "" {
		if !cmd.Flags().Changed("lat") || !cmd.Flags().Changed("lon") {
			return fmt.Errorf("either --station or both --lat and --lon are required")
		}

		station, distance, err := svc.stations.FindNearest(ctx, forecastLat, forecastLon)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "id %s name %s distance %g\n", station.ID, station.Name, distance)
		stationID = station.ID
	}

	opts := domain.NormalizeOptions{PressureToHectoPascal: forecastHPa, KelvinToCelsius: forecastCelsius}

	result, err := svc.forecasts.Forecast(ctx, stationID, ds, opts)
	if err != nil {
		return err
	}

	if forecastJSON {
		return printJSON(out, result)
	}

	return printFirstTimeStep(out, result)
}

func printFirstTimeStep(w io.Writer, result *domain.ForecastResult) error {
	fmt.Fprintf(w, "%s %s issued %s, next update %s, %d time steps\n",
		result.Dataset, result.ID, result.IssueTime, result.NextUpdate, result.Count)

	if result.Data.Len() == 0 {
		return nil
	}

	units := map[string]string{}
	for _, p := range result.Parameters {
		units[p.ShortName] = p.UnitOfMeasurement
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	row := result.Data.Row(0)

	fmt.Fprintf(tw, "%s\t%s\t\n", domain.TimeColumn, result.Data.Time()[0])
	for _, name := range result.Data.Columns() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", name, row[name], units[name])
	}

	return tw.Flush()
}
