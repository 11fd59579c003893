package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	nearestLat float64
	nearestLon float64
)

var nearestCmd = &cobra.Command{
	Use:   "nearest",
	Short: "Find the station closest to a position",
	RunE:  runNearest,
}

func init() {
	rootCmd.AddCommand(nearestCmd)

	nearestCmd.Flags().Float64Var(&nearestLat, "lat", 0, "latitude in decimal degrees")
	nearestCmd.Flags().Float64Var(&nearestLon, "lon", 0, "longitude in decimal degrees")
	nearestCmd.MarkFlagRequired("lat")
	nearestCmd.MarkFlagRequired("lon")
}

func runNearest(cmd *cobra.Command, args []string) error {
	svc := newServices(cmd.Context())

	station, distance, err := svc.stations.FindNearest(cmd.Context(), nearestLat, nearestLon)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "id %s name %s distance %g\n", station.ID, station.Name, distance)
	return nil
}
