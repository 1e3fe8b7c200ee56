package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// referenceAltitudeKm is the orbit used for the catalogue's payload column.
const referenceAltitudeKm = 200

func vehiclesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "vehicles",
		Short: "List catalogue vehicles",
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "NAME\tTHRUST (MN)\tPAYLOAD @%d km (kg)\tDESCRIPTION\n", referenceAltitudeKm)
			for _, name := range a.cfg.VehicleNames() {
				thrust, model, err := a.cfg.Vehicle(name)
				if err != nil {
					return err
				}
				kg, err := model.PayloadCapacity(thrust, referenceAltitudeKm)
				if err != nil {
					return fmt.Errorf("vehicle %q: %w", name, err)
				}
				fmt.Fprintf(tw, "%s\t%.3f\t%.0f\t%s\n", name, thrust/1e6, kg, a.cfg.Vehicles[name].Description)
			}
			return tw.Flush()
		},
	}
}
