package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/star/scoped/internal/launch"
	"github.com/star/scoped/internal/metrics"
)

func payloadCmd(a *app) *cobra.Command {
	var (
		thrust   float64
		altitude float64
		vehicle  string
	)

	cmd := &cobra.Command{
		Use:   "payload",
		Short: "Estimate payload capacity to a circular orbit",
		Long: `Estimate the payload mass in kilograms a vehicle can place into a circular
orbit, from its liftoff thrust in newtons and the orbit altitude in kilometres.

Thrust comes from --thrust or from a catalogue vehicle (--vehicle). The vehicle
model (specific impulse, thrust-to-weight, structural fraction, ascent losses)
comes from the configuration. Altitude defaults to 0 km, the surface-grazing
orbit that bounds capacity from above.`,
		Example: `  scoped payload --thrust 7.607e6 --altitude 200
  scoped payload --vehicle falcon9 --altitude 550`,
		RunE: func(cmd *cobra.Command, args []string) error {
			model := a.cfg.Model.Model()
			if vehicle != "" {
				var err error
				thrust, model, err = a.cfg.Vehicle(vehicle)
				if err != nil {
					return err
				}
			}

			kg, err := model.PayloadCapacity(thrust, altitude)
			metrics.RecordPayload(kg, err)
			if err != nil {
				return fmt.Errorf("payload capacity: %w", err)
			}

			a.logger.Info("payload calculated",
				"vehicle", vehicle,
				"thrust_n", thrust,
				"altitude_km", altitude,
				"payload_kg", kg,
			)

			fmt.Fprintf(cmd.OutOrStdout(), "%.1f kg\n", kg)
			if kg == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s orbit at %g km is out of reach (needs %.0f m/s)\n",
					warn.Sprint("!"), altitude, launch.RequiredDeltaV(altitude)+model.AscentLosses)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&thrust, "thrust", 0, "liftoff thrust in newtons")
	cmd.Flags().Float64Var(&altitude, "altitude", 0, "circular orbit altitude in kilometres (default sea level)")
	cmd.Flags().StringVar(&vehicle, "vehicle", "", "catalogue vehicle to take thrust and model from")
	cmd.MarkFlagsMutuallyExclusive("thrust", "vehicle")
	cmd.MarkFlagsOneRequired("thrust", "vehicle")

	return cmd
}
