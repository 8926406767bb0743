package cli

import (
	"packy/internal/action"

	"github.com/spf13/cobra"
)

func newTripCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trip",
		Short: "Trip details (name, dates, day count)",
	}
	cmd.AddCommand(newTripSetCmd(app))
	cmd.AddCommand(newTripShowCmd(app))
	return cmd
}

func newTripSetCmd(app *App) *cobra.Command {
	var name string
	var departure string
	var ret string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update trip name and dates (day count is recomputed)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ss, err := openSession(app, true)
			if err != nil {
				return writeErr(cmd, err)
			}
			trip, err := action.SetTrip(ss.store, name, departure, ret)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := ss.save(); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": trip})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Trip name (blank keeps the current name)")
	cmd.Flags().StringVar(&departure, "departure", "", "Departure date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&ret, "return", "", "Return date (YYYY-MM-DD)")
	return cmd
}

func newTripShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show trip details",
		RunE: func(cmd *cobra.Command, args []string) error {
			ss, err := openSession(app, true)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": ss.store.State().List.Trip})
		},
	}
}
