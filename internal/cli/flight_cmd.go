package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/cockpit/internal/cli/formatter"
	"github.com/alexanderramin/cockpit/internal/domain"
	"github.com/spf13/cobra"
)

func newFlightCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flight",
		Short: "Start, pause and land focus flights",
	}

	cmd.AddCommand(
		newFlightStartCmd(app),
		newFlightPauseCmd(app),
		newFlightResumeCmd(app),
		newFlightLandCmd(app),
		newFlightAbortCmd(app),
		newFlightStatusCmd(app),
		newFlightNoteCmd(app),
	)

	return cmd
}

func newFlightStartCmd(app *App) *cobra.Command {
	var title, note string
	var minutes int
	var mission domain.MissionType
	var aircraft domain.AircraftID
	var cabin domain.CabinID

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Depart on a new flight",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			status, err := app.Status.GetStatus(ctx)
			if err != nil {
				return err
			}

			// Unset flags fall back to the saved draft.
			plan := status.DraftPlan
			plan.Title = title
			plan.Note = note
			if cmd.Flags().Changed("minutes") {
				plan.PlannedMinutes = minutes
			}
			if mission != "" {
				plan.MissionType = mission
			}
			if aircraft != "" {
				plan.AircraftID = aircraft
			}
			plan.CabinID = status.SelectedCabinID
			if cabin != "" {
				plan.CabinID = cabin
			}

			f, err := app.Flights.Start(ctx, plan)
			if err != nil {
				return report(cmd.OutOrStdout(), err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s · %s · %s · %s\n",
				formatter.PhaseIndicator(f.Status),
				formatter.Bold(f.Title),
				formatter.FormatMinutes(int(f.PlannedDurationMs/60_000)),
				formatter.AircraftName(f.AircraftID),
				formatter.CabinName(f.CabinID),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "What you are focusing on")
	cmd.Flags().IntVar(&minutes, "minutes", domain.DefaultPlannedMinutes, "Planned duration in minutes")
	cmd.Flags().Var(missionValue{&mission}, "mission", "Mission type: study or work")
	cmd.Flags().Var(aircraftValue{&aircraft}, "aircraft", "Aircraft id (see `cockpit fleet`)")
	cmd.Flags().Var(cabinValue{&cabin}, "cabin", "Owned cabin id (defaults to the selected cabin)")
	cmd.Flags().StringVar(&note, "note", "", "Free-form flight note")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newFlightPauseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pause",
		Short: "Pause the live flight",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Flights.Pause(context.Background()); err != nil {
				return report(cmd.OutOrStdout(), err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleYellow.Render("Flight paused."))
			return nil
		},
	}
}

func newFlightResumeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "resume",
		Short: "Resume a paused flight",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Flights.Resume(context.Background()); err != nil {
				return report(cmd.OutOrStdout(), err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render("Flight resumed."))
			return nil
		},
	}
}

func newFlightLandCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "land",
		Short: "Land the live flight and collect miles",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Flights.Land(context.Background())
			if err != nil {
				return report(cmd.OutOrStdout(), err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatLanding(result))
			return nil
		},
	}
}

func newFlightAbortCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "abort",
		Short: "Abort the live flight for half miles",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Flights.Abort(context.Background())
			if err != nil {
				return report(cmd.OutOrStdout(), err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatLanding(result))
			return nil
		},
	}
}

func newFlightStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the cockpit",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := app.Status.GetStatus(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatStatus(status))
			return nil
		},
	}
}

func newFlightNoteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "note TEXT",
		Short: "Replace the live flight's note",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Flights.UpdateNote(context.Background(), strings.Join(args, " ")); err != nil {
				return report(cmd.OutOrStdout(), err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Note updated."))
			return nil
		},
	}
}
