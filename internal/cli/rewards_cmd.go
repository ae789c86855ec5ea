package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/cockpit/internal/cli/formatter"
	"github.com/alexanderramin/cockpit/internal/domain"
	"github.com/spf13/cobra"
)

func newCabinCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cabin",
		Short: "Browse, buy and select cabin classes",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Show cabin classes and prices",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := app.Status.GetStatus(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCabinTable(status.Cabins, status.MileBalance))
			return nil
		},
	}

	buy := &cobra.Command{
		Use:   "buy ID",
		Short: "Unlock a cabin class with miles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := domain.CabinID(strings.ToLower(args[0]))
			if err := app.Rewards.PurchaseCabin(context.Background(), id); err != nil {
				return report(cmd.OutOrStdout(), err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Unlocked %s. It is now your selected cabin.\n", formatter.Bold(formatter.CabinName(id)))
			return nil
		},
	}

	sel := &cobra.Command{
		Use:   "select ID",
		Short: "Make an owned cabin the default",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := domain.CabinID(strings.ToLower(args[0]))
			if err := app.Rewards.SelectCabin(context.Background(), id); err != nil {
				return report(cmd.OutOrStdout(), err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Selected %s.\n", formatter.Bold(formatter.CabinName(id)))
			return nil
		},
	}

	cmd.AddCommand(list, buy, sel)
	return cmd
}

func newFleetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fleet",
		Short: "List the aircraft you can fly",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatFleetTable(domain.AircraftCatalog()))
			return nil
		},
	}
}

func newGoalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage the weekly focus goal",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set MINUTES",
		Short: fmt.Sprintf("Set the weekly goal (%d-%d minutes)", domain.MinWeeklyGoalMinutes, domain.MaxWeeklyGoalMinutes),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			minutes, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid minutes %q: %w", args[0], err)
			}
			stored, err := app.Rewards.SetWeeklyGoal(context.Background(), minutes)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Weekly goal set to %s.\n", formatter.FormatMinutes(stored))
			if stored != minutes {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim(fmt.Sprintf("(clamped from %d)", minutes)))
			}
			return nil
		},
	})
	return cmd
}

func newBonusCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bonus",
		Short: "Weekly goal bonus",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "claim",
		Short: "Claim this week's bonus once the goal is met",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Rewards.ClaimWeeklyBonus(context.Background())
			if err != nil {
				return report(cmd.OutOrStdout(), err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatBonus(result))
			return nil
		},
	})
	return cmd
}

func newNotesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Scratch notes kept alongside the cockpit",
	}

	set := &cobra.Command{
		Use:   "set TEXT",
		Short: "Replace the notes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Rewards.SetNotes(context.Background(), strings.Join(args, " ")); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Notes saved."))
			return nil
		},
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the notes",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := app.Status.GetStatus(context.Background())
			if err != nil {
				return err
			}
			if status.Notes == "" {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No notes."))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), status.Notes)
			return nil
		},
	}

	cmd.AddCommand(set, show)
	return cmd
}

func newResetCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase miles, cabins, logbook and the live flight",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errMissingConfirm
			}
			if err := app.Rewards.ResetAll(context.Background()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleRed.Render("Cockpit reset to factory settings."))
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the reset")
	return cmd
}
