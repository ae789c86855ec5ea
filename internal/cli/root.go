package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/alexanderramin/cockpit/internal/app"
	"github.com/alexanderramin/cockpit/internal/cli/formatter"
	"github.com/alexanderramin/cockpit/internal/config"
	"github.com/alexanderramin/cockpit/internal/domain"
	"github.com/spf13/cobra"
)

// App holds the use-case ports driven by CLI commands and the TUI.
type App struct {
	Flights app.FlightUseCase
	Rewards app.RewardsUseCase
	Status  app.StatusUseCase

	Config config.Config

	// IsInteractive reports whether stdin is a terminal. When nil the bare
	// command prints help instead of opening the TUI.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "cockpit" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "cockpit",
		Short: "Focus timer that flies your work sessions and earns miles",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runTUI(app)
			}
			return cmd.Help()
		},
		SilenceUsage: true,
	}

	root.AddCommand(
		newTUICmd(app),
		newFlightCmd(app),
		newLogCmd(app),
		newCabinCmd(app),
		newFleetCmd(),
		newGoalCmd(app),
		newBonusCmd(app),
		newNotesCmd(app),
		newResetCmd(app),
		newServeCmd(app),
	)

	return root
}

func newTUICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive cockpit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(app)
		},
	}
}

// report prints a rejected action as a notice and swallows it; the action
// simply did not happen. Other errors are returned to cobra.
func report(w io.Writer, err error) error {
	if err == nil {
		return nil
	}
	if domain.IsRejection(err) {
		fmt.Fprintln(w, formatter.Notice(err.Error()))
		return nil
	}
	return err
}

var errMissingConfirm = errors.New("refusing to reset without --yes")
