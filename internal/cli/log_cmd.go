package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/cockpit/internal/cli/formatter"
	"github.com/alexanderramin/cockpit/internal/export"
	"github.com/spf13/cobra"
)

func newLogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Browse and manage the flight logbook",
	}

	cmd.AddCommand(
		newLogListCmd(app),
		newLogRemoveCmd(app),
		newLogExportCmd(app),
	)

	return cmd
}

func newLogListCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List logged flights, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Rewards.ListLog(context.Background(), limit)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatLogTable(entries, time.Now()))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum entries to show (0 for all)")
	return cmd
}

func newLogRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a log entry (miles already earned are kept)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveLogEntryID(context.Background(), app, args[0])
			if err != nil {
				return report(cmd.OutOrStdout(), err)
			}
			if err := app.Rewards.DeleteLogEntry(context.Background(), id); err != nil {
				return report(cmd.OutOrStdout(), err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed log entry %s\n", formatter.TruncID(id))
			return nil
		},
	}
}

func newLogExportCmd(app *App) *cobra.Command {
	var pdfPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the logbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			status, err := app.Status.GetStatus(ctx)
			if err != nil {
				return err
			}
			entries, err := app.Rewards.ListLog(ctx, 0)
			if err != nil {
				return err
			}
			if err := export.WriteLogbookFile(pdfPath, status, entries); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d flights to %s\n", len(entries), pdfPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&pdfPath, "pdf", "", "Output PDF file")
	_ = cmd.MarkFlagRequired("pdf")
	return cmd
}
