/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"rnctrack/internal/bootstrap"
	"rnctrack/internal/bootstrap/logging"
	"rnctrack/internal/errs"
	"rnctrack/internal/usecase/inspection"
)

// initDbCmd represents the initDb command
var initDbCmd = &cobra.Command{
	Use:   "init-db",
	Short: "Initialize or upgrade the database schema",
	RunE: withApp(func(cmd *cobra.Command, app *bootstrap.App, _ *inspection.Service) error {
		ctx := logging.WithAttrs(cmd.Context(), slog.String("command", cmd.CommandPath()))

		// withApp already ran the schema manager; this command exists so an
		// operator can run the upgrade explicitly and see it confirmed.
		if err := app.EnsureSchema(ctx); err != nil {
			logging.Error(ctx, "ensure schema failed", slog.Any("err", errs.Loggable(err)))
			return errs.Wrap(err, "ensure schema")
		}

		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "database schema ready: %s\n", app.Config.Database.DSN); err != nil {
			return errs.Wrap(err, "write init-db output")
		}
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(initDbCmd)
}
