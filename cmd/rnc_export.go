package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"rnctrack/internal/bootstrap"
	"rnctrack/internal/errs"
	"rnctrack/internal/ports"
	"rnctrack/internal/usecase/inspection"
)

var rncExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export reports as delimiter-separated text (photos never included)",
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *inspection.Service) error {
		outPath, _ := cmd.Flags().GetString("out")
		layoutPath, _ := cmd.Flags().GetString("layout")
		separator, _ := cmd.Flags().GetString("separator")
		statusFlags, _ := cmd.Flags().GetStringArray("status")
		severities, _ := cmd.Flags().GetStringArray("severity")
		area, _ := cmd.Flags().GetString("area")
		inspector, _ := cmd.Flags().GetString("inspector")

		layout := inspection.DefaultExportLayout()
		if layoutPath != "" {
			loaded, err := inspection.LoadExportLayout(layoutPath)
			if err != nil {
				return err
			}
			layout = loaded
		}
		if separator != "" {
			layout.Separator = separator
		}

		statuses, err := parseStatusFlags(statusFlags)
		if err != nil {
			return err
		}

		writer, closeFn, err := resolveExportWriter(cmd, outPath)
		if err != nil {
			return err
		}

		count, err := svc.ExportCSV(cmd.Context(), writer, inspection.ExportOptions{
			Layout: layout,
			Filter: ports.RecordFilter{
				Statuses:          statuses,
				Severities:        severities,
				AreaContains:      area,
				InspectorContains: inspector,
			},
		})
		if err != nil {
			_ = closeFn()
			return errs.Wrap(err, "export records")
		}
		if err := closeFn(); err != nil {
			return errs.Wrap(err, "close export output")
		}

		if outPath != "" {
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "exported %d record(s) to %s\n", count, outPath); err != nil {
				return errs.Wrap(err, "write export summary")
			}
		}
		return nil
	}),
}

func resolveExportWriter(cmd *cobra.Command, outPath string) (io.Writer, func() error, error) {
	if outPath == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}

	f, err := os.Create(outPath)
	if err != nil {
		return nil, nil, errs.Wrapf(err, "create export file %q", outPath)
	}
	return f, f.Close, nil
}

func init() {
	rncCmd.AddCommand(rncExportCmd)

	rncExportCmd.Flags().String("out", "", "Output file path (default: stdout)")
	rncExportCmd.Flags().String("layout", "", "Export layout toml file (columns, separator)")
	rncExportCmd.Flags().String("separator", "", "Field separator override (single character)")
	rncExportCmd.Flags().StringArray("status", nil, "Filter by status (repeatable)")
	rncExportCmd.Flags().StringArray("severity", nil, "Filter by severity (repeatable)")
	rncExportCmd.Flags().String("area", "", "Case-insensitive substring match on area")
	rncExportCmd.Flags().String("inspector", "", "Case-insensitive substring match on inspector")
}
