package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"rnctrack/internal/bootstrap"
	"rnctrack/internal/errs"
	"rnctrack/internal/ports"
	"rnctrack/internal/usecase/inspection"
)

var rncListCmd = &cobra.Command{
	Use:   "list",
	Short: "List reports, most recent first, with optional filters",
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *inspection.Service) error {
		statusFlags, _ := cmd.Flags().GetStringArray("status")
		severities, _ := cmd.Flags().GetStringArray("severity")
		area, _ := cmd.Flags().GetString("area")
		inspector, _ := cmd.Flags().GetString("inspector")

		statuses, err := parseStatusFlags(statusFlags)
		if err != nil {
			return err
		}

		records, err := svc.ListRecords(cmd.Context(), ports.RecordFilter{
			Statuses:          statuses,
			Severities:        severities,
			AreaContains:      area,
			InspectorContains: inspector,
		})
		if err != nil {
			return errs.Wrap(err, "list records")
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tDATE\tAREA\tTITLE\tINSPECTOR\tSEVERITY\tSTATUS")
		for _, record := range records {
			date := ""
			if record.Date != nil {
				date = *record.Date
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
				record.RecordID, date, record.Area, record.Title,
				record.Inspector, record.Severity, record.Status)
		}
		if err := w.Flush(); err != nil {
			return errs.Wrap(err, "flush list output")
		}
		return nil
	}),
}

func init() {
	rncCmd.AddCommand(rncListCmd)

	rncListCmd.Flags().StringArray("status", nil, "Filter by status (repeatable; membership)")
	rncListCmd.Flags().StringArray("severity", nil, "Filter by severity (repeatable; membership)")
	rncListCmd.Flags().String("area", "", "Case-insensitive substring match on area")
	rncListCmd.Flags().String("inspector", "", "Case-insensitive substring match on inspector")
}
