package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"rnctrack/internal/bootstrap"
	"rnctrack/internal/domain/rnc"
	"rnctrack/internal/errs"
	"rnctrack/internal/usecase/inspection"
)

var rncShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show one report with its lifecycle stamps and evidence counts",
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *inspection.Service) error {
		recordID, _ := cmd.Flags().GetUint64("id")

		record, err := svc.GetRecord(cmd.Context(), recordID)
		if err != nil {
			return errs.Wrap(err, "get record")
		}

		var b strings.Builder
		fmt.Fprintf(&b, "RNC #%d: %s [%s]\n", record.RecordID, record.Title, record.Status)
		writeField(&b, "Date", strVal(record.Date))
		writeField(&b, "Area", record.Area)
		writeField(&b, "Inspector", record.Inspector)
		writeField(&b, "Severity", record.Severity)
		writeField(&b, "Category", record.Category)
		writeField(&b, "Description", record.Description)
		writeField(&b, "Immediate actions", record.ImmediateActions)
		writeField(&b, "Corrective action owner", record.CorrectiveActionOwner)
		writeField(&b, "Closed at", strVal(record.ClosedAt))
		writeField(&b, "Closed by", strVal(record.ClosedBy))
		writeField(&b, "Closing notes", strVal(record.ClosingNotes))
		writeField(&b, "Effectiveness", strVal(record.Effectiveness))
		writeField(&b, "Reopened at", strVal(record.ReopenedAt))
		writeField(&b, "Reopened by", strVal(record.ReopenedBy))
		writeField(&b, "Reopening reason", strVal(record.ReopeningReason))

		for _, phase := range []rnc.Phase{rnc.PhaseOpening, rnc.PhaseClosing, rnc.PhaseReopening} {
			items, err := svc.ListEvidence(cmd.Context(), recordID, phase)
			if err != nil {
				return errs.Wrapf(err, "list %s evidence", phase)
			}
			fmt.Fprintf(&b, "Evidence (%s): %d photo(s)\n", phase, len(items))
		}

		if _, err := fmt.Fprint(cmd.OutOrStdout(), b.String()); err != nil {
			return errs.Wrap(err, "write show output")
		}
		return nil
	}),
}

func writeField(b *strings.Builder, label string, value string) {
	if value == "" {
		value = "-"
	}
	fmt.Fprintf(b, "%-24s %s\n", label+":", value)
}

func strVal(ptr *string) string {
	if ptr == nil {
		return ""
	}
	return *ptr
}

func init() {
	rncCmd.AddCommand(rncShowCmd)

	rncShowCmd.Flags().Uint64("id", 0, "Record id")
	_ = rncShowCmd.MarkFlagRequired("id")
}
