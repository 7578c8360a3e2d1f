package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"rnctrack/internal/bootstrap"
	"rnctrack/internal/domain/rnc"
	"rnctrack/internal/errs"
	"rnctrack/internal/usecase/inspection"
)

var rncCloseCmd = &cobra.Command{
	Use:   "close",
	Short: "Close a report, stamping who closed it and the effectiveness check",
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *inspection.Service) error {
		recordID, _ := cmd.Flags().GetUint64("id")
		closedBy, _ := cmd.Flags().GetString("by")
		notes, _ := cmd.Flags().GetString("notes")
		effectiveness, _ := cmd.Flags().GetString("effectiveness")
		photoPaths, _ := cmd.Flags().GetStringArray("photo")

		if err := validateChoice("effectiveness", effectiveness, rnc.Effectivenesses); err != nil {
			return err
		}

		photos, err := readPhotoFiles(photoPaths)
		if err != nil {
			return err
		}

		if err := svc.CloseRecord(cmd.Context(), inspection.CloseRecordInput{
			RecordID:      recordID,
			ClosedBy:      closedBy,
			Notes:         notes,
			Effectiveness: effectiveness,
			Photos:        photos,
		}); err != nil {
			return errs.Wrap(err, "close record")
		}

		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "RNC #%d closed\n", recordID); err != nil {
			return errs.Wrap(err, "write close output")
		}
		return nil
	}),
}

func init() {
	rncCmd.AddCommand(rncCloseCmd)

	rncCloseCmd.Flags().Uint64("id", 0, "Record id")
	rncCloseCmd.Flags().String("by", "", "Who closes the report")
	rncCloseCmd.Flags().String("notes", "", "Closing notes: what was done, definitive action")
	rncCloseCmd.Flags().String("effectiveness", "To verify", "Effectiveness check: To verify|Effective|Not effective")
	rncCloseCmd.Flags().StringArray("photo", nil, "Closing evidence photo file (repeatable)")
	_ = rncCloseCmd.MarkFlagRequired("id")
	_ = rncCloseCmd.MarkFlagRequired("by")
}
