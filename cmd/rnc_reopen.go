package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"rnctrack/internal/bootstrap"
	"rnctrack/internal/errs"
	"rnctrack/internal/usecase/inspection"
)

var rncReopenCmd = &cobra.Command{
	Use:   "reopen",
	Short: "Reopen a closed report, moving it back to In Action",
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *inspection.Service) error {
		recordID, _ := cmd.Flags().GetUint64("id")
		reopenedBy, _ := cmd.Flags().GetString("by")
		reason, _ := cmd.Flags().GetString("reason")
		photoPaths, _ := cmd.Flags().GetStringArray("photo")

		photos, err := readPhotoFiles(photoPaths)
		if err != nil {
			return err
		}

		if err := svc.ReopenRecord(cmd.Context(), inspection.ReopenRecordInput{
			RecordID:   recordID,
			ReopenedBy: reopenedBy,
			Reason:     reason,
			Photos:     photos,
		}); err != nil {
			return errs.Wrap(err, "reopen record")
		}

		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "RNC #%d reopened (status: In Action)\n", recordID); err != nil {
			return errs.Wrap(err, "write reopen output")
		}
		return nil
	}),
}

func init() {
	rncCmd.AddCommand(rncReopenCmd)

	rncReopenCmd.Flags().Uint64("id", 0, "Record id")
	rncReopenCmd.Flags().String("by", "", "Who reopens the report")
	rncReopenCmd.Flags().String("reason", "", "Reopening reason, for example an effectiveness check that failed")
	rncReopenCmd.Flags().StringArray("photo", nil, "Reopening evidence photo file (repeatable)")
	_ = rncReopenCmd.MarkFlagRequired("id")
	_ = rncReopenCmd.MarkFlagRequired("by")
}
