package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"rnctrack/internal/bootstrap"
	"rnctrack/internal/domain/rnc"
	"rnctrack/internal/errs"
	"rnctrack/internal/usecase/inspection"
)

var rncCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Log a new non-conformance report",
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *inspection.Service) error {
		title, _ := cmd.Flags().GetString("title")
		date, _ := cmd.Flags().GetString("date")
		area, _ := cmd.Flags().GetString("area")
		inspector, _ := cmd.Flags().GetString("inspector")
		description, _ := cmd.Flags().GetString("description")
		severity, _ := cmd.Flags().GetString("severity")
		category, _ := cmd.Flags().GetString("category")
		actions, _ := cmd.Flags().GetString("actions")
		owner, _ := cmd.Flags().GetString("owner")
		photoPaths, _ := cmd.Flags().GetStringArray("photo")

		if err := validateChoice("severity", severity, rnc.Severities); err != nil {
			return err
		}
		if err := validateChoice("category", category, rnc.Categories); err != nil {
			return err
		}

		photos, err := readPhotoFiles(photoPaths)
		if err != nil {
			return err
		}

		recordID, err := svc.CreateRecord(cmd.Context(), inspection.CreateRecordInput{
			Date:                  date,
			Area:                  area,
			Title:                 title,
			Inspector:             inspector,
			Description:           description,
			Severity:              severity,
			Category:              category,
			ImmediateActions:      actions,
			CorrectiveActionOwner: owner,
			Photos:                photos,
		})
		if err != nil {
			return errs.Wrap(err, "create record")
		}

		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "RNC #%d created (status: %s)\n", recordID, rnc.StatusOpen); err != nil {
			return errs.Wrap(err, "write create output")
		}
		return nil
	}),
}

func init() {
	rncCmd.AddCommand(rncCreateCmd)

	rncCreateCmd.Flags().String("title", "", "Short finding title")
	rncCreateCmd.Flags().String("date", "", "Inspection date, YYYY-MM-DD")
	rncCreateCmd.Flags().String("area", "", "Area or location, for example a conveyor tag")
	rncCreateCmd.Flags().String("inspector", "", "Who performed the inspection")
	rncCreateCmd.Flags().String("description", "", "Finding description")
	rncCreateCmd.Flags().String("severity", "", "Severity: Low|Medium|High|Critical")
	rncCreateCmd.Flags().String("category", "", "Category: Safety|Quality|Environment|Operations|Maintenance|Other")
	rncCreateCmd.Flags().String("actions", "", "Immediate actions taken")
	rncCreateCmd.Flags().String("owner", "", "Corrective action owner")
	rncCreateCmd.Flags().StringArray("photo", nil, "Opening evidence photo file (repeatable)")
	_ = rncCreateCmd.MarkFlagRequired("title")
}
