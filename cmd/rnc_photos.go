package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"rnctrack/internal/bootstrap"
	"rnctrack/internal/domain/rnc"
	"rnctrack/internal/errs"
	"rnctrack/internal/usecase/inspection"
)

var rncPhotosCmd = &cobra.Command{
	Use:   "photos",
	Short: "Attach or extract evidence photos",
}

var rncPhotosAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Attach photos to a report under a lifecycle phase",
	Long:  "Attach photos to an existing report. Also the retry path when a close or reopen succeeded but its evidence upload failed.",
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *inspection.Service) error {
		recordID, _ := cmd.Flags().GetUint64("id")
		phaseRaw, _ := cmd.Flags().GetString("phase")
		photoPaths, _ := cmd.Flags().GetStringArray("photo")

		phase, err := rnc.ParsePhase(phaseRaw)
		if err != nil {
			return err
		}

		photos, err := readPhotoFiles(photoPaths)
		if err != nil {
			return err
		}
		if len(photos) == 0 {
			return fmt.Errorf("at least one --photo is required")
		}

		if err := svc.AttachEvidence(cmd.Context(), recordID, photos, phase); err != nil {
			return errs.Wrap(err, "attach evidence")
		}

		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "attached %d photo(s) to RNC #%d (%s)\n", len(photos), recordID, phase); err != nil {
			return errs.Wrap(err, "write photos output")
		}
		return nil
	}),
}

var rncPhotosSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Write a report's stored photos to a directory",
	RunE: withApp(func(cmd *cobra.Command, _ *bootstrap.App, svc *inspection.Service) error {
		recordID, _ := cmd.Flags().GetUint64("id")
		phaseRaw, _ := cmd.Flags().GetString("phase")
		dir, _ := cmd.Flags().GetString("dir")

		phase, err := rnc.ParsePhase(phaseRaw)
		if err != nil {
			return err
		}

		items, err := svc.ListEvidence(cmd.Context(), recordID, phase)
		if err != nil {
			return errs.Wrap(err, "list evidence")
		}
		if len(items) == 0 {
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "no %s photos for RNC #%d\n", phase, recordID); err != nil {
				return errs.Wrap(err, "write photos output")
			}
			return nil
		}

		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errs.Wrapf(err, "create output directory %q", dir)
		}

		for _, item := range items {
			name := item.Filename
			if name == "" {
				name = fmt.Sprintf("photo-%d", item.EvidenceID)
			}
			// Prefix with the evidence id so duplicate filenames cannot clobber
			// each other.
			path := filepath.Join(dir, fmt.Sprintf("%d-%s", item.EvidenceID, filepath.Base(name)))
			if err := os.WriteFile(path, item.Payload, 0o644); err != nil {
				return errs.Wrapf(err, "write photo %q", path)
			}
		}

		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "saved %d photo(s) to %s\n", len(items), dir); err != nil {
			return errs.Wrap(err, "write photos output")
		}
		return nil
	}),
}

func init() {
	rncCmd.AddCommand(rncPhotosCmd)
	rncPhotosCmd.AddCommand(rncPhotosAddCmd)
	rncPhotosCmd.AddCommand(rncPhotosSaveCmd)

	rncPhotosAddCmd.Flags().Uint64("id", 0, "Record id")
	rncPhotosAddCmd.Flags().String("phase", "", "Lifecycle phase: opening|closing|reopening")
	rncPhotosAddCmd.Flags().StringArray("photo", nil, "Photo file (repeatable)")
	_ = rncPhotosAddCmd.MarkFlagRequired("id")
	_ = rncPhotosAddCmd.MarkFlagRequired("phase")

	rncPhotosSaveCmd.Flags().Uint64("id", 0, "Record id")
	rncPhotosSaveCmd.Flags().String("phase", "", "Lifecycle phase: opening|closing|reopening")
	rncPhotosSaveCmd.Flags().String("dir", ".", "Directory to write photos into")
	_ = rncPhotosSaveCmd.MarkFlagRequired("id")
	_ = rncPhotosSaveCmd.MarkFlagRequired("phase")
}
