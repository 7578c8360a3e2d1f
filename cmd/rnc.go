package cmd

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"rnctrack/internal/domain/rnc"
	"rnctrack/internal/errs"
	"rnctrack/internal/ports"
)

var rncCmd = &cobra.Command{
	Use:   "rnc",
	Short: "Record, close, reopen, query and export non-conformance reports",
}

func init() {
	rootCmd.AddCommand(rncCmd)
}

// readPhotoFiles loads evidence payloads from disk. The mime type comes from
// the file extension; unknown extensions fall back to image/jpeg.
func readPhotoFiles(paths []string) ([]ports.EvidenceItem, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	items := make([]ports.EvidenceItem, 0, len(paths))
	for _, path := range paths {
		payload, err := os.ReadFile(path)
		if err != nil {
			return nil, errs.Wrapf(err, "read photo %q", path)
		}

		mimeType := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
		if mimeType == "" {
			mimeType = "image/jpeg"
		}

		items = append(items, ports.EvidenceItem{
			Payload:  payload,
			Filename: filepath.Base(path),
			MimeType: mimeType,
		})
	}
	return items, nil
}

func validateChoice(name string, value string, choices []string) error {
	if value == "" || slices.Contains(choices, value) {
		return nil
	}
	return fmt.Errorf("invalid %s %q (expected one of %s)", name, value, strings.Join(choices, ", "))
}

func parseStatusFlags(raw []string) ([]rnc.Status, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	statuses := make([]rnc.Status, 0, len(raw))
	for _, value := range raw {
		status, err := rnc.ParseStatus(value)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}
