package inspection

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"rnctrack/internal/errs"
	"rnctrack/internal/ports"
)

// utf8BOM prefixes exports so spreadsheet tools detect the encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// exportableColumns is every record field the export may render, in default
// order. Evidence payloads are deliberately absent: photos never leave the
// database through this channel.
var exportableColumns = []string{
	"id", "date", "area", "title", "inspector", "description",
	"severity", "category", "immediate_actions", "corrective_action_owner",
	"status", "closed_at", "closed_by", "closing_notes", "effectiveness",
	"reopened_at", "reopened_by", "reopening_reason",
}

type ExportOptions struct {
	Layout ExportLayout
	Filter ports.RecordFilter
}

// ExportCSV writes one header line plus one line per record matching the
// filter. Returns the number of data lines written.
func (s *Service) ExportCSV(ctx context.Context, w io.Writer, opts ExportOptions) (int, error) {
	if ctx == nil {
		return 0, errContextRequired
	}
	if w == nil {
		return 0, fmt.Errorf("writer is required")
	}

	layout, err := opts.Layout.normalized()
	if err != nil {
		return 0, err
	}

	records, err := s.ListRecords(ctx, opts.Filter)
	if err != nil {
		return 0, errs.Wrap(err, "list records for export")
	}

	if _, err := w.Write(utf8BOM); err != nil {
		return 0, errs.Wrap(err, "write export preamble")
	}

	cw := csv.NewWriter(w)
	cw.Comma = []rune(layout.Separator)[0]

	if err := cw.Write(layout.Columns); err != nil {
		return 0, errs.Wrap(err, "write export header")
	}
	for _, record := range records {
		row := make([]string, 0, len(layout.Columns))
		for _, column := range layout.Columns {
			row = append(row, exportValue(record, column))
		}
		if err := cw.Write(row); err != nil {
			return 0, errs.Wrapf(err, "write export row for record %d", record.RecordID)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, errs.Wrap(err, "flush export")
	}
	return len(records), nil
}

func exportValue(record ports.InspectionRecord, column string) string {
	switch column {
	case "id":
		return strconv.FormatUint(record.RecordID, 10)
	case "date":
		return derefString(record.Date)
	case "area":
		return record.Area
	case "title":
		return record.Title
	case "inspector":
		return record.Inspector
	case "description":
		return record.Description
	case "severity":
		return record.Severity
	case "category":
		return record.Category
	case "immediate_actions":
		return record.ImmediateActions
	case "corrective_action_owner":
		return record.CorrectiveActionOwner
	case "status":
		return string(record.Status)
	case "closed_at":
		return derefString(record.ClosedAt)
	case "closed_by":
		return derefString(record.ClosedBy)
	case "closing_notes":
		return derefString(record.ClosingNotes)
	case "effectiveness":
		return derefString(record.Effectiveness)
	case "reopened_at":
		return derefString(record.ReopenedAt)
	case "reopened_by":
		return derefString(record.ReopenedBy)
	case "reopening_reason":
		return derefString(record.ReopeningReason)
	default:
		return ""
	}
}
