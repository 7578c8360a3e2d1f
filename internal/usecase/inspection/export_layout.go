package inspection

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"

	"rnctrack/internal/errs"
)

// ExportLayout selects the columns and separator of a CSV export. The zero
// value means "all columns, semicolon-separated".
type ExportLayout struct {
	Separator string   `toml:"separator"`
	Columns   []string `toml:"columns"`
}

func DefaultExportLayout() ExportLayout {
	return ExportLayout{
		Separator: ";",
		Columns:   slices.Clone(exportableColumns),
	}
}

// LoadExportLayout reads a layout file like:
//
//	separator = ";"
//	columns = ["id", "title", "status", "closed_at"]
func LoadExportLayout(path string) (ExportLayout, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ExportLayout{}, errs.Wrapf(err, "read export layout %q", path)
	}

	var layout ExportLayout
	if err := toml.Unmarshal(raw, &layout); err != nil {
		return ExportLayout{}, errs.Wrapf(err, "parse export layout %q", path)
	}
	return layout.normalized()
}

func (l ExportLayout) normalized() (ExportLayout, error) {
	out := l

	out.Separator = strings.TrimSpace(out.Separator)
	if out.Separator == "" {
		out.Separator = ";"
	}
	if utf8.RuneCountInString(out.Separator) != 1 {
		return ExportLayout{}, fmt.Errorf("separator must be a single character, got %q", l.Separator)
	}

	if len(out.Columns) == 0 {
		out.Columns = slices.Clone(exportableColumns)
		return out, nil
	}

	columns := make([]string, 0, len(out.Columns))
	for _, raw := range out.Columns {
		column := strings.ToLower(strings.TrimSpace(raw))
		if column == "" {
			continue
		}
		if !slices.Contains(exportableColumns, column) {
			return ExportLayout{}, fmt.Errorf("unknown export column %q", raw)
		}
		columns = append(columns, column)
	}
	if len(columns) == 0 {
		return ExportLayout{}, fmt.Errorf("export layout has no usable columns")
	}
	out.Columns = columns
	return out, nil
}
