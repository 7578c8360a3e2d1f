package inspection

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"rnctrack/internal/ports"
)

func TestExportCSVHeaderAndRows(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	payload := []byte("\xff\xd8\xffJPEGPAYLOADBYTES")
	for _, title := range []string{"first", "second", "third"} {
		if _, err := svc.CreateRecord(ctx, CreateRecordInput{
			Title:     title,
			Area:      "Dock 4; north side",
			Inspector: "Silva",
			Severity:  "Low",
			Photos:    []ports.EvidenceItem{{Payload: payload, Filename: "p.jpg", MimeType: "image/jpeg"}},
		}); err != nil {
			t.Fatalf("CreateRecord(%s) error = %v", title, err)
		}
	}

	var buf bytes.Buffer
	count, err := svc.ExportCSV(ctx, &buf, ExportOptions{})
	if err != nil {
		t.Fatalf("ExportCSV() error = %v", err)
	}
	if count != 3 {
		t.Fatalf("ExportCSV() count = %d", count)
	}

	out := buf.Bytes()
	if !bytes.HasPrefix(out, utf8BOM) {
		t.Fatalf("export missing UTF-8 BOM")
	}
	if bytes.Contains(out, []byte("JPEGPAYLOADBYTES")) {
		t.Fatalf("export contains evidence payload bytes")
	}

	lines := strings.Split(strings.TrimRight(string(out[len(utf8BOM):]), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("export line count = %d, want header + 3 rows", len(lines))
	}
	if !strings.HasPrefix(lines[0], "id;date;area;title") {
		t.Fatalf("export header = %q", lines[0])
	}
	// Field containing the separator gets quoted, not split.
	if !strings.Contains(lines[1], `"Dock 4; north side"`) {
		t.Fatalf("separator-bearing field not quoted: %q", lines[1])
	}
	// Descending id order, most recent first.
	if !strings.HasPrefix(lines[1], "3;") || !strings.HasPrefix(lines[3], "1;") {
		t.Fatalf("export rows out of order: %q ... %q", lines[1], lines[3])
	}
}

func TestExportCSVRespectsLayout(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	if _, err := svc.CreateRecord(ctx, CreateRecordInput{Title: "only", Severity: "High"}); err != nil {
		t.Fatalf("CreateRecord() error = %v", err)
	}

	var buf bytes.Buffer
	if _, err := svc.ExportCSV(ctx, &buf, ExportOptions{
		Layout: ExportLayout{Separator: ",", Columns: []string{"id", "title", "severity", "status"}},
	}); err != nil {
		t.Fatalf("ExportCSV() error = %v", err)
	}

	body := strings.TrimPrefix(buf.String(), string(utf8BOM))
	lines := strings.Split(strings.TrimRight(body, "\n"), "\n")
	if lines[0] != "id,title,severity,status" {
		t.Fatalf("header = %q", lines[0])
	}
	if lines[1] != "1,only,High,Open" {
		t.Fatalf("row = %q", lines[1])
	}
}

func TestLoadExportLayout(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "export.toml")
	if err := os.WriteFile(path, []byte("separator = \",\"\ncolumns = [\"id\", \"Title\", \"status\"]\n"), 0o644); err != nil {
		t.Fatalf("write layout: %v", err)
	}

	layout, err := LoadExportLayout(path)
	if err != nil {
		t.Fatalf("LoadExportLayout() error = %v", err)
	}
	if layout.Separator != "," {
		t.Fatalf("separator = %q", layout.Separator)
	}
	if len(layout.Columns) != 3 || layout.Columns[1] != "title" {
		t.Fatalf("columns = %v", layout.Columns)
	}
}

func TestLoadExportLayoutRejectsUnknownColumn(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "export.toml")
	if err := os.WriteFile(path, []byte("columns = [\"payload\"]\n"), 0o644); err != nil {
		t.Fatalf("write layout: %v", err)
	}

	if _, err := LoadExportLayout(path); err == nil {
		t.Fatalf("LoadExportLayout() accepted unknown column")
	}
}

func TestExportLayoutSeparatorValidation(t *testing.T) {
	if _, err := (ExportLayout{Separator: "ab"}).normalized(); err == nil {
		t.Fatalf("normalized() accepted multi-rune separator")
	}

	layout, err := (ExportLayout{}).normalized()
	if err != nil {
		t.Fatalf("normalized() error = %v", err)
	}
	if layout.Separator != ";" || len(layout.Columns) != len(exportableColumns) {
		t.Fatalf("defaults = %q, %d columns", layout.Separator, len(layout.Columns))
	}
}
