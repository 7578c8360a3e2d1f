package rncconsole

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"rnctrack/internal/domain/rnc"
	"rnctrack/internal/ports"
)

func newTestModel() *consoleModel {
	m := NewConsoleModel(context.Background(), nil, Options{}).(*consoleModel)
	m.records = []ports.InspectionRecord{
		{RecordID: 3, Title: "Leaking valve", Area: "Pump house", Severity: "High", Status: rnc.StatusOpen},
		{RecordID: 2, Title: "Worn belt", Area: "Conveyor", Severity: "Medium", Status: rnc.StatusClosed},
	}
	return m
}

func TestViewRendersRecordsAndSelection(t *testing.T) {
	m := newTestModel()
	m.status = "2 report(s)"

	out := m.View()
	if !strings.Contains(out, "Leaking valve") || !strings.Contains(out, "Worn belt") {
		t.Fatalf("View() missing records:\n%s", out)
	}
	if !strings.Contains(out, "#3 [Open]") {
		t.Fatalf("View() missing status tag:\n%s", out)
	}
}

func TestUpdateMovesSelection(t *testing.T) {
	m := newTestModel()

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	if got := updated.(*consoleModel).selectedIndex; got != 1 {
		t.Fatalf("selectedIndex after j = %d", got)
	}

	updated, _ = updated.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	if got := updated.(*consoleModel).selectedIndex; got != 0 {
		t.Fatalf("selectedIndex after k = %d", got)
	}
}

func TestUpdateCyclesStatusFilter(t *testing.T) {
	m := newTestModel()

	labels := make([]string, 0, len(statusFilters)+1)
	model := tea.Model(m)
	for range statusFilters {
		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
		labels = append(labels, statusFilters[model.(*consoleModel).statusFilter].Label)
	}
	// Full cycle ends back at "all".
	if labels[len(labels)-1] != "all" {
		t.Fatalf("filter cycle = %v", labels)
	}
}

func TestRecordsLoadedClampsSelection(t *testing.T) {
	m := newTestModel()
	m.selectedIndex = 5

	updated, _ := m.Update(recordsLoadedMsg{items: m.records[:1]})
	if got := updated.(*consoleModel).selectedIndex; got != 0 {
		t.Fatalf("selectedIndex after shrink = %d", got)
	}

	updated, _ = updated.Update(recordsLoadedMsg{items: nil})
	cm := updated.(*consoleModel)
	if cm.hasDetail {
		t.Fatalf("hasDetail should reset on empty load")
	}
	if !strings.Contains(cm.status, "no reports") {
		t.Fatalf("status = %q", cm.status)
	}
}
