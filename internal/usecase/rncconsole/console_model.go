package rncconsole

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"rnctrack/internal/domain/rnc"
	"rnctrack/internal/ports"
	"rnctrack/internal/usecase/inspection"
)

const maxShownRecords = 15

// Options tunes the console. Zero values fall back to defaults.
type Options struct {
	RefreshInterval time.Duration
	AreaFilter      string
}

// statusFilters are the filter positions the "s" key cycles through.
var statusFilters = []struct {
	Label    string
	Statuses []rnc.Status
}{
	{Label: "all", Statuses: nil},
	{Label: "open", Statuses: []rnc.Status{rnc.StatusOpen}},
	{Label: "in action", Statuses: []rnc.Status{rnc.StatusInAction}},
	{Label: "closed", Statuses: []rnc.Status{rnc.StatusClosed}},
}

type consoleModel struct {
	ctx             context.Context
	service         *inspection.Service
	refreshInterval time.Duration
	areaFilter      string

	records        []ports.InspectionRecord
	selectedIndex  int
	statusFilter   int
	detail         ports.InspectionRecord
	evidenceCounts map[rnc.Phase]int
	hasDetail      bool
	status         string
}

type recordsLoadedMsg struct {
	items []ports.InspectionRecord
	err   error
}

type detailLoadedMsg struct {
	recordID uint64
	record   ports.InspectionRecord
	counts   map[rnc.Phase]int
	err      error
}

type tickMsg struct{}

func NewConsoleModel(ctx context.Context, service *inspection.Service, options Options) tea.Model {
	interval := options.RefreshInterval
	if interval <= 0 {
		interval = 5 * time.Second
	}

	return &consoleModel{
		ctx:             ctx,
		service:         service,
		refreshInterval: interval,
		areaFilter:      strings.TrimSpace(options.AreaFilter),
		status:          "loading",
	}
}

func (m *consoleModel) Init() tea.Cmd {
	return tea.Batch(m.loadRecordsCmd(), m.tickCmd())
}

func (m *consoleModel) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := message.(type) {
	case tickMsg:
		return m, tea.Batch(m.loadRecordsCmd(), m.tickCmd())
	case recordsLoadedMsg:
		if msg.err != nil {
			m.status = "refresh failed: " + msg.err.Error()
			return m, nil
		}
		m.records = msg.items
		if len(m.records) == 0 {
			m.selectedIndex = 0
			m.hasDetail = false
			m.status = "no reports match the filter"
			return m, nil
		}
		if m.selectedIndex >= len(m.records) {
			m.selectedIndex = len(m.records) - 1
		}
		m.status = fmt.Sprintf("%d report(s)", len(m.records))
		return m, m.loadSelectedDetailCmd()
	case detailLoadedMsg:
		if !m.isSelected(msg.recordID) {
			return m, nil
		}
		if msg.err != nil {
			m.hasDetail = false
			m.status = "detail load failed: " + msg.err.Error()
			return m, nil
		}
		m.detail = msg.record
		m.evidenceCounts = msg.counts
		m.hasDetail = true
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "g":
			m.status = "refreshing"
			return m, m.loadRecordsCmd()
		case "up", "k":
			if m.selectedIndex > 0 {
				m.selectedIndex--
				return m, m.loadSelectedDetailCmd()
			}
			return m, nil
		case "down", "j":
			if m.selectedIndex < len(m.records)-1 {
				m.selectedIndex++
				return m, m.loadSelectedDetailCmd()
			}
			return m, nil
		case "s":
			m.statusFilter = (m.statusFilter + 1) % len(statusFilters)
			m.selectedIndex = 0
			m.status = "filter: " + statusFilters[m.statusFilter].Label
			return m, m.loadRecordsCmd()
		}
	}
	return m, nil
}

func (m *consoleModel) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true)
	sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	selectedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("62"))

	var builder strings.Builder
	builder.WriteString(titleStyle.Render("RNC Console"))
	builder.WriteString("\n")
	builder.WriteString(dimStyle.Render(fmt.Sprintf(
		"status=%s area=%s refresh=%s",
		statusFilters[m.statusFilter].Label,
		firstNonEmpty(m.areaFilter, "-"),
		m.refreshInterval,
	)))
	builder.WriteString("\n\n")

	builder.WriteString(sectionStyle.Render("Reports"))
	builder.WriteString("\n")
	if len(m.records) == 0 {
		builder.WriteString(dimStyle.Render("- no reports"))
		builder.WriteString("\n")
	}
	for i, record := range m.records {
		if i >= maxShownRecords {
			builder.WriteString(dimStyle.Render(fmt.Sprintf("… %d more", len(m.records)-maxShownRecords)))
			builder.WriteString("\n")
			break
		}
		line := fmt.Sprintf("#%d [%s] %s · %s (%s)",
			record.RecordID, record.Status, record.Title, record.Area, record.Severity)
		if i == m.selectedIndex {
			builder.WriteString(selectedStyle.Render("> " + line))
		} else {
			builder.WriteString("  " + line)
		}
		builder.WriteString("\n")
	}
	builder.WriteString("\n")

	if m.hasDetail {
		builder.WriteString(sectionStyle.Render("Detail"))
		builder.WriteString("\n")
		builder.WriteString(m.renderDetail(dimStyle))
		builder.WriteString("\n")
	}

	builder.WriteString(dimStyle.Render("q quit · g refresh · j/k move · s cycle status filter"))
	builder.WriteString("\n")
	builder.WriteString(m.status)
	builder.WriteString("\n")
	return builder.String()
}

func (m *consoleModel) renderDetail(dimStyle lipgloss.Style) string {
	record := m.detail

	var b strings.Builder
	fmt.Fprintf(&b, "inspector=%s severity=%s category=%s\n",
		firstNonEmpty(record.Inspector, "-"),
		firstNonEmpty(record.Severity, "-"),
		firstNonEmpty(record.Category, "-"))
	if record.ClosedAt != nil {
		fmt.Fprintf(&b, "closed %s by %s (effectiveness: %s)\n",
			*record.ClosedAt,
			firstNonEmpty(deref(record.ClosedBy), "-"),
			firstNonEmpty(deref(record.Effectiveness), "-"))
	}
	if record.ReopenedAt != nil {
		fmt.Fprintf(&b, "reopened %s by %s: %s\n",
			*record.ReopenedAt,
			firstNonEmpty(deref(record.ReopenedBy), "-"),
			firstNonEmpty(deref(record.ReopeningReason), "-"))
	}
	b.WriteString(dimStyle.Render(fmt.Sprintf("photos: opening=%d closing=%d reopening=%d",
		m.evidenceCounts[rnc.PhaseOpening],
		m.evidenceCounts[rnc.PhaseClosing],
		m.evidenceCounts[rnc.PhaseReopening])))
	b.WriteString("\n")
	return b.String()
}

func (m *consoleModel) isSelected(recordID uint64) bool {
	return m.selectedIndex >= 0 &&
		m.selectedIndex < len(m.records) &&
		m.records[m.selectedIndex].RecordID == recordID
}

func (m *consoleModel) loadRecordsCmd() tea.Cmd {
	filter := ports.RecordFilter{
		Statuses:     statusFilters[m.statusFilter].Statuses,
		AreaContains: m.areaFilter,
	}
	return func() tea.Msg {
		items, err := m.service.ListRecords(m.ctx, filter)
		return recordsLoadedMsg{items: items, err: err}
	}
}

func (m *consoleModel) loadSelectedDetailCmd() tea.Cmd {
	if m.selectedIndex < 0 || m.selectedIndex >= len(m.records) {
		return nil
	}
	recordID := m.records[m.selectedIndex].RecordID

	return func() tea.Msg {
		record, err := m.service.GetRecord(m.ctx, recordID)
		if err != nil {
			return detailLoadedMsg{recordID: recordID, err: err}
		}

		counts := make(map[rnc.Phase]int, 3)
		for _, phase := range []rnc.Phase{rnc.PhaseOpening, rnc.PhaseClosing, rnc.PhaseReopening} {
			items, err := m.service.ListEvidence(m.ctx, recordID, phase)
			if err != nil {
				return detailLoadedMsg{recordID: recordID, err: err}
			}
			counts[phase] = len(items)
		}
		return detailLoadedMsg{recordID: recordID, record: record, counts: counts}
	}
}

func (m *consoleModel) tickCmd() tea.Cmd {
	return tea.Tick(m.refreshInterval, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

func firstNonEmpty(value string, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func deref(ptr *string) string {
	if ptr == nil {
		return ""
	}
	return *ptr
}
