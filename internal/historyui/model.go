// Package historyui provides the Bubble Tea journal browser.
package historyui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/fittrack/internal/batch"
	"github.com/verte-zerg/fittrack/internal/model"
	"github.com/verte-zerg/fittrack/internal/stats"
	"github.com/verte-zerg/fittrack/internal/store"
	"github.com/verte-zerg/fittrack/internal/training"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	messageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	tableStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
)

const chromeHeight = 5

// Model implements the Bubble Tea journal browser.
type Model struct {
	store  *store.Store
	filter model.HistoryFilter

	report  stats.Report
	errMsg  string
	message string

	table table.Model

	width  int
	height int
}

// NewModel constructs a journal browser model.
func NewModel(st *store.Store, filter model.HistoryFilter) *Model {
	m := &Model{
		store:  st,
		filter: filter,
		table:  newTable(),
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetWidth(msg.Width)
		m.table.SetHeight(max(1, msg.Height-chromeHeight))
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "g", "home":
			m.table.GotoTop()
			return m, nil
		case "G", "end":
			m.table.GotoBottom()
			return m, nil
		case "enter":
			m.showSelected()
			return m, nil
		case "t":
			m.filter.TrainingType = nextType(m.filter.TrainingType)
			m.refresh()
			return m, nil
		case "r":
			m.refresh()
			return m, nil
		}
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	parts := []string{
		titleStyle.Render("Workout journal"),
		headerStyle.Render(fitWidth(m.renderTotals(), m.width)),
		tableStyle.Render(m.table.View()),
		headerStyle.Render(fitWidth("Move: up/down  Top/bottom: g/G  Report: enter  Type: t  Reload: r  Quit: q", m.width)),
	}
	switch {
	case m.errMsg != "":
		parts = append(parts, errorStyle.Render(fitWidth(m.errMsg, m.width)))
	case m.message != "":
		parts = append(parts, messageStyle.Render(fitWidth(m.message, m.width)))
	}
	return strings.Join(parts, "\n")
}

func (m *Model) renderTotals() string {
	kind := m.filter.TrainingType
	if kind == "" {
		kind = "all"
	}
	last := "all"
	if m.filter.Last > 0 {
		last = strconv.Itoa(m.filter.Last)
	}
	var count int
	var distance, calories float64
	for _, agg := range m.report.Aggregates {
		count += agg.Count
		distance += agg.Distance
		calories += agg.Calories
	}
	line := fmt.Sprintf("type=%s  last=%s  workouts=%d  distance=%.3f km  calories=%.3f",
		kind, last, count, distance, calories)
	if len(m.report.Summaries) > 1 {
		line += "  [" + stats.Sparkline(m.report.Calories()) + "]"
	}
	return line
}

func (m *Model) refresh() {
	m.message = ""
	report, err := stats.BuildReport(context.Background(), m.store, m.filter)
	if err != nil {
		m.errMsg = err.Error()
		m.report = stats.Report{}
		m.table.SetRows(nil)
		return
	}
	m.errMsg = ""
	m.report = report
	rows := make([]table.Row, 0, len(report.Summaries))
	for _, s := range report.Summaries {
		rows = append(rows, table.Row(stats.HistoryRow(s)))
	}
	m.table.SetRows(rows)
	m.table.GotoBottom()
}

func (m *Model) showSelected() {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.report.Summaries) {
		m.message = ""
		return
	}
	m.message = batch.Message(m.report.Summaries[idx])
}

func newTable() table.Model {
	columns := []table.Column{
		{Title: "Recorded", Width: 16},
		{Title: "Code", Width: 4},
		{Title: "Type", Width: 13},
		{Title: "Hours", Width: 8},
		{Title: "Distance (km)", Width: 13},
		{Title: "Speed (km/h)", Width: 12},
		{Title: "Calories", Width: 10},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	t.SetStyles(styles)
	return t
}

func nextType(current string) string {
	kinds := training.Kinds()
	if current == "" {
		return kinds[0].String()
	}
	for i, k := range kinds {
		if k.String() == current && i+1 < len(kinds) {
			return kinds[i+1].String()
		}
	}
	return ""
}

func fitWidth(s string, width int) string {
	if width <= 0 {
		return s
	}
	return runewidth.Truncate(s, width, "...")
}
