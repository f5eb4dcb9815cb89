// Package tui provides the interactive terminal frontend: scan the
// input directory, preview the planned output names, and watch the
// conversion progress live.
package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sabaoth87/MakeMP4s/internal/config"
	"github.com/sabaoth87/MakeMP4s/internal/history"
	"github.com/sabaoth87/MakeMP4s/internal/logging"
	"github.com/sabaoth87/MakeMP4s/internal/naming"
	"github.com/sabaoth87/MakeMP4s/internal/pipeline"
)

type state int

const (
	stateInitial state = iota
	stateScanning
	stateConfirmation
	stateConverting
	stateFinished
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	subTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("247"))

	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("192"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))

	actionBarMsgStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57")).
				Padding(0, 1)

	actionBarKeyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("57")).
				Background(lipgloss.Color("229")).
				Padding(0, 1).
				Bold(true)
)

// fileRow is one discovered file and its conversion status.
type fileRow struct {
	Input  string
	Target string
	Status string // "", "working", or a history status
}

type scanDoneMsg struct {
	rows []fileRow
	err  error
}

type eventMsg pipeline.Event

type convertDoneMsg struct {
	stats pipeline.RunStats
}

// Model is the bubbletea model for the interactive converter.
type Model struct {
	state    state
	cfg      *config.Config
	log      *logging.Logger
	store    *history.Store
	err      error
	quitting bool

	table table.Model
	rows  []fileRow
	stats pipeline.RunStats

	events []string

	width     int
	height    int
	eventChan chan pipeline.Event
	cancel    context.CancelFunc
}

// NewModel builds the initial model. store may be nil.
func NewModel(cfg *config.Config, log *logging.Logger, store *history.Store) Model {
	columns := []table.Column{
		{Title: "Source File", Width: 40},
		{Title: "Target Name", Width: 40},
		{Title: "Status", Width: 10},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10), // dynamically updated
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true).
		Foreground(lipgloss.Color("86"))
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return Model{
		state:     stateInitial,
		cfg:       cfg,
		log:       log,
		store:     store,
		table:     t,
		eventChan: make(chan pipeline.Event),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			if m.cancel != nil {
				m.cancel()
			}
			m.quitting = true
			return m, tea.Quit

		case "q":
			if m.state == stateInitial || m.state == stateConfirmation || m.state == stateFinished {
				m.quitting = true
				return m, tea.Quit
			}

		case "enter":
			if m.state == stateInitial || m.state == stateFinished {
				m.state = stateScanning
				m.err = nil
				m.rows = nil
				m.syncTable()
				cmds = append(cmds, m.scanDir())
			} else if m.state == stateConfirmation && len(m.rows) > 0 {
				m.state = stateConverting
				m.err = nil
				m.events = nil
				cmds = append(cmds, m.runConvert(), m.listenForEvents())
			}

		case "backspace":
			if m.state == stateConfirmation {
				m.state = stateInitial
				return m, nil
			}
		}

	case scanDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = stateInitial
			return m, nil
		}
		m.rows = msg.rows
		m.state = stateConfirmation
		m.syncTable()

	case eventMsg:
		m.applyEvent(pipeline.Event(msg))
		return m, m.listenForEvents()

	case convertDoneMsg:
		m.stats = msg.stats
		m.state = stateFinished
		m.cancel = nil
		m.syncTable()
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeTable()

	case error:
		m.err = msg
		return m, nil
	}

	switch m.state {
	case stateConfirmation, stateFinished, stateConverting:
		m.table, cmd = m.table.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) applyEvent(e pipeline.Event) {
	idx := e.Index - 1
	switch e.Type {
	case pipeline.EventFileStarted:
		if idx >= 0 && idx < len(m.rows) {
			m.rows[idx].Status = "working"
		}
		m.pushEvent(infoStyle.Render(fmt.Sprintf("[%d/%d] %s", e.Index, e.Total, filepath.Base(e.Input))))
	case pipeline.EventFileFinished:
		if idx >= 0 && idx < len(m.rows) {
			m.rows[idx].Status = e.Status
		}
		switch e.Status {
		case history.StatusSuccess:
			m.pushEvent(successStyle.Render("done: " + filepath.Base(e.Output)))
		case history.StatusFailed:
			m.pushEvent(errorStyle.Render("failed: " + filepath.Base(e.Input)))
		case history.StatusSkipped:
			m.pushEvent(warningStyle.Render("skipped: " + filepath.Base(e.Input)))
		}
	}
	m.syncTable()
}

func (m *Model) pushEvent(line string) {
	m.events = append(m.events, line)
	if len(m.events) > 100 {
		m.events = m.events[len(m.events)-100:]
	}
}

func (m *Model) syncTable() {
	var rows []table.Row
	for _, r := range m.rows {
		status := ""
		switch r.Status {
		case "working":
			status = infoStyle.Render("Working")
		case history.StatusSuccess:
			status = successStyle.Render("Success")
		case history.StatusFailed:
			status = errorStyle.Render("Failed")
		case history.StatusSkipped:
			status = warningStyle.Render("Skipped")
		}
		rows = append(rows, table.Row{filepath.Base(r.Input), r.Target, status})
	}
	m.table.SetRows(rows)
}

func (m *Model) resizeTable() {
	if m.width <= 0 || m.height <= 0 {
		return
	}

	totalW := m.width - 4
	statusW := 10
	flexW := (totalW - statusW) / 2
	if flexW < 10 {
		flexW = 10
	}

	m.table.SetColumns([]table.Column{
		{Title: "Source File", Width: flexW},
		{Title: "Target Name", Width: flexW},
		{Title: "Status", Width: statusW},
	})

	headerH := 4
	footerH := 2
	contentH := m.height - headerH - footerH
	if m.state == stateConverting {
		contentH = contentH / 2
	}
	if contentH < 5 {
		contentH = 5
	}
	m.table.SetHeight(contentH - 2)
}

func (m Model) scanDir() tea.Cmd {
	cfg := m.cfg
	return func() tea.Msg {
		files, err := pipeline.Discover(cfg.ScanDir, cfg)
		if err != nil {
			return scanDoneMsg{err: err}
		}
		rows := make([]fileRow, 0, len(files))
		for _, path := range files {
			info := naming.ParseFilename(filepath.Base(path))
			rows = append(rows, fileRow{
				Input:  path,
				Target: info.Render() + "." + string(cfg.OutputContainer),
			})
		}
		return scanDoneMsg{rows: rows}
	}
}

func (m Model) listenForEvents() tea.Cmd {
	return func() tea.Msg {
		return eventMsg(<-m.eventChan)
	}
}

func (m *Model) runConvert() tea.Cmd {
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	cfg, log, store, ch := m.cfg, m.log, m.store, m.eventChan
	return func() tea.Msg {
		stats := pipeline.RunWithNotify(ctx, cfg, log, store, func(e pipeline.Event) {
			ch <- e
		})
		return convertDoneMsg{stats: stats}
	}
}

func (m Model) renderActionBar(actions []string) string {
	var rendered []string
	for _, a := range actions {
		parts := strings.SplitN(a, " ", 2)
		if len(parts) == 2 {
			rendered = append(rendered, actionBarKeyStyle.Render(parts[0])+actionBarMsgStyle.Render(parts[1]))
		}
	}
	bar := strings.Join(rendered, lipgloss.NewStyle().Background(lipgloss.Color("57")).Render("  "))

	padW := m.width - lipgloss.Width(bar)
	if padW < 0 {
		padW = 0
	}
	padding := lipgloss.NewStyle().Background(lipgloss.Color("57")).Render(strings.Repeat(" ", padW))

	return bar + padding
}

func (m Model) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	if m.width <= 0 || m.height <= 0 {
		return "Starting..."
	}

	var s strings.Builder

	header := fmt.Sprintf("%s  %s", titleStyle.Render("MAKEMP4S"),
		subTitleStyle.Render(fmt.Sprintf("IN: %s  OUT: %s", m.cfg.ScanDir, m.cfg.OutputDir)))
	s.WriteString(lipgloss.NewStyle().Padding(1, 2).Render(header))
	s.WriteString("\n")

	var contentView string
	var actionBarView string

	switch m.state {
	case stateInitial:
		if m.err != nil {
			contentView = lipgloss.Place(m.width, m.height-6, lipgloss.Center, lipgloss.Center,
				errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress Enter to try again.", m.err)))
		} else {
			contentView = lipgloss.Place(m.width, m.height-6, lipgloss.Center, lipgloss.Center,
				"Press Enter to Scan for Convertible Files")
		}
		actionBarView = m.renderActionBar([]string{"Enter Scan", "q Quit"})

	case stateScanning:
		contentView = lipgloss.Place(m.width, m.height-6, lipgloss.Center, lipgloss.Center,
			infoStyle.Render("Scanning directory..."))
		actionBarView = m.renderActionBar([]string{"ctrl+c Abort"})

	case stateConfirmation:
		if len(m.rows) == 0 {
			contentView = lipgloss.Place(m.width, m.height-6, lipgloss.Center, lipgloss.Center,
				"No convertible files found.")
			actionBarView = m.renderActionBar([]string{"Enter Rescan", "q Quit"})
		} else {
			statStr := subTitleStyle.Render(fmt.Sprintf("%d files queued.", len(m.rows)))
			contentView = lipgloss.NewStyle().Padding(0, 2).Render(statStr + "\n\n" + m.table.View())
			actionBarView = m.renderActionBar([]string{"Enter Convert", "Backspace Rescan", "↑/↓ Scroll", "q Quit"})
		}

	case stateConverting:
		statStr := infoStyle.Render("Converting...")
		tableView := lipgloss.NewStyle().Padding(0, 2).Render(statStr + "\n\n" + m.table.View())

		logBuilder := strings.Builder{}
		logH := (m.height - 6) / 2
		if logH < 5 {
			logH = 5
		}
		maxLogs := logH - 2
		if maxLogs < 0 {
			maxLogs = 0
		}
		startIdx := 0
		if len(m.events) > maxLogs {
			startIdx = len(m.events) - maxLogs
		}
		logLines := m.events[startIdx:]
		if len(logLines) == 0 {
			logBuilder.WriteString(subTitleStyle.Render("Waiting for events..."))
		} else {
			logBuilder.WriteString(strings.Join(logLines, "\n"))
		}

		logBox := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(m.width - 6).
			Height(maxLogs + 1).
			Render(titleStyle.Render("Progress") + "\n" + logBuilder.String())

		logView := lipgloss.NewStyle().Padding(1, 2).Render(logBox)

		contentView = lipgloss.JoinVertical(lipgloss.Left, tableView, logView)
		actionBarView = m.renderActionBar([]string{"ctrl+c Abort Operation"})

	case stateFinished:
		summary := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("34")).
			Render(fmt.Sprintf("%s\n%d converted, %d remuxed, %d skipped, %d failed.",
				successStyle.Bold(true).Render("COMPLETED"),
				m.stats.Converted, m.stats.Remuxed, m.stats.Skipped, m.stats.Failed))

		contentView = lipgloss.Place(m.width, m.height-6, lipgloss.Center, lipgloss.Center, summary)
		actionBarView = m.renderActionBar([]string{"Enter Rescan", "q Quit"})
	}

	s.WriteString(contentView)

	currentLines := strings.Count(s.String(), "\n")
	neededNewLines := (m.height - 2) - currentLines
	if neededNewLines > 0 {
		s.WriteString(strings.Repeat("\n", neededNewLines))
	} else {
		s.WriteString("\n")
	}
	s.WriteString(actionBarView)

	return s.String()
}
