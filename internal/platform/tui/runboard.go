package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/powerpong/internal/config"
	"github.com/vovakirdan/powerpong/internal/core"
	"github.com/vovakirdan/powerpong/internal/games/powerpong"
	"github.com/vovakirdan/powerpong/internal/storage"
)

// Runboard layout constants
const (
	maxRuns      = 100 // Max runs to load
	previewWidth = 64  // Width of the final frame preview
	previewRows  = 20  // Height of the final frame preview
)

// RunboardKeyMap defines the key bindings for the run journal browser.
type RunboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RunboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Toggle, k.Quit}}
}

// DefaultRunboardKeyMap returns default key bindings.
func DefaultRunboardKeyMap() RunboardKeyMap {
	return RunboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "final frame"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RunboardModel is the Bubble Tea model for browsing the run journal.
type RunboardModel struct {
	runs        []storage.RunRecord
	totals      *storage.Totals
	cfg         config.PowerPongConfig // Used to draw stored snapshots
	table       table.Model
	help        help.Model
	keys        RunboardKeyMap
	width       int
	height      int
	showPreview bool
	quitting    bool
}

// NewRunboardModel loads the journal and builds the table.
func NewRunboardModel(store *storage.Store, cfg config.PowerPongConfig, width, height int) (RunboardModel, error) {
	runs, err := store.RecentRuns(maxRuns)
	if err != nil {
		return RunboardModel{}, err
	}
	totals, err := store.Totals()
	if err != nil {
		return RunboardModel{}, err
	}

	m := RunboardModel{
		runs:   runs,
		totals: totals,
		cfg:    cfg,
		help:   help.New(),
		keys:   DefaultRunboardKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m, nil
}

// createTable creates a new table sized to the window.
func (m *RunboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 6},
		{Title: "Date", Width: 14},
		{Title: "Source", Width: 6},
		{Title: "Best", Width: 6},
		{Title: "Hits", Width: 6},
		{Title: "Frames", Width: 8},
		{Title: "Rewards", Width: 9},
		{Title: "End", Width: 11},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)), // Leave room for header, totals and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table from the loaded runs.
func (m *RunboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			strconv.FormatInt(r.ID, 10),
			r.CreatedAt.Format("Jan 02 15:04"),
			r.Source,
			strconv.Itoa(r.BestScore),
			strconv.Itoa(r.Hits),
			strconv.FormatInt(r.Frames, 10),
			fmt.Sprintf("%d/%d/%d", r.ExtraBalls, r.PowerUpDrops, r.Bonuses),
			r.EndReason,
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Selected returns the highlighted run, or nil when the journal is empty.
func (m RunboardModel) Selected() *storage.RunRecord {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.runs) {
		return nil
	}
	return &m.runs[i]
}

// Init initializes the runboard model.
func (m RunboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the runboard.
func (m RunboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Toggle):
			m.showPreview = !m.showPreview
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the runboard.
func (m RunboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render("POWER PONG RUNS"))
	b.WriteString("\n")
	b.WriteString(m.renderTotals())
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	switch {
	case len(m.runs) == 0:
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(boxStyle.Render(emptyStyle.Render("No runs recorded yet.\nPlay or simulate a game first.")))
	case m.showPreview:
		b.WriteString(boxStyle.Render(m.renderPreview()))
	default:
		b.WriteString(boxStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m RunboardModel) renderTotals() string {
	t := m.totals
	if t == nil || t.Runs == 0 {
		return helpStyle.Render("empty journal")
	}
	return helpStyle.Render(fmt.Sprintf(
		"%d runs  best %d  avg best %.1f  hits %d  rewards %d/%d/%d",
		t.Runs, t.BestScore, t.AvgBest, t.Hits, t.ExtraBalls, t.PowerUpDrops, t.Bonuses,
	))
}

// renderPreview draws the final frame of the selected run.
func (m RunboardModel) renderPreview() string {
	run := m.Selected()
	if run == nil {
		return ""
	}
	snap, err := run.DecodeSnapshot()
	if err != nil {
		return err.Error()
	}
	screen := RenderSnapshot(m.cfg, snap, previewWidth, previewRows)
	return fmt.Sprintf("Run %d, frame %d\n", run.ID, snap.Frame) + RenderScreen(screen)
}

// RenderSnapshot draws a stored state into a new screen buffer.
func RenderSnapshot(cfg config.PowerPongConfig, snap powerpong.Snapshot, width, height int) *core.Screen {
	sim := powerpong.NewSimulation(cfg, powerpong.NewRandom(0))
	sim.ApplySnapshot(snap)

	screen := core.NewScreen(width, height)
	powerpong.RenderState(screen, sim, 0)
	return screen
}

// RunRunboard runs the journal browser.
func RunRunboard(store *storage.Store, cfg config.PowerPongConfig, width, height int) error {
	model, err := NewRunboardModel(store, cfg, width, height)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
