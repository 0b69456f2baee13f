package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arcadeworks/breaker/internal/storage"
)

// maxScoreRows caps how many scores are loaded into the table.
const maxScoreRows = 100

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var scoreboardTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("12")).
	Padding(0, 1)

// ScoreboardModel displays a profile's high scores in a table.
type ScoreboardModel struct {
	profile  string
	table    table.Model
	keys     ScoreboardKeyMap
	help     help.Model
	quitting bool
}

// NewScoreboardModel loads a profile's scores from the store and
// builds the table view.
func NewScoreboardModel(store *storage.Store, profile string) (ScoreboardModel, error) {
	entries, err := store.TopScores(profile, maxScoreRows)
	if err != nil {
		return ScoreboardModel{}, fmt.Errorf("loading scores: %w", err)
	}

	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 10},
		{Title: "Level", Width: 7},
		{Title: "When", Width: 18},
	}

	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", e.Score),
			fmt.Sprintf("%d", e.Level+1),
			e.CreatedAt.Format("2006-01-02 15:04"),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	return ScoreboardModel{
		profile: profile,
		table:   t,
		keys:    DefaultScoreboardKeyMap(),
		help:    help.New(),
	}, nil
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles scoreboard input.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	title := scoreboardTitleStyle.Render(fmt.Sprintf("High scores: %s", m.profile))
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.table.View(),
		m.help.View(m.keys),
	)
}

// RunScoreboard shows the scoreboard for a profile.
func RunScoreboard(store *storage.Store, profile string) error {
	model, err := NewScoreboardModel(store, profile)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model)
	_, err = p.Run()
	return err
}
