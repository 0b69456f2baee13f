package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arcadeworks/breaker/internal/game"
	"github.com/arcadeworks/breaker/internal/session"
	"github.com/arcadeworks/breaker/internal/storage"
)

// phase is the driver-side lifecycle state. The simulation core holds
// no notion of pausing or game over; those live entirely here.
type phase int

const (
	phasePlaying phase = iota
	phasePaused
	phaseGameOver
	phaseComplete
)

// maxFrameDeltaMs caps the elapsed time handed to the core so a
// suspended terminal does not turn into one giant teleporting tick.
const maxFrameDeltaMs = 250.0

// Model is the Bubble Tea model driving one game session.
type Model struct {
	sess    *session.Session
	store   *storage.Store
	profile string

	width     int
	height    int
	frameRate int

	movement   game.Movement // pending intent, consumed by the next frame
	phase      phase
	lastFrame  time.Time
	finalScore int
	scoreSaved bool
	quitting   bool
}

// NewModel creates a model for the given session. store may be nil;
// scores are then simply not recorded.
func NewModel(sess *session.Session, store *storage.Store, profile string, width, height, frameRate int) Model {
	return Model{
		sess:      sess,
		store:     store,
		profile:   profile,
		width:     width,
		height:    height,
		frameRate: frameRate,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.frameRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey maps keyboard input to movement intents and driver-level
// actions.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit

	case "left", "a":
		m.movement = game.MoveLeft

	case "right", "d":
		m.movement = game.MoveRight

	case "p", "esc":
		switch m.phase {
		case phasePlaying:
			m.phase = phasePaused
		case phasePaused:
			m.phase = phasePlaying
		}

	case "r":
		if m.phase == phaseGameOver || m.phase == phaseComplete {
			if err := m.sess.Restart(); err == nil {
				m.phase = phasePlaying
				m.scoreSaved = false
			}
		}
	}

	return m, nil
}

// handleFrame advances the simulation by the real time elapsed since
// the previous frame. While paused or on an overlay the clock is kept
// warm but the core is not ticked, so resuming never produces a jump.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	if m.phase != phasePlaying {
		m.lastFrame = now
		return m, frameCmd(m.frameRate)
	}

	dt := float64(1000) / float64(m.frameRate)
	if !m.lastFrame.IsZero() {
		dt = float64(now.Sub(m.lastFrame).Microseconds()) / 1000
	}
	if dt > maxFrameDeltaMs {
		dt = maxFrameDeltaMs
	}
	m.lastFrame = now

	ev, err := m.sess.Advance(m.movement, dt)
	m.movement = game.MoveNone
	if err != nil {
		// Lifecycle errors (level rebuild, persistence) are not
		// recoverable from inside the frame loop.
		m.quitting = true
		return m, tea.Quit
	}

	switch ev {
	case session.EventGameOver:
		m.phase = phaseGameOver
		m.finalScore = m.sess.LastRunScore()
		m.saveScore(m.finalScore)

	case session.EventCampaignComplete:
		m.phase = phaseComplete
		m.finalScore = m.sess.State().Score
		m.saveScore(m.finalScore)
	}

	return m, frameCmd(m.frameRate)
}

// saveScore records a finished run, best effort.
func (m *Model) saveScore(score int) {
	if m.store == nil || m.scoreSaved || score <= 0 {
		return
	}
	//nolint:errcheck // Best-effort save, play continues regardless
	m.store.SaveScore(m.profile, score, m.sess.LevelIndex())
	m.scoreSaved = true
}

// View renders the current simulation state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	st := m.sess.State()
	hud := fmt.Sprintf("Score: %d   Lives: %d   Level: %d/%d",
		st.Score, st.Lives, m.sess.LevelIndex()+1, m.sess.LevelCount())

	var overlay []string
	switch m.phase {
	case phasePaused:
		overlay = []string{"PAUSED", "Press P to resume"}
	case phaseGameOver:
		overlay = []string{
			"GAME OVER",
			fmt.Sprintf("Score: %d", m.finalScore),
			"Press R to retry, Q to quit",
		}
	case phaseComplete:
		overlay = []string{
			"ALL LEVELS CLEARED!",
			fmt.Sprintf("Final Score: %d", m.finalScore),
			"Press R to replay the last level, Q to quit",
		}
	}

	return RenderState(st, m.width, m.height, hud, overlay)
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(sess *session.Session, store *storage.Store, profile string, width, height, frameRate int) error {
	model := NewModel(sess, store, profile, width, height, frameRate)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
