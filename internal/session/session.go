// Package session orchestrates the level lifecycle around the pure
// simulation core: which level is current, restarting it when lives run
// out, and advancing when the last block falls. It owns no physics; it
// only composes level building with the outputs of game.Tick.
// Persistence of the current level index is an injected port, never
// ambient state.
package session

import (
	"fmt"

	"github.com/arcadeworks/breaker/internal/game"
	"github.com/arcadeworks/breaker/internal/level"
)

// ProgressStore is the seam where "which level the player is on" is
// persisted. Implementations live outside this package; a nil store
// means progress is ephemeral.
type ProgressStore interface {
	// CurrentLevel returns the saved level index for a profile, or 0
	// if none has been saved yet.
	CurrentLevel(profile string) (int, error)

	// SetCurrentLevel records the level index for a profile.
	SetCurrentLevel(profile string, index int) error
}

// Event reports what a session step decided beyond the plain physics.
type Event int

const (
	EventNone Event = iota
	EventLifeLost
	EventGameOver         // lives exhausted; the level restarts fresh
	EventLevelAdvanced    // level cleared, moved to the next one
	EventCampaignComplete // final level cleared; held at the final level
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventLifeLost:
		return "LifeLost"
	case EventGameOver:
		return "GameOver"
	case EventLevelAdvanced:
		return "LevelAdvanced"
	case EventCampaignComplete:
		return "CampaignComplete"
	default:
		return "None"
	}
}

// Session runs one player's campaign: a level list, the current index,
// and the live simulation state.
type Session struct {
	levels  []level.Descriptor
	index   int
	profile string
	store   ProgressStore
	state   game.State

	// lastRunScore is the score at the moment the previous run ended,
	// kept for display after the game-over reset.
	lastRunScore int
}

// New starts a session over the given level list, resuming from the
// profile's saved level index when a store is provided.
func New(levels []level.Descriptor, store ProgressStore, profile string) (*Session, error) {
	if len(levels) == 0 {
		return nil, fmt.Errorf("session: no levels to play")
	}

	index := 0
	if store != nil {
		saved, err := store.CurrentLevel(profile)
		if err != nil {
			return nil, fmt.Errorf("session: reading progress: %w", err)
		}
		if saved > 0 && saved < len(levels) {
			index = saved
		}
	}

	s := &Session{
		levels:  levels,
		index:   index,
		profile: profile,
		store:   store,
	}
	if err := s.loadLevel(index, 0); err != nil {
		return nil, err
	}
	return s, nil
}

// loadLevel builds a fresh state for the level at index, carrying the
// given score into it.
func (s *Session) loadLevel(index, score int) error {
	st, err := level.Build(s.levels[index])
	if err != nil {
		return fmt.Errorf("session: building level %q: %w", s.levels[index].ID, err)
	}
	st.Score = score
	s.index = index
	s.state = st
	return nil
}

// State returns the current simulation state for rendering.
func (s *Session) State() game.State {
	return s.state
}

// LevelIndex returns the zero-based index of the current level.
func (s *Session) LevelIndex() int {
	return s.index
}

// Level returns the current level's descriptor.
func (s *Session) Level() level.Descriptor {
	return s.levels[s.index]
}

// LevelCount returns how many levels the session plays through.
func (s *Session) LevelCount() int {
	return len(s.levels)
}

// Advance runs one simulation tick and applies the lifecycle rules to
// its outcome: lives exhausted restarts the current level, a cleared
// board advances to the next level or holds at the final one. Progress
// persistence failures are reported but never interrupt play.
func (s *Session) Advance(movement game.Movement, dtMs float64) (Event, error) {
	prev := s.state
	s.state = game.Tick(prev, movement, dtMs)

	switch {
	case s.state.Lives <= 0:
		// Fresh run of the same level, score starts over.
		s.lastRunScore = s.state.Score
		if err := s.loadLevel(s.index, 0); err != nil {
			return EventGameOver, err
		}
		return EventGameOver, nil

	case s.state.Cleared():
		next := s.index + 1
		if next >= len(s.levels) {
			// Hold at the final level.
			if err := s.loadLevel(s.index, s.state.Score); err != nil {
				return EventCampaignComplete, err
			}
			return EventCampaignComplete, nil
		}
		if err := s.loadLevel(next, s.state.Score); err != nil {
			return EventLevelAdvanced, err
		}
		return EventLevelAdvanced, s.persist()

	case s.state.Lives < prev.Lives:
		return EventLifeLost, nil
	}

	return EventNone, nil
}

// LastRunScore returns the score the previous run ended with.
func (s *Session) LastRunScore() int {
	return s.lastRunScore
}

// Restart rebuilds the current level from scratch.
func (s *Session) Restart() error {
	return s.loadLevel(s.index, 0)
}

func (s *Session) persist() error {
	if s.store == nil {
		return nil
	}
	if err := s.store.SetCurrentLevel(s.profile, s.index); err != nil {
		return fmt.Errorf("session: saving progress: %w", err)
	}
	return nil
}
