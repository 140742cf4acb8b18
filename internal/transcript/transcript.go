// Package transcript records every state transition of a game as a
// timestamped, append-only audit log. Each entry carries the round record
// that caused the transition and a full JSON snapshot of the state after
// it, so a finished game can be replayed or inspected offline.
package transcript

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/rpsbomb/rps"
)

// Entry is one recorded state transition.
type Entry struct {
	Timestamp time.Time       `json:"timestamp"`
	Round     rps.RoundRecord `json:"round"`
	State     json.RawMessage `json:"state"`
}

// Recorder accumulates entries in order. The clock is injected so tests
// can pin timestamps with a quartz mock.
type Recorder struct {
	clock   quartz.Clock
	logger  *log.Logger
	sink    io.Writer
	entries []Entry
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithSink additionally writes each entry as a JSON line to w.
func WithSink(w io.Writer) Option {
	return func(r *Recorder) {
		r.sink = w
	}
}

// New creates a Recorder. Pass quartz.NewReal() outside of tests.
func New(clock quartz.Clock, logger *log.Logger, opts ...Option) *Recorder {
	r := &Recorder{
		clock:  clock,
		logger: logger.WithPrefix("transcript"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RecordRound appends an entry for the most recent round in state.
// The state must have at least one round of history; passing a fresh
// game is a caller bug.
func (r *Recorder) RecordRound(state rps.GameState) error {
	if len(state.RoundHistory) == 0 {
		return fmt.Errorf("no rounds to record")
	}

	snapshot, err := state.ToJSON()
	if err != nil {
		return fmt.Errorf("snapshot state: %w", err)
	}

	entry := Entry{
		Timestamp: r.clock.Now(),
		Round:     state.RoundHistory[len(state.RoundHistory)-1],
		State:     snapshot,
	}
	r.entries = append(r.entries, entry)

	r.logger.Debug("recorded round",
		"round", entry.Round.Round,
		"winner", entry.Round.Winner,
		"wasted", entry.Round.Wasted)

	if r.sink != nil {
		line, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("marshal transcript entry: %w", err)
		}
		if _, err := r.sink.Write(append(line, '\n')); err != nil {
			return fmt.Errorf("write transcript entry: %w", err)
		}
	}

	return nil
}

// Entries returns the recorded transitions in order.
func (r *Recorder) Entries() []Entry {
	return r.entries
}

// Len returns the number of recorded transitions.
func (r *Recorder) Len() int {
	return len(r.entries)
}
