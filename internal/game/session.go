// Package game orchestrates one best-of-three match: it parses intent,
// runs the rules engine, and turns outcomes into response text. The
// session itself is stateless between calls; the caller owns the
// GameState and threads it through every PlayRound.
package game

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/rpsbomb/internal/bot"
	"github.com/lox/rpsbomb/internal/intent"
	"github.com/lox/rpsbomb/internal/transcript"
	"github.com/lox/rpsbomb/rps"
)

// Session wires the intent parser, the bot selector, and the rules engine
// together. It holds collaborators only, never game state.
type Session struct {
	logger   *log.Logger
	selector bot.Selector
	recorder *transcript.Recorder
	emoji    bool
}

// Option configures a Session.
type Option func(*Session)

// WithTranscript records every state transition to rec.
func WithTranscript(rec *transcript.Recorder) Option {
	return func(s *Session) {
		s.recorder = rec
	}
}

// WithEmoji toggles emoji in response text.
func WithEmoji(enabled bool) Option {
	return func(s *Session) {
		s.emoji = enabled
	}
}

// NewSession creates a session around the given bot selector.
func NewSession(logger *log.Logger, selector bot.Selector, opts ...Option) *Session {
	s := &Session{
		logger:   logger.WithPrefix("game"),
		selector: selector,
		emoji:    true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Result is the outcome of feeding one line of input to the session.
type Result struct {
	State    rps.GameState
	Response string
	Quit     bool
}

// Start returns a fresh game and the welcome text.
func (s *Session) Start() (rps.GameState, string) {
	s.logger.Info("starting new game")
	return rps.NewGame(), s.rulesText()
}

// PlayRound processes one line of user input against the given state and
// returns the next state plus response text. Rules requests and quit
// commands do not consume a round; everything else does, either resolved
// against a bot move or wasted on invalid input.
func (s *Session) PlayRound(state rps.GameState, input string) (Result, error) {
	if state.GameOver {
		// The front-end should have stopped the loop already; answer
		// with the verdict rather than touching the engine.
		s.logger.Debug("input after game over", "input", input)
		return Result{State: state, Response: s.gameOverText(state)}, nil
	}

	if intent.IsQuit(input) {
		s.logger.Info("user quit", "round", state.CurrentRound)
		return Result{State: state, Response: "Thanks for playing!", Quit: true}, nil
	}

	if intent.IsRulesRequest(input) {
		s.logger.Debug("rules request", "input", input)
		return Result{State: state, Response: s.rulesText()}, nil
	}

	candidate := intent.ExtractMove(input)
	s.logger.Debug("intent parsed", "input", input, "move", candidate)

	validation := rps.ValidateMove(candidate, rps.PlayerUser, state)
	if !validation.IsValid {
		return s.wasteRound(state, validation.Reason)
	}

	userMove := validation.Move
	botMove := s.selector.Pick(state)

	resolution, err := rps.ResolveRound(userMove, botMove)
	if err != nil {
		return Result{State: state}, fmt.Errorf("resolve round: %w", err)
	}

	next, err := rps.Update(state, rps.RoundOutcome{
		UserMove:    userMove,
		BotMove:     botMove,
		Winner:      resolution.Winner,
		Explanation: resolution.Explanation,
	})
	if err != nil {
		return Result{State: state}, fmt.Errorf("update state: %w", err)
	}

	s.logger.Info("round resolved",
		"round", state.CurrentRound,
		"userMove", userMove,
		"botMove", botMove,
		"winner", resolution.Winner)
	s.record(next)

	return Result{
		State:    next,
		Response: s.formatRoundResult(userMove, botMove, resolution, next),
	}, nil
}

// wasteRound consumes the round on invalid input: no bot move, no winner,
// no score change.
func (s *Session) wasteRound(state rps.GameState, reason string) (Result, error) {
	next, err := rps.Update(state, rps.RoundOutcome{Wasted: true})
	if err != nil {
		return Result{State: state}, fmt.Errorf("waste round: %w", err)
	}

	s.logger.Info("round wasted", "round", state.CurrentRound, "reason", reason)
	s.record(next)

	return Result{
		State:    next,
		Response: s.formatWastedRound(reason, next),
	}, nil
}

func (s *Session) record(state rps.GameState) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.RecordRound(state); err != nil {
		s.logger.Error("failed to record transcript entry", "error", err)
	}
}
