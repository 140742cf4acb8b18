package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/rpsbomb/internal/bot"
	"github.com/lox/rpsbomb/internal/config"
	"github.com/lox/rpsbomb/internal/console"
	"github.com/lox/rpsbomb/internal/game"
	"github.com/lox/rpsbomb/internal/randutil"
	"github.com/lox/rpsbomb/internal/transcript"
	"github.com/lox/rpsbomb/internal/tui"
)

// PlayCmd runs one interactive game.
type PlayCmd struct {
	Debug      bool   `short:"d" help:"Enable verbose per-round logging of state transitions"`
	Config     string `short:"c" default:"rpsbomb.hcl" help:"Path to HCL config file"`
	Seed       int64  `help:"Seed for the bot's RNG (0 means time-seeded)"`
	Strategy   string `help:"Bot strategy (random or cycle); overrides config"`
	TUI        bool   `help:"Use the full-screen terminal interface"`
	Transcript string `help:"Write a JSON-lines transcript of state transitions to this file"`
}

func (p *PlayCmd) Run() error {
	cfg, err := config.Load(p.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, logCloser, err := setupLogger(p.Debug, cfg.UI.LogLevel, cfg.UI.LogFile)
	if err != nil {
		return err
	}
	if logCloser != nil {
		defer logCloser.Close()
	}

	seed := cfg.Bot.Seed
	if p.Seed != 0 {
		seed = p.Seed
	}
	strategy := cfg.Bot.Strategy
	if p.Strategy != "" {
		strategy = p.Strategy
	}

	selector, err := bot.FromName(strategy, randutil.NewOrTime(seed), logger)
	if err != nil {
		return err
	}
	logger.Debug("bot configured", "strategy", strategy, "seed", seed)

	opts := []game.Option{game.WithEmoji(cfg.UI.EmojiEnabled())}
	if p.Transcript != "" {
		f, err := os.Create(p.Transcript)
		if err != nil {
			return fmt.Errorf("create transcript file: %w", err)
		}
		defer f.Close()
		opts = append(opts, game.WithTranscript(
			transcript.New(quartz.NewReal(), logger, transcript.WithSink(f))))
	} else if p.Debug {
		// Debug runs always keep an in-memory transcript so transitions
		// show up in the logs.
		opts = append(opts, game.WithTranscript(transcript.New(quartz.NewReal(), logger)))
	}

	session := game.NewSession(logger, selector, opts...)
	ctx := setupSignalHandler(logger)

	if p.TUI {
		return runTUI(session, logger)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		defer logger.Debug("game loop finished")
		return console.New(session, logger, os.Stdin, os.Stdout).Run(gctx)
	})
	g.Go(func() error {
		// Unblock the stdin read when the loop ends or a signal lands.
		<-gctx.Done()
		os.Stdin.Close()
		return nil
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}

func runTUI(session *game.Session, logger *log.Logger) error {
	model := tui.NewModel(session, logger)
	program := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	final := model.FinalState()
	if final.GameOver {
		logger.Info("game finished",
			"winner", final.FinalWinner,
			"userScore", final.UserScore,
			"botScore", final.BotScore)
	}
	return nil
}

// RulesCmd prints the rules and exits.
type RulesCmd struct{}

func (r *RulesCmd) Run() error {
	logger := log.NewWithOptions(io.Discard, log.Options{})
	session := game.NewSession(logger, bot.NewCycle(logger))
	_, rules := session.Start()
	fmt.Println(rules)
	return nil
}
