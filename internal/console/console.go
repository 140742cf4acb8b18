// Package console implements the default line-oriented interface: read a
// line, play a round, print the response, until the game is over or the
// user quits.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/rpsbomb/internal/game"
)

// Loop drives a session over plain stdin/stdout style streams.
type Loop struct {
	session *game.Session
	logger  *log.Logger
	in      io.Reader
	out     io.Writer
	output  *termenv.Output
}

// New creates a console loop. The output's color profile is detected from
// the writer, so piped output stays plain.
func New(session *game.Session, logger *log.Logger, in io.Reader, out io.Writer) *Loop {
	return &Loop{
		session: session,
		logger:  logger.WithPrefix("console"),
		in:      in,
		out:     out,
		output:  termenv.NewOutput(out),
	}
}

// Run plays one full game. It returns nil on normal completion, on quit,
// and on context cancellation (interrupt is a normal way to leave a game).
func (l *Loop) Run(ctx context.Context) error {
	state, welcome := l.session.Start()
	l.println(l.banner())
	l.println(welcome)
	l.println("")

	scanner := bufio.NewScanner(l.in)

	for !state.GameOver {
		l.prompt(state.CurrentRound)

		if !scanner.Scan() {
			if ctx.Err() != nil {
				l.logger.Debug("context cancelled, leaving game")
				return nil
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			l.println("")
			return nil // EOF
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		result, err := l.session.PlayRound(state, input)
		if err != nil {
			return fmt.Errorf("play round: %w", err)
		}

		l.println("")
		l.println(result.Response)
		l.println("")

		if result.Quit {
			return nil
		}
		state = result.State
	}

	return nil
}

func (l *Loop) banner() string {
	return l.output.String(" rock · paper · scissors · bomb ").
		Bold().
		Foreground(l.output.Color("#FAFAFA")).
		Background(l.output.Color("#7D56F4")).
		String()
}

func (l *Loop) prompt(round int) {
	p := l.output.String(fmt.Sprintf("round %d> ", round)).
		Bold().
		Foreground(l.output.Color("#04B575")).
		String()
	fmt.Fprint(l.out, p)
}

func (l *Loop) println(s string) {
	fmt.Fprintln(l.out, s)
}
