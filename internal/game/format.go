package game

import (
	"fmt"
	"strings"

	"github.com/lox/rpsbomb/rps"
)

var moveEmoji = map[rps.Move]string{
	rps.MoveRock:     "🪨",
	rps.MovePaper:    "📄",
	rps.MoveScissors: "✂️",
	rps.MoveBomb:     "💣",
}

// renderMove prints a move with its emoji when enabled.
func (s *Session) renderMove(m rps.Move) string {
	if s.emoji {
		return moveEmoji[m] + " " + strings.ToUpper(m.String())
	}
	return strings.ToUpper(m.String())
}

func (s *Session) rulesText() string {
	bomb := "bomb"
	if s.emoji {
		bomb = "💣 bomb"
	}
	return strings.Join([]string{
		"Rock-Paper-Scissors-Bomb (best of 3)",
		"",
		"  - rock beats scissors, scissors beat paper, paper beats rock",
		fmt.Sprintf("  - %s beats everything, but each player may use it once", bomb),
		"  - bomb vs bomb is a draw",
		"  - invalid moves waste the round",
		"  - type \"quit\" to end the game",
		"",
		"Your move: rock, paper, scissors or bomb",
	}, "\n")
}

func (s *Session) formatRoundResult(userMove, botMove rps.Move, res rps.Resolution, state rps.GameState) string {
	lines := []string{
		fmt.Sprintf("Round %d", state.RoundsPlayed()),
		fmt.Sprintf("You: %s", s.renderMove(userMove)),
		fmt.Sprintf("Bot: %s", s.renderMove(botMove)),
		res.Explanation,
		"",
		s.scoreLine(state),
	}

	return s.appendNext(lines, state)
}

func (s *Session) formatWastedRound(reason string, state rps.GameState) string {
	lines := []string{
		fmt.Sprintf("Invalid move: %s", reason),
		"The round is wasted. No points awarded.",
		"",
		s.scoreLine(state),
	}

	return s.appendNext(lines, state)
}

func (s *Session) scoreLine(state rps.GameState) string {
	return fmt.Sprintf("Score: You %d - %d Bot", state.UserScore, state.BotScore)
}

// appendNext closes a response with either the verdict or a prompt for
// the next round.
func (s *Session) appendNext(lines []string, state rps.GameState) string {
	if state.GameOver {
		lines = append(lines, "", s.gameOverText(state))
	} else {
		lines = append(lines, "", fmt.Sprintf("Round %d. Your move?", state.CurrentRound))
	}
	return strings.Join(lines, "\n")
}

func (s *Session) gameOverText(state rps.GameState) string {
	verdict := ""
	switch state.FinalWinner {
	case rps.PlayerUser:
		verdict = "You won the game!"
	case rps.PlayerBot:
		verdict = "The bot wins the game. Better luck next time."
	default:
		verdict = "The game is a draw. Well played."
	}
	return fmt.Sprintf("Game over: %s (final score %d-%d)", verdict, state.UserScore, state.BotScore)
}
