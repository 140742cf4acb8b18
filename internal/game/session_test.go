package game

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/rpsbomb/internal/transcript"
	"github.com/lox/rpsbomb/rps"
)

func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

// scriptedSelector returns moves in order, so tests control the bot.
type scriptedSelector struct {
	moves []rps.Move
	next  int
}

func (s *scriptedSelector) Pick(rps.GameState) rps.Move {
	m := s.moves[s.next%len(s.moves)]
	s.next++
	return m
}

func newTestSession(moves []rps.Move, opts ...Option) *Session {
	return NewSession(discardLogger(), &scriptedSelector{moves: moves}, opts...)
}

func TestStartReturnsFreshGameAndRules(t *testing.T) {
	session := newTestSession([]rps.Move{rps.MoveRock})

	state, welcome := session.Start()
	assert.Equal(t, rps.NewGame(), state)
	assert.Contains(t, welcome, "best of 3")
	assert.Contains(t, welcome, "rock, paper, scissors or bomb")
}

func TestPlayRoundResolvedPath(t *testing.T) {
	session := newTestSession([]rps.Move{rps.MoveScissors})
	state, _ := session.Start()

	result, err := session.PlayRound(state, "rock")
	require.NoError(t, err)

	assert.Equal(t, 2, result.State.CurrentRound)
	assert.Equal(t, 1, result.State.UserScore)
	assert.Contains(t, result.Response, "Round 1")
	assert.Contains(t, result.Response, "crushes")
	assert.Contains(t, result.Response, "Score: You 1 - 0 Bot")
	assert.False(t, result.Quit)
}

func TestPlayRoundParsesSynonymsAndFillers(t *testing.T) {
	session := newTestSession([]rps.Move{rps.MoveScissors})
	state, _ := session.Start()

	result, err := session.PlayRound(state, "I pick stone!")
	require.NoError(t, err)
	assert.Equal(t, 1, result.State.UserScore)
	require.Len(t, result.State.RoundHistory, 1)
	assert.Equal(t, rps.MoveRock, result.State.RoundHistory[0].UserMove)
}

func TestPlayRoundWastedPath(t *testing.T) {
	session := newTestSession([]rps.Move{rps.MoveRock})
	state, _ := session.Start()

	result, err := session.PlayRound(state, "banana")
	require.NoError(t, err)

	assert.Equal(t, 2, result.State.CurrentRound)
	assert.Equal(t, 0, result.State.UserScore)
	assert.Equal(t, 0, result.State.BotScore)
	require.Len(t, result.State.RoundHistory, 1)
	assert.True(t, result.State.RoundHistory[0].Wasted)
	assert.Contains(t, result.Response, "Invalid move")
	assert.Contains(t, result.Response, "wasted")
}

func TestPlayRoundSecondBombIsWasted(t *testing.T) {
	session := newTestSession([]rps.Move{rps.MoveRock})
	state, _ := session.Start()

	result, err := session.PlayRound(state, "bomb")
	require.NoError(t, err)
	assert.True(t, result.State.UserBombUsed)
	assert.Equal(t, 1, result.State.UserScore)

	result, err = session.PlayRound(result.State, "bomb")
	require.NoError(t, err)
	assert.Contains(t, result.Response, "bomb already used")
	assert.Equal(t, 1, result.State.UserScore)
	assert.True(t, result.State.RoundHistory[1].Wasted)
}

func TestPlayRoundRulesRequestDoesNotConsumeRound(t *testing.T) {
	session := newTestSession([]rps.Move{rps.MoveRock})
	state, _ := session.Start()

	result, err := session.PlayRound(state, "what are the rules?")
	require.NoError(t, err)
	assert.Equal(t, 1, result.State.CurrentRound)
	assert.Empty(t, result.State.RoundHistory)
	assert.Contains(t, result.Response, "best of 3")
}

func TestPlayRoundQuit(t *testing.T) {
	session := newTestSession([]rps.Move{rps.MoveRock})
	state, _ := session.Start()

	result, err := session.PlayRound(state, "quit")
	require.NoError(t, err)
	assert.True(t, result.Quit)
	assert.Equal(t, 1, result.State.CurrentRound)
}

func TestFullGameEndsWithVerdict(t *testing.T) {
	session := newTestSession([]rps.Move{rps.MoveScissors})
	state, _ := session.Start()

	var result Result
	var err error
	for _, input := range []string{"rock", "rock", "rock"} {
		result, err = session.PlayRound(state, input)
		require.NoError(t, err)
		state = result.State
	}

	assert.True(t, state.GameOver)
	assert.Equal(t, rps.PlayerUser, state.FinalWinner)
	assert.Contains(t, result.Response, "You won the game!")
	assert.Contains(t, result.Response, "final score 3-0")

	// Input after game over answers with the verdict and leaves the
	// state untouched.
	after, err := session.PlayRound(state, "rock")
	require.NoError(t, err)
	assert.Equal(t, state, after.State)
	assert.Contains(t, after.Response, "Game over")
}

func TestSessionRecordsTranscript(t *testing.T) {
	rec := transcript.New(quartz.NewMock(t), discardLogger())
	session := newTestSession([]rps.Move{rps.MoveScissors}, WithTranscript(rec))
	state, _ := session.Start()

	result, err := session.PlayRound(state, "rock")
	require.NoError(t, err)
	_, err = session.PlayRound(result.State, "garbage")
	require.NoError(t, err)

	require.Equal(t, 2, rec.Len())
	assert.False(t, rec.Entries()[0].Round.Wasted)
	assert.True(t, rec.Entries()[1].Round.Wasted)
}

func TestEmojiToggle(t *testing.T) {
	session := newTestSession([]rps.Move{rps.MoveScissors}, WithEmoji(false))
	state, _ := session.Start()

	result, err := session.PlayRound(state, "rock")
	require.NoError(t, err)
	assert.NotContains(t, result.Response, "🪨")
	assert.Contains(t, result.Response, "ROCK")
}
