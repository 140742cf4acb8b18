package bot

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/rpsbomb/internal/randutil"
	"github.com/lox/rpsbomb/rps"
)

func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func TestRandomPicksOnlyLegalMoves(t *testing.T) {
	selector := NewRandom(randutil.New(42), discardLogger())
	state := rps.NewGame()

	seen := map[rps.Move]bool{}
	for i := 0; i < 200; i++ {
		move := selector.Pick(state)
		assert.True(t, move.IsCanonical())
		seen[move] = true
	}

	// With 200 draws over 4 moves, every move should appear.
	for _, m := range rps.AllMoves {
		assert.True(t, seen[m], "expected %s to be picked", m)
	}
}

func TestRandomNeverPicksSpentBomb(t *testing.T) {
	selector := NewRandom(randutil.New(1), discardLogger())
	state := rps.NewGame()
	state.BotBombUsed = true

	for i := 0; i < 200; i++ {
		assert.NotEqual(t, rps.MoveBomb, selector.Pick(state))
	}
}

func TestRandomIsDeterministicPerSeed(t *testing.T) {
	a := NewRandom(randutil.New(7), discardLogger())
	b := NewRandom(randutil.New(7), discardLogger())
	state := rps.NewGame()

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Pick(state), b.Pick(state))
	}
}

func TestCycleWalksRounds(t *testing.T) {
	selector := NewCycle(discardLogger())
	state := rps.NewGame()

	state.CurrentRound = 1
	assert.Equal(t, rps.MoveRock, selector.Pick(state))
	state.CurrentRound = 2
	assert.Equal(t, rps.MovePaper, selector.Pick(state))
	state.CurrentRound = 3
	assert.Equal(t, rps.MoveScissors, selector.Pick(state))

	// Bomb spent shrinks the cycle to the base moves.
	state.BotBombUsed = true
	state.CurrentRound = 4
	assert.Equal(t, rps.MoveRock, selector.Pick(state))
}

func TestFromName(t *testing.T) {
	rng := randutil.New(1)

	s, err := FromName("random", rng, discardLogger())
	require.NoError(t, err)
	assert.IsType(t, &Random{}, s)

	s, err = FromName("cycle", rng, discardLogger())
	require.NoError(t, err)
	assert.IsType(t, &Cycle{}, s)

	_, err = FromName("psychic", rng, discardLogger())
	assert.Error(t, err)
}
