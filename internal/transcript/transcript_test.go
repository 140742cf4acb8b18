package transcript

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/rpsbomb/rps"
)

func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func playRound(t *testing.T, state rps.GameState, userMove, botMove rps.Move) rps.GameState {
	t.Helper()
	res, err := rps.ResolveRound(userMove, botMove)
	require.NoError(t, err)
	next, err := rps.Update(state, rps.RoundOutcome{
		UserMove:    userMove,
		BotMove:     botMove,
		Winner:      res.Winner,
		Explanation: res.Explanation,
	})
	require.NoError(t, err)
	return next
}

func TestRecordRoundCapturesTimestampAndSnapshot(t *testing.T) {
	clock := quartz.NewMock(t)
	rec := New(clock, discardLogger())

	state := playRound(t, rps.NewGame(), rps.MoveRock, rps.MoveScissors)
	require.NoError(t, rec.RecordRound(state))

	clock.Advance(42)
	state = playRound(t, state, rps.MoveBomb, rps.MoveRock)
	require.NoError(t, rec.RecordRound(state))

	entries := rec.Entries()
	require.Len(t, entries, 2)

	assert.Equal(t, 1, entries[0].Round.Round)
	assert.Equal(t, 2, entries[1].Round.Round)
	assert.True(t, entries[1].Timestamp.After(entries[0].Timestamp))

	// Snapshots round-trip to the state at time of recording.
	restored, err := rps.FromJSON(entries[0].State)
	require.NoError(t, err)
	assert.Equal(t, 2, restored.CurrentRound)
	assert.Equal(t, 1, restored.UserScore)

	restored, err = rps.FromJSON(entries[1].State)
	require.NoError(t, err)
	assert.True(t, restored.UserBombUsed)
}

func TestRecordRoundWritesJSONLinesToSink(t *testing.T) {
	var buf bytes.Buffer
	rec := New(quartz.NewMock(t), discardLogger(), WithSink(&buf))

	state := playRound(t, rps.NewGame(), rps.MovePaper, rps.MovePaper)
	require.NoError(t, rec.RecordRound(state))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry Entry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, rps.PlayerDraw, entry.Round.Winner)
}

func TestRecordRoundRejectsEmptyHistory(t *testing.T) {
	rec := New(quartz.NewMock(t), discardLogger())
	assert.Error(t, rec.RecordRound(rps.NewGame()))
}
