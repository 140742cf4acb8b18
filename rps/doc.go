// Package rps implements the core rules engine for best-of-three
// rock-paper-scissors with a one-time bomb move per player.
//
// The main type is GameState, a plain value threaded by the caller through
// every operation. The engine itself holds no state: ValidateMove and
// ResolveRound are pure functions, and Update is the single place any field
// of a GameState changes.
//
// # Basic Usage
//
// Create a game and play a round:
//
//	state := rps.NewGame()
//	v := rps.ValidateMove("rock", rps.PlayerUser, state)
//	res, _ := rps.ResolveRound(v.Move, rps.MoveScissors)
//	state, _ = rps.Update(state, rps.RoundOutcome{
//	    UserMove:    v.Move,
//	    BotMove:     rps.MoveScissors,
//	    Winner:      res.Winner,
//	    Explanation: res.Explanation,
//	})
//
// Invalid input does not resolve a winner; it consumes the round instead:
//
//	state, _ = rps.Update(state, rps.RoundOutcome{Wasted: true})
//
// The game ends once three rounds have been consumed, at which point
// Update sets GameOver and FinalWinner and refuses further calls.
package rps
