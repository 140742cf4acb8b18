// Package intent maps free-text user input to canonical moves using a
// fixed synonym table. No scoring or fuzzy matching: a phrase either
// normalizes to a known synonym or the move is unknown.
package intent

import (
	"strings"

	"github.com/lox/rpsbomb/rps"
)

// Unknown is returned when no synonym matches the input.
const Unknown = "unknown"

// synonyms maps normalized phrases to canonical moves.
var synonyms = map[string]rps.Move{
	// rock
	"rock":    rps.MoveRock,
	"stone":   rps.MoveRock,
	"boulder": rps.MoveRock,
	"fist":    rps.MoveRock,
	"r":       rps.MoveRock,
	"🪨":       rps.MoveRock,

	// paper
	"paper": rps.MovePaper,
	"sheet": rps.MovePaper,
	"page":  rps.MovePaper,
	"wrap":  rps.MovePaper,
	"p":     rps.MovePaper,
	"📄":     rps.MovePaper,
	"📃":     rps.MovePaper,

	// scissors
	"scissors": rps.MoveScissors,
	"scissor":  rps.MoveScissors,
	"cut":      rps.MoveScissors,
	"snip":     rps.MoveScissors,
	"s":        rps.MoveScissors,
	"✂️":       rps.MoveScissors,
	"✂":        rps.MoveScissors,

	// bomb
	"bomb":    rps.MoveBomb,
	"boom":    rps.MoveBomb,
	"explode": rps.MoveBomb,
	"blast":   rps.MoveBomb,
	"nuke":    rps.MoveBomb,
	"b":       rps.MoveBomb,
	"💣":       rps.MoveBomb,
	"🧨":       rps.MoveBomb,
}

// containmentOrder fixes the synonym scan order so phrases mentioning
// several moves ("cut the paper") always parse the same way. Single-rune
// shorthands are excluded from containment matching.
var containmentOrder = []string{
	"scissors", "scissor", "rock", "paper", "bomb",
	"stone", "boulder", "fist",
	"sheet", "page", "wrap",
	"cut", "snip",
	"boom", "explode", "blast", "nuke",
}

// fillers are lead-in phrases stripped before matching, so "I pick rock"
// parses the same as "rock".
var fillers = []string{
	"i pick ", "i choose ", "i go with ", "i'll go with ",
	"my move is ", "let's go ", "going with ", "i say ",
	"i want ", "give me ", "let's do ", "i play ",
}

// Normalize lowercases, trims, strips one leading filler phrase and any
// trailing punctuation.
func Normalize(text string) string {
	normalized := strings.ToLower(strings.TrimSpace(text))

	for _, filler := range fillers {
		if strings.HasPrefix(normalized, filler) {
			normalized = strings.TrimSpace(strings.TrimPrefix(normalized, filler))
			break
		}
	}

	return strings.TrimRight(normalized, "!.,?")
}

// ExtractMove parses user input into a canonical move token, or Unknown.
// Exact synonym match is tried first, then containment, so "I want rock
// please" still parses.
func ExtractMove(input string) string {
	normalized := Normalize(input)

	if move, ok := synonyms[normalized]; ok {
		return string(move)
	}

	for _, synonym := range containmentOrder {
		if strings.Contains(normalized, synonym) {
			return string(synonyms[synonym])
		}
	}

	return Unknown
}

// IsRulesRequest reports whether the input is asking for help or rules
// rather than making a move.
func IsRulesRequest(input string) bool {
	normalized := Normalize(input)
	for _, kw := range []string{"rules", "help", "how", "what", "explain", "?"} {
		if strings.Contains(normalized, kw) {
			return true
		}
	}
	return false
}

// IsQuit reports whether the input is a request to end the session.
func IsQuit(input string) bool {
	switch Normalize(input) {
	case "quit", "exit", "q", "bye":
		return true
	}
	return false
}
