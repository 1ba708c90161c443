// internal/game/types.go
//
// Core type definitions for a Word Scramble round.
// Defines:
//   - Session: state of one round (root word, accepted words, input buffer).
//   - Reason:  why a submission was rejected, with its alert title/message.
//   - Rejection, Result: outcomes of Submit.

package game

import (
	"errors"
	"fmt"
	"time"
)

// Session holds the state of a single round.
//
// Accepted words are kept oldest-first internally so recording is an append;
// UsedWords presents them most-recent-first. Mutate only through RecordWord
// and SetInput.
type Session struct {
	ID           string    // Unique round identifier (UUID).
	RootWord     string    // Lowercase root word, fixed for the round.
	PendingInput string    // Scratch buffer bound to the input field.
	StartedAt    time.Time // When the round started (UTC).

	history []string            // accepted words, oldest first
	seen    map[string]struct{} // same words, for the originality check
}

// Reason identifies why a submission was rejected.
type Reason string

const (
	ReasonAlreadyUsed   Reason = "already_used"
	ReasonNotComposable Reason = "not_composable"
	ReasonNotARealWord  Reason = "not_real"
)

// Title is the short alert heading shown to the player.
func (r Reason) Title() string {
	switch r {
	case ReasonAlreadyUsed:
		return "Word already used!"
	case ReasonNotComposable:
		return "Word not possible!"
	case ReasonNotARealWord:
		return "Word not recognised!"
	}
	return "Word rejected!"
}

// Message is the alert body shown to the player.
func (r Reason) Message() string {
	switch r {
	case ReasonAlreadyUsed:
		return "Try to be more original."
	case ReasonNotComposable:
		return "You can't spell that word from the root word."
	case ReasonNotARealWord:
		return "You can't just make words up you know!"
	}
	return "Try another word."
}

// Sentinel errors, one per Reason. A *Rejection unwraps to the matching one,
// so callers can use errors.Is(err, game.ErrAlreadyUsed).
var (
	ErrAlreadyUsed   = errors.New("word already used")
	ErrNotComposable = errors.New("word not composable from root word")
	ErrNotARealWord  = errors.New("word not recognised")
)

// ErrEmptyInput marks a blank submission. Submit turns it into an ignored
// Result; it is never shown to the player.
var ErrEmptyInput = errors.New("empty input")

// Rejection is the error returned for a submission that failed a check.
type Rejection struct {
	Reason Reason
	Word   string // normalized candidate
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("rejected %q: %v", r.Word, r.Unwrap())
}

func (r *Rejection) Unwrap() error {
	switch r.Reason {
	case ReasonAlreadyUsed:
		return ErrAlreadyUsed
	case ReasonNotComposable:
		return ErrNotComposable
	case ReasonNotARealWord:
		return ErrNotARealWord
	}
	return errors.New(string(r.Reason))
}

// Result describes a submission that did not fail.
type Result struct {
	Word    string // accepted word, already normalized; empty when Ignored
	Ignored bool   // input was blank; nothing changed
}
