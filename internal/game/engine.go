// internal/game/engine.go
//
// Round lifecycle and the submission pipeline.
// Responsibilities:
//   - Start rounds from the root word catalog (fallback word when empty).
//   - Record accepted words, most recent first, and clear the input buffer.
//   - Validate submissions in strict order, stopping at the first failure:
//       1. normalize (lowercase, trim); blank input is a silent no-op
//       2. original   (not already used this round)   -> ReasonAlreadyUsed
//       3. possible   (letters available in root word) -> ReasonNotComposable
//       4. real       (dictionary oracle, language en) -> ReasonNotARealWord
//
// Notes:
//   - A candidate equal to the root word is accepted when it passes the checks.
//   - There is no minimum word length.
//   - A rejected submission leaves the session untouched, PendingInput included.

package game

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/robalobadob/wordscramble/apps/go-server/internal/dictionary"
	"github.com/robalobadob/wordscramble/apps/go-server/internal/words"
)

// StartRound begins a round with a root word drawn uniformly at random from c.
// An empty catalog yields words.FallbackRootWord. Never fails.
func StartRound(c words.Catalog) *Session {
	return StartRoundWith(c.Random())
}

// StartRoundWith begins a round with the given root word. A blank root word
// is replaced by words.FallbackRootWord.
func StartRoundWith(root string) *Session {
	root = strings.ToLower(strings.TrimSpace(root))
	if root == "" {
		root = words.FallbackRootWord
	}
	return &Session{
		ID:        uuid.NewString(),
		RootWord:  root,
		StartedAt: time.Now().UTC(),
		seen:      make(map[string]struct{}),
	}
}

// RecordWord puts word at the front of the used words and clears the input
// buffer. It does not validate; callers run Validate first.
func (s *Session) RecordWord(word string) {
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	s.history = append(s.history, word)
	s.seen[word] = struct{}{}
	s.PendingInput = ""
}

// SetInput replaces the pending input buffer.
func (s *Session) SetInput(text string) { s.PendingInput = text }

// UsedWords returns the accepted words, most recent first.
func (s *Session) UsedWords() []string {
	out := make([]string, len(s.history))
	for i, w := range s.history {
		out[len(s.history)-1-i] = w
	}
	return out
}

// WordCount reports how many words were accepted this round.
func (s *Session) WordCount() int { return len(s.history) }

// Score is the total number of letters across accepted words.
func (s *Session) Score() int {
	total := 0
	for _, w := range s.history {
		total += len([]rune(w))
	}
	return total
}

// Clone returns a deep copy, safe to read while the original keeps changing.
func (s *Session) Clone() *Session {
	c := *s
	c.history = append([]string(nil), s.history...)
	c.seen = make(map[string]struct{}, len(s.seen))
	for w := range s.seen {
		c.seen[w] = struct{}{}
	}
	return &c
}

// Normalize lowercases raw and trims surrounding whitespace and newlines.
func Normalize(raw string) string {
	// Casers keep state, so one per call.
	return strings.TrimSpace(cases.Lower(language.English).String(raw))
}

// IsOriginal reports whether word has not been accepted yet this round.
func (s *Session) IsOriginal(word string) bool {
	_, used := s.seen[word]
	return !used
}

// IsPossible reports whether word can be spelled from the letters of root,
// using each letter of root at most once.
func IsPossible(root, word string) bool {
	available := make(map[rune]int, len(root))
	for _, r := range root {
		available[r]++
	}
	for _, r := range word {
		if available[r] == 0 {
			return false
		}
		available[r]--
	}
	return true
}

// Validate runs the submission pipeline against s without changing it.
// It returns the normalized word, ErrEmptyInput for blank input, or a
// *Rejection for the first failed check. A nil oracle rejects every word
// that reaches the dictionary check.
func Validate(s *Session, raw string, oracle dictionary.Oracle) (string, error) {
	word := Normalize(raw)
	if word == "" {
		return "", ErrEmptyInput
	}
	if !s.IsOriginal(word) {
		return "", &Rejection{Reason: ReasonAlreadyUsed, Word: word}
	}
	if !IsPossible(s.RootWord, word) {
		return "", &Rejection{Reason: ReasonNotComposable, Word: word}
	}
	if oracle == nil || oracle.IsMisspelled(word, dictionary.Language) {
		return "", &Rejection{Reason: ReasonNotARealWord, Word: word}
	}
	return word, nil
}

// Submit validates raw and records it on success.
//   - blank input: Result{Ignored: true}, nil error, no change
//   - rejected:    *Rejection error, no change
//   - accepted:    Result{Word: w}, word recorded and input cleared
func (s *Session) Submit(raw string, oracle dictionary.Oracle) (Result, error) {
	word, err := Validate(s, raw, oracle)
	if errors.Is(err, ErrEmptyInput) {
		return Result{Ignored: true}, nil
	}
	if err != nil {
		return Result{}, err
	}
	s.RecordWord(word)
	return Result{Word: word}, nil
}

// SubmitPending submits the current PendingInput.
func (s *Session) SubmitPending(oracle dictionary.Oracle) (Result, error) {
	return s.Submit(s.PendingInput, oracle)
}
