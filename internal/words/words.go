// internal/words/words.go
//
// Root word catalog for new rounds.
//
// Responsibilities:
//   - Read a newline-separated list of candidate root words from a Source
//     (a file on disk or the list embedded in the binary).
//   - Normalize entries (trim, lowercase, drop blanks and "#" comments).
//   - Pick a root word uniformly at random, or deterministically per day.
//
// Fallback behavior:
//   An unreadable or empty source never stops a round from starting. The
//   catalog is simply empty and Random returns FallbackRootWord.
//
// Environment (wired in main via internal/config):
//   START_WORDS_FILE=/path/to/start.txt

package words

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/apps/go-server/assets"
)

// FallbackRootWord is used whenever the catalog has nothing to offer.
const FallbackRootWord = "silkworm"

// ErrUnavailable is returned by Load when the source cannot be read or holds no words.
var ErrUnavailable = errors.New("words: catalog unavailable")

// Source reads the whole catalog text, or fails.
type Source interface {
	ReadAll() (string, error)
}

// FileSource reads the catalog from a file path.
type FileSource string

func (p FileSource) ReadAll() (string, error) {
	b, err := os.ReadFile(string(p))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (p FileSource) String() string { return "file:" + string(p) }

// EmbeddedSource reads assets/start.txt from the binary.
type EmbeddedSource struct{}

func (EmbeddedSource) ReadAll() (string, error) { return assets.StartWordsText() }

func (EmbeddedSource) String() string { return "embedded:start.txt" }

// SourceFunc adapts a plain function to Source.
type SourceFunc func() (string, error)

func (f SourceFunc) ReadAll() (string, error) { return f() }

// Catalog is an immutable ordered list of candidate root words.
// The zero value is an empty catalog.
type Catalog struct {
	words []string
}

// New builds a catalog from raw entries, normalizing each one.
func New(list []string) Catalog {
	out := make([]string, 0, len(list))
	for _, w := range list {
		if w = normalizeEntry(w); w != "" {
			out = append(out, w)
		}
	}
	return Catalog{words: out}
}

// Parse builds a catalog from newline-separated text.
func Parse(text string) Catalog {
	return New(strings.Split(text, "\n"))
}

// Load reads src and parses it. It returns ErrUnavailable (wrapping the read
// error, if any) when nothing usable comes back.
func Load(src Source) (Catalog, error) {
	if src == nil {
		return Catalog{}, ErrUnavailable
	}
	text, err := src.ReadAll()
	if err != nil {
		return Catalog{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	c := Parse(text)
	if c.Len() == 0 {
		return Catalog{}, fmt.Errorf("%w: no words in source", ErrUnavailable)
	}
	return c, nil
}

// LoadOrFallback is Load that logs and returns an empty catalog on failure.
// Rounds started from an empty catalog use FallbackRootWord.
func LoadOrFallback(src Source) Catalog {
	c, err := Load(src)
	if err != nil {
		log.Warn().Err(err).Str("fallback", FallbackRootWord).Msg("root word catalog unavailable")
		return Catalog{}
	}
	log.Info().Int("words", c.Len()).Msg("root word catalog loaded")
	return c
}

// Len reports the number of root words.
func (c Catalog) Len() int { return len(c.words) }

// Words returns a copy of the catalog entries in order.
func (c Catalog) Words() []string {
	return append([]string(nil), c.words...)
}

// Random returns a uniformly random root word, or FallbackRootWord when empty.
func (c Catalog) Random() string {
	if len(c.words) == 0 {
		return FallbackRootWord
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(c.words))))
	if err != nil {
		return c.words[0]
	}
	return c.words[n.Int64()]
}

// normalizeEntry trims and lowercases a catalog line; comments become "".
func normalizeEntry(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(s, "#") {
		return ""
	}
	return s
}
