package words

import (
	"time"

	"github.com/robalobadob/wordscramble/apps/go-server/internal/daily"
)

// ForDate returns the root word for the UTC day containing t. Every call with
// the same day and salt yields the same word. Empty catalogs return FallbackRootWord.
func (c Catalog) ForDate(t time.Time, salt string) string {
	if len(c.words) == 0 {
		return FallbackRootWord
	}
	return c.words[daily.WordIndex(t, salt, len(c.words))]
}
