package dictionary

import (
	"time"

	"github.com/rs/zerolog/log"
)

// WithTimeout bounds each lookup on o to d. A lookup that does not answer in
// time counts as misspelled. d <= 0 returns o unchanged, so lookups block for
// as long as the oracle takes.
func WithTimeout(o Oracle, d time.Duration) Oracle {
	if d <= 0 {
		return o
	}
	return &timeoutOracle{next: o, limit: d}
}

type timeoutOracle struct {
	next  Oracle
	limit time.Duration
}

func (t *timeoutOracle) IsMisspelled(word, language string) bool {
	// buffered so a late answer does not leak the goroutine
	done := make(chan bool, 1)
	go func() { done <- t.next.IsMisspelled(word, language) }()

	timer := time.NewTimer(t.limit)
	defer timer.Stop()
	select {
	case misspelled := <-done:
		return misspelled
	case <-timer.C:
		log.Warn().Str("word", word).Dur("limit", t.limit).Msg("dictionary lookup timed out")
		return true
	}
}
