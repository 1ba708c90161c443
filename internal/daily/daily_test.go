package daily

import (
	"testing"
	"time"
)

func TestDateKeyUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	// 2024-03-02 05:00 in UTC+10 is still 2024-03-01 in UTC.
	ts := time.Date(2024, 3, 2, 5, 0, 0, 0, loc)
	if got := DateKey(ts); got != "2024-03-01" {
		t.Errorf("DateKey = %q, want %q", got, "2024-03-01")
	}
}

func TestWordIndexDeterministic(t *testing.T) {
	day := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	a := WordIndex(day, "salt", 100)
	b := WordIndex(day.Add(3*time.Hour), "salt", 100)
	if a != b {
		t.Errorf("same day produced different indexes: %d vs %d", a, b)
	}
	if a < 0 || a >= 100 {
		t.Errorf("index %d out of range [0,100)", a)
	}
}

func TestWordIndexEmptyRange(t *testing.T) {
	for _, n := range []int{0, -3} {
		if got := WordIndex(time.Now(), "salt", n); got != 0 {
			t.Errorf("WordIndex(n=%d) = %d, want 0", n, got)
		}
	}
}

func TestWordIndexVariesWithSalt(t *testing.T) {
	day := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	seen := map[int]bool{}
	for _, salt := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		seen[WordIndex(day, salt, 1000)] = true
	}
	if len(seen) < 2 {
		t.Errorf("expected different salts to spread indexes, got %v", seen)
	}
}
