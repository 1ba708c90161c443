package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/robalobadob/wordscramble/apps/go-server/assets"
)

// WordList is an in-memory Oracle backed by one word set per language.
// A word is misspelled when its language has no set or the set lacks it.
type WordList struct {
	mu    sync.RWMutex
	langs map[string]map[string]struct{}
}

// NewWordList returns an empty word list.
func NewWordList() *WordList {
	return &WordList{langs: make(map[string]map[string]struct{})}
}

// Embedded returns a WordList holding assets/dictionary.txt as English.
func Embedded() (*WordList, error) {
	list, err := assets.DictionaryList()
	if err != nil {
		return nil, fmt.Errorf("read embedded dictionary: %w", err)
	}
	wl := NewWordList()
	wl.Add(Language, list...)
	return wl, nil
}

// FromFile loads one word per line from path into language.
func FromFile(path, language string) (*WordList, error) {
	list, err := ReadWordFile(path)
	if err != nil {
		return nil, err
	}
	wl := NewWordList()
	wl.Add(language, list...)
	return wl, nil
}

// ReadWordFile reads a newline-separated word file, trimming and lowercasing
// each line and skipping blanks and "#" comments.
func ReadWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.ToLower(strings.TrimSpace(sc.Text()))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		out = append(out, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", path, err)
	}
	return out, nil
}

// Add inserts words (lowercased) under language.
func (wl *WordList) Add(language string, words ...string) {
	wl.mu.Lock()
	defer wl.mu.Unlock()
	set, ok := wl.langs[language]
	if !ok {
		set = make(map[string]struct{}, len(words))
		wl.langs[language] = set
	}
	for _, w := range words {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			set[w] = struct{}{}
		}
	}
}

// Len reports how many words are known for language.
func (wl *WordList) Len(language string) int {
	wl.mu.RLock()
	defer wl.mu.RUnlock()
	return len(wl.langs[language])
}

// IsMisspelled implements Oracle.
func (wl *WordList) IsMisspelled(word, language string) bool {
	wl.mu.RLock()
	defer wl.mu.RUnlock()
	set, ok := wl.langs[language]
	if !ok {
		return true
	}
	_, known := set[strings.ToLower(word)]
	return !known
}
