// assets/embed.go
//
// Bundled word lists shipped inside the binary.
//   - start.txt:      candidate root words, one per line.
//   - dictionary.txt: English words used by the default spelling oracle.
//
// Lines are trimmed and lowercased; blank lines and "#" comments are skipped.

package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed start.txt dictionary.txt
var FS embed.FS

// StartWordsText returns the raw contents of start.txt.
func StartWordsText() (string, error) {
	b, err := FS.ReadFile("start.txt")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DictionaryList returns the normalized lines of dictionary.txt.
func DictionaryList() ([]string, error) {
	return readLines("dictionary.txt")
}

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}
