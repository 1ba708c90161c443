// Package dictionary answers "is this a real word?" for the validator.
//
// The game only depends on the Oracle interface, so any backing dictionary
// can be plugged in: an in-memory word list (WordList), a SQLite table
// (SQLite), or a remote service behind a Func adapter. WithTimeout bounds
// oracles whose lookups may block on I/O.
package dictionary

// Language is the language tag the game passes to every lookup.
const Language = "en"

// Oracle reports whether a word is unknown in the given language.
// A true result rejects the word.
type Oracle interface {
	IsMisspelled(word, language string) bool
}

// Func adapts a plain function to Oracle.
type Func func(word, language string) bool

func (f Func) IsMisspelled(word, language string) bool { return f(word, language) }
