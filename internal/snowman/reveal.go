// Package snowman implements the word-guessing game: a fixed hidden word,
// single-letter guesses, and a seven-part snowman illustration that loses
// one part per wrong guess.
//
// The reveal functions in this file are pure: they never mutate their
// inputs and carry no game state, so they can be tested in isolation.
package snowman

import "unicode"

// Placeholder is the glyph shown for an unrevealed letter position.
const Placeholder = '_'

// MaxWrongGuesses is the number of wrong guesses that ends the game.
// It equals the number of snowman parts: the last wrong guess removes
// the last part.
const MaxWrongGuesses = 7

// MaskWord returns the initial reveal state for a word: a placeholder for
// every non-space rune, spaces preserved. The result has the same length
// as the word and the function is idempotent over its input.
func MaskWord(word string) []rune {
	masked := make([]rune, 0, len(word))
	for _, r := range word {
		if r == ' ' {
			masked = append(masked, r)
		} else {
			masked = append(masked, Placeholder)
		}
	}
	return masked
}

// ApplyGuess returns a new reveal state with every position of word that
// matches guess (case-insensitively) revealed in the word's original case.
// All other positions keep their current value. The inputs are not mutated;
// counting a wrong guess is the caller's responsibility.
func ApplyGuess(guess rune, word string, revealed []rune) []rune {
	next := make([]rune, len(revealed))
	copy(next, revealed)

	lower := unicode.ToLower(guess)
	i := 0
	for _, r := range word {
		if i >= len(next) {
			break
		}
		if unicode.ToLower(r) == lower {
			next[i] = r
		}
		i++
	}
	return next
}

// runesEqual reports whether two reveal states are identical.
func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
