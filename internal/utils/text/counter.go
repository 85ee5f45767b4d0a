// Package text provides character counting helpers shared by the entity validators.
package text

import "unicode/utf8"

// CountRunes counts the number of Unicode characters (runes) in the given text.
// Titles and names are measured in characters, not bytes, so "Café" has length 4.
//
// Examples:
//
//	CountRunes("Vogue")     // returns 5
//	CountRunes("日本語")     // returns 3
//	CountRunes("Hello👋")   // returns 6
//	CountRunes("")          // returns 0
func CountRunes(s string) int {
	return utf8.RuneCountInString(s)
}

// LengthBetween reports whether s has between min and max characters, inclusive.
func LengthBetween(s string, min, max int) bool {
	n := CountRunes(s)
	return n >= min && n <= max
}
