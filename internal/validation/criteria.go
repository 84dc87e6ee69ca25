// Copyright (c) 2025 ToeiRei
// Passgate - password strength validation toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// package validation implements the password strength engine: five
// independent criteria checks over a candidate string, and a per-form
// session that tracks a tri-state display status for each criterion.
// The package is pure and self-contained; rendering and persistence
// live in the surrounding shells.
package validation // import "github.com/toeirei/passgate/internal/validation"

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Length bounds for the mandatory length criterion, both inclusive.
const (
	MinLength = 8
	MaxLength = 32
)

// SpecialCharacters is the fixed set of runes that satisfy the special
// character criterion. Letters, digits and whitespace are deliberately
// not part of the set.
const SpecialCharacters = "!@#$%^&*()-_=+[]{}|;:'\",.<>/?`~\\"

// LengthAndNoSpaceMet reports whether text is between MinLength and
// MaxLength runes long and contains no whitespace.
func LengthAndNoSpaceMet(text string) bool {
	n := utf8.RuneCountInString(text)
	if n < MinLength || n > MaxLength {
		return false
	}
	for _, r := range text {
		if unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// UppercaseMet reports whether text contains at least one rune in A-Z.
func UppercaseMet(text string) bool {
	for _, r := range text {
		if r >= 'A' && r <= 'Z' {
			return true
		}
	}
	return false
}

// LowercaseMet reports whether text contains at least one rune in a-z.
func LowercaseMet(text string) bool {
	for _, r := range text {
		if r >= 'a' && r <= 'z' {
			return true
		}
	}
	return false
}

// DigitMet reports whether text contains at least one rune in 0-9.
func DigitMet(text string) bool {
	for _, r := range text {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}

// SpecialCharacterMet reports whether text contains at least one rune
// from SpecialCharacters.
func SpecialCharacterMet(text string) bool {
	for _, r := range text {
		if strings.ContainsRune(SpecialCharacters, r) {
			return true
		}
	}
	return false
}

// evaluate runs all five predicates against text, indexed by Criterion.
func evaluate(text string) [criterionCount]bool {
	return [criterionCount]bool{
		MinLengthNoSpace: LengthAndNoSpaceMet(text),
		Uppercase:        UppercaseMet(text),
		Lowercase:        LowercaseMet(text),
		Digit:            DigitMet(text),
		SpecialCharacter: SpecialCharacterMet(text),
	}
}
