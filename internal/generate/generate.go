// Copyright (c) 2025 ToeiRei
// Passgate - password strength validation toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// package generate produces random passwords that satisfy the validation
// policy.
package generate

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/toeirei/passgate/internal/validation"
)

const (
	upperRunes = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerRunes = "abcdefghijklmnopqrstuvwxyz"
	digitRunes = "0123456789"
)

// DefaultLength is used when the caller does not configure one.
const DefaultLength = 16

// Password returns a random password of the given length that meets every
// criterion: one guaranteed rune per character class, the rest drawn from
// the full alphabet, shuffled so the guaranteed runes do not cluster at
// the front.
func Password(length int) (string, error) {
	if length < validation.MinLength || length > validation.MaxLength {
		return "", fmt.Errorf("invalid password length %d: must be between %d and %d",
			length, validation.MinLength, validation.MaxLength)
	}

	alphabet := upperRunes + lowerRunes + digitRunes + validation.SpecialCharacters

	out := make([]byte, 0, length)
	for _, class := range []string{upperRunes, lowerRunes, digitRunes, validation.SpecialCharacters} {
		c, err := randByte(class)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}
	for len(out) < length {
		c, err := randByte(alphabet)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}

	// Fisher-Yates with crypto/rand indices.
	for i := len(out) - 1; i > 0; i-- {
		j, err := randInt(i + 1)
		if err != nil {
			return "", err
		}
		out[i], out[j] = out[j], out[i]
	}

	return string(out), nil
}

func randByte(set string) (byte, error) {
	i, err := randInt(len(set))
	if err != nil {
		return 0, err
	}
	return set[i], nil
}

func randInt(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("could not read random bytes: %w", err)
	}
	return int(v.Int64()), nil
}
