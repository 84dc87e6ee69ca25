//go:build property

// Copyright (c) 2025 ToeiRei
// Passgate - password strength validation toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package validation

import (
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestCriteriaProperties validates the evaluator predicates against their
// definitions for arbitrary strings.
func TestCriteriaProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1357)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("length predicate matches its definition", prop.ForAll(
		func(s string) bool {
			n := utf8.RuneCountInString(s)
			hasSpace := false
			for _, r := range s {
				if unicode.IsSpace(r) {
					hasSpace = true
					break
				}
			}
			want := n >= MinLength && n <= MaxLength && !hasSpace
			return LengthAndNoSpaceMet(s) == want
		},
		gen.AnyString(),
	))

	properties.Property("predicates are pure", prop.ForAll(
		func(s string) bool {
			return evaluate(s) == evaluate(s)
		},
		gen.AnyString(),
	))

	properties.Property("appending an uppercase rune satisfies the uppercase rule", prop.ForAll(
		func(s string) bool {
			return UppercaseMet(s + "X")
		},
		gen.AnyString(),
	))

	properties.Property("empty-class strings fail the class predicates", prop.ForAll(
		func(s string) bool {
			stripped := ""
			for _, r := range s {
				if r >= '0' && r <= '9' {
					continue
				}
				stripped += string(r)
			}
			return !DigitMet(stripped)
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

// TestSessionProperties validates the state machine invariants for
// arbitrary inputs and event orders.
func TestSessionProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(2468)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("live mode never shows unmet on text change", prop.ForAll(
		func(s string) bool {
			sess := NewSession()
			sess.OnTextChanged(s)
			for _, c := range Criteria {
				if sess.Status(c) == StatusUnmet {
					return false
				}
			}
			return true
		},
		gen.AnyString(),
	))

	properties.Property("strict mode leaves no unset status on text change", prop.ForAll(
		func(s string) bool {
			sess := NewSession()
			sess.FocusLost()
			sess.OnTextChanged(s)
			for _, c := range Criteria {
				if sess.Status(c) == StatusUnset {
					return false
				}
			}
			return true
		},
		gen.AnyString(),
	))

	properties.Property("live flag is monotonic across arbitrary event sequences", prop.ForAll(
		func(s string, events []int) bool {
			sess := NewSession()
			wasStrict := false
			for _, e := range events {
				switch e % 4 {
				case 0:
					sess.OnTextChanged(s)
				case 1:
					sess.Validate()
				case 2:
					sess.FocusLost()
				case 3:
					sess.Reset()
				}
				if wasStrict && sess.Live() {
					return false
				}
				wasStrict = wasStrict || !sess.Live()
			}
			return true
		},
		gen.AnyString(),
		gen.SliceOf(gen.IntRange(0, 3)),
	))

	properties.Property("validate agrees with the aggregate rule", prop.ForAll(
		func(s string) bool {
			sess := NewSession()
			sess.OnTextChanged(s)
			want := LengthAndNoSpaceMet(s) && sess.MetCount() >= RequiredClassCount
			return sess.Validate() == want
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
