// Copyright (c) 2025 ToeiRei
// Passgate - password strength validation toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package generate

import (
	"testing"
	"unicode/utf8"

	"github.com/toeirei/passgate/internal/validation"
)

func TestPasswordSatisfiesPolicy(t *testing.T) {
	for i := 0; i < 50; i++ {
		p, err := Password(DefaultLength)
		if err != nil {
			t.Fatalf("Password: %v", err)
		}
		if utf8.RuneCountInString(p) != DefaultLength {
			t.Fatalf("length = %d, want %d (%q)", utf8.RuneCountInString(p), DefaultLength, p)
		}

		s := validation.NewSession()
		s.OnTextChanged(p)
		if !s.Validate() {
			t.Fatalf("generated password failed validation: %q", p)
		}
		// Stronger than the 3-of-4 gate: every class must be present.
		for _, c := range validation.Criteria {
			if s.Status(c) != validation.StatusMet {
				t.Fatalf("criterion %s not met for %q", c, p)
			}
		}
	}
}

func TestPasswordBounds(t *testing.T) {
	for _, length := range []int{validation.MinLength, validation.MaxLength} {
		if _, err := Password(length); err != nil {
			t.Fatalf("Password(%d): %v", length, err)
		}
	}
	for _, length := range []int{0, validation.MinLength - 1, validation.MaxLength + 1} {
		if _, err := Password(length); err == nil {
			t.Fatalf("Password(%d) should fail", length)
		}
	}
}

func TestPasswordsDiffer(t *testing.T) {
	a, err := Password(DefaultLength)
	if err != nil {
		t.Fatalf("Password: %v", err)
	}
	b, err := Password(DefaultLength)
	if err != nil {
		t.Fatalf("Password: %v", err)
	}
	if a == b {
		t.Fatalf("two generated passwords are identical: %q", a)
	}
}
