// Copyright (c) 2025 ToeiRei
// Passgate - password strength validation toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package i18n

import (
	"strings"
	"testing"
)

func TestEnglishDefault(t *testing.T) {
	Init("en")
	if got := T("criteria.uppercase"); !strings.Contains(got, "uppercase") {
		t.Fatalf("criteria.uppercase = %q", got)
	}
}

func TestGermanTranslation(t *testing.T) {
	SetLang("de")
	t.Cleanup(func() { SetLang("en") })

	if got := T("criteria.digit"); !strings.Contains(got, "Ziffer") {
		t.Fatalf("criteria.digit = %q", got)
	}
}

func TestUnknownIDFallsBackToID(t *testing.T) {
	Init("en")
	if got := T("does.not.exist"); got != "does.not.exist" {
		t.Fatalf("T returned %q for an unknown id", got)
	}
}

func TestFormattingArgs(t *testing.T) {
	Init("en")
	got := T("audit.summary", 5, 3)
	if !strings.Contains(got, "5") || !strings.Contains(got, "3") {
		t.Fatalf("audit.summary = %q", got)
	}
}

func TestUnknownLanguageFallsBackToEnglish(t *testing.T) {
	SetLang("fr")
	t.Cleanup(func() { SetLang("en") })

	if got := T("criteria.lowercase"); !strings.Contains(got, "lowercase") {
		t.Fatalf("criteria.lowercase = %q", got)
	}
}

func TestAllCriteriaKeysPresentInBothLanguages(t *testing.T) {
	keys := []string{
		"criteria.min_length_no_space",
		"criteria.uppercase",
		"criteria.lowercase",
		"criteria.digit",
		"criteria.special_character",
	}
	for _, lang := range []string{"en", "de"} {
		Init(lang)
		for _, k := range keys {
			if got := T(k); got == k {
				t.Fatalf("missing %s translation for %s", lang, k)
			}
		}
	}
	Init("en")
}
