// Copyright (c) 2025 ToeiRei
// Passgate - password strength validation toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/toeirei/passgate/internal/i18n"
	"github.com/toeirei/passgate/internal/validation"
)

func typeText(m entryModel, text string) entryModel {
	for _, r := range text {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestEntryTypingDrivesSession(t *testing.T) {
	i18n.Init("en")

	m := newEntryModel()
	m = typeText(m, "Ab1!")

	if got := m.session.Status(validation.MinLengthNoSpace); got != validation.StatusUnset {
		t.Fatalf("length status = %s, want unset while typing", got)
	}
	if got := m.session.Status(validation.Uppercase); got != validation.StatusMet {
		t.Fatalf("uppercase status = %s, want met", got)
	}
}

func TestEntryTabBlursAndGoesStrict(t *testing.T) {
	i18n.Init("en")

	m := newEntryModel()
	m = typeText(m, "short")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})

	if m.focusIndex != 1 {
		t.Fatalf("focusIndex = %d, want 1 after tab", m.focusIndex)
	}
	if m.session.Live() {
		t.Fatal("blurring the input should end live mode")
	}
	if got := m.session.Status(validation.MinLengthNoSpace); got != validation.StatusUnmet {
		t.Fatalf("length status = %s, want unmet once strict", got)
	}
}

func TestEntryValidateOnButton(t *testing.T) {
	i18n.Init("en")

	m := newEntryModel()
	m = typeText(m, "Abcdefg1!")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if m.verdict == nil || !*m.verdict {
		t.Fatalf("verdict = %v, want pass", m.verdict)
	}
	if !strings.Contains(m.View(), i18n.T("tui.verdict_pass")) {
		t.Fatal("view should show the pass verdict")
	}
}

func TestEntryFailedValidateFlagsCriteria(t *testing.T) {
	i18n.Init("en")

	m := newEntryModel()
	m = typeText(m, "alllowercase")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if m.verdict == nil || *m.verdict {
		t.Fatalf("verdict = %v, want fail", m.verdict)
	}
	for _, c := range []validation.Criterion{validation.Uppercase, validation.Digit, validation.SpecialCharacter} {
		if got := m.session.Status(c); got != validation.StatusUnmet {
			t.Fatalf("criterion %s = %s, want unmet", c, got)
		}
	}
}

func TestEntryClearResetsChecklist(t *testing.T) {
	i18n.Init("en")

	m := newEntryModel()
	m = typeText(m, "Abcdefg1!")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})

	if m.input.Value() != "" {
		t.Fatalf("input = %q, want cleared", m.input.Value())
	}
	for _, c := range validation.Criteria {
		if got := m.session.Status(c); got != validation.StatusUnset {
			t.Fatalf("criterion %s = %s, want unset after clear", c, got)
		}
	}
}

func TestEntryViewShowsMarkers(t *testing.T) {
	i18n.Init("en")

	m := newEntryModel()
	view := m.View()
	if !strings.Contains(view, "•") {
		t.Fatal("fresh entry view should render neutral markers")
	}

	m = typeText(m, "Abcdefg1!")
	if !strings.Contains(m.View(), "✓") {
		t.Fatal("met criteria should render check markers")
	}
}
