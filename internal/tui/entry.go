// Copyright (c) 2025 ToeiRei
// Passgate - password strength validation toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/toeirei/passgate/internal/db"
	"github.com/toeirei/passgate/internal/i18n"
	"github.com/toeirei/passgate/internal/logging"
	"github.com/toeirei/passgate/internal/model"
	"github.com/toeirei/passgate/internal/validation"
	"github.com/toeirei/passgate/util/slicest"
)

// attemptRecordedMsg signals that a validation attempt was written to the
// audit store.
type attemptRecordedMsg struct {
	err error
}

// entryModel is the password entry screen: one password input, a submit
// button and the live criteria checklist.
type entryModel struct {
	input      textinput.Model
	session    *validation.Session
	focusIndex int // 0: password input, 1: submit button
	verdict    *bool
}

func newEntryModel() entryModel {
	t := textinput.New()
	t.Prompt = i18n.T("tui.prompt") + " "
	t.EchoMode = textinput.EchoPassword
	t.EchoCharacter = '•'
	t.CharLimit = 64
	t.Width = 40
	t.Cursor.Style = focusedStyle
	t.TextStyle = focusedStyle
	t.Focus()

	return entryModel{
		input:   t,
		session: validation.NewSession(),
	}
}

func (m entryModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m entryModel) Update(msg tea.Msg) (entryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case attemptRecordedMsg:
		if msg.err != nil {
			logging.Errorf("could not record attempt: %v", msg.err)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+r":
			// External clear of the field: statuses go neutral, the
			// strictness of the session is preserved.
			m.input.SetValue("")
			m.session.Reset()
			m.verdict = nil
			return m, nil

		case "tab", "shift+tab", "up", "down", "enter":
			if msg.String() == "enter" && m.focusIndex == 1 {
				return m.runValidate()
			}

			// Moving between the input and the button. Leaving the input
			// counts as losing focus and ends the lenient typing phase.
			if m.focusIndex == 0 {
				m.input.Blur()
				m.input.TextStyle = lipgloss.NewStyle()
				m.session.FocusLost()
				m.session.OnTextChanged(m.input.Value())
				m.focusIndex = 1
			} else {
				m.focusIndex = 0
				m.input.TextStyle = focusedStyle
				return m, m.input.Focus()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.session.OnTextChanged(m.input.Value())
		m.verdict = nil
	}
	return m, cmd
}

// runValidate applies the aggregate rule and records the attempt.
func (m entryModel) runValidate() (entryModel, tea.Cmd) {
	ok := m.session.Validate()
	m.verdict = &ok

	attempt := model.Attempt{
		Source:   model.SourceTUI,
		Passed:   ok,
		MetCount: m.session.MetCount(),
		Unmet:    unmetNames(m.session),
	}
	return m, logAttemptCmd(attempt)
}

// logAttemptCmd writes the attempt to the audit store, if one is wired up.
func logAttemptCmd(attempt model.Attempt) tea.Cmd {
	if !db.IsInitialized() {
		return nil
	}
	return func() tea.Msg {
		_, err := db.LogAttempt(attempt)
		return attemptRecordedMsg{err: err}
	}
}

func unmetNames(s *validation.Session) string {
	var names []string
	for _, c := range s.UnmetCriteria() {
		names = append(names, c.String())
	}
	return strings.Join(names, ",")
}

// statusMarker renders the tri-state checklist marker for one criterion.
func statusMarker(status validation.Status, label string) string {
	switch status {
	case validation.StatusMet:
		return successStyle.Render("✓ " + label)
	case validation.StatusUnmet:
		return errorStyle.Render("✗ " + label)
	default:
		return neutralStyle.Render("• " + label)
	}
}

func (m entryModel) View() string {
	var viewItems []string

	viewItems = append(viewItems, titleStyle.Render(i18n.T("tui.title")), "")
	viewItems = append(viewItems, m.input.View(), "")

	viewItems = append(viewItems, slicest.Map(validation.Criteria[:], func(c validation.Criterion) string {
		return statusMarker(m.session.Status(c), i18n.T("criteria."+c.String()))
	})...)
	viewItems = append(viewItems, "", helpStyle.Render(i18n.T("tui.rule_hint")))

	button := formItemStyle.Render(i18n.T("tui.submit"))
	if m.focusIndex == 1 {
		button = formSelectedItemStyle.Render(i18n.T("tui.submit"))
	}
	viewItems = append(viewItems, "", button)

	if m.verdict != nil {
		if *m.verdict {
			viewItems = append(viewItems, "", successStyle.Render(i18n.T("tui.verdict_pass")))
		} else {
			viewItems = append(viewItems, "", errorStyle.Render(i18n.T("tui.verdict_fail")))
		}
	}

	viewItems = append(viewItems, "", helpStyle.Render(i18n.T("tui.help_entry")))

	return lipgloss.JoinVertical(lipgloss.Left, viewItems...)
}
