// Copyright (c) 2025 ToeiRei
// Passgate - password strength validation toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// package tui provides the terminal user interface for passgate.
// This file, tui.go, is the entry point for the TUI, containing the
// top-level model that routes between the password entry screen and the
// attempt audit log.
package tui

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/toeirei/passgate/internal/logging"
)

// viewState represents which part of the UI is currently active.
type viewState int

const (
	// entryView is the password entry screen.
	entryView viewState = iota
	auditLogView
)

// rootModel is the top-level TUI model acting as a router to the sub-views.
type rootModel struct {
	state viewState
	entry entryModel
	audit auditLogModel
}

func initialModel() rootModel {
	return rootModel{
		state: entryView,
		entry: newEntryModel(),
	}
}

func (m rootModel) Init() tea.Cmd {
	return m.entry.Init()
}

func (m rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+a":
			if m.state == entryView {
				m.state = auditLogView
				m.audit = newAuditLogModel()
				return m, m.audit.Init()
			}
		case "esc":
			if m.state == auditLogView {
				m.state = entryView
				return m, nil
			}
			// esc on the entry screen quits; the session dies with the form.
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case auditLogView:
		m.audit, cmd = m.audit.Update(msg)
	default:
		m.entry, cmd = m.entry.Update(msg)
	}
	return m, cmd
}

func (m rootModel) View() string {
	switch m.state {
	case auditLogView:
		return docStyle.Render(m.audit.View())
	default:
		return docStyle.Render(m.entry.View())
	}
}

// Run starts the interactive TUI. The database and i18n layers must be
// initialized by the caller first.
func Run() {
	if _, err := tea.NewProgram(initialModel()).Run(); err != nil {
		logging.Errorf("TUI run error: %v", err)
		os.Exit(1)
	}
}
