// Copyright (c) 2025 ToeiRei
// Passgate - password strength validation toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/toeirei/passgate/internal/db"
	"github.com/toeirei/passgate/internal/i18n"
	"github.com/toeirei/passgate/internal/model"
)

// auditLogLimit caps how many attempts the TUI view loads.
const auditLogLimit = 20

// attemptsLoadedMsg carries the attempt rows for the audit log view.
type attemptsLoadedMsg struct {
	attempts []model.Attempt
	err      error
}

// auditLogModel shows the most recent validation attempts.
type auditLogModel struct {
	attempts []model.Attempt
	loaded   bool
	err      error
}

func newAuditLogModel() auditLogModel {
	return auditLogModel{}
}

func (m auditLogModel) Init() tea.Cmd {
	return loadAttemptsCmd
}

func loadAttemptsCmd() tea.Msg {
	if !db.IsInitialized() {
		return attemptsLoadedMsg{}
	}
	attempts, err := db.GetRecentAttempts(auditLogLimit)
	return attemptsLoadedMsg{attempts: attempts, err: err}
}

func (m auditLogModel) Update(msg tea.Msg) (auditLogModel, tea.Cmd) {
	if msg, ok := msg.(attemptsLoadedMsg); ok {
		m.attempts = msg.attempts
		m.err = msg.err
		m.loaded = true
	}
	return m, nil
}

func (m auditLogModel) View() string {
	var viewItems []string

	viewItems = append(viewItems, titleStyle.Render(i18n.T("tui.audit_title")), "")

	switch {
	case m.err != nil:
		viewItems = append(viewItems, errorStyle.Render(i18n.T("tui.audit_error", m.err)))
	case m.loaded && len(m.attempts) == 0:
		viewItems = append(viewItems, helpStyle.Render(i18n.T("tui.audit_empty")))
	default:
		for _, a := range m.attempts {
			verdict := errorStyle.Render(i18n.T("tui.audit_failed"))
			if a.Passed {
				verdict = successStyle.Render(i18n.T("tui.audit_passed"))
			}
			line := fmt.Sprintf("%s  %-4s %s  %d/4", a.Timestamp.Local().Format("2006-01-02 15:04:05"), a.Source, verdict, a.MetCount)
			if a.Unmet != "" {
				line += "  " + helpStyle.Render(a.Unmet)
			}
			viewItems = append(viewItems, line)
		}
	}

	viewItems = append(viewItems, "", helpStyle.Render(i18n.T("tui.help_audit")))

	return lipgloss.JoinVertical(lipgloss.Left, viewItems...)
}
