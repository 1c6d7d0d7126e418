package tui

import (
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avoronin/go-user-gate/models"
)

type profileModel struct {
	view   models.UserView
	status string
}

func newProfileModel(view models.UserView) profileModel {
	return profileModel{view: view}
}

func (m profileModel) View() string {
	var b strings.Builder
	b.WriteString("Name  │ ")
	b.WriteString(m.view.Name)
	b.WriteString("\nEmail │ ")
	b.WriteString(m.view.Email)
	b.WriteString("\nID    │ ")
	b.WriteString(m.view.UserID)
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	return renderPage("PROFILE", strings.TrimRight(b.String(), "\n"), "c: copy id │ s: sign out │ q: quit")
}

// cmdCopyToClipboard places the user id on the system clipboard.
func cmdCopyToClipboard(userID string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(userID)}
	}
}
