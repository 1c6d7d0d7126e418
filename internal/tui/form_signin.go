package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type signInModel struct {
	authForm
}

func newSignInModel() signInModel {
	return signInModel{authForm: authForm{
		inputs: []textinput.Model{
			newTextInput("email", false),
			newTextInput("password", true),
		},
	}}
}

func (m signInModel) email() string    { return m.value(0) }
func (m signInModel) password() string { return m.inputs[1].Value() }

// update processes one message. It reports whether the form was submitted
// with valid local input; the caller dispatches the async command.
func (m signInModel) update(msg tea.Msg) (signInModel, tea.Cmd, bool) {
	cmd, submitted := m.handleKeys(msg)
	if !submitted {
		return m, cmd, false
	}

	if m.email() == "" || m.password() == "" {
		m.errMsg = "Email and password are required"
		return m, nil, false
	}

	m.errMsg = ""
	m.submitting = true
	return m, nil, true
}

func (m signInModel) View() string {
	var b strings.Builder
	b.WriteString("Email    [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Signing in...]\n")
	} else {
		b.WriteString("\n[Sign in]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("SIGN IN", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}
