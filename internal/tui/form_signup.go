package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type signUpModel struct {
	authForm
}

func newSignUpModel() signUpModel {
	return signUpModel{authForm: authForm{
		inputs: []textinput.Model{
			newTextInput("name", false),
			newTextInput("email", false),
			newTextInput("password", true),
		},
	}}
}

func (m signUpModel) name() string     { return m.value(0) }
func (m signUpModel) email() string    { return m.value(1) }
func (m signUpModel) password() string { return m.inputs[2].Value() }

func (m signUpModel) update(msg tea.Msg) (signUpModel, tea.Cmd, bool) {
	cmd, submitted := m.handleKeys(msg)
	if !submitted {
		return m, cmd, false
	}

	switch {
	case m.name() == "" || m.email() == "" || m.password() == "":
		m.errMsg = "All fields are required"
		return m, nil, false
	case len(m.password()) < 8:
		m.errMsg = "Password must be at least 8 characters long"
		return m, nil, false
	}

	m.errMsg = ""
	m.submitting = true
	return m, nil, true
}

func (m signUpModel) View() string {
	var b strings.Builder
	b.WriteString("Name     [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Email    [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")
	b.WriteString("Password [")
	b.WriteString(m.inputs[2].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Signing up...]\n")
	} else {
		b.WriteString("\n[Sign up]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("SIGN UP", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}
