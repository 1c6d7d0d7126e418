package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// authForm holds the state shared by the sign-in and sign-up forms: a set of
// text inputs, the focus index, and submission state.
type authForm struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	cancelled  bool
	errMsg     string
}

func newTextInput(placeholder string, masked bool) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 256
	in.Width = 40
	if masked {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
	}
	return in
}

// Focus gives focus to the first input and starts the cursor blink.
func (f *authForm) Focus() tea.Cmd {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	f.focus = 0
	f.inputs[0].Focus()
	return textinput.Blink
}

func (f *authForm) focusNext() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *authForm) focusPrev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *authForm) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

// handleKeys processes navigation keys common to both forms. It reports
// whether the form was submitted; cancellation is recorded on the form
// itself.
func (f *authForm) handleKeys(msg tea.Msg) (cmd tea.Cmd, submitted bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			f.submitting = false
			f.errMsg = ""
			f.cancelled = true
			return nil, false
		case "tab", "down":
			f.focusNext()
			return nil, false
		case "shift+tab", "up":
			f.focusPrev()
			return nil, false
		case "enter":
			if f.submitting {
				return nil, false
			}
			return nil, true
		}
	}

	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd, false
}
