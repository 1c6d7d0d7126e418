package tui

type welcomeModel struct {
	items []string
	idx   int
}

func newWelcomeModel() welcomeModel {
	return welcomeModel{items: []string{"Sign in", "Sign up"}}
}

func (m *welcomeModel) moveUp() {
	if m.idx > 0 {
		m.idx--
	}
}

func (m *welcomeModel) moveDown() {
	if m.idx < len(m.items)-1 {
		m.idx++
	}
}

func (m welcomeModel) View() string {
	out := titleStyle.Render("go-user-gate") + "\n\nChoose an action:\n\n"
	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		out += cursor + item + "\n"
	}
	out += "\n" + helpStyle.Render("enter: select │ q: quit")
	return out
}
