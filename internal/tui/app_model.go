package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avoronin/go-user-gate/internal/adapter"
	"github.com/avoronin/go-user-gate/models"
)

type screen int

const (
	screenWelcome screen = iota
	screenSignIn
	screenSignUp
	screenProfile
)

// appModel is the single root model; screens are plain value types it
// switches between.
type appModel struct {
	ctx    context.Context
	server adapter.ServerAdapter

	currentScreen screen

	welcome welcomeModel
	signIn  signInModel
	signUp  signUpModel
	profile profileModel
}

func newAppModel(ctx context.Context, server adapter.ServerAdapter) appModel {
	return appModel{
		ctx:           ctx,
		server:        server,
		currentScreen: screenWelcome,
		welcome:       newWelcomeModel(),
		signIn:        newSignInModel(),
		signUp:        newSignUpModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case authDoneMsg:
		m.signIn.submitting = false
		m.signUp.submitting = false
		if msg.err != nil {
			errText := humanizeError(msg.err)
			switch m.currentScreen {
			case screenSignIn:
				m.signIn.errMsg = errText
			case screenSignUp:
				m.signUp.errMsg = errText
			}
			return m, nil
		}
		m.signIn = newSignInModel()
		m.signUp = newSignUpModel()
		m.profile = newProfileModel(msg.view)
		m.currentScreen = screenProfile
		return m, nil

	case signOutDoneMsg:
		// the session cookie is gone either way, return to the menu
		m.profile = profileModel{}
		m.currentScreen = screenWelcome
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.profile.status = "Copy failed: clipboard unavailable"
		} else {
			m.profile.status = "Copied!"
		}
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.profile.status = ""
		return m, nil

	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenSignIn:
		return m.updateSignIn(msg)
	case screenSignUp:
		return m.updateSignUp(msg)
	case screenProfile:
		return m.updateProfile(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var page string
	switch m.currentScreen {
	case screenWelcome:
		page = m.welcome.View()
	case screenSignIn:
		page = m.signIn.View()
	case screenSignUp:
		page = m.signUp.View()
	case screenProfile:
		page = m.profile.View()
	}
	return appStyle.Render(page)
}

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		m.welcome.moveUp()
	case key.Matches(keyMsg, keys.down):
		m.welcome.moveDown()
	case key.Matches(keyMsg, keys.enter):
		if m.welcome.idx == 0 {
			m.currentScreen = screenSignIn
			return m, m.signIn.Focus()
		}
		m.currentScreen = screenSignUp
		return m, m.signUp.Focus()
	}

	return m, nil
}

func (m appModel) updateSignIn(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd, submitted := m.signIn.update(msg)
	m.signIn = updated

	if updated.cancelled {
		m.signIn = newSignInModel()
		m.currentScreen = screenWelcome
		return m, nil
	}
	if submitted {
		return m, m.cmdSignIn(updated.email(), updated.password())
	}
	return m, cmd
}

func (m appModel) updateSignUp(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd, submitted := m.signUp.update(msg)
	m.signUp = updated

	if updated.cancelled {
		m.signUp = newSignUpModel()
		m.currentScreen = screenWelcome
		return m, nil
	}
	if submitted {
		return m, m.cmdSignUp(updated.name(), updated.email(), updated.password())
	}
	return m, cmd
}

func (m appModel) updateProfile(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.copyID):
		return m, cmdCopyToClipboard(m.profile.view.UserID)
	case key.Matches(keyMsg, keys.signOut):
		return m, m.cmdSignOut()
	}

	return m, nil
}

// ── async commands ───────────────────────────────────────────────────────────

func (m appModel) cmdSignIn(email, password string) tea.Cmd {
	ctx, server := m.ctx, m.server
	return func() tea.Msg {
		view, err := server.SignIn(ctx, models.SignInRequest{Email: email, Password: password})
		return authDoneMsg{view: view, err: err}
	}
}

func (m appModel) cmdSignUp(name, email, password string) tea.Cmd {
	ctx, server := m.ctx, m.server
	return func() tea.Msg {
		view, err := server.SignUp(ctx, models.SignUpRequest{Name: name, Email: email, Password: password})
		return authDoneMsg{view: view, err: err}
	}
}

func (m appModel) cmdSignOut() tea.Cmd {
	ctx, server := m.ctx, m.server
	return func() tea.Msg {
		return signOutDoneMsg{err: server.SignOut(ctx)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
