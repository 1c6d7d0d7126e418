package tui

import (
	"github.com/avoronin/go-user-gate/models"
)

// authDoneMsg is emitted when an async sign-up or sign-in command finishes.
type authDoneMsg struct {
	view models.UserView
	err  error
}

// signOutDoneMsg is emitted when the async sign-out command finishes.
type signOutDoneMsg struct {
	err error
}

// copiedMsg is emitted after the user id has been placed on the clipboard.
type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
