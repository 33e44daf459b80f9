package ui

import (
	"github.com/growwithdv/Modern-Calculator/internal/config"
)

// Common message types shared across UI models

// errorClearMsg fires when an error flash has been on screen long enough.
// Calculator keys are swallowed during the flash, so only one clear timer
// can ever be outstanding.
type errorClearMsg struct{}

// keyReleaseMsg unlights a keypad cell. seq identifies the press that
// scheduled it, so a newer press keeps its own highlight.
type keyReleaseMsg struct {
	seq int
}

// themeSavedMsg reports the outcome of persisting a theme change.
type themeSavedMsg struct {
	theme string
	err   error
}

// ConfigReloadedMsg is sent into the running program when the watched
// config file changes on disk.
type ConfigReloadedMsg struct {
	Config *config.Config
}
