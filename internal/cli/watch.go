package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/growwithdv/Modern-Calculator/internal/config"
	"github.com/growwithdv/Modern-Calculator/internal/ui"
)

// startConfigWatcher watches the config file and pushes reloaded
// configurations into the running UI through send. The returned stop
// function ends the watch.
func startConfigWatcher(path string, send func(tea.Msg)) (func(), error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("cannot watch config: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(path); err != nil {
		cleanupWatcher(watcher)
		return nil, fmt.Errorf("failed to watch config: %w", err)
	}

	done := make(chan struct{})
	go runConfigWatchLoop(watcher, path, send, done)

	stop := func() {
		close(done)
		cleanupWatcher(watcher)
	}
	return stop, nil
}

// runConfigWatchLoop runs the watch loop until done closes
func runConfigWatchLoop(watcher *fsnotify.Watcher, path string, send func(tea.Msg), done <-chan struct{}) {
	for {
		select {
		case <-done:
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if cfg := handleConfigEvent(event, path); cfg != nil {
				send(ui.ConfigReloadedMsg{Config: cfg})
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			if isVerbose() {
				fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
			}
		}
	}
}

// handleConfigEvent reloads the config on write events. Editors that save
// by replacing the file show up as create or rename, so those count too.
func handleConfigEvent(event fsnotify.Event, path string) *config.Config {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return nil
	}

	loader := config.NewLoader()
	cfg, err := loader.LoadConfig(path)
	if err != nil {
		if isVerbose() {
			fmt.Fprintf(os.Stderr, "Warning: config reload failed: %v\n", err)
		}
		return nil
	}
	return cfg
}

// cleanupWatcher safely closes watcher with error logging
func cleanupWatcher(watcher *fsnotify.Watcher) {
	if err := watcher.Close(); err != nil && isVerbose() {
		fmt.Fprintf(os.Stderr, "Warning: failed to close watcher: %v\n", err)
	}
}
