package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// App is a minimal bubbletea host: it owns the terminal, hands it to the
// editor for one file, and exits when the editor does.
type App struct {
	editor string
	path   string

	err  error
	done bool
}

// NewApp creates a host program that edits path with editor.
func NewApp(editor, path string) *App {
	return &App{
		editor: editor,
		path:   path,
	}
}

// Init starts the editor immediately.
func (a *App) Init() tea.Cmd {
	return OpenEditor(a.editor, a.path)
}

// Update handles messages for the host program.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EditorFinishedMsg:
		a.err = msg.Err
		a.done = true
		return a, tea.Quit

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
	}

	return a, nil
}

// View renders the placeholder shown while the editor owns the terminal.
func (a *App) View() string {
	if a.done {
		return ""
	}
	return fmt.Sprintf("Editing %s...\n", a.path)
}

// Err reports the error the editor run resumed with, if any.
func (a *App) Err() error {
	return a.err
}
