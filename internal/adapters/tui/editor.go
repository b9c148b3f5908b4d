// Package tui binds the editor launcher to bubbletea hosts, which own the
// terminal and must suspend rendering while the editor runs.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"edbridge/internal/adapters/editor"
)

// EditorFinishedMsg reports that the editor process has exited and the host
// program may resume. Err carries whatever the process run returned; hosts
// following the launcher contract are free to ignore it.
type EditorFinishedMsg struct {
	Err error
}

// OpenEditor returns a command that releases the terminal, runs editorCmd
// on path, and resumes the program with an EditorFinishedMsg.
func OpenEditor(editorCmd, path string) tea.Cmd {
	cmd := editor.Command(editorCmd, path)
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return EditorFinishedMsg{Err: err}
	})
}
