package application

import (
	"edbridge/internal/ports"
)

// EditSession describes one editor invocation. It lives from entry to
// OpenFile until the child process has been reaped and is never shared
// across invocations.
type EditSession struct {
	Filename string
	Editor   string
}

// Launcher opens files in an external terminal editor through a Spawner.
type Launcher struct {
	spawner ports.Spawner
	editor  string
}

// NewLauncher creates a Launcher that invokes editor via spawner.
func NewLauncher(spawner ports.Spawner, editor string) *Launcher {
	return &Launcher{
		spawner: spawner,
		editor:  editor,
	}
}

// OpenFile spawns the editor on path and blocks until the editor exits.
//
// The filename is handed to the child verbatim as its only argument; it is
// not validated, canonicalized, or quoted. The editor's own exit status is
// not inspected: success means the editor was spawned and reaped, not that
// it succeeded. A failure to spawn returns a *LaunchError, which callers
// treat as fatal.
func (l *Launcher) OpenFile(path string) error {
	session := EditSession{
		Filename: path,
		Editor:   l.editor,
	}

	proc, err := l.spawner.Spawn(session.Editor, session.Filename)
	if err != nil {
		return &LaunchError{
			Editor:   session.Editor,
			Filename: session.Filename,
			Err:      err,
		}
	}

	// The editor owns the terminal until it exits. Reap exactly once and
	// discard its status; editor-visible errors are the editor's problem.
	_ = proc.Wait()

	return nil
}
