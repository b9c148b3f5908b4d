package application

import (
	"fmt"
	"io"
	"os"
)

// FatalExitCode is the status the process terminates with when the editor
// cannot be launched. It is what exit(-1) encodes on POSIX systems.
const FatalExitCode = 255

// LaunchError represents a failure to start the editor process. It covers
// both process creation and exec-image failures; neither leaves a child
// behind to reap.
type LaunchError struct {
	Editor   string
	Filename string
	Err      error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("unable to invoke editor %q on %s: %v", e.Editor, e.Filename, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// Replaced in tests.
var (
	stderr io.Writer = os.Stderr
	exit             = os.Exit
)

// Fatal writes a single newline-terminated diagnostic to the standard error
// stream and terminates the process with FatalExitCode. It is the top-level
// handler for launch failures and never returns; host bridges call it
// instead of surfacing the error to the host.
func Fatal(err error) {
	fmt.Fprintln(stderr, err)
	exit(FatalExitCode)
}
