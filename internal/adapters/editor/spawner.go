package editor

import (
	"os"
	"os/exec"

	"edbridge/internal/ports"
)

// Spawner implements ports.Spawner via os/exec.
type Spawner struct{}

// NewSpawner creates a new editor process spawner.
func NewSpawner() *Spawner {
	return &Spawner{}
}

// Spawn starts name with args bound to the caller's terminal. Start covers
// both process creation and exec-image failures, so a non-nil error means
// no child exists to reap.
func (s *Spawner) Spawn(name string, args ...string) (ports.Process, error) {
	cmd := Command(name, args...)
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return cmd, nil
}

// Command returns an exec.Cmd that runs name with args on the caller's
// terminal. The standard streams are inherited, not redirected, so a
// full-screen editor can draw. Useful for hosts that drive the process
// lifecycle themselves, e.g. bubbletea's ExecProcess.
func Command(name string, args ...string) *exec.Cmd {
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd
}
