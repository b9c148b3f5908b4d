package ports

// Process is a spawned editor process that has not been collected yet.
type Process interface {
	// Wait blocks until the process terminates and releases its
	// kernel bookkeeping. It must be called exactly once.
	Wait() error
}

// Spawner defines the interface for creating editor processes.
// Implementations bind the child to the caller's terminal; the argument
// vector is passed to the child verbatim, with no shell in between.
type Spawner interface {
	Spawn(name string, args ...string) (Process, error)
}

// EditorLauncher defines the interface host bridges use to open a file
// in an external editor and block until the editor exits.
type EditorLauncher interface {
	OpenFile(path string) error
}
