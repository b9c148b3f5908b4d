package config

import "os"

const DefaultEditor = "vi"

// Editor returns the editor command from the EDITOR env var,
// falling back to DefaultEditor.
func Editor() string {
	if env := os.Getenv("EDITOR"); env != "" {
		return env
	}
	return DefaultEditor
}
