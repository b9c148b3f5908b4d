package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"edbridge/internal/adapters/tui"
	"edbridge/internal/config"
)

func main() {
	// Pick up EDITOR from a project .env if one exists.
	_ = godotenv.Load()

	editorFlag := flag.String("editor", config.Editor(), "editor command to invoke")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: edbridge-tui [--editor <cmd>] <file>")
		os.Exit(1)
	}

	app := tui.NewApp(*editorFlag, flag.Arg(0))

	if _, err := tea.NewProgram(app).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
