package cmd

import (
	"github.com/spf13/cobra"

	"edbridge/internal/adapters/editor"
	"edbridge/internal/application"
	"edbridge/internal/config"
)

var editCmd = &cobra.Command{
	Use:   "edit <file>",
	Short: "Open a file in the terminal editor and wait for it to exit",
	Long: `Open a file in the configured terminal editor and block until the
editor exits. The filename is handed to the editor verbatim as its only
argument; the editor's own exit status is not inspected.

Examples:
  edbridge-cli edit notes.md
  edbridge-cli --editor nano edit "notes with spaces.md"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		editorCmd := editorFlag
		if editorCmd == "" {
			editorCmd = config.Editor()
		}

		launcher := application.NewLauncher(editor.NewSpawner(), editorCmd)
		if err := launcher.OpenFile(args[0]); err != nil {
			application.Fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}
