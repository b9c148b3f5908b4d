package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Resolved lazily in the subcommands so a .env loaded by main can still
// supply EDITOR.
var editorFlag string

var rootCmd = &cobra.Command{
	Use:   "edbridge-cli",
	Short: "CLI for opening files in a terminal editor",
	Long: `edbridge-cli is the command-line surface of the edbridge helper.

It opens a file in an interactive terminal editor bound to the current
terminal and blocks until the editor exits. The editor command comes from
--editor, then the EDITOR environment variable, then falls back to vi.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&editorFlag, "editor", "e", "", "editor command to invoke (default: $EDITOR, then vi)")
}
