package cmd

import (
	"github.com/spf13/cobra"

	"github.com/parinfer-go/parinfer/parinfer"
)

var indentCmd = &cobra.Command{
	Use:   "indent",
	Short: "Adjust parenthesization to match indentation, reading source from stdin",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMode(parinfer.ModeIndent)
	},
}

func init() {
	addCursorFlags(indentCmd)
	rootCmd.AddCommand(indentCmd)
}
