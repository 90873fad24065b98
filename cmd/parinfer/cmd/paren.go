package cmd

import (
	"github.com/spf13/cobra"

	"github.com/parinfer-go/parinfer/parinfer"
)

var parenCmd = &cobra.Command{
	Use:   "paren",
	Short: "Adjust indentation to match parenthesization, reading source from stdin",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMode(parinfer.ModeParen)
	},
}

func init() {
	addCursorFlags(parenCmd)
	rootCmd.AddCommand(parenCmd)
}
