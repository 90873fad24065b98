package cmd

import (
	"github.com/spf13/cobra"

	"github.com/parinfer-go/parinfer/parinfer"
)

var smartCmd = &cobra.Command{
	Use:   "smart",
	Short: "Reconcile indentation and parenthesization, favoring the cursor's implied structural intent",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMode(parinfer.ModeSmart)
	},
}

func init() {
	addCursorFlags(smartCmd)
	rootCmd.AddCommand(smartCmd)
}
