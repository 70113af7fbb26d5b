package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "paydate",
	Short:        "Resolve loan repayment due dates",
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(dueDateCmd)
	rootCmd.AddCommand(versionCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
