package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the enviromon version",
	Run: func(*cobra.Command, []string) {
		fmt.Println("enviromon", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
