package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	matcha "github.com/bonofiglio/matcha"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the interpreter version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(matcha.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
