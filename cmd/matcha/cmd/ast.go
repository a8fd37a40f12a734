package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	matcha "github.com/bonofiglio/matcha"
)

var astCmd = &cobra.Command{
	Use:   "ast FILE",
	Short: "Parse a source file and print its statement trees",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		toks, err := matcha.Scan(string(src))
		if err != nil {
			return matcha.WrapErrorWithSource(err, string(src))
		}
		stmts, perrs := matcha.Parse(toks)
		if perrs != nil {
			return matcha.WrapErrorWithSource(matcha.ParseErrorList(perrs), string(src))
		}
		fmt.Println(matcha.FormatProgram(stmts))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(astCmd)
}
