package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	matcha "github.com/bonofiglio/matcha"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens FILE",
	Short: "Scan a source file and print its token sequence",
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
		for _, t := range toks {
			if t.Literal != nil {
				fmt.Printf("%3d:%-3d %-11s %q (%v)\n", t.Line, t.Col, t.Type, t.Lexeme, t.Literal)
				continue
			}
			fmt.Printf("%3d:%-3d %-11s %q\n", t.Line, t.Col, t.Type, t.Lexeme)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
