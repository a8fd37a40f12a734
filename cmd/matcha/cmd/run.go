package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	matcha "github.com/bonofiglio/matcha"
)

// Exit codes follow the sysexits convention: malformed input data versus an
// internal (runtime) failure.
const (
	exitDataErr = 65
	exitRuntime = 70
)

var runCmd = &cobra.Command{
	Use:   "run FILE...",
	Short: "Run one or more matcha source files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		st := newStyles(cfg.Color)
		for _, path := range args {
			runFile(path, st)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// runFile executes a single file and exits the process on the first failing
// stage, mapping the stage to an exit code.
func runFile(path string, st styles) {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, st.err.Render(err.Error()))
		os.Exit(exitDataErr)
	}

	v, err := pipeline(string(src))
	if err != nil {
		fmt.Fprintln(os.Stderr, st.err.Render(matcha.WrapErrorWithSource(err, string(src)).Error()))
		if _, ok := err.(*matcha.RuntimeError); ok {
			os.Exit(exitRuntime)
		}
		os.Exit(exitDataErr)
	}
	fmt.Println(st.value.Render(v.String()))
}

// pipeline runs scan → parse → interpret over a fresh root environment.
func pipeline(src string) (matcha.Value, error) {
	toks, err := matcha.Scan(src)
	if err != nil {
		return matcha.Empty, err
	}
	stmts, perrs := matcha.Parse(toks)
	if perrs != nil {
		return matcha.Empty, matcha.ParseErrorList(perrs)
	}
	ip := matcha.NewInterpreter()
	return ip.Interpret(ip.Globals(), stmts)
}
