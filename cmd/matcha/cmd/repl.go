package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	matcha "github.com/bonofiglio/matcha"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive read-eval-print loop",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRepl()
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	st := newStyles(cfg.Color)

	rl := liner.NewLiner()
	defer rl.Close()
	rl.SetCtrlCAborts(true)

	if f, err := os.Open(cfg.HistoryFile); err == nil {
		rl.ReadHistory(f)
		f.Close()
	}

	fmt.Println(st.banner.Render(fmt.Sprintf("matcha %s", matcha.Version)))
	fmt.Println("Ctrl+C clears the line, Ctrl+D exits.")

	// One root environment for the whole session: bindings persist across
	// entries, errors do not.
	ip := matcha.NewInterpreter()

	for {
		input, err := rl.Prompt(cfg.Prompt)
		if err == liner.ErrPromptAborted {
			continue
		}
		if err == io.EOF {
			fmt.Println()
			break
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		rl.AppendHistory(input)

		v, err := ip.EvalSource(input)
		if err != nil {
			fmt.Fprintln(os.Stderr, st.err.Render(matcha.WrapErrorWithSource(err, input).Error()))
			continue
		}
		fmt.Println(st.value.Render(v.String()))
	}

	if f, err := os.Create(cfg.HistoryFile); err == nil {
		rl.WriteHistory(f)
		f.Close()
	}
	return nil
}
