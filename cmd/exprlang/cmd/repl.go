package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jleeming/exprlang/internal/errors"
	"github.com/jleeming/exprlang/pkg/exprlang"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive exprlang session",
	Long: `Start a read-eval-print loop. Each line you enter is evaluated
against the same engine, so earlier declarations stay visible to later
lines (spec §5's shared-resources model) — unlike "exprlang run", which
builds a fresh engine per invocation.`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	engine := exprlang.New()
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Fprintln(os.Stdout, "exprlang", Version, "- type statements, ending each with ';'")
	for {
		fmt.Fprint(os.Stdout, "> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if line == "" {
			continue
		}

		values, err := engine.Evaluate(line)
		if err != nil {
			if ie, ok := err.(*errors.InterpreterError); ok {
				fmt.Fprintln(os.Stderr, ie.Error())
			} else {
				fmt.Fprintln(os.Stderr, err)
			}
			continue
		}
		for _, v := range values {
			fmt.Fprintln(os.Stdout, exprlang.FormatPlain(v))
		}
	}

	if err := scanner.Err(); err != nil && err != io.EOF {
		return err
	}
	return nil
}
