package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jleeming/exprlang/internal/errors"
	"github.com/jleeming/exprlang/internal/evaluator"
	"github.com/jleeming/exprlang/internal/parser"
	"github.com/jleeming/exprlang/internal/trace"
	"github.com/jleeming/exprlang/pkg/exprlang"
)

var (
	evalExpr   string
	dumpAST    bool
	traceFile  string
	formatMode string
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run an exprlang file or expression",
	Long: `Execute an exprlang program from a file or inline expression,
printing the value of every top-level statement.

Examples:
  # Run a script file
  exprlang run script.expr

  # Evaluate an inline expression
  exprlang run -e "1 + 2;"

  # Run with AST dump (for debugging)
  exprlang run --dump-ast script.expr

  # Record a JSON trace for later inspection
  exprlang run --trace trace.jsonl script.expr`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump the parsed AST (for debugging)")
	runCmd.Flags().StringVar(&traceFile, "trace", "", "write a JSON trace of every statement's result to this path")
	runCmd.Flags().StringVar(&formatMode, "format", "plain", "value output format: plain or human")
}

func runScript(cmd *cobra.Command, args []string) error {
	input, filename, err := readProgramInput(evalExpr, args)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")

	format := formatMode
	if !cmd.Flags().Changed("format") && config.Format != "" {
		format = config.Format
	}
	traceTo := traceFile
	if !cmd.Flags().Changed("trace") && config.TraceDir != "" {
		traceTo = config.TraceDir + "/trace.jsonl"
	}

	block, err := parser.Parse(input)
	if err != nil {
		return reportInterpreterError(filename, err)
	}

	if dumpAST {
		fmt.Println("AST:")
		fmt.Println(block.String())
		fmt.Println()
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "running %s (%d statement(s))\n", filename, len(block.Statements))
	}

	eval := evaluator.New()
	values, err := eval.EvalProgram(block)
	if err != nil {
		return reportInterpreterError(filename, err)
	}

	for _, v := range values {
		if format == "human" {
			fmt.Println(exprlang.FormatHuman(v))
		} else {
			fmt.Println(exprlang.FormatPlain(v))
		}
	}

	if traceTo != "" {
		entries := trace.Build(block.Statements, values)
		if err := trace.WriteFile(traceTo, entries); err != nil {
			return fmt.Errorf("writing trace to %s: %w", traceTo, err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "wrote trace to %s\n", traceTo)
		}
	}

	return nil
}

// readProgramInput resolves the program text from an -e flag or a file
// argument, in that priority order.
func readProgramInput(inline string, args []string) (input, filename string, err error) {
	switch {
	case inline != "":
		return inline, "<eval>", nil
	case len(args) == 1:
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), args[0], nil
	default:
		return "", "", fmt.Errorf("either provide a file path or use -e flag for inline code")
	}
}

// reportInterpreterError prints err's category, position, and message in
// a form a terminal user can act on.
func reportInterpreterError(filename string, err error) error {
	if ie, ok := err.(*errors.InterpreterError); ok {
		fmt.Fprintf(os.Stderr, "%s: %s\n", filename, ie.Error())
		return fmt.Errorf("%s failed", ie.Category)
	}
	fmt.Fprintf(os.Stderr, "%s: %s\n", filename, err)
	return err
}
