package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jleeming/exprlang/internal/trace"
)

var (
	inspectGet string
	inspectSet string
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <trace-file>",
	Short: "Query or patch a JSON trace written by 'exprlang run --trace'",
	Long: `Inspect a trace file produced by "exprlang run --trace trace.jsonl".

Examples:
  # Read the value recorded for the third statement (0-indexed)
  exprlang inspect trace.jsonl --get 2.value

  # Overwrite that value in place
  exprlang inspect trace.jsonl --set 2.value=99/1`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringVar(&inspectGet, "get", "", "gjson path to read, e.g. 2.value")
	inspectCmd.Flags().StringVar(&inspectSet, "set", "", "path=value to patch, e.g. 2.value=99/1")
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]

	if inspectSet != "" {
		key, value, ok := splitSetFlag(inspectSet)
		if !ok {
			return fmt.Errorf("--set expects path=value, got %q", inspectSet)
		}
		if err := trace.Set(path, key, value); err != nil {
			return err
		}
		fmt.Printf("%s: set to %s\n", key, value)
	}

	if inspectGet != "" {
		result, err := trace.Get(path, inspectGet)
		if err != nil {
			return err
		}
		fmt.Println(result)
	}

	if inspectGet == "" && inspectSet == "" {
		return fmt.Errorf("provide --get or --set")
	}
	return nil
}

// splitSetFlag splits "path=value" on the first '='.
func splitSetFlag(s string) (path, value string, ok bool) {
	for i := 0; i < len(s); i++ {
		if s[i] == '=' {
			return s[:i], s[i+1:], true
		}
	}
	return "", "", false
}
