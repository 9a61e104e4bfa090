package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// config holds the defaults loaded from .exprlangrc.yaml, if present. It
// is loaded after flag parsing and before the subcommand runs; subcommands
// apply it only to flags the user did not set explicitly.
var config rcConfig

var rootCmd = &cobra.Command{
	Use:   "exprlang",
	Short: "exprlang interpreter",
	Long: `exprlang is an interpreter for a small C-like expression and
statement language with exact rational arithmetic, scoped lexical
environments, and operator dispatch driven by per-value handler
methods.

It tokenizes, parses, and evaluates source text, producing one value
per top-level statement: variable declarations with explicit or
inferred types, assignment, control flow, and arithmetic over integers
and rationals.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("loading .exprlangrc.yaml: %w", err)
		}
		config = cfg
		return nil
	},
}

// Execute runs the root command, printing and exiting on failure so
// main need not handle the error itself.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		exitWithError("%s", err)
	}
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
