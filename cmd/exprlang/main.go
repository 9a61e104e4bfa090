// Command exprlang runs the interpreter from the command line: tokenize,
// parse, evaluate, inspect, or drive a REPL against exprlang source text.
package main

import (
	"github.com/jleeming/exprlang/cmd/exprlang/cmd"
)

func main() {
	cmd.Execute()
}
