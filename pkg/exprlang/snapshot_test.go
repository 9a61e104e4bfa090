package exprlang_test

import (
	"fmt"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/jleeming/exprlang/pkg/exprlang"
)

// TestFormattedOutputSnapshots runs a handful of representative programs
// through Evaluate and snapshots their formatted output, the same way the
// teacher pack snapshots interpreter output per fixture (internal/interp's
// fixture_test.go).
func TestFormattedOutputSnapshots(t *testing.T) {
	programs := []struct {
		name   string
		source string
	}{
		{"integer_addition", "1 + 2;"},
		{"decimal_addition", "0.1 + 0.2;"},
		{"for_loop_doubling", "int a = 1; for (int x = 0; x < 10; x++) { a *= 2; } a;"},
		{"dot_decimal_from_variable", "int three = 3; rational pi = three.14; pi;"},
		{"auto_infers_rational", "auto pi = 22 / 7; pi;"},
	}

	for _, p := range programs {
		t.Run(p.name, func(t *testing.T) {
			values, err := exprlang.Evaluate(p.source)
			if err != nil {
				t.Fatalf("evaluate %q: %v", p.source, err)
			}
			var out string
			for i, v := range values {
				out += fmt.Sprintf("[%d] plain=%s human=%s\n", i, exprlang.FormatPlain(v), exprlang.FormatHuman(v))
			}
			snaps.MatchSnapshot(t, fmt.Sprintf("%s_output", p.name), out)
		})
	}
}
