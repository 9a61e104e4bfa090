package exprlang

import (
	"math/big"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jleeming/exprlang/internal/types"
)

// humanPrinter groups large integer magnitudes with locale-aware
// thousands separators, the same dependency the teacher reaches for
// when formatting numeric output for a human reader rather than another
// program.
var humanPrinter = message.NewPrinter(language.English)

// FormatHuman renders v the way `exprlang run --format human` does:
// Integer and Rational numerators/denominators get thousands
// separators; every other value falls back to its plain String().
func FormatHuman(v Value) string {
	switch n := v.(type) {
	case *types.Integer:
		return humanPrinter.Sprintf("%v", bigIntDecimal(n.Value))
	case *types.Rational:
		return humanPrinter.Sprintf("%v/%v", bigIntDecimal(n.Num), bigIntDecimal(n.Den))
	default:
		return v.String()
	}
}

// FormatPlain renders v machine-parseably: exactly its String() form.
// This is the default format (spec §5 calls out `--format plain` as the
// default, human as opt-in).
func FormatPlain(v Value) string {
	return v.String()
}

// bigIntDecimal adapts a *big.Int to something message.Printer's %v
// verb will group as a number rather than print as an opaque struct.
// big.Int satisfies fmt.Stringer, but the printer only applies grouping
// to its own numeric conversions, so route through Int64 when the value
// fits and fall back to the plain string for anything larger.
func bigIntDecimal(v *big.Int) any {
	if v.IsInt64() {
		return v.Int64()
	}
	return v.String()
}
