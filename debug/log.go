package debug

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/mica-format/go-mica/ir"
)

var prefix = func() string {
	if isatty.IsTerminal(os.Stderr.Fd()) {
		return color.New(color.FgHiBlack).Sprint("[mica] ")
	}
	return "[mica] "
}()

// Logf writes to stderr. Tree arguments render through their debug dump.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *ir.Node:
			if x == nil {
				args[i] = "<nil node>"
				continue
			}
			args[i] = x.String()
		default:
		}
	}
	fmt.Fprintf(os.Stderr, prefix+msg, args...)
}
