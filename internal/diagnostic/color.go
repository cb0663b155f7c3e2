package diagnostic

import (
	"os"

	"github.com/seam-lang/seam/internal/cli"
)

// UseColor decides whether diagnostics written to f should be colored.
// In auto mode colors are used only for terminals and only when NO_COLOR
// is unset.
func UseColor(mode string, f *os.File) bool {
	switch mode {
	case cli.ColorAlways:
		return true
	case cli.ColorNever:
		return false
	}
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	return f != nil && isTerminal(f.Fd())
}
