// Package cli provides build progress reporting.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/opencode-ai/themes/internal/theme"
)

// buildProgress reports each theme file as `themes build` writes it. A nil
// *buildProgress reports nothing.
type buildProgress struct {
	out     io.Writer
	total   int
	written int
}

func newBuildProgress(out io.Writer, total int) *buildProgress {
	if !progressEnabled() {
		return nil
	}
	return &buildProgress{out: out, total: total}
}

func (p *buildProgress) themeWritten(t theme.Theme, path string) {
	if p == nil {
		return
	}
	p.written++
	fmt.Fprintf(p.out, "[%d/%d] %s %s\n", p.written, p.total, t.Name, formatVariant(t.IsDark()))
}

func (p *buildProgress) failed(err error) {
	if p == nil {
		return
	}
	fmt.Fprintf(p.out, "build stopped after %d of %d theme(s): %v\n", p.written, p.total, err)
}

func progressEnabled() bool {
	if IsJSONOutput() || noProgress {
		return false
	}
	_, disabled := os.LookupEnv("THEMES_NO_PROGRESS")
	return !disabled
}
