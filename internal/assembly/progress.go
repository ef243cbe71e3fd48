package assembly

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"

	"bookbinder/internal/logging"
)

const barWidth = 30

// renderBar formats percent as a fixed-width bar with one decimal.
func renderBar(percent float64) string {
	blocks := int(percent / 100 * barWidth)
	if blocks < 0 {
		blocks = 0
	}
	if blocks > barWidth {
		blocks = barWidth
	}
	return fmt.Sprintf("[%s%s] %.1f%%", strings.Repeat("#", blocks), strings.Repeat("-", barWidth-blocks), percent)
}

// progressBar draws encode progress. On a terminal the bar is redrawn in
// place; otherwise a line is written each time a 5% bucket is crossed.
// Displayed progress never decreases.
type progressBar struct {
	mu          sync.Mutex
	w           io.Writer
	interactive bool
	sampler     *logging.ProgressSampler
	last        float64
	drawn       bool
}

func newProgressBar(w io.Writer, interactive bool) *progressBar {
	return &progressBar{w: w, interactive: interactive, sampler: logging.NewProgressSampler(5)}
}

func (b *progressBar) Update(percent float64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if percent > 100 {
		percent = 100
	}
	if percent < b.last {
		percent = b.last
	}
	b.last = percent

	if b.interactive {
		fmt.Fprintf(b.w, "\r%s ", renderBar(percent))
		b.drawn = true
		return
	}
	if b.sampler.ShouldEmit(percent, "encoding") {
		fmt.Fprintln(b.w, renderBar(percent))
	}
}

// Finish terminates an in-place bar with a newline.
func (b *progressBar) Finish() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.interactive && b.drawn {
		fmt.Fprintln(b.w)
		b.drawn = false
	}
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
