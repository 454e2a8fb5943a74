package worker

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

const barWidth = 30

// Progress tracks and displays rendering progress for one palette.
type Progress struct {
	startTime time.Time
	output    io.Writer
	label     string
	unit      string
	total     int
	completed int
	failed    int
	mu        sync.RWMutex
	enabled   bool
}

// NewProgress creates a tracker for total swatches of the palette label.
func NewProgress(label string, total int, enabled bool) *Progress {
	return &Progress{
		startTime: time.Now(),
		output:    os.Stderr,
		label:     label,
		unit:      "swatches",
		total:     total,
		enabled:   enabled,
	}
}

// SetOutput redirects the display.
func (p *Progress) SetOutput(w io.Writer) {
	p.mu.Lock()
	p.output = w
	p.mu.Unlock()
}

// SetUnit changes what is being counted, e.g. "files".
func (p *Progress) SetUnit(unit string) {
	p.mu.Lock()
	p.unit = unit
	p.mu.Unlock()
}

type progressState struct {
	out       io.Writer
	label     string
	unit      string
	total     int
	completed int
	failed    int
	elapsed   time.Duration
}

func (p *Progress) snapshot() progressState {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return progressState{
		out:       p.output,
		label:     p.label,
		unit:      p.unit,
		total:     p.total,
		completed: p.completed,
		failed:    p.failed,
		elapsed:   time.Since(p.startTime),
	}
}

func (s progressState) rate() float64 {
	if s.elapsed <= 0 {
		return 0
	}
	return float64(s.completed) / s.elapsed.Seconds()
}

// Update records the completion of a task.
func (p *Progress) Update(completed, total, failed int) {
	p.mu.Lock()
	p.completed = completed
	p.total = total
	p.failed = failed
	p.mu.Unlock()

	if p.enabled {
		p.Print()
	}
}

// Callback returns a ProgressFunc suitable for use with Pool.Config.
func (p *Progress) Callback() ProgressFunc {
	return p.Update
}

// Print redraws the progress line in place.
func (p *Progress) Print() {
	s := p.snapshot()

	filled := 0
	if s.total > 0 {
		filled = min(barWidth, s.completed*barWidth/s.total)
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

	var b strings.Builder
	fmt.Fprintf(&b, "\r%s [%s] %d/%d %s", s.label, bar, s.completed, s.total, s.unit)
	if s.failed > 0 {
		fmt.Fprintf(&b, " (%d failed)", s.failed)
	}
	rate := s.rate()
	fmt.Fprintf(&b, " - %.1f %s/sec", rate, s.unit)
	switch {
	case s.completed >= s.total:
		fmt.Fprintf(&b, " - Done in %s", formatDuration(s.elapsed))
	case rate > 0:
		eta := time.Duration(float64(s.total-s.completed)/rate) * time.Second
		if eta > 0 {
			fmt.Fprintf(&b, " - ETA: %s", formatDuration(eta))
		}
	}
	b.WriteString("          ")

	fmt.Fprint(s.out, b.String())
}

// Done prints the final line followed by a newline.
func (p *Progress) Done() {
	if p.enabled {
		p.Print()
		fmt.Fprintln(p.snapshot().out)
	}
}

// Summary describes the finished run, counting only successful items.
func (p *Progress) Summary() string {
	s := p.snapshot()
	return fmt.Sprintf("Rendered %d/%d %s of %s (%d failed) in %s (%.1f %s/sec)",
		s.completed-s.failed, s.total, s.unit, s.label, s.failed, formatDuration(s.elapsed), s.rate(), s.unit)
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%.0fs", d.Seconds())
	case d < time.Hour:
		return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%dh%dm", int(d.Hours()), int(d.Minutes())%60)
}
