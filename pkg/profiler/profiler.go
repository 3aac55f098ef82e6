// Package profiler times the stages of a single command run (load, fit,
// score) and prints them in the order they ran.
package profiler

import (
	"fmt"
	"io"
	"time"
)

// Profiler records stage durations for one run
type Profiler struct {
	order []string
	times map[string][]time.Duration
}

// NewProfiler creates a new profiler
func NewProfiler() *Profiler {
	return &Profiler{
		times: make(map[string][]time.Duration),
	}
}

// Timer represents a timing operation
type Timer struct {
	profiler *Profiler
	name     string
	start    time.Time
}

// Start begins timing a stage
func (p *Profiler) Start(name string) *Timer {
	return &Timer{
		profiler: p,
		name:     name,
		start:    time.Now(),
	}
}

// Stop completes the timing and records the duration
func (t *Timer) Stop() time.Duration {
	d := time.Since(t.start)
	t.profiler.Record(t.name, d)
	return d
}

// Record manually records a timing
func (p *Profiler) Record(name string, d time.Duration) {
	if _, ok := p.times[name]; !ok {
		p.order = append(p.order, name)
	}
	p.times[name] = append(p.times[name], d)
}

// Stats summarizes the timings of one stage
type Stats struct {
	Name  string
	Count int
	Total time.Duration
	Min   time.Duration
	Max   time.Duration
}

// GetStats returns statistics for a stage; unknown stages have Count 0.
func (p *Profiler) GetStats(name string) Stats {
	times := p.times[name]
	stats := Stats{Name: name, Count: len(times)}
	for i, d := range times {
		stats.Total += d
		if i == 0 || d < stats.Min {
			stats.Min = d
		}
		if d > stats.Max {
			stats.Max = d
		}
	}
	return stats
}

// GetAllStats returns statistics for every stage in first-recorded order
func (p *Profiler) GetAllStats() []Stats {
	stats := make([]Stats, 0, len(p.order))
	for _, name := range p.order {
		stats = append(stats, p.GetStats(name))
	}
	return stats
}

// PrintReport writes a formatted timing report
func (p *Profiler) PrintReport(w io.Writer) {
	stats := p.GetAllStats()
	if len(stats) == 0 {
		fmt.Fprintln(w, "No timing data available")
		return
	}

	fmt.Fprintf(w, "⏱️  Stage Timings\n")
	fmt.Fprintf(w, "════════════════════════════════════════\n")
	fmt.Fprintf(w, "%-12s %6s %10s %10s\n", "Stage", "Count", "Total", "Max")
	fmt.Fprintf(w, "────────────────────────────────────────\n")
	for _, s := range stats {
		fmt.Fprintf(w, "%-12s %6d %10s %10s\n", s.Name, s.Count, formatDuration(s.Total), formatDuration(s.Max))
	}
}

// formatDuration formats a duration for display
func formatDuration(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	case d < time.Millisecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1e3)
	case d < time.Second:
		return fmt.Sprintf("%.2fms", float64(d.Nanoseconds())/1e6)
	}
	return fmt.Sprintf("%.3fs", d.Seconds())
}
