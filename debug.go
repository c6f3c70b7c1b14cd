package sprig

import (
	"fmt"
	"os"
	"time"
)

// paintStats holds per-frame timing metrics.
// Only populated when Registry.debug is true.
type paintStats struct {
	paintTime   time.Duration
	widgetCount int
	focused     Widget
}

// debugLog prints paint stats to stderr.
func (r *Registry) debugLog(stats paintStats) {
	if !r.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[sprig] %s\n", formatPaintStats(stats))
}

func formatPaintStats(stats paintStats) string {
	focus := "-"
	if stats.focused != nil {
		if name := stats.focused.widgetBase().Name; name != "" {
			focus = name
		} else {
			focus = fmt.Sprintf("%T", stats.focused)
		}
	}
	return fmt.Sprintf("paint: %v | widgets: %d | focus: %s",
		stats.paintTime, stats.widgetCount, focus)
}
