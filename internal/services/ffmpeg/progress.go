package ffmpeg

import (
	"strconv"
	"strings"
	"time"
)

// progressParser consumes "key=value" lines from -progress output and emits
// one update per "progress=" line, which ffmpeg writes at the end of each
// block.
type progressParser struct {
	total    time.Duration
	observer ProgressObserver
	current  Progress
}

func newProgressParser(total time.Duration, observer ProgressObserver) *progressParser {
	return &progressParser{total: total, observer: observer}
}

func (p *progressParser) Line(line string) {
	key, value, ok := strings.Cut(strings.TrimSpace(line), "=")
	if !ok {
		return
	}
	switch key {
	case "out_time_us", "out_time_ms":
		// out_time_ms is also reported in microseconds by ffmpeg.
		us, err := strconv.ParseInt(value, 10, 64)
		if err != nil || us < 0 {
			return
		}
		p.current.Encoded = time.Duration(us) * time.Microsecond
		if p.total > 0 {
			p.current.Percent = clampPercent(float64(p.current.Encoded) / float64(p.total) * 100)
		}
	case "speed":
		p.current.Speed = strings.TrimSpace(value)
	case "progress":
		if value == "end" {
			p.current.Percent = 100
			p.current.Done = true
		}
		if p.observer != nil {
			p.observer(p.current)
		}
	}
}

func clampPercent(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}
