package timing

import (
	"fmt"
	"time"
)

// Unit thresholds for FormatDuration.
const (
	millisecondFloor = time.Millisecond
	secondFloor      = time.Second
	minuteFloor      = time.Minute
	hourFloor        = time.Hour
)

// FormatDuration renders a duration at the unit a human would pick:
// microseconds below 1 ms, milliseconds below 1 s, seconds below a minute,
// then minutes and hours. Reporting helper only — never called inside a
// timed interval.
func FormatDuration(d time.Duration) string {
	switch {
	case d < millisecondFloor:
		return fmt.Sprintf("%.2f µs", float64(d.Nanoseconds())/1e3)
	case d < secondFloor:
		return fmt.Sprintf("%.2f ms", float64(d.Nanoseconds())/1e6)
	case d < minuteFloor:
		return fmt.Sprintf("%.4f s", d.Seconds())
	case d < hourFloor:
		return fmt.Sprintf("%.2f min", d.Minutes())
	default:
		return fmt.Sprintf("%.2f h", d.Hours())
	}
}
