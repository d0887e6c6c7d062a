package session

import "fmt"

// FormatClock renders a seconds counter as zero-padded "mm:ss". Negative
// inputs clamp to zero.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
