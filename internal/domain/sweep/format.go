package sweep

import (
	"fmt"
	"math"
)

// FormatDuration renders a duration in hours as H:MM:SS using floor
// arithmetic: whole hours, remaining minutes, remaining seconds. It is a
// presentation helper for callers that display the sweep series.
func FormatDuration(hours float64) string {
	wholeHours := math.Floor(hours)
	minutes := math.Floor((hours - wholeHours) * 60)
	seconds := math.Floor(((hours-wholeHours)*60 - minutes) * 60)
	return fmt.Sprintf("%d:%02d:%02d", int(wholeHours), int(minutes), int(seconds))
}
