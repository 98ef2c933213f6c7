package views

import "fmt"

// FormatCompact renders a number in the dashboard's compact style
// (1234 -> "1.2 k", 5600000 -> "5.6 mi", ...).
func FormatCompact(num float64) string {
	switch {
	case num < 1000:
		return fmt.Sprintf("%d", int(num))
	case num < 1_000_000:
		return fmt.Sprintf("%.1f k", num/1_000)
	case num < 1_000_000_000:
		return fmt.Sprintf("%.1f mi", num/1_000_000)
	default:
		return fmt.Sprintf("%.1f bi", num/1_000_000_000)
	}
}
