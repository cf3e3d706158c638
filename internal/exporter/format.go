package exporter

import (
	"fmt"
)

// formatFloat1 formats a float64 value for CSV output with exactly 1 decimal
// place, matching the precision the aggregates are rounded to.
func formatFloat1(f float64) string {
	return fmt.Sprintf("%.1f", f)
}

// formatFloat2 formats a float64 value for CSV output with exactly 2 decimal
// places (average bond size).
func formatFloat2(f float64) string {
	return fmt.Sprintf("%.2f", f)
}

// formatInt formats an int value for CSV output.
func formatInt(i int) string {
	return fmt.Sprintf("%d", i)
}
