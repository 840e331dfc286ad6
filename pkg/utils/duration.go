package utils

import "fmt"

// FormatSeconds renders a duration in whole seconds as "42s" or "M:SS".
func FormatSeconds(secs int) string {
	if secs < 60 {
		return fmt.Sprintf("%ds", secs)
	}
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
