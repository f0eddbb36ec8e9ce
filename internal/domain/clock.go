package domain

import (
	"strconv"
	"strings"
	"time"
)

// ParseClock parses a timestamp token of the form HH:MM:SS or MM:SS into an
// offset from the start of the recording. It reports false for anything else;
// callers treat such timestamps as opaque labels.
func ParseClock(s string) (time.Duration, bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, false
	}
	var total int64
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, false
		}
		total = total*60 + int64(n)
	}
	return time.Duration(total) * time.Second, true
}
