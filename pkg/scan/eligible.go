package scan

import (
	"strings"
	"time"
)

// Eligible reports whether c should be deleted: at least ageDays whole
// days old at now, and its name matching no skip pattern. Patterns are
// case-insensitive substrings. A file modified after now is never
// eligible.
func Eligible(c Candidate, ageDays uint64, skip []string, now time.Time) bool {
	elapsed := now.Sub(c.ModTime)
	if elapsed < 0 {
		return false
	}
	if uint64(elapsed/(24*time.Hour)) < ageDays {
		return false
	}
	name := strings.ToLower(c.Name)
	for _, pattern := range skip {
		if strings.Contains(name, strings.ToLower(pattern)) {
			return false
		}
	}
	return true
}

// Filter keeps the candidates Eligible accepts, preserving order.
func Filter(files []Candidate, ageDays uint64, skip []string, now time.Time) []Candidate {
	eligible := make([]Candidate, 0, len(files))
	for _, c := range files {
		if Eligible(c, ageDays, skip, now) {
			eligible = append(eligible, c)
		}
	}
	return eligible
}
