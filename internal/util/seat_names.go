package util

import "strings"

// SeatNames returns count player names
// Blank or missing names are filled with random names that are not already taken.
// If count is less than len(names), every name is kept
func SeatNames(names []string, count int) []string {
	if count < len(names) {
		count = len(names)
	}

	taken := make(map[string]bool)
	seats := make([]string, count)
	for i, name := range names {
		name = strings.TrimSpace(name)
		seats[i] = name
		if name != "" {
			taken[name] = true
		}
	}

	for i, name := range seats {
		if name != "" {
			continue
		}

		for name == "" || taken[name] {
			name = GetRandomName()
		}

		taken[name] = true
		seats[i] = name
	}

	return seats
}
