package tool

import "time"

// HebrewYear approximates the Hebrew calendar year for a Gregorian instant.
// The civil-year offset is used without Tishrei adjustment.
func HebrewYear(at time.Time) int {
	return at.Year() + 3760
}
