// Package timeutil provides wall-clock time helpers for the schedule core.
//
// Times are plain HH:MM strings with no date or timezone attached; all
// interval math happens on minutes since midnight.
package timeutil

import (
	"strconv"
	"strings"
)

// ToMinutes converts an HH:MM string to minutes since midnight.
// The input is assumed to be validated already (see validate.StartTime);
// malformed input yields an unspecified value rather than an error.
func ToMinutes(hhmm string) int {
	h, m, _ := strings.Cut(hhmm, ":")
	hours, _ := strconv.Atoi(h)
	minutes, _ := strconv.Atoi(m)
	return hours*60 + minutes
}

// Overlaps reports whether the half-open intervals [aStart, aStart+aDur)
// and [bStart, bStart+bDur) intersect. Values are minutes since midnight.
//
// The comparison is strict: intervals that merely touch (one ends exactly
// where the other starts) do not overlap, so back-to-back lessons never
// conflict.
func Overlaps(aStart, aDur, bStart, bDur int) bool {
	return aStart < bStart+bDur && aStart+aDur > bStart
}
