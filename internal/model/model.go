// Package model defines the domain documents for OrarioDoc.
package model

const (
	// AppName is the application name used for data directories.
	AppName = "orariodoc"

	// KeyAppData is the database key under which the schedule document is stored.
	// The value is kept identical to the legacy store key so that migrated and
	// fresh installs share one document format.
	KeyAppData = "orariodoc:v1"

	// KeyMigrationFlag is the reserved database key for the one-time migration
	// sentinel. It is never exposed outside the storage layer.
	KeyMigrationFlag = "migrated_from_legacy"

	// LegacyFileName is the file name of the legacy flat store.
	LegacyFileName = "legacy.json"
)

// Weekday display names, indexed by Lesson.Day (0 = Sunday .. 6 = Saturday).
var WeekdayNames = [7]string{
	"Sunday",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

// WeekdayName returns the display name for a day index, or "?" when the
// index is out of range.
func WeekdayName(day int) string {
	if day < 0 || day > 6 {
		return "?"
	}
	return WeekdayNames[day]
}
