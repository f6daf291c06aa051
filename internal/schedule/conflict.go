package schedule

import (
	"github.com/mbelotti-dev/orariodoc/internal/model"
	"github.com/mbelotti-dev/orariodoc/internal/timeutil"
)

// FindConflicts returns every existing lesson the candidate overlaps with.
//
// Only lessons on the candidate's day are considered; lessons on other days
// never conflict whatever their times. A lesson whose id equals excludeID
// is skipped, so an edited lesson is never flagged against itself (pass ""
// when adding). All matches are collected, in the input order, because a
// candidate can overlap several lessons at once and the user should see
// them all. Overlap is strict: back-to-back lessons do not conflict.
//
// The scan is a single O(n) pass; the candidate must already be validated.
func FindConflicts(existing []model.Lesson, candidate model.Lesson, excludeID string) []model.Lesson {
	var conflicts []model.Lesson

	start := timeutil.ToMinutes(candidate.Start)
	for _, lesson := range existing {
		if excludeID != "" && lesson.ID == excludeID {
			continue
		}
		if lesson.Day != candidate.Day {
			continue
		}
		if timeutil.Overlaps(start, candidate.Duration, timeutil.ToMinutes(lesson.Start), lesson.Duration) {
			conflicts = append(conflicts, lesson)
		}
	}

	return conflicts
}
