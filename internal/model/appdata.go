package model

// Settings is the open settings mapping persisted alongside lessons
// (theme, user profile, school hours). Keys are not interpreted by the
// core; commands read and write them opaquely.
type Settings map[string]any

// AppData is the sole persisted document: the full lesson set plus the
// settings map, stored as one JSON record under KeyAppData.
type AppData struct {
	Lessons  []Lesson `json:"lessons"`
	Settings Settings `json:"settings"`
}

// NewAppData returns the default empty document. Lessons and Settings are
// non-nil so the document always marshals as {"lessons":[],"settings":{}}.
func NewAppData() *AppData {
	return &AppData{
		Lessons:  []Lesson{},
		Settings: Settings{},
	}
}

// Normalize replaces nil collections with empty ones. Documents read from
// the legacy store or hand-edited JSON may omit either field.
func (d *AppData) Normalize() {
	if d.Lessons == nil {
		d.Lessons = []Lesson{}
	}
	if d.Settings == nil {
		d.Settings = Settings{}
	}
}

// FindLesson returns the index of the lesson with the given id, or -1.
func (d *AppData) FindLesson(id string) int {
	for i := range d.Lessons {
		if d.Lessons[i].ID == id {
			return i
		}
	}
	return -1
}

// LessonsOnDay returns the lessons scheduled on the given weekday, in
// insertion order.
func (d *AppData) LessonsOnDay(day int) []Lesson {
	var out []Lesson
	for _, l := range d.Lessons {
		if l.Day == day {
			out = append(out, l)
		}
	}
	return out
}
