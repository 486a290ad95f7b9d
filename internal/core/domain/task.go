package domain

import "time"

// Task is a single tracked item. Time holds the canonical ISO-8601 text with
// second precision; the (Time, Event) pair identifies the record and no two
// tasks in a collection may share both.
type Task struct {
	Time      string
	Event     string
	Value     int
	Completed bool
}

// Recognized orderings for listing tasks.
const (
	SortByTime  = "time"
	SortByValue = "value"
)

// TimeInput is the closed set of accepted task-time representations: raw
// ISO-8601 text or a structured time.Time. Each arm has its own conversion
// rule, applied by NewTask (validating) or Canonical (pass-through).
type TimeInput struct {
	text       string
	stamp      time.Time
	structured bool
}

// TimeText wraps raw ISO-8601 text. The text is validated when the input is
// consumed by NewTask; Canonical returns it verbatim.
func TimeText(text string) TimeInput {
	return TimeInput{text: text}
}

// TimeStamp wraps a structured timestamp, converted to RFC 3339 text on use.
func TimeStamp(stamp time.Time) TimeInput {
	return TimeInput{stamp: stamp, structured: true}
}

// Canonical returns the storage form of the input. Raw text is passed
// through as-is, without checking that it parses.
func (t TimeInput) Canonical() string {
	if t.structured {
		return t.stamp.Format(time.RFC3339)
	}
	return t.text
}
