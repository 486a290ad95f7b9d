package domain

import (
	"fmt"
	"strings"
	"time"
)

// isoLayouts covers the ISO-8601 shapes accepted for raw time text: date
// only, date plus time with a T or space separator, optional fractional
// seconds, optional UTC offset.
var isoLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTime parses canonical task time text.
func ParseTime(value string) (time.Time, error) {
	for _, layout := range isoLayouts {
		if stamp, err := time.Parse(layout, value); err == nil {
			return stamp, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q, use ISO format (YYYY-MM-DDThh:mm:ss)", ErrInvalidTime, value)
}

// NewTask validates and normalizes a (time, event, value) triple into a
// Task. Raw time text must parse as ISO-8601 and is stored verbatim; a
// structured timestamp is stored as RFC 3339 text. The event is stored in
// its trimmed form and must not be empty. The returned task is never
// completed; completion is a separate operation.
func NewTask(timeInput TimeInput, event string, value int) (Task, error) {
	timeText := timeInput.Canonical()
	if !timeInput.structured {
		if _, err := ParseTime(timeText); err != nil {
			return Task{}, err
		}
	}

	trimmedEvent := strings.TrimSpace(event)
	if trimmedEvent == "" {
		return Task{}, fmt.Errorf("%w: event must be a non-empty string", ErrInvalidEvent)
	}

	return Task{
		Time:      timeText,
		Event:     trimmedEvent,
		Value:     value,
		Completed: false,
	}, nil
}
