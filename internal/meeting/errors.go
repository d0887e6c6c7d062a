package meeting

import "errors"

var (
	// ErrMeetingNotFound is returned when a meeting id has no record.
	ErrMeetingNotFound = errors.New("meeting not found")

	// ErrInsightNotFound is returned when no meeting owns the insight id.
	ErrInsightNotFound = errors.New("insight not found")

	// ErrNotStarted is returned for agenda operations on a meeting whose
	// agenda has not been opened yet.
	ErrNotStarted = errors.New("meeting has not started")
)
