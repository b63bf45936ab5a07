package domain

import "errors"

var (
	// ErrInvalidDateRange is returned when a schedule config's start date
	// falls after its end date.
	ErrInvalidDateRange = errors.New("start date must not be after end date")

	// ErrUnknownTopic is returned when an operation references a topic id
	// that is not part of the curriculum.
	ErrUnknownTopic = errors.New("unknown topic id")

	// ErrSubtopicOutOfRange is returned when a subtopic index does not
	// exist for the referenced topic.
	ErrSubtopicOutOfRange = errors.New("subtopic index out of range")
)
