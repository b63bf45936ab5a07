package llm

import "errors"

// Every failure out of Generate maps onto one of these sentinels so the
// enrichment layer can fall back without inspecting transport details.
var (
	ErrUnavailable = errors.New("llm endpoint unavailable")

	ErrTimeout = errors.New("llm request timed out")

	// ErrInvalidOutput is returned by ExtractJSON when the model's text
	// cannot be coerced into the requested shape.
	ErrInvalidOutput = errors.New("invalid llm output format")

	ErrRetryExhausted = errors.New("llm retry attempts exhausted")
)
