package apperror

import (
	"errors"
	"fmt"
)

// Sentinel categories. Services wrap these with context via %w so callers can
// classify failures with errors.Is while operators still see the full chain.
var (
	// ErrNotFound: a referenced document, answer key or assessment does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUpstreamUnavailable: the model gateway or vector store is unreachable
	// or returned an error. "Model unreachable."
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrInvalidModelOutput: the model responded, but the response does not
	// satisfy the required JSON contract. "Model reachable but unusable."
	ErrInvalidModelOutput = errors.New("invalid model output")

	// ErrConflict: the operation lost a race, e.g. a second ingestion trigger
	// while the document's processing lease is held.
	ErrConflict = errors.New("conflict")
)

func NotFound(what string) error {
	return fmt.Errorf("%s: %w", what, ErrNotFound)
}

func Upstream(op string, err error) error {
	return fmt.Errorf("%s: %v: %w", op, err, ErrUpstreamUnavailable)
}

func Conflict(what string) error {
	return fmt.Errorf("%s: %w", what, ErrConflict)
}

func InvalidModelOutput(reason string) error {
	return fmt.Errorf("%s: %w", reason, ErrInvalidModelOutput)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsUpstream(err error) bool {
	return errors.Is(err, ErrUpstreamUnavailable)
}

func IsInvalidModelOutput(err error) bool {
	return errors.Is(err, ErrInvalidModelOutput)
}

func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}
