package matching

import (
	"errors"
	"fmt"

	"github.com/jonathan/talent-match/internal/store"
)

// NotFoundError indicates a job or candidate id did not resolve. Surfaced to
// the caller, never retried.
type NotFoundError struct {
	Resource string // "job" or "candidate"
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// InvalidInputError indicates a malformed request, rejected before any
// scoring work begins.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Message)
}

// AugmentationUnavailableError indicates the AI collaborator failed after
// retries. It is recovered internally and never surfaced to callers.
type AugmentationUnavailableError struct {
	Err error
}

func (e *AugmentationUnavailableError) Error() string {
	return fmt.Sprintf("augmentation unavailable: %v", e.Err)
}

func (e *AugmentationUnavailableError) Unwrap() error { return e.Err }

// InternalError wraps an unexpected failure with a stable message prefix.
type InternalError struct {
	Err error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error: %v", e.Err)
}

func (e *InternalError) Unwrap() error { return e.Err }

// classifyProviderError converts store lookup failures into the matching
// error taxonomy.
func classifyProviderError(err error) error {
	var jobNotFound *store.ErrJobNotFound
	if errors.As(err, &jobNotFound) {
		return &NotFoundError{Resource: "job", ID: jobNotFound.ID}
	}
	var candidateNotFound *store.ErrCandidateNotFound
	if errors.As(err, &candidateNotFound) {
		return &NotFoundError{Resource: "candidate", ID: candidateNotFound.ID}
	}
	return &InternalError{Err: err}
}
