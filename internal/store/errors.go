package store

import "fmt"

// ErrJobNotFound indicates the job id does not resolve.
type ErrJobNotFound struct {
	ID string
}

func (e *ErrJobNotFound) Error() string {
	return fmt.Sprintf("job not found: %s", e.ID)
}

// ErrCandidateNotFound indicates the candidate id does not resolve.
type ErrCandidateNotFound struct {
	ID string
}

func (e *ErrCandidateNotFound) Error() string {
	return fmt.Sprintf("candidate not found: %s", e.ID)
}
