package services

import (
	"github.com/pkg/errors"
)

type FailureKind int

const (
	NoFailure FailureKind = iota
	FetchFailure
	ScoringFailure
	PersistenceFailure
)

var (
	ErrFetchFailure       = errors.New("fetch failure")
	ErrScoringFailure     = errors.New("scoring failure")
	ErrPersistenceFailure = errors.New("persistence failure")
)

func (k FailureKind) String() string {
	switch k {
	case FetchFailure:
		return "fetch"
	case ScoringFailure:
		return "scoring"
	case PersistenceFailure:
		return "persistence"
	default:
		return "none"
	}
}

func (k FailureKind) sentinel() error {
	switch k {
	case FetchFailure:
		return ErrFetchFailure
	case ScoringFailure:
		return ErrScoringFailure
	case PersistenceFailure:
		return ErrPersistenceFailure
	default:
		return nil
	}
}

// Failure is the engine error state. Message is what the user sees, Cause is kept for logs.
type Failure struct {
	Kind    FailureKind
	Message string
	Cause   error
}

func newFailure(kind FailureKind, message string, cause error) *Failure {
	return &Failure{Kind: kind, Message: message, Cause: cause}
}

func (f *Failure) Error() string {
	return f.Message
}

func (f *Failure) Unwrap() error {
	return f.Cause
}

// Is makes errors.Is(failure, ErrFetchFailure) and friends work.
func (f *Failure) Is(target error) bool {
	sentinel := f.Kind.sentinel()
	return sentinel != nil && target == sentinel
}
