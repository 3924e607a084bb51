package source

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSourceUnavailable wraps every reason a live source produced nothing.
	ErrSourceUnavailable = errors.New("source unavailable")
	// ErrNoIdentifier marks a bank without an app on the platform.
	ErrNoIdentifier = errors.New("no store identifier")
	// ErrNoReviews marks a live source that answered without usable rows.
	ErrNoReviews = errors.New("no usable reviews")
)

// StatusError reports a non-success HTTP response.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.StatusCode, e.URL)
}

func unavailable(err error) error {
	if errors.Is(err, ErrSourceUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
}

// SkippedEntries accumulates entries dropped while normalizing a batch.
type SkippedEntries struct {
	Errors []error
}

func (s *SkippedEntries) Error() string {
	if len(s.Errors) == 0 {
		return "no skipped entries"
	}
	if len(s.Errors) == 1 {
		return s.Errors[0].Error()
	}
	parts := make([]string, len(s.Errors))
	for i, err := range s.Errors {
		parts[i] = err.Error()
	}
	return fmt.Sprintf("%d entries skipped: %s", len(s.Errors), strings.Join(parts, "; "))
}

// Len returns the number of skipped entries.
func (s *SkippedEntries) Len() int {
	return len(s.Errors)
}

func (s *SkippedEntries) add(err error) {
	if err == nil {
		return
	}
	s.Errors = append(s.Errors, err)
}

func (s *SkippedEntries) asError() error {
	if len(s.Errors) == 0 {
		return nil
	}
	return s
}
