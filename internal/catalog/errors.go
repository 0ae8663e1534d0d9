package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrRosterFetch marks a failed roster window request.
	ErrRosterFetch = errors.New("roster fetch failed")
	// ErrDetailFetch marks a failed detail request inside the fan-out.
	ErrDetailFetch = errors.New("detail fetch failed")
	// ErrLookupNotFound is returned by an exact lookup the service rejects.
	ErrLookupNotFound = errors.New("no creature by that name")
	// ErrBlankQuery is returned by an exact lookup with nothing to look up.
	ErrBlankQuery = errors.New("search term is blank")
)

// LoadError reports a failed generation load. It unwraps to both the error
// kind (ErrRosterFetch or ErrDetailFetch) and the underlying cause.
type LoadError struct {
	Generation Generation
	Kind       error
	Entry      string // roster entry name for detail failures
	Err        error
}

func (e *LoadError) Error() string {
	if e.Entry != "" {
		return fmt.Sprintf("load gen %s: %v (%s): %v", e.Generation.Roman(), e.Kind, e.Entry, e.Err)
	}
	return fmt.Sprintf("load gen %s: %v: %v", e.Generation.Roman(), e.Kind, e.Err)
}

func (e *LoadError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}
