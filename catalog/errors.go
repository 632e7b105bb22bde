package catalog

import (
	"errors"
	"fmt"
)

// ErrMalformed is matched by every manifest-level decoding failure.
var ErrMalformed = errors.New("malformed manifest")

// ErrNoVideos means no category carries a "videos" array.
var ErrNoVideos = &MalformedError{Reason: `no category with a "videos" list`}

// MalformedError is a manifest that cannot be decoded at all.
type MalformedError struct {
	// Field is the offending key, when there is one.
	Field  string
	Reason string
	Err    error
}

func (e *MalformedError) Error() string {
	msg := "malformed manifest"
	if e.Field != "" {
		msg += fmt.Sprintf(": field %q", e.Field)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedError) Unwrap() error { return e.Err }

func (e *MalformedError) Is(target error) bool { return target == ErrMalformed }

// MissingFieldError is a required key that is absent or null.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("malformed manifest: missing required field %q", e.Field)
}

func (e *MissingFieldError) Is(target error) bool { return target == ErrMalformed }

// SourceNotFoundError means an item lists no source of the requested format.
type SourceNotFoundError struct {
	Format string
}

func (e *SourceNotFoundError) Error() string {
	return fmt.Sprintf("no %q source", e.Format)
}

// ItemError reports why the item at Index of the "videos" list was left out of the tree.
type ItemError struct {
	Index int
	Title string
	Err   error
}

func (e *ItemError) Error() string {
	if e.Title != "" {
		return fmt.Sprintf("item %d (%s): %v", e.Index, e.Title, e.Err)
	}
	return fmt.Sprintf("item %d: %v", e.Index, e.Err)
}

func (e *ItemError) Unwrap() error { return e.Err }
