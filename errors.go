package kotori

import "errors"

var (
	// ErrInvalidPath is returned when an empty path is registered.
	ErrInvalidPath = errors.New("invalid path")
	// ErrDuplicateRoute is returned when a route key already has a handler.
	ErrDuplicateRoute = errors.New("duplicate route")
	// ErrNotFound is returned by Dispatch and Serve when no handler resolves.
	ErrNotFound = errors.New("no route found")
	// ErrInvalidMethod is returned for methods outside GET, POST, PUT, PATCH and DELETE.
	ErrInvalidMethod = errors.New("invalid method")
	// ErrNilHandler is returned when a nil handler is registered.
	ErrNilHandler = errors.New("invalid handler: nil")
)
