package errors

import "errors"

var (
	// ErrNotFound is a generic sentinel for missing resources.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is a generic sentinel for auth failures.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidArgument is a generic sentinel for invalid input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotEnoughChoices is returned when a roadmap is requested before the
	// user has swiped the minimum number of career cards.
	ErrNotEnoughChoices = errors.New("make at least 5 choices to generate your roadmap")
)
