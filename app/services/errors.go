package services

import "errors"

// Sentinel errors the controller maps to HTTP status codes. The messages are
// sent to clients verbatim.
var (
	ErrTitleRequired = errors.New("Title is required")
	ErrNotFound      = errors.New("Task not found")
)
