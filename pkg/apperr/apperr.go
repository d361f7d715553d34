// Package apperr defines the error classes mutations can fail with. Handlers
// match these with errors.Is and pick the HTTP status; everything else is a
// generic persistence failure.
package apperr

import "errors"

var (
	ErrNotAuthenticated = errors.New("Not authenticated")
	ErrNotFound         = errors.New("not found")
	ErrCategoryNotEmpty = errors.New("Category is not empty. Delete its items first.")
	ErrUploadFailed     = errors.New("upload failed")
)

// PartialReorder reports a sequential-fallback reorder that only applied some
// of its row updates. The sequence is left in a mixed old/new state; callers
// log it and still report success to the client, which has already applied
// the new order optimistically.
type PartialReorder struct {
	Applied int
	Total   int
	Err     error
}

func (e *PartialReorder) Error() string {
	return "reorder partially applied"
}

func (e *PartialReorder) Unwrap() error { return e.Err }
