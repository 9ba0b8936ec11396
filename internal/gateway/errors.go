package gateway

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound matches an UpstreamError for a resource GitHub reports as missing.
var ErrNotFound = errors.New("not found")

// UpstreamError is an API-level failure reported by GitHub: a non-2xx REST
// response or a GraphQL errors list. StatusCode is 0 for GraphQL errors.
type UpstreamError struct {
	Op         string
	StatusCode int
	Payload    string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("github %s: status %d: %s", e.Op, e.StatusCode, e.Payload)
	}
	return fmt.Sprintf("github %s: %s", e.Op, e.Payload)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Is reports a 404 as ErrNotFound.
func (e *UpstreamError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}
