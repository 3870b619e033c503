package cerr

import (
	"fmt"
	"net/http"
)

// Error attaches an HTTP status code to an underlying error, so the
// RESTful adapter layer can serialize use case errors uniformly.
// Only two kinds of failures exist in this system: upstream fetch
// failures (reported as Unavailable) and lookup misses (reported as
// NotFound when they concern a whole resource; misses inside a cart
// are silent no-ops and never reach this type).
type Error struct {
	Err            error
	HTTPStatusCode int
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%d] %s", e.HTTPStatusCode, e.Err.Error())
}

func BadRequest(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusBadRequest}
}

func NotFound(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusNotFound}
}

// Unavailable wraps a transport-level or upstream failure. The caller
// converts it into a generic failed-to-load state; it is never
// retried automatically.
func Unavailable(err error) *Error {
	return &Error{
		Err: err, HTTPStatusCode: http.StatusServiceUnavailable,
	}
}
