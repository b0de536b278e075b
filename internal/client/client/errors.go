package client

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/coachdesk/internal/common"
)

var (
	ErrUnavailable = errors.New("server unavailable")
	ErrNotFound    = errors.New("not found")

	// ErrNotAcknowledged is a 2xx answer that reports the request was not
	// carried out. The server is reachable, so it is not ErrUnavailable.
	ErrNotAcknowledged = errors.New("request not acknowledged")
)

// HTTPError is a non-2xx answer from the server. It always matches
// ErrUnavailable; a 404 also matches ErrNotFound and a 409 matches
// common.ErrDuplicateEmail.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http %d: %s", e.Status, e.Message)
}

func (e *HTTPError) Unwrap() error {
	return ErrUnavailable
}

func (e *HTTPError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case common.ErrDuplicateEmail:
		return e.Status == http.StatusConflict
	}
	return false
}
