package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// ServerError is the wrapped form of every non-2xx response. Message is the
// "error" field of the response body (or the raw body when it is not JSON).
type ServerError struct {
	Status     int
	Message    string
	RetryAfter string
	kind       error
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("%s: %s", e.kind, e.Message)
}

func (e *ServerError) Unwrap() error {
	return e.kind
}

// MessageOf returns the server message carried by err, or "" when err did
// not come from a server response.
func MessageOf(err error) string {
	var se *ServerError
	if errors.As(err, &se) {
		return se.Message
	}
	return ""
}

var statusKinds = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusTooManyRequests:     ErrTooManyRequests,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := errorMessage(resp.Body())
	if message == "" {
		message = http.StatusText(resp.StatusCode())
	}

	return NewServerError(resp.StatusCode(), message, resp.Header().Get("Retry-After"))
}

// NewServerError builds the error of a response with status. Statuses
// without a sentinel kind give a plain error.
func NewServerError(status int, message, retryAfter string) error {
	kind, ok := statusKinds[status]
	if !ok {
		return fmt.Errorf("http %d: %s", status, message)
	}

	return &ServerError{
		Status:     status,
		Message:    message,
		RetryAfter: retryAfter,
		kind:       kind,
	}
}

func errorMessage(body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return strings.TrimSpace(string(body))
}
