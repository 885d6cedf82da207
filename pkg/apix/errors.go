package apix

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError is the single normalized failure shape of the transport layer.
// StatusCode is 0 for transport-level failures (network unreachable,
// timeout). Message carries the server's structured error text when the
// response body contained one.
type APIError struct {
	StatusCode int
	Message    string

	err error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.StatusCode != 0:
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
	case e.err != nil:
		return fmt.Sprintf("request failed: %v", e.err)
	default:
		return "request failed"
	}
}

func (e *APIError) Unwrap() error { return e.err }

// parseErrorResponse builds an APIError from a non-2xx response. The
// e-Prometna backend reports errors as {"message": "..."}; anything else
// falls back to the bare status line.
func parseErrorResponse(statusCode int, body []byte) *APIError {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return &APIError{StatusCode: statusCode, Message: payload.Message}
	}

	return &APIError{StatusCode: statusCode}
}
