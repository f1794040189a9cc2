package chat

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidRequest marks a request body that is unparsable or fails
	// validation. No provider call is made.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrConfiguration marks missing configuration, such as an unset API key.
	// No provider call is made.
	ErrConfiguration = errors.New("configuration error")
	// ErrUpstream marks a failed call to the completion provider.
	ErrUpstream = errors.New("completion provider failed")
)

// ErrorResponse is the JSON body returned for any failed chat request.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail describes a failure.
type ErrorDetail struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Classify maps an error from Handle to an HTTP status and error body.
func Classify(err error) (int, ErrorResponse) {
	status, typ := http.StatusInternalServerError, "internal"
	switch {
	case errors.Is(err, ErrInvalidRequest):
		status, typ = http.StatusBadRequest, "invalid_request"
	case errors.Is(err, ErrConfiguration):
		status, typ = http.StatusInternalServerError, "configuration"
	case errors.Is(err, ErrUpstream):
		status, typ = http.StatusBadGateway, "upstream"
	}
	return status, ErrorResponse{Error: ErrorDetail{Type: typ, Message: err.Error()}}
}
