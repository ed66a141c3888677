package transport

import (
	"net/http"

	"github.com/MarisolRV/crossover/internal"
)

type HttpClientError struct {
	// Http StatusCode code
	StatusCode int `json:"-"`
	// Human readable summary of error
	Summary string `json:"title"`
	// Message that will be sent back to the client
	Description string `json:"message"`
}

func NewHttpClientError(status int, summ string, desc string) error {
	return &HttpClientError{
		Summary:     summ,
		Description: desc,
		StatusCode:  status,
	}
}

func (h *HttpClientError) Error() string {
	return h.Description
}

func (h *HttpClientError) Title() string {
	return h.Summary
}

// StatusOf maps an internal error code to its HTTP status
func StatusOf(code internal.ErrorCode) int {
	switch code {
	case internal.ErrorCodeNotFound:
		return http.StatusNotFound
	case internal.ErrorCodeInvalidArgument, internal.ErrorCodeUploadRejected:
		return http.StatusBadRequest
	case internal.ErrorCodeUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
