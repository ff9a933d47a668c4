package errors

import "fmt"

// APIError is any non-success response from the inventory service outside
// the login exchange. It carries the numeric status and the server's status
// text and nothing else; request bodies and credentials never end up here.
type APIError struct {
	StatusCode int
	StatusText string
}

func (v *APIError) Error() string {
	return fmt.Sprintf("api error: %d %s", v.StatusCode, v.StatusText)
}

func NewAPIError(statusCode int, statusText string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		StatusText: statusText,
	}
}

var _ error = &APIError{}
