package client

import "fmt"

// HTTPError is returned when the backend answers with a non-2xx status
type HTTPError struct {
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
}
