package opendart

import "fmt"

var httpStatusMap = map[int]string{
	400: "Bad Request",
	403: "Forbidden. The endpoint refused the request",
	404: "Invalid URL",
	405: "Invalid HTTP method",
	429: "Too Many Requests",
	500: "Internal Server Error",
	502: "Bad Gateway",
	503: "Service Unavailable. Check the OpenDART maintenance notice",
	504: "Gateway Timeout",
}

// HTTPError is returned when the endpoint answers with a non-2xx HTTP status,
// before any JSON status can be read.
type HTTPError struct {
	StatusCode int
	Detail     string
}

func (e *HTTPError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("opendart http %d", e.StatusCode)
	}
	return fmt.Sprintf("opendart http %d: %s", e.StatusCode, e.Detail)
}

func newHTTPError(code int) *HTTPError {
	return &HTTPError{StatusCode: code, Detail: httpStatusMap[code]}
}
