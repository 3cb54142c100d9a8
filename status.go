package opendart

import (
	"errors"
	"fmt"
)

// StatusOK is the status code of a successful response.
const StatusOK = "000"

var (
	ErrUnregisteredKey     = errors.New("unregistered api key")
	ErrUnavailableKey      = errors.New("api key is suspended")
	ErrInaccessibleIP      = errors.New("ip address is not allowed")
	ErrNoData              = errors.New("no data")
	ErrFileNotFound        = errors.New("file does not exist")
	ErrRateLimited         = errors.New("request limit exceeded")
	ErrCorpLimitExceeded   = errors.New("too many companies requested")
	ErrInvalidField        = errors.New("invalid field value")
	ErrInappropriateAccess = errors.New("inappropriate access")
	ErrServiceClosed       = errors.New("service under maintenance")
	ErrUndefined           = errors.New("undefined error")
	ErrExpiredKey          = errors.New("api key expired")
)

// statusMap maps the provider's embedded status codes to their error kind.
var statusMap = map[string]error{
	"010": ErrUnregisteredKey,
	"011": ErrUnavailableKey,
	"012": ErrInaccessibleIP,
	"013": ErrNoData,
	"014": ErrFileNotFound,
	"020": ErrRateLimited,
	"021": ErrCorpLimitExceeded,
	"100": ErrInvalidField,
	"101": ErrInappropriateAccess,
	"800": ErrServiceClosed,
	"900": ErrUndefined,
	"901": ErrExpiredKey,
}

// StatusError is returned when a response carries a non-success status code.
// Message is the provider's own text, untouched.
type StatusError struct {
	Code    string
	Message string
	kind    error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("opendart status %s: %s (%v)", e.Code, e.Message, e.kind)
}

func (e *StatusError) Unwrap() error { return e.kind }

// StatusChecker inspects a parsed response and fails when its status signals an error.
type StatusChecker func(Response) error

// CheckStatus is the default StatusChecker. Unknown codes and a missing status
// field are reported as ErrUndefined.
func CheckStatus(res Response) error {
	code := res.Status()
	if code == StatusOK {
		return nil
	}
	kind, ok := statusMap[code]
	if !ok {
		kind = ErrUndefined
	}
	return &StatusError{Code: code, Message: res.Message(), kind: kind}
}
