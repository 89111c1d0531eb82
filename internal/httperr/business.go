package httperr

import (
	"errors"
	"strings"
)

// BusinessError is a domain-level failure identified by a stable code.
// Codes ending in "_not_found" map to 404s, everything else to 400s.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extracts the code from any wrapped BusinessError.
func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}

func IsNotFound(err error) bool {
	code, ok := BusinessCode(err)
	return ok && strings.HasSuffix(code, "_not_found")
}
