package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// FromError maps a use-case failure to a response: business errors keep
// their code (404 for *_not_found, 400 otherwise), anything else becomes a
// generic 500 so store internals never leak to the operator.
func FromError(c *gin.Context, err error, fallbackMessage string) {
	if code, ok := BusinessCode(err); ok {
		if IsNotFound(err) {
			NotFound(c, code, fallbackMessage)
			return
		}
		BadRequest(c, code, fallbackMessage)
		return
	}
	Internal(c, "internal_error", fallbackMessage)
}
