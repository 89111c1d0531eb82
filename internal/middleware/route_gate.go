package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SessionCookie carries the signed token for the web shell pages.
const SessionCookie = "dashboardToken"

// RequireTokenCookie is a perimeter check for the server-rendered pages: it
// only tests that the session cookie is present and redirects to the login
// page when it is not. It does NOT validate the token; every JSON API call
// behind the pages still goes through AuthMiddleware, which does.
func RequireTokenCookie(loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}
