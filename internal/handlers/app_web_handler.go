package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AppWebHandler serves the dashboard shell pages. All data loads happen via
// the JSON API; these templates only pick which page the shell mounts.
type AppWebHandler struct{}

func NewAppWebHandler() *AppWebHandler {
	return &AppWebHandler{}
}

func (h *AppWebHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "base", gin.H{
		"Page": "login",
	})
}

func (h *AppWebHandler) Dashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "base", gin.H{
		"Page": "dashboard",
	})
}

func (h *AppWebHandler) Bookings(c *gin.Context) {
	c.HTML(http.StatusOK, "base", gin.H{
		"Page": "bookings",
	})
}

func (h *AppWebHandler) Analytics(c *gin.Context) {
	c.HTML(http.StatusOK, "base", gin.H{
		"Page": "analytics",
	})
}

func (h *AppWebHandler) Services(c *gin.Context) {
	c.HTML(http.StatusOK, "base", gin.H{
		"Page": "services",
	})
}

func (h *AppWebHandler) Settings(c *gin.Context) {
	c.HTML(http.StatusOK, "base", gin.H{
		"Page": "settings",
	})
}
