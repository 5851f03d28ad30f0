package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ThemeHandler flips the visitor's color scheme preference.
type ThemeHandler struct{}

// NewThemeHandler creates the theme handler.
func NewThemeHandler() *ThemeHandler {
	return &ThemeHandler{}
}

// Toggle handles POST /theme/toggle.
// The preference lives in a cookie so server-rendered pages pick it up on
// the next render. HTMX callers get a refresh instruction; plain posts are
// redirected back to where they came from.
func (h *ThemeHandler) Toggle(c *gin.Context) {
	next := "dark"
	if currentTheme(c) == "dark" {
		next = "light"
	}

	c.SetCookie(themeCookie, next, themeCookieMaxAge, "/", "", false, true)

	if c.GetHeader("HX-Request") == "true" {
		c.Header("HX-Refresh", "true")
		c.Status(http.StatusNoContent)
		return
	}

	referer := c.GetHeader("Referer")
	if referer == "" {
		referer = "/"
	}

	c.Redirect(http.StatusSeeOther, referer)
}
