package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	// themeCookie stores the visitor's preferred color scheme.
	themeCookie = "theme"

	// defaultTheme is used when no preference cookie is set.
	defaultTheme = "dark"

	// themeCookieMaxAge keeps the preference for a year.
	themeCookieMaxAge = 365 * 24 * 60 * 60
)

// featuredProjectLimit is how many projects the home page highlights.
const featuredProjectLimit = 3

// SiteMeta holds the fields every page template needs.
type SiteMeta struct {
	Name    string
	Version string
}

// currentTheme reads the visitor's theme preference, defaulting to dark.
func currentTheme(c *gin.Context) string {
	theme, err := c.Cookie(themeCookie)
	if err != nil || (theme != "dark" && theme != "light") {
		return defaultTheme
	}

	return theme
}

// pageData builds the common template data for a page.
func pageData(c *gin.Context, meta SiteMeta, active string) gin.H {
	return gin.H{
		"Site":   meta,
		"Active": active,
		"Theme":  currentTheme(c),
		"Year":   time.Now().Year(),
	}
}

// PagesHandler serves the static biography pages.
type PagesHandler struct {
	meta SiteMeta
}

// NewPagesHandler creates the handler for static pages.
func NewPagesHandler(meta SiteMeta) *PagesHandler {
	return &PagesHandler{meta: meta}
}

// Home handles GET /.
func (h *PagesHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "pages/home.html", pageData(c, h.meta, "home"))
}

// About handles GET /about.
func (h *PagesHandler) About(c *gin.Context) {
	c.HTML(http.StatusOK, "pages/about.html", pageData(c, h.meta, "about"))
}

// NotFound handles unmatched routes with an HTML 404 page.
func (h *PagesHandler) NotFound(c *gin.Context) {
	data := pageData(c, h.meta, "")
	data["Status"] = http.StatusNotFound
	data["Message"] = "This page does not exist."

	c.HTML(http.StatusNotFound, "pages/error.html", data)
}
