package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/leonardomurakami/murakams-home/internal/app"
)

// ProjectsHandler serves the project listing page and its search fragment.
type ProjectsHandler struct {
	service *app.ProjectService
	meta    SiteMeta
}

// NewProjectsHandler creates the projects handler.
func NewProjectsHandler(service *app.ProjectService, meta SiteMeta) *ProjectsHandler {
	return &ProjectsHandler{service: service, meta: meta}
}

// List handles GET /projects.
// Upstream failures degrade to whatever projects can still be listed; this
// page never errors.
func (h *ProjectsHandler) List(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	projects := h.service.SearchProjects(c.Request.Context(), query)

	data := pageData(c, h.meta, "projects")
	data["Projects"] = projects
	data["Query"] = query

	c.HTML(http.StatusOK, "pages/projects.html", data)
}

// Search handles GET /projects/search, the HTMX live-search fragment.
// Returns only the project list markup, to be swapped into the page.
func (h *ProjectsHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	projects := h.service.SearchProjects(c.Request.Context(), query)

	c.HTML(http.StatusOK, "components/project_list.html", gin.H{
		"Projects": projects,
		"Query":    query,
	})
}

// Featured handles GET /projects/featured, the home page highlight fragment.
func (h *ProjectsHandler) Featured(c *gin.Context) {
	projects := h.service.FeaturedProjects(c.Request.Context(), featuredProjectLimit)

	c.HTML(http.StatusOK, "components/project_list.html", gin.H{
		"Projects": projects,
	})
}
