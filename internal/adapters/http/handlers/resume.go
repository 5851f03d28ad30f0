package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leonardomurakami/murakams-home/internal/app"
	"github.com/leonardomurakami/murakams-home/internal/domain"
)

// ResumeHandler serves the resume page and the PDF download.
type ResumeHandler struct {
	service *app.ResumeService
	meta    SiteMeta
}

// NewResumeHandler creates the resume handler.
func NewResumeHandler(service *app.ResumeService, meta SiteMeta) *ResumeHandler {
	return &ResumeHandler{service: service, meta: meta}
}

// Show handles GET /resume. An unknown locale falls back to English.
func (h *ResumeHandler) Show(c *gin.Context) {
	locale := c.Query("locale")

	resume, err := h.service.Resume(c.Request.Context(), locale)
	if err != nil {
		data := pageData(c, h.meta, "resume")
		data["Status"] = http.StatusNotFound
		data["Message"] = "The resume is not available right now."

		c.HTML(http.StatusNotFound, "pages/error.html", data)
		return
	}

	data := pageData(c, h.meta, "resume")
	data["Resume"] = resume

	c.HTML(http.StatusOK, "pages/resume.html", data)
}

// Download handles GET /resume/download, streaming the resume as PDF.
func (h *ResumeHandler) Download(c *gin.Context) {
	locale := c.Query("locale")

	output, err := h.service.ResumePDF(c.Request.Context(), locale)
	if err != nil {
		status := http.StatusInternalServerError
		if domain.IsNotFound(err) {
			status = http.StatusNotFound
		}

		c.String(status, "resume unavailable")
		return
	}

	filename := fmt.Sprintf("resume-%s.pdf", localeOrDefault(locale))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", output)
}

func localeOrDefault(locale string) string {
	if locale == "" {
		return "en"
	}

	return locale
}
