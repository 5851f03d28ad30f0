package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leonardomurakami/murakams-home/internal/app"
	"github.com/leonardomurakami/murakams-home/internal/domain"
)

// contactForm is the inbound form binding for a submission.
type contactForm struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Message string `form:"message"`
}

// ContactHandler serves the contact page and processes form submissions.
type ContactHandler struct {
	service *app.ContactService
	meta    SiteMeta
}

// NewContactHandler creates the contact handler.
func NewContactHandler(service *app.ContactService, meta SiteMeta) *ContactHandler {
	return &ContactHandler{service: service, meta: meta}
}

// Show handles GET /contact.
func (h *ContactHandler) Show(c *gin.Context) {
	data := pageData(c, h.meta, "contact")
	data["Form"] = contactForm{}

	c.HTML(http.StatusOK, "pages/contact.html", data)
}

// Submit handles POST /contact.
// HTMX requests get a result fragment swapped into the form area; plain form
// posts get the full page re-rendered with the result.
func (h *ContactHandler) Submit(c *gin.Context) {
	var form contactForm
	if err := c.ShouldBind(&form); err != nil {
		h.respond(c, http.StatusBadRequest, resultData{
			Error: "The form could not be read. Please try again.",
		})
		return
	}

	submission := &domain.ContactSubmission{
		Name:    form.Name,
		Email:   form.Email,
		Message: form.Message,
	}

	err := h.service.Submit(c.Request.Context(), submission)
	switch {
	case err == nil:
		h.respond(c, http.StatusOK, resultData{
			Success: "Thanks for reaching out! I'll get back to you soon.",
		})

	case domain.IsValidation(err):
		h.respond(c, http.StatusBadRequest, resultData{
			Error: validationMessage(err),
			Form:  form,
		})

	case domain.IsUnavailable(err):
		h.respond(c, http.StatusServiceUnavailable, resultData{
			Error: "Your message could not be processed right now. Please try again later.",
			Form:  form,
		})

	default:
		h.respond(c, http.StatusInternalServerError, resultData{
			Error: "Something went wrong. Please try again later.",
			Form:  form,
		})
	}
}

// resultData carries the outcome of a submission into the templates.
type resultData struct {
	Success string
	Error   string
	Form    contactForm
}

// respond renders the submission result, as a fragment for HTMX or as the
// full contact page otherwise. Fragments always go out with 200: htmx does
// not swap error-status responses by default, and the visitor needs to see
// the message either way.
func (h *ContactHandler) respond(c *gin.Context, status int, result resultData) {
	if c.GetHeader("HX-Request") == "true" {
		c.HTML(http.StatusOK, "components/contact_result.html", gin.H{
			"Success": result.Success,
			"Error":   result.Error,
			"Form":    result.Form,
		})
		return
	}

	data := pageData(c, h.meta, "contact")
	data["Success"] = result.Success
	data["Error"] = result.Error
	data["Form"] = result.Form

	c.HTML(status, "pages/contact.html", data)
}

// validationMessage extracts a visitor-friendly message from a validation error.
func validationMessage(err error) string {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		switch validationErr.Field {
		case "name":
			return "Please enter your name."
		case "email":
			return "Please enter a valid email address."
		case "message":
			return "Please enter a message."
		}
	}

	return "Please check the form and try again."
}
