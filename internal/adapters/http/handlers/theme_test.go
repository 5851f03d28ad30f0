package handlers

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThemeHandler_Toggle_DefaultsToLight(t *testing.T) {
	engine := newTestEngine(t)
	h := NewThemeHandler()
	engine.POST("/theme/toggle", h.Toggle)

	w := postForm(t, engine, "/theme/toggle", url.Values{}, map[string]string{"HX-Request": "true"})

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "true", w.Header().Get("HX-Refresh"))
	assert.Contains(t, w.Header().Get("Set-Cookie"), "theme=light")
}

func TestThemeHandler_Toggle_FlipsBack(t *testing.T) {
	engine := newTestEngine(t)
	h := NewThemeHandler()
	engine.POST("/theme/toggle", h.Toggle)

	w := postForm(t, engine, "/theme/toggle", url.Values{}, map[string]string{
		"HX-Request": "true",
		"Cookie":     "theme=light",
	})

	assert.Contains(t, w.Header().Get("Set-Cookie"), "theme=dark")
}

func TestThemeHandler_Toggle_PlainPostRedirects(t *testing.T) {
	engine := newTestEngine(t)
	h := NewThemeHandler()
	engine.POST("/theme/toggle", h.Toggle)

	w := postForm(t, engine, "/theme/toggle", url.Values{}, map[string]string{
		"Referer": "/about",
	})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/about", w.Header().Get("Location"))
}
