package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leonardomurakami/murakams-home/internal/app"
)

func newResumeHandler(t *testing.T, renderer *stubRenderer) *ResumeHandler {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "en.json"),
		[]byte(`{"name": "Leonardo Murakami"}`), 0o644))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "pt.json"),
		[]byte(`{"name": "Leonardo Murakami (PT)"}`), 0o644))

	service := app.NewResumeService(app.ResumeServiceConfig{
		LocalesDir: dir,
		Renderer:   renderer,
	})

	return NewResumeHandler(service, testMeta())
}

func TestResumeHandler_Show(t *testing.T) {
	engine := newTestEngine(t)
	h := newResumeHandler(t, &stubRenderer{})
	engine.GET("/resume", h.Show)

	w := get(t, engine, "/resume", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "resume name=Leonardo Murakami locale=en")
}

func TestResumeHandler_Show_Locale(t *testing.T) {
	engine := newTestEngine(t)
	h := newResumeHandler(t, &stubRenderer{})
	engine.GET("/resume", h.Show)

	w := get(t, engine, "/resume?locale=pt", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "locale=pt")
}

func TestResumeHandler_Show_UnknownLocaleFallsBack(t *testing.T) {
	engine := newTestEngine(t)
	h := newResumeHandler(t, &stubRenderer{})
	engine.GET("/resume", h.Show)

	w := get(t, engine, "/resume?locale=ja", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "locale=en")
}

func TestResumeHandler_Download(t *testing.T) {
	engine := newTestEngine(t)
	h := newResumeHandler(t, &stubRenderer{output: []byte("%PDF-1.7 fake")})
	engine.GET("/resume/download", h.Download)

	w := get(t, engine, "/resume/download?locale=en", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), `resume-en.pdf`)
	assert.Equal(t, "%PDF-1.7 fake", w.Body.String())
}

func TestResumeHandler_Download_RendererFailure(t *testing.T) {
	engine := newTestEngine(t)
	h := newResumeHandler(t, &stubRenderer{err: assert.AnError})
	engine.GET("/resume/download", h.Download)

	w := get(t, engine, "/resume/download", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
