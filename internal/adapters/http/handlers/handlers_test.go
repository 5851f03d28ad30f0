package handlers

import (
	"context"
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/leonardomurakami/murakams-home/internal/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testTemplates defines minimal stand-ins for the real templates so handler
// tests can assert on template selection and data without the web/ tree.
const testTemplates = `
{{define "pages/home.html"}}home active={{.Active}} theme={{.Theme}}{{end}}
{{define "pages/about.html"}}about active={{.Active}}{{end}}
{{define "pages/projects.html"}}projects count={{len .Projects}} q={{.Query}}{{end}}
{{define "pages/contact.html"}}contact success={{.Success}} error={{.Error}}{{end}}
{{define "pages/resume.html"}}resume name={{.Resume.Name}} locale={{.Resume.Locale}}{{end}}
{{define "pages/error.html"}}error status={{.Status}}{{end}}
{{define "components/project_list.html"}}fragment count={{len .Projects}}{{end}}
{{define "components/contact_result.html"}}result success={{.Success}} error={{.Error}}{{end}}
`

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()

	engine := gin.New()
	engine.SetHTMLTemplate(template.Must(template.New("").Parse(testTemplates)))

	return engine
}

func testMeta() SiteMeta {
	return SiteMeta{Name: "murakams-home", Version: "test"}
}

func get(t *testing.T, engine *gin.Engine, path string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	engine.ServeHTTP(w, req)

	return w
}

func postForm(t *testing.T, engine *gin.Engine, path string, form url.Values, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	engine.ServeHTTP(w, req)

	return w
}

// stubLister is a test double for ports.RepositoryLister.
type stubLister struct {
	projects []domain.Project
	err      error
}

func (s *stubLister) ListRepositories(_ context.Context) ([]domain.Project, error) {
	return s.projects, s.err
}

func (s *stubLister) RepositoryLanguages(_ context.Context, _ string) (map[string]int64, error) {
	return nil, domain.ErrNotFound
}

// stubProjectStore is a test double for ports.ProjectStore.
type stubProjectStore struct {
	projects []domain.Project
}

func (s *stubProjectStore) ListProjects(_ context.Context) ([]domain.Project, error) {
	return s.projects, nil
}

func (s *stubProjectStore) SaveProject(_ context.Context, _ *domain.Project) error {
	return nil
}

// stubContactStore is a test double for ports.ContactStore.
type stubContactStore struct {
	saved []*domain.ContactSubmission
	err   error
}

func (s *stubContactStore) SaveSubmission(_ context.Context, submission *domain.ContactSubmission) error {
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, submission)
	return nil
}

// stubMailer is a test double for ports.Mailer.
type stubMailer struct {
	sent []*domain.ContactSubmission
	err  error
}

func (s *stubMailer) SendContactNotification(_ context.Context, submission *domain.ContactSubmission) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, submission)
	return nil
}

// stubRenderer is a test double for ports.ResumeRenderer.
type stubRenderer struct {
	output []byte
	err    error
}

func (s *stubRenderer) RenderPDF(_ *domain.Resume) ([]byte, error) {
	return s.output, s.err
}
