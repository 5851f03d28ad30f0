package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leonardomurakami/murakams-home/internal/app"
	"github.com/leonardomurakami/murakams-home/internal/domain"
)

func newProjectsHandler(lister *stubLister, store *stubProjectStore) *ProjectsHandler {
	service := app.NewProjectService(app.ProjectServiceConfig{
		Lister: lister,
		Store:  store,
	})

	return NewProjectsHandler(service, testMeta())
}

func TestProjectsHandler_List(t *testing.T) {
	engine := newTestEngine(t)
	h := newProjectsHandler(
		&stubLister{projects: []domain.Project{
			{Name: "repo-a", Source: domain.SourceGitHub},
		}},
		&stubProjectStore{projects: []domain.Project{
			{Name: "local-b", Source: domain.SourceLocal},
		}},
	)
	engine.GET("/projects", h.List)

	w := get(t, engine, "/projects", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "projects count=2")
}

func TestProjectsHandler_List_WithQuery(t *testing.T) {
	engine := newTestEngine(t)
	h := newProjectsHandler(
		&stubLister{projects: []domain.Project{
			{Name: "go-service", Language: "Go"},
			{Name: "py-scripts", Language: "Python"},
		}},
		&stubProjectStore{},
	)
	engine.GET("/projects", h.List)

	w := get(t, engine, "/projects?q=go", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "projects count=1 q=go")
}

func TestProjectsHandler_List_UpstreamDownStillRenders(t *testing.T) {
	engine := newTestEngine(t)
	h := newProjectsHandler(
		&stubLister{err: domain.NewUnavailableError("github", "down")},
		&stubProjectStore{projects: []domain.Project{
			{Name: "local-only"},
		}},
	)
	engine.GET("/projects", h.List)

	w := get(t, engine, "/projects", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "projects count=1")
}

func TestProjectsHandler_Search_Fragment(t *testing.T) {
	engine := newTestEngine(t)
	h := newProjectsHandler(
		&stubLister{projects: []domain.Project{
			{Name: "go-service", Language: "Go"},
			{Name: "py-scripts", Language: "Python"},
		}},
		&stubProjectStore{},
	)
	engine.GET("/projects/search", h.Search)

	w := get(t, engine, "/projects/search?q=python", map[string]string{"HX-Request": "true"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "fragment count=1")
}

func TestProjectsHandler_Featured_Fragment(t *testing.T) {
	engine := newTestEngine(t)
	h := newProjectsHandler(
		&stubLister{projects: []domain.Project{
			{Name: "a", Stars: 5},
			{Name: "b", Stars: 50},
			{Name: "c", Stars: 1},
			{Name: "d", Stars: 9},
		}},
		&stubProjectStore{},
	)
	engine.GET("/projects/featured", h.Featured)

	w := get(t, engine, "/projects/featured", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "fragment count=3")
}
