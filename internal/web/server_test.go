// Package web tests the route table and the form-to-store bridge.
package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/idilsaglam/tasklist/internal/model"
	"github.com/idilsaglam/tasklist/internal/store/jsonstore"
)

func newTestServer(t *testing.T, tasks []model.Task) *Server {
	t.Helper()
	path := filepath.Join(t.TempDir(), "todos.json")
	if tasks != nil {
		if err := jsonstore.Save(path, tasks); err != nil {
			t.Fatal(err)
		}
	}
	return New(path, "127.0.0.1:0")
}

func postForm(t *testing.T, s *Server, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name, method, path string
		wantKind           routeKind
		wantID             int
	}{
		{"home", "GET", "/", routeList, 0},
		{"add", "POST", "/add", routeAdd, 0},
		{"done", "POST", "/done/7", routeDone, 7},
		{"delete", "POST", "/delete/12", routeDelete, 12},
		{"done bad id", "POST", "/done/abc", routeBadID, 0},
		{"delete empty id", "POST", "/delete/", routeBadID, 0},
		{"get add", "GET", "/add", routeUnknown, 0},
		{"unknown path", "POST", "/rename/3", routeUnknown, 0},
		{"get random", "GET", "/whatever", routeUnknown, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := resolve(tt.method, tt.path)
			if rt.kind != tt.wantKind || rt.id != tt.wantID {
				t.Errorf("resolve(%s %s): got {%v %d}, want {%v %d}",
					tt.method, tt.path, rt.kind, rt.id, tt.wantKind, tt.wantID)
			}
		})
	}
}

func TestHomeListsTasks(t *testing.T) {
	s := newTestServer(t, []model.Task{
		{ID: 2, Title: "second", Done: true},
		{ID: 1, Title: "first"},
	})
	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "first") || !strings.Contains(body, "second") {
		t.Errorf("page missing tasks:\n%s", body)
	}
	// Ascending ID order regardless of file order.
	if strings.Index(body, "first") > strings.Index(body, "second") {
		t.Error("tasks not in ascending ID order")
	}
	// Done task keeps its Delete button but loses the Done button.
	if strings.Contains(body, `action="/done/2"`) {
		t.Error("done task should not offer a Done button")
	}
	if !strings.Contains(body, `action="/delete/2"`) {
		t.Error("done task should still offer a Delete button")
	}
}

func TestHomeEmpty(t *testing.T) {
	s := newTestServer(t, nil)
	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "No todos yet.") {
		t.Error("empty page missing placeholder")
	}
}

func TestAddPersistsAndRedirects(t *testing.T) {
	s := newTestServer(t, nil)
	rec := postForm(t, s, "/add", url.Values{"title": {"Buy milk"}})

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("redirect: got %q, want /", loc)
	}
	tasks, err := jsonstore.Load(s.Path)
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 1 || tasks[0].ID != 1 || tasks[0].Title != "Buy milk" || tasks[0].Done {
		t.Errorf("persisted tasks: %+v", tasks)
	}
}

func TestAddEmptyTitleRejected(t *testing.T) {
	s := newTestServer(t, nil)
	rec := postForm(t, s, "/add", url.Values{"title": {"   "}})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}
	tasks, err := jsonstore.Load(s.Path)
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 0 {
		t.Errorf("empty title was persisted: %+v", tasks)
	}
}

func TestDoneAndDelete(t *testing.T) {
	s := newTestServer(t, []model.Task{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}})

	rec := postForm(t, s, "/done/1", nil)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("done status: got %d, want 303", rec.Code)
	}
	tasks, _ := jsonstore.Load(s.Path)
	if !tasks[0].Done || tasks[1].Done {
		t.Errorf("after done: %+v", tasks)
	}

	rec = postForm(t, s, "/delete/1", nil)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("delete status: got %d, want 303", rec.Code)
	}
	tasks, _ = jsonstore.Load(s.Path)
	if len(tasks) != 1 || tasks[0].ID != 2 {
		t.Errorf("after delete: %+v", tasks)
	}
}

func TestErrorStatuses(t *testing.T) {
	tests := []struct {
		name, path string
		wantStatus int
	}{
		{"malformed done id", "/done/xyz", http.StatusBadRequest},
		{"malformed delete id", "/delete/1.5", http.StatusBadRequest},
		{"unknown done id", "/done/99", http.StatusNotFound},
		{"unknown delete id", "/delete/99", http.StatusNotFound},
		{"unknown route", "/rename/1", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, []model.Task{{ID: 1, Title: "a"}})
			rec := postForm(t, s, tt.path, nil)
			if rec.Code != tt.wantStatus {
				t.Errorf("status: got %d, want %d", rec.Code, tt.wantStatus)
			}
			tasks, err := jsonstore.Load(s.Path)
			if err != nil {
				t.Fatal(err)
			}
			if len(tasks) != 1 || tasks[0].Done {
				t.Errorf("failed request mutated the file: %+v", tasks)
			}
		})
	}
}
