// Package web serves a tiny browser UI over the same JSON data file
// the CLI uses. Every request runs its own load-mutate-save cycle;
// there is no cross-request state and no file locking, so two
// simultaneous writers against the same file race (last save wins).
package web

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"os"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/tasklist/internal/model"
	"github.com/idilsaglam/tasklist/internal/store/jsonstore"
)

// Server handles the web UI for a single data file.
type Server struct {
	Path   string // data file path
	Addr   string // listen address, host:port
	Logger *log.Logger

	tmpl *template.Template
}

// New builds a Server for the given data file and listen address.
func New(path, addr string) *Server {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "todo-web",
	})
	return &Server{
		Path:   path,
		Addr:   addr,
		Logger: logger,
		tmpl:   template.Must(template.New("home").Parse(homeTemplate)),
	}
}

// ListenAndServe blocks serving the UI until the listener fails.
func (s *Server) ListenAndServe() error {
	s.Logger.Info("todo web app running", "addr", "http://"+s.Addr, "db", s.Path)
	return http.ListenAndServe(s.Addr, s)
}

// ServeHTTP dispatches on the resolved route.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rt := resolve(r.Method, r.URL.Path)

	var err error
	switch rt.kind {
	case routeList:
		err = s.handleList(w)
	case routeAdd:
		err = s.handleAdd(w, r)
	case routeDone:
		err = s.handleDone(w, r, rt.id)
	case routeDelete:
		err = s.handleDelete(w, r, rt.id)
	case routeBadID:
		http.Error(w, "invalid task ID", http.StatusBadRequest)
		s.Logger.Warn("bad request", "method", r.Method, "path", r.URL.Path)
		return
	default:
		http.NotFound(w, r)
		s.Logger.Warn("not found", "method", r.Method, "path", r.URL.Path)
		return
	}

	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.Logger.Info("handled", "method", r.Method, "path", r.URL.Path)
}

func (s *Server) renderError(w http.ResponseWriter, r *http.Request, err error) {
	var notFound *jsonstore.NotFoundError
	var invalid *jsonstore.ValidationError
	switch {
	case errors.As(err, &notFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.As(err, &invalid):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
	s.Logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)
}

func (s *Server) handleList(w http.ResponseWriter) error {
	tasks, err := jsonstore.Load(s.Path)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return s.tmpl.Execute(w, struct{ Tasks []model.Task }{jsonstore.Sorted(tasks)})
}

func (s *Server) handleAdd(w http.ResponseWriter, r *http.Request) error {
	if err := r.ParseForm(); err != nil {
		return &jsonstore.ValidationError{Reason: fmt.Sprintf("bad form body: %s", err)}
	}
	tasks, err := jsonstore.Load(s.Path)
	if err != nil {
		return err
	}
	tasks, _, err = jsonstore.Add(tasks, r.PostFormValue("title"))
	if err != nil {
		return err
	}
	if err := jsonstore.Save(s.Path, tasks); err != nil {
		return err
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
	return nil
}

func (s *Server) handleDone(w http.ResponseWriter, r *http.Request, id int) error {
	tasks, err := jsonstore.Load(s.Path)
	if err != nil {
		return err
	}
	tasks, err = jsonstore.MarkDone(tasks, id)
	if err != nil {
		return err
	}
	if err := jsonstore.Save(s.Path, tasks); err != nil {
		return err
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
	return nil
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request, id int) error {
	tasks, err := jsonstore.Load(s.Path)
	if err != nil {
		return err
	}
	tasks, err = jsonstore.Delete(tasks, id)
	if err != nil {
		return err
	}
	if err := jsonstore.Save(s.Path, tasks); err != nil {
		return err
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
	return nil
}
