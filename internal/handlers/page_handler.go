package handlers

import (
	"html/template"
	"log"
	"net/http"

	"caderneta-backend/internal/config"
	"caderneta-backend/internal/viewstate"
	"caderneta-backend/templates"

	"github.com/gorilla/mux"
)

// PageHandler serves the embedded HTML shells. The pages talk to the
// JSON API with the session token kept client-side, so the handler only
// injects static page data (config warning, record ID, initial mode).
type PageHandler struct {
	Cfg  *config.Config
	tmpl *template.Template
}

func NewPageHandler(cfg *config.Config) *PageHandler {
	tmpl := template.Must(template.ParseFS(templates.FS, "*.html"))
	return &PageHandler{Cfg: cfg, tmpl: tmpl}
}

func (h *PageHandler) render(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("pages: render %s: %v", name, err)
	}
}

func (h *PageHandler) Login(w http.ResponseWriter, r *http.Request) {
	h.render(w, "login.html", map[string]interface{}{
		"Configured": h.Cfg.Configured(),
		"Warning":    h.Cfg.MissingConfigWarning(),
	})
}

func (h *PageHandler) Persons(w http.ResponseWriter, r *http.Request) {
	h.render(w, "persons.html", nil)
}

func (h *PageHandler) NewPerson(w http.ResponseWriter, r *http.Request) {
	h.render(w, "person_new.html", nil)
}

func (h *PageHandler) PersonDetail(w http.ResponseWriter, r *http.Request) {
	// The mode parameter only ever selects viewing or editing; delete
	// confirmation cannot be entered from a URL.
	mode := viewstate.ParseMode(r.URL.Query().Get("mode"))
	h.render(w, "person_detail.html", map[string]interface{}{
		"ID":      mux.Vars(r)["id"],
		"Editing": mode == viewstate.Editing,
	})
}
