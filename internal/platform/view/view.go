// Package view renderiza los modelos de cada request como HTML (templates
// embebidos) o JSON, según el header Accept.
package view

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/render"
)

// Identificadores de vistas conocidos por los handlers.
const (
	CreateOrUpdateVisitForm = "pets/createOrUpdateVisitForm"
	UpdateVisitForm         = "pets/updateVisitForm"
)

var ErrUnknownView = errors.New("unknown view")

//go:embed templates
var templatesFS embed.FS

type Renderer interface {
	Render(w http.ResponseWriter, r *http.Request, status int, name string, model any) error
}

type Templates struct {
	views map[string]*template.Template
}

// New parsea cada página de templates/ junto con el layout.
func New() (*Templates, error) {
	pages, err := fs.Glob(templatesFS, "templates/*/*.html")
	if err != nil {
		return nil, err
	}

	views := make(map[string]*template.Template, len(pages))
	for _, p := range pages {
		name := strings.TrimSuffix(strings.TrimPrefix(p, "templates/"), path.Ext(p))
		t, err := template.New("layout.html").ParseFS(templatesFS, "templates/layout.html", p)
		if err != nil {
			return nil, fmt.Errorf("parse view %s: %w", name, err)
		}
		views[name] = t
	}
	return &Templates{views: views}, nil
}

// MustNew es New para el wiring del router; los templates vienen embebidos,
// así que un error acá es un bug de build.
func MustNew() *Templates {
	t, err := New()
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Templates) Render(w http.ResponseWriter, r *http.Request, status int, name string, model any) error {
	tmpl, ok := t.views[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownView, name)
	}

	if WantsJSON(r) {
		render.Status(r, status)
		render.JSON(w, r, model)
		return nil
	}

	// Ejecutamos en buffer para no mandar un 200 con HTML a medias.
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", model); err != nil {
		return fmt.Errorf("execute view %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

func WantsJSON(r *http.Request) bool {
	return render.GetAcceptedContentType(r) == render.ContentTypeJSON
}
