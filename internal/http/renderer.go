package httpx

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	corefuncs "github.com/target/salonbook-ui/internal/http/templates/core"
)

// Top-level templates the renderer executes by name.
const (
	layoutTemplate      = "layout"
	errorLayoutTemplate = "error-layout"
)

// templateGlobs lists every template file relative to the template root.
var templateGlobs = []string{"*.tmpl", "pages/*.tmpl", "partials/*.tmpl"}

// TemplateRenderer executes the parsed dashboard templates.
type TemplateRenderer struct {
	t      *template.Template
	logger *slog.Logger
}

type TemplateRendererConfig struct {
	TemplateFS fs.FS // required
	Logger     *slog.Logger
	// Now overrides the clock behind the relative-time helpers (tests).
	Now func() time.Time
}

// NewTemplateRenderer parses all templates once. Parse errors are fatal for the UI.
func NewTemplateRenderer(cfg TemplateRendererConfig) (*TemplateRenderer, error) {
	if cfg.TemplateFS == nil {
		return nil, errors.New("template filesystem is required")
	}

	// The func map needs the finished template set (for "section" dispatch),
	// so it closes over t before t is assigned.
	var t *template.Template
	funcs := corefuncs.Funcs(corefuncs.Deps{
		Template:           &t,
		ContentTemplateFor: ContentTemplateFor,
		Now:                cfg.Now,
	})
	parsed, err := template.New("root").Funcs(funcs).ParseFS(cfg.TemplateFS, templateGlobs...)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	t = parsed
	return &TemplateRenderer{t: t, logger: cfg.Logger}, nil
}

// RenderFull renders a page inside the site layout.
func (r *TemplateRenderer) RenderFull(w http.ResponseWriter, _ *http.Request, data any) error {
	return r.execute(w, layoutTemplate, data)
}

// RenderError renders the standalone error layout (404, 500, access denied).
func (r *TemplateRenderer) RenderError(w http.ResponseWriter, _ *http.Request, data any) error {
	return r.execute(w, errorLayoutTemplate, data)
}

// RenderFragment renders one named template, e.g. "dashboard-region" or a section.
func (r *TemplateRenderer) RenderFragment(w http.ResponseWriter, name string, data any) error {
	return r.execute(w, name, data)
}

// execute buffers the output so a failing template never leaves a half-written page.
func (r *TemplateRenderer) execute(w http.ResponseWriter, name string, data any) error {
	var buf bytes.Buffer
	if err := r.t.ExecuteTemplate(&buf, name, data); err != nil {
		r.logError("template execution failed", name, err)
		return err
	}
	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
	}
	if _, err := buf.WriteTo(w); err != nil {
		r.logError("template write failed", name, err)
		return err
	}
	return nil
}

func (r *TemplateRenderer) logError(msg, name string, err error) {
	if r.logger == nil {
		return
	}
	r.logger.Error(msg, slog.String("template", name), slog.Any("error", err))
}
