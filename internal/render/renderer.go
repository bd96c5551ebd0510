// Package render is the build collaborator consuming a compiled page set:
// it converts post bodies to HTML, executes page templates, and writes the
// output tree through an atomic staging-directory promote.
package render

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	htmltemplate "html/template"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"git.home.luguber.info/inful/blogsmith/internal/blog"
	"git.home.luguber.info/inful/blogsmith/internal/errors"
	"git.home.luguber.info/inful/blogsmith/internal/logfields"
	"git.home.luguber.info/inful/blogsmith/internal/metrics"
	"git.home.luguber.info/inful/blogsmith/internal/state"
)

// SiteVars are site-wide variables merged into every page's template data.
type SiteVars struct {
	Title   string
	URLRoot string
}

// Renderer writes a compiled page set to an output directory.
type Renderer struct {
	outputDir string
	stageDir  string
	site      SiteVars
	markdown  goldmark.Markdown
	recorder  metrics.Recorder
}

// Option customizes a Renderer.
type Option func(*Renderer)

// WithRecorder injects a metrics recorder (default: no-op).
func WithRecorder(r metrics.Recorder) Option {
	return func(rd *Renderer) { rd.recorder = r }
}

// New creates a renderer targeting outputDir.
func New(outputDir string, site SiteVars, opts ...Option) *Renderer {
	r := &Renderer{
		outputDir: outputDir,
		site:      site,
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
		recorder: metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render writes every page into a staging directory and promotes it to the
// output directory on success. It returns the rendered pages with their
// content hashes for the build log.
func (r *Renderer) Render(pages []blog.Page) ([]state.RenderedPage, error) {
	start := time.Now()
	rendered, err := r.render(pages)
	r.recorder.ObserveRenderDuration(time.Since(start))
	return rendered, err
}

func (r *Renderer) render(pages []blog.Page) ([]state.RenderedPage, error) {
	if err := r.beginStaging(); err != nil {
		return nil, errors.OutputError("stage", err)
	}

	rendered := make([]state.RenderedPage, 0, len(pages))
	for _, page := range pages {
		content, err := r.renderPage(page)
		if err != nil {
			r.abortStaging()
			return nil, err
		}
		if err := r.writePage(page.Path(), content); err != nil {
			r.abortStaging()
			return nil, errors.OutputError("write", err)
		}
		sum := sha256.Sum256(content)
		rendered = append(rendered, state.RenderedPage{
			Path: page.Path(),
			Hash: hex.EncodeToString(sum[:]),
		})
	}

	if err := r.finalizeStaging(); err != nil {
		r.abortStaging()
		return nil, errors.OutputError("promote", err)
	}

	slog.Info("Rendered page set", logfields.Pages(len(rendered)), logfields.Path(r.outputDir))
	return rendered, nil
}

func (r *Renderer) renderPage(page blog.Page) ([]byte, error) {
	if file, ok := page.(*blog.FilePage); ok {
		// #nosec G304 -- source paths come from the document repository walk.
		content, err := os.ReadFile(file.SourcePath())
		if err != nil {
			return nil, errors.RenderFailed(page.Path(), err)
		}
		return content, nil
	}

	vars := page.Variables()
	vars["site"] = map[string]any{
		"title": r.site.Title,
		"url":   r.site.URLRoot,
	}

	// Post bodies are Markdown; convert before template execution.
	if raw, ok := vars["content"].([]byte); ok {
		var buf bytes.Buffer
		if err := r.markdown.Convert(raw, &buf); err != nil {
			return nil, errors.RenderFailed(page.Path(), err)
		}
		vars["content"] = htmltemplate.HTML(buf.String()) // #nosec G203 -- output of the markdown renderer
	}

	var body bytes.Buffer
	if err := page.Template().Execute(&body, vars); err != nil {
		return nil, errors.RenderFailed(page.Path(), err)
	}

	if layout := page.Layout(); layout != nil {
		inner := body.String()
		body.Reset()
		vars["content"] = htmltemplate.HTML(inner) // #nosec G203 -- already escaped by the page template
		if err := layout.Execute(&body, vars); err != nil {
			return nil, errors.RenderFailed(page.Path(), err)
		}
	}

	return body.Bytes(), nil
}

func (r *Renderer) writePage(outPath string, content []byte) error {
	dest := filepath.Join(r.stageDir, filepath.FromSlash(outPath))
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	// #nosec G306 -- generated site files are public
	return os.WriteFile(dest, content, 0o644)
}

// beginStaging creates an isolated staging directory for atomic build output.
func (r *Renderer) beginStaging() error {
	stage := r.outputDir + "_stage"
	if err := os.RemoveAll(stage); err != nil {
		return err
	}
	if err := os.MkdirAll(stage, 0o755); err != nil {
		return err
	}
	r.stageDir = stage
	slog.Debug("Initialized staging directory", "staging", stage, "final", r.outputDir)
	return nil
}

// finalizeStaging promotes the staging directory to the final output location:
// the existing output (if any) moves aside to <output>.prev, staging renames
// into place, and the backup is removed best effort.
func (r *Renderer) finalizeStaging() error {
	if r.stageDir == "" {
		return errors.New(errors.CategoryInternal, errors.SeverityFatal, "no staging directory initialized")
	}

	prev := r.outputDir + ".prev"
	if err := os.RemoveAll(prev); err != nil {
		return err
	}
	if _, err := os.Stat(r.outputDir); err == nil {
		if err := os.Rename(r.outputDir, prev); err != nil {
			return err
		}
	}
	if err := os.Rename(r.stageDir, r.outputDir); err != nil {
		return err
	}
	r.stageDir = ""
	if err := os.RemoveAll(prev); err != nil {
		slog.Warn("Failed to remove previous output backup", logfields.Path(prev), logfields.Error(err))
	}
	slog.Debug("Promoted staging directory", "output", r.outputDir)
	return nil
}

// abortStaging removes any staging directory after a failed render to avoid
// orphaned temp dirs.
func (r *Renderer) abortStaging() {
	if r.stageDir == "" {
		return
	}
	dir := r.stageDir
	r.stageDir = ""
	if err := os.RemoveAll(dir); err != nil {
		slog.Warn("Failed to remove staging directory after abort", "staging", dir, logfields.Error(err))
	}
}
