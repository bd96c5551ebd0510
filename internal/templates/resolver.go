// Package templates resolves renderable template handles by group and name.
//
// The compiler only references templates; rendering happens in the render
// package. Feed templates produce XML and use text/template, every other
// group uses html/template.
package templates

import (
	htmltemplate "html/template"
	"os"
	"path/filepath"
	"sync"
	texttemplate "text/template"

	"git.home.luguber.info/inful/blogsmith/internal/blog"
	"git.home.luguber.info/inful/blogsmith/internal/errors"
)

// DirResolver loads templates from <root>/<group>/<name>.tmpl, caching parsed
// handles for the lifetime of the resolver.
type DirResolver struct {
	root string

	mu    sync.Mutex
	cache map[string]blog.Renderable
}

// NewDirResolver creates a resolver rooted at dir.
func NewDirResolver(dir string) *DirResolver {
	return &DirResolver{root: dir, cache: make(map[string]blog.Renderable)}
}

// Template resolves one template handle. A template that does not resolve is
// a configuration error.
func (r *DirResolver) Template(group, name string) (blog.Renderable, error) {
	key := group + "/" + name

	r.mu.Lock()
	defer r.mu.Unlock()
	if tmpl, ok := r.cache[key]; ok {
		return tmpl, nil
	}

	path := filepath.Join(r.root, group, name+".tmpl")
	data, err := os.ReadFile(path) // #nosec G304 -- path is rooted at the configured template dir
	if err != nil {
		return nil, errors.TemplateMissing(group, name)
	}

	var tmpl blog.Renderable
	if group == "feed" {
		parsed, err := texttemplate.New(key).Parse(string(data))
		if err != nil {
			return nil, errors.Wrap(err, errors.CategoryTemplate, errors.SeverityFatal, "parse template").
				WithContext("template", key)
		}
		tmpl = parsed
	} else {
		parsed, err := htmltemplate.New(key).Parse(string(data))
		if err != nil {
			return nil, errors.Wrap(err, errors.CategoryTemplate, errors.SeverityFatal, "parse template").
				WithContext("template", key)
		}
		tmpl = parsed
	}

	r.cache[key] = tmpl
	return tmpl, nil
}
