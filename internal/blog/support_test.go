package blog

import (
	"io"
	"time"

	"git.home.luguber.info/inful/blogsmith/internal/document"
	"git.home.luguber.info/inful/blogsmith/internal/errors"
	"git.home.luguber.info/inful/blogsmith/internal/foundation"
)

// staticRepo is an in-memory document.Repository for compiler tests.
type staticRepo struct {
	docs  []document.Document
	files []document.File
	err   error
}

func (r *staticRepo) ListDocuments() ([]document.Document, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.docs, nil
}

func (r *staticRepo) ListAncillaryFiles(string) ([]document.File, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.files, nil
}

// fakeTemplate satisfies Renderable without rendering anything.
type fakeTemplate struct{ id string }

func (fakeTemplate) Execute(io.Writer, any) error { return nil }

// fakeResolver resolves every template unless marked missing.
type fakeResolver struct{ missing map[string]bool }

func (r fakeResolver) Template(group, name string) (Renderable, error) {
	key := group + "/" + name
	if r.missing[key] {
		return nil, errors.TemplateMissing(group, name)
	}
	return fakeTemplate{id: key}, nil
}

func datedDoc(path, date string, tags ...string) document.Document {
	d := document.Document{Path: path, Title: path, Tags: tags, Date: foundation.None[time.Time]()}
	if date != "" {
		t, err := time.Parse("2006-01-02", date)
		if err != nil {
			panic(err)
		}
		d.Date = foundation.Some(t)
	}
	return d
}

func day(date string) time.Time {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return t
}

func mustPosts(docs []document.Document, ref time.Time) []*PostPage {
	selected, err := Select(docs, ref)
	if err != nil {
		panic(err)
	}
	factory := NewPageFactory("html", fakeResolver{})
	posts := make([]*PostPage, 0, len(selected))
	for _, sel := range selected {
		post, err := factory.PostPage(sel)
		if err != nil {
			panic(err)
		}
		posts = append(posts, post)
	}
	return posts
}
