package blog

import (
	"io"
	"time"

	"git.home.luguber.info/inful/blogsmith/internal/document"
)

// Renderable is an opaque template handle; the compiler only references
// templates, rendering happens in the build collaborator.
type Renderable interface {
	Execute(w io.Writer, data any) error
}

// Resolver supplies renderable templates by group and name.
type Resolver interface {
	Template(group, name string) (Renderable, error)
}

// Page is one unit of compiled output bound to one file path.
type Page interface {
	// Path is the output path, forward-slash separated, no repeated slashes.
	Path() string
	// Template is the renderable handle for this page; nil for pass-through files.
	Template() Renderable
	// Layout is the outer layout handle; may be nil.
	Layout() Renderable
	// Links is the page's link-group map.
	Links() LinkMap
	// Variables yields the data a renderer needs.
	Variables() map[string]any
}

// PostPage wraps one document.
type PostPage struct {
	doc      document.Document
	path     string
	date     time.Time
	template Renderable
	layout   Renderable
	links    LinkMap
}

func (p *PostPage) Path() string         { return p.path }
func (p *PostPage) Template() Renderable { return p.template }
func (p *PostPage) Layout() Renderable   { return p.layout }
func (p *PostPage) Links() LinkMap       { return p.links }
func (p *PostPage) Date() time.Time      { return p.date }

// Document returns the wrapped content unit.
func (p *PostPage) Document() document.Document { return p.doc }

func (p *PostPage) Variables() map[string]any {
	return map[string]any{
		"title":   p.doc.Title,
		"date":    p.date,
		"tags":    p.doc.Tags,
		"content": p.doc.Content,
		"links":   p.links,
		"path":    p.path,
	}
}

// withPath returns a copy of the page bound to a different output path.
// Used by recent-post queries to emit absolute links outside the app tree.
func (p *PostPage) withPath(path string) *PostPage {
	clone := *p
	clone.path = path
	links := make(LinkMap, len(p.links))
	for k, v := range p.links {
		links[k] = v
	}
	clone.links = links
	return &clone
}

// ListPage is an ordered, bounded sequence of member pages.
type ListPage struct {
	members  []Page
	path     string
	index    bool
	number   int
	date     time.Time
	template Renderable
	layout   Renderable
	links    LinkMap
}

func (p *ListPage) Path() string         { return p.path }
func (p *ListPage) Template() Renderable { return p.template }
func (p *ListPage) Layout() Renderable   { return p.layout }
func (p *ListPage) Links() LinkMap       { return p.links }

// Index reports whether this is the first page of its paginated run.
func (p *ListPage) Index() bool { return p.index }

// Number is the 1-based position of this page within its run.
func (p *ListPage) Number() int { return p.number }

// Members returns the pages listed on this page, in selector order.
func (p *ListPage) Members() []Page { return p.members }

// Date is the date of the most recent member, used for listing ordering.
func (p *ListPage) Date() time.Time { return p.date }

func (p *ListPage) Variables() map[string]any {
	return map[string]any{
		"pages":  p.members,
		"index":  p.index,
		"number": p.number,
		"links":  p.links,
		"path":   p.path,
	}
}

// FeedPage is a syndication rendering of the first page of a run.
type FeedPage struct {
	source    *ListPage
	path      string
	mediaType string
	template  Renderable
}

func (p *FeedPage) Path() string         { return p.path }
func (p *FeedPage) Template() Renderable { return p.template }
func (p *FeedPage) Layout() Renderable   { return nil }
func (p *FeedPage) Links() LinkMap       { return p.source.Links() }

// MediaType is the feed's media type (e.g. application/rss+xml).
func (p *FeedPage) MediaType() string { return p.mediaType }

// Source returns the ListPage this feed is derived from.
func (p *FeedPage) Source() *ListPage { return p.source }

func (p *FeedPage) Variables() map[string]any {
	return map[string]any{
		"page":      p.source,
		"pages":     p.source.Members(),
		"mediaType": p.mediaType,
		"path":      p.path,
	}
}

// FilePage is an ancillary file passed through to the output tree untouched.
type FilePage struct {
	file document.File
}

// NewFilePage wraps a repository file for pass-through output.
func NewFilePage(file document.File) *FilePage {
	return &FilePage{file: file}
}

func (p *FilePage) Path() string         { return p.file.Path }
func (p *FilePage) Template() Renderable { return nil }
func (p *FilePage) Layout() Renderable   { return nil }
func (p *FilePage) Links() LinkMap       { return nil }

// SourcePath is the on-disk location of the pass-through file.
func (p *FilePage) SourcePath() string { return p.file.SourcePath }

func (p *FilePage) Variables() map[string]any {
	return map[string]any{"path": p.file.Path, "source": p.file.SourcePath}
}
