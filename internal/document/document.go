// Package document defines the content units the compiler consumes and the
// repository boundary that supplies them.
package document

import (
	"time"

	"git.home.luguber.info/inful/blogsmith/internal/foundation"
	"git.home.luguber.info/inful/blogsmith/internal/frontmatter"
)

// Document is one content unit, immutable once read for a compilation pass.
type Document struct {
	Path       string // repository-relative, forward-slash separated
	Title      string
	Tags       []string
	Date       foundation.Option[time.Time]
	Content    []byte
	Crossposts []frontmatter.Crosspost
}

// HasTag reports whether the document carries the given tag.
func (d Document) HasTag(tag string) bool {
	for _, t := range d.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// File is a non-document asset living alongside posts, passed through to the
// output tree untransformed.
type File struct {
	Path       string // output-relative path
	SourcePath string // absolute path on disk
}

// Repository yields the already-parsed documents of one content application.
type Repository interface {
	// ListDocuments returns every document in the repository, in repository
	// iteration order. Errors are I/O failures and propagate unchanged.
	ListDocuments() ([]Document, error)

	// ListAncillaryFiles returns non-document files under the given
	// repository-relative path prefix.
	ListAncillaryFiles(pathPrefix string) ([]File, error)
}
