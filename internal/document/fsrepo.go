package document

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"git.home.luguber.info/inful/blogsmith/internal/errors"
	"git.home.luguber.info/inful/blogsmith/internal/frontmatter"
	"git.home.luguber.info/inful/blogsmith/internal/logfields"
)

// FSRepository reads documents from a content directory on disk.
//
// Documents are markdown files with optional YAML front matter; everything
// else under the tree is an ancillary file.
type FSRepository struct {
	root      string
	extension string
}

// NewFSRepository creates a repository rooted at dir. Documents carry the
// given source extension (".md" when empty).
func NewFSRepository(dir, extension string) *FSRepository {
	if extension == "" {
		extension = ".md"
	}
	return &FSRepository{root: dir, extension: extension}
}

// ListDocuments walks the content tree and parses every document file.
// Iteration order is the lexical walk order of the tree, which keeps
// repository order deterministic across passes.
func (r *FSRepository) ListDocuments() ([]Document, error) {
	var docs []Document

	err := filepath.WalkDir(r.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != r.root {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), r.extension) {
			return nil
		}

		doc, err := r.readDocument(path)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return nil, errors.RepositoryFailure(err)
	}

	slog.Debug("Documents listed", logfields.Documents(len(docs)), logfields.Path(r.root))
	return docs, nil
}

func (r *FSRepository) readDocument(path string) (Document, error) {
	// #nosec G304 -- path comes from walking the configured content root.
	content, err := os.ReadFile(path)
	if err != nil {
		return Document{}, err
	}

	fm, body, _, err := frontmatter.Split(content)
	if err != nil {
		return Document{}, err
	}
	meta, err := frontmatter.DecodeMeta(fm)
	if err != nil {
		return Document{}, err
	}

	rel, err := filepath.Rel(r.root, path)
	if err != nil {
		return Document{}, err
	}
	relPath := filepath.ToSlash(rel)

	title := meta.Title
	if title == "" {
		base := filepath.Base(path)
		title = strings.TrimSuffix(base, filepath.Ext(base))
	}

	return Document{
		Path:       relPath,
		Title:      title,
		Tags:       meta.Tags,
		Date:       meta.Date,
		Content:    body,
		Crossposts: meta.Crossposts,
	}, nil
}

// ListAncillaryFiles returns non-document files under pathPrefix, sorted by
// output path for deterministic ordering.
func (r *FSRepository) ListAncillaryFiles(pathPrefix string) ([]File, error) {
	base := filepath.Join(r.root, filepath.FromSlash(pathPrefix))
	if _, err := os.Stat(base); os.IsNotExist(err) {
		return nil, nil
	}

	var files []File
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != base {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), r.extension) {
			return nil
		}
		rel, err := filepath.Rel(r.root, path)
		if err != nil {
			return err
		}
		files = append(files, File{
			Path:       filepath.ToSlash(rel),
			SourcePath: path,
		})
		return nil
	})
	if err != nil {
		return nil, errors.RepositoryFailure(err)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}
