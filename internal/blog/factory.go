package blog

import (
	"path"
	"strings"
)

// PageFactory converts selected documents into post pages.
type PageFactory struct {
	pageExtension string
	templates     Resolver
}

// NewPageFactory creates a factory emitting pages with the given output
// extension ("html" when empty).
func NewPageFactory(pageExtension string, templates Resolver) *PageFactory {
	if pageExtension == "" {
		pageExtension = "html"
	}
	return &PageFactory{pageExtension: strings.TrimPrefix(pageExtension, "."), templates: templates}
}

// PostPage builds the output page for one selector-filtered document.
func (f *PageFactory) PostPage(sel SelectedDoc) (*PostPage, error) {
	tmpl, err := f.templates.Template("blog", "post")
	if err != nil {
		return nil, err
	}
	layout, err := f.templates.Template("layout", "default")
	if err != nil {
		return nil, err
	}

	links := LinkMap{}
	if tags := tagLinks(sel.Doc.Tags); len(tags) > 0 {
		links.SetGroup("tags", tags)
	}
	if len(sel.Doc.Crossposts) > 0 {
		crossposts := make([]Link, 0, len(sel.Doc.Crossposts))
		for _, cp := range sel.Doc.Crossposts {
			crossposts = append(crossposts, Link{Text: cp.Text, Href: cp.URL})
		}
		links.SetGroup("crossposts", crossposts)
	}

	return &PostPage{
		doc:      sel.Doc,
		path:     f.outputPath(sel.Doc.Path),
		date:     sel.Date,
		template: tmpl,
		layout:   layout,
		links:    links,
	}, nil
}

// outputPath swaps the source extension for the page extension and collapses
// any repeated path separators.
func (f *PageFactory) outputPath(docPath string) string {
	base := strings.TrimSuffix(docPath, path.Ext(docPath))
	return CollapseSlashes(base + "." + f.pageExtension)
}

func tagLinks(tags []string) []Link {
	links := make([]Link, 0, len(tags))
	for _, tag := range tags {
		links = append(links, Link{Text: tag, Href: TagHref(tag)})
	}
	return links
}

// CollapseSlashes squeezes runs of forward slashes down to one.
func CollapseSlashes(p string) string {
	for strings.Contains(p, "//") {
		p = strings.ReplaceAll(p, "//", "/")
	}
	return p
}
