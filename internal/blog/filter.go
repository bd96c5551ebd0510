package blog

import (
	"strings"

	"git.home.luguber.info/inful/blogsmith/internal/errors"
)

// Directive is one index-filtering rule: include or exclude posts carrying a tag.
type Directive struct {
	Include bool
	Tag     string
}

// ParseDirectives parses directive strings: "-tag" excludes, "+tag" or a bare
// tag includes. Order is significant, the last matching directive wins.
func ParseDirectives(specs []string) ([]Directive, error) {
	directives := make([]Directive, 0, len(specs))
	for _, spec := range specs {
		spec = strings.TrimSpace(spec)
		if spec == "" || spec == "+" || spec == "-" {
			return nil, errors.ConfigInvalid("index_tags", "empty tag directive")
		}
		switch spec[0] {
		case '-':
			directives = append(directives, Directive{Include: false, Tag: spec[1:]})
		case '+':
			directives = append(directives, Directive{Include: true, Tag: spec[1:]})
		default:
			directives = append(directives, Directive{Include: true, Tag: spec})
		}
	}
	return directives, nil
}

// FilterByDirectives applies index-tag filtering. Every post starts included;
// each directive whose tag the post carries overwrites the inclusion flag.
// Pure function of directives and tags, so applying it twice is a no-op.
func FilterByDirectives(posts []*PostPage, directives []Directive) []*PostPage {
	if len(directives) == 0 {
		return posts
	}

	filtered := make([]*PostPage, 0, len(posts))
	for _, post := range posts {
		included := true
		for _, d := range directives {
			if post.Document().HasTag(d.Tag) {
				included = d.Include
			}
		}
		if included {
			filtered = append(filtered, post)
		}
	}
	return filtered
}
