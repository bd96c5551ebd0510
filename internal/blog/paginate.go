package blog

import (
	"fmt"

	"git.home.luguber.info/inful/blogsmith/internal/errors"
)

// RunSpec configures one paginated run.
type RunSpec struct {
	PageSize     int
	IndexPath    string // output path of page 1
	NumberedPath string // fmt template with a %d verb for pages 2..N
	FeedBase     string // run-scoped base for feed paths (FeedBase + "." + key)
	Template     Renderable
	Layout       Renderable
}

// Paginate splits members into contiguous chunks of at most PageSize pages,
// preserving order. Page 1 takes the run's index path; page k>1 takes the
// numbered path template evaluated at k. An empty sequence yields no pages.
func Paginate(members []Page, spec RunSpec) ([]*ListPage, error) {
	if spec.PageSize <= 0 {
		return nil, errors.PageSizeInvalid(spec.PageSize)
	}
	if len(members) == 0 {
		return nil, nil
	}

	var run []*ListPage
	for start := 0; start < len(members); start += spec.PageSize {
		end := start + spec.PageSize
		if end > len(members) {
			end = len(members)
		}
		number := len(run) + 1

		outPath := spec.IndexPath
		if number > 1 {
			outPath = fmt.Sprintf(spec.NumberedPath, number)
		}

		page := &ListPage{
			members:  members[start:end],
			path:     CollapseSlashes(outPath),
			index:    number == 1,
			number:   number,
			template: spec.Template,
			layout:   spec.Layout,
			links:    LinkMap{},
		}
		if dated, ok := members[start].(*PostPage); ok {
			page.date = dated.Date()
		}
		run = append(run, page)
	}

	return run, nil
}
