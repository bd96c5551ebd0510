package blog

import (
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"time"

	"git.home.luguber.info/inful/blogsmith/internal/document"
	"git.home.luguber.info/inful/blogsmith/internal/errors"
	"git.home.luguber.info/inful/blogsmith/internal/logfields"
)

// DateSource records where a document's effective date came from.
type DateSource int

const (
	// DateExplicit means the document carried a date in its metadata.
	DateExplicit DateSource = iota
	// DatePath means the date was parsed from a /YYYY/MM/DD/ path segment.
	DatePath
)

// SelectedDoc is a document with its effective date resolved once.
// Downstream components never re-parse paths.
type SelectedDoc struct {
	Doc    document.Document
	Date   time.Time
	Source DateSource
}

// datePathPattern matches a /YYYY/MM/DD/ style path segment.
var datePathPattern = regexp.MustCompile(`(?:^|/)(\d{4})/(\d{1,2})/(\d{1,2})/`)

// Select filters documents to those eligible for publication as of ref and
// orders them by effective date descending, most recent first. Documents
// lacking a derivable date are not blog posts and are excluded. Ties keep
// repository iteration order.
func Select(docs []document.Document, ref time.Time) ([]SelectedDoc, error) {
	selected := make([]SelectedDoc, 0, len(docs))

	for _, doc := range docs {
		sel, ok, err := resolveDate(doc)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if sel.Date.After(ref) {
			// Future-dated documents are withheld, not errored.
			slog.Debug("Withholding future-dated document", logfields.Path(doc.Path), slog.Time("date", sel.Date))
			continue
		}
		selected = append(selected, sel)
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Date.After(selected[j].Date)
	})

	return selected, nil
}

// resolveDate derives the effective date of a document. ok is false when the
// document has no derivable date at all (it is not a post).
func resolveDate(doc document.Document) (SelectedDoc, bool, error) {
	if date, present := doc.Date.Get(); present {
		return SelectedDoc{Doc: doc, Date: date, Source: DateExplicit}, true, nil
	}

	m := datePathPattern.FindStringSubmatch(doc.Path)
	if m == nil {
		return SelectedDoc{}, false, nil
	}

	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range components; a round trip catches
	// segments like 2024/13/41 that are date-shaped but not dates.
	if date.Year() != year || int(date.Month()) != month || date.Day() != day {
		return SelectedDoc{}, false, errors.DateParse(doc.Path,
			fmt.Errorf("path segment %s/%s/%s is not a calendar date", m[1], m[2], m[3]))
	}

	return SelectedDoc{Doc: doc, Date: date, Source: DatePath}, true, nil
}
