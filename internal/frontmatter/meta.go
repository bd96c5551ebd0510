package frontmatter

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/blogsmith/internal/foundation"
)

// Crosspost is an external mirror of a post, surfaced as a link group.
type Crosspost struct {
	Text string `yaml:"text"`
	URL  string `yaml:"url"`
}

// Meta is the typed front matter of one document.
type Meta struct {
	Title      string
	Date       foundation.Option[time.Time]
	Tags       []string
	Crossposts []Crosspost
}

// dateLayouts are the accepted explicit-date formats, tried in order.
var dateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02 15:04:05"}

type rawMeta struct {
	Title      string      `yaml:"title"`
	Date       string      `yaml:"date"`
	Tags       []string    `yaml:"tags"`
	Crossposts []Crosspost `yaml:"crossposts"`
}

// DecodeMeta parses raw YAML front matter (without --- delimiters) into Meta.
func DecodeMeta(frontmatter []byte) (Meta, error) {
	var raw rawMeta
	if len(frontmatter) > 0 {
		if err := yaml.Unmarshal(frontmatter, &raw); err != nil {
			return Meta{}, fmt.Errorf("decode frontmatter: %w", err)
		}
	}

	meta := Meta{
		Title:      raw.Title,
		Date:       foundation.None[time.Time](),
		Tags:       raw.Tags,
		Crossposts: raw.Crossposts,
	}

	if raw.Date != "" {
		parsed, err := parseDate(raw.Date)
		if err != nil {
			return Meta{}, err
		}
		meta.Date = foundation.Some(parsed)
	}

	return meta, nil
}

func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}
