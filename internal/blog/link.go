package blog

import "strings"

// Link is an immutable navigation value, compared by value.
type Link struct {
	Text      string
	Href      string
	MediaType string
	Rel       string
}

// LinkMap groups ordered links by name (e.g. "tags", "feed", "crossposts").
type LinkMap map[string][]Link

// SetGroup replaces one link group wholesale.
func (m LinkMap) SetGroup(name string, links []Link) {
	m[name] = links
}

// Group returns the ordered links of one group, nil when absent.
func (m LinkMap) Group(name string) []Link {
	return m[name]
}

// URLSafeTag converts a free-form tag into its URL form: whitespace runs
// become single hyphens.
func URLSafeTag(tag string) string {
	return strings.Join(strings.Fields(tag), "-")
}

// TagHref returns the listing path a tag link points at.
func TagHref(tag string) string {
	return "tag/" + URLSafeTag(tag) + "/"
}
