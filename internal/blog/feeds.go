package blog

// FeedKind describes one syndication format. Kinds are an ordered list so
// feed link ordering is explicit and stable.
type FeedKind struct {
	Key       string // path suffix, e.g. "rss"
	Text      string // display text for the feed link
	MediaType string // e.g. "application/rss+xml"
	Template  string // template name within the "feed" group
}

// DefaultFeedKinds is the feed configuration used when none is given.
func DefaultFeedKinds() []FeedKind {
	return []FeedKind{
		{Key: "rss", Text: "RSS", MediaType: "application/rss+xml", Template: "rss"},
		{Key: "atom", Text: "Atom", MediaType: "application/atom+xml", Template: "atom"},
	}
}

// BindFeeds derives one feed page per kind from the first page of a run and
// back-links the feeds into every page of the run via the "feed" link group.
// The link values are shared across all pages of the run. An empty run
// produces no feed pages and no links.
func BindFeeds(run []*ListPage, feedBase string, kinds []FeedKind, templates Resolver) ([]*FeedPage, error) {
	if len(run) == 0 {
		return nil, nil
	}

	feeds := make([]*FeedPage, 0, len(kinds))
	links := make([]Link, 0, len(kinds))
	for _, kind := range kinds {
		tmpl, err := templates.Template("feed", kind.Template)
		if err != nil {
			return nil, err
		}
		feed := &FeedPage{
			source:    run[0],
			path:      CollapseSlashes(feedBase + "." + kind.Key),
			mediaType: kind.MediaType,
			template:  tmpl,
		}
		feeds = append(feeds, feed)
		links = append(links, Link{
			Text:      kind.Text,
			Href:      feed.path,
			MediaType: kind.MediaType,
			Rel:       "alternate",
		})
	}

	for _, page := range run {
		page.links.SetGroup("feed", links)
	}

	return feeds, nil
}
