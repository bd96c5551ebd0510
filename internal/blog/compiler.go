package blog

import (
	"log/slog"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"git.home.luguber.info/inful/blogsmith/internal/document"
	"git.home.luguber.info/inful/blogsmith/internal/errors"
	"git.home.luguber.info/inful/blogsmith/internal/logfields"
	"git.home.luguber.info/inful/blogsmith/internal/metrics"
)

// Settings configures one content application's compilation.
type Settings struct {
	Name          string      // application name, used for logging only
	URLRoot       string      // absolute URL prefix for links outside the app tree
	PageExtension string      // output page extension, default "html"
	PageSize      int         // members per list page, must be positive
	IndexPath     string      // path of the main index run's first page
	NumberedPath  string      // fmt template with %d for index pages 2..N
	IndexFeedBase string      // feed path base for the main index run
	IndexTags     []Directive // index-level tag filtering, in order
	Feeds         []FeedKind  // ordered feed kinds, default rss+atom
}

func (s *Settings) applyDefaults() {
	if s.PageExtension == "" {
		s.PageExtension = "html"
	}
	if s.IndexPath == "" {
		s.IndexPath = "index.html"
	}
	if s.NumberedPath == "" {
		s.NumberedPath = "page/%d/index.html"
	}
	if s.IndexFeedBase == "" {
		s.IndexFeedBase = "index"
	}
	if s.Feeds == nil {
		s.Feeds = DefaultFeedKinds()
	}
}

func (s *Settings) validate() error {
	if s.PageSize <= 0 {
		return errors.PageSizeInvalid(s.PageSize)
	}
	if !strings.Contains(s.NumberedPath, "%d") {
		return errors.ConfigInvalid("page_path", "missing %d page number placeholder")
	}
	return nil
}

// Compiler turns one application's document snapshot into its full ordered
// page set. One Pages call is one single-threaded compilation pass; the only
// cross-call state is an immutable snapshot swapped in wholesale.
type Compiler struct {
	repo      document.Repository
	templates Resolver
	factory   *PageFactory
	settings  Settings
	clock     func() time.Time
	recorder  metrics.Recorder
	cache     atomic.Pointer[snapshot]
}

// snapshot is the product of one post-page computation. It is never mutated
// after publication; readers observe either the prior complete value or the
// new complete value.
type snapshot struct {
	selected []SelectedDoc
	posts    []*PostPage
}

// CompilerOption customizes a Compiler.
type CompilerOption func(*Compiler)

// WithClock overrides the reference clock (default: current local time).
func WithClock(clock func() time.Time) CompilerOption {
	return func(c *Compiler) { c.clock = clock }
}

// WithRecorder injects a metrics recorder (default: no-op).
func WithRecorder(r metrics.Recorder) CompilerOption {
	return func(c *Compiler) { c.recorder = r }
}

// NewCompiler validates settings and builds a compiler. Invalid pagination
// configuration is rejected here, before any pages are emitted.
func NewCompiler(repo document.Repository, templates Resolver, settings Settings, opts ...CompilerOption) (*Compiler, error) {
	settings.applyDefaults()
	if err := settings.validate(); err != nil {
		return nil, err
	}

	c := &Compiler{
		repo:      repo,
		templates: templates,
		factory:   NewPageFactory(settings.PageExtension, templates),
		settings:  settings,
		clock:     time.Now,
		recorder:  metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// PostPages selects, orders, and converts the repository's documents, and
// publishes the result as the compiler's current snapshot.
func (c *Compiler) PostPages() ([]*PostPage, error) {
	snap, err := c.computeSnapshot()
	if err != nil {
		return nil, err
	}
	return snap.posts, nil
}

func (c *Compiler) computeSnapshot() (*snapshot, error) {
	docs, err := c.repo.ListDocuments()
	if err != nil {
		// Repository failures propagate unchanged.
		return nil, err
	}

	selected, err := Select(docs, c.clock())
	if err != nil {
		return nil, err
	}

	posts := make([]*PostPage, 0, len(selected))
	for _, sel := range selected {
		post, err := c.factory.PostPage(sel)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	snap := &snapshot{selected: selected, posts: posts}
	c.cache.Store(snap)

	slog.Debug("Post pages computed",
		logfields.App(c.settings.Name),
		logfields.Documents(len(docs)),
		logfields.Pages(len(posts)))
	return snap, nil
}

func (c *Compiler) currentSnapshot() (*snapshot, error) {
	if snap := c.cache.Load(); snap != nil {
		return snap, nil
	}
	return c.computeSnapshot()
}

// Pages compiles the full ordered page set: index pages (with their feeds),
// tag pages (with their feeds), ancillary files, then individual post pages.
// The same document snapshot and reference clock always yield an identical
// ordering.
func (c *Compiler) Pages() ([]Page, error) {
	start := time.Now()
	pages, err := c.compile()
	c.recorder.ObserveCompileDuration(time.Since(start))
	if err != nil {
		c.recorder.IncPassOutcome("failed")
		return nil, err
	}
	c.recorder.IncPassOutcome("success")
	return pages, nil
}

func (c *Compiler) compile() ([]Page, error) {
	snap, err := c.computeSnapshot()
	if err != nil {
		return nil, err
	}
	posts := snap.posts

	listTmpl, err := c.templates.Template("blog", "list")
	if err != nil {
		return nil, err
	}
	layout, err := c.templates.Template("layout", "default")
	if err != nil {
		return nil, err
	}

	var pages []Page

	// Main index run over the directive-filtered posts.
	indexMembers := sortPostsByDateDesc(FilterByDirectives(posts, c.settings.IndexTags))
	indexRun, err := Paginate(toPages(indexMembers), RunSpec{
		PageSize:     c.settings.PageSize,
		IndexPath:    c.settings.IndexPath,
		NumberedPath: c.settings.NumberedPath,
		FeedBase:     c.settings.IndexFeedBase,
		Template:     listTmpl,
		Layout:       layout,
	})
	if err != nil {
		return nil, err
	}
	indexFeeds, err := BindFeeds(indexRun, c.settings.IndexFeedBase, c.settings.Feeds, c.templates)
	if err != nil {
		return nil, err
	}
	for _, p := range indexRun {
		pages = append(pages, p)
	}
	for _, p := range indexFeeds {
		pages = append(pages, p)
	}
	c.recorder.AddPages(metrics.KindList, len(indexRun))
	c.recorder.AddPages(metrics.KindFeed, len(indexFeeds))

	// Per-tag runs over the unfiltered posts, in tag name order.
	groups := GroupByTag(posts)
	for _, tag := range SortedTags(groups) {
		spec := TagRunSpec(tag, c.settings.PageSize, listTmpl, layout)
		run, err := Paginate(toPages(sortPostsByDateDesc(groups[tag])), spec)
		if err != nil {
			return nil, err
		}
		feeds, err := BindFeeds(run, spec.FeedBase, c.settings.Feeds, c.templates)
		if err != nil {
			return nil, err
		}
		for _, p := range run {
			pages = append(pages, p)
		}
		for _, p := range feeds {
			pages = append(pages, p)
		}
		c.recorder.AddPages(metrics.KindList, len(run))
		c.recorder.AddPages(metrics.KindFeed, len(feeds))
	}

	// Ancillary files pass through untransformed.
	files, err := c.repo.ListAncillaryFiles("")
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		pages = append(pages, NewFilePage(f))
	}
	c.recorder.AddPages(metrics.KindFile, len(files))

	for _, p := range posts {
		pages = append(pages, p)
	}
	c.recorder.AddPages(metrics.KindPost, len(posts))

	slog.Info("Compiled page set",
		logfields.App(c.settings.Name),
		logfields.Pages(len(pages)),
		slog.Int("tags", len(groups)))
	return pages, nil
}

// Tags returns one link per known tag, sorted by tag name.
func (c *Compiler) Tags() ([]Link, error) {
	snap, err := c.currentSnapshot()
	if err != nil {
		return nil, err
	}

	groups := GroupByTag(snap.posts)
	tags := SortedTags(groups)
	links := make([]Link, 0, len(tags))
	for _, tag := range tags {
		links = append(links, Link{Text: tag, Href: TagHref(tag)})
	}
	return links, nil
}

// RecentPosts walks the ordered, date-filtered documents and returns up to
// count post pages, most recent first, optionally restricted to one tag.
// Output paths are prefixed with the application's URL root for use as
// absolute links outside the app's own tree.
func (c *Compiler) RecentPosts(count int, tagFilter string) ([]*PostPage, error) {
	snap, err := c.currentSnapshot()
	if err != nil {
		return nil, err
	}

	recent := make([]*PostPage, 0, count)
	for _, post := range snap.posts {
		if len(recent) >= count {
			break
		}
		if tagFilter != "" && !post.Document().HasTag(tagFilter) {
			continue
		}
		recent = append(recent, post.withPath(prefixURLRoot(c.settings.URLRoot, post.Path())))
	}
	return recent, nil
}

func sortPostsByDateDesc(posts []*PostPage) []*PostPage {
	sorted := make([]*PostPage, len(posts))
	copy(sorted, posts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date().After(sorted[j].Date())
	})
	return sorted
}

func toPages(posts []*PostPage) []Page {
	pages := make([]Page, len(posts))
	for i, p := range posts {
		pages[i] = p
	}
	return pages
}

func prefixURLRoot(root, p string) string {
	if root == "" {
		return p
	}
	return strings.TrimSuffix(root, "/") + "/" + strings.TrimPrefix(p, "/")
}
