package blog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/blogsmith/internal/errors"
)

func TestBindFeedsDerivesOnePagePerKind(t *testing.T) {
	run, err := Paginate(eligiblePosts(12), indexRunSpec(5))
	require.NoError(t, err)

	feeds, err := BindFeeds(run, "index", DefaultFeedKinds(), fakeResolver{})
	require.NoError(t, err)
	require.Len(t, feeds, 2)

	assert.Equal(t, "index.rss", feeds[0].Path())
	assert.Equal(t, "application/rss+xml", feeds[0].MediaType())
	assert.Equal(t, "index.atom", feeds[1].Path())

	// Every feed wraps the first page of the run.
	for _, feed := range feeds {
		assert.Same(t, run[0], feed.Source())
	}
}

func TestBindFeedsBackLinksEveryPage(t *testing.T) {
	run, err := Paginate(eligiblePosts(12), indexRunSpec(5))
	require.NoError(t, err)

	_, err = BindFeeds(run, "index", DefaultFeedKinds(), fakeResolver{})
	require.NoError(t, err)

	first := run[0].Links().Group("feed")
	require.Len(t, first, 2)
	assert.Equal(t, Link{Text: "RSS", Href: "index.rss", MediaType: "application/rss+xml", Rel: "alternate"}, first[0])

	// The link values are shared across all pages of the run.
	for _, page := range run[1:] {
		assert.Equal(t, first, page.Links().Group("feed"))
	}
}

func TestBindFeedsEmptyRun(t *testing.T) {
	feeds, err := BindFeeds(nil, "index", DefaultFeedKinds(), fakeResolver{})
	require.NoError(t, err)
	assert.Empty(t, feeds)
}

func TestBindFeedsTagRunPaths(t *testing.T) {
	spec := TagRunSpec("go", 5, fakeTemplate{}, nil)
	run, err := Paginate(eligiblePosts(3), spec)
	require.NoError(t, err)

	feeds, err := BindFeeds(run, spec.FeedBase, DefaultFeedKinds(), fakeResolver{})
	require.NoError(t, err)
	require.Len(t, feeds, 2)
	assert.Equal(t, "tag/go.rss", feeds[0].Path())
	assert.Equal(t, "tag/go.atom", feeds[1].Path())
}

func TestBindFeedsUnresolvedTemplate(t *testing.T) {
	run, err := Paginate(eligiblePosts(3), indexRunSpec(5))
	require.NoError(t, err)

	resolver := fakeResolver{missing: map[string]bool{"feed/rss": true}}
	_, err = BindFeeds(run, "index", DefaultFeedKinds(), resolver)
	require.Error(t, err)
	assert.True(t, errors.IsCategory(err, errors.CategoryTemplate))
}
