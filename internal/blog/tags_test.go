package blog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/blogsmith/internal/document"
)

func TestGroupByTagPreservesOrder(t *testing.T) {
	docs := []document.Document{
		datedDoc("2024/06/03/c.md", "2024-06-03", "go"),
		datedDoc("2024/06/02/b.md", "2024-06-02", "go", "release"),
		datedDoc("2024/06/01/a.md", "2024-06-01", "release"),
	}
	posts := mustPosts(docs, day("2024-06-15"))

	groups := GroupByTag(posts)
	require.Len(t, groups, 2)

	goGroup := groups["go"]
	require.Len(t, goGroup, 2)
	assert.Equal(t, "2024/06/03/c.html", goGroup[0].Path())
	assert.Equal(t, "2024/06/02/b.html", goGroup[1].Path())

	release := groups["release"]
	require.Len(t, release, 2)
	assert.Equal(t, "2024/06/02/b.html", release[0].Path())
}

// A tag with zero eligible posts never appears in the mapping, so no
// empty-page artifacts are produced downstream.
func TestGroupByTagOmitsEmptyGroups(t *testing.T) {
	groups := GroupByTag(nil)
	assert.Empty(t, groups)

	posts := mustPosts([]document.Document{datedDoc("2024/06/01/a.md", "2024-06-01")}, day("2024-06-15"))
	groups = GroupByTag(posts)
	assert.Empty(t, groups)
}

func TestSortedTags(t *testing.T) {
	groups := map[string][]*PostPage{"zebra": nil, "alpha": nil, "misc": nil}
	assert.Equal(t, []string{"alpha", "misc", "zebra"}, SortedTags(groups))
}

func TestTagRunSpecPaths(t *testing.T) {
	spec := TagRunSpec("deep learning", 5, nil, nil)
	assert.Equal(t, "tag/deep-learning/index.html", spec.IndexPath)
	assert.Equal(t, "tag/deep-learning/page/%d/index.html", spec.NumberedPath)
	assert.Equal(t, "tag/deep-learning", spec.FeedBase)
}

func TestURLSafeTag(t *testing.T) {
	assert.Equal(t, "deep-learning", URLSafeTag("deep learning"))
	assert.Equal(t, "a-b-c", URLSafeTag(" a  b\tc "))
	assert.Equal(t, "plain", URLSafeTag("plain"))
}
