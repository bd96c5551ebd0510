package blog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/blogsmith/internal/document"
	"git.home.luguber.info/inful/blogsmith/internal/frontmatter"
)

func TestFactoryOutputPath(t *testing.T) {
	factory := NewPageFactory("html", fakeResolver{})

	tests := []struct {
		docPath string
		want    string
	}{
		{"2024/06/01/launch.md", "2024/06/01/launch.html"},
		{"2024//06//01//launch.md", "2024/06/01/launch.html"},
		{"notes.markdown", "notes.html"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, factory.outputPath(tc.docPath), tc.docPath)
	}
}

func TestFactoryPostPage(t *testing.T) {
	doc := datedDoc("2024/06/01/launch.md", "2024-06-01", "deep learning", "news")
	doc.Crossposts = []frontmatter.Crosspost{{Text: "Mirror", URL: "https://example.org/launch"}}

	selected, err := Select([]document.Document{doc}, day("2024-06-15"))
	require.NoError(t, err)
	require.Len(t, selected, 1)

	factory := NewPageFactory("html", fakeResolver{})
	post, err := factory.PostPage(selected[0])
	require.NoError(t, err)

	assert.Equal(t, "2024/06/01/launch.html", post.Path())
	assert.Equal(t, day("2024-06-01"), post.Date())

	tags := post.Links().Group("tags")
	require.Len(t, tags, 2)
	assert.Equal(t, Link{Text: "deep learning", Href: "tag/deep-learning/"}, tags[0])
	assert.Equal(t, Link{Text: "news", Href: "tag/news/"}, tags[1])

	crossposts := post.Links().Group("crossposts")
	require.Len(t, crossposts, 1)
	assert.Equal(t, "https://example.org/launch", crossposts[0].Href)
}

func TestFactoryDefaultExtension(t *testing.T) {
	factory := NewPageFactory("", fakeResolver{})
	assert.Equal(t, "a.html", factory.outputPath("a.md"))

	dotted := NewPageFactory(".xhtml", fakeResolver{})
	assert.Equal(t, "a.xhtml", dotted.outputPath("a.md"))
}

func TestFactoryTemplateMissing(t *testing.T) {
	resolver := fakeResolver{missing: map[string]bool{"blog/post": true}}
	factory := NewPageFactory("html", resolver)

	selected, err := Select([]document.Document{datedDoc("2024/06/01/a.md", "2024-06-01")}, day("2024-06-15"))
	require.NoError(t, err)

	_, err = factory.PostPage(selected[0])
	require.Error(t, err)
}
