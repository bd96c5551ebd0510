package frontmatter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplit_NoFrontmatter_ReturnsBodyOnly(t *testing.T) {
	input := []byte("# Title\n\nHello\n")

	fm, body, had, err := Split(input)
	require.NoError(t, err)
	require.False(t, had)
	require.Empty(t, fm)
	require.Equal(t, input, body)
}

func TestSplit_YAMLFrontmatter_SplitsFrontmatterAndBody(t *testing.T) {
	input := []byte("---\ntitle: Launch\n---\n# Title\n")

	fm, body, had, err := Split(input)
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, []byte("title: Launch\n"), fm)
	require.Equal(t, []byte("# Title\n"), body)
}

func TestSplit_MissingClosingDelimiter_ReturnsError(t *testing.T) {
	input := []byte("---\ntitle: Launch\n# Title\n")

	_, _, had, err := Split(input)
	require.Error(t, err)
	require.False(t, had)
	require.True(t, errors.Is(err, ErrMissingClosingDelimiter))
}

func TestSplit_CRLF_SplitsFrontmatterAndBody(t *testing.T) {
	input := []byte("---\r\ntitle: Launch\r\n---\r\n# Title\r\n")

	fm, body, had, err := Split(input)
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, []byte("title: Launch\r\n"), fm)
	require.Equal(t, []byte("# Title\r\n"), body)
}

func TestDecodeMeta(t *testing.T) {
	meta, err := DecodeMeta([]byte("title: Launch\ndate: 2024-06-01\ntags: [news, launch]\ncrossposts:\n  - text: Mirror\n    url: https://example.org/launch\n"))
	require.NoError(t, err)
	require.Equal(t, "Launch", meta.Title)
	require.True(t, meta.Date.IsSome())
	require.Equal(t, 2024, meta.Date.Unwrap().Year())
	require.Equal(t, []string{"news", "launch"}, meta.Tags)
	require.Len(t, meta.Crossposts, 1)
	require.Equal(t, "https://example.org/launch", meta.Crossposts[0].URL)
}

func TestDecodeMeta_NoDate(t *testing.T) {
	meta, err := DecodeMeta([]byte("title: About\n"))
	require.NoError(t, err)
	require.True(t, meta.Date.IsNone())
}

func TestDecodeMeta_BadDate(t *testing.T) {
	_, err := DecodeMeta([]byte("date: sometime soon\n"))
	require.Error(t, err)
}

func TestDecodeMeta_Empty(t *testing.T) {
	meta, err := DecodeMeta(nil)
	require.NoError(t, err)
	require.Empty(t, meta.Title)
	require.True(t, meta.Date.IsNone())
}
