package fetch_test

import (
	"testing"

	"squares/backend/internal/fetch"

	"github.com/stretchr/testify/require"
)

func TestParse_NativeFormat(t *testing.T) {
	text := `# author: Alice
# icon: icons/alice.png
# description: Daily sketches

posts/001.png
posts/002.png

posts/003.png
`
	res, err := fetch.Parse("https://a.example/feed.txt", []byte(text))
	require.NoError(t, err)
	require.Equal(t, "Alice", res.Author)
	require.Equal(t, "icons/alice.png", res.Icon)
	require.Equal(t, "Daily sketches", res.Description)
	require.Equal(t, int64(len(text)), res.Size)
	require.Equal(t, []string{"posts/001.png", "posts/002.png", "posts/003.png"}, res.Paths)
}

func TestParse_NativeIgnoresUnknownHeaders(t *testing.T) {
	text := "# color: green\n# not a header line\nposts/one.png\n"
	res, err := fetch.Parse("https://a.example/feed.txt", []byte(text))
	require.NoError(t, err)
	require.Empty(t, res.Author)
	require.Equal(t, []string{"posts/one.png"}, res.Paths)
}

func TestParse_RSS(t *testing.T) {
	rss := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Example</title>
    <description>&lt;p&gt;An &lt;b&gt;example&lt;/b&gt; feed&lt;/p&gt;</description>
    <link>https://a.example/</link>
    <item><title>One</title><link>https://a.example/posts/one</link></item>
    <item><title>Two</title><link>https://a.example/posts/two</link></item>
    <item><title>External</title><link>https://elsewhere.example/thing</link></item>
  </channel>
</rss>`
	res, err := fetch.Parse("https://a.example/feed.xml", []byte(rss))
	require.NoError(t, err)
	require.Equal(t, "An example feed", res.Description, "markup is stripped")
	require.Equal(t, []string{
		"posts/one",
		"posts/two",
		"https://elsewhere.example/thing",
	}, res.Paths)
}

func TestParse_BrokenXMLFails(t *testing.T) {
	_, err := fetch.Parse("https://a.example/feed.xml", []byte("<rss><chan"))
	require.Error(t, err)
}
