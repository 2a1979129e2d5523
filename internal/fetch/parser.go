// Package fetch retrieves and parses feed texts and drives the
// periodic poll across all followed feeds.
package fetch

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"
)

// Result is everything one fetch learns about a feed: refreshed
// metadata plus the post paths currently listed, in feed order.
type Result struct {
	Author      string
	Icon        string
	Description string
	Size        int64
	Paths       []string
}

var stripTags = bluemonday.StrictPolicy()

// Parse decodes a feed text. The native format is line-based: header
// lines start with "#" and carry "key: value" metadata (author, icon,
// description); every other non-empty line is a post path relative to
// the feed URL. Texts that look like XML are handed to the RSS/Atom
// parser instead, so a followed URL can be either kind.
func Parse(feedURL string, data []byte) (Result, error) {
	if looksLikeXML(data) {
		return parseSyndication(feedURL, data)
	}
	return parseNative(data), nil
}

func parseNative(data []byte) Result {
	res := Result{Size: int64(len(data))}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			key, value, ok := strings.Cut(strings.TrimSpace(line[1:]), ":")
			if !ok {
				continue
			}
			value = strings.TrimSpace(value)
			switch strings.ToLower(strings.TrimSpace(key)) {
			case "author":
				res.Author = value
			case "icon":
				res.Icon = value
			case "description":
				res.Description = value
			}
			continue
		}
		res.Paths = append(res.Paths, line)
	}
	return res
}

func parseSyndication(feedURL string, data []byte) (Result, error) {
	parsed, err := gofeed.NewParser().Parse(bytes.NewReader(data))
	if err != nil {
		return Result{}, err
	}
	res := Result{
		Description: strings.TrimSpace(stripTags.Sanitize(parsed.Description)),
		Size:        int64(len(data)),
	}
	if len(parsed.Authors) > 0 {
		res.Author = parsed.Authors[0].Name
	}
	if parsed.Image != nil {
		res.Icon = parsed.Image.URL
	}
	for _, item := range parsed.Items {
		link := strings.TrimSpace(item.Link)
		if link == "" {
			continue
		}
		res.Paths = append(res.Paths, relativize(feedURL, link))
	}
	return res, nil
}

// relativize turns an item link into a path relative to the feed URL
// when they share an origin; cross-origin links stay absolute.
func relativize(feedURL, link string) string {
	base := feedURL
	if i := strings.LastIndex(base, "/"); i > len("https://") {
		base = base[:i+1]
	}
	if strings.HasPrefix(link, base) {
		return strings.TrimPrefix(link, base)
	}
	return link
}

func looksLikeXML(data []byte) bool {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '<'
}
