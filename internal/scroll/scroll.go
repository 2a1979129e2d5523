package scroll

import (
	"squares/backend/internal/model"
)

// Scroll is the single ordered view a reader moves through: one segment
// per feed, segments in explicit feed order, posts inside a segment in
// discovery order. It holds references into the store, never post
// content of its own. Callers serialize mutations (see service layer);
// the type itself is plain data.
type Scroll struct {
	feeds   []*model.Feed
	feedPos map[int64]int // feed id -> index into feeds/segLen
	segLen  []int
	posts   []*model.Post
	anchor  int
}

// Build concatenates each feed's posts in the given feed order. Feed
// order is caller-controlled (the following list), not a global
// timestamp interleave. A fresh scroll anchors at the end.
func Build(registry *Registry, store *Store, feedOrder []int64) (*Scroll, error) {
	feeds := make([]*model.Feed, 0, len(feedOrder))
	for _, feedID := range feedOrder {
		feed, err := registry.Resolve(feedID)
		if err != nil {
			return nil, err
		}
		feeds = append(feeds, feed)
	}
	return BuildFromFeeds(feeds, store), nil
}

// BuildFromFeeds is Build for callers already holding live feeds.
func BuildFromFeeds(feeds []*model.Feed, store *Store) *Scroll {
	s := &Scroll{feedPos: make(map[int64]int, len(feeds))}
	for _, feed := range feeds {
		segment := store.PostsForFeed(feed.ID)
		s.feedPos[feed.ID] = len(s.feeds)
		s.feeds = append(s.feeds, feed)
		s.segLen = append(s.segLen, len(segment))
		s.posts = append(s.posts, segment...)
	}
	s.anchor = len(s.posts)
	return s
}

// Length is the number of posts currently materialized.
func (s *Scroll) Length() int {
	return len(s.posts)
}

// AnchorIndex is the last viewed position, in [0, Length]. Length means
// "past the last post", i.e. caught up.
func (s *Scroll) AnchorIndex() int {
	return s.anchor
}

// Feeds returns the contributing feeds in display order.
func (s *Scroll) Feeds() []*model.Feed {
	out := make([]*model.Feed, len(s.feeds))
	copy(out, s.feeds)
	return out
}

// Posts returns the ordered post sequence.
func (s *Scroll) Posts() []*model.Post {
	out := make([]*model.Post, len(s.posts))
	copy(out, s.posts)
	return out
}

// AdvanceAnchor moves the anchor, clamping out-of-range values instead
// of failing: scrollers overshoot transiently.
func (s *Scroll) AdvanceAnchor(newIndex int) {
	s.anchor = clamp(newIndex, 0, len(s.posts))
}

// AppendDiscovered adds a freshly recorded post to the end of its
// feed's segment. A reader sitting at the end stays at the end; one who
// scrolled back is not yanked forward.
func (s *Scroll) AppendDiscovered(post *model.Post) error {
	pos, ok := s.feedPos[post.Feed.ID]
	if !ok {
		return unknownFeed(post.Feed.ID)
	}
	insertAt := 0
	for i := 0; i <= pos; i++ {
		insertAt += s.segLen[i]
	}
	atEnd := s.anchor == len(s.posts)

	s.posts = append(s.posts, nil)
	copy(s.posts[insertAt+1:], s.posts[insertAt:])
	s.posts[insertAt] = post
	s.segLen[pos]++

	if atEnd {
		s.anchor = len(s.posts)
	}
	return nil
}

// restore rebuilds a scroll from thawed parts with a persisted anchor,
// clamped in case the reconstructed length differs from what was saved.
func restore(feeds []*model.Feed, store *Store, anchorIndex int) *Scroll {
	s := BuildFromFeeds(feeds, store)
	s.AdvanceAnchor(anchorIndex)
	return s
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
