package scroll

import (
	"squares/backend/internal/model"
)

// FeedMeta is the caller-supplied part of a new feed; the registry
// assigns identity and follow time.
type FeedMeta struct {
	URL         string
	Icon        string
	Author      string
	Description string
	Size        int64
}

// Registry holds every followed feed, keyed by id, and remembers the
// follow order so serialization stays deterministic.
type Registry struct {
	clock    *Clock
	feeds    map[int64]*model.Feed
	order    []int64
	onRemove []func(feedID int64)
}

func NewRegistry(clock *Clock) *Registry {
	return &Registry{
		clock: clock,
		feeds: make(map[int64]*model.Feed),
	}
}

// Register creates a new feed with a fresh unique id.
func (r *Registry) Register(meta FeedMeta) *model.Feed {
	tick := r.clock.Tick()
	feed := &model.Feed{
		ID:          tick,
		URL:         meta.URL,
		Icon:        meta.Icon,
		Author:      meta.Author,
		Description: meta.Description,
		Size:        meta.Size,
		FollowedAt:  tick,
	}
	r.insert(feed)
	return feed
}

// Unregister removes the feed and cascades to its posts. Unknown ids
// are a no-op.
func (r *Registry) Unregister(feedID int64) {
	if _, ok := r.feeds[feedID]; !ok {
		return
	}
	delete(r.feeds, feedID)
	for i, id := range r.order {
		if id == feedID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	for _, remove := range r.onRemove {
		remove(feedID)
	}
}

// Resolve returns the live feed for an id.
func (r *Registry) Resolve(feedID int64) (*model.Feed, error) {
	feed, ok := r.feeds[feedID]
	if !ok {
		return nil, unknownFeed(feedID)
	}
	return feed, nil
}

// Refresh updates the mutable-on-refollow attributes of a feed.
// Identity, URL and follow time never change.
func (r *Registry) Refresh(feedID int64, icon, description string, size int64) error {
	feed, ok := r.feeds[feedID]
	if !ok {
		return unknownFeed(feedID)
	}
	feed.Icon = icon
	feed.Description = description
	feed.Size = size
	return nil
}

// Feeds returns all feeds in follow order.
func (r *Registry) Feeds() []*model.Feed {
	out := make([]*model.Feed, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.feeds[id])
	}
	return out
}

// Len returns the number of registered feeds.
func (r *Registry) Len() int {
	return len(r.feeds)
}

// insert stores a feed whose id is already settled. The codec uses it
// to rebuild a registry from disk with the persisted ids.
func (r *Registry) insert(feed *model.Feed) {
	r.feeds[feed.ID] = feed
	r.order = append(r.order, feed.ID)
}

// subscribeRemove registers a cascade hook; the store uses it to drop
// posts when their feed is unregistered.
func (r *Registry) subscribeRemove(fn func(feedID int64)) {
	r.onRemove = append(r.onRemove, fn)
}
