package scroll

import (
	"squares/backend/internal/model"
)

// The codec is the one place runtime shapes and disk shapes meet.
// Freeze strips owning references down to ids; Thaw resolves them back
// to live objects. Nothing else in the repository converts between the
// two forms.

// Freeze projects the current state into its serializable form. The
// walk follows follow order and discovery order, so identical states
// always produce identical images.
func Freeze(registry *Registry, store *Store, scroll *Scroll) model.DiskImage {
	var img model.DiskImage
	for _, feed := range registry.Feeds() {
		img.Feeds = append(img.Feeds, model.DiskFeed{
			ID:          feed.ID,
			URL:         feed.URL,
			Icon:        feed.Icon,
			Author:      feed.Author,
			Description: feed.Description,
			Size:        feed.Size,
			FollowedAt:  feed.FollowedAt,
		})
		for _, post := range store.PostsForFeed(feed.ID) {
			img.Posts = append(img.Posts, model.DiskPost{
				DateFound: post.DateFound,
				Visited:   post.Visited,
				Path:      post.Path,
				FeedID:    feed.ID,
			})
		}
	}
	for _, feed := range scroll.Feeds() {
		img.Scroll.FeedIDs = append(img.Scroll.FeedIDs, feed.ID)
	}
	img.Scroll.AnchorIndex = scroll.AnchorIndex()
	return img
}

// Thaw reconstructs live state from a disk image: feeds first so ids
// resolve, then posts, then the scroll. Any dangling feed id aborts the
// whole load; partially corrupt images never yield a partial state.
// The anchor is clamped in case the persisted value no longer fits the
// reconstructed length.
func Thaw(img model.DiskImage) (*Registry, *Store, *Scroll, error) {
	clock := NewClock()
	registry := NewRegistry(clock)
	store := NewStore(registry, clock)

	var maxTick int64
	for _, df := range img.Feeds {
		registry.insert(&model.Feed{
			ID:          df.ID,
			URL:         df.URL,
			Icon:        df.Icon,
			Author:      df.Author,
			Description: df.Description,
			Size:        df.Size,
			FollowedAt:  df.FollowedAt,
		})
		if df.ID > maxTick {
			maxTick = df.ID
		}
	}
	for _, dp := range img.Posts {
		feed, err := registry.Resolve(dp.FeedID)
		if err != nil {
			return nil, nil, nil, err
		}
		store.insert(&model.Post{
			DateFound: dp.DateFound,
			Visited:   dp.Visited,
			Path:      dp.Path,
			Feed:      feed,
		})
		if dp.DateFound > maxTick {
			maxTick = dp.DateFound
		}
	}
	feeds := make([]*model.Feed, 0, len(img.Scroll.FeedIDs))
	for _, id := range img.Scroll.FeedIDs {
		feed, err := registry.Resolve(id)
		if err != nil {
			return nil, nil, nil, err
		}
		feeds = append(feeds, feed)
	}
	clock.AdvanceTo(maxTick)
	return registry, store, restore(feeds, store, img.Scroll.AnchorIndex), nil
}
