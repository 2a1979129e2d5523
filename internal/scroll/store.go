package scroll

import (
	"sort"

	"squares/backend/internal/model"
)

// Store holds every discovered post, keyed by discovery tick, plus a
// per-feed index in discovery order.
type Store struct {
	registry *Registry
	clock    *Clock
	posts    map[int64]*model.Post
	byFeed   map[int64][]*model.Post
}

// NewStore wires the store to a registry; unregistering a feed there
// cascades into RemoveFeed here.
func NewStore(registry *Registry, clock *Clock) *Store {
	s := &Store{
		registry: registry,
		clock:    clock,
		posts:    make(map[int64]*model.Post),
		byFeed:   make(map[int64][]*model.Post),
	}
	registry.subscribeRemove(s.RemoveFeed)
	return s
}

// Record creates a post for a known feed. The key is the current clock
// tick, so keys are unique store-wide even when calls collide on the
// same millisecond. Unknown feeds are a ReferenceError, never a
// silently dangling post.
func (s *Store) Record(feedID int64, path string) (*model.Post, error) {
	feed, err := s.registry.Resolve(feedID)
	if err != nil {
		return nil, err
	}
	post := &model.Post{
		DateFound: s.clock.Tick(),
		Path:      path,
		Feed:      feed,
	}
	s.insert(post)
	return post, nil
}

// RecordAt creates a post with a caller-supplied discovery tick, as
// produced by the import adapter from export timestamps. If the tick is
// already taken the post gets the next free strictly greater one, so
// keys stay unique even across colliding imports. The segment stays in
// discovery order regardless of where the tick lands.
func (s *Store) RecordAt(feedID int64, path string, tick int64) (*model.Post, error) {
	feed, err := s.registry.Resolve(feedID)
	if err != nil {
		return nil, err
	}
	for {
		if _, taken := s.posts[tick]; !taken {
			break
		}
		tick++
	}
	post := &model.Post{
		DateFound: tick,
		Path:      path,
		Feed:      feed,
	}
	s.posts[tick] = post
	segment := s.byFeed[feedID]
	i := sort.Search(len(segment), func(i int) bool { return segment[i].DateFound > tick })
	segment = append(segment, nil)
	copy(segment[i+1:], segment[i:])
	segment[i] = post
	s.byFeed[feedID] = segment
	s.clock.AdvanceTo(tick)
	return post, nil
}

// MarkVisited sets the visited flag. Idempotent.
func (s *Store) MarkVisited(postKey int64) error {
	post, ok := s.posts[postKey]
	if !ok {
		return unknownPost(postKey)
	}
	post.Visited = true
	return nil
}

// Get returns the post with the given key.
func (s *Store) Get(postKey int64) (*model.Post, error) {
	post, ok := s.posts[postKey]
	if !ok {
		return nil, unknownPost(postKey)
	}
	return post, nil
}

// PostsForFeed returns one feed's posts ordered by discovery time
// ascending. The returned slice is the caller's to keep.
func (s *Store) PostsForFeed(feedID int64) []*model.Post {
	segment := s.byFeed[feedID]
	out := make([]*model.Post, len(segment))
	copy(out, segment)
	return out
}

// HasPath reports whether a post with the given path already exists for
// the feed. The poller uses it to record only newly appeared paths.
func (s *Store) HasPath(feedID int64, path string) bool {
	for _, post := range s.byFeed[feedID] {
		if post.Path == path {
			return true
		}
	}
	return false
}

// RemoveFeed deletes every post owned by the feed.
func (s *Store) RemoveFeed(feedID int64) {
	for _, post := range s.byFeed[feedID] {
		delete(s.posts, post.DateFound)
	}
	delete(s.byFeed, feedID)
}

// Len returns the total number of posts.
func (s *Store) Len() int {
	return len(s.posts)
}

// insert adds a post whose key is already settled. Ticks are issued in
// increasing order, and the codec thaws posts in persisted discovery
// order, so appending keeps each segment sorted.
func (s *Store) insert(post *model.Post) {
	s.posts[post.DateFound] = post
	s.byFeed[post.Feed.ID] = append(s.byFeed[post.Feed.ID], post)
}
