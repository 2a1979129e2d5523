package service

import (
	"sync"

	"squares/backend/internal/model"
	"squares/backend/internal/scroll"
)

// PostView is a post flattened for callers outside the lock: the live
// feed reference becomes an id.
type PostView struct {
	DateFound int64
	Visited   bool
	Path      string
	FeedID    int64
}

// ScrollView is a point-in-time copy of the scroll.
type ScrollView struct {
	Posts       []PostView
	FeedIDs     []int64
	AnchorIndex int
	Length      int
}

// ScrollService owns the live registry, store and scroll. Every method
// takes the single mutex, which is the serialization the core requires:
// poll results for different feeds may arrive in any interleaving, but
// only one of them touches the shared length/anchor pair at a time.
type ScrollService interface {
	Feeds() []model.Feed
	Feed(feedID int64) (model.Feed, error)
	View() ScrollView
	Register(meta scroll.FeedMeta) model.Feed
	Unregister(feedID int64)
	SyncFeed(feedID int64, meta scroll.FeedMeta, paths []string) (int, error)
	DiscoverAt(feedID int64, path string, tick int64) (model.Post, error)
	AdvanceAnchor(newIndex int) int
	MarkVisited(postKey int64) error
	Snapshot() model.DiskImage
}

type scrollService struct {
	mu       sync.Mutex
	registry *scroll.Registry
	store    *scroll.Store
	scroll   *scroll.Scroll
}

func NewScrollService(registry *scroll.Registry, store *scroll.Store, scr *scroll.Scroll) ScrollService {
	return &scrollService{registry: registry, store: store, scroll: scr}
}

func (s *scrollService) Feeds() []model.Feed {
	s.mu.Lock()
	defer s.mu.Unlock()
	feeds := s.registry.Feeds()
	out := make([]model.Feed, 0, len(feeds))
	for _, feed := range feeds {
		out = append(out, *feed)
	}
	return out
}

func (s *scrollService) Feed(feedID int64) (model.Feed, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	feed, err := s.registry.Resolve(feedID)
	if err != nil {
		return model.Feed{}, err
	}
	return *feed, nil
}

func (s *scrollService) View() ScrollView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *scrollService) viewLocked() ScrollView {
	posts := s.scroll.Posts()
	view := ScrollView{
		Posts:       make([]PostView, 0, len(posts)),
		AnchorIndex: s.scroll.AnchorIndex(),
		Length:      s.scroll.Length(),
	}
	for _, post := range posts {
		view.Posts = append(view.Posts, PostView{
			DateFound: post.DateFound,
			Visited:   post.Visited,
			Path:      post.Path,
			FeedID:    post.Feed.ID,
		})
	}
	for _, feed := range s.scroll.Feeds() {
		view.FeedIDs = append(view.FeedIDs, feed.ID)
	}
	return view
}

// Register follows a new feed and rebuilds the scroll so the feed gets
// its (empty) segment at the end of the display order.
func (s *scrollService) Register(meta scroll.FeedMeta) model.Feed {
	s.mu.Lock()
	defer s.mu.Unlock()
	feed := s.registry.Register(meta)
	s.rebuildLocked()
	return *feed
}

// Unregister unfollows a feed; its posts leave both the store and the
// scroll. Unknown ids are a no-op, matching the registry.
func (s *scrollService) Unregister(feedID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registry.Unregister(feedID)
	s.rebuildLocked()
}

// SyncFeed refreshes feed metadata and records the paths that are new
// since the last poll, appending each to the feed's scroll segment.
// Returns how many posts were new.
func (s *scrollService) SyncFeed(feedID int64, meta scroll.FeedMeta, paths []string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.registry.Refresh(feedID, meta.Icon, meta.Description, meta.Size); err != nil {
		return 0, err
	}
	added := 0
	for _, path := range paths {
		if s.store.HasPath(feedID, path) {
			continue
		}
		post, err := s.store.Record(feedID, path)
		if err != nil {
			return added, err
		}
		if err := s.scroll.AppendDiscovered(post); err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}

// DiscoverAt records an imported post with its historical tick and
// patches the scroll.
func (s *scrollService) DiscoverAt(feedID int64, path string, tick int64) (model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.store.HasPath(feedID, path) {
		return model.Post{}, ErrConflict
	}
	post, err := s.store.RecordAt(feedID, path, tick)
	if err != nil {
		return model.Post{}, err
	}
	// Imported ticks land anywhere in the segment; rebuild rather than
	// append so segment order stays by discovery time.
	s.rebuildLocked()
	return *post, nil
}

func (s *scrollService) AdvanceAnchor(newIndex int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scroll.AdvanceAnchor(newIndex)
	return s.scroll.AnchorIndex()
}

func (s *scrollService) MarkVisited(postKey int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.MarkVisited(postKey)
}

// Snapshot freezes the current state. The lock scopes the read so the
// image never observes a store mid-mutation.
func (s *scrollService) Snapshot() model.DiskImage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return scroll.Freeze(s.registry, s.store, s.scroll)
}

// rebuildLocked reconstructs the scroll over the current registry
// order. A reader sitting at the end stays at the end; otherwise the
// previous anchor is kept, clamped by the new length.
func (s *scrollService) rebuildLocked() {
	atEnd := s.scroll.AnchorIndex() == s.scroll.Length()
	previous := s.scroll.AnchorIndex()

	rebuilt := scroll.BuildFromFeeds(s.registry.Feeds(), s.store)
	if !atEnd {
		rebuilt.AdvanceAnchor(previous)
	}
	s.scroll = rebuilt
}
