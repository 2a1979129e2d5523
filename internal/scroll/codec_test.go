package scroll_test

import (
	"testing"
	"time"

	"squares/backend/internal/model"
	"squares/backend/internal/scroll"

	"github.com/stretchr/testify/require"
)

func buildSampleState(t *testing.T) (*scroll.Registry, *scroll.Store, *scroll.Scroll) {
	t.Helper()
	current := int64(1000)
	clock := scroll.NewClockAt(func() time.Time { return time.UnixMilli(current) })
	registry := scroll.NewRegistry(clock)
	store := scroll.NewStore(registry, clock)

	feedA := registry.Register(scroll.FeedMeta{
		URL:         "https://a.example/feed.txt",
		Icon:        "icons/a.png",
		Author:      "Alice",
		Description: "sketches",
		Size:        120,
	})
	current = 2000
	feedB := registry.Register(scroll.FeedMeta{URL: "https://b.example/feed.txt"})

	current = 3000
	a1, err := store.Record(feedA.ID, "posts/one.png")
	require.NoError(t, err)
	current = 4000
	_, err = store.Record(feedB.ID, "posts/two.png")
	require.NoError(t, err)
	current = 5000
	_, err = store.Record(feedA.ID, "posts/three.png")
	require.NoError(t, err)
	require.NoError(t, store.MarkVisited(a1.DateFound))

	s, err := scroll.Build(registry, store, []int64{feedB.ID, feedA.ID})
	require.NoError(t, err)
	s.AdvanceAnchor(2)
	return registry, store, s
}

func TestFreezeThaw_RoundTrip(t *testing.T) {
	registry, store, s := buildSampleState(t)

	img := scroll.Freeze(registry, store, s)
	thawedRegistry, thawedStore, thawedScroll, err := scroll.Thaw(img)
	require.NoError(t, err)

	// Feeds survive with identical attributes and order.
	originalFeeds := registry.Feeds()
	thawedFeeds := thawedRegistry.Feeds()
	require.Equal(t, len(originalFeeds), len(thawedFeeds))
	for i := range originalFeeds {
		require.Equal(t, *originalFeeds[i], *thawedFeeds[i])
	}

	// Posts survive with keys, flags, paths and feed association.
	for _, feed := range originalFeeds {
		original := store.PostsForFeed(feed.ID)
		thawed := thawedStore.PostsForFeed(feed.ID)
		require.Equal(t, len(original), len(thawed))
		for i := range original {
			require.Equal(t, original[i].DateFound, thawed[i].DateFound)
			require.Equal(t, original[i].Visited, thawed[i].Visited)
			require.Equal(t, original[i].Path, thawed[i].Path)
			require.Equal(t, original[i].Feed.ID, thawed[i].Feed.ID)
		}
	}

	// Scroll survives order and anchor.
	require.Equal(t, s.Length(), thawedScroll.Length())
	require.Equal(t, s.AnchorIndex(), thawedScroll.AnchorIndex())
	originalOrder := s.Feeds()
	thawedOrder := thawedScroll.Feeds()
	require.Equal(t, len(originalOrder), len(thawedOrder))
	for i := range originalOrder {
		require.Equal(t, originalOrder[i].ID, thawedOrder[i].ID)
	}

	// Thawed posts reference the thawed registry's live feeds, not
	// copies floating outside it.
	for _, post := range thawedScroll.Posts() {
		resolved, err := thawedRegistry.Resolve(post.Feed.ID)
		require.NoError(t, err)
		require.Same(t, resolved, post.Feed)
	}
}

func TestFreeze_Deterministic(t *testing.T) {
	registry, store, s := buildSampleState(t)

	first := scroll.Freeze(registry, store, s)
	second := scroll.Freeze(registry, store, s)
	require.Equal(t, first, second)

	// freeze → thaw → freeze is also stable
	thawedRegistry, thawedStore, thawedScroll, err := scroll.Thaw(first)
	require.NoError(t, err)
	require.Equal(t, first, scroll.Freeze(thawedRegistry, thawedStore, thawedScroll))
}

func TestThaw_DanglingPostFeedAbortsLoad(t *testing.T) {
	img := model.DiskImage{
		Feeds: []model.DiskFeed{{ID: 1, URL: "https://a.example/feed.txt", FollowedAt: 1}},
		Posts: []model.DiskPost{
			{DateFound: 100, Path: "posts/one.png", FeedID: 1},
			{DateFound: 200, Path: "posts/lost.png", FeedID: 999},
		},
		Scroll: model.DiskScroll{FeedIDs: []int64{1}},
	}

	registry, store, s, err := scroll.Thaw(img)
	require.ErrorIs(t, err, scroll.ErrDanglingReference)
	require.Nil(t, registry)
	require.Nil(t, store)
	require.Nil(t, s)
}

func TestThaw_DanglingScrollFeedAbortsLoad(t *testing.T) {
	img := model.DiskImage{
		Feeds:  []model.DiskFeed{{ID: 1, URL: "https://a.example/feed.txt", FollowedAt: 1}},
		Scroll: model.DiskScroll{FeedIDs: []int64{1, 42}},
	}

	_, _, _, err := scroll.Thaw(img)
	require.ErrorIs(t, err, scroll.ErrDanglingReference)
}

func TestThaw_ClampsStaleAnchor(t *testing.T) {
	img := model.DiskImage{
		Feeds: []model.DiskFeed{{ID: 1, URL: "https://a.example/feed.txt", FollowedAt: 1}},
		Posts: []model.DiskPost{
			{DateFound: 100, Path: "posts/one.png", FeedID: 1},
		},
		Scroll: model.DiskScroll{AnchorIndex: 9, FeedIDs: []int64{1}},
	}

	_, _, s, err := scroll.Thaw(img)
	require.NoError(t, err)
	require.Equal(t, 1, s.Length())
	require.Equal(t, 1, s.AnchorIndex())
}

func TestThaw_NewTicksExceedRestoredKeys(t *testing.T) {
	img := model.DiskImage{
		Feeds: []model.DiskFeed{{ID: 10, URL: "https://a.example/feed.txt", FollowedAt: 10}},
		Posts: []model.DiskPost{
			// Far future so the wall clock cannot catch up in-test
			{DateFound: time.Now().Add(24 * time.Hour).UnixMilli(), Path: "posts/one.png", FeedID: 10},
		},
		Scroll: model.DiskScroll{FeedIDs: []int64{10}},
	}

	_, store, _, err := scroll.Thaw(img)
	require.NoError(t, err)

	post, err := store.Record(10, "posts/two.png")
	require.NoError(t, err)
	existing := store.PostsForFeed(10)
	require.Equal(t, post.DateFound, existing[1].DateFound)
	require.Greater(t, post.DateFound, existing[0].DateFound)
}
