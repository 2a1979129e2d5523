package service_test

import (
	"context"
	"errors"
	"testing"

	"squares/backend/internal/fetch"
	"squares/backend/internal/repository"
	"squares/backend/internal/repository/testutil"
	"squares/backend/internal/service"

	"github.com/stretchr/testify/require"
)

type stubSource struct {
	result fetch.Result
	err    error
}

func (s *stubSource) Fetch(ctx context.Context, feedURL string) (fetch.Result, error) {
	return s.result, s.err
}

func newFeedFixture(t *testing.T, source fetch.Source) (service.FeedService, service.ScrollService, service.PersistenceService) {
	t.Helper()
	conn := testutil.NewTestDB(t)
	persist := service.NewPersistenceService(
		conn,
		repository.NewFeedRepository(conn),
		repository.NewPostRepository(conn),
		repository.NewScrollRepository(conn),
	)
	scrolls := newScrollService(t)
	return service.NewFeedService(scrolls, persist, source), scrolls, persist
}

func TestFeedService_Follow(t *testing.T) {
	source := &stubSource{result: fetch.Result{
		Author:      "Alice",
		Icon:        "icons/alice.png",
		Description: "Daily sketches",
		Size:        128,
		Paths:       []string{"posts/one.png", "posts/two.png"},
	}}
	feeds, scrolls, persist := newFeedFixture(t, source)

	feed, err := feeds.Follow(context.Background(), "  https://a.example/feed.txt ")
	require.NoError(t, err)
	require.Equal(t, "https://a.example/feed.txt", feed.URL)
	require.Equal(t, "Alice", feed.Author)
	require.Equal(t, int64(128), feed.Size)

	view := scrolls.View()
	require.Equal(t, 2, view.Length)

	// The snapshot hit sqlite.
	img, err := persist.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, img.Feeds, 1)
	require.Len(t, img.Posts, 2)
	require.Equal(t, []int64{feed.ID}, img.Scroll.FeedIDs)
}

func TestFeedService_FollowRejectsBadURL(t *testing.T) {
	feeds, _, _ := newFeedFixture(t, &stubSource{})

	for _, raw := range []string{"", "not a url", "ftp://a.example/feed.txt", "https://"} {
		_, err := feeds.Follow(context.Background(), raw)
		require.ErrorIs(t, err, service.ErrInvalid, "url %q", raw)
	}
}

func TestFeedService_FollowRejectsDuplicate(t *testing.T) {
	feeds, _, _ := newFeedFixture(t, &stubSource{})

	_, err := feeds.Follow(context.Background(), "https://a.example/feed.txt")
	require.NoError(t, err)

	_, err = feeds.Follow(context.Background(), "https://a.example/feed.txt")
	require.ErrorIs(t, err, service.ErrConflict)
}

func TestFeedService_FollowFetchFailure(t *testing.T) {
	feeds, scrolls, _ := newFeedFixture(t, &stubSource{err: errors.New("connection refused")})

	_, err := feeds.Follow(context.Background(), "https://down.example/feed.txt")
	require.ErrorIs(t, err, service.ErrFetch)
	require.Empty(t, scrolls.Feeds(), "nothing registered on a failed fetch")
}

func TestFeedService_Unfollow(t *testing.T) {
	source := &stubSource{result: fetch.Result{Paths: []string{"posts/one.png"}}}
	feeds, scrolls, persist := newFeedFixture(t, source)

	feed, err := feeds.Follow(context.Background(), "https://a.example/feed.txt")
	require.NoError(t, err)

	require.NoError(t, feeds.Unfollow(context.Background(), feed.ID))
	require.Empty(t, scrolls.Feeds())
	require.Equal(t, 0, scrolls.View().Length)

	img, err := persist.Load(context.Background())
	require.NoError(t, err)
	require.Empty(t, img.Feeds)
	require.Empty(t, img.Posts)
}

func TestFeedService_UnfollowUnknown(t *testing.T) {
	feeds, _, _ := newFeedFixture(t, &stubSource{})
	require.ErrorIs(t, feeds.Unfollow(context.Background(), 999), service.ErrNotFound)
}
