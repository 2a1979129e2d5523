package repository_test

import (
	"context"
	"testing"

	"squares/backend/internal/model"
	"squares/backend/internal/repository"
	"squares/backend/internal/repository/testutil"

	"github.com/stretchr/testify/require"
)

func TestPostRepository_ListAllOrderedByTick(t *testing.T) {
	conn := testutil.NewTestDB(t)
	repo := repository.NewPostRepository(conn)
	ctx := context.Background()

	testutil.SeedFeed(t, conn, model.DiskFeed{ID: 1, URL: "https://a.example/feed.txt", FollowedAt: 1}, 0)
	require.NoError(t, repo.Insert(ctx, model.DiskPost{DateFound: 300, FeedID: 1, Path: "posts/late.png"}))
	require.NoError(t, repo.Insert(ctx, model.DiskPost{DateFound: 100, FeedID: 1, Path: "posts/early.png", Visited: true}))

	got, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, int64(100), got[0].DateFound)
	require.True(t, got[0].Visited)
	require.Equal(t, int64(300), got[1].DateFound)
	require.False(t, got[1].Visited)
}

func TestPostRepository_DuplicatePathPerFeedRejected(t *testing.T) {
	conn := testutil.NewTestDB(t)
	repo := repository.NewPostRepository(conn)
	ctx := context.Background()

	testutil.SeedFeed(t, conn, model.DiskFeed{ID: 1, URL: "https://a.example/feed.txt", FollowedAt: 1}, 0)
	testutil.SeedFeed(t, conn, model.DiskFeed{ID: 2, URL: "https://b.example/feed.txt", FollowedAt: 2}, 1)

	require.NoError(t, repo.Insert(ctx, model.DiskPost{DateFound: 10, FeedID: 1, Path: "posts/p.png"}))
	err := repo.Insert(ctx, model.DiskPost{DateFound: 20, FeedID: 1, Path: "posts/p.png"})
	require.Error(t, err)

	// same path under another feed is fine
	require.NoError(t, repo.Insert(ctx, model.DiskPost{DateFound: 30, FeedID: 2, Path: "posts/p.png"}))
}

func TestPostRepository_UpdateVisited(t *testing.T) {
	conn := testutil.NewTestDB(t)
	repo := repository.NewPostRepository(conn)
	ctx := context.Background()

	testutil.SeedFeed(t, conn, model.DiskFeed{ID: 1, URL: "https://a.example/feed.txt", FollowedAt: 1}, 0)
	testutil.SeedPost(t, conn, model.DiskPost{DateFound: 10, FeedID: 1, Path: "posts/one.png"})

	require.NoError(t, repo.UpdateVisited(ctx, 10, true))

	got, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.True(t, got[0].Visited)
}

func TestPostRepository_DeleteByFeed(t *testing.T) {
	conn := testutil.NewTestDB(t)
	repo := repository.NewPostRepository(conn)
	ctx := context.Background()

	testutil.SeedFeed(t, conn, model.DiskFeed{ID: 1, URL: "https://a.example/feed.txt", FollowedAt: 1}, 0)
	testutil.SeedFeed(t, conn, model.DiskFeed{ID: 2, URL: "https://b.example/feed.txt", FollowedAt: 2}, 1)
	testutil.SeedPost(t, conn, model.DiskPost{DateFound: 10, FeedID: 1, Path: "posts/one.png"})
	testutil.SeedPost(t, conn, model.DiskPost{DateFound: 20, FeedID: 2, Path: "posts/two.png"})

	require.NoError(t, repo.DeleteByFeed(ctx, 1))

	got, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, int64(20), got[0].DateFound)
}
