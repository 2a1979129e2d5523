package repository_test

import (
	"context"
	"testing"

	"squares/backend/internal/model"
	"squares/backend/internal/repository"
	"squares/backend/internal/repository/testutil"

	"github.com/stretchr/testify/require"
)

func TestFeedRepository_ReplaceAllKeepsOrder(t *testing.T) {
	conn := testutil.NewTestDB(t)
	repo := repository.NewFeedRepository(conn)
	ctx := context.Background()

	feeds := []model.DiskFeed{
		{ID: 300, URL: "https://c.example/feed.txt", FollowedAt: 300},
		{ID: 100, URL: "https://a.example/feed.txt", Author: "Alice", FollowedAt: 100},
		{ID: 200, URL: "https://b.example/feed.txt", FollowedAt: 200},
	}
	require.NoError(t, repo.ReplaceAll(ctx, feeds))

	got, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Equal(t, feeds, got, "follow order survives, ids are not resorted")
}

func TestFeedRepository_ReplaceAllOverwrites(t *testing.T) {
	conn := testutil.NewTestDB(t)
	repo := repository.NewFeedRepository(conn)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, []model.DiskFeed{
		{ID: 1, URL: "https://a.example/feed.txt", FollowedAt: 1},
	}))
	require.NoError(t, repo.ReplaceAll(ctx, []model.DiskFeed{
		{ID: 2, URL: "https://b.example/feed.txt", FollowedAt: 2},
	}))

	got, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, int64(2), got[0].ID)
}

func TestFeedRepository_DeleteCascadesToPosts(t *testing.T) {
	conn := testutil.NewTestDB(t)
	feeds := repository.NewFeedRepository(conn)
	posts := repository.NewPostRepository(conn)
	ctx := context.Background()

	testutil.SeedFeed(t, conn, model.DiskFeed{ID: 1, URL: "https://a.example/feed.txt", FollowedAt: 1}, 0)
	testutil.SeedPost(t, conn, model.DiskPost{DateFound: 10, FeedID: 1, Path: "posts/one.png"})

	require.NoError(t, feeds.Delete(ctx, 1))

	left, err := posts.ListAll(ctx)
	require.NoError(t, err)
	require.Empty(t, left)
}
