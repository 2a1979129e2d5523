package repository_test

import (
	"context"
	"testing"

	"squares/backend/internal/model"
	"squares/backend/internal/repository"
	"squares/backend/internal/repository/testutil"

	"github.com/stretchr/testify/require"
)

func TestScrollRepository_SaveAndGet(t *testing.T) {
	conn := testutil.NewTestDB(t)
	repo := repository.NewScrollRepository(conn)
	ctx := context.Background()

	testutil.SeedFeed(t, conn, model.DiskFeed{ID: 1, URL: "https://a.example/feed.txt", FollowedAt: 1}, 0)
	testutil.SeedFeed(t, conn, model.DiskFeed{ID: 2, URL: "https://b.example/feed.txt", FollowedAt: 2}, 1)

	scroll := model.DiskScroll{AnchorIndex: 5, FeedIDs: []int64{2, 1}}
	require.NoError(t, repo.Save(ctx, scroll))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, scroll, got, "feed display order survives as saved")
}

func TestScrollRepository_GetEmptyDatabase(t *testing.T) {
	conn := testutil.NewTestDB(t)
	repo := repository.NewScrollRepository(conn)

	got, err := repo.Get(context.Background())
	require.NoError(t, err)
	require.Equal(t, model.DiskScroll{}, got)
}

func TestScrollRepository_UpdateAnchor(t *testing.T) {
	conn := testutil.NewTestDB(t)
	repo := repository.NewScrollRepository(conn)
	ctx := context.Background()

	testutil.SeedFeed(t, conn, model.DiskFeed{ID: 1, URL: "https://a.example/feed.txt", FollowedAt: 1}, 0)
	require.NoError(t, repo.Save(ctx, model.DiskScroll{AnchorIndex: 1, FeedIDs: []int64{1}}))

	require.NoError(t, repo.UpdateAnchor(ctx, 7))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, 7, got.AnchorIndex)
	require.Equal(t, []int64{1}, got.FeedIDs, "feed list untouched by anchor updates")
}

func TestScrollRepository_UpdateAnchorWithoutSave(t *testing.T) {
	conn := testutil.NewTestDB(t)
	repo := repository.NewScrollRepository(conn)
	ctx := context.Background()

	require.NoError(t, repo.UpdateAnchor(ctx, 3))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, got.AnchorIndex)
	require.Empty(t, got.FeedIDs)
}
