// Package testutil provides database helpers for repository tests.
package testutil

import (
	"context"
	"database/sql"
	"testing"

	"squares/backend/internal/db"
	"squares/backend/internal/model"

	_ "modernc.org/sqlite"
)

// NewTestDB opens a fresh in-memory database with the full schema.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	if _, err := conn.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return conn
}

// SeedFeed inserts a feed row directly and returns its id.
func SeedFeed(t *testing.T, conn *sql.DB, feed model.DiskFeed, position int) int64 {
	t.Helper()
	_, err := conn.ExecContext(
		context.Background(),
		`INSERT INTO feeds (id, url, icon, author, description, size, followed_at, position)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		feed.ID, feed.URL, feed.Icon, feed.Author, feed.Description, feed.Size, feed.FollowedAt, position,
	)
	if err != nil {
		t.Fatalf("seed feed: %v", err)
	}
	return feed.ID
}

// SeedPost inserts a post row directly.
func SeedPost(t *testing.T, conn *sql.DB, post model.DiskPost) {
	t.Helper()
	visited := 0
	if post.Visited {
		visited = 1
	}
	_, err := conn.ExecContext(
		context.Background(),
		`INSERT INTO posts (date_found, feed_id, path, visited) VALUES (?, ?, ?, ?)`,
		post.DateFound, post.FeedID, post.Path, visited,
	)
	if err != nil {
		t.Fatalf("seed post: %v", err)
	}
}
