package db

import (
	"database/sql"
	"fmt"
)

// Base schema. Ids are millisecond ticks assigned in memory, so there
// is no AUTOINCREMENT anywhere; the tables are a straight projection of
// the disk image (feeds and posts by id, one scroll row, scroll feed
// order in its own table).
const baseSchema = `
CREATE TABLE IF NOT EXISTS feeds (
  id INTEGER PRIMARY KEY,
  url TEXT NOT NULL,
  icon TEXT NOT NULL DEFAULT '',
  author TEXT NOT NULL DEFAULT '',
  description TEXT NOT NULL DEFAULT '',
  size INTEGER NOT NULL DEFAULT 0,
  followed_at INTEGER NOT NULL,
  position INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS posts (
  date_found INTEGER PRIMARY KEY,
  feed_id INTEGER NOT NULL,
  path TEXT NOT NULL,
  visited INTEGER NOT NULL DEFAULT 0,
  FOREIGN KEY (feed_id) REFERENCES feeds(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_posts_feed_id ON posts(feed_id);

CREATE TABLE IF NOT EXISTS scroll (
  id INTEGER PRIMARY KEY CHECK (id = 1),
  anchor_index INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS scroll_feeds (
  position INTEGER PRIMARY KEY,
  feed_id INTEGER NOT NULL,
  FOREIGN KEY (feed_id) REFERENCES feeds(id) ON DELETE CASCADE
);
`

func Migrate(conn *sql.DB) error {
	if _, err := conn.Exec(baseSchema); err != nil {
		return fmt.Errorf("migrate base schema: %w", err)
	}
	if err := runMigrations(conn); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

func runMigrations(conn *sql.DB) error {
	// Migration 1: index for the visited flag (unvisited counts)
	if _, err := conn.Exec(`CREATE INDEX IF NOT EXISTS idx_posts_visited ON posts(feed_id, visited)`); err != nil {
		return fmt.Errorf("create idx_posts_visited: %w", err)
	}

	// Migration 2: unique path per feed, matches the in-memory
	// duplicate check in the poller
	if _, err := conn.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_posts_feed_path ON posts(feed_id, path)`); err != nil {
		return fmt.Errorf("create idx_posts_feed_path: %w", err)
	}

	return nil
}
