package repository

import (
	"context"
	"fmt"

	"squares/backend/internal/model"
)

type FeedRepository interface {
	ReplaceAll(ctx context.Context, feeds []model.DiskFeed) error
	ListAll(ctx context.Context) ([]model.DiskFeed, error)
	Delete(ctx context.Context, id int64) error
}

type feedRepository struct {
	db dbtx
}

func NewFeedRepository(db dbtx) FeedRepository {
	return &feedRepository{db: db}
}

// ReplaceAll overwrites the feeds table with the snapshot, keeping the
// slice order as the persisted follow order.
func (r *feedRepository) ReplaceAll(ctx context.Context, feeds []model.DiskFeed) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM feeds`); err != nil {
		return fmt.Errorf("clear feeds: %w", err)
	}
	for i, feed := range feeds {
		_, err := r.db.ExecContext(
			ctx,
			`INSERT INTO feeds (id, url, icon, author, description, size, followed_at, position)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			feed.ID,
			feed.URL,
			feed.Icon,
			feed.Author,
			feed.Description,
			feed.Size,
			feed.FollowedAt,
			i,
		)
		if err != nil {
			return fmt.Errorf("insert feed %d: %w", feed.ID, err)
		}
	}
	return nil
}

// ListAll returns all feeds in persisted follow order.
func (r *feedRepository) ListAll(ctx context.Context) ([]model.DiskFeed, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, url, icon, author, description, size, followed_at FROM feeds ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list feeds: %w", err)
	}
	defer rows.Close()

	var feeds []model.DiskFeed
	for rows.Next() {
		var feed model.DiskFeed
		if err := rows.Scan(&feed.ID, &feed.URL, &feed.Icon, &feed.Author, &feed.Description, &feed.Size, &feed.FollowedAt); err != nil {
			return nil, fmt.Errorf("scan feed: %w", err)
		}
		feeds = append(feeds, feed)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate feeds: %w", err)
	}

	return feeds, nil
}

func (r *feedRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM feeds WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete feed: %w", err)
	}
	return nil
}
