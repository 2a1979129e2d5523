package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"squares/backend/internal/model"
)

type ScrollRepository interface {
	Save(ctx context.Context, scroll model.DiskScroll) error
	UpdateAnchor(ctx context.Context, anchorIndex int) error
	Get(ctx context.Context) (model.DiskScroll, error)
}

type scrollRepository struct {
	db dbtx
}

func NewScrollRepository(db dbtx) ScrollRepository {
	return &scrollRepository{db: db}
}

// Save overwrites the single scroll row and its ordered feed list.
func (r *scrollRepository) Save(ctx context.Context, scroll model.DiskScroll) error {
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO scroll (id, anchor_index) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET anchor_index = excluded.anchor_index`,
		scroll.AnchorIndex,
	)
	if err != nil {
		return fmt.Errorf("save scroll: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM scroll_feeds`); err != nil {
		return fmt.Errorf("clear scroll feeds: %w", err)
	}
	for i, feedID := range scroll.FeedIDs {
		_, err := r.db.ExecContext(
			ctx,
			`INSERT INTO scroll_feeds (position, feed_id) VALUES (?, ?)`,
			i,
			feedID,
		)
		if err != nil {
			return fmt.Errorf("insert scroll feed %d: %w", feedID, err)
		}
	}
	return nil
}

// UpdateAnchor persists only the anchor, leaving the feed list alone.
// Anchor moves are frequent; rewriting the whole snapshot for each one
// would be wasteful.
func (r *scrollRepository) UpdateAnchor(ctx context.Context, anchorIndex int) error {
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO scroll (id, anchor_index) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET anchor_index = excluded.anchor_index`,
		anchorIndex,
	)
	if err != nil {
		return fmt.Errorf("update anchor: %w", err)
	}
	return nil
}

// Get returns the persisted scroll. A database that never saw a save
// yields the zero scroll.
func (r *scrollRepository) Get(ctx context.Context) (model.DiskScroll, error) {
	var scroll model.DiskScroll
	err := r.db.QueryRowContext(ctx, `SELECT anchor_index FROM scroll WHERE id = 1`).Scan(&scroll.AnchorIndex)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.DiskScroll{}, nil
		}
		return model.DiskScroll{}, fmt.Errorf("get scroll: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `SELECT feed_id FROM scroll_feeds ORDER BY position`)
	if err != nil {
		return model.DiskScroll{}, fmt.Errorf("list scroll feeds: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var feedID int64
		if err := rows.Scan(&feedID); err != nil {
			return model.DiskScroll{}, fmt.Errorf("scan scroll feed: %w", err)
		}
		scroll.FeedIDs = append(scroll.FeedIDs, feedID)
	}
	if err := rows.Err(); err != nil {
		return model.DiskScroll{}, fmt.Errorf("iterate scroll feeds: %w", err)
	}

	return scroll, nil
}
