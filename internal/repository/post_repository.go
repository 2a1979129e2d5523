package repository

import (
	"context"
	"fmt"

	"squares/backend/internal/model"
)

type PostRepository interface {
	ReplaceAll(ctx context.Context, posts []model.DiskPost) error
	ListAll(ctx context.Context) ([]model.DiskPost, error)
	Insert(ctx context.Context, post model.DiskPost) error
	UpdateVisited(ctx context.Context, dateFound int64, visited bool) error
	DeleteByFeed(ctx context.Context, feedID int64) error
}

type postRepository struct {
	db dbtx
}

func NewPostRepository(db dbtx) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) ReplaceAll(ctx context.Context, posts []model.DiskPost) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM posts`); err != nil {
		return fmt.Errorf("clear posts: %w", err)
	}
	for _, post := range posts {
		if err := r.Insert(ctx, post); err != nil {
			return err
		}
	}
	return nil
}

// ListAll returns all posts ordered by discovery tick, which keeps each
// feed's segment in discovery order after a thaw.
func (r *postRepository) ListAll(ctx context.Context) ([]model.DiskPost, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT date_found, feed_id, path, visited FROM posts ORDER BY date_found`)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	var posts []model.DiskPost
	for rows.Next() {
		var post model.DiskPost
		var visited int
		if err := rows.Scan(&post.DateFound, &post.FeedID, &post.Path, &visited); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		post.Visited = visited != 0
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}

	return posts, nil
}

func (r *postRepository) Insert(ctx context.Context, post model.DiskPost) error {
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO posts (date_found, feed_id, path, visited) VALUES (?, ?, ?, ?)`,
		post.DateFound,
		post.FeedID,
		post.Path,
		boolToInt(post.Visited),
	)
	if err != nil {
		return fmt.Errorf("insert post %d: %w", post.DateFound, err)
	}
	return nil
}

func (r *postRepository) UpdateVisited(ctx context.Context, dateFound int64, visited bool) error {
	_, err := r.db.ExecContext(
		ctx,
		`UPDATE posts SET visited = ? WHERE date_found = ?`,
		boolToInt(visited),
		dateFound,
	)
	if err != nil {
		return fmt.Errorf("update post visited: %w", err)
	}
	return nil
}

func (r *postRepository) DeleteByFeed(ctx context.Context, feedID int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE feed_id = ?`, feedID); err != nil {
		return fmt.Errorf("delete posts by feed: %w", err)
	}
	return nil
}
