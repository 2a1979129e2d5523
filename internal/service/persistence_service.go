package service

import (
	"context"
	"database/sql"
	"fmt"

	"squares/backend/internal/model"
	"squares/backend/internal/repository"
)

// PersistenceService moves disk images between the live state and
// sqlite. Save writes the whole image in one transaction so a crash
// mid-write never leaves a half snapshot; SaveVisited and SaveAnchor
// patch single fields without rewriting everything.
type PersistenceService interface {
	Save(ctx context.Context, img model.DiskImage) error
	Load(ctx context.Context) (model.DiskImage, error)
	SaveVisited(ctx context.Context, postKey int64) error
	SaveAnchor(ctx context.Context, anchorIndex int) error
}

type persistenceService struct {
	conn    *sql.DB
	feeds   repository.FeedRepository
	posts   repository.PostRepository
	scrolls repository.ScrollRepository
}

func NewPersistenceService(
	conn *sql.DB,
	feeds repository.FeedRepository,
	posts repository.PostRepository,
	scrolls repository.ScrollRepository,
) PersistenceService {
	return &persistenceService{conn: conn, feeds: feeds, posts: posts, scrolls: scrolls}
}

func (s *persistenceService) Save(ctx context.Context, img model.DiskImage) error {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin snapshot tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := repository.NewFeedRepository(tx).ReplaceAll(ctx, img.Feeds); err != nil {
		return err
	}
	if err := repository.NewPostRepository(tx).ReplaceAll(ctx, img.Posts); err != nil {
		return err
	}
	if err := repository.NewScrollRepository(tx).Save(ctx, img.Scroll); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot tx: %w", err)
	}
	return nil
}

func (s *persistenceService) Load(ctx context.Context) (model.DiskImage, error) {
	var img model.DiskImage
	var err error
	if img.Feeds, err = s.feeds.ListAll(ctx); err != nil {
		return model.DiskImage{}, err
	}
	if img.Posts, err = s.posts.ListAll(ctx); err != nil {
		return model.DiskImage{}, err
	}
	if img.Scroll, err = s.scrolls.Get(ctx); err != nil {
		return model.DiskImage{}, err
	}
	return img, nil
}

func (s *persistenceService) SaveVisited(ctx context.Context, postKey int64) error {
	return s.posts.UpdateVisited(ctx, postKey, true)
}

func (s *persistenceService) SaveAnchor(ctx context.Context, anchorIndex int) error {
	return s.scrolls.UpdateAnchor(ctx, anchorIndex)
}
