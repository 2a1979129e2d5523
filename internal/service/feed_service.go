package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"squares/backend/internal/fetch"
	"squares/backend/internal/model"
	"squares/backend/internal/scroll"
)

type FeedService interface {
	Follow(ctx context.Context, feedURL string) (model.Feed, error)
	Unfollow(ctx context.Context, feedID int64) error
	List(ctx context.Context) []model.Feed
}

type feedService struct {
	scrolls ScrollService
	persist PersistenceService
	source  fetch.Source
}

func NewFeedService(scrolls ScrollService, persist PersistenceService, source fetch.Source) FeedService {
	return &feedService{scrolls: scrolls, persist: persist, source: source}
}

// Follow fetches the feed text, registers the feed and records its
// current posts, then persists a snapshot.
func (s *feedService) Follow(ctx context.Context, feedURL string) (model.Feed, error) {
	trimmed := strings.TrimSpace(feedURL)
	if !isValidURL(trimmed) {
		return model.Feed{}, ErrInvalid
	}
	for _, existing := range s.scrolls.Feeds() {
		if existing.URL == trimmed {
			return model.Feed{}, ErrConflict
		}
	}

	res, err := s.source.Fetch(ctx, trimmed)
	if err != nil {
		return model.Feed{}, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	feed := s.scrolls.Register(scroll.FeedMeta{
		URL:         trimmed,
		Icon:        res.Icon,
		Author:      res.Author,
		Description: res.Description,
		Size:        res.Size,
	})
	if _, err := s.scrolls.SyncFeed(feed.ID, scroll.FeedMeta{
		Icon:        res.Icon,
		Description: res.Description,
		Size:        res.Size,
	}, res.Paths); err != nil {
		return model.Feed{}, err
	}

	if err := s.persist.Save(ctx, s.scrolls.Snapshot()); err != nil {
		return model.Feed{}, err
	}
	refreshed, err := s.scrolls.Feed(feed.ID)
	if err != nil {
		return model.Feed{}, err
	}
	return refreshed, nil
}

// Unfollow removes the feed and, through the registry cascade, all its
// posts. The registry itself treats unknown ids as a no-op; the API
// reports them.
func (s *feedService) Unfollow(ctx context.Context, feedID int64) error {
	if _, err := s.scrolls.Feed(feedID); err != nil {
		return ErrNotFound
	}
	s.scrolls.Unregister(feedID)
	return s.persist.Save(ctx, s.scrolls.Snapshot())
}

func (s *feedService) List(ctx context.Context) []model.Feed {
	return s.scrolls.Feeds()
}

func isValidURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
