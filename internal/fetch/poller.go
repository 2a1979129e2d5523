package fetch

import (
	"context"

	"golang.org/x/sync/errgroup"

	"squares/backend/internal/logger"
	"squares/backend/internal/model"
	"squares/backend/internal/scroll"
)

// Timeline is the slice of the scroll service the poller needs. It is
// defined here to avoid an import cycle with the service package.
type Timeline interface {
	Feeds() []model.Feed
	SyncFeed(feedID int64, meta scroll.FeedMeta, paths []string) (int, error)
	Snapshot() model.DiskImage
}

// Saver persists a snapshot after a sweep.
type Saver interface {
	Save(ctx context.Context, img model.DiskImage) error
}

func metaFromResult(res Result) scroll.FeedMeta {
	return scroll.FeedMeta{
		Author:      res.Author,
		Icon:        res.Icon,
		Description: res.Description,
		Size:        res.Size,
	}
}

// Poller refreshes every followed feed and persists one snapshot after
// the sweep. Fetches run concurrently; the scroll service serializes
// the actual mutations, so interleaved completions across feeds are
// safe.
type Poller struct {
	timeline Timeline
	persist  Saver
	source   Source
}

func NewPoller(timeline Timeline, persist Saver, source Source) *Poller {
	return &Poller{timeline: timeline, persist: persist, source: source}
}

// PollAll fetches every feed. A feed that fails to fetch is logged and
// skipped; the sweep carries on.
func (p *Poller) PollAll(ctx context.Context) error {
	feeds := p.timeline.Feeds()
	if len(feeds) == 0 {
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, feed := range feeds {
		feed := feed
		g.Go(func() error {
			if err := p.pollFeed(ctx, feed.ID, feed.URL); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				logger.Warn("feed poll failed", "module", "fetch", "action", "poll", "resource", "feed", "result", "failed", "feed_id", feed.ID, "error", err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if err := p.persist.Save(ctx, p.timeline.Snapshot()); err != nil {
		return err
	}
	return nil
}

func (p *Poller) pollFeed(ctx context.Context, feedID int64, feedURL string) error {
	res, err := p.source.Fetch(ctx, feedURL)
	if err != nil {
		return err
	}
	added, err := p.timeline.SyncFeed(feedID, metaFromResult(res), res.Paths)
	if err != nil {
		return err
	}
	if added > 0 {
		logger.Info("new posts discovered", "module", "fetch", "action", "poll", "resource", "feed", "result", "ok", "feed_id", feedID, "added", added)
	}
	return nil
}
