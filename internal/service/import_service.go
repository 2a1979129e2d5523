package service

import (
	"context"
	"errors"

	"squares/backend/internal/importer"
)

type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// ImportService routes export records into the post store. Records are
// processed in order, one at a time, each through the same record path
// every other post takes; a malformed record stops the run but leaves
// the posts imported before it in place.
type ImportService interface {
	Import(ctx context.Context, feedID int64, records []importer.ExportRecord) (ImportResult, error)
}

type importService struct {
	scrolls ScrollService
	persist PersistenceService
	tasks   ImportTaskService
}

func NewImportService(scrolls ScrollService, persist PersistenceService, tasks ImportTaskService) ImportService {
	return &importService{scrolls: scrolls, persist: persist, tasks: tasks}
}

func (s *importService) Import(ctx context.Context, feedID int64, records []importer.ExportRecord) (ImportResult, error) {
	if _, err := s.scrolls.Feed(feedID); err != nil {
		return ImportResult{}, err
	}

	var result ImportResult
	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		norm, err := importer.NormalizeRecord(feedID, i, rec)
		if err != nil {
			return result, err
		}
		if _, err := s.scrolls.DiscoverAt(norm.FeedID, norm.Path, norm.DateFound); err != nil {
			if errors.Is(err, ErrConflict) {
				result.Skipped++
				continue
			}
			return result, err
		}
		result.Imported++
		if s.tasks != nil {
			s.tasks.Update(i+1, norm.Path)
		}
	}

	if err := s.persist.Save(ctx, s.scrolls.Snapshot()); err != nil {
		return result, err
	}
	return result, nil
}
