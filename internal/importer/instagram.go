// Package importer normalizes third-party data-export records into the
// shape the post store accepts. It never writes to the store itself;
// callers route its output through Store.Record so key uniqueness and
// feed resolution stay enforced in one place.
package importer

import (
	"errors"
	"fmt"
)

// ErrBadRecord is the sentinel all format failures match via errors.Is.
var ErrBadRecord = errors.New("malformed export record")

// FormatError reports an export record missing a required field.
type FormatError struct {
	Index int    // position of the record in the input
	Field string // missing field
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("export record %d: missing %s", e.Index, e.Field)
}

func (e *FormatError) Is(target error) bool {
	return target == ErrBadRecord
}

// MediaEntry is one media attachment inside an exported post. Only the
// first entry of a record is relevant.
type MediaEntry struct {
	URI               string `json:"uri"`
	CreationTimestamp int64  `json:"creation_timestamp"` // seconds
	Title             string `json:"title"`
}

// ExportRecord is one exported post, as produced by the export file
// parser (an external collaborator; this package sees parsed records).
type ExportRecord struct {
	Media []MediaEntry `json:"media"`
}

// NormalizedPost is an export record mapped onto the store's vocabulary:
// a path under the owning feed and a millisecond discovery tick.
type NormalizedPost struct {
	FeedID    int64
	Path      string
	DateFound int64 // ms
}

// NormalizeRecord maps one export record onto the target feed. Export
// timestamps are in seconds and are converted to the millisecond tick
// convention. A record without a media URI is a FormatError; index is
// only used to report where in the input the bad record sat.
func NormalizeRecord(feedID int64, index int, rec ExportRecord) (NormalizedPost, error) {
	if len(rec.Media) == 0 || rec.Media[0].URI == "" {
		return NormalizedPost{}, &FormatError{Index: index, Field: "media uri"}
	}
	primary := rec.Media[0]
	return NormalizedPost{
		FeedID:    feedID,
		Path:      primary.URI,
		DateFound: primary.CreationTimestamp * 1000,
	}, nil
}

// Normalize maps export records onto the target feed, one normalized
// post per record, preserving input order. A bad record fails the whole
// batch.
func Normalize(feedID int64, records []ExportRecord) ([]NormalizedPost, error) {
	out := make([]NormalizedPost, 0, len(records))
	for i, rec := range records {
		norm, err := NormalizeRecord(feedID, i, rec)
		if err != nil {
			return nil, err
		}
		out = append(out, norm)
	}
	return out, nil
}
