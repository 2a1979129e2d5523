package importer_test

import (
	"testing"

	"squares/backend/internal/importer"

	"github.com/stretchr/testify/require"
)

func TestNormalize_MapsSecondsToMilliseconds(t *testing.T) {
	records := []importer.ExportRecord{
		{Media: []importer.MediaEntry{{URI: "media/first.jpg", CreationTimestamp: 1000, Title: "first"}}},
		{Media: []importer.MediaEntry{{URI: "media/second.jpg", CreationTimestamp: 2000, Title: "second"}}},
	}

	normalized, err := importer.Normalize(7, records)
	require.NoError(t, err)
	require.Len(t, normalized, 2)

	require.Equal(t, int64(7), normalized[0].FeedID)
	require.Equal(t, "media/first.jpg", normalized[0].Path)
	require.Equal(t, int64(1_000_000), normalized[0].DateFound)
	require.Equal(t, "media/second.jpg", normalized[1].Path)
	require.Equal(t, int64(2_000_000), normalized[1].DateFound)
}

func TestNormalize_OnlyPrimaryMediaEntryCounts(t *testing.T) {
	records := []importer.ExportRecord{
		{Media: []importer.MediaEntry{
			{URI: "media/primary.jpg", CreationTimestamp: 10},
			{URI: "media/extra.jpg", CreationTimestamp: 20},
		}},
	}

	normalized, err := importer.Normalize(1, records)
	require.NoError(t, err)
	require.Len(t, normalized, 1)
	require.Equal(t, "media/primary.jpg", normalized[0].Path)
	require.Equal(t, int64(10_000), normalized[0].DateFound)
}

func TestNormalize_MissingMediaURIFails(t *testing.T) {
	records := []importer.ExportRecord{
		{Media: []importer.MediaEntry{{URI: "media/ok.jpg", CreationTimestamp: 1}}},
		{Media: nil},
	}

	_, err := importer.Normalize(1, records)
	require.Error(t, err)
	require.ErrorIs(t, err, importer.ErrBadRecord)

	var formatErr *importer.FormatError
	require.ErrorAs(t, err, &formatErr)
	require.Equal(t, 1, formatErr.Index)
	require.EqualError(t, err, "export record 1: missing media uri")
}

func TestNormalizeRecord_EmptyURIFails(t *testing.T) {
	_, err := importer.NormalizeRecord(1, 0, importer.ExportRecord{
		Media: []importer.MediaEntry{{URI: "", CreationTimestamp: 5}},
	})
	require.ErrorIs(t, err, importer.ErrBadRecord)
}
