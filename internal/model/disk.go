package model

// Disk shapes are the minimal serializable projection of the runtime
// model. Owning references are replaced by bare ids so the persisted
// graph has no cycles; ids are resolved against the registry on load.

type DiskFeed struct {
	ID          int64
	URL         string
	Icon        string
	Author      string
	Description string
	Size        int64
	FollowedAt  int64
}

type DiskPost struct {
	DateFound int64
	Visited   bool
	Path      string
	FeedID    int64
}

type DiskScroll struct {
	AnchorIndex int
	FeedIDs     []int64 // display order
}

// DiskImage is one point-in-time snapshot of the whole state.
type DiskImage struct {
	Feeds  []DiskFeed
	Posts  []DiskPost
	Scroll DiskScroll
}
