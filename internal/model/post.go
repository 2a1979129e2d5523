package model

// Post is one discovered item. DateFound (ms tick) is its key and is
// unique across the whole store. The runtime form carries a live Feed
// pointer so readers never re-resolve the owner.
type Post struct {
	DateFound int64
	Visited   bool
	Path      string // relative to Feed.URL
	Feed      *Feed
}
