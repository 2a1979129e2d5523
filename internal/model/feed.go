package model

// UnknownAuthor is shown when a feed never declared an author.
const UnknownAuthor = "unknown author"

// Feed is a followed content source. The ID is the millisecond tick at
// follow time, made unique by the registry clock.
type Feed struct {
	ID          int64
	URL         string
	Icon        string
	Author      string
	Description string
	Size        int64 // byte size of the last fetched feed text
	FollowedAt  int64 // ms
}

// DisplayAuthor returns the author name, falling back to a placeholder
// for feeds that never declared one.
func (f *Feed) DisplayAuthor() string {
	if f.Author == "" {
		return UnknownAuthor
	}
	return f.Author
}
