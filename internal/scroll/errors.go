package scroll

import (
	"errors"
	"fmt"
)

// ErrDanglingReference is the sentinel all reference failures match via
// errors.Is. Operations never paper over a missing feed or post with a
// placeholder; they fail and the caller decides.
var ErrDanglingReference = errors.New("dangling reference")

// ReferenceError reports an operation that addressed a feed or post id
// not present in the registry or store.
type ReferenceError struct {
	Resource string // "feed" or "post"
	ID       int64
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("unknown %s: %d", e.Resource, e.ID)
}

func (e *ReferenceError) Is(target error) bool {
	return target == ErrDanglingReference
}

func unknownFeed(id int64) error {
	return &ReferenceError{Resource: "feed", ID: id}
}

func unknownPost(id int64) error {
	return &ReferenceError{Resource: "post", ID: id}
}
