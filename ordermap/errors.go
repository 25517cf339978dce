// Package ordermap implements the sorted map / multi-map (L5): a
// sortedlist.SortedList of key/value entries ordered by a key comparator,
// adapted to present map-like key/value/entry views instead of a plain
// entry set.
package ordermap

import (
	"errors"

	"github.com/ortreego/ortree/sortedlist"
)

var (
	ErrNotFound               = sortedlist.ErrNotFound
	ErrAlreadyRemoved         = sortedlist.ErrAlreadyRemoved
	ErrConcurrentModification = sortedlist.ErrConcurrentModification
	ErrTreeMismatch           = sortedlist.ErrTreeMismatch

	// ErrUnsupportedOperation is returned by the key-set view's Add, which
	// has no value to pair a bare key with.
	ErrUnsupportedOperation = errors.New("ortree: unsupported operation on this view")
)
