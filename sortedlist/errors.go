// Package sortedlist implements the comparator-ordered list (L4): a
// list.List kept in comparator order, optionally rejecting duplicates to
// behave as a sorted set.
package sortedlist

import (
	"errors"

	"github.com/ortreego/ortree/list"
)

// Re-exported so callers of sortedlist need not import list for the
// sentinels shared with it.
var (
	ErrOutOfRange             = list.ErrOutOfRange
	ErrNotFound               = list.ErrNotFound
	ErrAlreadyRemoved         = list.ErrAlreadyRemoved
	ErrConcurrentModification = list.ErrConcurrentModification
	ErrTreeMismatch           = list.ErrTreeMismatch
)

var (
	// ErrIllegalPosition is returned when an after_id/before_id hint
	// conflicts with the comparator: the existing neighbor there already
	// sorts on the wrong side of the value being added.
	ErrIllegalPosition = errors.New("ortree: illegal position for comparator order")

	// ErrElementExists is the error kind for a distinct (set-mode)
	// collision. Add does not return it: a duplicate rejected by a distinct
	// list is reported through Add's inserted result instead.
	ErrElementExists = errors.New("ortree: element already exists in distinct list")
)
