package sortedlist

import (
	"github.com/google/uuid"

	"github.com/ortreego/ortree/lock"
)

// Option configures a SortedList at construction.
type Option[E any] func(o *options[E])

type options[E any] struct {
	distinct      bool
	locker        lock.Locker
	identity      uuid.UUID
	initialValues []E
}

func defaultOptions[E any]() options[E] {
	return options[E]{
		locker:   lock.NewStampedLocker(),
		identity: uuid.New(),
	}
}

// WithDistinct rejects equal-comparing values when true, making the
// sorted list behave as a sorted set. Defaults to false.
func WithDistinct[E any](distinct bool) Option[E] {
	return func(o *options[E]) { o.distinct = distinct }
}

// WithLocker selects the concurrency strategy, mirroring list.WithLocker.
func WithLocker[E any](l lock.Locker) Option[E] {
	return func(o *options[E]) { o.locker = l }
}

// WithIdentity assigns an explicit identity tag. Defaults to a fresh
// random UUID.
func WithIdentity[E any](id uuid.UUID) Option[E] {
	return func(o *options[E]) { o.identity = id }
}

// WithInitialValues bulk-populates the list at construction time, each
// value inserted in comparator order via the ordinary Add path.
func WithInitialValues[E any](values []E) Option[E] {
	return func(o *options[E]) { o.initialValues = values }
}
