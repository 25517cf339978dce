package list

import (
	"github.com/google/uuid"

	"github.com/ortreego/ortree/lock"
)

// Option configures a List at construction, grounded on the
// Option func(o *options) pattern used across the retrieval pack's
// immutable-radix-tree configuration layer.
type Option[E any] func(o *options[E])

type options[E any] struct {
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

// WithLocker selects the concurrency strategy: lock.NewStampedLocker() for
// shared read/write access (the default), or lock.NewFailFastLocker() when
// the list is known to be single-writer and concurrent readers should fail
// fast on mutation rather than retry.
func WithLocker[E any](l lock.Locker) Option[E] {
	return func(o *options[E]) { o.locker = l }
}

// WithIdentity assigns an explicit identity tag, returned by
// List.Identity. Defaults to a fresh random UUID.
func WithIdentity[E any](id uuid.UUID) Option[E] {
	return func(o *options[E]) { o.identity = id }
}

// WithInitialValues bulk-populates the list at construction time, in
// argument order, by appending each value with Add (the same path
// Initialize falls back to when it cannot clone a tree).
func WithInitialValues[E any](values []E) Option[E] {
	return func(o *options[E]) { o.initialValues = values }
}
