package ordermap

import (
	"github.com/google/uuid"

	"github.com/ortreego/ortree/lock"
)

// Entry is the public key/value pair view used for bulk construction and
// the entries iterator; the map's internal storage type is unexported.
type Entry[K any, V any] struct {
	Key   K
	Value V
}

// Option configures a Map at construction.
type Option[K any, V any] func(o *options[K, V])

type options[K any, V any] struct {
	locker        lock.Locker
	identity      uuid.UUID
	initialValues []Entry[K, V]
}

func defaultOptions[K any, V any]() options[K, V] {
	return options[K, V]{
		locker:   lock.NewStampedLocker(),
		identity: uuid.New(),
	}
}

// WithLocker selects the concurrency strategy, mirroring list.WithLocker.
func WithLocker[K any, V any](l lock.Locker) Option[K, V] {
	return func(o *options[K, V]) { o.locker = l }
}

// WithIdentity assigns an explicit identity tag. Defaults to a fresh
// random UUID.
func WithIdentity[K any, V any](id uuid.UUID) Option[K, V] {
	return func(o *options[K, V]) { o.identity = id }
}

// WithInitialValues bulk-populates the map at construction time via Put,
// in argument order (later entries overwrite earlier ones with the same
// key).
func WithInitialValues[K any, V any](values []Entry[K, V]) Option[K, V] {
	return func(o *options[K, V]) { o.initialValues = values }
}
