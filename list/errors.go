package list

import "errors"

// Sentinel error kinds, following the source's error-kind taxonomy.
// sortedlist wraps these same sentinels via errors.Is and adds its own two
// insertion-specific kinds (ErrIllegalPosition, ErrElementExists).
var (
	// ErrOutOfRange is returned when an index falls outside [0, size).
	ErrOutOfRange = errors.New("ortree: index out of range")

	// ErrNotFound is returned for an element identifier that never
	// belonged to this list, or whose node was removed and the list has
	// since mutated further.
	ErrNotFound = errors.New("ortree: element not found")

	// ErrAlreadyRemoved is returned by a mutable element view whose node is
	// no longer present.
	ErrAlreadyRemoved = errors.New("ortree: element already removed")

	// ErrConcurrentModification is returned when a spliterator's anchor was
	// removed by another goroutine and the spliterator then tried to move.
	ErrConcurrentModification = errors.New("ortree: concurrent structural modification")

	// ErrTreeMismatch is returned when an element identifier argument does
	// not belong to the receiver's list.
	ErrTreeMismatch = errors.New("ortree: element belongs to a different list")

	// ErrUnsupportedOperation is returned for a structural operation
	// attempted on an immutable or view-type handle.
	ErrUnsupportedOperation = errors.New("ortree: unsupported operation on this view")

	// ErrIllegalElement is the error kind for a value a container refuses
	// to hold. No operation in this module returns it.
	ErrIllegalElement = errors.New("ortree: illegal element value")
)
