package flatrb

import "fmt"

// Kind identifies one of the error conditions a Tree can report. Missing
// keys are never errors; Kind values only ever describe capacity,
// allocation, width, or predicate failures.
type Kind uint8

const (
	// CapacityExceeded is returned when a requested capacity or live count
	// would exceed the index width's MAX_COUNT.
	CapacityExceeded Kind = iota
	// AllocFail is returned when a backing (re)allocation is legal under
	// the index width's MAX_COUNT but would overflow what a slice can
	// address on this platform. The heavy tier of ConditionalDelete can
	// hit this internally when rebuilding into a fresh tree; rather than
	// surface it, that tier falls back to the medium tier instead.
	AllocFail
	// WidthMismatch is returned by SetBacking when the supplied image's
	// index width differs from the receiver's.
	WidthMismatch
	// InvalidPredicate is returned when a predicate passed to a bulk
	// operation reports a failure of its own, which is propagated rather
	// than swallowed.
	InvalidPredicate
)

func (k Kind) String() string {
	switch k {
	case CapacityExceeded:
		return "capacity exceeded"
	case AllocFail:
		return "allocation failed"
	case WidthMismatch:
		return "index width mismatch"
	case InvalidPredicate:
		return "invalid predicate"
	default:
		return "unknown error"
	}
}

// Error is the error type returned by Tree methods that can fail. Wrap it
// with errors.Is against the package's sentinel Err* values, or switch on
// Kind directly.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("flatrb: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("flatrb: %s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is one of the package's Err* sentinels with a
// matching Kind, so callers can write errors.Is(err, flatrb.ErrAllocFail).
func (e *Error) Is(target error) bool {
	sentinel, ok := target.(*Error)
	if !ok {
		return false
	}
	return sentinel.Err == nil && sentinel.Op == "" && e.Kind == sentinel.Kind
}

// Sentinel values for use with errors.Is. They carry no Op or wrapped err
// of their own; only their Kind is consulted by (*Error).Is.
var (
	ErrCapacityExceeded = &Error{Kind: CapacityExceeded}
	ErrAllocFail        = &Error{Kind: AllocFail}
	ErrWidthMismatch    = &Error{Kind: WidthMismatch}
	ErrInvalidPredicate = &Error{Kind: InvalidPredicate}
)

func newError(op string, kind Kind) *Error {
	return &Error{Op: op, Kind: kind}
}

func wrapError(op string, kind Kind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err}
}
