package flatrb

// Cloner is an interface that enables deep cloning of values of type V.
// If a value implements Cloner[V], Copy and Transform use its Clone
// method instead of a shallow assignment, so a value holding its own
// backing storage (a slice, a pointer) does not end up aliased between
// the source and destination trees.
type Cloner[V any] interface {
	Clone() V
}

func cloneValue[V any](v V) V {
	if c, ok := any(v).(Cloner[V]); ok {
		return c.Clone()
	}
	return v
}
