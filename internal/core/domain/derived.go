package domain

// Derived wraps a field that is normally computed from other inputs but can
// be pinned by an explicit user override. Recompute refreshes only computed
// values and leaves overridden ones untouched; returning an overridden value
// to computed requires an explicit Clear (a deliberate user action, e.g.
// re-entering the rate the value derives from).
type Derived[T any] struct {
	Value      T    `json:"value"`
	Overridden bool `json:"overridden"`
}

// Computed constructs a Derived in the computed state.
func Computed[T any](v T) Derived[T] {
	return Derived[T]{Value: v}
}

// Overridden constructs a Derived pinned by a user override.
func Overridden[T any](v T) Derived[T] {
	return Derived[T]{Value: v, Overridden: true}
}

// Recompute replaces the value only when it is not overridden.
func (d Derived[T]) Recompute(v T) Derived[T] {
	if d.Overridden {
		return d
	}
	return Derived[T]{Value: v}
}

// Override pins the value; subsequent Recompute calls are no-ops until Clear.
func (d Derived[T]) Override(v T) Derived[T] {
	return Derived[T]{Value: v, Overridden: true}
}

// Clear discards any override and sets a fresh computed value.
func (d Derived[T]) Clear(v T) Derived[T] {
	return Derived[T]{Value: v}
}
