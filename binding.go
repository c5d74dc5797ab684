package retained

import "slices"

// PropertyBindingKey identifies one animated property holding values of
// type T. The phantom type parameter keeps transform and float keys from
// being mixed up at compile time.
type PropertyBindingKey[T any] struct {
	ID PropertyBindingID
}

// Key is a convenience function to create a PropertyBindingKey.
func Key[T any](id PropertyBindingID) PropertyBindingKey[T] {
	return PropertyBindingKey[T]{ID: id}
}

// PropertyBinding is a value that is either a literal or a reference to an
// animated property plus a fallback literal. Literal bindings resolve to
// their literal directly; keyed bindings resolve to the registered value
// for the key if one exists, otherwise to the fallback. Resolution never
// fails.
type PropertyBinding[T any] struct {
	// Key identifies the animated property. Only meaningful when Keyed.
	Key PropertyBindingKey[T]

	// Value is the literal value, or the fallback when Keyed.
	Value T

	// Keyed reports whether the binding references an animated property.
	Keyed bool
}

// ValueBinding creates a binding that always resolves to value.
func ValueBinding[T any](value T) PropertyBinding[T] {
	return PropertyBinding[T]{Value: value}
}

// KeyedBinding creates a binding that resolves against key, falling back
// to fallback while no value is registered for it.
func KeyedBinding[T any](key PropertyBindingKey[T], fallback T) PropertyBinding[T] {
	return PropertyBinding[T]{Key: key, Value: fallback, Keyed: true}
}

// PropertyValue pairs a binding key with a concrete value for delivery in
// an update batch.
type PropertyValue[T any] struct {
	Key   PropertyBindingKey[T]
	Value T
}

// DynamicProperties is one ordered batch of animated property updates as
// delivered by the transaction layer: transform bindings and scalar float
// bindings (opacities and similar).
type DynamicProperties struct {
	Transforms []PropertyValue[LayoutTransform]
	Floats     []PropertyValue[float32]
}

// Extend merges other into dp at entry granularity: an incoming entry
// overwrites the existing entry for the same binding identity in place,
// and entries for new identities are appended in order. Last writer wins.
func (dp *DynamicProperties) Extend(other DynamicProperties) {
	dp.Transforms = extendValues(dp.Transforms, other.Transforms)
	dp.Floats = extendValues(dp.Floats, other.Floats)
}

// Equal reports whether dp and other hold exactly the same entries: the
// same identities with the same values, in the same order.
func (dp DynamicProperties) Equal(other DynamicProperties) bool {
	return slices.Equal(dp.Transforms, other.Transforms) &&
		slices.Equal(dp.Floats, other.Floats)
}

// Clone returns a deep copy whose entry slices share no backing storage
// with dp.
func (dp DynamicProperties) Clone() DynamicProperties {
	return DynamicProperties{
		Transforms: slices.Clone(dp.Transforms),
		Floats:     slices.Clone(dp.Floats),
	}
}

// IsEmpty returns true if the batch carries no entries.
func (dp DynamicProperties) IsEmpty() bool {
	return len(dp.Transforms) == 0 && len(dp.Floats) == 0
}

// extendValues merges src into dst with last-writer-wins semantics per
// binding identity, preserving first-occurrence order.
func extendValues[T comparable](dst, src []PropertyValue[T]) []PropertyValue[T] {
	for _, pv := range src {
		replaced := false
		for i := range dst {
			if dst[i].Key.ID == pv.Key.ID {
				dst[i].Value = pv.Value
				replaced = true
				break
			}
		}
		if !replaced {
			dst = append(dst, pv)
		}
	}
	return dst
}
