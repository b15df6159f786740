package tether

import "reflect"

// box lifts a value-shaped V into a single heap object so the side
// table can hold, swap, and release it as one reference. Unboxing
// never fails: only the key that created a box can read it back, and
// that key fixed V at construction.
type box[V any] struct {
	v V
}

// pointerShaped reports whether V is stored directly in the table.
// Pointer-shaped kinds keep their identity without a box; everything
// else is lifted into one. Decided once per key, at construction.
func pointerShaped[V any]() bool {
	switch reflect.TypeFor[V]().Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return true
	}
	return false
}
