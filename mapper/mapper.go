// Package mapper copies same-named fields between differently-typed values
// using runtime reflection. Nested structs and collections of structs are
// mapped recursively; built-in scalar, string and date/time fields are
// copied by value. An optional override callback runs after the automatic
// copy to fill in whatever the name-matching convention cannot express.
package mapper

import (
	"fmt"
	"reflect"
)

// OverrideFunc is invoked once per top-level call, after automatic field
// copying, with the original source and the populated target.
type OverrideFunc[T any] func(src any, dst *T)

// Map copies every same-named field of src into a freshly constructed T.
// An absent source (nil, or a nil pointer/slice/map) yields the zero T.
func Map[T any](src any, opts ...Option) (T, error) {
	var dst T
	err := MapInto(src, &dst, opts...)

	return dst, err
}

// MapWith behaves like Map and then applies override to the result. The
// override is skipped when the source is absent, matching Map's short-circuit.
func MapWith[T any](src any, override OverrideFunc[T], opts ...Option) (T, error) {
	dst, err := Map[T](src, opts...)
	if err != nil {
		return dst, err
	}

	if override != nil && !absent(src) {
		override(src, &dst)
	}

	return dst, nil
}

// MapIntoWith combines MapInto and MapWith: the existing target behind dst
// is populated in place and the override applied to it afterwards.
func MapIntoWith[T any](src any, dst *T, override OverrideFunc[T], opts ...Option) error {
	if dst == nil {
		return ErrTargetNotPointer
	}

	if err := MapInto(src, dst, opts...); err != nil {
		return err
	}

	if override != nil && !absent(src) {
		override(src, dst)
	}

	return nil
}

// MapInto populates an existing target in place. dst must be a non-nil
// pointer to the value being updated.
func MapInto(src, dst any, opts ...Option) error {
	dstVal := reflect.ValueOf(dst)
	if dstVal.Kind() != reflect.Ptr || dstVal.IsNil() {
		return ErrTargetNotPointer
	}

	w := newWalker(opts...)

	return w.walk(reflect.ValueOf(src), dstVal.Elem(), 0)
}

type walker struct {
	maxDepth int
}

func newWalker(opts ...Option) *walker {
	w := &walker{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		if opt != nil {
			opt(w)
		}
	}

	return w
}

// walk maps src into the settable dst value. Absent sources leave dst at
// its zero value: that is the null-source guard, not an error.
func (w *walker) walk(src, dst reflect.Value, depth int) error {
	if depth > w.maxDepth {
		return fmt.Errorf("%w: more than %d levels", ErrDepthExceeded, w.maxDepth)
	}

	if !src.IsValid() {
		return nil
	}

	for src.Kind() == reflect.Ptr || src.Kind() == reflect.Interface {
		if src.IsNil() {
			return nil
		}
		src = src.Elem()
	}

	for dst.Kind() == reflect.Ptr {
		if dst.IsNil() {
			dst.Set(reflect.New(dst.Type().Elem()))
		}
		dst = dst.Elem()
	}

	switch Dispatch(src.Type(), dst.Type()) {
	case DispatcherScalar:
		return mapScalar(src, dst)
	case DispatcherInterface:
		return mapInterface(src, dst)
	case DispatcherSlice:
		return w.mapSlice(src, dst, depth)
	case DispatcherMap:
		return w.mapMap(src, dst, depth)
	case DispatcherStruct:
		return w.mapStruct(src, dst, depth)
	default:
		return fmt.Errorf("%w: %s into %s", ErrUnsupportedShape, src.Type(), dst.Type())
	}
}

// absent reports whether src carries no value to map from.
func absent(src any) bool {
	if src == nil {
		return true
	}

	v := reflect.ValueOf(src)
	switch v.Kind() {
	default:
		return false
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map:
		return v.IsNil()
	}
}
