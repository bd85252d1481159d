package mapper

import (
	"reflect"

	"github.com/trevalexandro/AutoMapper/primitive"
)

type DispatcherEnum int

const (
	DispatcherUnknown DispatcherEnum = iota
	DispatcherScalar
	DispatcherInterface
	DispatcherSlice
	DispatcherMap
	DispatcherStruct

	// DispatcherTotal is a constant that represents the total number of kinds defined
	DispatcherTotal = int(iota)
)

// Dispatch selects the mapping strategy for a source/target type pair.
// Both types must already be stripped of pointer wrappers.
func Dispatch(src, dst reflect.Type) DispatcherEnum {
	if src.Kind() == reflect.Ptr || dst.Kind() == reflect.Ptr {
		panic("dispatcher is not allowing pointer reflect types")
	}

	if dst.Kind() == reflect.Interface {
		return DispatcherInterface
	}

	if dst.Kind() == reflect.Slice || dst.Kind() == reflect.Array {
		if src.Kind() == reflect.Slice || src.Kind() == reflect.Array {
			return DispatcherSlice
		}

		return DispatcherUnknown
	}

	if dst.Kind() == reflect.Map {
		if src.Kind() == reflect.Map {
			return DispatcherMap
		}

		return DispatcherUnknown
	}

	// time.Time is a struct but copies by value, so primitives go first
	dstKind := primitive.FromReflectType(dst)
	if dstKind != 0 {
		srcKind := primitive.FromReflectType(src)
		if srcKind != 0 {
			return DispatcherScalar
		}

		return DispatcherUnknown
	}

	if dst.Kind() == reflect.Struct {
		if src.Kind() == reflect.Struct {
			return DispatcherStruct
		}

		return DispatcherUnknown
	}

	return DispatcherUnknown
}
