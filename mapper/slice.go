package mapper

import (
	"fmt"
	"reflect"

	"github.com/trevalexandro/AutoMapper/primitive"
)

// mapSlice maps a slice or array source into a slice or array target. A
// source slice of primitive elements that is directly assignable is aliased
// into the target without per-element copying; everything else is mapped
// element by element.
func (w *walker) mapSlice(src, dst reflect.Value, depth int) error {
	if src.Kind() == reflect.Slice && src.IsNil() {
		return nil
	}

	if src.Type().AssignableTo(dst.Type()) && primitive.FromReflectType(src.Type().Elem()) != 0 {
		dst.Set(src)
		return nil
	}

	if dst.Kind() == reflect.Array {
		n := min(src.Len(), dst.Len())
		for i := 0; i < n; i++ {
			if err := w.walk(src.Index(i), dst.Index(i), depth+1); err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}
		}

		return nil
	}

	out := reflect.MakeSlice(dst.Type(), src.Len(), src.Len())
	for i := 0; i < src.Len(); i++ {
		if err := w.walk(src.Index(i), out.Index(i), depth+1); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}

	dst.Set(out)

	return nil
}
