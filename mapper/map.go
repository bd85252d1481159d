package mapper

import (
	"fmt"
	"reflect"

	"github.com/trevalexandro/AutoMapper/primitive"
)

// mapMap maps the values of a map source into a map target under the same
// primitive/composite rules as slices. Keys are carried over as-is and must
// be assignable between the two map types.
func (w *walker) mapMap(src, dst reflect.Value, depth int) error {
	if src.IsNil() {
		return nil
	}

	if src.Type().AssignableTo(dst.Type()) && primitive.FromReflectType(src.Type().Elem()) != 0 {
		dst.Set(src)
		return nil
	}

	if !src.Type().Key().AssignableTo(dst.Type().Key()) {
		return fmt.Errorf("%w: map key %s is not assignable to %s",
			ErrIncompatibleTypes, src.Type().Key(), dst.Type().Key())
	}

	out := reflect.MakeMapWithSize(dst.Type(), src.Len())

	iter := src.MapRange()
	for iter.Next() {
		elem := reflect.New(dst.Type().Elem()).Elem()
		if err := w.walk(iter.Value(), elem, depth+1); err != nil {
			return fmt.Errorf("key %v: %w", iter.Key().Interface(), err)
		}

		out.SetMapIndex(iter.Key(), elem)
	}

	dst.Set(out)

	return nil
}
