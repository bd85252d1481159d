package mapper

import (
	"fmt"
	"reflect"
)

// mapStruct copies src into dst field by field. Correspondence is exact name
// match only; source fields with no counterpart on the target are skipped,
// as are unexported fields on either side.
func (w *walker) mapStruct(src, dst reflect.Value, depth int) error {
	srcType := src.Type()
	dstType := dst.Type()

	for i := 0; i < srcType.NumField(); i++ {
		sf := srcType.Field(i)
		if !sf.IsExported() {
			continue
		}

		df, ok := dstType.FieldByName(sf.Name)
		if !ok || !df.IsExported() {
			continue
		}

		dv, err := dstFieldByIndex(dst, df.Index)
		if err != nil {
			return fmt.Errorf("field %s: %w", sf.Name, err)
		}

		if err := w.walk(src.Field(i), dv, depth+1); err != nil {
			return fmt.Errorf("field %s: %w", sf.Name, err)
		}
	}

	return nil
}

// dstFieldByIndex resolves a possibly promoted target field, allocating nil
// embedded pointers along the way as walk does for ordinary pointer fields.
// A nil embedded pointer behind an unexported field cannot be allocated by
// reflection and surfaces as an error rather than a panic.
func dstFieldByIndex(dst reflect.Value, index []int) (reflect.Value, error) {
	v := dst
	for i, x := range index {
		if i > 0 {
			for v.Kind() == reflect.Ptr {
				if v.IsNil() {
					if !v.CanSet() {
						return reflect.Value{}, fmt.Errorf("%w: %s", ErrUnexportedEmbedded, v.Type())
					}
					v.Set(reflect.New(v.Type().Elem()))
				}
				v = v.Elem()
			}
		}
		v = v.Field(x)
	}

	return v, nil
}
