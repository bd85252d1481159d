package mapper

import (
	"fmt"
	"reflect"

	"github.com/trevalexandro/AutoMapper/primitive"
)

// mapScalar copies a primitive value. Identical or assignable types copy
// directly; otherwise a Go conversion is applied when the underlying kind
// pair is lossless. Narrowing numbers, integer-to-string code points and
// everything else fail the whole mapping as a type mismatch.
func mapScalar(src, dst reflect.Value) error {
	srcType, dstType := src.Type(), dst.Type()

	if srcType.AssignableTo(dstType) {
		dst.Set(src)
		return nil
	}

	srcKind := primitive.Underlying(srcType)
	dstKind := primitive.Underlying(dstType)

	if primitive.ConversionOK(srcKind, dstKind) && srcType.ConvertibleTo(dstType) {
		dst.Set(src.Convert(dstType))
		return nil
	}

	return fmt.Errorf("%w: cannot copy %s into %s", ErrIncompatibleTypes, srcType, dstType)
}

// mapInterface assigns the source value into an interface-typed target.
func mapInterface(src, dst reflect.Value) error {
	if !src.Type().AssignableTo(dst.Type()) {
		return fmt.Errorf("%w: %s does not implement %s", ErrIncompatibleTypes, src.Type(), dst.Type())
	}

	dst.Set(src)

	return nil
}
