package gkernel

import (
	"fmt"
	"strings"
)

// Variant identifies one of the twelve kernel formulas.
type Variant uint8

// Separable variants. The name lists the derivative axes: Gxxy is the
// second derivative in x times the first derivative in y.
const (
	G Variant = iota
	Gx
	Gy
	Gxx
	Gxy
	Gyy
	Gxxx
	Gxxy
	Gxyy
	Gyyy

	// LeftHalf is the rotated first derivative in y kept on the half plane
	// yy < 0 of the kernel's local frame.
	LeftHalf

	// RightHalf is the rotated first derivative in y kept on the half plane
	// yy >= 0 of the kernel's local frame.
	RightHalf

	numVariants
)

// numSeparable is the number of variants evaluated as an outer product.
const numSeparable = int(LeftHalf)

var variantNames = [numVariants]string{
	G:         "G",
	Gx:        "Gx",
	Gy:        "Gy",
	Gxx:       "Gxx",
	Gxy:       "Gxy",
	Gyy:       "Gyy",
	Gxxx:      "Gxxx",
	Gxxy:      "Gxxy",
	Gxyy:      "Gxyy",
	Gyyy:      "Gyyy",
	LeftHalf:  "LeftHalf",
	RightHalf: "RightHalf",
}

// aliases are accepted by ParseVariant in addition to the canonical names.
var aliases = map[string]Variant{
	"lhalf": LeftHalf,
	"left":  LeftHalf,
	"rhalf": RightHalf,
	"right": RightHalf,
}

// String returns the canonical name of the variant.
func (v Variant) String() string {
	if !v.Valid() {
		return fmt.Sprintf("Variant(%d)", uint8(v))
	}
	return variantNames[v]
}

// Valid reports whether v is one of the defined variants.
func (v Variant) Valid() bool {
	return v < numVariants
}

// Separable reports whether v is evaluated as the outer product of two
// 1D components.
func (v Variant) Separable() bool {
	return v < LeftHalf
}

// Variants returns every defined variant in declaration order.
func Variants() []Variant {
	vs := make([]Variant, numVariants)
	for i := range vs {
		vs[i] = Variant(i)
	}
	return vs
}

// ParseVariant returns the variant with the given name. Matching is
// case-insensitive; "lhalf" and "rhalf" are accepted for the half kernels.
func ParseVariant(name string) (Variant, error) {
	for i, n := range variantNames {
		if strings.EqualFold(n, name) {
			return Variant(i), nil
		}
	}
	if v, ok := aliases[strings.ToLower(name)]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}
