package gkernel

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/gogpu/gkernel/internal/filter"
)

// Kernel is a Gaussian derivative kernel of one Variant.
//
// A Kernel is created by New, which evaluates it immediately. Recompute
// and Evaluate overwrite the buffer in place; the buffer size is fixed by
// sigma at construction.
//
// Thread safety: a Kernel is not safe for concurrent mutation. Distinct
// kernels are independent.
type Kernel struct {
	variant Variant
	sigma   float64
	khs     int
	geom    *Geometry

	// kx and ky are the 1D components of separable variants; nil for
	// half kernels.
	kx, ky []float64
}

// New creates a kernel of variant v with scale sigma and evaluates it.
//
// The kernel has half size ceil(4*sigma) and (2*khs+1)² taps. New returns
// ErrInvalidScale if sigma is outside [MinSigma, MaxSigma], and
// ErrUnknownVariant if v is not a defined variant.
func New(v Variant, sigma float64, opts ...Option) (*Kernel, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownVariant, v)
	}
	if err := validateSigma(sigma); err != nil {
		Logger().Debug("gkernel: rejected kernel", "variant", v, "sigma", sigma)
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	khs := filter.HalfSize(sigma)
	geom, err := NewGeometry(khs, khs, o.dx, o.dy, o.theta, o.layout)
	if err != nil {
		return nil, err
	}

	k := &Kernel{
		variant: v,
		sigma:   sigma,
		khs:     khs,
		geom:    geom,
	}
	if v.Separable() {
		k.kx = make([]float64, filter.KernelSize(sigma))
		k.ky = make([]float64, filter.KernelSize(sigma))
	}

	k.Evaluate(false)

	Logger().Debug("gkernel: kernel created",
		"variant", v, "sigma", sigma, "khs", khs, "layout", o.layout)
	return k, nil
}

// MustNew is like New but panics on error.
func MustNew(v Variant, sigma float64, opts ...Option) *Kernel {
	k, err := New(v, sigma, opts...)
	if err != nil {
		panic(err)
	}
	return k
}

// Scale limits accepted by New and NewBank.
const (
	// MinSigma is the smallest accepted scale. Smaller scales underflow the
	// derivative normalizers and would produce non-finite taps.
	MinSigma = filter.MinSigma

	// MaxSigma is the largest accepted scale. It bounds the buffer at
	// (2*ceil(4*MaxSigma)+1)² taps.
	MaxSigma = filter.MaxSigma
)

func validateSigma(sigma float64) error {
	// The negated comparison also rejects NaN.
	if !(sigma >= MinSigma) || sigma > MaxSigma {
		return fmt.Errorf("%w: sigma=%v (valid range [%g, %g])", ErrInvalidScale, sigma, MinSigma, MaxSigma)
	}
	return nil
}

// Evaluate recomputes the kernel from its current sigma, shift and
// rotation.
//
// For separable variants, componentsOnly restricts the work to the 1D
// components KX and KY and leaves the 2D buffer as it was. Half kernels
// have no components and always evaluate the full buffer.
func (k *Kernel) Evaluate(componentsOnly bool) {
	if k.variant.Separable() {
		k.evaluateSeparable(componentsOnly)
		return
	}
	k.evaluateHalf()
}

// Recompute sets the shift and rotation and fully re-evaluates the kernel.
func (k *Kernel) Recompute(dx, dy, theta float64) {
	k.geom.DX = dx
	k.geom.DY = dy
	k.geom.Theta = theta
	k.Evaluate(false)
}

// Shifted returns a new kernel with the same variant and sigma evaluated at
// the given shift and rotation. k is not modified.
func (k *Kernel) Shifted(dx, dy, theta float64) *Kernel {
	c := k.Clone()
	c.Recompute(dx, dy, theta)
	return c
}

// Clone returns a deep copy of k.
func (k *Kernel) Clone() *Kernel {
	c := *k
	c.geom = k.geom.clone()
	if k.kx != nil {
		c.kx = append([]float64(nil), k.kx...)
		c.ky = append([]float64(nil), k.ky...)
	}
	return &c
}

// Variant returns the kernel formula.
func (k *Kernel) Variant() Variant { return k.variant }

// Sigma returns the Gaussian scale.
func (k *Kernel) Sigma() float64 { return k.sigma }

// HalfSize returns khs, the buffer radius in taps.
func (k *Kernel) HalfSize() int { return k.khs }

// Size returns the number of taps per side, 2*khs+1.
func (k *Kernel) Size() int { return 2*k.khs + 1 }

// DX returns the sub-pixel shift along x.
func (k *Kernel) DX() float64 { return k.geom.DX }

// DY returns the sub-pixel shift along y.
func (k *Kernel) DY() float64 { return k.geom.DY }

// Theta returns the rotation in radians.
func (k *Kernel) Theta() float64 { return k.geom.Theta }

// KX returns the 1D component along x, or nil for half kernels.
// The slice is owned by the kernel and overwritten by every evaluation.
func (k *Kernel) KX() []float64 { return k.kx }

// KY returns the 1D component along y, or nil for half kernels.
// The slice is owned by the kernel and overwritten by every evaluation.
func (k *Kernel) KY() []float64 { return k.ky }

// At returns the tap at (i, j), with x = i - khs and y = j - khs.
func (k *Kernel) At(i, j int) float64 { return k.geom.At(i, j) }

// Geometry returns the buffer backing the kernel. Writing to it changes
// the kernel until the next evaluation.
func (k *Kernel) Geometry() *Geometry { return k.geom }

// Sum returns the sum of all taps.
func (k *Kernel) Sum() float64 { return floats.Sum(k.geom.data) }
