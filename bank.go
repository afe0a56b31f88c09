package gkernel

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/gkernel/internal/parallel"
)

// Bank is a set of kernels of one variant and scale at n evenly spaced
// orientations theta_k = k*pi/n, k = 0..n-1.
//
// Every kernel in a bank is an independent instance. Separable variants are
// accepted but ignore theta, so all their entries are identical.
type Bank struct {
	variant Variant
	sigma   float64
	thetas  []float64
	kernels []*Kernel
}

// BankOption configures NewBank.
type BankOption func(*bankOptions)

type bankOptions struct {
	workers int
	dx, dy  float64
	layout  Layout
}

// WithWorkers sets the number of goroutines evaluating the bank.
// Zero or negative uses GOMAXPROCS.
func WithWorkers(n int) BankOption {
	return func(o *bankOptions) {
		o.workers = n
	}
}

// WithBankShift applies the same sub-pixel shift to every kernel.
func WithBankShift(dx, dy float64) BankOption {
	return func(o *bankOptions) {
		o.dx = dx
		o.dy = dy
	}
}

// WithBankLayout selects the buffer layout of every kernel.
func WithBankLayout(l Layout) BankOption {
	return func(o *bankOptions) {
		o.layout = l
	}
}

// NewBank builds n kernels of variant v at orientations k*pi/n and
// evaluates them concurrently.
func NewBank(v Variant, sigma float64, n int, opts ...BankOption) (*Bank, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrInvalidOrientations, n)
	}
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownVariant, v)
	}
	if err := validateSigma(sigma); err != nil {
		return nil, err
	}

	o := bankOptions{layout: RowMajor}
	for _, opt := range opts {
		opt(&o)
	}

	b := &Bank{
		variant: v,
		sigma:   sigma,
		thetas:  make([]float64, n),
		kernels: make([]*Kernel, n),
	}
	errs := make([]error, n)

	pool := parallel.NewWorkerPool(min(o.workers, n))
	defer pool.Close()

	work := make([]func(), n)
	for i := range work {
		theta := float64(i) * math.Pi / float64(n)
		b.thetas[i] = theta
		work[i] = func() {
			b.kernels[i], errs[i] = New(v, sigma,
				WithShift(o.dx, o.dy),
				WithTheta(theta),
				WithLayout(o.layout))
		}
	}
	pool.ExecuteAll(work)

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	Logger().Debug("gkernel: bank evaluated",
		"variant", v, "sigma", sigma, "orientations", n, "workers", pool.Workers())
	return b, nil
}

// Len returns the number of orientations.
func (b *Bank) Len() int { return len(b.kernels) }

// Variant returns the variant of every kernel in the bank.
func (b *Bank) Variant() Variant { return b.variant }

// Sigma returns the scale of every kernel in the bank.
func (b *Bank) Sigma() float64 { return b.sigma }

// Kernel returns the kernel at orientation index k.
func (b *Bank) Kernel(k int) *Kernel { return b.kernels[k] }

// Theta returns the orientation of index k in radians.
func (b *Bank) Theta(k int) float64 { return b.thetas[k] }

// Nearest returns the index of the orientation closest to theta, treating
// orientations as equivalent modulo pi. A NaN or infinite theta has no
// orientation and maps to index 0.
func (b *Bank) Nearest(theta float64) int {
	if math.IsNaN(theta) || math.IsInf(theta, 0) {
		return 0
	}
	n := len(b.kernels)
	t := math.Mod(theta, math.Pi)
	if t < 0 {
		t += math.Pi
	}
	return int(math.Round(t*float64(n)/math.Pi)) % n
}
