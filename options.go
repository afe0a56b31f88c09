package gkernel

// Option configures a Kernel during creation.
//
// Example:
//
//	// Unshifted first derivative in x
//	k, _ := gkernel.New(gkernel.Gx, 1)
//
//	// Left half kernel rotated by 30 degrees, shifted a quarter pixel
//	k, _ := gkernel.New(gkernel.LeftHalf, 1,
//	    gkernel.WithShift(0.25, 0),
//	    gkernel.WithTheta(math.Pi/6))
type Option func(*options)

type options struct {
	dx, dy float64
	theta  float64
	layout Layout
}

func defaultOptions() options {
	return options{layout: RowMajor}
}

// WithShift sets the initial sub-pixel shift of the kernel center.
func WithShift(dx, dy float64) Option {
	return func(o *options) {
		o.dx = dx
		o.dy = dy
	}
}

// WithTheta sets the initial rotation in radians. Only half kernels use it;
// separable kernels record it without rotating.
func WithTheta(theta float64) Option {
	return func(o *options) {
		o.theta = theta
	}
}

// WithLayout selects the memory layout of the kernel buffer.
// The default is RowMajor.
func WithLayout(l Layout) Option {
	return func(o *options) {
		o.layout = l
	}
}
