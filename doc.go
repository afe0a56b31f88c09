// Package gkernel generates two-dimensional Gaussian derivative kernels.
//
// # Overview
//
// gkernel evaluates closed-form kernels approximating Gaussian derivatives
// up to third order, plus two one-sided "half-Gaussian" kernels used by
// edge and curve detectors that must respond to an intensity step on one
// side of an oriented line. Every kernel supports a sub-pixel shift
// (dx, dy); half kernels also support an in-plane rotation theta.
//
// # Quick Start
//
//	import "github.com/gogpu/gkernel"
//
//	k, err := gkernel.New(gkernel.Gx, 1.5, gkernel.WithShift(0.25, 0))
//	if err != nil {
//	    return err
//	}
//	v := k.At(k.HalfSize(), k.HalfSize()) // center tap
//
//	// Move the kernel center without reallocating.
//	k.Recompute(-0.1, 0.3, 0)
//
// # Variants
//
// The separable family (G, Gx, Gy, Gxx, Gxy, Gyy, Gxxx, Gxxy, Gxyy, Gyyy)
// is the outer product of two 1D profiles, one per axis. The 1D components
// are exposed through [Kernel.KX] and [Kernel.KY]; the full buffer satisfies
// At(i, j) == KX()[i] * KY()[j] after a full evaluation. Separable kernels
// record theta but do not rotate.
//
// The half family (LeftHalf, RightHalf) evaluates a rotated first
// derivative in y on one half plane and zero on the other. It is not
// separable and has no 1D components.
//
// # Geometry
//
// A kernel with scale sigma has half size khs = ceil(4*sigma) and a square
// buffer of (2*khs+1) taps per side. Index (i, j) addresses x = i - khs and
// y = j - khs. The buffer is never resized after construction. [Geometry]
// implements gonum's mat.Matrix so kernels can be used with gonum directly.
//
// # Concurrency
//
// Distinct kernels share no state and may be evaluated concurrently. A
// single kernel is not safe for concurrent Recompute or Evaluate; use
// [Kernel.Shifted] to derive an independent kernel, or [NewBank] to build a
// set of orientations in parallel.
package gkernel
