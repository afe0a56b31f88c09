package filter

import "math"

// SupportFactor is the number of standard deviations covered on each side
// of the kernel center.
const SupportFactor = 4

// MaxHalfSize bounds the kernel half size so that a square buffer of
// (2*MaxHalfSize+1)² taps fits in an int on every platform.
const MaxHalfSize = 1 << 14

// Scale limits. Below MinSigma the σ⁷ normalizer of the third derivative
// underflows and the profiles stop being finite. Above MaxSigma the half
// size exceeds MaxHalfSize.
const (
	MinSigma         = 1e-40
	MaxSigma float64 = MaxHalfSize / SupportFactor
)

// Profile is a closed-form 1D Gaussian function evaluated at offset u from
// the center for scale sigma.
type Profile func(u, sigma float64) float64

// HalfSize returns the kernel half size for sigma: ceil(4*sigma).
//
// The result is only meaningful for sigma in [MinSigma, MaxSigma]; callers
// validate sigma before allocating.
func HalfSize(sigma float64) int {
	return int(math.Ceil(SupportFactor * sigma))
}

// KernelSize returns the number of taps of a kernel with the given sigma,
// 2*HalfSize(sigma)+1.
func KernelSize(sigma float64) int {
	return HalfSize(sigma)*2 + 1
}

// Gaussian is the order-0 profile: exp(-u²/2σ²) / (σ√(2π)).
func Gaussian(u, sigma float64) float64 {
	ssq := sigma * sigma
	return math.Exp(-u*u/(2*ssq)) / (math.Sqrt(2*math.Pi) * sigma)
}

// FirstDerivative is the order-1 profile: -u·exp(-u²/2σ²) / (σ³√(2π)).
func FirstDerivative(u, sigma float64) float64 {
	ssq := sigma * sigma
	c := math.Sqrt(2*math.Pi) * sigma
	return -u * math.Exp(-u*u/(2*ssq)) / (c * ssq)
}

// FirstDerivativeCubic is the order-1 profile with one extra factor of
// sigma in the denominator: -u·exp(-u²/2σ²) / (σ⁴√(2π)).
//
// It is the y component of the Gxxy kernel.
func FirstDerivativeCubic(u, sigma float64) float64 {
	ssq := sigma * sigma
	c := math.Sqrt(2*math.Pi) * sigma
	return -u * math.Exp(-u*u/(2*ssq)) / (c * sigma * ssq)
}

// SecondDerivative is the order-2 profile: (u²-σ²)·exp(-u²/2σ²) / (σ⁵√(2π)).
func SecondDerivative(u, sigma float64) float64 {
	ssq := sigma * sigma
	c := math.Sqrt(2*math.Pi) * sigma
	return (u*u - ssq) * math.Exp(-u*u/(2*ssq)) / (c * ssq * ssq)
}

// ThirdDerivative is the order-3 profile: u·(3σ²-u²)·exp(-u²/2σ²) / (σ⁷√(2π)).
func ThirdDerivative(u, sigma float64) float64 {
	ssq := sigma * sigma
	c := math.Sqrt(2*math.Pi) * sigma
	return u * (3*ssq - u*u) * math.Exp(-u*u/(2*ssq)) / (c * ssq * ssq * ssq)
}

// Sample fills dst with p evaluated at the integer offsets
// -khs..khs shifted by shift, where khs = len(dst)/2:
//
//	dst[i] = p(i - khs - shift, sigma)
//
// dst must have odd length. Every element is overwritten.
func Sample(dst []float64, p Profile, sigma, shift float64) {
	khs := KernelCenter(len(dst))
	for x := -khs; x <= khs; x++ {
		dst[x+khs] = p(float64(x)-shift, sigma)
	}
}

// KernelCenter returns the center index of a kernel of the given size.
func KernelCenter(kernelSize int) int {
	return kernelSize / 2
}
