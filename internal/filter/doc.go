// Package filter provides the one-dimensional Gaussian profiles that the
// derivative kernels are assembled from.
//
// The package contains:
//   - Closed-form Gaussian profiles of derivative order 0 to 3
//   - A sampler that fills a 1D component over [-khs, khs] with a
//     sub-pixel shift
//   - The half-size rule shared by every kernel (khs = ceil(4*sigma))
//
// Profiles are not normalized after sampling: each value is the exact
// closed-form density (or derivative) at the sample point, so a sampled
// order-0 profile only sums to 1 in the limit of a wide support.
package filter
