package gkernel

import "github.com/gogpu/gkernel/internal/filter"

// formulaPair holds the 1D profiles along x and y of a separable variant.
type formulaPair struct {
	fx, fy filter.Profile
}

// separableFormulas maps each separable variant to its profiles. An n-th
// order derivative along one axis pairs with a plain Gaussian (or a lower
// derivative) along the other.
var separableFormulas = [numSeparable]formulaPair{
	G:    {filter.Gaussian, filter.Gaussian},
	Gx:   {filter.FirstDerivative, filter.Gaussian},
	Gy:   {filter.Gaussian, filter.FirstDerivative},
	Gxx:  {filter.SecondDerivative, filter.Gaussian},
	Gxy:  {filter.FirstDerivative, filter.FirstDerivative},
	Gyy:  {filter.Gaussian, filter.SecondDerivative},
	Gxxx: {filter.ThirdDerivative, filter.Gaussian},
	Gxxy: {filter.SecondDerivative, filter.FirstDerivativeCubic},
	Gxyy: {filter.FirstDerivative, filter.SecondDerivative},
	Gyyy: {filter.Gaussian, filter.ThirdDerivative},
}

// evaluateSeparable samples both components and, unless componentsOnly,
// fills the buffer with their outer product.
func (k *Kernel) evaluateSeparable(componentsOnly bool) {
	f := separableFormulas[k.variant]
	filter.Sample(k.kx, f.fx, k.sigma, k.geom.DX)
	filter.Sample(k.ky, f.fy, k.sigma, k.geom.DY)

	if componentsOnly {
		return
	}

	g := k.geom
	for i, x := range k.kx {
		row := i * g.istep
		for j, y := range k.ky {
			g.data[row+j*g.jstep] = x * y
		}
	}
}
