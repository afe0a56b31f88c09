package gkernel

import (
	"math"

	"golang.org/x/image/math/f64"
)

// localFrame returns the affine map from grid coordinates (x, y) to the
// kernel's rotated and shifted frame:
//
//	xx =  x*cos(theta) + y*sin(theta) - dx
//	yy = -x*sin(theta) + y*cos(theta) - dy
func localFrame(theta, dx, dy float64) f64.Aff3 {
	sin, cos := math.Sincos(theta)
	return f64.Aff3{
		cos, sin, -dx,
		-sin, cos, -dy,
	}
}

func transform(m f64.Aff3, x, y float64) (xx, yy float64) {
	return m[0]*x + m[1]*y + m[2], m[3]*x + m[4]*y + m[5]
}

// evaluateHalf fills the buffer with the one-sided first derivative in y,
// evaluated per tap in the rotated frame. The left kernel is zero where
// yy >= 0, the right kernel where yy < 0.
func (k *Kernel) evaluateHalf() {
	ssq := k.sigma * k.sigma
	c := math.Sqrt(2*math.Pi) * ssq * k.sigma

	sign := 1.0
	if k.variant == LeftHalf {
		sign = -1.0
	}

	g := k.geom
	m := localFrame(g.Theta, g.DX, g.DY)
	khs := k.khs

	for x := -khs; x <= khs; x++ {
		row := (x + khs) * g.istep
		for y := -khs; y <= khs; y++ {
			idx := row + (y+khs)*g.jstep
			xx, yy := transform(m, float64(x), float64(y))

			if (k.variant == LeftHalf) == (yy >= 0) {
				g.data[idx] = 0
				continue
			}
			g.data[idx] = math.Exp(-xx*xx/(2*ssq)) * yy * sign * math.Exp(-yy*yy/(2*ssq)) / c
		}
	}
}
