// Command gkdump prints Gaussian derivative kernels as text tables.
//
// Usage:
//
//	gkdump -variant gxy -sigma 1.5 -dx 0.25
//	gkdump -variant lhalf -sigma 1 -orientations 8
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/gogpu/gkernel"
)

func main() {
	var (
		variant      = flag.String("variant", "G", "kernel variant (G, Gx, ..., Gyyy, LeftHalf, RightHalf)")
		sigma        = flag.Float64("sigma", 1, "Gaussian scale, must be > 0")
		dx           = flag.Float64("dx", 0, "sub-pixel shift along x")
		dy           = flag.Float64("dy", 0, "sub-pixel shift along y")
		theta        = flag.Float64("theta", 0, "rotation in radians (half kernels only)")
		orientations = flag.Int("orientations", 0, "if > 0, print a bank of this many orientations")
		components   = flag.Bool("components", false, "print the 1D components of separable kernels")
		columnMajor  = flag.Bool("column-major", false, "use column-major buffer layout")
		precision    = flag.Int("precision", 6, "digits after the decimal point")
		verbose      = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		gkernel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	v, err := gkernel.ParseVariant(*variant)
	if err != nil {
		log.Fatalf("gkdump: %v", err)
	}

	layout := gkernel.RowMajor
	if *columnMajor {
		layout = gkernel.ColumnMajor
	}

	p := printer{w: os.Stdout, precision: *precision}

	if *orientations > 0 {
		b, err := gkernel.NewBank(v, *sigma, *orientations,
			gkernel.WithBankShift(*dx, *dy), gkernel.WithBankLayout(layout))
		if err != nil {
			log.Fatalf("gkdump: %v", err)
		}
		for k := range b.Len() {
			p.kernel(b.Kernel(k), *components)
		}
		return
	}

	k, err := gkernel.New(v, *sigma,
		gkernel.WithShift(*dx, *dy), gkernel.WithTheta(*theta), gkernel.WithLayout(layout))
	if err != nil {
		log.Fatalf("gkdump: %v", err)
	}
	p.kernel(k, *components)
}

type printer struct {
	w         io.Writer
	precision int
}

func (p printer) kernel(k *gkernel.Kernel, components bool) {
	fmt.Fprintf(p.w, "# %v sigma=%g khs=%d dx=%g dy=%g theta=%g sum=%.*g\n",
		k.Variant(), k.Sigma(), k.HalfSize(), k.DX(), k.DY(), k.Theta(), p.precision, k.Sum())

	if components && k.Variant().Separable() {
		p.row("KX", k.KX())
		p.row("KY", k.KY())
	}

	tw := tabwriter.NewWriter(p.w, 0, 0, 1, ' ', tabwriter.AlignRight)
	row := make([]float64, k.Size())
	for i := range k.Size() {
		for j := range row {
			row[j] = k.At(i, j)
		}
		fmt.Fprintln(tw, p.cells(row)+"\t")
	}
	tw.Flush()
	fmt.Fprintln(p.w)
}

func (p printer) row(name string, vs []float64) {
	fmt.Fprintf(p.w, "%s: %s\n", name, strings.ReplaceAll(p.cells(vs), "\t", " "))
}

func (p printer) cells(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmt.Sprintf("%.*f", p.precision, v)
	}
	return strings.Join(parts, "\t")
}
