package plot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/mat"
	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/lvlsub/subspace"
)

const (
	plotWidth  = 6 * vg.Inch
	plotHeight = 4 * vg.Inch
)

// Option tweaks an eigenvalue plot.
type Option func(*config)

type config struct {
	trueVals       []float64
	eigMin, eigMax []float64
	k              int
}

// WithTrueValues overlays analytically known eigenvalues as a reference
// scatter.
func WithTrueValues(vals []float64) Option {
	return func(c *config) { c.trueVals = vals }
}

// WithEnvelope overlays the bootstrap min/max eigenvalue envelope.
func WithEnvelope(min, max []float64) Option {
	return func(c *config) { c.eigMin, c.eigMax = min, max }
}

// WithTruncation limits the plot to the first k eigenvalues.
func WithTruncation(k int) Option {
	return func(c *config) { c.k = k }
}

// Eigenvalues renders the eigenvalue decay on a logarithmic vertical axis.
// Non-positive eigenvalues cannot appear on a log scale and are skipped.
func Eigenvalues(path string, vals []float64, opts ...Option) error {
	if len(vals) == 0 {
		return ErrNoData
	}
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	n := len(vals)
	if cfg.k > 0 && cfg.k < n {
		n = cfg.k
	}
	if cfg.trueVals != nil && len(cfg.trueVals) < n {
		return ErrLengthMismatch
	}
	if (cfg.eigMin != nil && len(cfg.eigMin) < n) || (cfg.eigMax != nil && len(cfg.eigMax) < n) {
		return ErrLengthMismatch
	}

	p := gplot.New()
	p.Title.Text = "Eigenvalue decay"
	p.X.Label.Text = "index"
	p.Y.Label.Text = "eigenvalue"
	p.Y.Scale = gplot.LogScale{}
	p.Y.Tick.Marker = gplot.LogTicks{Prec: -1}

	series := []interface{}{"estimated", positiveSeries(vals[:n])}
	if cfg.eigMin != nil && cfg.eigMax != nil {
		series = append(series,
			"bootstrap min", positiveSeries(cfg.eigMin[:n]),
			"bootstrap max", positiveSeries(cfg.eigMax[:n]),
		)
	}
	if cfg.trueVals != nil {
		series = append(series, "true", positiveSeries(cfg.trueVals[:n]))
	}
	if err := plotutil.AddLinePoints(p, series...); err != nil {
		return fmt.Errorf("plot: eigenvalues: %w", err)
	}

	return p.Save(plotWidth, plotHeight, path)
}

// positiveSeries maps values to 1-based index points, dropping entries a
// log axis cannot show.
func positiveSeries(vals []float64) plotter.XYs {
	xys := make(plotter.XYs, 0, len(vals))
	for i, v := range vals {
		if v <= 0 {
			continue
		}
		xys = append(xys, plotter.XY{X: float64(i + 1), Y: v})
	}

	return xys
}

// SubspaceDistance renders the bootstrap subspace-distance statistics per
// truncation dimension: the mean with its min/max envelope.
func SubspaceDistance(path string, res *subspace.BootstrapResult) error {
	if res == nil {
		return ErrNilResult
	}
	if len(res.DistMean) == 0 {
		return ErrNoData
	}

	p := gplot.New()
	p.Title.Text = "Subspace stability"
	p.X.Label.Text = "active dimension"
	p.Y.Label.Text = "subspace distance"

	toXY := func(vals []float64) plotter.XYs {
		xys := make(plotter.XYs, len(vals))
		for i, v := range vals {
			xys[i] = plotter.XY{X: float64(i + 1), Y: v}
		}

		return xys
	}
	err := plotutil.AddLinePoints(p,
		"mean", toXY(res.DistMean),
		"min", toXY(res.DistMin),
		"max", toXY(res.DistMax),
	)
	if err != nil {
		return fmt.Errorf("plot: subspace distance: %w", err)
	}

	return p.Save(plotWidth, plotHeight, path)
}

// Eigenvectors renders the components of the first n eigenvector columns
// against the coordinate index, one line per eigenvector.
func Eigenvectors(path string, vecs *mat.Dense, n int) error {
	if vecs == nil {
		return ErrNilMatrix
	}
	rows, cols := vecs.Dims()
	if n < 1 || n > cols {
		return ErrLengthMismatch
	}

	p := gplot.New()
	p.Title.Text = "Eigenvector components"
	p.X.Label.Text = "coordinate"
	p.Y.Label.Text = "component"

	series := make([]interface{}, 0, 2*n)
	for c := 0; c < n; c++ {
		xys := make(plotter.XYs, rows)
		for i := 0; i < rows; i++ {
			xys[i] = plotter.XY{X: float64(i + 1), Y: vecs.At(i, c)}
		}
		series = append(series, fmt.Sprintf("w%d", c+1), xys)
	}
	if err := plotutil.AddLinePoints(p, series...); err != nil {
		return fmt.Errorf("plot: eigenvectors: %w", err)
	}

	return p.Save(plotWidth, plotHeight, path)
}

// SufficientSummary renders the quantity of interest over the active
// variables: value against the single active variable for n = 1, and a
// scatter of the two active variables colored by value for n = 2.
//
// y is the M×n active-coordinate matrix; values holds one QoI value per
// sample. Returns ErrDimension unless n is 1 or 2 and ErrLengthMismatch
// unless the row counts agree.
func SufficientSummary(path string, y *mat.Dense, values []float64) error {
	if y == nil {
		return ErrNilMatrix
	}
	rows, cols := y.Dims()
	if cols != 1 && cols != 2 {
		return ErrDimension
	}
	if len(values) != rows {
		return ErrLengthMismatch
	}

	p := gplot.New()
	p.Title.Text = "Sufficient summary"
	p.X.Label.Text = "active variable 1"

	if cols == 1 {
		p.Y.Label.Text = "f(x)"
		xys := make(plotter.XYs, rows)
		for i := 0; i < rows; i++ {
			xys[i] = plotter.XY{X: y.At(i, 0), Y: values[i]}
		}
		if err := plotutil.AddScatters(p, xys); err != nil {
			return fmt.Errorf("plot: sufficient summary: %w", err)
		}

		return p.Save(plotWidth, plotHeight, path)
	}

	p.Y.Label.Text = "active variable 2"
	xys := make(plotter.XYs, rows)
	for i := 0; i < rows; i++ {
		xys[i] = plotter.XY{X: y.At(i, 0), Y: y.At(i, 1)}
	}
	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return fmt.Errorf("plot: sufficient summary: %w", err)
	}

	cmap := moreland.SmoothBlueRed()
	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if hi == lo {
		hi = lo + 1
	}
	cmap.SetMin(lo)
	cmap.SetMax(hi)
	sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		col, cerr := cmap.At(values[i])
		if cerr != nil {
			col = color.Gray{Y: 128}
		}

		return draw.GlyphStyle{Color: col, Radius: vg.Points(2), Shape: draw.CircleGlyph{}}
	}
	p.Add(sc)

	return p.Save(plotWidth, plotHeight, path)
}
