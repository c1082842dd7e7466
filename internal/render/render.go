package render

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"ecommerce-eda-lab/internal/data"
)

const (
	DefaultPath = "eda_visualizations.png"
	DefaultDPI  = 150
	gridRows    = 6
	gridCols    = 3
)

// ErrNoRows is returned when asked to render an empty table.
var ErrNoRows = errors.New("no rows to render")

// Options controls where the grid is written and how large it is.
type Options struct {
	Path   string
	Width  vg.Length
	Height vg.Length
	DPI    int
}

func DefaultOptions() Options {
	return Options{
		Path:   DefaultPath,
		Width:  24 * vg.Inch,
		Height: 24 * vg.Inch,
		DPI:    DefaultDPI,
	}
}

type Renderer struct {
	opts   Options
	logger *zap.Logger
}

func New(opts Options, logger *zap.Logger) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{opts: opts, logger: logger.Named("render")}
}

// Render draws every panel for table into one PNG at the configured path.
// Nothing is written unless all panels build and the image encodes.
func (r *Renderer) Render(table data.Table) error {
	if table.Len() == 0 {
		return errors.Wrap(ErrNoRows, "render")
	}
	png, err := r.encode(table)
	if err != nil {
		return err
	}
	if err := writeFile(r.opts.Path, png); err != nil {
		return err
	}
	r.logger.Info("visualization written",
		zap.String("path", r.opts.Path),
		zap.Int("bytes", len(png)),
		zap.Int("panels", gridRows*gridCols))
	return nil
}

func (r *Renderer) encode(table data.Table) ([]byte, error) {
	if r.opts.Width <= 0 || r.opts.Height <= 0 || r.opts.DPI <= 0 {
		return nil, errors.Errorf("invalid canvas %vx%v at %d dpi", r.opts.Width, r.opts.Height, r.opts.DPI)
	}

	plots, err := r.build(table)
	if err != nil {
		return nil, err
	}

	img := vgimg.NewWith(vgimg.UseWH(r.opts.Width, r.opts.Height), vgimg.UseDPI(r.opts.DPI))
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows:      gridRows,
		Cols:      gridCols,
		PadTop:    vg.Points(12),
		PadBottom: vg.Points(12),
		PadLeft:   vg.Points(12),
		PadRight:  vg.Points(12),
		PadX:      vg.Points(24),
		PadY:      vg.Points(24),
	}
	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		for j := range plots[i] {
			plots[i][j].Draw(canvases[i][j])
		}
	}

	var buf bytes.Buffer
	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(&buf); err != nil {
		return nil, errors.Wrap(err, "encode png")
	}
	return buf.Bytes(), nil
}

// build creates every panel's plot laid out in grid order.
func (r *Renderer) build(table data.Table) ([][]*plot.Plot, error) {
	df := table.DataFrame()
	if df.Err != nil {
		return nil, errors.Wrap(df.Err, "build dataframe")
	}

	list := panels()
	if len(list) != gridRows*gridCols {
		return nil, errors.Errorf("have %d panels for a %dx%d grid", len(list), gridRows, gridCols)
	}

	plots := make([][]*plot.Plot, gridRows)
	for i := range plots {
		plots[i] = make([]*plot.Plot, gridCols)
	}
	for i, pn := range list {
		p, err := pn.Build(df)
		if err != nil {
			return nil, errors.Wrapf(err, "panel %d %q", i+1, pn.Title)
		}
		p.Title.Text = pn.Title
		plots[i/gridCols][i%gridCols] = p
		r.logger.Debug("panel built", zap.Int("index", i+1), zap.String("title", pn.Title))
	}
	return plots, nil
}

func writeFile(path string, content []byte) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "close %s", path)
		}
	}()
	if _, err := f.Write(content); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}
