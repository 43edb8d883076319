// Package render draws signal columns as terminal charts or PNG images.
package render

import (
	"errors"
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/katalvlaran/fastica/matrix"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// ErrNoData is returned for a nil or empty matrix.
var ErrNoData = errors.New("render: nothing to draw")

// Columns returns every column of m, optionally decimated to at most width samples.
func Columns(m *matrix.Dense, width int) ([][]float64, error) {
	if m == nil || m.Rows() == 0 {
		return nil, ErrNoData
	}
	step := 1
	if width > 0 && m.Rows() > width {
		step = (m.Rows() + width - 1) / width
	}
	cols := make([][]float64, m.Cols())
	for j := range cols {
		col, err := m.Col(j)
		if err != nil {
			return nil, err
		}
		if step > 1 {
			thin := make([]float64, 0, len(col)/step+1)
			for i := 0; i < len(col); i += step {
				thin = append(thin, col[i])
			}
			col = thin
		}
		cols[j] = col
	}
	return cols, nil
}

// ASCII renders one chart per column of m, captioned with names[j].
func ASCII(m *matrix.Dense, names []string, width, height int) (string, error) {
	cols, err := Columns(m, width)
	if err != nil {
		return "", err
	}
	var out string
	for j, col := range cols {
		caption := fmt.Sprintf("column %d", j)
		if j < len(names) {
			caption = names[j]
		}
		out += asciigraph.Plot(col,
			asciigraph.Height(height),
			asciigraph.Width(width),
			asciigraph.Caption(caption),
		)
		out += "\n\n"
	}
	return out, nil
}

// PNG stacks every column of m as a line in one plot and saves it to path.
// The image size is given in inches.
func PNG(path, title string, m *matrix.Dense, names []string, width, height float64) error {
	cols, err := Columns(m, 0)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "sample"

	// vertical offsets keep the lines apart
	lines := make([]interface{}, 0, 2*len(cols))
	for j, col := range cols {
		pts := make(plotter.XYs, len(col))
		for i, v := range col {
			pts[i].X = float64(i)
			pts[i].Y = v + 3*float64(len(cols)-1-j)
		}
		name := fmt.Sprintf("column %d", j)
		if j < len(names) {
			name = names[j]
		}
		lines = append(lines, name, pts)
	}
	if err := plotutil.AddLines(p, lines...); err != nil {
		return err
	}

	return p.Save(vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch, path)
}
