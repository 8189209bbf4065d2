// Package plotting renders the series collected by a training monitor into
// diagnostic plots. The typical use is a risk-over-rounds curve saved next
// to a training run's artifacts.
package plotting

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/cboost-go/cboost/monitor"
	"github.com/cboost-go/cboost/pkg/errors"
)

// SaveCurves renders the named columns of a logged table as lines over the
// training rounds and writes the plot to path. The output format follows
// the file extension (png, svg, pdf, ...). With no columns given, every
// column of the table is drawn.
func SaveCurves(table *monitor.LogTable, columns []string, title, path string) error {
	if table == nil {
		return errors.Wrap(errors.ErrEmptyData, "plotting.SaveCurves")
	}
	if len(columns) == 0 {
		columns = table.Names
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "round"
	p.Y.Label.Text = "value"

	args := make([]interface{}, 0, 2*len(columns))
	for _, name := range columns {
		series, err := table.Column(name)
		if err != nil {
			return err
		}
		xys := make(plotter.XYs, len(series))
		for i, v := range series {
			xys[i].X = float64(i + 1)
			xys[i].Y = v
		}
		args = append(args, name, xys)
	}

	if err := plotutil.AddLines(p, args...); err != nil {
		return errors.Wrap(err, "plotting.SaveCurves: adding lines")
	}
	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "plotting.SaveCurves: saving %q", path)
	}
	return nil
}

// SaveRiskCurve is a convenience wrapper drawing a single risk column.
func SaveRiskCurve(table *monitor.LogTable, column, path string) error {
	return SaveCurves(table, []string{column}, "empirical risk", path)
}
