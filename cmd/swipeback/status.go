package main

import (
	"image"

	"honnef.co/go/swipeback/layout"
	"honnef.co/go/swipeback/swipe"
	"honnef.co/go/swipeback/theme"
)

// layoutStatus shows the state of p's controller as a two-column grid,
// followed by a bar showing the dismissal progress.
func (d *demo) layoutStatus(gtx layout.Context, p *panel) layout.Dimensions {
	c := p.sb.Controller
	rows := d.statusRows(c)
	grid := layout.SmallGrid{
		RowPadding:    gtx.Dp(2),
		ColumnPadding: gtx.Dp(8),
	}
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return grid.Layout(gtx, len(rows), 2, func(gtx layout.Context, row, col int) layout.Dimensions {
				l := theme.Label(d.theme, rows[row][col])
				if col == 0 {
					l.Color = d.theme.Palette.ForegroundDisabled
				}
				return l.Layout(d.theme, gtx)
			})
		}),
		layout.Rigid(layout.Spacer{Height: 4}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			gtx.Constraints.Min = gtx.Constraints.Constrain(image.Pt(gtx.Dp(160), gtx.Dp(6)))
			return theme.ProgressBar(d.theme, c.Progress()).Layout(gtx)
		}),
	)
}

func (d *demo) statusRows(c *swipe.Controller) [][2]string {
	pr := d.printer
	edge := "none"
	if s, ok := c.Session(); ok {
		edge = s.Edge.String()
	}
	off := c.Offset()
	cfg := c.Config()
	return [][2]string{
		{"State", c.State().String()},
		{"Edge", edge},
		{"Progress", pr.Sprintf("%.1f%%", c.Progress()*100)},
		{"Offset", pr.Sprintf("%.0f, %.0f px", off.X, off.Y)},
		{"Edges", cfg.EdgeMask.String()},
		{"Band", pr.Sprintf("%v dp", float32(cfg.EdgeSize))},
		{"Fling", pr.Sprintf("%v dp/s", float32(cfg.MinFlingVelocity))},
		{"Depth", pr.Sprintf("%d", len(d.stack)-1)},
	}
}
