package layout

import (
	"image"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/x/outlay"
)

// SmallGrid lays out a few rows of cells, sizing each column to its widest
// cell. Rows share the height of the first row.
type SmallGrid struct {
	Grid          outlay.Grid
	RowPadding    int
	ColumnPadding int
}

// Layout measures every cell by laying it out into a discarded macro and
// then lays the grid out for real.
func (sg SmallGrid) Layout(gtx layout.Context, rows, cols int, cellFunc outlay.Cell) layout.Dimensions {
	if rows == 0 || cols == 0 {
		return layout.Dimensions{}
	}
	colWidths := make([]int, cols)
	rowHeight := 0

	mgtx := gtx
	mgtx.Constraints.Min = image.Point{}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			m := op.Record(gtx.Ops)
			dims := cellFunc(mgtx, row, col)
			m.Stop()
			colWidths[col] = max(colWidths[col], dims.Size.X)
			if row == 0 {
				rowHeight = max(rowHeight, dims.Size.Y)
			}
		}
	}

	dimmer := func(axis layout.Axis, index, constraint int) int {
		switch axis {
		case layout.Vertical:
			return rowHeight + sg.RowPadding
		case layout.Horizontal:
			return colWidths[index] + sg.ColumnPadding
		default:
			panic("unreachable")
		}
	}

	// outlay.Grid fills the Max constraint
	height := rows*(rowHeight+sg.RowPadding) - sg.RowPadding
	var width int
	for _, cw := range colWidths {
		width += cw + sg.ColumnPadding
	}
	gtx.Constraints.Max = gtx.Constraints.Constrain(image.Pt(width, height))
	wrapper := func(gtx layout.Context, row, col int) layout.Dimensions {
		ogtx := gtx
		gtx.Constraints.Min.X = max(gtx.Constraints.Min.X-sg.ColumnPadding, 0)
		gtx.Constraints.Max.X = max(gtx.Constraints.Max.X-sg.ColumnPadding, 0)
		dims := cellFunc(gtx, row, col)
		dims.Size = ogtx.Constraints.Constrain(dims.Size)
		return dims
	}
	return sg.Grid.Layout(gtx, rows, cols, dimmer, wrapper)
}
