package theme

import (
	"context"
	"image"
	"image/color"
	rtrace "runtime/trace"

	"honnef.co/go/swipeback/layout"
	"honnef.co/go/swipeback/widget"

	"gioui.org/f32"
	"gioui.org/font"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
)

type Theme struct {
	Shaper        *text.Shaper
	Palette       Palette
	TextSize      unit.Sp
	TextSizeLarge unit.Sp
}

type Palette struct {
	Background         color.NRGBA
	Foreground         color.NRGBA
	ForegroundDisabled color.NRGBA
	Border             color.NRGBA

	// Shadow is the color of edge shadows where they touch the panel.
	Shadow color.NRGBA
	// Panels are the background colors of stacked panels, used in turn.
	Panels []color.NRGBA
}

var DefaultPalette = Palette{
	Background:         rgba(0xFFFFEAFF),
	Foreground:         rgba(0x000000FF),
	ForegroundDisabled: rgba(0x727272FF),
	Border:             rgba(0x000000FF),
	Shadow:             rgba(0x00000066),
	Panels: []color.NRGBA{
		rgba(0xEFFFFFFF),
		rgba(0xEEFFEEFF),
		rgba(0xFFEEEEFF),
		rgba(0xEEEEFFFF),
	},
}

func NewTheme(fontCollection []font.FontFace) *Theme {
	return &Theme{
		Palette:       DefaultPalette,
		Shaper:        text.NewShaper(fontCollection),
		TextSize:      12,
		TextSizeLarge: 14,
	}
}

// PanelColor returns the background color of the i-th stacked panel.
func (th *Theme) PanelColor(i int) color.NRGBA {
	if len(th.Palette.Panels) == 0 {
		return th.Palette.Background
	}
	return th.Palette.Panels[i%len(th.Palette.Panels)]
}

type ProgressBarStyle struct {
	ForegroundColor color.NRGBA
	BackgroundColor color.NRGBA
	BorderWidth     unit.Dp
	Progress        float32
}

func ProgressBar(th *Theme, progress float32) ProgressBarStyle {
	return ProgressBarStyle{
		ForegroundColor: rgba(0x478847FF),
		BackgroundColor: rgba(0),
		BorderWidth:     1,
		Progress:        progress,
	}
}

func (p ProgressBarStyle) Layout(gtx layout.Context) layout.Dimensions {
	defer rtrace.StartRegion(context.Background(), "theme.ProgressBarStyle.Layout").End()

	return widget.Border{
		Color: p.ForegroundColor,
		Width: p.BorderWidth,
	}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		bg := clip.Rect{Max: gtx.Constraints.Min}.Op()
		paint.FillShape(gtx.Ops, p.BackgroundColor, bg)

		fg := frect{Max: f32.Pt(float32(gtx.Constraints.Min.X)*clamp1(p.Progress), float32(gtx.Constraints.Min.Y))}.Op(gtx.Ops)
		paint.FillShape(gtx.Ops, p.ForegroundColor, fg)

		return layout.Dimensions{
			Size: gtx.Constraints.Min,
		}
	})
}

type CheckBoxStyle struct {
	Checkbox        widget.Boolean
	Label           string
	TextSize        unit.Sp
	ForegroundColor color.NRGBA
	BackgroundColor color.NRGBA
	TextColor       color.NRGBA
}

func CheckBox(th *Theme, checkbox widget.Boolean, label string) CheckBoxStyle {
	return CheckBoxStyle{
		Checkbox:        checkbox,
		Label:           label,
		TextColor:       th.Palette.Foreground,
		ForegroundColor: th.Palette.Foreground,
		BackgroundColor: rgba(0),
		TextSize:        th.TextSize,
	}
}

func (c CheckBoxStyle) Layout(th *Theme, gtx layout.Context) layout.Dimensions {
	defer rtrace.StartRegion(context.Background(), "theme.CheckBoxStyle.Layout").End()

	return c.Checkbox.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				sizePx := gtx.Dp(gtx.Metric.SpToDp(c.TextSize))

				ngtx := gtx
				ngtx.Constraints = layout.Exact(image.Pt(sizePx, sizePx))
				return widget.Border{
					Color: c.ForegroundColor,
					Width: 1,
				}.Layout(ngtx, func(gtx layout.Context) layout.Dimensions {
					paint.FillShape(gtx.Ops, c.BackgroundColor, clip.Rect{Max: gtx.Constraints.Min}.Op())
					if c.Checkbox.Get() {
						padding := max(gtx.Constraints.Min.X/4, gtx.Dp(1))
						inner := image.Rect(padding, padding, gtx.Constraints.Min.X-padding, gtx.Constraints.Min.Y-padding)
						paint.FillShape(gtx.Ops, c.ForegroundColor, clip.Rect(inner).Op())
					}
					return layout.Dimensions{Size: gtx.Constraints.Min}
				})
			}),

			layout.Rigid(layout.Spacer{Width: 3}.Layout),

			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return widget.TextLine{Color: c.TextColor}.Layout(gtx, th.Shaper, font.Font{}, c.TextSize, c.Label)
			}),
		)
	})
}

type ButtonStyle struct {
	Text   string
	Button *widget.PrimaryClickable

	ActiveBackgroundColor color.NRGBA
	BackgroundColor       color.NRGBA
	BorderColor           color.NRGBA
	TextColor             color.NRGBA
	TextColorDisabled     color.NRGBA
}

func Button(th *Theme, button *widget.PrimaryClickable, txt string) ButtonStyle {
	return ButtonStyle{
		Text:                  txt,
		Button:                button,
		ActiveBackgroundColor: rgba(0xDDDDFFFF),
		BackgroundColor:       rgba(0xFFFFFFFF),
		BorderColor:           th.Palette.Border,
		TextColor:             th.Palette.Foreground,
		TextColorDisabled:     th.Palette.ForegroundDisabled,
	}
}

func (b ButtonStyle) Layout(th *Theme, gtx layout.Context) layout.Dimensions {
	defer rtrace.StartRegion(context.Background(), "theme.ButtonStyle.Layout").End()

	bg := b.BackgroundColor
	if b.Button.Pressed() {
		bg = b.ActiveBackgroundColor
	}
	fg := b.TextColor
	if gtx.Queue == nil {
		fg = b.TextColorDisabled
	}

	return widget.Background{Color: bg}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return b.Button.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return widget.Bordered{Color: b.BorderColor, Width: 1}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return layout.UniformInset(4).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return widget.TextLine{Color: fg, Alignment: text.Middle}.Layout(gtx, th.Shaper, font.Font{}, th.TextSize, b.Text)
				})
			})
		})
	})
}

// LabelStyle is a line of text in the theme's colors.
type LabelStyle struct {
	Text     string
	Color    color.NRGBA
	TextSize unit.Sp
}

func Label(th *Theme, txt string) LabelStyle {
	return LabelStyle{
		Text:     txt,
		Color:    th.Palette.Foreground,
		TextSize: th.TextSize,
	}
}

func (l LabelStyle) Layout(th *Theme, gtx layout.Context) layout.Dimensions {
	return widget.TextLine{Color: l.Color}.Layout(gtx, th.Shaper, font.Font{}, l.TextSize, l.Text)
}
