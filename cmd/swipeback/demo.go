package main

import (
	"context"
	"image"
	"log/slog"
	rtrace "runtime/trace"
	"time"

	"honnef.co/go/swipeback/config"
	"honnef.co/go/swipeback/layout"
	"honnef.co/go/swipeback/mysync"
	"honnef.co/go/swipeback/slices"
	"honnef.co/go/swipeback/swipe"
	"honnef.co/go/swipeback/telemetry"
	"honnef.co/go/swipeback/theme"
	"honnef.co/go/swipeback/widget"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const enterDuration = 250 * time.Millisecond

type demo struct {
	log     *slog.Logger
	metrics *telemetry.Metrics
	latest  *mysync.Mutex[reload]

	theme   *theme.Theme
	shadows theme.Shadows
	printer *message.Printer

	// cfg is the most recently applied config; gen is its generation.
	cfg    config.File
	gen    int
	stack  []*panel
	keyTag struct{}
}

// panel is one entry of the stack. The bottom panel has no SwipeBack and
// can't be dismissed.
type panel struct {
	index int
	sb    *widget.SwipeBack
	// sub is the telemetry subscription, if any.
	sub string

	open    widget.PrimaryClickable
	enabled widget.Bool
	mask    swipe.EdgeMask
	edges   [3]widget.BackedBit[swipe.EdgeMask]
	enter   theme.Animation[float32]
}

func newDemo(log *slog.Logger, m *telemetry.Metrics, latest *mysync.Mutex[reload]) *demo {
	r := latest.Load()
	d := &demo{
		log:     log,
		metrics: m,
		latest:  latest,
		theme:   theme.NewTheme(gofont.Collection()),
		printer: message.NewPrinter(language.English),
		cfg:     r.File,
		gen:     r.Gen,
	}
	d.stack = []*panel{{index: 0}}
	return d
}

// swipeConfig returns the swipe.Config for the current file. The file was
// validated when it was loaded.
func (d *demo) swipeConfig() swipe.Config {
	cfg, err := d.cfg.Swipe()
	if err != nil {
		d.log.Warn("invalid config, using defaults", "err", err)
		return swipe.DefaultConfig()
	}
	return cfg
}

func (d *demo) shadowWidth() unit.Dp {
	if d.cfg.ShadowWidth > 0 {
		return unit.Dp(d.cfg.ShadowWidth)
	}
	return 8
}

func (d *demo) push(gtx layout.Context) {
	cfg := d.swipeConfig()
	p := &panel{
		index: len(d.stack),
		sb:    widget.NewSwipeBack(cfg),
	}
	p.sb.Controller.SetLogger(d.log.With("panel", p.index))
	p.sb.Controller.Subscribe(func(ev swipe.StateEvent) {
		if ev.State == swipe.StateIdle && ev.Dismissed {
			d.log.Info("panel dismissed", "panel", p.index, "edge", ev.Edge)
		}
	})
	if d.metrics != nil {
		p.sub = d.metrics.Attach(p.sb.Controller)
	}
	p.setConfig(cfg)
	p.enter.Start(gtx, float32(gtx.Constraints.Max.X), 0, enterDuration, theme.EaseOut(3))
	d.stack = append(d.stack, p)
	d.log.Debug("opened panel", "panel", p.index)
}

func (d *demo) pop() {
	p, rest, ok := slices.Pop(d.stack)
	if !ok || p.sb == nil {
		return
	}
	if p.sub != "" {
		p.sb.Controller.Unsubscribe(p.sub)
	}
	p.sb.Controller.Detach()
	d.stack = rest
}

func (d *demo) top() *panel {
	p, _ := slices.Last(d.stack)
	return p
}

func (p *panel) setConfig(cfg swipe.Config) {
	p.sb.Controller.SetConfig(cfg)
	p.mask = cfg.EdgeMask
	p.enabled.Value = cfg.Enabled
	for i, bit := range []int{0, 1, 3} {
		p.edges[i] = widget.BackedBit[swipe.EdgeMask]{Bits: &p.mask, Bit: bit}
	}
}

// applyConfig picks up a config published by the watcher.
func (d *demo) applyConfig() {
	r := d.latest.Load()
	if r.Gen == d.gen {
		return
	}
	d.gen = r.Gen
	d.cfg = r.File
	cfg := d.swipeConfig()
	for _, p := range d.stack[1:] {
		p.setConfig(cfg)
	}
	d.log.Info("applied config", "edges", cfg.EdgeMask, "edge_size", cfg.EdgeSize, "enabled", cfg.Enabled)
}

func (d *demo) run(w *app.Window) error {
	var ops op.Ops
	for {
		switch ev := w.NextEvent().(type) {
		case system.DestroyEvent:
			return ev.Err
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, ev)
			d.Layout(gtx)
			ev.Frame(&ops)
		}
	}
}

func (d *demo) Layout(gtx layout.Context) layout.Dimensions {
	defer rtrace.StartRegion(context.Background(), "main.demo.Layout").End()

	d.applyConfig()

	for _, e := range gtx.Events(&d.keyTag) {
		if e, ok := e.(key.Event); ok && e.Name == key.NameEscape && e.State == key.Press {
			if top := d.top(); top.sb != nil {
				top.sb.Controller.ScrollToFinish()
			}
		}
	}

	dims := d.layoutStack(gtx, len(d.stack)-1)

	if top := d.top(); top.sb != nil && top.sb.Dismissed() {
		d.pop()
		op.InvalidateOp{}.Add(gtx.Ops)
	}

	key.InputOp{Tag: &d.keyTag, Keys: key.Set(key.NameEscape)}.Add(gtx.Ops)
	return dims
}

// layoutStack draws the panels up to and including i. Only the top panel
// receives input.
func (d *demo) layoutStack(gtx layout.Context, i int) layout.Dimensions {
	p := d.stack[i]
	if p.sb == nil {
		return d.layoutPanel(gtx, p)
	}
	below := func(gtx layout.Context) layout.Dimensions {
		return d.layoutStack(gtx.Disabled(), i-1)
	}
	content := func(gtx layout.Context) layout.Dimensions {
		off := int(p.enter.Value(gtx))
		defer op.Offset(image.Pt(off, 0)).Push(gtx.Ops).Pop()
		return d.layoutPanel(gtx, p)
	}
	style := theme.SwipeBack(d.theme, p.sb, &d.shadows)
	style.ShadowWidth = d.shadowWidth()
	return style.Layout(gtx, below, content)
}

func (d *demo) layoutPanel(gtx layout.Context, p *panel) layout.Dimensions {
	defer rtrace.StartRegion(context.Background(), "main.demo.layoutPanel").End()

	if p.open.Clicked(gtx) {
		d.push(gtx)
	}
	if p.sb != nil {
		if p.enabled.Update(gtx) {
			p.sb.Controller.SetEnabled(p.enabled.Value)
		}
		for i := range p.edges {
			if p.edges[i].Update(gtx) {
				p.sb.Controller.SetEdgeMask(p.mask)
			}
		}
	}

	size := gtx.Constraints.Max
	paint.FillShape(gtx.Ops, d.theme.PanelColor(p.index), clip.Rect{Max: size}.Op())

	gtx.Constraints.Min = image.Point{}
	layout.UniformInset(12).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		children := []layout.FlexChild{
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				l := theme.Label(d.theme, d.printer.Sprintf("Panel %d", p.index))
				l.TextSize = d.theme.TextSizeLarge
				return l.Layout(d.theme, gtx)
			}),
			layout.Rigid(layout.Spacer{Height: 8}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return theme.Button(d.theme, &p.open, "Open panel").Layout(d.theme, gtx)
			}),
		}
		if p.sb != nil {
			children = append(children,
				layout.Rigid(layout.Spacer{Height: 8}.Layout),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return theme.CheckBox(d.theme, &p.enabled, "Swipe enabled").Layout(d.theme, gtx)
				}),
			)
			for i, name := range []string{"Left edge", "Right edge", "Bottom edge"} {
				children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return theme.CheckBox(d.theme, &p.edges[i], name).Layout(d.theme, gtx)
				}))
			}
			children = append(children,
				layout.Rigid(layout.Spacer{Height: 8}.Layout),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return d.layoutStatus(gtx, p)
				}),
			)
		} else {
			children = append(children,
				layout.Rigid(layout.Spacer{Height: 8}.Layout),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return theme.Label(d.theme, "This panel can't be swiped away.").Layout(d.theme, gtx)
				}),
			)
		}
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
	})

	return layout.Dimensions{Size: size}
}
