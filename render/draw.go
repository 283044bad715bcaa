package render

import (
	"fmt"
	"image/color"

	"github.com/gogpu/gg"
	"honnef.co/go/sketch"
)

// Style holds the colours and sizes used by [Scene.Draw].
type Style struct {
	Background color.Color
	Curve      color.Color
	Polygon    color.Color
	Marker     color.Color
	LineWidth  float64
	// InactiveAlpha scales the opacity of slots that are not active.
	InactiveAlpha float64
}

// DefaultStyle returns a white curve, a green control polygon and red markers
// on black.
func DefaultStyle() Style {
	return Style{
		Background:    color.Black,
		Curve:         color.White,
		Polygon:       color.RGBA{0x00, 0xff, 0x00, 0xff},
		Marker:        color.RGBA{0xff, 0x33, 0x33, 0xff},
		LineWidth:     2,
		InactiveAlpha: 0.35,
	}
}

func (st Style) paint(c color.Color, primary bool) gg.RGBA {
	rgba := gg.FromColor(c)
	if !primary {
		rgba.A *= st.InactiveAlpha
	}
	return rgba
}

// Draw clears dc and draws the live primitives of every slot that reaches
// into the viewport, inactive slots first. Draw only reads the scene and is
// safe to call on an empty scene.
func (sc *Scene) Draw(dc *gg.Context, vp Viewport, st Style) error {
	dc.ClearWithColor(gg.FromColor(st.Background))
	dc.SetLineWidth(st.LineWidth)
	toScreen := vp.WorldToScreen()
	view := vp.Bounds().Inflate(st.LineWidth, st.LineWidth)

	for _, slot := range sc.VisibleSlots(view) {
		for _, kind := range []Kind{Polygon, Curve} {
			l, ok := sc.lines[lineKey{slot, kind}]
			if !ok {
				continue
			}
			c := st.Curve
			if kind == Polygon {
				c = st.Polygon
			}
			if err := strokeLine(dc, l.Points, toScreen, st.paint(c, l.Primary)); err != nil {
				return fmt.Errorf("drawing %s of curve %d: %w", kind, slot+1, err)
			}
		}
		for _, m := range sc.slotMarkers(slot) {
			p := m.Points[0].Transform(toScreen)
			setColor(dc, st.paint(st.Marker, m.Primary))
			dc.DrawCircle(p.X, p.Y, sc.markerRadius)
			if err := dc.Fill(); err != nil {
				return fmt.Errorf("drawing marker of curve %d: %w", slot+1, err)
			}
		}
	}
	return nil
}

func strokeLine(dc *gg.Context, pts []sketch.Point, aff sketch.Affine, c gg.RGBA) error {
	setColor(dc, c)
	for i, pt := range pts {
		p := pt.Transform(aff)
		if i == 0 {
			dc.MoveTo(p.X, p.Y)
		} else {
			dc.LineTo(p.X, p.Y)
		}
	}
	return dc.Stroke()
}

func setColor(dc *gg.Context, c gg.RGBA) {
	dc.SetRGBA(c.R, c.G, c.B, c.A)
}

// Render draws the scene into a new context of the viewport's size.
func (sc *Scene) Render(vp Viewport, st Style) (*gg.Context, error) {
	if vp.Width <= 0 || vp.Height <= 0 {
		return nil, fmt.Errorf("invalid viewport %dx%d", vp.Width, vp.Height)
	}
	dc := gg.NewContext(vp.Width, vp.Height)
	if err := sc.Draw(dc, vp, st); err != nil {
		_ = dc.Close()
		return nil, err
	}
	return dc, nil
}
