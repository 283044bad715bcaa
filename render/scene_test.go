package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"honnef.co/go/sketch"
)

func twoCurves(t *testing.T) *sketch.Manager {
	t.Helper()
	m := sketch.NewDefaultManager()
	m.AddPointToActive(sketch.Pt(0, 0))
	m.AddPointToActive(sketch.Pt(10, 0))
	m.AddPointToActive(sketch.Pt(10, 10))
	require.NoError(t, m.SetActive(1))
	m.AddPointToActive(sketch.Pt(-20, -20))
	m.AddPointToActive(sketch.Pt(-40, 0))
	return m
}

func TestSceneSyncBuildsPrimitives(t *testing.T) {
	m := twoCurves(t)
	sc := NewScene(0)
	sc.Sync(m)

	// 5 markers, 2 curves, 2 polygons
	assert.Equal(t, 9, sc.Len())
	assert.Equal(t, 9, sc.Created())
	assert.Equal(t, 0, sc.Released())

	mk, ok := sc.Marker(Key{Slot: 0, Point: 2})
	require.True(t, ok)
	assert.Equal(t, []sketch.Point{sketch.Pt(10, 10)}, mk.Points)
	assert.False(t, mk.Primary)
	assert.False(t, mk.HitTestable)

	mk, ok = sc.Marker(Key{Slot: 1, Point: 0})
	require.True(t, ok)
	assert.True(t, mk.Primary)
	assert.True(t, mk.HitTestable)

	curve, ok := sc.Line(0, Curve)
	require.True(t, ok)
	s0, err := m.Slot(0)
	require.NoError(t, err)
	assert.Equal(t, s0.CurveSamples(), curve.Points)

	_, ok = sc.Line(2, Curve)
	assert.False(t, ok, "empty slot should have no curve")
}

func TestSceneSyncIsIdempotent(t *testing.T) {
	m := twoCurves(t)
	sc := NewScene(0)
	sc.Sync(m)
	sc.Sync(m)
	assert.Equal(t, 9, sc.Created())
	assert.Equal(t, 0, sc.Released())
}

func TestSceneReleasesReplacedLines(t *testing.T) {
	m := twoCurves(t)
	sc := NewScene(0)
	sc.Sync(m)

	oldCurve, _ := sc.Line(1, Curve)
	oldPolygon, _ := sc.Line(1, Polygon)
	oldMarker, _ := sc.Marker(Key{1, 1})
	untouched, _ := sc.Line(0, Curve)

	require.NoError(t, m.MovePointInActive(1, sketch.Pt(-50, 5)))
	sc.Sync(m)

	assert.True(t, oldCurve.Released())
	assert.True(t, oldPolygon.Released())
	assert.False(t, untouched.Released(), "slot 0 was not edited")
	assert.Equal(t, 2, sc.Released())

	newMarker, _ := sc.Marker(Key{1, 1})
	assert.Same(t, oldMarker, newMarker, "markers move in place")
	assert.Equal(t, sketch.Pt(-50, 5), newMarker.Points[0])
}

func TestSceneReleasesClearedSlot(t *testing.T) {
	m := twoCurves(t)
	sc := NewScene(0)
	sc.Sync(m)

	m.ClearActive()
	sc.Sync(m)
	// 2 markers, curve and polygon of slot 1
	assert.Equal(t, 4, sc.Released())
	assert.Equal(t, 5, sc.Len())
	_, ok := sc.Marker(Key{1, 0})
	assert.False(t, ok)

	m.ClearAll()
	sc.Sync(m)
	assert.Equal(t, 0, sc.Len())
	assert.Equal(t, sc.Created(), sc.Released())
}

func TestSceneActiveSwitch(t *testing.T) {
	m := twoCurves(t)
	sc := NewScene(0)
	sc.Sync(m)

	require.NoError(t, m.SetActive(0))
	sc.Sync(m)
	assert.Equal(t, 0, sc.Released(), "switching slots must not rebuild anything")

	mk, _ := sc.Marker(Key{0, 0})
	assert.True(t, mk.HitTestable)
	mk, _ = sc.Marker(Key{1, 0})
	assert.False(t, mk.HitTestable)
	l, _ := sc.Line(1, Curve)
	assert.False(t, l.Primary)
}

func TestSceneHitTest(t *testing.T) {
	m := twoCurves(t)
	sc := NewScene(5)
	sc.Sync(m)

	k, ok := sc.HitTest(sketch.Pt(-38, 2))
	require.True(t, ok)
	assert.Equal(t, Key{1, 1}, k)

	_, ok = sc.HitTest(sketch.Pt(10, 10))
	assert.False(t, ok, "markers of inactive slots are not hit-testable")

	_, ok = sc.HitTest(sketch.Pt(-30, -10))
	assert.False(t, ok)

	idx, ok := sc.PickActive(sketch.Pt(-20, -16))
	require.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestSceneHitTestPrefersNearest(t *testing.T) {
	m := sketch.NewDefaultManager()
	m.AddPointToActive(sketch.Pt(0, 0))
	m.AddPointToActive(sketch.Pt(4, 0))
	m.AddPointToActive(sketch.Pt(4, 0))
	sc := NewScene(5)
	sc.Sync(m)

	k, ok := sc.HitTest(sketch.Pt(3, 0))
	require.True(t, ok)
	assert.Equal(t, Key{0, 1}, k, "closest marker wins, ties go to the lower index")
}

func TestSceneHitTestFollowsMovedPoint(t *testing.T) {
	m := twoCurves(t)
	sc := NewScene(5)
	sc.Sync(m)

	require.NoError(t, m.MovePointInActive(0, sketch.Pt(100, 100)))
	sc.Sync(m)

	k, ok := sc.HitTest(sketch.Pt(101, 99))
	require.True(t, ok)
	assert.Equal(t, Key{1, 0}, k)

	_, ok = sc.HitTest(sketch.Pt(-20, -20))
	assert.False(t, ok, "old position should no longer hit")
}

func TestSceneVisibleSlots(t *testing.T) {
	m := twoCurves(t)
	sc := NewScene(5)
	sc.Sync(m)

	everything := sketch.Rect{X0: -1000, Y0: -1000, X1: 1000, Y1: 1000}
	assert.Equal(t, []int{0, 1}, sc.VisibleSlots(everything), "active slot is drawn last")

	assert.Equal(t, []int{0}, sc.VisibleSlots(sketch.Rect{X0: 0, Y0: 0, X1: 20, Y1: 20}))
	assert.Equal(t, []int{1}, sc.VisibleSlots(sketch.Rect{X0: -60, Y0: -30, X1: -30, Y1: 0}))
	assert.Empty(t, sc.VisibleSlots(sketch.Rect{X0: -100, Y0: -100, X1: -50, Y1: -50}))

	// Marker discs count towards a slot's extent.
	assert.Equal(t, []int{0}, sc.VisibleSlots(sketch.Rect{X0: 13, Y0: 13, X1: 20, Y1: 20}))

	require.NoError(t, m.SetActive(0))
	sc.Sync(m)
	assert.Equal(t, []int{1, 0}, sc.VisibleSlots(everything))

	m.ClearAll()
	sc.Sync(m)
	assert.Empty(t, sc.VisibleSlots(everything))
}

func TestViewport(t *testing.T) {
	vp := Viewport{Width: 800, Height: 600}
	assert.Equal(t, sketch.Pt(400, 300), vp.ToScreen(sketch.Pt(0, 0)))
	assert.Equal(t, sketch.Pt(410, 290), vp.ToScreen(sketch.Pt(10, 10)))
	assert.Equal(t, sketch.Pt(-400, 300), vp.ToWorld(0, 0))
	assert.Equal(t, sketch.Pt(10, 10), vp.ToWorld(410, 290))
	assert.Equal(t, sketch.Rect{X0: -400, Y0: -300, X1: 400, Y1: 300}, vp.Bounds())
}

func TestDrawEmptyScene(t *testing.T) {
	sc := NewScene(0)
	sc.Sync(sketch.NewDefaultManager())
	dc, err := sc.Render(Viewport{Width: 64, Height: 48}, DefaultStyle())
	require.NoError(t, err)
	defer dc.Close()

	r, g, b, _ := dc.Image().At(32, 24).RGBA()
	assert.Zero(t, r+g+b, "empty scene should only show the background")
}

func TestDrawMarkers(t *testing.T) {
	m := twoCurves(t)
	sc := NewScene(5)
	sc.Sync(m)

	vp := Viewport{Width: 200, Height: 200}
	dc, err := sc.Render(vp, DefaultStyle())
	require.NoError(t, err)
	defer dc.Close()

	// Active marker at world (-40, 0) is drawn opaque red.
	p := vp.ToScreen(sketch.Pt(-40, 0))
	c := color.RGBAModel.Convert(dc.Image().At(int(p.X), int(p.Y))).(color.RGBA)
	assert.Greater(t, c.R, uint8(200))
	assert.Less(t, c.G, uint8(100))

	// Inactive marker at world (10, 10) is dimmed.
	p = vp.ToScreen(sketch.Pt(10, 10))
	dim := color.RGBAModel.Convert(dc.Image().At(int(p.X), int(p.Y))).(color.RGBA)
	assert.Less(t, dim.R, c.R)
	assert.Greater(t, dim.R, uint8(0))
}

func TestRenderInvalidViewport(t *testing.T) {
	_, err := NewScene(0).Render(Viewport{}, DefaultStyle())
	assert.Error(t, err)
}
