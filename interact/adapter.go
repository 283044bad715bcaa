// Package interact turns pointer, keyboard and form input into calls on a
// [sketch.Manager].
//
// The adapter never edits points itself; every change goes through the
// manager. Input coordinates are world coordinates; converting from screen
// space is the caller's job (see render.Viewport).
package interact

import (
	"fmt"

	"honnef.co/go/sketch"
)

// Mode selects what a pointer press does.
type Mode int

const (
	// Place adds a point to the active curve at the pointer position.
	Place Mode = iota
	// Move grabs the active curve's point under the pointer for dragging.
	Move
)

func (m Mode) String() string {
	switch m {
	case Place:
		return "place"
	case Move:
		return "move"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses the names produced by [Mode.String].
func ParseMode(s string) (Mode, error) {
	switch s {
	case "place":
		return Place, nil
	case "move":
		return Move, nil
	default:
		return 0, fmt.Errorf("unknown mode %q", s)
	}
}

// Picker finds the control point of the active curve under a world position.
// render.Scene implements it.
type Picker interface {
	PickActive(pt sketch.Point) (index int, ok bool)
}

// Adapter is the input layer of the sketching tool. It is not safe for
// concurrent use; events are expected one at a time from a single loop.
type Adapter struct {
	m      *sketch.Manager
	picker Picker
	mode   Mode
	// index of the dragged point in the active slot, -1 when idle
	dragging int
	status   string
}

// New returns an adapter in Place mode.
func New(m *sketch.Manager, p Picker) *Adapter {
	return &Adapter{
		m:        m,
		picker:   p,
		dragging: -1,
		status:   "ready.",
	}
}

// Status returns a short description of the outcome of the last event.
func (a *Adapter) Status() string { return a.status }

func (a *Adapter) setStatus(format string, args ...any) {
	a.status = fmt.Sprintf(format, args...)
	sketch.Logger().Debug("status", "text", a.status)
}

// curve returns the 1-based number of the active curve for messages.
func (a *Adapter) curve() int { return a.m.Active() + 1 }

// Mode returns the current pointer mode.
func (a *Adapter) Mode() Mode { return a.mode }

// SetMode changes the pointer mode and cancels any drag in progress.
func (a *Adapter) SetMode(m Mode) {
	a.mode = m
	a.dragging = -1
	a.setStatus("%s mode.", m)
}

// Dragging returns the index of the point being dragged.
func (a *Adapter) Dragging() (int, bool) {
	return a.dragging, a.dragging >= 0
}

// PointerDown handles a press at pt. In Place mode it adds a point to the
// active curve. In Move mode it starts dragging the active curve's point
// under pt, if any.
func (a *Adapter) PointerDown(pt sketch.Point) {
	switch a.mode {
	case Move:
		if a.picker == nil {
			return
		}
		if i, ok := a.picker.PickActive(pt); ok {
			a.dragging = i
			a.setStatus("moving…")
		}
	default:
		a.m.AddPointToActive(pt)
		a.setStatus("point added %v to curve %d", pt, a.curve())
	}
}

// PointerMove moves the dragged point to pt. It does nothing when no drag is
// in progress.
func (a *Adapter) PointerMove(pt sketch.Point) error {
	if a.dragging < 0 {
		return nil
	}
	if err := a.m.MovePointInActive(a.dragging, pt); err != nil {
		a.dragging = -1
		return fmt.Errorf("dragging point: %w", err)
	}
	return nil
}

// PointerUp ends a drag.
func (a *Adapter) PointerUp() {
	if a.dragging >= 0 {
		a.setStatus("point moved.")
	}
	a.dragging = -1
}

// Key handles a key press. 'r' clears every curve.
func (a *Adapter) Key(r rune) {
	switch r {
	case 'r', 'R':
		a.ClearAll()
	}
}

// EnterCoordinates adds a point typed in as text to the active curve. Text
// that is not a finite number is rejected and nothing changes.
func (a *Adapter) EnterCoordinates(xs, ys string) error {
	pt, err := ParsePoint(xs, ys)
	if err != nil {
		a.setStatus("invalid X/Y.")
		return err
	}
	a.m.AddPointToActive(pt)
	a.setStatus("point added %v to curve %d", pt, a.curve())
	return nil
}

// SelectCurve makes curve i (0-based) the active one.
func (a *Adapter) SelectCurve(i int) error {
	if err := a.m.SetActive(i); err != nil {
		return err
	}
	a.dragging = -1
	a.setStatus("curve %d active.", a.curve())
	return nil
}

// ClearActive removes every point of the active curve.
func (a *Adapter) ClearActive() {
	a.m.ClearActive()
	a.dragging = -1
	a.setStatus("curve %d cleared.", a.curve())
}

// ClearAll removes every point of every curve and selects the first curve.
func (a *Adapter) ClearAll() {
	a.m.ClearAll()
	a.dragging = -1
	a.setStatus("all curves cleared.")
}

// SetInterpolation changes how the active curve is drawn.
func (a *Adapter) SetInterpolation(mode sketch.Interpolation) {
	a.m.SetActiveMode(mode)
	a.setStatus("curve %d drawn as %s.", a.curve(), mode)
}

// TogglePolygon shows or hides the active curve's control polygon.
func (a *Adapter) TogglePolygon() {
	on := !a.m.ActiveSlot().Polygon()
	a.m.SetActivePolygon(on)
	if on {
		a.setStatus("control polygon shown.")
	} else {
		a.setStatus("control polygon hidden.")
	}
}
