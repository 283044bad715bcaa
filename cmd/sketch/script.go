package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"honnef.co/go/sketch"
	"honnef.co/go/sketch/interact"
	"honnef.co/go/sketch/render"
)

// ErrUnknownEvent is returned for script lines that name no known event.
var ErrUnknownEvent = errors.New("unknown event")

// Event is one line of an input script.
type Event struct {
	Line int
	Name string
	Args []string
}

func (ev Event) String() string {
	return strings.Join(append([]string{ev.Name}, ev.Args...), " ")
}

// arity lists the number of arguments of each event.
var arity = map[string]int{
	"click":    2, // press and release at screen position
	"down":     2,
	"drag":     2,
	"up":       0,
	"key":      1,
	"select":   1, // 1-based curve number
	"mode":     1, // place | move
	"add":      2, // world coordinates, as typed into the form
	"clear":    0, // active curve
	"clearall": 0,
	"interp":   1, // global | piecewise
	"polygon":  0, // toggle the control polygon
	"status":   0,
}

// ParseScript reads one event per line. Blank lines and lines starting with
// '#' are ignored.
func ParseScript(r io.Reader) ([]Event, error) {
	var out []Event
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		ev := Event{Line: line, Name: strings.ToLower(fields[0]), Args: fields[1:]}
		n, ok := arity[ev.Name]
		if !ok {
			return nil, fmt.Errorf("line %d: %w %q", line, ErrUnknownEvent, fields[0])
		}
		if len(ev.Args) != n {
			return nil, fmt.Errorf("line %d: %s takes %d arguments, got %d", line, ev.Name, n, len(ev.Args))
		}
		out = append(out, ev)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Session wires the curve manager to the input and render adapters, the way
// an interactive front end would.
type Session struct {
	Manager *sketch.Manager
	Scene   *render.Scene
	Input   *interact.Adapter
	View    render.Viewport
	// Status receives the status line after every "status" event.
	Status io.Writer
}

// NewSession returns a session with its scene synchronised to m.
func NewSession(m *sketch.Manager, vp render.Viewport, markerRadius float64, status io.Writer) *Session {
	sc := render.NewScene(markerRadius)
	sc.Sync(m)
	return &Session{
		Manager: m,
		Scene:   sc,
		Input:   interact.New(m, sc),
		View:    vp,
		Status:  status,
	}
}

// Apply dispatches one event and brings the scene up to date.
func (s *Session) Apply(ev Event) error {
	err := s.apply(ev)
	s.Scene.Sync(s.Manager)
	if err != nil {
		return fmt.Errorf("line %d: %s: %w", ev.Line, ev, err)
	}
	return nil
}

func (s *Session) apply(ev Event) error {
	switch ev.Name {
	case "click", "down", "drag":
		pt, err := s.screenPoint(ev.Args)
		if err != nil {
			return err
		}
		switch ev.Name {
		case "click":
			s.Input.PointerDown(pt)
			s.Scene.Sync(s.Manager)
			s.Input.PointerUp()
		case "down":
			s.Input.PointerDown(pt)
		case "drag":
			return s.Input.PointerMove(pt)
		}
	case "up":
		s.Input.PointerUp()
	case "key":
		r := []rune(ev.Args[0])
		if len(r) != 1 {
			return fmt.Errorf("key %q is not a single character", ev.Args[0])
		}
		s.Input.Key(r[0])
	case "select":
		n, err := strconv.Atoi(ev.Args[0])
		if err != nil {
			return err
		}
		return s.Input.SelectCurve(n - 1)
	case "mode":
		m, err := interact.ParseMode(ev.Args[0])
		if err != nil {
			return err
		}
		s.Input.SetMode(m)
	case "add":
		return s.Input.EnterCoordinates(ev.Args[0], ev.Args[1])
	case "clear":
		s.Input.ClearActive()
	case "clearall":
		s.Input.ClearAll()
	case "interp":
		m, err := sketch.ParseInterpolation(ev.Args[0])
		if err != nil {
			return err
		}
		s.Input.SetInterpolation(m)
	case "polygon":
		s.Input.TogglePolygon()
	case "status":
		if s.Status != nil {
			fmt.Fprintln(s.Status, s.Input.Status())
		}
	default:
		return fmt.Errorf("%w %q", ErrUnknownEvent, ev.Name)
	}
	return nil
}

func (s *Session) screenPoint(args []string) (sketch.Point, error) {
	pt, err := interact.ParsePoint(args[0], args[1])
	if err != nil {
		return sketch.Point{}, err
	}
	return s.View.ToWorld(pt.X, pt.Y), nil
}
