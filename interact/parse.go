package interact

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"
	"honnef.co/go/sketch"
)

// ErrInvalidCoordinate is returned for coordinate text that is not a finite
// number.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// ParseCoordinate parses one coordinate typed by the user.
func ParseCoordinate(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidCoordinate)
	}
	v, err := cast.ToFloat64E(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("%w: %q is not finite", ErrInvalidCoordinate, s)
	}
	return v, nil
}

// ParsePoint parses an x and a y coordinate.
func ParsePoint(xs, ys string) (sketch.Point, error) {
	x, err := ParseCoordinate(xs)
	if err != nil {
		return sketch.Point{}, fmt.Errorf("x: %w", err)
	}
	y, err := ParseCoordinate(ys)
	if err != nil {
		return sketch.Point{}, fmt.Errorf("y: %w", err)
	}
	return sketch.Pt(x, y), nil
}
