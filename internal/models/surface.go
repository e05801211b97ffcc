// ABOUTME: Rendered surface model shared by the layout, vector and raster exporters.
// ABOUTME: Boxes carry their rotation as data, with a transform matrix as fallback.

package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Box is one word placed on the surface. X and Y are the top-left corner of
// the unrotated layout box.
type Box struct {
	Word       string  `json:"word"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	FontSize   float64 `json:"font_size"`
	FontFamily string  `json:"font_family"`
	Color      string  `json:"color"`
	Emphasis   bool    `json:"emphasis,omitempty"`
	Tooltip    string  `json:"tooltip,omitempty"`

	// Rotation is the stored rotation in degrees. When nil the angle is
	// recovered from Transform.
	Rotation  *int    `json:"rotation,omitempty"`
	Transform *Matrix `json:"transform,omitempty"`
}

// Angle returns the rotation of the box in degrees.
func (b Box) Angle() float64 {
	if b.Rotation != nil {
		return float64(*b.Rotation)
	}
	if b.Transform != nil {
		return b.Transform.Angle()
	}
	return 0
}

// Center is the pivot used for rotation: the approximate center of the text.
func (b Box) Center() (float64, float64) {
	return b.X + b.Width/2, b.Y + b.FontSize/2
}

// Surface is the finished presentation area.
type Surface struct {
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Background string `json:"background"`
	Boxes      []Box  `json:"boxes"`
}

// Matrix is a 2D affine transform in CSS matrix(a, b, c, d, e, f) order.
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity is the transform of an unrotated box.
var Identity = Matrix{A: 1, D: 1}

// Angle recovers the rotation in degrees from the matrix.
func (m Matrix) Angle() float64 {
	deg := math.Atan2(m.B, m.A) * 180 / math.Pi
	if deg == 0 {
		return 0 // normalizes -0
	}
	return deg
}

// RotationMatrix builds the matrix for a rotation of deg degrees.
func RotationMatrix(deg float64) Matrix {
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Matrix{A: cos, B: sin, C: -sin, D: cos}
}

// ParseMatrix reads a computed CSS transform such as
// "matrix(0, 1, -1, 0, 0, 0)". "none" and "" yield the identity.
func ParseMatrix(s string) (Matrix, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "none" {
		return Identity, nil
	}

	inner, ok := strings.CutPrefix(s, "matrix(")
	if !ok || !strings.HasSuffix(inner, ")") {
		return Matrix{}, fmt.Errorf("unsupported transform %q", s)
	}
	parts := strings.Split(strings.TrimSuffix(inner, ")"), ",")
	if len(parts) != 6 {
		return Matrix{}, fmt.Errorf("transform %q: expected 6 values, got %d", s, len(parts))
	}

	var vals [6]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Matrix{}, fmt.Errorf("transform %q: %w", s, err)
		}
		vals[i] = v
	}

	return Matrix{A: vals[0], B: vals[1], C: vals[2], D: vals[3], E: vals[4], F: vals[5]}, nil
}
