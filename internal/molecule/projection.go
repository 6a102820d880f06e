package molecule

import (
	"cmp"
	"math"
	"slices"
)

// FocalLength is the camera distance used by the perspective divide.
const FocalLength = 400.0

// Point3 is a point in model space.
type Point3 struct {
	X, Y, Z float64
}

// Rotation holds angles in radians about the X and Y axes.
type Rotation struct {
	X, Y float64
}

// Add returns the component-wise sum.
func (r Rotation) Add(o Rotation) Rotation {
	return Rotation{X: r.X + o.X, Y: r.Y + o.Y}
}

// RotateX rotates p about the X axis by angle.
func RotateX(p Point3, angle float64) Point3 {
	cos, sin := math.Cos(angle), math.Sin(angle)
	return Point3{
		X: p.X,
		Y: p.Y*cos - p.Z*sin,
		Z: p.Y*sin + p.Z*cos,
	}
}

// RotateY rotates p about the Y axis by angle.
func RotateY(p Point3, angle float64) Point3 {
	cos, sin := math.Cos(angle), math.Sin(angle)
	return Point3{
		X: p.X*cos + p.Z*sin,
		Y: p.Y,
		Z: -p.X*sin + p.Z*cos,
	}
}

// Projected is an atom after rotation and perspective projection.
// X and Y are screen coordinates; Z is the rotated depth used for sorting.
type Projected struct {
	Index  int
	X, Y   float64
	Z      float64
	Radius float64
	Color  string
}

// Scale returns the perspective factor for depth z.
func Scale(z float64) float64 {
	return FocalLength / (FocalLength + z)
}

// ProjectAtom rotates a about X then Y and projects it around (cx, cy).
// The screen Y uses the coordinate produced by the X rotation; the Y-axis
// rotation leaves it unchanged.
func ProjectAtom(a Atom, rot Rotation, cx, cy float64) Projected {
	p := RotateY(RotateX(a.Position(), rot.X), rot.Y)
	s := Scale(p.Z)
	return Projected{
		X:      cx + p.X*s,
		Y:      cy + p.Y*s,
		Z:      p.Z,
		Radius: a.Radius * s,
		Color:  a.Color,
	}
}

// Project projects every atom of m and returns them sorted far to near
// (ascending Z). Atoms at equal depth keep declaration order.
func Project(m Model, rot Rotation, cx, cy float64) []Projected {
	out := make([]Projected, len(m.Atoms))
	for i, a := range m.Atoms {
		p := ProjectAtom(a, rot, cx, cy)
		p.Index = i
		out[i] = p
	}
	slices.SortStableFunc(out, func(a, b Projected) int {
		return cmp.Compare(a.Z, b.Z)
	})
	return out
}
