// Package molecule renders the decorative rotating molecule shown in the
// about section: a fixed set of atoms and bonds, perspective-projected and
// painted back to front onto a 2D canvas once per animation frame.
package molecule

import "fmt"

// Atom is a labeled point mass drawn as a shaded circle.
type Atom struct {
	X, Y, Z float64
	Radius  float64
	// CSS hex colour, e.g. "#3b82f6"
	Color string
}

// Position returns the atom centre in model space.
func (a Atom) Position() Point3 {
	return Point3{X: a.X, Y: a.Y, Z: a.Z}
}

// Bond connects two atoms by index.
type Bond struct {
	From, To int
}

// Model is the immutable atom/bond structure.
type Model struct {
	Atoms []Atom
	Bonds []Bond
}

// Palette used by the default model.
const (
	ColorCore    = "#3b82f6"
	ColorViolet  = "#8b5cf6"
	ColorEmerald = "#10b981"
	ColorRed     = "#ef4444"
	ColorAmber   = "#f59e0b"
	ColorPink    = "#ec4899"
)

// NewModel returns the fixed 11-atom, 10-bond structure: a central atom
// with six axis neighbours and four diagonal satellites.
func NewModel() Model {
	return Model{
		Atoms: []Atom{
			{X: 0, Y: 0, Z: 0, Radius: 10, Color: ColorCore},
			{X: 30, Y: 0, Z: 0, Radius: 8, Color: ColorViolet},
			{X: -30, Y: 0, Z: 0, Radius: 8, Color: ColorViolet},
			{X: 0, Y: 30, Z: 0, Radius: 8, Color: ColorEmerald},
			{X: 0, Y: -30, Z: 0, Radius: 8, Color: ColorEmerald},
			{X: 0, Y: 0, Z: 30, Radius: 8, Color: ColorRed},
			{X: 0, Y: 0, Z: -30, Radius: 8, Color: ColorRed},
			{X: 20, Y: 20, Z: 20, Radius: 6, Color: ColorAmber},
			{X: -20, Y: -20, Z: -20, Radius: 6, Color: ColorAmber},
			{X: 20, Y: -20, Z: 20, Radius: 6, Color: ColorPink},
			{X: -20, Y: 20, Z: -20, Radius: 6, Color: ColorPink},
		},
		Bonds: []Bond{
			{From: 0, To: 1},
			{From: 0, To: 2},
			{From: 0, To: 3},
			{From: 0, To: 4},
			{From: 0, To: 5},
			{From: 0, To: 6},
			{From: 1, To: 7},
			{From: 2, To: 8},
			{From: 3, To: 9},
			{From: 4, To: 10},
		},
	}
}

// Validate checks that every bond endpoint names an atom in the model.
func (m Model) Validate() error {
	for i, b := range m.Bonds {
		if b.From < 0 || b.From >= len(m.Atoms) {
			return fmt.Errorf("bond %d: from index %d out of range [0,%d)", i, b.From, len(m.Atoms))
		}
		if b.To < 0 || b.To >= len(m.Atoms) {
			return fmt.Errorf("bond %d: to index %d out of range [0,%d)", i, b.To, len(m.Atoms))
		}
	}
	return nil
}
