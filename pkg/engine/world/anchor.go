package world

import "fmt"

// Vec3 is a world-space position. Y is the vertical axis; the grid lies in X/Z.
type Vec3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Add returns the component-wise sum of v and o
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// String returns the position as "(x, y, z)"
func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// Anchor is a world-placement handle owned by the caller.
// The grid only ever reads its position.
type Anchor interface {
	Position() Vec3
}

// Marker is a named, designer-placed anchor
type Marker struct {
	Name string `yaml:"name"`
	Pos  Vec3   `yaml:",inline"`
}

// NewMarker creates a marker at the given position
func NewMarker(name string, x, y, z float64) *Marker {
	return &Marker{Name: name, Pos: Vec3{X: x, Y: y, Z: z}}
}

// Position implements Anchor
func (m *Marker) Position() Vec3 {
	return m.Pos
}

// Lattice returns rows*cols markers spaced evenly from origin along X (columns) and Z (rows).
// Markers are ordered row by row.
func Lattice(rows, cols int, spacing float64, origin Vec3) []Anchor {
	if rows <= 0 || cols <= 0 {
		return nil
	}
	anchors := make([]Anchor, 0, rows*cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			anchors = append(anchors, &Marker{
				Name: fmt.Sprintf("%v:%v", row, col),
				Pos: Vec3{
					X: origin.X + float64(col)*spacing,
					Y: origin.Y,
					Z: origin.Z + float64(row)*spacing,
				},
			})
		}
	}
	return anchors
}
