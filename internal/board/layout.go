package board

import "seehuhn.de/go/geom/vec"

// Layout describes how the grid is drawn in pixel space: square tiles of
// TilePx separated by SpacePx, with the top-left tile starting at Origin.
//
// Logical space has one unit per tile pitch (tile + spacing). The "wide"
// convention is used so that each unit cell owns half of the gap on every
// side: the cell boundaries sit in the middle of the gaps.
type Layout struct {
	TilePx  float64  `json:"tilePx"`
	SpacePx float64  `json:"spacePx"`
	Origin  vec.Vec2 `json:"origin"`
}

// Pitch is the distance between the top-left corners of neighbouring tiles.
func (l Layout) Pitch() float64 { return l.TilePx + l.SpacePx }

// ToLogical maps a pixel position into logical unit space.
func (l Layout) ToLogical(p vec.Vec2) vec.Vec2 {
	pitch := l.Pitch()
	if pitch <= 0 {
		return p
	}
	half := vec.Vec2{X: l.SpacePx / 2, Y: l.SpacePx / 2}
	return p.Add(half).Sub(l.Origin).Mul(1 / pitch)
}

// ToPixel is the inverse of ToLogical.
func (l Layout) ToPixel(p vec.Vec2) vec.Vec2 {
	half := vec.Vec2{X: l.SpacePx / 2, Y: l.SpacePx / 2}
	return p.Mul(l.Pitch()).Add(l.Origin).Sub(half)
}

// TileCentre is the pixel centre of the tile drawn at cell p.
func (l Layout) TileCentre(p Point) vec.Vec2 {
	corner := vec.Vec2{X: float64(p.X), Y: float64(p.Y)}.Mul(l.Pitch()).Add(l.Origin)
	return corner.Add(vec.Vec2{X: l.TilePx / 2, Y: l.TilePx / 2})
}
