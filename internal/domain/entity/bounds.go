package entity

// ArenaBounds holds the four limits beyond which the ball reflects or is lost.
// Y grows toward the player: Top is the far wall, Bottom is behind the paddle.
type ArenaBounds struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

// BoundsInsets shifts each arena limit relative to the grid size
type BoundsInsets struct {
	Right  float64
	Left   float64
	Bottom float64
	Top    float64
}

// DefaultBoundsInsets matches the wall ring of the shipped levels
var DefaultBoundsInsets = BoundsInsets{
	Right:  1.5,
	Left:   1.0,
	Bottom: 9.0,
	Top:    7.0,
}

// NewArenaBounds derives the bounds for a W x H grid:
// right = W-r, left = -W-l, bottom = H-b, top = -H-t.
func NewArenaBounds(width, height int, in BoundsInsets) ArenaBounds {
	w := float64(width)
	h := float64(height)
	return ArenaBounds{
		Right:  w - in.Right,
		Left:   -w - in.Left,
		Bottom: h - in.Bottom,
		Top:    -h - in.Top,
	}
}
