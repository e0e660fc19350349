package component

// Rect is an axis-aligned box, X/Y is the top-left corner.
type Rect struct {
	X, Y, W, H float32
}

func (r Rect) Right() float32  { return r.X + r.W }
func (r Rect) Bottom() float32 { return r.Y + r.H }

// Overlaps is strict on all four sides: boxes that only share an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X && r.Y < o.Bottom() && r.Bottom() > o.Y
}

// SpriteSize is the native pixel size of a sprite before scaling.
type SpriteSize struct {
	W, H float32
}
