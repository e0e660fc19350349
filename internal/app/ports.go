package app

import (
	"time"

	"go-space-invaders/internal/component"
)

// Clock is a monotonic time-since-start source.
type Clock interface {
	Elapsed() time.Duration
}

// Screen reports the current drawable size. Queried every tick.
type Screen interface {
	Size() (width, height float32)
}

// SpriteSource resolves a named sprite to its native pixel size.
type SpriteSource interface {
	Sprite(name string) (component.SpriteSize, error)
}

// FixedScreen is a Screen that never resizes.
type FixedScreen struct {
	Width, Height float32
}

func (s FixedScreen) Size() (float32, float32) {
	return s.Width, s.Height
}
