// internal/component/enemy.go
package component

import "go-space-invaders/internal/config"

// Enemy descends every frame and bounces between the side walls.
type Enemy struct {
	X, Y            float32
	Speed           float32
	HorizontalSpeed float32
	ScaleFactor     float32
	IsDead          bool
	Sprite          SpriteSize
}

func NewEnemy(x, y, speed, horizontalSpeed float32, sprite SpriteSize) *Enemy {
	return &Enemy{
		X:               x,
		Y:               y,
		Speed:           speed,
		HorizontalSpeed: horizontalSpeed,
		ScaleFactor:     config.EnemyScale,
		Sprite:          sprite,
	}
}

func (e *Enemy) ScaledWidth() float32  { return e.Sprite.W * e.ScaleFactor }
func (e *Enemy) ScaledHeight() float32 { return e.Sprite.H * e.ScaleFactor }

// Bounds is the collision box. It ignores the draw offset and the vertical flip
// used when the sprite is rendered.
func (e *Enemy) Bounds() Rect {
	return Rect{X: e.X, Y: e.Y, W: e.ScaledWidth(), H: e.ScaledHeight()}
}

// Update moves the enemy one step. The horizontal direction flips on the same
// call that crosses a wall, so the enemy may overshoot by one step.
func (e *Enemy) Update(screenWidth float32) {
	e.Y += e.Speed
	e.X += e.HorizontalSpeed

	if e.X < 0 || e.X+e.ScaledWidth() > screenWidth {
		e.HorizontalSpeed = -e.HorizontalSpeed
	}
}

// DrawPlacement returns where and how the sprite is drawn: shifted down and
// mirrored vertically.
func (e *Enemy) DrawPlacement() (x, y, scaleX, scaleY float32) {
	return e.X, e.Y + config.EnemyDrawOffsetY, e.ScaleFactor, -e.ScaleFactor
}
