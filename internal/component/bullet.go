// internal/component/bullet.go
package component

import (
	"log"

	"go-space-invaders/internal/config"
)

// Bullet летит вверх, пока не покинет экран или не попадёт во врага.
type Bullet struct {
	X, Y          float32
	Width, Height float32
	Speed         float32
	IsActive      bool
}

func NewBullet(x, y, speed float32) *Bullet {
	return &Bullet{
		X:        x,
		Y:        y,
		Width:    config.BulletWidth,
		Height:   config.BulletHeight,
		Speed:    speed,
		IsActive: true,
	}
}

// Update moves an active bullet up one step and retires it past the top edge.
func (b *Bullet) Update() {
	if !b.IsActive {
		return
	}
	b.Y -= b.Speed
	if b.Y < 0 {
		b.IsActive = false
	}
}

func (b *Bullet) Bounds() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.Width, H: b.Height}
}

// CollidesWith tests the bullet box against the enemy collision box.
// The caller resolves the hit.
func (b *Bullet) CollidesWith(e *Enemy) bool {
	if !b.Bounds().Overlaps(e.Bounds()) {
		return false
	}
	if config.Debug {
		log.Printf("shot reached enemy at (%.1f, %.1f)", e.X, e.Y)
	}
	return true
}
