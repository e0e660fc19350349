// internal/component/player.go
package component

import (
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/input"
)

// Player — корабль игрока внизу экрана.
type Player struct {
	X, Y        float32
	Speed       float32
	ScaleFactor float32
	Sprite      SpriteSize
}

func NewPlayer(x, y, speed float32, sprite SpriteSize) *Player {
	return &Player{
		X:           x,
		Y:           y,
		Speed:       speed,
		ScaleFactor: config.PlayerScale,
		Sprite:      sprite,
	}
}

// NewCenteredPlayer places a fresh ship horizontally centered near the bottom edge.
func NewCenteredPlayer(screenWidth, screenHeight float32, sprite SpriteSize) *Player {
	x := (screenWidth - config.PlayerWidth) / 2
	y := screenHeight - config.PlayerHeight - config.PlayerBottomMargin
	return NewPlayer(x, y, config.PlayerSpeed, sprite)
}

func (p *Player) ScaledWidth() float32 { return p.Sprite.W * p.ScaleFactor }

// Update applies held movement keys and keeps the ship on screen.
func (p *Player) Update(in input.Source, screenWidth float32) {
	if in.IsPressed(input.Left) {
		p.X -= p.Speed
	}
	if in.IsPressed(input.Right) {
		p.X += p.Speed
	}

	if p.X < 0 {
		p.X = 0
	} else if p.X+p.ScaledWidth() > screenWidth {
		p.X = screenWidth - p.ScaledWidth()
	}
}

// Shoot spawns a bullet at the ship's muzzle. Cooldown is the caller's job.
func (p *Player) Shoot() *Bullet {
	return NewBullet(p.X+config.PlayerMuzzleOffset, p.Y, config.BulletSpeed)
}
