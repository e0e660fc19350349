// internal/system/render.go
package system

import (
	"errors"
	"image/color"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
)

// ErrRenderSubmission is returned (wrapped) when a surface rejects a draw call.
var ErrRenderSubmission = errors.New("render submission failed")

// Surface is the draw target a frontend provides.
type Surface interface {
	Size() (width, height float32)
	Clear(c color.Color) error
	DrawSprite(name string, x, y, scaleX, scaleY float32) error
	DrawRect(x, y, w, h float32, c color.Color) error
	DrawText(s string, x, y float32, c color.Color) error
	Present() error
}

// Scene is the read-only view of the playfield handed to the renderer.
type Scene struct {
	Player  *component.Player
	Bullets []*component.Bullet
	Enemies []*component.Enemy
}

// RenderSystem рисует сущности
type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

// Draw paints the background, bullets, enemies and the player ship.
func (s *RenderSystem) Draw(surface Surface, scene Scene) error {
	if err := surface.Clear(config.BackgroundColor); err != nil {
		return err
	}
	if err := surface.DrawSprite(config.SpriteBackground, 0, 0, 1, 1); err != nil {
		return err
	}

	for _, b := range scene.Bullets {
		if !b.IsActive {
			continue
		}
		if err := surface.DrawRect(b.X, b.Y, b.Width, b.Height, config.BulletColor); err != nil {
			return err
		}
	}

	for _, e := range scene.Enemies {
		x, y, sx, sy := e.DrawPlacement()
		if err := surface.DrawSprite(config.SpriteEnemy, x, y, sx, sy); err != nil {
			return err
		}
	}

	if p := scene.Player; p != nil {
		if err := surface.DrawSprite(config.SpritePlayer, p.X, p.Y, p.ScaleFactor, p.ScaleFactor); err != nil {
			return err
		}
	}
	return nil
}
