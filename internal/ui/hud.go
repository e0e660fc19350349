// internal/ui/hud.go
package ui

import (
	"fmt"

	"go-space-invaders/internal/config"
	"go-space-invaders/internal/system"
	"go-space-invaders/pkg/render"
)

const shadowOffset = 1

// HUD рисует текстовые оверлеи поверх игрового поля.
type HUD struct {
	colors render.HUDColors
}

func NewHUD(colors render.HUDColors) *HUD {
	return &HUD{colors: colors}
}

// DrawStats shows score, round and lives in the top-left corner.
func (h *HUD) DrawStats(s system.Surface, score, round, lives int) error {
	lines := []string{
		fmt.Sprintf("Score: %d", score),
		fmt.Sprintf("Round: %d", round),
		fmt.Sprintf("Lives: %d", lives),
	}
	for i, line := range lines {
		y := float32(config.HUDLineY + i*config.HUDLineHeight)
		if err := h.text(s, line, config.HUDMarginX, y); err != nil {
			return err
		}
	}
	return nil
}

func (h *HUD) DrawPaused(s system.Surface) error {
	w, ht := s.Size()
	return h.text(s, "PAUSED", w/2, ht/2)
}

// DrawGameOver shows the banner with the final score under it.
func (h *HUD) DrawGameOver(s system.Surface, score int) error {
	w, ht := s.Size()
	if err := h.text(s, "GAME OVER", w/2, ht/2); err != nil {
		return err
	}
	return h.text(s, fmt.Sprintf("Score: %d", score), w/2, ht/2+config.GameOverScoreShift)
}

func (h *HUD) text(s system.Surface, str string, x, y float32) error {
	if err := s.DrawText(str, x+shadowOffset, y+shadowOffset, h.colors.Shadow); err != nil {
		return err
	}
	return s.DrawText(str, x, y, h.colors.Text)
}
