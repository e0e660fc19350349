package app

import (
	"log"

	"go-space-invaders/internal/config"
	"go-space-invaders/internal/event"
)

// GameEventListener пишет игровые события в лог в режиме отладки.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	if !config.Debug {
		return
	}
	switch e.Type {
	case event.WaveSpawned:
		info := e.Data.(event.WaveInfo)
		log.Printf("enemies down, round %d: new grid %d columns x %d rows, speed %.1f", info.Round, info.Columns, info.Rows, info.Speed)
	case event.LifeLost:
		log.Printf("enemy reached the bottom, lives left: %d", e.Data)
	case event.GameOver:
		log.Printf("game over, score %d", e.Data)
	case event.EnemyDestroyed:
		log.Printf("enemy destroyed, score %d", l.game.Score)
	default:
		log.Printf("event %s", e.Type)
	}
}
