// internal/system/spawner.go
package system

import (
	"log"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/utils"
)

// Spawner lays out enemy waves as a grid that scrolls in from above the screen.
type Spawner struct {
	sprite component.SpriteSize
	rng    *utils.PRNGService
}

func NewSpawner(enemySprite component.SpriteSize, rng *utils.PRNGService) *Spawner {
	return &Spawner{sprite: enemySprite, rng: rng}
}

// SpawnEnemies builds columns x rows enemies. The whole wave shares one
// randomly chosen horizontal direction.
func (s *Spawner) SpawnEnemies(screenWidth float32, columns, rows int) []*component.Enemy {
	probe := component.NewEnemy(0, 0, 0, config.EnemyHorizontalSpeed, s.sprite)
	width := probe.ScaledWidth()

	gapX := (screenWidth - width*float32(columns)) / float32(columns+1)
	gapY := float32(config.WaveGapY)

	horizontalSpeed := float32(config.EnemyHorizontalSpeed)
	if !s.rng.Bool() {
		horizontalSpeed = -horizontalSpeed
	}

	enemies := make([]*component.Enemy, 0, columns*rows)
	for col := 0; col < columns; col++ {
		for row := 0; row < rows; row++ {
			x := gapX*float32(col+1) + float32(col)*width
			y := -gapY + float32(row)*gapY
			enemies = append(enemies, component.NewEnemy(x, y, config.EnemySpeed, horizontalSpeed, s.sprite))
		}
	}

	if config.Debug {
		log.Printf("generated %d enemies", len(enemies))
	}
	return enemies
}

// WaveSize returns the grid for a round, capped at 9 columns x 3 rows.
func WaveSize(round int) (columns, rows int) {
	columns = min(config.ColumnsPerRound*round, config.MaxWaveColumns)
	rows = min(round, config.MaxWaveRows)
	return columns, rows
}

// WaveSpeed is the descent speed applied to every enemy of a round's wave.
func WaveSpeed(round int) float32 {
	return config.WaveBaseSpeed + config.WaveSpeedPerRound*float32(round)
}
