// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	TPS          = 60 // тиков логики в секунду
	WindowTitle  = "Space Invaders"

	ShotCooldown = 300 * time.Millisecond

	BulletWidth  = 5.0
	BulletHeight = 10.0
	BulletSpeed  = 5.0 // pixels per frame, upwards

	PlayerSpeed        = 15.0
	PlayerScale        = 0.1
	PlayerWidth        = 50.0 // used only to center a new player
	PlayerHeight       = 50.0
	PlayerBottomMargin = 50.0
	PlayerMuzzleOffset = 22.0 // centers the bullet on the ship sprite

	EnemyScale           = 0.08
	EnemySpeed           = 1.5 // default descent, overridden per wave
	EnemyHorizontalSpeed = 2.0
	EnemyDrawOffsetY     = 35.0
	WaveGapY             = 50.0

	StartLives   = 3
	ScorePerKill = 10

	MaxWaveColumns     = 9
	MaxWaveRows        = 3
	ColumnsPerRound    = 3
	WaveBaseSpeed      = 0.2
	WaveSpeedPerRound  = 0.1
	DebugWaveColumns   = 6
	DebugWaveRows      = 2
	GridCellSize       = 64.0
	HUDMarginX         = 10
	HUDLineY           = 10
	HUDLineHeight      = 20
	HUDFontSize        = 16
	GameOverScoreShift = 50
)

// Sprite names understood by the asset library.
const (
	SpritePlayer     = "player"
	SpriteEnemy      = "enemy"
	SpriteBackground = "background"
)

// Debug enables gameplay traces and the debug keys. Set from -debug.
var Debug = false

var (
	BackgroundColor = color.RGBA{255, 255, 255, 255}
	BulletColor     = color.RGBA{255, 0, 0, 255}
	TextColor       = color.RGBA{255, 255, 255, 255}
	OverlayColor    = color.RGBA{0, 0, 0, 255}
)
