// internal/app/game.go
package app

import (
	"fmt"
	"log"
	"time"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/input"
	"go-space-invaders/internal/system"
	"go-space-invaders/internal/ui"
	"go-space-invaders/internal/utils"
	"go-space-invaders/pkg/render"
)

// Options tune a new game.
type Options struct {
	Seed       int64               // 0 = time based
	Broadphase system.IndexBuilder // nil = naive list scan
}

// Game holds the main game state and logic. It owns every entity and counter
// and is only touched from the frame loop.
type Game struct {
	Player  *component.Player
	Bullets []*component.Bullet
	Enemies []*component.Enemy

	Round int
	Score int
	Lives int
	Mode  Mode

	Spawner         *system.Spawner
	RenderSystem    *system.RenderSystem
	HUD             *ui.HUD
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	input      input.Source
	keys       input.Tracker
	clock      Clock
	screen     Screen
	sprites    SpriteSource
	buildIndex system.IndexBuilder
	lastShot   time.Duration
}

// NewGame initializes a new game instance. Sprite sizes are resolved here, so
// an unknown sprite fails at startup rather than mid-frame.
func NewGame(in input.Source, clock Clock, screen Screen, sprites SpriteSource, opts Options) (*Game, error) {
	enemySprite, err := sprites.Sprite(config.SpriteEnemy)
	if err != nil {
		return nil, fmt.Errorf("enemy sprite: %w", err)
	}

	rng := utils.NewPRNGService(opts.Seed)
	buildIndex := opts.Broadphase
	if buildIndex == nil {
		buildIndex = system.NewListIndex
	}

	g := &Game{
		Spawner:         system.NewSpawner(enemySprite, rng),
		RenderSystem:    system.NewRenderSystem(),
		HUD:             ui.NewHUD(render.NewHUDColors(config.TextColor)),
		EventDispatcher: event.NewDispatcher(),
		Rng:             rng,
		input:           in,
		clock:           clock,
		screen:          screen,
		sprites:         sprites,
		buildIndex:      buildIndex,
	}
	g.EventDispatcher.SubscribeAll(&GameEventListener{game: g})

	if err := g.restart(); err != nil {
		return nil, err
	}
	g.lastShot = clock.Elapsed()
	return g, nil
}

// Reset fully reinitializes the game: fresh centered player, no entities,
// round 0, score 0, 3 lives, Playing.
func (g *Game) Reset() error {
	if err := g.restart(); err != nil {
		return err
	}
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameReset})
	return nil
}

func (g *Game) restart() error {
	playerSprite, err := g.sprites.Sprite(config.SpritePlayer)
	if err != nil {
		return fmt.Errorf("player sprite: %w", err)
	}
	w, h := g.screen.Size()
	g.Player = component.NewCenteredPlayer(w, h, playerSprite)
	g.Bullets = nil
	g.Enemies = nil
	g.Round = 0
	g.Score = 0
	g.Lives = config.StartLives
	g.Mode = Playing
	return nil
}

// Update advances the game by one tick. All mode transitions happen here.
func (g *Game) Update() error {
	g.keys.Poll(g.input)

	if config.Debug {
		g.handleDebugKeys()
	}

	switch g.Mode {
	case Playing:
		g.updatePlaying()
	case Paused:
		if g.keys.JustPressed(input.Resume) {
			g.setMode(Playing)
		}
	case GameOver:
		if g.keys.JustPressed(input.Reset) {
			return g.Reset()
		}
	}
	return nil
}

func (g *Game) updatePlaying() {
	// пауза вступает в силу со следующего тика, этот доигрывается целиком
	if g.keys.JustPressed(input.Pause) {
		g.setMode(Paused)
	}

	screenWidth, screenHeight := g.screen.Size()

	g.Player.Update(&g.keys, screenWidth)

	now := g.clock.Elapsed()
	if g.keys.Held(input.Fire) && now-g.lastShot > config.ShotCooldown {
		g.Bullets = append(g.Bullets, g.Player.Shoot())
		g.lastShot = now
		g.EventDispatcher.Dispatch(event.Event{Type: event.ShotFired})
	}

	g.updateBullets()
	g.updateEnemies(screenWidth, screenHeight)
	g.prune()

	if g.Mode == GameOver {
		return
	}
	if len(g.Enemies) == 0 {
		g.nextWave(screenWidth)
	}
}

// updateBullets moves bullets and resolves hits. A bullet is credited to at
// most one enemy, the first live one in list order.
func (g *Game) updateBullets() {
	index := g.buildIndex(g.Enemies)
	for _, b := range g.Bullets {
		if !b.IsActive {
			continue
		}
		b.Update()

		for _, i := range index.Candidates(b.Bounds()) {
			e := g.Enemies[i]
			if e.IsDead || !b.CollidesWith(e) {
				continue
			}
			b.IsActive = false
			e.IsDead = true
			g.Score += config.ScorePerKill
			g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: e})
			break
		}
	}
}

func (g *Game) updateEnemies(screenWidth, screenHeight float32) {
	for _, e := range g.Enemies {
		if e.IsDead {
			continue
		}
		if e.Y >= screenHeight {
			e.IsDead = true
			// после Game Over жизни больше не списываются
			if g.Mode != GameOver {
				g.Lives--
				g.EventDispatcher.Dispatch(event.Event{Type: event.LifeLost, Data: g.Lives})
				if g.Lives < 1 {
					g.setMode(GameOver)
				}
			}
			continue
		}
		e.Update(screenWidth)
	}
}

func (g *Game) prune() {
	bullets := g.Bullets[:0]
	for _, b := range g.Bullets {
		if b.IsActive {
			bullets = append(bullets, b)
		}
	}
	clear(g.Bullets[len(bullets):])
	g.Bullets = bullets

	enemies := g.Enemies[:0]
	for _, e := range g.Enemies {
		if !e.IsDead {
			enemies = append(enemies, e)
		}
	}
	clear(g.Enemies[len(enemies):])
	g.Enemies = enemies
}

func (g *Game) nextWave(screenWidth float32) {
	g.Round++
	g.Lives = config.StartLives
	g.Bullets = nil

	columns, rows := system.WaveSize(g.Round)
	speed := system.WaveSpeed(g.Round)
	g.Enemies = g.Spawner.SpawnEnemies(screenWidth, columns, rows)
	for _, e := range g.Enemies {
		e.Speed = speed
	}

	g.EventDispatcher.Dispatch(event.Event{Type: event.WaveSpawned, Data: event.WaveInfo{
		Round:   g.Round,
		Columns: columns,
		Rows:    rows,
		Speed:   speed,
	}})
}

func (g *Game) handleDebugKeys() {
	if g.keys.JustPressed(input.DebugCount) {
		log.Printf("enemies on field: %d", len(g.Enemies))
	}
	if g.keys.JustPressed(input.DebugSpawn) {
		w, _ := g.screen.Size()
		g.Enemies = g.Spawner.SpawnEnemies(w, config.DebugWaveColumns, config.DebugWaveRows)
	}
}

func (g *Game) setMode(m Mode) {
	if g.Mode == m {
		return
	}
	g.Mode = m
	switch m {
	case Paused:
		g.EventDispatcher.Dispatch(event.Event{Type: event.Paused})
	case Playing:
		g.EventDispatcher.Dispatch(event.Event{Type: event.Resumed})
	case GameOver:
		g.EventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: g.Score})
	}
}

// Scene exposes the playfield for rendering.
func (g *Game) Scene() system.Scene {
	return system.Scene{Player: g.Player, Bullets: g.Bullets, Enemies: g.Enemies}
}

// Draw is a pure read of the current state; the overlay depends on the mode.
func (g *Game) Draw(surface system.Surface) error {
	var err error
	switch g.Mode {
	case Playing:
		if err = g.RenderSystem.Draw(surface, g.Scene()); err == nil {
			err = g.HUD.DrawStats(surface, g.Score, g.Round, g.Lives)
		}
	case Paused:
		if err = surface.Clear(config.OverlayColor); err == nil {
			err = g.HUD.DrawPaused(surface)
		}
	case GameOver:
		if err = surface.Clear(config.OverlayColor); err == nil {
			err = g.HUD.DrawGameOver(surface, g.Score)
		}
	}
	if err != nil {
		return err
	}
	return surface.Present()
}
