// cmd/game/main.go
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	game "go-space-invaders/internal/app"
	"go-space-invaders/internal/assets"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/input"
	"go-space-invaders/internal/render"
	"go-space-invaders/internal/system"
	"go-space-invaders/internal/utils"
)

type AppGame struct {
	game    *game.Game
	surface *render.Surface
	drawErr error // Draw не может вернуть ошибку, отдаём её из следующего Update
}

func (a *AppGame) Update() error {
	if a.drawErr != nil {
		return a.drawErr
	}
	return a.game.Update()
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.surface.Begin(screen)
	if err := a.game.Draw(a.surface); err != nil && a.drawErr == nil {
		a.drawErr = err
	}
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	debug := flag.Bool("debug", false, "log gameplay traces and enable the D/O debug keys")
	seed := flag.Int64("seed", 0, "random seed for wave directions (0 = time based)")
	assetDir := flag.String("assets", "", "directory with player/enemy/background .svg or .png (default: embedded)")
	broadphase := flag.String("broadphase", "list", "bullet/enemy candidate search: list or grid")
	flag.Parse()

	config.Debug = *debug
	buildIndex, ok := system.IndexBuilderByName(*broadphase)
	if !ok {
		log.Fatalf("unknown broadphase %q", *broadphase)
	}

	lib, err := assets.NewLibrary(assets.Open(*assetDir), assets.Names...)
	if err != nil {
		log.Fatal(err)
	}
	surface, err := render.NewSurface(lib, assets.Names, config.ScreenWidth, config.ScreenHeight, config.HUDFontSize)
	if err != nil {
		log.Fatal(err)
	}

	screen := game.FixedScreen{Width: config.ScreenWidth, Height: config.ScreenHeight}
	g, err := game.NewGame(input.NewEbitenSource(input.DefaultKeymap()), utils.NewMonotonicClock(), screen, lib, game.Options{
		Seed:       *seed,
		Broadphase: buildIndex,
	})
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetTPS(config.TPS)
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	if err := ebiten.RunGame(&AppGame{game: g, surface: surface}); err != nil {
		log.Fatal(err)
	}
}
