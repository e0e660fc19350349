// cmd/game_raylib/main.go
package main

import (
	"flag"
	"log"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	game "go-space-invaders/internal/app"
	"go-space-invaders/internal/assets"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/system"
)

// rlClock reads raylib's timer, started by InitWindow.
type rlClock struct{}

func (rlClock) Elapsed() time.Duration {
	return time.Duration(rl.GetTime() * float64(time.Second))
}

// rlScreen reports the live window size.
type rlScreen struct{}

func (rlScreen) Size() (float32, float32) {
	return float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
}

// unloader owns GPU resources tied to the window's GL context.
type unloader interface {
	Unload()
}

// teardown frees every resource before closing the window, while the GL
// context is still alive.
func teardown(res []unloader, closeWindow func()) {
	for _, r := range res {
		r.Unload()
	}
	closeWindow()
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

	// --- Инициализация ---
	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, config.WindowTitle+" | raylib")
	rl.SetTargetFPS(config.TPS)

	var canvas *surface
	shutdown := func() {
		var res []unloader
		if canvas != nil {
			res = append(res, canvas)
		}
		teardown(res, rl.CloseWindow)
	}
	fatal := func(err error) {
		shutdown()
		log.Fatal(err)
	}

	canvas, err = newSurface(lib, assets.Names)
	if err != nil {
		fatal(err)
	}

	g, err := game.NewGame(newKeyboard(defaultKeys()), rlClock{}, rlScreen{}, lib, game.Options{
		Seed:       *seed,
		Broadphase: buildIndex,
	})
	if err != nil {
		fatal(err)
	}

	// --- Главный цикл ---
	for !rl.WindowShouldClose() {
		if err := g.Update(); err != nil {
			fatal(err)
		}
		canvas.Begin()
		if err := g.Draw(canvas); err != nil {
			fatal(err)
		}
	}
	shutdown()
}
