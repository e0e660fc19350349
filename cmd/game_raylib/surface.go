package main

import (
	"fmt"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-space-invaders/internal/assets"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/system"
	"go-space-invaders/pkg/render"
)

var _ system.Surface = (*surface)(nil)

// surface implements system.Surface with raylib textures.
type surface struct {
	textures map[string]rl.Texture2D
	drawing  bool
}

func newSurface(lib *assets.Library, names []string) (*surface, error) {
	s := &surface{textures: make(map[string]rl.Texture2D, len(names))}
	for _, name := range names {
		img, ok := lib.Image(name)
		if !ok {
			s.Unload()
			return nil, fmt.Errorf("%w: %q not loaded", assets.ErrAssetLoad, name)
		}
		tex := rl.LoadTextureFromImage(rl.NewImageFromImage(img))
		if tex.ID == 0 {
			s.Unload()
			return nil, fmt.Errorf("%w: %q: texture upload failed", assets.ErrAssetLoad, name)
		}
		s.textures[name] = tex
	}
	return s, nil
}

func (s *surface) Unload() {
	for name, tex := range s.textures {
		rl.UnloadTexture(tex)
		delete(s.textures, name)
	}
}

func (s *surface) Begin() {
	rl.BeginDrawing()
	s.drawing = true
}

func (s *surface) Size() (float32, float32) {
	return float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
}

func (s *surface) Clear(c color.Color) error {
	if !s.drawing {
		return errNotDrawing
	}
	rl.ClearBackground(toRL(c))
	return nil
}

// DrawSprite matches the ebiten placement: scale around the top-left corner,
// a negative scale mirrors the sprite across that corner.
func (s *surface) DrawSprite(name string, x, y, scaleX, scaleY float32) error {
	if !s.drawing {
		return errNotDrawing
	}
	tex, ok := s.textures[name]
	if !ok {
		return fmt.Errorf("%w: unknown sprite %q", system.ErrRenderSubmission, name)
	}
	w, h := float32(tex.Width), float32(tex.Height)
	src := rl.NewRectangle(0, 0, w, h)
	dst := rl.NewRectangle(x, y, w*scaleX, h*scaleY)
	if scaleX < 0 {
		src.Width = -src.Width
		dst.X += dst.Width
		dst.Width = -dst.Width
	}
	if scaleY < 0 {
		src.Height = -src.Height
		dst.Y += dst.Height
		dst.Height = -dst.Height
	}
	rl.DrawTexturePro(tex, src, dst, rl.NewVector2(0, 0), 0, rl.White)
	return nil
}

func (s *surface) DrawRect(x, y, w, h float32, c color.Color) error {
	if !s.drawing {
		return errNotDrawing
	}
	rl.DrawRectangleV(rl.NewVector2(x, y), rl.NewVector2(w, h), toRL(c))
	return nil
}

func (s *surface) DrawText(str string, x, y float32, c color.Color) error {
	if !s.drawing {
		return errNotDrawing
	}
	rl.DrawText(str, int32(x), int32(y), config.HUDFontSize, toRL(c))
	return nil
}

func (s *surface) Present() error {
	if !s.drawing {
		return errNotDrawing
	}
	rl.EndDrawing()
	s.drawing = false
	return nil
}

var errNotDrawing = fmt.Errorf("%w: BeginDrawing not called", system.ErrRenderSubmission)

// toRL converts any color to raylib's 8-bit color.
func toRL(c color.Color) color.RGBA {
	rgba := render.ToRGBA(c)
	return rl.NewColor(rgba.R, rgba.G, rgba.B, rgba.A)
}
