// Package render draws the game through ebiten.
package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"go-space-invaders/internal/assets"
	"go-space-invaders/internal/system"
)

var _ system.Surface = (*Surface)(nil)

// Surface implements system.Surface on top of an ebiten screen image.
type Surface struct {
	target   *ebiten.Image
	sprites  map[string]*ebiten.Image
	fontFace font.Face
	ascent   int
	width    float32
	height   float32
}

// NewSurface uploads every sprite of lib and prepares the HUD font.
func NewSurface(lib *assets.Library, names []string, width, height int, fontSize float64) (*Surface, error) {
	sprites := make(map[string]*ebiten.Image, len(names))
	for _, name := range names {
		img, ok := lib.Image(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q not loaded", assets.ErrAssetLoad, name)
		}
		sprites[name] = ebiten.NewImageFromImage(img)
	}

	// Загрузка TTF-шрифта
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("%w: font: %v", assets.ErrAssetLoad, err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: font face: %v", assets.ErrAssetLoad, err)
	}

	return &Surface{
		sprites:  sprites,
		fontFace: face,
		ascent:   face.Metrics().Ascent.Ceil(),
		width:    float32(width),
		height:   float32(height),
	}, nil
}

// Begin points the surface at this frame's screen.
func (s *Surface) Begin(screen *ebiten.Image) {
	s.target = screen
}

func (s *Surface) Size() (float32, float32) {
	return s.width, s.height
}

func (s *Surface) Clear(c color.Color) error {
	if s.target == nil {
		return errNoTarget
	}
	s.target.Fill(c)
	return nil
}

func (s *Surface) DrawSprite(name string, x, y, scaleX, scaleY float32) error {
	if s.target == nil {
		return errNoTarget
	}
	img, ok := s.sprites[name]
	if !ok {
		return fmt.Errorf("%w: unknown sprite %q", system.ErrRenderSubmission, name)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scaleX), float64(scaleY))
	op.GeoM.Translate(float64(x), float64(y))
	s.target.DrawImage(img, op)
	return nil
}

func (s *Surface) DrawRect(x, y, w, h float32, c color.Color) error {
	if s.target == nil {
		return errNoTarget
	}
	vector.DrawFilledRect(s.target, x, y, w, h, c, false)
	return nil
}

// DrawText places the top-left of the text at (x, y).
func (s *Surface) DrawText(str string, x, y float32, c color.Color) error {
	if s.target == nil {
		return errNoTarget
	}
	text.Draw(s.target, str, s.fontFace, int(x), int(y)+s.ascent, c)
	return nil
}

// Present is a no-op: ebiten shows the screen after Draw returns.
func (s *Surface) Present() error {
	if s.target == nil {
		return errNoTarget
	}
	s.target = nil
	return nil
}

var errNoTarget = fmt.Errorf("%w: no frame in progress", system.ErrRenderSubmission)
