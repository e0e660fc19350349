package assets

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"log"
	"os"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"go-space-invaders/internal/component"
	"go-space-invaders/internal/config"
)

// ErrAssetLoad is wrapped by every sprite resolution failure.
var ErrAssetLoad = errors.New("asset load failure")

//go:embed sprites/*.svg
var embedded embed.FS

// Embedded returns the sprites compiled into the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "sprites")
	if err != nil {
		panic(err) // embed pattern above guarantees the directory
	}
	return sub
}

// Names lists the sprites a game needs.
var Names = []string{config.SpritePlayer, config.SpriteEnemy, config.SpriteBackground}

// Library хранит растеризованные спрайты, загруженные один раз при старте.
type Library struct {
	images map[string]*image.RGBA
}

// NewLibrary loads every name from fsys, trying <name>.svg and then <name>.png.
func NewLibrary(fsys fs.FS, names ...string) (*Library, error) {
	l := &Library{images: make(map[string]*image.RGBA, len(names))}
	for _, name := range names {
		img, err := load(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrAssetLoad, name, err)
		}
		l.images[name] = img
		log.Printf("loaded sprite %s (%dx%d)", name, img.Bounds().Dx(), img.Bounds().Dy())
	}
	return l, nil
}

// Image returns the decoded sprite pixels.
func (l *Library) Image(name string) (*image.RGBA, bool) {
	img, ok := l.images[name]
	return img, ok
}

// Sprite returns the native size of a loaded sprite.
func (l *Library) Sprite(name string) (component.SpriteSize, error) {
	img, ok := l.images[name]
	if !ok {
		return component.SpriteSize{}, fmt.Errorf("%w: %q not loaded", ErrAssetLoad, name)
	}
	b := img.Bounds()
	return component.SpriteSize{W: float32(b.Dx()), H: float32(b.Dy())}, nil
}

func load(fsys fs.FS, name string) (*image.RGBA, error) {
	if data, err := fs.ReadFile(fsys, name+".svg"); err == nil {
		return rasterizeSVG(data)
	}
	data, err := fs.ReadFile(fsys, name+".png")
	if err != nil {
		return nil, fmt.Errorf("neither %s.svg nor %s.png found", name, name)
	}
	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return toRGBA(decoded), nil
}

// rasterizeSVG renders the icon at its viewBox size.
func rasterizeSVG(data []byte) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	w, h := int(icon.ViewBox.W), int(icon.ViewBox.H)
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("svg has empty viewBox %vx%v", icon.ViewBox.W, icon.ViewBox.H)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1.0)
	return img, nil
}

func toRGBA(src image.Image) *image.RGBA {
	if rgba, ok := src.(*image.RGBA); ok {
		return rgba
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			dst.Set(x, y, src.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return dst
}

// Open returns dir as a filesystem, or the embedded sprites when dir is empty.
func Open(dir string) fs.FS {
	if dir == "" {
		return Embedded()
	}
	return os.DirFS(dir)
}
