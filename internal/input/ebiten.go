package input

import "github.com/hajimehoshi/ebiten/v2"

// Keymap binds each action to one or more keyboard keys.
type Keymap map[Action][]ebiten.Key

// DefaultKeymap mirrors the classic layout: arrows to move, space to fire,
// P to pause and resume, R to restart after game over.
func DefaultKeymap() Keymap {
	return Keymap{
		Left:       {ebiten.KeyArrowLeft},
		Right:      {ebiten.KeyArrowRight},
		Fire:       {ebiten.KeySpace},
		Pause:      {ebiten.KeyP},
		Resume:     {ebiten.KeyP},
		Reset:      {ebiten.KeyR},
		DebugCount: {ebiten.KeyD},
		DebugSpawn: {ebiten.KeyO},
	}
}

// EbitenSource reads the keyboard through ebiten.
type EbitenSource struct {
	keys Keymap
}

func NewEbitenSource(keys Keymap) *EbitenSource {
	return &EbitenSource{keys: keys}
}

func (s *EbitenSource) IsPressed(a Action) bool {
	for _, k := range s.keys[a] {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
