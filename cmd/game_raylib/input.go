package main

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"go-space-invaders/internal/input"
)

func defaultKeys() map[input.Action][]int32 {
	return map[input.Action][]int32{
		input.Left:       {rl.KeyLeft},
		input.Right:      {rl.KeyRight},
		input.Fire:       {rl.KeySpace},
		input.Pause:      {rl.KeyP},
		input.Resume:     {rl.KeyP},
		input.Reset:      {rl.KeyR},
		input.DebugCount: {rl.KeyD},
		input.DebugSpawn: {rl.KeyO},
	}
}

// keyboard is an input.Source over raylib's key state.
type keyboard struct {
	keys map[input.Action][]int32
}

func newKeyboard(keys map[input.Action][]int32) *keyboard {
	return &keyboard{keys: keys}
}

func (k *keyboard) IsPressed(a input.Action) bool {
	for _, key := range k.keys[a] {
		if rl.IsKeyDown(key) {
			return true
		}
	}
	return false
}
