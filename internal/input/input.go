// internal/input/input.go
package input

//go:generate go tool mockgen -destination=./mocks/source_mock.go -package=mocks . Source

// Action is a logical key the game core asks about.
type Action int

const (
	Left Action = iota
	Right
	Fire
	Pause
	Resume
	Reset
	DebugCount // prints the enemy count
	DebugSpawn // forces a debug wave
	actionCount
)

var actionNames = [...]string{
	Left:       "left",
	Right:      "right",
	Fire:       "fire",
	Pause:      "pause",
	Resume:     "resume",
	Reset:      "reset",
	DebugCount: "debug-count",
	DebugSpawn: "debug-spawn",
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// Source answers "is this key currently held".
type Source interface {
	IsPressed(a Action) bool
}

// Tracker remembers the previous frame so toggles fire once per key press.
type Tracker struct {
	prev [actionCount]bool
	cur  [actionCount]bool
}

// Poll samples every action from src. Call once per tick.
func (t *Tracker) Poll(src Source) {
	t.prev = t.cur
	for a := Action(0); a < actionCount; a++ {
		t.cur[a] = src.IsPressed(a)
	}
}

// Held reports the level state sampled by the last Poll.
func (t *Tracker) Held(a Action) bool {
	return t.cur[a]
}

// JustPressed reports a released -> pressed edge between the last two polls.
func (t *Tracker) JustPressed(a Action) bool {
	return t.cur[a] && !t.prev[a]
}

// IsPressed lets a Tracker act as a Source for components that read held keys.
func (t *Tracker) IsPressed(a Action) bool {
	return t.Held(a)
}
