package app

// Mode — режим игры. Переходы между режимами происходят только в Game.Update.
type Mode int

const (
	Playing Mode = iota
	Paused
	GameOver
)

func (m Mode) String() string {
	switch m {
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	case GameOver:
		return "GameOver"
	}
	return "Unknown"
}
