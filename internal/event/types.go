// internal/event/types.go
package event

const (
	ShotFired      EventType = "ShotFired"
	EnemyDestroyed EventType = "EnemyDestroyed" // враг сбит пулей
	LifeLost       EventType = "LifeLost"       // враг дошёл до низа экрана
	WaveSpawned    EventType = "WaveSpawned"
	GameOver       EventType = "GameOver"
	Paused         EventType = "Paused"
	Resumed        EventType = "Resumed"
	GameReset      EventType = "GameReset"
)

var AllTypes = []EventType{
	ShotFired, EnemyDestroyed, LifeLost, WaveSpawned, GameOver, Paused, Resumed, GameReset,
}

// WaveInfo is the payload of WaveSpawned.
type WaveInfo struct {
	Round   int
	Columns int
	Rows    int
	Speed   float32
}
