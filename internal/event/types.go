// internal/event/types.go
package event

const (
	BulletFired     EventType = "BulletFired"     // Data: types.EntityID of the bullet
	EnemyDestroyed  EventType = "EnemyDestroyed"  // Data: types.EntityID of the enemy
	WaveStarted     EventType = "WaveStarted"     // Data: wave number
	GameOver        EventType = "GameOver"        // Data: final score
	HighScoreBeaten EventType = "HighScoreBeaten" // Data: new high score
	PauseToggled    EventType = "PauseToggled"    // Data: true when entering pause
)
