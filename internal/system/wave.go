// internal/system/wave.go
package system

import (
	"bullet-bunny/internal/component"
	"bullet-bunny/internal/config"
	"bullet-bunny/internal/entity"
	"bullet-bunny/internal/event"
	"bullet-bunny/internal/utils"
	"log"
)

// WaveSystem produces enemy batches and advances the wave counter when the
// field is cleared.
type WaveSystem struct {
	world           *entity.World
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	enemyFrames     int
}

func NewWaveSystem(world *entity.World, rng *utils.PRNGService, eventDispatcher *event.Dispatcher, enemyFrames int) *WaveSystem {
	return &WaveSystem{
		world:           world,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		enemyFrames:     enemyFrames,
	}
}

// EnemyCount is the batch size for wave w.
func EnemyCount(w int) int {
	return config.BaseEnemiesPerWave + w
}

// SpeedMultiplier is 1 for wave 1 and grows by WaveSpeedStep per wave.
func SpeedMultiplier(w int) float64 {
	return 1 + float64(w-1)*config.WaveSpeedStep
}

// Generate builds the batch for wave w without touching the session.
// Only spawn positions differ between calls with the same w.
func (s *WaveSystem) Generate(w int) []*component.Enemy {
	count := EnemyCount(w)
	speed := config.EnemySpeed * SpeedMultiplier(w)
	maxX := int(s.world.FieldWidth - config.EnemyWidth)

	enemies := make([]*component.Enemy, 0, count)
	for i := 0; i < count; i++ {
		enemies = append(enemies, &component.Enemy{
			ID: s.world.NewEntity(),
			Position: component.Position{
				X: float64(s.rng.IntRange(0, maxX)),
				Y: float64(s.rng.IntRange(config.EnemySpawnMinY, config.EnemySpawnMaxY)),
			},
			Velocity: component.Velocity{DY: speed},
			Width:    config.EnemyWidth,
			Height:   config.EnemyHeight,
			Anim:     component.NewAnimation(s.enemyFrames, config.EnemyFrameDuration),
		})
	}
	return enemies
}

// StartWave replaces the active enemies with the batch for wave w.
func (s *WaveSystem) StartWave(w int) {
	s.world.Session.Wave = w
	s.world.ClearEnemies()
	s.world.Enemies = append(s.world.Enemies, s.Generate(w)...)
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: w})
}

// Update starts the next wave once every enemy is gone. The counter is
// bumped first so the wave shown on the HUD is the one used for scaling.
func (s *WaveSystem) Update() {
	if len(s.world.Enemies) > 0 {
		return
	}
	next := s.world.Session.Wave + 1
	log.Printf("wave %d cleared, starting wave %d", s.world.Session.Wave, next)
	s.StartWave(next)
}
