// internal/app/game.go
package app

import (
	"bullet-bunny/internal/component"
	"bullet-bunny/internal/config"
	"bullet-bunny/internal/entity"
	"bullet-bunny/internal/event"
	"bullet-bunny/internal/system"
	"bullet-bunny/internal/utils"
	"log"
)

// Options configure a new Game.
type Options struct {
	FieldWidth   float64
	FieldHeight  float64
	PlayerFrames int
	EnemyFrames  int
	Seed         int64 // 0 picks a time-based seed
}

// DefaultOptions uses the screen size and placeholder frame counts.
func DefaultOptions() Options {
	return Options{
		FieldWidth:   config.ScreenWidth,
		FieldHeight:  config.ScreenHeight,
		PlayerFrames: config.DefaultPlayerFrames,
		EnemyFrames:  config.DefaultEnemyFrames,
	}
}

// Game holds the world and the systems that advance it.
type Game struct {
	World            *entity.World
	EventDispatcher  *event.Dispatcher
	Rng              *utils.PRNGService
	MovementSystem   *system.MovementSystem
	ProjectileSystem *system.ProjectileSystem
	WaveSystem       *system.WaveSystem
	CollisionSystem  *system.CollisionSystem
}

// NewGame creates a game sitting before its first Reset: no enemies, no
// bullets, wave 1.
func NewGame(opts Options) *Game {
	if opts.FieldWidth <= 0 || opts.FieldHeight <= 0 {
		panic("field size must be positive")
	}

	world := entity.NewWorld(opts.FieldWidth, opts.FieldHeight, opts.PlayerFrames)
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(opts.Seed)

	return &Game{
		World:            world,
		EventDispatcher:  eventDispatcher,
		Rng:              rng,
		MovementSystem:   system.NewMovementSystem(world),
		ProjectileSystem: system.NewProjectileSystem(world, eventDispatcher),
		WaveSystem:       system.NewWaveSystem(world, rng, eventDispatcher, opts.EnemyFrames),
		CollisionSystem:  system.NewCollisionSystem(world, eventDispatcher),
	}
}

// Session returns the live session counters.
func (g *Game) Session() *component.Session {
	return g.World.Session
}

// Reset starts a new session: wave 1, score 0, no bullets, a fresh wave 1
// batch. The player keeps its position and the high score is kept.
func (g *Game) Reset() {
	g.World.Session.Reset()
	g.World.ClearProjectiles()
	g.WaveSystem.StartWave(1)
	log.Printf("new session, high score %d", g.World.Session.HighScore)
}

// Fire spawns one bullet. Ignored once the session is over.
func (g *Game) Fire() {
	if g.World.Session.GameOver {
		return
	}
	g.ProjectileSystem.Fire()
}

// Step advances the simulation by deltaTime seconds. direction is the
// player's horizontal input (-1, 0 or 1).
//
// Bullets leaving the field are pruned before collisions, so a bullet can
// never score in the tick it exits.
func (g *Game) Step(deltaTime, direction float64) {
	if g.World.Session.GameOver {
		return
	}
	g.MovementSystem.UpdatePlayer(deltaTime, direction)
	g.ProjectileSystem.Update(deltaTime)
	g.MovementSystem.UpdateEnemies(deltaTime)
	g.WaveSystem.Update()
	g.CollisionSystem.Update()
}
