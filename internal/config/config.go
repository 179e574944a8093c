// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1000
	ScreenHeight = 800
	TPS          = 60
	WindowTitle  = "Bullet Bunny"

	MaxDeltaTime  = 0.05 // seconds; longer stalls are simulated as this step
	PauseCooldown = 0.3  // seconds between pause toggles

	PlayerWidth         = 50.0
	PlayerHeight        = 50.0
	PlayerSpeed         = 300.0
	PlayerOffsetY       = 100.0 // distance from the bottom of the field to the player's top
	PlayerFrameDuration = 0.1

	EnemyWidth         = 120.0
	EnemyHeight        = 80.0
	EnemySpeed         = 100.0
	EnemyFrameDuration = 0.15

	BulletWidth  = 8.0
	BulletHeight = 10.0
	BulletSpeed  = 500.0

	BaseEnemiesPerWave  = 5
	WaveSpeedStep       = 0.1 // additive speed bonus per wave after the first
	EnemySpawnMinY      = -200
	EnemySpawnMaxY      = -50
	DefaultPlayerFrames = 4
	DefaultEnemyFrames  = 6

	PlayerFrameSize = 32 // player sprite sheet cell, pixels
	EnemyFrameW     = 120
	EnemyFrameH     = 80

	TextSizeLarge  = 74
	TextSizeMedium = 50
	TextSizeSmall  = 30

	MenuTitleY        = 100
	MenuButtonWidth   = 340
	MenuButtonHeight  = 50
	MenuStartY        = 250
	MenuInstructionsY = 350
	MenuQuitY         = 450

	HUDMarginX   = 10
	HUDScoreY    = 10
	HUDWaveY     = 50
	HUDHighScore = 90

	SampleRate = 48000
)

var (
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	TextColor       = color.RGBA{255, 255, 255, 255}
	StartColor      = color.RGBA{0, 255, 0, 255}
	QuitColor       = color.RGBA{255, 0, 0, 255}
	BulletColor     = color.RGBA{255, 255, 0, 255}
	GameOverColor   = color.RGBA{255, 0, 0, 255}
	PlayerColor     = color.RGBA{230, 230, 240, 255}
	EnemyColor      = color.RGBA{170, 60, 200, 255}

	Instructions = []string{
		"Use LEFT/RIGHT arrow keys or A/D to move.",
		"Press SPACEBAR to shoot bullets.",
		"Avoid enemies reaching the bottom.",
		"Defeat all enemies to advance waves.",
		"Press ESC to pause the game.",
	}
)
