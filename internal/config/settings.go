package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
)

// SettingsFile is looked up in the working directory.
const SettingsFile = "settings.toml"

// Settings are the values a player may override without rebuilding.
type Settings struct {
	HighScorePath   string  `toml:"high_score_path"`
	PlayerSheetPath string  `toml:"player_sheet"`
	EnemySheetPath  string  `toml:"enemy_sheet"`
	FontPath        string  `toml:"font"`
	Volume          float64 `toml:"volume"`
	Mute            bool    `toml:"mute"`
	Seed            int64   `toml:"seed"`
	WindowScale     float64 `toml:"window_scale"`
}

// DefaultSettings mirrors the asset layout the game ships with.
func DefaultSettings() Settings {
	return Settings{
		HighScorePath:   "Data/high_score.txt",
		PlayerSheetPath: "Assets/Images/BunnyWalk-Sheet.png",
		EnemySheetPath:  "Assets/Images/_AttackCombo.png",
		Volume:          0.5,
		WindowScale:     1.0,
	}
}

// LoadSettings decodes path on top of DefaultSettings. A missing file is not
// an error. On any other error the defaults are returned with the error.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if _, err := toml.DecodeFile(path, &s); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultSettings(), nil
		}
		return DefaultSettings(), fmt.Errorf("failed to decode settings %s: %w", path, err)
	}
	s.sanitize()
	return s, nil
}

func (s *Settings) sanitize() {
	def := DefaultSettings()
	if s.HighScorePath == "" {
		s.HighScorePath = def.HighScorePath
	}
	if s.Volume < 0 {
		s.Volume = 0
	}
	if s.Volume > 1 {
		s.Volume = 1
	}
	if s.WindowScale <= 0 {
		s.WindowScale = def.WindowScale
	}
}
