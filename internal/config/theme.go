package config

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// ThemeFile is the sprite theme file name inside the image directory.
const ThemeFile = "sprites.yaml"

// GlyphWidth is the number of terminal columns one maze cell takes.
const GlyphWidth = 2

// Theme maps maze cells to two-column glyphs.
type Theme struct {
	Empty       string `yaml:"empty"`
	Wall        string `yaml:"wall"`
	Pellet      string `yaml:"pellet"`
	Power       string `yaml:"power"`
	PlayerUp    string `yaml:"player_up"`
	PlayerDown  string `yaml:"player_down"`
	PlayerLeft  string `yaml:"player_left"`
	PlayerRight string `yaml:"player_right"`
	EnemyLeft   string `yaml:"enemy_left"`  // drawn before the enemy letter
	EnemyRight  string `yaml:"enemy_right"` // drawn after the enemy letter
	Heart       string `yaml:"heart"`
}

// DefaultTheme returns the built-in sprites.
func DefaultTheme() Theme {
	return Theme{
		Empty:       "  ",
		Wall:        "██",
		Pellet:      " ·",
		Power:       " ●",
		PlayerUp:    "\\/",
		PlayerDown:  "/\\",
		PlayerLeft:  " >",
		PlayerRight: "< ",
		EnemyLeft:   "‹",
		EnemyRight:  "›",
		Heart:       "♥",
	}
}

// Validate checks that every cell glyph fills exactly one maze cell.
func (t Theme) Validate() error {
	cells := map[string]string{
		"empty":        t.Empty,
		"wall":         t.Wall,
		"pellet":       t.Pellet,
		"power":        t.Power,
		"player_up":    t.PlayerUp,
		"player_down":  t.PlayerDown,
		"player_left":  t.PlayerLeft,
		"player_right": t.PlayerRight,
	}
	for name, glyph := range cells {
		if n := utf8.RuneCountInString(glyph); n != GlyphWidth {
			return fmt.Errorf("sprite %s must be %d characters, got %d", name, GlyphWidth, n)
		}
	}
	markers := map[string]string{
		"enemy_left":  t.EnemyLeft,
		"enemy_right": t.EnemyRight,
		"heart":       t.Heart,
	}
	for name, glyph := range markers {
		if n := utf8.RuneCountInString(glyph); n != 1 {
			return fmt.Errorf("sprite %s must be 1 character, got %d", name, n)
		}
	}
	return nil
}

// LoadTheme reads <imgDir>/sprites.yaml. Keys the file leaves out keep their
// built-in glyphs. On any error the built-in theme is returned with the error
// so the caller can warn and carry on.
func LoadTheme(imgDir string) (Theme, error) {
	path := filepath.Join(imgDir, ThemeFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultTheme(), fmt.Errorf("failed to read theme %s: %w", path, err)
	}

	theme := DefaultTheme()
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return DefaultTheme(), fmt.Errorf("failed to parse theme %s: %w", path, err)
	}
	if err := theme.Validate(); err != nil {
		return DefaultTheme(), fmt.Errorf("invalid theme %s: %w", path, err)
	}
	return theme, nil
}
