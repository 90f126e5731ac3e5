package gconf

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const DefaultFile = "evilboard.yaml"

type Config struct {
	Theme          string `yaml:"theme"`           // light/dark
	Lang           string `yaml:"language"`        // en/ru
	Orientation    string `yaml:"orientation"`     // white/black, also the side you play
	ShowAnimations bool   `yaml:"show_animations"` //
	AnimationMs    int    `yaml:"animation_ms"`    // >= 50 to animate
	Arrows         bool   `yaml:"arrows"`          // right button drawing
	SnapArrows     bool   `yaml:"snap_arrows"`     //
	Premoves       bool   `yaml:"premoves"`        //
	Dragging       bool   `yaml:"dragging"`        //
	Opponent       bool   `yaml:"opponent"`        // replies for the other side
	Engine         string `yaml:"engine"`          // UCI engine binary, empty for random replies
	EngineMoveMs   int    `yaml:"engine_move_ms"`  // search time per reply
	WindowW        int    `yaml:"window_w"`        //
	WindowH        int    `yaml:"window_h"`        //
	Debug          bool   `yaml:"debug"`           // TPS overlay

	path string
}

func defaultConfig() Config {
	return Config{
		Theme:          "light",
		Lang:           "en",
		Orientation:    "white",
		ShowAnimations: true,
		AnimationMs:    250,
		Arrows:         true,
		SnapArrows:     true,
		Premoves:       true,
		Dragging:       true,
		Opponent:       false,
		Engine:         "",
		EngineMoveMs:   500,
		WindowW:        1000,
		WindowH:        760,
		Debug:          false,
	}
}

// NewGUIConfig reads path (YAML, JSON also parses). A missing file yields the
// defaults; fields absent from the file keep their default values.
func NewGUIConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultFile
	}
	c := defaultConfig()
	c.path = path

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &c, nil
	} else if err != nil {
		return nil, fmt.Errorf("error read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("error decode config: %w", err)
	}
	correctableConfig(&c)
	return &c, nil
}

func (c *Config) Save() error {
	path := c.path
	if path == "" {
		path = DefaultFile
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("error encode config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) AnimationDuration() time.Duration {
	return time.Duration(c.AnimationMs) * time.Millisecond
}

func (c *Config) EngineMoveTime() time.Duration {
	return time.Duration(c.EngineMoveMs) * time.Millisecond
}

func correctableConfig(c *Config) {
	def := defaultConfig()
	if c.Theme != "light" && c.Theme != "dark" {
		c.Theme = def.Theme
	}
	if c.Lang != "en" && c.Lang != "ru" {
		c.Lang = def.Lang
	}
	if c.Orientation != "white" && c.Orientation != "black" && c.Orientation != "both" {
		c.Orientation = def.Orientation
	}
	if c.AnimationMs < 0 || c.AnimationMs > 2000 {
		c.AnimationMs = def.AnimationMs
	}
	if c.EngineMoveMs < 50 || c.EngineMoveMs > 30000 {
		c.EngineMoveMs = def.EngineMoveMs
	}
	if c.WindowH < def.WindowH || c.WindowW < def.WindowW {
		c.WindowH = def.WindowH
		c.WindowW = def.WindowW
	}
}
