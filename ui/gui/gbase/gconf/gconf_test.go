package gconf

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewGUIConfig(t *testing.T) {
	tests := []struct {
		name  string
		data  string // empty: no file
		check func(t *testing.T, c *Config)
	}{
		{"missing file gives defaults", "", func(t *testing.T, c *Config) {
			if c.Theme != "light" || !c.Premoves || c.AnimationMs != 250 {
				t.Fatalf("unexpected defaults %+v", c)
			}
		}},
		{"partial yaml keeps defaults", "theme: dark\nopponent: true\n", func(t *testing.T, c *Config) {
			if c.Theme != "dark" || !c.Opponent || !c.Arrows {
				t.Fatalf("got %+v", c)
			}
		}},
		{"json parses too", `{"orientation": "black", "premoves": false}`, func(t *testing.T, c *Config) {
			if c.Orientation != "black" || c.Premoves {
				t.Fatalf("got %+v", c)
			}
		}},
		{"bad values corrected", "theme: neon\nanimation_ms: -5\nwindow_w: 10\n", func(t *testing.T, c *Config) {
			if c.Theme != "light" || c.AnimationMs != 250 || c.WindowW != 1000 {
				t.Fatalf("got %+v", c)
			}
		}},
		{"engine path kept, search time corrected", "engine: /usr/bin/stockfish\nengine_move_ms: 10\n", func(t *testing.T, c *Config) {
			if c.Engine != "/usr/bin/stockfish" || c.EngineMoveTime() != 500*time.Millisecond {
				t.Fatalf("got %+v", c)
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "evilboard.yaml")
			if tt.data != "" {
				if err := os.WriteFile(path, []byte(tt.data), 0644); err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			}
			c, err := NewGUIConfig(path)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.check(t, c)
		})
	}
}

func TestNewGUIConfigBroken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("theme: [unclosed"), 0644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := NewGUIConfig(path); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "evilboard.yaml")
	c, err := NewGUIConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c.Theme = "dark"
	c.SnapArrows = false
	if err := c.Save(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := NewGUIConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Theme != "dark" || got.SnapArrows {
		t.Fatalf("saved config not read back: %+v", got)
	}
	if got.AnimationDuration() != 250*time.Millisecond {
		t.Fatalf("duration %v", got.AnimationDuration())
	}
}
