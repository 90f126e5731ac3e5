package cli

import (
	"bytes"
	"evilboard/src"
	"evilboard/src/base"
	"evilboard/src/board"
	"strings"
	"testing"
)

func newTestCLI() (*CLIProcessing, *bytes.Buffer) {
	ctrl := board.NewController(board.DefaultConfig(), nil, nil)
	s := src.NewSession(src.NewBuilderBoard(nil), ctrl, nil)
	out := &bytes.Buffer{}
	c := NewCLI(s, PrintBoard)
	c.out = out
	return c, out
}

func sq(s string) base.Square {
	v, _ := base.ParseSquare(s)
	return v
}

func TestHandleLine(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		quit  bool
		check func(t *testing.T, c *CLIProcessing, out string)
	}{
		{"move by squares", []string{"e2", "e4"}, false, func(t *testing.T, c *CLIProcessing, out string) {
			if got := c.session.Builder.UCIMoves(); len(got) != 1 || got[0] != "e2e4" {
				t.Fatalf("moves %v", got)
			}
		}},
		{"move in one line", []string{"g1f3"}, false, func(t *testing.T, c *CLIProcessing, out string) {
			if _, ok := c.session.Board.Inputs().Position.At(sq("f3")); !ok {
				t.Fatalf("knight must stand on f3")
			}
		}},
		{"arrow and mark", []string{"a e2 e4", "m d5"}, false, func(t *testing.T, c *CLIProcessing, out string) {
			s := c.session.Board.Snapshot()
			if len(s.Arrows) != 1 || len(s.Marks) != 1 {
				t.Fatalf("overlays %v %v", s.Arrows, s.Marks)
			}
			if !strings.Contains(out, "e2→e4(green)") {
				t.Fatalf("arrow not printed")
			}
		}},
		{"unknown", []string{"zz9"}, false, func(t *testing.T, c *CLIProcessing, out string) {
			if !strings.Contains(out, "Unknown command: zz9") {
				t.Fatalf("missing error in %q", out)
			}
		}},
		{"quit", []string{"quit"}, true, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, out := newTestCLI()
			quit := false
			for _, l := range tt.lines {
				quit = c.HandleLine(l)
			}
			if quit != tt.quit {
				t.Fatalf("quit=%v want %v", quit, tt.quit)
			}
			if tt.check != nil {
				tt.check(t, c, out.String())
			}
		})
	}
}

func TestPromotionByLetter(t *testing.T) {
	c, out := newTestCLI()
	if err := c.session.Load("8/4P3/8/8/8/8/8/8"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c.HandleLine("e7e8")
	if c.session.Board.PendingPromotion() == nil {
		t.Fatalf("promotion must wait for a letter")
	}
	if !strings.Contains(out.String(), "Promote e7e8") {
		t.Fatalf("prompt not shown")
	}
	if c.HandleLine("q") {
		t.Fatalf("q resolves a pending promotion instead of quitting")
	}
	pc, _ := c.session.Board.Inputs().Position.At(sq("e8"))
	if pc != (base.Piece{Color: base.White, Role: base.Queen}) {
		t.Fatalf("got %v on e8", pc)
	}
}

func TestPrintBoardFlipped(t *testing.T) {
	var buf bytes.Buffer
	PrintBoard(&buf, View{Position: base.Position{}, Snapshot: board.Snapshot{WhiteBottom: false, Selected: base.NoSquare, Check: base.NoSquare}})
	if !strings.HasPrefix(strings.TrimLeft(buf.String(), "\r\n"), "   h  g") {
		t.Fatalf("flipped board must start with file h: %q", buf.String()[:20])
	}
}
