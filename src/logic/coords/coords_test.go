package coords

import (
	"evilboard/src/base"
	"testing"
)

func TestRoundTripBothOrientations(t *testing.T) {
	rect := Rect{X: 40, Y: 25, W: 480, H: 480}
	for _, whiteBottom := range []bool{true, false} {
		for _, sq := range base.AllSquares() {
			p, ok := SquareToBoardPos(sq)
			if !ok {
				t.Fatalf("%v: no board pos", sq)
			}
			x, y := BoardPosToOffset(p, whiteBottom, rect.W, rect.H)
			// sample the middle of the square to stay clear of edges
			got, ok := ScreenToSquare(rect.X+x+rect.W/16, rect.Y+y+rect.H/16, whiteBottom, rect)
			if !ok || got != sq {
				t.Fatalf("whiteBottom=%v: %v -> (%v,%v) -> %v", whiteBottom, sq, x, y, got)
			}
			// top-left corner belongs to the same square
			got, ok = ScreenToSquare(rect.X+x, rect.Y+y, whiteBottom, rect)
			if !ok || got != sq {
				t.Fatalf("corner whiteBottom=%v: %v -> %v", whiteBottom, sq, got)
			}
		}
	}
}

func TestOrientation(t *testing.T) {
	a1, _ := base.ParseSquare("a1")
	p, _ := SquareToBoardPos(a1)
	if x, y := BoardPosToOffset(p, true, 800, 800); x != 0 || y != 700 {
		t.Fatalf("white bottom a1 at (%v,%v)", x, y)
	}
	if x, y := BoardPosToOffset(p, false, 800, 800); x != 700 || y != 0 {
		t.Fatalf("black bottom a1 at (%v,%v)", x, y)
	}
}

func TestOutOfRange(t *testing.T) {
	if _, ok := SquareToBoardPos(base.NoSquare); ok {
		t.Fatalf("NoSquare must not map")
	}
	if _, ok := BoardPosToSquare(BoardPos{File: 8, Rank: 0}); ok {
		t.Fatalf("file 8 must not map")
	}
	if _, ok := BoardPosToSquare(BoardPos{File: 0, Rank: -1}); ok {
		t.Fatalf("rank -1 must not map")
	}
	rect := Rect{X: 0, Y: 0, W: 400, H: 400}
	for _, pt := range [][2]float64{{-1, 10}, {10, -1}, {400, 10}, {10, 400}, {1000, 1000}} {
		if sq, ok := ScreenToSquare(pt[0], pt[1], true, rect); ok {
			t.Fatalf("(%v,%v) should be off-board, got %v", pt[0], pt[1], sq)
		}
	}
}

func TestDeltaToScreen(t *testing.T) {
	// one rank up is one row up on screen with white at the bottom
	dx, dy := DeltaToScreen(Vec{X: 0, Y: 1}, true, 800, 800)
	if dx != 0 || dy != -100 {
		t.Fatalf("got (%v,%v)", dx, dy)
	}
	dx, dy = DeltaToScreen(Vec{X: 2, Y: 1}, false, 800, 800)
	if dx != -200 || dy != 100 {
		t.Fatalf("flipped got (%v,%v)", dx, dy)
	}
}
