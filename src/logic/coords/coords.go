// Package coords maps squares to board coordinates and screen pixels.
package coords

import "evilboard/src/base"

// BoardPos is an abstract (file, rank) pair, a1 = (0,0)
type BoardPos struct {
	File int
	Rank int
}

// Vec is a fractional board-space vector used by animations
type Vec struct {
	X float64 // files
	Y float64 // ranks
}

func (v Vec) Sub(o Vec) Vec       { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Scale(k float64) Vec { return Vec{v.X * k, v.Y * k} }

func (p BoardPos) Vec() Vec {
	return Vec{X: float64(p.File), Y: float64(p.Rank)}
}

// Rect is a bounding rectangle in screen pixels
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && y >= r.Y && x < r.X+r.W && y < r.Y+r.H
}

func SquareToBoardPos(sq base.Square) (BoardPos, bool) {
	if !sq.IsValid() {
		return BoardPos{}, false
	}
	return BoardPos{File: sq.File(), Rank: sq.Rank()}, true
}

func BoardPosToSquare(p BoardPos) (base.Square, bool) {
	return base.NewSquare(p.File, p.Rank)
}

// BoardPosToOffset returns the top-left pixel of the square relative to the board
// origin. With white at the bottom rank 7 is the top row; flipping mirrors both axes.
func BoardPosToOffset(p BoardPos, whiteBottom bool, width, height float64) (x, y float64) {
	col, row := p.File, 7-p.Rank
	if !whiteBottom {
		col, row = 7-col, 7-row
	}
	return float64(col) * width / 8, float64(row) * height / 8
}

// ScreenToSquare returns ok=false for positions outside rect, never a clamped square
func ScreenToSquare(x, y float64, whiteBottom bool, rect Rect) (base.Square, bool) {
	if rect.W <= 0 || rect.H <= 0 || !rect.Contains(x, y) {
		return base.NoSquare, false
	}
	col := int((x - rect.X) * 8 / rect.W)
	row := int((y - rect.Y) * 8 / rect.H)
	if col > 7 {
		col = 7
	}
	if row > 7 {
		row = 7
	}
	file, rank := col, 7-row
	if !whiteBottom {
		file, rank = 7-col, row
	}
	return base.NewSquare(file, rank)
}

// SquareCenter in absolute screen pixels
func SquareCenter(sq base.Square, whiteBottom bool, rect Rect) (x, y float64, ok bool) {
	p, ok := SquareToBoardPos(sq)
	if !ok {
		return 0, 0, false
	}
	ox, oy := BoardPosToOffset(p, whiteBottom, rect.W, rect.H)
	return rect.X + ox + rect.W/16, rect.Y + oy + rect.H/16, true
}

// DeltaToScreen converts a board-space vector to a pixel displacement
func DeltaToScreen(v Vec, whiteBottom bool, width, height float64) (dx, dy float64) {
	dx, dy = v.X*width/8, -v.Y*height/8
	if !whiteBottom {
		dx, dy = -dx, -dy
	}
	return dx, dy
}
