package snap

import (
	"evilboard/src/base"
	"evilboard/src/logic/coords"
)

// Reachable lists squares a queen or a knight could reach from origin on an empty board
func Reachable(origin base.Square) []base.Square {
	if !origin.IsValid() {
		return nil
	}
	var out []base.Square
	for _, sq := range base.AllSquares() {
		if sq == origin {
			continue
		}
		df := abs(sq.File() - origin.File())
		dr := abs(sq.Rank() - origin.Rank())
		if df == 0 || dr == 0 || df == dr || (df == 1 && dr == 2) || (df == 2 && dr == 1) {
			out = append(out, sq)
		}
	}
	return out
}

// Target picks the reachable square whose centre is closest to the pointer
func Target(origin base.Square, x, y float64, whiteBottom bool, rect coords.Rect) (base.Square, bool) {
	best, bestDist := base.NoSquare, 0.0
	for _, sq := range Reachable(origin) {
		cx, cy, ok := coords.SquareCenter(sq, whiteBottom, rect)
		if !ok {
			continue
		}
		d := (cx-x)*(cx-x) + (cy-y)*(cy-y)
		if best == base.NoSquare || d < bestDist {
			best, bestDist = sq, d
		}
	}
	return best, best != base.NoSquare
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
