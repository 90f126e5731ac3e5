// Package premove lists squares a piece could reach by raw movement geometry.
// Turn order, check and pins are ignored: a premove is played later, if at all.
package premove

import "evilboard/src/base"

var (
	knightOffsets = [8][2]int{{2, 1}, {1, 2}, {-1, 2}, {-2, 1}, {-2, -1}, {-1, -2}, {1, -2}, {2, -1}}
	rookDirs      = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirs    = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	kingOffsets   = [8][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// Destinations returns premove targets for piece standing on sq. Squares held by
// color are never returned; diagonal pawn steps are offered even onto empty squares.
func Destinations(sq base.Square, piece base.Piece, pos base.Position, color base.Color) []base.Square {
	if !sq.IsValid() || !piece.IsValid() {
		return nil
	}
	if color == base.NoColor {
		color = piece.Color
	}
	f, r := sq.File(), sq.Rank()
	var out []base.Square

	free := func(t base.Square) bool {
		pc, ok := pos.At(t)
		return !ok || pc.Color != color
	}
	add := func(file, rank int) {
		if t, ok := base.NewSquare(file, rank); ok && free(t) {
			out = append(out, t)
		}
	}
	slide := func(dirs [4][2]int) {
		for _, d := range dirs {
			for step := 1; ; step++ {
				t, ok := base.NewSquare(f+d[0]*step, r+d[1]*step)
				if !ok {
					break
				}
				if _, occupied := pos.At(t); occupied {
					if free(t) {
						out = append(out, t)
					}
					break
				}
				out = append(out, t)
			}
		}
	}

	switch piece.Role {
	case base.Pawn:
		dir, home := 1, 1
		if piece.Color == base.Black {
			dir, home = -1, 6
		}
		if one, ok := base.NewSquare(f, r+dir); ok && free(one) {
			out = append(out, one)
			if r == home {
				add(f, r+2*dir)
			}
		}
		add(f-1, r+dir)
		add(f+1, r+dir)
	case base.Knight:
		for _, o := range knightOffsets {
			add(f+o[0], r+o[1])
		}
	case base.Bishop:
		slide(bishopDirs)
	case base.Rook:
		slide(rookDirs)
	case base.Queen:
		slide(rookDirs)
		slide(bishopDirs)
	case base.King:
		for _, o := range kingOffsets {
			add(f+o[0], r+o[1])
		}
		homeRank := 0
		if piece.Color == base.Black {
			homeRank = 7
		}
		if f == 4 && r == homeRank {
			add(f-2, r)
			add(f+2, r)
		}
	}
	return out
}

// Contains is a small helper for destination lists
func Contains(list []base.Square, sq base.Square) bool {
	for _, s := range list {
		if s == sq {
			return true
		}
	}
	return false
}

// Threats is the set of squares pieces of color by attack, by the same raw
// geometry. Pawn pushes and castling targets attack nothing.
func Threats(pos base.Position, by base.Color) []base.Square {
	var seen [64]bool
	var out []base.Square
	for _, sq := range base.AllSquares() {
		pc, ok := pos.At(sq)
		if !ok || pc.Color != by {
			continue
		}
		for _, t := range Destinations(sq, pc, pos, by) {
			df := t.File() - sq.File()
			if (pc.Role == base.Pawn && df == 0) || (pc.Role == base.King && (df > 1 || df < -1)) {
				continue
			}
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}
	return out
}
