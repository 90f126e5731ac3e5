package base

// Position is the set of occupied squares. Absent key means empty square.
// Positions are replaced wholesale, never mutated once handed to a board.
type Position map[Square]Piece

func (p Position) At(sq Square) (Piece, bool) {
	pc, ok := p[sq]
	if !ok || !pc.IsValid() {
		return NoPiece, false
	}
	return pc, true
}

// Equal compares by value
func (p Position) Equal(o Position) bool {
	if len(p) != len(o) {
		return false
	}
	for sq, pc := range p {
		if other, ok := o[sq]; !ok || other != pc {
			return false
		}
	}
	return true
}

func (p Position) Clone() Position {
	out := make(Position, len(p))
	for sq, pc := range p {
		out[sq] = pc
	}
	return out
}

// Relocate returns a copy with the piece on from moved to to.
// Used by free-mode hosts that accept any destination.
func (p Position) Relocate(from, to Square, promo Role) Position {
	pc, ok := p.At(from)
	if !ok || !to.IsValid() {
		return p.Clone()
	}
	out := p.Clone()
	delete(out, from)
	if promo != NoRole {
		pc.Role = promo
	}
	out[to] = pc
	return out
}

// KingOf finds the first king of c scanning a1..h8
func (p Position) KingOf(c Color) (Square, bool) {
	for _, sq := range AllSquares() {
		if pc, ok := p.At(sq); ok && pc.Role == King && pc.Color == c {
			return sq, true
		}
	}
	return NoSquare, false
}
