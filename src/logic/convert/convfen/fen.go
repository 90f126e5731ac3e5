package convfen

import (
	"evilboard/src/base"
	"strconv"
	"strings"
)

// ParsePosition reads the placement field only. It never fails: unknown runes are
// skipped and anything that does not fit on the board is dropped.
func ParsePosition(fen string) base.Position {
	pos := base.Position{}

	placement := strings.TrimSpace(fen)
	if i := strings.IndexAny(placement, " \t"); i >= 0 {
		placement = placement[:i]
	}

	rank, file := 7, 0
	for _, ch := range placement {
		if rank < 0 {
			break
		}
		switch {
		case ch == '/':
			rank--
			file = 0
		case ch >= '1' && ch <= '8':
			file += int(ch - '0')
		default:
			pc := base.PieceFromRune(ch)
			if !pc.IsValid() {
				continue
			}
			if sq, ok := base.NewSquare(file, rank); ok {
				pos[sq] = pc
			}
			file++
		}
	}
	return pos
}

// SerializePosition writes the placement field with maximal empty-run compression
func SerializePosition(pos base.Position) string {
	var b strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq, _ := base.NewSquare(file, rank)
			pc, ok := pos.At(sq)
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteRune(base.RuneFromPiece(pc))
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			b.WriteByte('/')
		}
	}
	return b.String()
}

// SideToMove reads the second FEN field; NoColor when absent or malformed
func SideToMove(fen string) base.Color {
	parts := strings.Fields(fen)
	if len(parts) < 2 {
		return base.NoColor
	}
	return base.ColorFromString(parts[1])
}
