package base

// Placement of the classic starting position (placement field of a FEN)
const StartPlacement string = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

type Color uint8

const (
	NoColor Color = iota
	White
	Black
)

func (c Color) Opposite() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		return NoColor
	}
}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "none"
	}
}

func ColorFromString(s string) Color {
	switch s {
	case "white", "w":
		return White
	case "black", "b":
		return Black
	default:
		return NoColor
	}
}

type Role uint8

const (
	NoRole Role = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

func (r Role) String() string {
	switch r {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "none"
	}
}

// PromotionRoles in the order a picker shows them
var PromotionRoles = [4]Role{Queen, Rook, Bishop, Knight}

type Piece struct {
	Color Color
	Role  Role
}

var NoPiece = Piece{}

func (p Piece) IsValid() bool {
	return p.Color != NoColor && p.Role != NoRole
}

func (p Piece) String() string {
	return p.Color.String() + " " + p.Role.String()
}

// ---- Square ----

// Square index 0..63, a1 = 0, b1 = 1, ..., h8 = 63
type Square int8

const NoSquare Square = -1

func NewSquare(file, rank int) (Square, bool) {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, false
	}
	return Square(rank*8 + file), true
}

func (s Square) IsValid() bool {
	return s >= 0 && s < 64
}

func (s Square) File() int {
	return int(s) % 8
}

func (s Square) Rank() int {
	return int(s) / 8
}

func (s Square) String() string {
	if !s.IsValid() {
		return "-"
	}
	return string([]byte{byte('a' + s.File()), byte('1' + s.Rank())})
}

// 'a' ~ 'h' and '1' ~ '8'
func ParseSquare(pos string) (Square, bool) {
	if len(pos) != 2 || pos[0] < 'a' || pos[0] > 'h' || pos[1] < '1' || pos[1] > '8' {
		return NoSquare, false
	}
	return Square(int(pos[1]-'1')*8 + int(pos[0]-'a')), true
}

// AllSquares a1..h8
func AllSquares() []Square {
	out := make([]Square, 64)
	for i := range out {
		out[i] = Square(i)
	}
	return out
}

// ---- Move ----

type Move struct {
	From Square
	To   Square
}

func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// ---- Overlays ----

type Brush string

const (
	BrushGreen  Brush = "green"
	BrushRed    Brush = "red"
	BrushBlue   Brush = "blue"
	BrushYellow Brush = "yellow"
)

type Arrow struct {
	From  Square
	To    Square
	Brush Brush
}

// SameVector ignores the brush
func (a Arrow) SameVector(b Arrow) bool {
	return a.From == b.From && a.To == b.To
}

type Mark struct {
	Square Square
	Brush  Brush
}

// ---- Runes ----

func PieceFromRune(p rune) Piece {
	switch p {
	case 'P':
		return Piece{White, Pawn}
	case 'N':
		return Piece{White, Knight}
	case 'B':
		return Piece{White, Bishop}
	case 'R':
		return Piece{White, Rook}
	case 'Q':
		return Piece{White, Queen}
	case 'K':
		return Piece{White, King}
	case 'p':
		return Piece{Black, Pawn}
	case 'n':
		return Piece{Black, Knight}
	case 'b':
		return Piece{Black, Bishop}
	case 'r':
		return Piece{Black, Rook}
	case 'q':
		return Piece{Black, Queen}
	case 'k':
		return Piece{Black, King}
	default:
		return NoPiece
	}
}

func RuneFromPiece(p Piece) rune {
	var r rune
	switch p.Role {
	case Pawn:
		r = 'p'
	case Knight:
		r = 'n'
	case Bishop:
		r = 'b'
	case Rook:
		r = 'r'
	case Queen:
		r = 'q'
	case King:
		r = 'k'
	default:
		return '.'
	}
	if p.Color == White {
		r -= 'a' - 'A'
	}
	return r
}

func RoleFromRune(r rune) Role {
	switch r {
	case 'q', 'Q':
		return Queen
	case 'r', 'R':
		return Rook
	case 'b', 'B':
		return Bishop
	case 'n', 'N':
		return Knight
	default:
		return NoRole
	}
}
