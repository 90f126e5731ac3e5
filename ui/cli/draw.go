package cli

import (
	"evilboard/src/base"
	"evilboard/src/board"
	"evilboard/src/logic/premove"
	"fmt"
	"io"
	"strings"
)

// View is everything one terminal frame shows
type View struct {
	Position base.Position
	Snapshot board.Snapshot
	Threats  []base.Square
	Status   string
}

type DrawFunc func(w io.Writer, v View)

// ANSI-code
const (
	reset    = "\033[0m"
	lightBg  = "\033[47m"
	darkBg   = "\033[100m"
	selectBg = "\033[43m"
	lastBg   = "\033[103m"
	checkBg  = "\033[41m"
	preBg    = "\033[46m"
	whiteF   = "\033[97m"
	blackF   = "\033[30m"
	dimF     = "\033[90m"
	destF    = "\033[32m"
	threatF  = "\033[31m"
	markF    = "\033[4m"
)

func pieceGlyph(p base.Piece) string {
	switch p {
	case base.Piece{Color: base.White, Role: base.King}:
		return "♔"
	case base.Piece{Color: base.White, Role: base.Queen}:
		return "♕"
	case base.Piece{Color: base.White, Role: base.Rook}:
		return "♖"
	case base.Piece{Color: base.White, Role: base.Bishop}:
		return "♗"
	case base.Piece{Color: base.White, Role: base.Knight}:
		return "♘"
	case base.Piece{Color: base.White, Role: base.Pawn}:
		return "♙"
	case base.Piece{Color: base.Black, Role: base.King}:
		return "♚"
	case base.Piece{Color: base.Black, Role: base.Queen}:
		return "♛"
	case base.Piece{Color: base.Black, Role: base.Rook}:
		return "♜"
	case base.Piece{Color: base.Black, Role: base.Bishop}:
		return "♝"
	case base.Piece{Color: base.Black, Role: base.Knight}:
		return "♞"
	case base.Piece{Color: base.Black, Role: base.Pawn}:
		return "♟"
	default:
		return " "
	}
}

// squareBg: selection > check > premove > last move > board colour
func squareBg(sq base.Square, s board.Snapshot) string {
	switch {
	case sq == s.Selected:
		return selectBg
	case sq == s.Check:
		return checkBg
	case s.Premove != nil && (sq == s.Premove.From || sq == s.Premove.To):
		return preBg
	case s.LastMove != nil && (sq == s.LastMove.From || sq == s.LastMove.To):
		return lastBg
	case (sq.File()+sq.Rank())%2 == 0:
		return darkBg
	default:
		return lightBg
	}
}

func hasMark(marks []base.Mark, sq base.Square) bool {
	for _, m := range marks {
		if m.Square == sq {
			return true
		}
	}
	return false
}

func PrintBoard(w io.Writer, v View) {
	s := v.Snapshot
	files := "   a  b  c  d  e  f  g  h"
	ranks := []int{7, 6, 5, 4, 3, 2, 1, 0}
	cols := []int{0, 1, 2, 3, 4, 5, 6, 7}
	if !s.WhiteBottom {
		files = "   h  g  f  e  d  c  b  a"
		ranks = []int{0, 1, 2, 3, 4, 5, 6, 7}
		cols = []int{7, 6, 5, 4, 3, 2, 1, 0}
	}

	fmt.Fprint(w, "\r\n"+files+"\r\n")
	for _, rank := range ranks {
		fmt.Fprintf(w, "%d ", rank+1)
		for _, file := range cols {
			sq, _ := base.NewSquare(file, rank)
			pc, occupied := v.Position.At(sq)

			g := pieceGlyph(pc)
			fg := dimF
			switch {
			case occupied && pc.Color == base.White:
				fg = whiteF
			case occupied:
				fg = blackF
			case premove.Contains(s.Legal, sq):
				g, fg = "•", destF
			case premove.Contains(s.Premoves, sq):
				g, fg = "◦", destF
			case premove.Contains(v.Threats, sq):
				g, fg = "×", threatF
			}
			if hasMark(s.Marks, sq) {
				fg += markF
			}
			fmt.Fprintf(w, "%s%s %s %s", squareBg(sq, s), fg, g, reset)
		}
		fmt.Fprintf(w, " %d\r\n", rank+1)
	}
	fmt.Fprint(w, files+"\r\n")

	if len(s.Arrows) > 0 {
		parts := make([]string, 0, len(s.Arrows))
		for _, a := range s.Arrows {
			parts = append(parts, fmt.Sprintf("%v→%v(%s)", a.From, a.To, a.Brush))
		}
		fmt.Fprintf(w, "Arrows: %s\r\n", strings.Join(parts, " "))
	}
	if s.Promotion != nil {
		fmt.Fprintf(w, "Promote %v%v: q, r, b or n (esc to cancel)\r\n", s.Promotion.From, s.Promotion.To)
	}
	if v.Status != "" {
		fmt.Fprintf(w, "Status: %s\r\n", v.Status)
	}
}
