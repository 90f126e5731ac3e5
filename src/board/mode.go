package board

import "evilboard/src/base"

// Mode decides which colors may move now and which may only premove.
// Either FreeMode or TurnAware; a nil Mode in Inputs means FreeMode.
type Mode interface {
	canMove(c base.Color) bool
	canPremove(c base.Color) bool
}

// FreeMode lets any color move at any time; premoves are off
type FreeMode struct{}

func (FreeMode) canMove(c base.Color) bool    { return c != base.NoColor }
func (FreeMode) canPremove(c base.Color) bool { return false }

// TurnAware allows moves for the side to move and premoves for the other side.
// Movable == NoColor means the user controls both colors.
type TurnAware struct {
	Turn    base.Color
	Movable base.Color
}

func (m TurnAware) controls(c base.Color) bool {
	return c != base.NoColor && (m.Movable == base.NoColor || m.Movable == c)
}

func (m TurnAware) canMove(c base.Color) bool {
	return m.controls(c) && c == m.Turn
}

func (m TurnAware) canPremove(c base.Color) bool {
	return m.controls(c) && c != m.Turn
}
