package gdraw

import (
	"evilboard/src/base"
	"evilboard/src/board"
	"evilboard/src/logic/coords"
	"evilboard/src/logic/keys"
	"evilboard/ui/gui/gbase"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

const boardMargin = 30

// boardLayout fits the board left of the side panel; size is a multiple of 8
func boardLayout(ww, wh int) (x, y, size int) {
	size = ww - gbase.SidePanel - 2*boardMargin
	if size > wh-2*boardMargin {
		size = wh - 2*boardMargin
	}
	if size < 160 {
		size = 160
	}
	size -= size % 8
	return boardMargin, (wh - size) / 2, size
}

type promoCell struct {
	Role base.Role
	Rect coords.Rect
}

// promotionCells stacks the choices in the target column, growing from the
// target square toward the board center
func promotionCells(to base.Square, whiteBottom bool, r coords.Rect) []promoCell {
	cx, cy, ok := coords.SquareCenter(to, whiteBottom, r)
	if !ok {
		return nil
	}
	sq := r.W / 8
	x := cx - sq/2
	y := cy - sq/2
	step := sq
	if cy > r.Y+r.H/2 {
		step = -sq
	}
	cells := make([]promoCell, 0, len(base.PromotionRoles))
	for i, role := range base.PromotionRoles {
		cells = append(cells, promoCell{
			Role: role,
			Rect: coords.Rect{X: x, Y: y + float64(i)*step, W: sq, H: sq},
		})
	}
	return cells
}

func roleAt(cells []promoCell, x, y float64) base.Role {
	for _, c := range cells {
		if c.Rect.Contains(x, y) {
			return c.Role
		}
	}
	return base.NoRole
}

var brushColors = map[base.Brush]color.RGBA{
	base.BrushGreen:  {0x15, 0x78, 0x1b, 0xb0},
	base.BrushRed:    {0x88, 0x20, 0x20, 0xb0},
	base.BrushBlue:   {0x00, 0x30, 0x88, 0xb0},
	base.BrushYellow: {0xe6, 0x8f, 0x00, 0xb0},
}

func brushColor(b base.Brush, preview bool) color.RGBA {
	c, ok := brushColors[b]
	if !ok {
		c = brushColors[base.BrushGreen]
	}
	if preview {
		c.A /= 2
		c.R, c.G, c.B = c.R/2, c.G/2, c.B/2
	}
	return c
}

var keyTable = map[ebiten.Key]keys.Key{
	ebiten.KeyArrowLeft:  keys.KeyLeft,
	ebiten.KeyArrowRight: keys.KeyRight,
	ebiten.KeyArrowUp:    keys.KeyUp,
	ebiten.KeyArrowDown:  keys.KeyDown,
	ebiten.KeyHome:       keys.KeyHome,
	ebiten.KeyEnd:        keys.KeyEnd,
	ebiten.KeyEscape:     keys.KeyEscape,
	ebiten.KeyF:          keys.KeyFlip,
	ebiten.KeyX:          keys.KeyThreat,
}

var promoKeys = map[ebiten.Key]base.Role{
	ebiten.KeyQ: base.Queen,
	ebiten.KeyR: base.Rook,
	ebiten.KeyB: base.Bishop,
	ebiten.KeyN: base.Knight,
}

// modifiers folds the pressed modifier keys into board flags
func modifiers(pressed func(ebiten.Key) bool) board.Modifiers {
	var m board.Modifiers
	if pressed(ebiten.KeyShift) {
		m |= board.ModShift
	}
	if pressed(ebiten.KeyControl) {
		m |= board.ModCtrl
	}
	if pressed(ebiten.KeyAlt) {
		m |= board.ModAlt
	}
	if pressed(ebiten.KeyMeta) {
		m |= board.ModMeta
	}
	return m
}
