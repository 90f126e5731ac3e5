package board

import (
	"evilboard/src/base"
	"evilboard/src/logic/premove"
	"evilboard/src/logic/snap"
)

type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
)

type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

func (m Modifiers) Has(f Modifiers) bool {
	return m&f != 0
}

// PointerEvent is a host pointer event in the pixel space given to SetBounds.
// Move and up events are expected even when the pointer is off the board.
type PointerEvent struct {
	Button Button
	X, Y   float64
	Mods   Modifiers
}

// BrushFor picks the overlay brush from the held modifier keys
func BrushFor(m Modifiers) base.Brush {
	alt := m.Has(ModAlt) || m.Has(ModMeta)
	switch {
	case m.Has(ModShift) && alt:
		return base.BrushYellow
	case m.Has(ModShift) || m.Has(ModCtrl):
		return base.BrushRed
	case alt:
		return base.BrushBlue
	default:
		return base.BrushGreen
	}
}

func (c *Controller) PointerDown(ev PointerEvent) {
	if c.promotion != nil {
		return
	}
	c.CancelGesture()
	sq, ok := c.squareAt(ev.X, ev.Y)
	if !ok {
		return
	}

	if ev.Button == ButtonRight {
		if c.cfg.Arrows {
			c.drawing = &arrowDraw{origin: sq, brush: BrushFor(ev.Mods), x: ev.X, y: ev.Y}
		}
		return
	}

	pc, occupied := c.in.Position.At(sq)
	if occupied && c.cfg.Dragging && (c.canMove(pc.Color) || c.canPremove(pc.Color)) {
		c.drag = &DragState{Origin: sq, Piece: pc, StartX: ev.X, StartY: ev.Y, X: ev.X, Y: ev.Y}
		return
	}
	c.pressed = sq
}

func (c *Controller) PointerMove(ev PointerEvent) {
	if c.promotion != nil {
		return
	}
	if c.drawing != nil {
		c.drawing.x, c.drawing.y = ev.X, ev.Y
		return
	}
	d := c.drag
	if d == nil {
		return
	}
	d.X, d.Y = ev.X, ev.Y
	if !d.Started {
		dx, dy := d.X-d.StartX, d.Y-d.StartY
		if dx*dx+dy*dy <= DragThreshold*DragThreshold {
			return
		}
		d.Started = true
		c.unsetPremove()
		c.selectSquare(d.Origin)
		c.logger.Debugf("drag started from %v", d.Origin)
	}
	if sq, ok := c.squareAt(ev.X, ev.Y); ok {
		c.hover = sq
	} else {
		c.hover = base.NoSquare
	}
	c.refreshDests(d.Origin)
}

func (c *Controller) PointerUp(ev PointerEvent) {
	if c.promotion != nil {
		return
	}
	switch {
	case c.drawing != nil:
		c.finishArrow(ev)
	case c.drag != nil:
		c.finishDrag(ev)
	case c.pressed.IsValid():
		sq := c.pressed
		c.pressed = base.NoSquare
		if up, ok := c.squareAt(ev.X, ev.Y); ok && up == sq {
			c.ClickSquare(sq)
		}
	}
}

func (c *Controller) finishArrow(ev PointerEvent) {
	a := c.drawing
	c.drawing = nil
	to, ok := c.squareAt(ev.X, ev.Y)
	if !ok || to == a.origin {
		c.ToggleMark(base.Mark{Square: a.origin, Brush: a.brush})
		return
	}
	if c.cfg.SnapArrows {
		if s, ok := snap.Target(a.origin, ev.X, ev.Y, c.whiteBottom, c.rect); ok {
			to = s
		}
	}
	c.ToggleArrow(base.Arrow{From: a.origin, To: to, Brush: a.brush})
}

func (c *Controller) finishDrag(ev PointerEvent) {
	d := c.drag
	c.drag = nil
	c.hover = base.NoSquare
	if !d.Started {
		c.ClickSquare(d.Origin)
		return
	}
	to, ok := c.squareAt(ev.X, ev.Y)
	if !ok {
		c.clearSelection()
		return
	}
	if to == d.Origin {
		return
	}
	c.clearPlyOverlays()
	if c.canMove(d.Piece.Color) && c.isLegal(d.Origin, to) {
		if c.AttemptMove(d.Origin, to, base.NoRole) != MoveRejected {
			return
		}
	}
	if premove.Contains(c.premoves, to) {
		c.armPremove(d.Origin, to)
		return
	}
	c.clearSelection()
}
