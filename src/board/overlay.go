package board

import (
	"evilboard/src/base"
	"evilboard/src/logic/coords"
	"evilboard/src/logic/snap"
)

type overlayMode int

const (
	overlayInternal overlayMode = iota
	overlayPerIndex
	overlayGlobal
)

func (c *Controller) arrowMode() overlayMode {
	switch {
	case c.in.Arrows != nil:
		return overlayGlobal
	case c.in.ArrowsByIndex != nil:
		return overlayPerIndex
	default:
		return overlayInternal
	}
}

func (c *Controller) markMode() overlayMode {
	switch {
	case c.in.Marks != nil:
		return overlayGlobal
	case c.in.MarksByIndex != nil:
		return overlayPerIndex
	default:
		return overlayInternal
	}
}

// Arrows resolves the active arrow list for the viewed ply
func (c *Controller) Arrows() []base.Arrow {
	switch c.arrowMode() {
	case overlayGlobal:
		return c.in.Arrows
	case overlayPerIndex:
		return c.in.ArrowsByIndex[c.in.MoveIndex]
	default:
		return c.arrows[c.in.MoveIndex]
	}
}

func (c *Controller) Marks() []base.Mark {
	switch c.markMode() {
	case overlayGlobal:
		return c.in.Marks
	case overlayPerIndex:
		return c.in.MarksByIndex[c.in.MoveIndex]
	default:
		return c.marks[c.in.MoveIndex]
	}
}

func (c *Controller) setArrows(list []base.Arrow) {
	if c.arrowMode() == overlayInternal {
		if len(list) == 0 {
			delete(c.arrows, c.in.MoveIndex)
		} else {
			c.arrows[c.in.MoveIndex] = list
		}
	}
	if c.in.OnArrowsChange != nil {
		c.in.OnArrowsChange(c.in.MoveIndex, list)
	}
}

func (c *Controller) setMarks(list []base.Mark) {
	if c.markMode() == overlayInternal {
		if len(list) == 0 {
			delete(c.marks, c.in.MoveIndex)
		} else {
			c.marks[c.in.MoveIndex] = list
		}
	}
	if c.in.OnMarksChange != nil {
		c.in.OnMarksChange(c.in.MoveIndex, list)
	}
}

// ToggleArrow removes an arrow with the same endpoints, whatever its brush,
// or appends a. Externally controlled lists are reported through the change
// callback and left for the host to store.
func (c *Controller) ToggleArrow(a base.Arrow) {
	if !a.From.IsValid() || !a.To.IsValid() || a.From == a.To {
		return
	}
	cur := c.Arrows()
	next := make([]base.Arrow, 0, len(cur)+1)
	removed := false
	for _, x := range cur {
		if x.SameVector(a) {
			removed = true
			continue
		}
		next = append(next, x)
	}
	if !removed {
		next = append(next, a)
	}
	c.setArrows(next)
}

// ToggleMark is keyed by square only
func (c *Controller) ToggleMark(m base.Mark) {
	if !m.Square.IsValid() {
		return
	}
	cur := c.Marks()
	next := make([]base.Mark, 0, len(cur)+1)
	removed := false
	for _, x := range cur {
		if x.Square == m.Square {
			removed = true
			continue
		}
		next = append(next, x)
	}
	if !removed {
		next = append(next, m)
	}
	c.setMarks(next)
}

// clearPlyOverlays wipes drawings of the viewed ply. Globally controlled lists
// do not belong to a ply and are kept.
func (c *Controller) clearPlyOverlays() {
	if c.arrowMode() != overlayGlobal && len(c.Arrows()) > 0 {
		c.setArrows(nil)
	}
	if c.markMode() != overlayGlobal && len(c.Marks()) > 0 {
		c.setMarks(nil)
	}
}

// ClearOverlays drops every internally stored arrow and mark on all plies
func (c *Controller) ClearOverlays() {
	c.arrows = map[int][]base.Arrow{}
	c.marks = map[int][]base.Mark{}
}

// Snapshot is the derived view state a renderer reads after each event
type Snapshot struct {
	Selected  base.Square
	Legal     []base.Square
	Premoves  []base.Square
	Premove   *base.Move
	Promotion *Promotion
	// set only after the drag threshold was crossed
	Drag         *DragState
	ArrowPreview *base.Arrow
	Arrows       []base.Arrow
	Marks        []base.Mark
	LastMove     *base.Move
	Check        base.Square
	Hover        base.Square
	WhiteBottom  bool
}

func (c *Controller) Snapshot() Snapshot {
	s := Snapshot{
		Selected:    c.selected,
		Legal:       append([]base.Square(nil), c.legal...),
		Premoves:    append([]base.Square(nil), c.premoves...),
		Promotion:   c.PendingPromotion(),
		Arrows:      append([]base.Arrow(nil), c.Arrows()...),
		Marks:       append([]base.Mark(nil), c.Marks()...),
		LastMove:    c.in.LastMove,
		Check:       base.NoSquare,
		Hover:       c.hover,
		WhiteBottom: c.whiteBottom,
	}
	if pm, ok := c.Premove(); ok {
		s.Premove = &pm
	}
	if c.drag != nil && c.drag.Started {
		d := *c.drag
		s.Drag = &d
	}
	if a := c.drawing; a != nil {
		if to, ok := c.squareAt(a.x, a.y); ok && to != a.origin {
			if c.cfg.SnapArrows {
				if t, ok := snap.Target(a.origin, a.x, a.y, c.whiteBottom, c.rect); ok {
					to = t
				}
			}
			s.ArrowPreview = &base.Arrow{From: a.origin, To: to, Brush: a.brush}
		}
	}
	if c.in.Check != base.NoColor {
		if k, ok := c.in.Position.KingOf(c.in.Check); ok {
			s.Check = k
		}
	}
	return s
}

// PieceOffset is the animated displacement of the piece on sq in pixels
func (c *Controller) PieceOffset(sq base.Square) (dx, dy float64) {
	if c.anim == nil {
		return 0, 0
	}
	v, ok := c.anim.Offset(sq)
	if !ok {
		return 0, 0
	}
	return coords.DeltaToScreen(v, c.whiteBottom, c.rect.W, c.rect.H)
}

// Fading lists pieces disappearing in the running animation with their opacity
func (c *Controller) Fading() (map[base.Square]base.Piece, float64) {
	if c.anim == nil || !c.anim.Running() {
		return nil, 0
	}
	p := c.anim.Plan()
	if p == nil {
		return nil, 0
	}
	return p.Fadings, c.anim.Rest()
}
