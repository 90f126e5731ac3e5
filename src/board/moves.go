package board

import (
	"evilboard/src/base"
	"evilboard/src/logic/premove"
)

func premoveDests(sq base.Square, pc base.Piece, pos base.Position) []base.Square {
	return premove.Destinations(sq, pc, pos, pc.Color)
}

// isLegal consults the host table; without one any square not held by the
// mover's own color is accepted
func (c *Controller) isLegal(from, to base.Square) bool {
	if from == to || !to.IsValid() {
		return false
	}
	if c.in.Dests != nil {
		return premove.Contains(c.in.Dests[from], to)
	}
	pc, ok := c.in.Position.At(from)
	if !ok {
		return false
	}
	target, occupied := c.in.Position.At(to)
	return !occupied || target.Color != pc.Color
}

// ClickSquare is the click path, also used by drags that never started
func (c *Controller) ClickSquare(sq base.Square) {
	if c.promotion != nil || !sq.IsValid() {
		return
	}
	c.unsetPremove()
	c.clearPlyOverlays()

	if c.selected.IsValid() {
		from := c.selected
		if pc, ok := c.in.Position.At(from); ok && c.canMove(pc.Color) && c.isLegal(from, sq) {
			if !c.reselects(pc, sq) {
				c.AttemptMove(from, sq, base.NoRole)
				return
			}
		}
		if premove.Contains(c.premoves, sq) {
			c.armPremove(from, sq)
			return
		}
		if sq == from {
			c.clearSelection()
			return
		}
	}

	pc, ok := c.in.Position.At(sq)
	if ok && (c.canMove(pc.Color) || c.canPremove(pc.Color)) {
		c.selectSquare(sq)
		return
	}
	c.clearSelection()
}

// reselects: in free mode without a table, clicking another own piece selects it
func (c *Controller) reselects(moving base.Piece, sq base.Square) bool {
	if c.in.Dests != nil {
		return false
	}
	other, ok := c.in.Position.At(sq)
	return ok && other.Color == moving.Color
}

func promotionRank(col base.Color) int {
	if col == base.Black {
		return 0
	}
	return 7
}

// AttemptMove validates against the host table and either calls OnMove or
// suspends waiting for a promotion choice
func (c *Controller) AttemptMove(from, to base.Square, promo base.Role) MoveResult {
	if c.in.OnMove == nil || c.cfg.ViewOnly {
		c.logger.Debugf("move %v%v rejected: no callback or view only", from, to)
		return MoveRejected
	}
	if c.in.Dests != nil && !premove.Contains(c.in.Dests[from], to) {
		c.logger.Debugf("move %v%v rejected: not in destination table", from, to)
		return MoveRejected
	}
	pc, ok := c.in.Position.At(from)
	if !ok || !to.IsValid() {
		return MoveRejected
	}
	if pc.Role == base.Pawn && promo == base.NoRole && to.Rank() == promotionRank(pc.Color) {
		c.promotion = &Promotion{From: from, To: to, Color: pc.Color}
		c.drag = nil
		c.drawing = nil
		c.logger.Debugf("move %v%v waits for promotion", from, to)
		return MovePending
	}
	return c.callMove(from, to, promo)
}

func (c *Controller) callMove(from, to base.Square, promo base.Role) MoveResult {
	if !c.in.OnMove(from, to, promo) {
		c.logger.Debugf("move %v%v declined by host", from, to)
		return MoveDeclined
	}
	c.logger.Infof("move %v%v accepted", from, to)
	c.clearSelection()
	return MoveAccepted
}

func (c *Controller) PendingPromotion() *Promotion {
	if c.promotion == nil {
		return nil
	}
	p := *c.promotion
	return &p
}

// ResolvePromotion completes a suspended move with the chosen role
func (c *Controller) ResolvePromotion(role base.Role) MoveResult {
	if c.promotion == nil {
		return MoveRejected
	}
	valid := false
	for _, r := range base.PromotionRoles {
		if r == role {
			valid = true
		}
	}
	if !valid {
		return MoveRejected
	}
	p := *c.promotion
	holds := c.promotionHolds()
	c.promotion = nil
	if !holds || c.in.OnMove == nil || c.cfg.ViewOnly {
		c.clearSelection()
		return MoveRejected
	}
	return c.callMove(p.From, p.To, role)
}

// promotionHolds reports whether the suspended move is still playable on the
// current inputs
func (c *Controller) promotionHolds() bool {
	p := c.promotion
	pc, ok := c.in.Position.At(p.From)
	if !ok || pc.Role != base.Pawn || pc.Color != p.Color || !c.in.Mode.canMove(pc.Color) {
		return false
	}
	return c.in.Dests == nil || premove.Contains(c.in.Dests[p.From], p.To)
}

// DismissPromotion drops the suspended move without moving
func (c *Controller) DismissPromotion() {
	if c.promotion == nil {
		return
	}
	c.logger.Debugf("promotion %v%v dismissed", c.promotion.From, c.promotion.To)
	c.promotion = nil
	c.clearSelection()
}

// ---- Premoves ----

func (c *Controller) currentPremove() *base.Move {
	if pm := c.in.Premove; pm != nil && (c.spent == nil || *c.spent != *pm) {
		return pm
	}
	return c.premove
}

func (c *Controller) Premove() (base.Move, bool) {
	if pm := c.currentPremove(); pm != nil {
		return *pm, true
	}
	return base.Move{}, false
}

func (c *Controller) armPremove(from, to base.Square) {
	m := base.Move{From: from, To: to}
	c.premove = &m
	c.spent = nil
	c.clearSelection()
	c.logger.Infof("premove %v set", m)
	if c.cfg.Premove.OnSet != nil {
		c.cfg.Premove.OnSet(m)
	}
}

func (c *Controller) unsetPremove() {
	if c.currentPremove() == nil {
		return
	}
	c.premove = nil
	if pm := c.in.Premove; pm != nil {
		m := *pm
		c.spent = &m
	}
	c.logger.Debug("premove unset")
	if c.cfg.Premove.OnUnset != nil {
		c.cfg.Premove.OnUnset()
	}
}

// replayPremove plays a stored premove once its color may move, if the fresh
// table still allows it; otherwise the premove is dropped
func (c *Controller) replayPremove() {
	pm := c.currentPremove()
	if pm == nil {
		return
	}
	m := *pm
	pc, ok := c.in.Position.At(m.From)
	if !ok {
		c.unsetPremove()
		return
	}
	if !c.in.Mode.canMove(pc.Color) {
		if !c.canPremove(pc.Color) {
			c.unsetPremove()
		}
		return
	}
	c.unsetPremove()
	if c.in.Dests != nil && !premove.Contains(c.in.Dests[m.From], m.To) {
		c.logger.Debugf("premove %v no longer legal", m)
		return
	}
	c.logger.Infof("premove %v replayed", m)
	c.AttemptMove(m.From, m.To, base.NoRole)
}
