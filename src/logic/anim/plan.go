// Package anim turns two position snapshots into a motion plan and plays it.
package anim

import (
	"evilboard/src/base"
	"evilboard/src/logic/coords"
)

// Anim is one piece sliding into the square it is keyed by
type Anim struct {
	From    coords.Vec
	To      coords.Vec
	Current coords.Vec // offset from To, in board units
}

type Plan struct {
	Anims   map[base.Square]*Anim
	Fadings map[base.Square]base.Piece
}

func (p *Plan) Empty() bool {
	return p == nil || (len(p.Anims) == 0 && len(p.Fadings) == 0)
}

type placed struct {
	sq    base.Square
	piece base.Piece
	pos   coords.Vec
}

// ComputePlan matches disappeared pieces to appeared pieces of the same color and
// role, nearest first, in a1..h8 order. Leftover disappearances fade out in place.
func ComputePlan(prev, next base.Position) *Plan {
	var missing, appearing []placed
	for _, sq := range base.AllSquares() {
		before, hadBefore := prev.At(sq)
		after, hasAfter := next.At(sq)
		if hadBefore && hasAfter && before == after {
			continue
		}
		bp, _ := coords.SquareToBoardPos(sq)
		if hadBefore {
			missing = append(missing, placed{sq: sq, piece: before, pos: bp.Vec()})
		}
		if hasAfter {
			appearing = append(appearing, placed{sq: sq, piece: after, pos: bp.Vec()})
		}
	}

	plan := &Plan{
		Anims:   map[base.Square]*Anim{},
		Fadings: map[base.Square]base.Piece{},
	}
	used := make([]bool, len(missing))
	for _, a := range appearing {
		best := -1
		bestDist := 0.0
		for i, m := range missing {
			if used[i] || m.piece != a.piece {
				continue
			}
			d := distSq(m.pos, a.pos)
			if best < 0 || d < bestDist {
				best, bestDist = i, d
			}
		}
		if best < 0 {
			continue
		}
		used[best] = true
		from := missing[best].pos
		plan.Anims[a.sq] = &Anim{From: from, To: a.pos, Current: from.Sub(a.pos)}
	}
	for i, m := range missing {
		if !used[i] {
			plan.Fadings[m.sq] = m.piece
		}
	}
	return plan
}

func distSq(a, b coords.Vec) float64 {
	d := a.Sub(b)
	return d.X*d.X + d.Y*d.Y
}

// Ease is the cubic in/out curve
func Ease(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := 1 - t
	return 1 - 4*u*u*u
}

// Step applies the remaining fraction to every anim
func (p *Plan) Step(rest float64) {
	e := Ease(rest)
	for _, a := range p.Anims {
		a.Current = a.From.Sub(a.To).Scale(e)
	}
}
