package anim

import (
	"evilboard/src/base"
	"evilboard/src/logic/convert/convfen"
	"math"
	"testing"
	"time"
)

func sq(s string) base.Square {
	v, _ := base.ParseSquare(s)
	return v
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestPlanPawnPush(t *testing.T) {
	prev := base.Position{sq("e2"): {Color: base.White, Role: base.Pawn}}
	next := base.Position{sq("e4"): {Color: base.White, Role: base.Pawn}}

	plan := ComputePlan(prev, next)
	if len(plan.Anims) != 1 || len(plan.Fadings) != 0 {
		t.Fatalf("got %d anims, %d fadings", len(plan.Anims), len(plan.Fadings))
	}
	a, ok := plan.Anims[sq("e4")]
	if !ok {
		t.Fatalf("anim must be keyed by destination")
	}
	if a.From.X != 4 || a.From.Y != 1 || a.To.X != 4 || a.To.Y != 3 {
		t.Fatalf("unexpected vector %+v", a)
	}
	if a.Current.X != 0 || a.Current.Y != -2 {
		t.Fatalf("must start fully offset toward origin, got %+v", a.Current)
	}
}

func TestPlanFadesUnmatched(t *testing.T) {
	prev := base.Position{
		sq("c1"): {Color: base.White, Role: base.Bishop},
		sq("e1"): {Color: base.White, Role: base.King},
	}
	next := base.Position{
		sq("e1"): {Color: base.White, Role: base.King},
		sq("c3"): {Color: base.Black, Role: base.Bishop},
	}
	plan := ComputePlan(prev, next)
	if len(plan.Anims) != 0 {
		t.Fatalf("different color bishop must not match: %v", plan.Anims)
	}
	if pc, ok := plan.Fadings[sq("c1")]; !ok || pc.Role != base.Bishop {
		t.Fatalf("c1 bishop must fade, got %v", plan.Fadings)
	}
}

func TestPlanCaptureAndCastle(t *testing.T) {
	tests := []struct {
		name      string
		prev      string
		next      string
		wantAnims map[string]string // destination -> origin
		wantFades []string
	}{
		{
			name:      "capture overwrites",
			prev:      "8/8/8/3p4/4P3/8/8/8",
			next:      "8/8/8/3P4/8/8/8/8",
			wantAnims: map[string]string{"d5": "e4"},
			wantFades: []string{"d5"},
		},
		{
			name:      "castle short",
			prev:      "8/8/8/8/8/8/8/4K2R",
			next:      "8/8/8/8/8/8/8/5RK1",
			wantAnims: map[string]string{"g1": "e1", "f1": "h1"},
		},
		{
			name:      "nearest same type wins",
			prev:      "8/8/8/8/8/8/8/N6N",
			next:      "8/8/8/8/8/8/5N2/N7",
			wantAnims: map[string]string{"f2": "h1"},
		},
		{
			name:      "promotion fades pawn",
			prev:      "8/4P3/8/8/8/8/8/8",
			next:      "4Q3/8/8/8/8/8/8/8",
			wantFades: []string{"e7"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := ComputePlan(convfen.ParsePosition(tt.prev), convfen.ParsePosition(tt.next))
			if len(plan.Anims) != len(tt.wantAnims) {
				t.Fatalf("got %d anims, want %d", len(plan.Anims), len(tt.wantAnims))
			}
			for dest, origin := range tt.wantAnims {
				a, ok := plan.Anims[sq(dest)]
				if !ok {
					t.Fatalf("missing anim at %s", dest)
				}
				o := sq(origin)
				if int(a.From.X) != o.File() || int(a.From.Y) != o.Rank() {
					t.Fatalf("%s: from %+v, want %s", dest, a.From, origin)
				}
			}
			if len(plan.Fadings) != len(tt.wantFades) {
				t.Fatalf("got %d fadings, want %d", len(plan.Fadings), len(tt.wantFades))
			}
			for _, f := range tt.wantFades {
				if _, ok := plan.Fadings[sq(f)]; !ok {
					t.Fatalf("missing fading at %s", f)
				}
			}
		})
	}
}

func TestEase(t *testing.T) {
	cases := map[float64]float64{0: 0, 0.25: 0.0625, 0.5: 0.5, 0.75: 0.9375, 1: 1}
	for in, want := range cases {
		if got := Ease(in); math.Abs(got-want) > 1e-9 {
			t.Fatalf("Ease(%v) = %v want %v", in, got, want)
		}
	}
}

func TestAnimatorRunsToCompletion(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	q := &FrameQueue{}
	a := NewAnimator(q, clock.now, nil)

	prev := base.Position{sq("e2"): {Color: base.White, Role: base.Pawn}}
	next := base.Position{sq("e4"): {Color: base.White, Role: base.Pawn}}
	if !a.Start(prev, next, 200*time.Millisecond) {
		t.Fatalf("expected plan to start")
	}

	clock.advance(100 * time.Millisecond)
	q.Flush()
	off, ok := a.Offset(sq("e4"))
	if !ok {
		t.Fatalf("expected running anim")
	}
	// rest = 0.5, Ease(0.5) = 0.5, offset = 0.5 * (e2 - e4)
	if math.Abs(off.Y+1) > 1e-9 || off.X != 0 {
		t.Fatalf("mid offset %+v", off)
	}

	clock.advance(150 * time.Millisecond)
	q.Flush()
	if a.Running() {
		t.Fatalf("plan must be dropped once rest <= 0")
	}
	if q.Len() != 0 {
		t.Fatalf("tick chain must stop, %d pending", q.Len())
	}
}

func TestAnimatorCancelBeforeReplace(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	q := &FrameQueue{}
	a := NewAnimator(q, clock.now, nil)

	p1 := base.Position{sq("e2"): {Color: base.White, Role: base.Pawn}}
	p2 := base.Position{sq("e4"): {Color: base.White, Role: base.Pawn}}
	p3 := base.Position{sq("e5"): {Color: base.White, Role: base.Pawn}}

	a.Start(p1, p2, time.Second)
	a.Start(p2, p3, time.Second)
	if q.Len() != 1 {
		t.Fatalf("exactly one tick chain expected, got %d", q.Len())
	}
	if _, ok := a.Offset(sq("e4")); ok {
		t.Fatalf("old plan must be gone")
	}
	if _, ok := a.Offset(sq("e5")); !ok {
		t.Fatalf("new plan must be installed")
	}
}

func TestAnimatorSkipsShortDurations(t *testing.T) {
	q := &FrameQueue{}
	a := NewAnimator(q, nil, nil)
	prev := base.Position{sq("e2"): {Color: base.White, Role: base.Pawn}}
	next := base.Position{sq("e4"): {Color: base.White, Role: base.Pawn}}
	if a.Start(prev, next, 49*time.Millisecond) {
		t.Fatalf("durations under the minimum must not animate")
	}
	if a.Start(prev, prev.Clone(), time.Second) {
		t.Fatalf("identical positions produce no plan")
	}
	if q.Len() != 0 {
		t.Fatalf("nothing should be scheduled")
	}
}

func TestFrameQueueCancelInsideBatch(t *testing.T) {
	q := &FrameQueue{}
	ran := 0
	var cancelSecond func()
	q.RequestFrame(func() { cancelSecond() })
	cancelSecond = q.RequestFrame(func() { ran++ })
	q.Flush()
	if ran != 0 {
		t.Fatalf("cancelled callback ran")
	}
}
