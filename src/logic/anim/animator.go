package anim

import (
	"evilboard/src/base"
	"evilboard/src/logic/coords"
	"evilboard/src/logx"
	"time"
)

// Shorter durations are not worth a plan
const MinDuration = 50 * time.Millisecond

// Scheduler runs fn on the next display frame. cancel drops fn if it has not run yet.
type Scheduler interface {
	RequestFrame(fn func()) (cancel func())
}

// Animator owns at most one plan. Each tick requests the next one until the
// remaining fraction reaches zero.
type Animator struct {
	sched  Scheduler
	now    func() time.Time
	logger logx.Logger

	plan     *Plan
	start    time.Time
	duration time.Duration
	rest     float64
	cancel   func()
}

func NewAnimator(s Scheduler, now func() time.Time, logger logx.Logger) *Animator {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = logx.NewNop()
	}
	return &Animator{sched: s, now: now, logger: logger}
}

// Start replaces any running plan with one for prev -> next. It reports whether a
// plan is now running.
func (a *Animator) Start(prev, next base.Position, d time.Duration) bool {
	a.Stop()
	if d < MinDuration || prev == nil {
		return false
	}
	plan := ComputePlan(prev, next)
	if plan.Empty() {
		return false
	}
	a.plan = plan
	a.start = a.now()
	a.duration = d
	a.rest = 1
	a.logger.Debugf("animation start: %d moving, %d fading, %v", len(plan.Anims), len(plan.Fadings), d)
	a.schedule()
	return true
}

// Stop cancels the pending tick and drops the plan
func (a *Animator) Stop() {
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	a.plan = nil
	a.rest = 0
}

func (a *Animator) Running() bool {
	return a.plan != nil
}

func (a *Animator) Plan() *Plan {
	return a.plan
}

// Rest is the remaining fraction in [0,1]; fading pieces use it as opacity
func (a *Animator) Rest() float64 {
	return a.rest
}

// Offset of the piece on sq from its true square, in board units
func (a *Animator) Offset(sq base.Square) (coords.Vec, bool) {
	if a.plan == nil {
		return coords.Vec{}, false
	}
	an, ok := a.plan.Anims[sq]
	if !ok {
		return coords.Vec{}, false
	}
	return an.Current, true
}

func (a *Animator) schedule() {
	if a.sched == nil {
		return
	}
	a.cancel = a.sched.RequestFrame(a.tick)
}

func (a *Animator) tick() {
	a.cancel = nil
	if a.plan == nil {
		return
	}
	elapsed := a.now().Sub(a.start)
	rest := 1 - float64(elapsed)/float64(a.duration)
	if rest <= 0 {
		a.logger.Debug("animation done")
		a.plan = nil
		a.rest = 0
		return
	}
	a.rest = rest
	a.plan.Step(rest)
	a.schedule()
}
