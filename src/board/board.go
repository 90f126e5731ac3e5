// Package board is the interaction state machine of one chessboard.
//
// A Controller consumes pointer and key gestures plus host inputs (position,
// legal destinations, turn) and exposes selection, destination highlights, drag,
// pending promotion, arrows and marks through Snapshot. It never decides chess
// legality and never renders.
package board

import (
	"evilboard/src/base"
	"evilboard/src/logic/anim"
	"evilboard/src/logic/coords"
	"evilboard/src/logx"
	"time"
)

// pointer travel (px) after which a press becomes a drag
const DragThreshold = 4.0

type MoveResult int

const (
	MoveRejected MoveResult = iota // not attempted: no callback, view only, or not in table
	MoveDeclined                   // callback returned false
	MovePending                    // waiting for a promotion choice
	MoveAccepted
)

func (r MoveResult) String() string {
	switch r {
	case MoveDeclined:
		return "declined"
	case MovePending:
		return "pending"
	case MoveAccepted:
		return "accepted"
	default:
		return "rejected"
	}
}

// MoveFunc is the host's move acceptance callback. promo is NoRole unless a
// promotion was chosen.
type MoveFunc func(from, to base.Square, promo base.Role) bool

type PremoveConfig struct {
	Enabled bool
	OnSet   func(m base.Move)
	OnUnset func()
}

type Config struct {
	ViewOnly          bool
	Dragging          bool
	Arrows            bool
	SnapArrows        bool
	Premove           PremoveConfig
	ShowAnimations    bool
	AnimationDuration time.Duration
}

func DefaultConfig() Config {
	return Config{
		Dragging:          true,
		Arrows:            true,
		SnapArrows:        true,
		Premove:           PremoveConfig{Enabled: true},
		ShowAnimations:    true,
		AnimationDuration: 300 * time.Millisecond,
	}
}

// Inputs is everything the host owns. It is replaced wholesale by Update.
type Inputs struct {
	Position base.Position
	// nil means any destination is accepted
	Dests     map[base.Square][]base.Square
	Mode      Mode
	MoveIndex int
	OnMove    MoveFunc

	// host-stored premove; nil keeps the premove inside the controller. Once
	// played or unset, the host copy is ignored until the host passes nil or
	// a different move.
	Premove *base.Move

	// Arrows non-nil: globally controlled. ArrowsByIndex non-nil: controlled per
	// move index. Otherwise arrows live in the controller keyed by MoveIndex.
	Arrows         []base.Arrow
	ArrowsByIndex  map[int][]base.Arrow
	OnArrowsChange func(index int, arrows []base.Arrow)

	Marks         []base.Mark
	MarksByIndex  map[int][]base.Mark
	OnMarksChange func(index int, marks []base.Mark)

	LastMove *base.Move
	// color whose king is in check
	Check base.Color
}

type DragState struct {
	Origin         base.Square
	Piece          base.Piece
	StartX, StartY float64
	X, Y           float64
	Started        bool
}

type Promotion struct {
	From  base.Square
	To    base.Square
	Color base.Color
}

type arrowDraw struct {
	origin base.Square
	brush  base.Brush
	x, y   float64
}

type Controller struct {
	cfg    Config
	in     Inputs
	logger logx.Logger
	anim   *anim.Animator

	rect        coords.Rect
	whiteBottom bool

	selected  base.Square
	legal     []base.Square
	premoves  []base.Square
	premove   *base.Move
	spent     *base.Move // host premove already played or unset
	promotion *Promotion
	drag      *DragState
	pressed   base.Square
	drawing   *arrowDraw
	hover     base.Square

	arrows map[int][]base.Arrow
	marks  map[int][]base.Mark
}

// NewController creates a controller with white at the bottom. sched may be nil,
// in which case positions change without animation.
func NewController(cfg Config, sched anim.Scheduler, logger logx.Logger) *Controller {
	if logger == nil {
		logger = logx.NewNop()
	}
	c := &Controller{
		cfg:         cfg,
		logger:      logger,
		whiteBottom: true,
		selected:    base.NoSquare,
		pressed:     base.NoSquare,
		hover:       base.NoSquare,
		arrows:      map[int][]base.Arrow{},
		marks:       map[int][]base.Mark{},
		in:          Inputs{Position: base.Position{}, Mode: FreeMode{}},
	}
	if sched != nil {
		c.anim = anim.NewAnimator(sched, time.Now, logger)
	}
	return c
}

// WithClock swaps the animation clock, for tests and replays
func (c *Controller) WithClock(sched anim.Scheduler, now func() time.Time) *Controller {
	c.anim = anim.NewAnimator(sched, now, c.logger)
	return c
}

func (c *Controller) Config() Config {
	return c.cfg
}

func (c *Controller) SetConfig(cfg Config) {
	c.cfg = cfg
	if !cfg.Premove.Enabled {
		c.unsetPremove()
	}
}

func (c *Controller) Animator() *anim.Animator {
	return c.anim
}

// SetBounds is the board rectangle in the same pixel space as pointer events
func (c *Controller) SetBounds(r coords.Rect) {
	c.rect = r
}

func (c *Controller) Bounds() coords.Rect {
	return c.rect
}

func (c *Controller) SetOrientation(whiteBottom bool) {
	c.whiteBottom = whiteBottom
}

func (c *Controller) WhiteBottom() bool {
	return c.whiteBottom
}

func (c *Controller) Flip() {
	c.whiteBottom = !c.whiteBottom
}

func (c *Controller) Inputs() Inputs {
	return c.in
}

// Update installs new host inputs. A position that differs by value starts an
// animation; a turn change replays a stored premove.
func (c *Controller) Update(in Inputs) {
	if in.Mode == nil {
		in.Mode = FreeMode{}
	}
	if in.Position == nil {
		in.Position = base.Position{}
	}
	prev := c.in
	c.in = in
	if c.spent != nil && (in.Premove == nil || *in.Premove != *c.spent) {
		c.spent = nil
	}

	if !prev.Position.Equal(in.Position) {
		c.onPositionChange(prev.Position)
	}
	if c.promotion != nil && !c.promotionHolds() {
		c.logger.Debugf("promotion %v%v dropped by new inputs", c.promotion.From, c.promotion.To)
		c.promotion = nil
		c.clearSelection()
	}
	if c.selected.IsValid() {
		c.refreshDests(c.selected)
	}
	c.replayPremove()
}

func (c *Controller) onPositionChange(prev base.Position) {
	if c.anim != nil {
		if c.cfg.ShowAnimations {
			c.anim.Start(prev, c.in.Position, c.cfg.AnimationDuration)
		} else {
			c.anim.Stop()
		}
	}
	if c.selected.IsValid() {
		before, _ := prev.At(c.selected)
		after, ok := c.in.Position.At(c.selected)
		if !ok || before != after {
			c.clearSelection()
		}
	}
	if c.drag != nil {
		if pc, ok := c.in.Position.At(c.drag.Origin); !ok || pc != c.drag.Piece {
			c.logger.Debugf("drag from %v cancelled by position change", c.drag.Origin)
			c.drag = nil
			c.hover = base.NoSquare
		}
	}
}

func (c *Controller) canMove(col base.Color) bool {
	return !c.cfg.ViewOnly && c.in.Mode.canMove(col)
}

func (c *Controller) canPremove(col base.Color) bool {
	return !c.cfg.ViewOnly && c.cfg.Premove.Enabled && c.in.Mode.canPremove(col)
}

func (c *Controller) squareAt(x, y float64) (base.Square, bool) {
	return coords.ScreenToSquare(x, y, c.whiteBottom, c.rect)
}

func (c *Controller) clearSelection() {
	c.selected = base.NoSquare
	c.legal = nil
	c.premoves = nil
}

func (c *Controller) selectSquare(sq base.Square) {
	c.selected = sq
	c.refreshDests(sq)
}

func (c *Controller) refreshDests(sq base.Square) {
	c.legal, c.premoves = nil, nil
	pc, ok := c.in.Position.At(sq)
	if !ok {
		return
	}
	switch {
	case c.canMove(pc.Color):
		if c.in.Dests != nil {
			c.legal = append([]base.Square(nil), c.in.Dests[sq]...)
		}
	case c.canPremove(pc.Color):
		c.premoves = premoveDests(sq, pc, c.in.Position)
	}
}

// CancelGesture drops any drag or arrow in progress without side effects
func (c *Controller) CancelGesture() {
	c.drag = nil
	c.drawing = nil
	c.pressed = base.NoSquare
	c.hover = base.NoSquare
}

// Deselect dismisses a pending promotion, otherwise clears the selection
func (c *Controller) Deselect() {
	if c.promotion != nil {
		c.DismissPromotion()
		return
	}
	c.CancelGesture()
	c.clearSelection()
}
