package src

import (
	"context"
	"evilboard/src/base"
	"evilboard/src/board"
	"evilboard/src/engine"
	"evilboard/src/logic/keys"
	"evilboard/src/logic/premove"
	"evilboard/src/logx"
	"fmt"
	"strings"
)

// Session binds a GameBuilder to a board controller. Hosts feed events to the
// controller and call Sync once per event batch.
type Session struct {
	Builder *GameBuilder
	Board   *board.Controller
	logger  logx.Logger

	cfg      board.Config
	player   base.Color // NoColor: the user plays both sides
	opponent bool
	engine   engine.Engine // nil: random replies
	threats  bool
	dirty    bool
}

func NewSession(gb *GameBuilder, ctrl *board.Controller, logger logx.Logger) *Session {
	if logger == nil {
		logger = logx.NewNop()
	}
	s := &Session{Builder: gb, Board: ctrl, logger: logger, cfg: ctrl.Config(), dirty: true}
	s.Sync()
	return s
}

// SetPlayer picks the user's color; with opponent set the other side replies
// with random moves
func (s *Session) SetPlayer(c base.Color, opponent bool) {
	s.player = c
	s.opponent = opponent && c != base.NoColor
	s.Board.SetOrientation(c != base.Black)
	s.Invalidate()
}

// SetBoardConfig replaces the user's board settings; history views still force
// view only
func (s *Session) SetBoardConfig(cfg board.Config) {
	s.cfg = cfg
	s.Invalidate()
	s.Sync()
}

func (s *Session) Player() base.Color {
	return s.player
}

// Invalidate marks the host state as changed outside the controller
func (s *Session) Invalidate() {
	s.dirty = true
}

func (s *Session) Inputs() board.Inputs {
	in := board.Inputs{
		Position:  s.Builder.Position(),
		Dests:     s.Builder.LegalDests(),
		MoveIndex: s.Builder.MoveIndex(),
		OnMove:    s.onMove,
		LastMove:  s.Builder.LastMove(),
		Check:     s.Builder.Check(),
	}
	if s.Builder.IsFree() {
		in.Mode = board.FreeMode{}
	} else {
		in.Mode = board.TurnAware{Turn: s.Builder.Turn(), Movable: s.player}
	}
	return in
}

// Sync pushes builder state into the controller until it settles; a replayed
// premove changes the builder again
func (s *Session) Sync() {
	for i := 0; s.dirty && i < 4; i++ {
		s.dirty = false
		cfg := s.cfg
		cfg.ViewOnly = s.cfg.ViewOnly || !s.Builder.AtLatest()
		s.Board.SetConfig(cfg)
		s.Board.Update(s.Inputs())
	}
}

func (s *Session) onMove(from, to base.Square, promo base.Role) bool {
	if !s.Builder.Move(from, to, promo) {
		return false
	}
	s.dirty = true
	return true
}

// SetEngine makes the opponent ask e for its moves
func (s *Session) SetEngine(e engine.Engine) {
	s.engine = e
}

// OpponentToMove reports whether the opponent owes a reply
func (s *Session) OpponentToMove() bool {
	return s.opponent && !s.Builder.IsFree() && s.Builder.AtLatest() &&
		s.Builder.Status() == "" && s.Builder.Turn() == s.player.Opposite()
}

// Reply answers the position in FEN; an empty Move asks for a random one
type Reply struct {
	FEN  string
	Move string
	Err  error
}

// RequestReply asks the engine in the background, without one the reply is
// ready at once. The host applies it with ApplyReply from its own loop.
func (s *Session) RequestReply(ctx context.Context) <-chan Reply {
	ch := make(chan Reply, 1)
	fen := s.Builder.FEN()
	eng := s.engine
	if eng == nil {
		ch <- Reply{FEN: fen}
		return ch
	}
	go func() {
		ctx, cancel := context.WithTimeout(ctx, engine.UCIBestMoveTimeout)
		defer cancel()
		mv, err := eng.BestMove(ctx, fen)
		ch <- Reply{FEN: fen, Move: mv, Err: err}
	}()
	return ch
}

// ApplyReply plays r if the game still waits for it. A failed or illegal
// engine answer falls back to a random move.
func (s *Session) ApplyReply(r Reply) bool {
	if !s.OpponentToMove() || s.Builder.FEN() != r.FEN {
		s.logger.Debug("drop stale opponent reply")
		return false
	}
	if r.Err != nil {
		s.logger.Warnf("engine failed, random reply: %v", r.Err)
	}
	played := r.Move != "" && s.Builder.MoveUCI(r.Move)
	if !played {
		if r.Move != "" {
			s.logger.Warnf("engine move %q rejected, random reply", r.Move)
		}
		if _, ok := s.Builder.RandomMove(); !ok {
			return false
		}
	}
	moves := s.Builder.UCIMoves()
	s.logger.Infof("opponent plays %v", moves[len(moves)-1])
	s.dirty = true
	s.Sync()
	return true
}

// PlayOpponent waits for the reply; hosts with a frame loop use RequestReply
func (s *Session) PlayOpponent() bool {
	if !s.OpponentToMove() {
		return false
	}
	return s.ApplyReply(<-s.RequestReply(context.Background()))
}

// Threats lists squares the side not to move attacks, while the toggle is on
func (s *Session) Threats() []base.Square {
	if !s.threats {
		return nil
	}
	turn := s.Builder.Turn()
	if turn == base.NoColor {
		return nil
	}
	return premove.Threats(s.Builder.Position(), turn.Opposite())
}

func (s *Session) NewGame() {
	s.Builder.CreateClassic()
	s.Board.ClearOverlays()
	s.Board.Deselect()
	s.dirty = true
	s.Sync()
}

// Load reads either a placement (free board) or a list of UCI moves
func (s *Session) Load(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("empty input")
	}
	if strings.Contains(text, "/") {
		s.Builder.CreateFree(text)
	} else if err := s.Builder.CreateFromMoves(strings.Fields(text)); err != nil {
		return fmt.Errorf("error load moves: %w", err)
	}
	s.Board.ClearOverlays()
	s.Board.Deselect()
	s.dirty = true
	s.Sync()
	return nil
}

func (s *Session) navigate(step func() bool) func() {
	return func() {
		if step() {
			s.dirty = true
			s.Sync()
		}
	}
}

func (s *Session) KeyHandlers() keys.Handlers {
	return keys.Handlers{
		OnPrev:     s.navigate(s.Builder.Prev),
		OnNext:     s.navigate(s.Builder.Next),
		OnFirst:    s.navigate(s.Builder.First),
		OnLast:     s.navigate(s.Builder.Last),
		OnFlip:     s.Board.Flip,
		OnThreat:   func() { s.threats = !s.threats },
		OnDeselect: s.Board.Deselect,
	}
}

// HandleKey routes one key press and syncs the result
func (s *Session) HandleKey(ev keys.Event) bool {
	ok := keys.Route(ev, s.KeyHandlers())
	s.Sync()
	return ok
}

func (s *Session) Status() string {
	if st := s.Builder.Status(); st != "" {
		return st
	}
	if s.Builder.IsFree() {
		return "free board"
	}
	return fmt.Sprintf("%s to move", s.Builder.Turn())
}
