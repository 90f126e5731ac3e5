package src

import (
	"evilboard/src/base"
	"evilboard/src/logic/convert/convfen"
	"evilboard/src/logx"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/corentings/chess/v2"
)

type ply struct {
	placement string
	move      *base.Move
	check     base.Color
}

// GameBuilder is the host side of a board: it owns the rules, the move list and
// the ply cursor. At first use one of the Create* methods.
type GameBuilder struct {
	game   *chess.Game // nil in free mode
	moves  []string    // UCI moves of game
	plies  []ply       // plies[0] is the start position
	cursor int
	logger logx.Logger
	rnd    *rand.Rand
}

func NewBuilderBoard(logger logx.Logger) *GameBuilder {
	if logger == nil {
		logger = logx.NewNop()
	}
	gb := &GameBuilder{logger: logger, rnd: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
	gb.CreateClassic()
	return gb
}

// SetRand fixes the opponent's randomness
func (gb *GameBuilder) SetRand(r *rand.Rand) {
	gb.rnd = r
}

func (gb *GameBuilder) CreateClassic() {
	gb.logger.Debug("create classic game")
	gb.reset(chess.NewGame())
}

// CreateFromMoves replays a list of UCI moves from the classic start
func (gb *GameBuilder) CreateFromMoves(moves []string) error {
	gb.logger.Debugf("create game by moves: %v", moves)
	gb.reset(chess.NewGame())
	for i, mv := range moves {
		mv = strings.ToLower(strings.TrimSpace(mv))
		if mv == "" {
			continue
		}
		if err := gb.push(mv); err != nil {
			gb.CreateClassic()
			return fmt.Errorf("error move %d %q: %w", i+1, mv, err)
		}
	}
	gb.cursor = len(gb.plies) - 1
	return nil
}

// CreateFree starts the editor: no rules, any piece may go anywhere
func (gb *GameBuilder) CreateFree(placement string) {
	pos := convfen.ParsePosition(placement)
	gb.logger.Debugf("create free board: %v", convfen.SerializePosition(pos))
	gb.game = nil
	gb.moves = nil
	gb.plies = []ply{{placement: convfen.SerializePosition(pos)}}
	gb.cursor = 0
}

func (gb *GameBuilder) reset(g *chess.Game) {
	gb.game = g
	gb.moves = nil
	gb.plies = []ply{{placement: placementOf(g.FEN())}}
	gb.cursor = 0
}

func (gb *GameBuilder) IsFree() bool {
	return gb.game == nil
}

func placementOf(fen string) string {
	if i := strings.IndexByte(fen, ' '); i >= 0 {
		return fen[:i]
	}
	return fen
}

func colorOf(c chess.Color) base.Color {
	switch c {
	case chess.White:
		return base.White
	case chess.Black:
		return base.Black
	default:
		return base.NoColor
	}
}

func promoLetter(r base.Role) string {
	switch r {
	case base.Queen:
		return "q"
	case base.Rook:
		return "r"
	case base.Bishop:
		return "b"
	case base.Knight:
		return "n"
	default:
		return ""
	}
}

func roleOfLetter(l byte) base.Role {
	for _, r := range base.PromotionRoles {
		if promoLetter(r) == string(l) {
			return r
		}
	}
	return base.NoRole
}

func roleOf(pt chess.PieceType) base.Role {
	switch pt {
	case chess.Queen:
		return base.Queen
	case chess.Rook:
		return base.Rook
	case chess.Bishop:
		return base.Bishop
	case chess.Knight:
		return base.Knight
	default:
		return base.NoRole
	}
}

// push applies one UCI move to the rules game and records the ply
func (gb *GameBuilder) push(uci string) error {
	if err := gb.game.PushNotationMove(uci, chess.UCINotation{}, nil); err != nil {
		return err
	}
	gb.moves = append(gb.moves, uci)

	moves := gb.game.Moves()
	last := moves[len(moves)-1]
	p := ply{
		placement: placementOf(gb.game.FEN()),
		move:      &base.Move{From: base.Square(last.S1()), To: base.Square(last.S2())},
	}
	if last.HasTag(chess.Check) {
		p.check = colorOf(gb.game.Position().Turn())
	}
	gb.plies = append(gb.plies, p)
	return nil
}

// rewind drops plies after the cursor, so a move from history starts a new line
func (gb *GameBuilder) rewind() error {
	if gb.cursor == len(gb.plies)-1 {
		return nil
	}
	gb.logger.Debugf("branch game at ply %d", gb.cursor)
	if gb.game == nil {
		gb.plies = gb.plies[:gb.cursor+1]
		return nil
	}
	keep := append([]string(nil), gb.moves[:gb.cursor]...)
	gb.reset(chess.NewGame())
	for _, mv := range keep {
		if err := gb.push(mv); err != nil {
			return err
		}
	}
	gb.cursor = len(gb.plies) - 1
	return nil
}

// Move plays from-to at the cursor. promo is ignored unless a pawn promotes.
func (gb *GameBuilder) Move(from, to base.Square, promo base.Role) bool {
	if !from.IsValid() || !to.IsValid() {
		return false
	}
	if err := gb.rewind(); err != nil {
		gb.logger.Errorf("error rewind: %v", err)
		return false
	}

	if gb.game == nil {
		pos := gb.Position()
		if _, ok := pos.At(from); !ok {
			return false
		}
		m := base.Move{From: from, To: to}
		next := pos.Relocate(from, to, promo)
		gb.plies = append(gb.plies, ply{placement: convfen.SerializePosition(next), move: &m})
		gb.cursor++
		gb.logger.Infof("free move %v", m)
		return true
	}

	if gb.game.Outcome() != chess.NoOutcome {
		return false
	}
	uci := from.String() + to.String()
	if pc, ok := gb.Position().At(from); ok && pc.Role == base.Pawn && (to.Rank() == 0 || to.Rank() == 7) {
		if promo == base.NoRole {
			promo = base.Queen
		}
		uci += promoLetter(promo)
	}
	if err := gb.push(uci); err != nil {
		gb.logger.Debugf("illegal move %v: %v", uci, err)
		return false
	}
	gb.cursor = len(gb.plies) - 1
	gb.logger.Infof("move %v", uci)
	return true
}

// MoveUCI plays a move written as e2e4 or e7e8q
func (gb *GameBuilder) MoveUCI(uci string) bool {
	uci = strings.ToLower(strings.TrimSpace(uci))
	if len(uci) != 4 && len(uci) != 5 {
		return false
	}
	from, ok := base.ParseSquare(uci[:2])
	if !ok {
		return false
	}
	to, ok := base.ParseSquare(uci[2:4])
	if !ok {
		return false
	}
	promo := base.NoRole
	if len(uci) == 5 {
		if promo = roleOfLetter(uci[4]); promo == base.NoRole {
			return false
		}
	}
	return gb.Move(from, to, promo)
}

// RandomMove plays a uniformly chosen legal move for the side to move
func (gb *GameBuilder) RandomMove() (base.Move, bool) {
	if gb.game == nil || !gb.AtLatest() || gb.game.Outcome() != chess.NoOutcome {
		return base.Move{}, false
	}
	valid := gb.game.ValidMoves()
	if len(valid) == 0 {
		return base.Move{}, false
	}
	mv := valid[gb.rnd.IntN(len(valid))]
	from, to := base.Square(mv.S1()), base.Square(mv.S2())
	if !gb.Move(from, to, roleOf(mv.Promo())) {
		return base.Move{}, false
	}
	return base.Move{From: from, To: to}, true
}

// LegalDests is the destination table for the board. It is nil in free mode and
// empty while an earlier ply is viewed or the game is over.
func (gb *GameBuilder) LegalDests() map[base.Square][]base.Square {
	if gb.game == nil {
		return nil
	}
	dests := map[base.Square][]base.Square{}
	if !gb.AtLatest() || gb.game.Outcome() != chess.NoOutcome {
		return dests
	}
	for _, mv := range gb.game.ValidMoves() {
		from, to := base.Square(mv.S1()), base.Square(mv.S2())
		if contains(dests[from], to) {
			continue // one entry per promotion role
		}
		dests[from] = append(dests[from], to)
	}
	return dests
}

func contains(list []base.Square, sq base.Square) bool {
	for _, s := range list {
		if s == sq {
			return true
		}
	}
	return false
}

// Turn is the side to move at the cursor, NoColor in free mode
func (gb *GameBuilder) Turn() base.Color {
	if gb.game == nil {
		return base.NoColor
	}
	if gb.cursor%2 == 0 {
		return base.White
	}
	return base.Black
}

func (gb *GameBuilder) Status() string {
	if gb.game == nil || gb.game.Outcome() == chess.NoOutcome {
		return ""
	}
	return fmt.Sprintf("%s (%s)", gb.game.Outcome(), gb.game.Method())
}

// Position at the cursor, a fresh map on every call
func (gb *GameBuilder) Position() base.Position {
	return convfen.ParsePosition(gb.plies[gb.cursor].placement)
}

func (gb *GameBuilder) Placement() string {
	return gb.plies[gb.cursor].placement
}

func (gb *GameBuilder) FEN() string {
	if gb.game == nil {
		return gb.Placement()
	}
	return gb.game.FEN()
}

func (gb *GameBuilder) UCIMoves() []string {
	return append([]string(nil), gb.moves...)
}

func (gb *GameBuilder) LastMove() *base.Move {
	return gb.plies[gb.cursor].move
}

// Check is the color in check at the cursor
func (gb *GameBuilder) Check() base.Color {
	return gb.plies[gb.cursor].check
}

// ---- History cursor ----

func (gb *GameBuilder) MoveIndex() int {
	return gb.cursor
}

func (gb *GameBuilder) Plies() int {
	return len(gb.plies) - 1
}

func (gb *GameBuilder) AtLatest() bool {
	return gb.cursor == len(gb.plies)-1
}

func (gb *GameBuilder) GotoMove(n int) bool {
	if n < 0 || n >= len(gb.plies) || n == gb.cursor {
		return false
	}
	gb.logger.Debugf("goto ply %d", n)
	gb.cursor = n
	return true
}

func (gb *GameBuilder) First() bool { return gb.GotoMove(0) }
func (gb *GameBuilder) Prev() bool  { return gb.GotoMove(gb.cursor - 1) }
func (gb *GameBuilder) Next() bool  { return gb.GotoMove(gb.cursor + 1) }
func (gb *GameBuilder) Last() bool  { return gb.GotoMove(len(gb.plies) - 1) }
