package src

import (
	"context"
	"errors"
	"evilboard/src/base"
	"evilboard/src/board"
	"evilboard/src/logic/keys"
	"math/rand/v2"
	"testing"
)

func newTestSession() *Session {
	ctrl := board.NewController(board.DefaultConfig(), nil, nil)
	return NewSession(NewBuilderBoard(nil), ctrl, nil)
}

func TestSessionClickMoves(t *testing.T) {
	s := newTestSession()
	s.Board.ClickSquare(sq("e2"))
	s.Board.ClickSquare(sq("e4"))
	s.Sync()
	if s.Builder.Plies() != 1 || s.Builder.Turn() != base.Black {
		t.Fatalf("e2e4 not played: %v", s.Builder.UCIMoves())
	}
	if lm := s.Board.Snapshot().LastMove; lm == nil || lm.To != sq("e4") {
		t.Fatalf("last move not forwarded: %v", lm)
	}
}

func TestSessionPremoveReplaysAfterOpponent(t *testing.T) {
	s := newTestSession()
	s.SetPlayer(base.White, true)
	s.Sync()
	s.Builder.SetRand(rand.New(rand.NewPCG(7, 7)))

	s.Board.ClickSquare(sq("e2"))
	s.Board.ClickSquare(sq("e4"))
	s.Sync()
	if !s.OpponentToMove() {
		t.Fatalf("black must be due to reply")
	}

	// premove while black thinks
	s.Board.ClickSquare(sq("g1"))
	s.Board.ClickSquare(sq("f3"))
	if _, ok := s.Board.Premove(); !ok {
		t.Fatalf("premove not armed")
	}

	if !s.PlayOpponent() {
		t.Fatalf("opponent must reply")
	}
	moves := s.Builder.UCIMoves()
	if len(moves) != 3 || moves[2] != "g1f3" {
		t.Fatalf("premove must replay after the reply, moves %v", moves)
	}
	if _, ok := s.Board.Premove(); ok {
		t.Fatalf("premove must clear after replay")
	}
}

func TestSessionHistoryIsViewOnly(t *testing.T) {
	s := newTestSession()
	if err := s.Load("e2e4 e7e5"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.HandleKey(keys.Event{Key: keys.KeyLeft})
	if s.Builder.MoveIndex() != 1 {
		t.Fatalf("left must step back, index %d", s.Builder.MoveIndex())
	}
	if s.Board.AttemptMove(sq("d7"), sq("d5"), base.NoRole) != board.MoveRejected {
		t.Fatalf("moves are rejected while viewing history")
	}
	s.HandleKey(keys.Event{Key: keys.KeyEnd})
	if !s.Builder.AtLatest() {
		t.Fatalf("end must jump to the last ply")
	}
	if s.Board.AttemptMove(sq("g1"), sq("f3"), base.NoRole) != board.MoveAccepted {
		t.Fatalf("moves resume at the last ply")
	}
}

func TestSessionLoadPlacement(t *testing.T) {
	s := newTestSession()
	if err := s.Load("4k3/8/8/8/8/8/8/4K3 w - - 0 1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.Builder.IsFree() || len(s.Board.Inputs().Position) != 2 {
		t.Fatalf("placement must open a free board")
	}
	if err := s.Load(""); err == nil {
		t.Fatalf("empty input must fail")
	}
	if err := s.Load("e2e5"); err == nil {
		t.Fatalf("illegal move list must fail")
	}
}

func TestSessionThreatToggle(t *testing.T) {
	s := newTestSession()
	if s.Threats() != nil {
		t.Fatalf("threats start hidden")
	}
	s.HandleKey(keys.Event{Key: keys.KeyThreat})
	// black attacks rank 6 and its own back ranks at the start
	if got := s.Threats(); len(got) == 0 || !containsSquare(got, sq("a6")) {
		t.Fatalf("threats %v", got)
	}
}

func containsSquare(list []base.Square, target base.Square) bool {
	for _, v := range list {
		if v == target {
			return true
		}
	}
	return false
}

type stubEngine struct {
	move string
	err  error
	fens []string
}

func (e *stubEngine) BestMove(ctx context.Context, fen string) (string, error) {
	e.fens = append(e.fens, fen)
	return e.move, e.err
}

func TestSessionEngineReply(t *testing.T) {
	tests := []struct {
		name   string
		eng    *stubEngine
		engine bool // false: a random move stands in
	}{
		{"engine move", &stubEngine{move: "c7c5"}, true},
		{"illegal engine move", &stubEngine{move: "c7c3"}, false},
		{"engine error", &stubEngine{err: errors.New("crashed")}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession()
			s.SetPlayer(base.White, true)
			s.SetEngine(tt.eng)
			s.Sync()
			if !s.Builder.MoveUCI("e2e4") {
				t.Fatalf("e2e4 must be legal")
			}
			s.Invalidate()
			s.Sync()
			fen := s.Builder.FEN()

			if !s.PlayOpponent() {
				t.Fatalf("opponent must reply")
			}
			if len(tt.eng.fens) != 1 || tt.eng.fens[0] != fen {
				t.Fatalf("engine asked with %v want %q", tt.eng.fens, fen)
			}
			moves := s.Builder.UCIMoves()
			if len(moves) != 2 {
				t.Fatalf("one reply expected, moves %v", moves)
			}
			if tt.engine && moves[1] != "c7c5" {
				t.Fatalf("engine move not played, got %q", moves[1])
			}
			if s.Builder.Turn() != base.White {
				t.Fatalf("white moves after the reply")
			}
		})
	}
}

func TestSessionStaleReplyDropped(t *testing.T) {
	s := newTestSession()
	s.SetPlayer(base.White, true)
	s.SetEngine(&stubEngine{move: "e7e5"})
	s.Sync()
	s.Builder.MoveUCI("e2e4")
	s.Invalidate()
	s.Sync()

	r := <-s.RequestReply(context.Background())
	s.NewGame()
	if s.ApplyReply(r) {
		t.Fatalf("reply for an abandoned position must be dropped")
	}
	if len(s.Builder.UCIMoves()) != 0 {
		t.Fatalf("new game must stay untouched, moves %v", s.Builder.UCIMoves())
	}
}
