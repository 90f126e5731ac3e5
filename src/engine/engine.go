package engine

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const (
	UCIHandshakeTimeout = 2 * time.Second  // uci / isready
	UCIBestMoveTimeout  = 30 * time.Second // go ...
	StopAnalyzeTimeout  = 5 * time.Second  // stop -> bestmove
	QuitTimeout         = 2 * time.Second  // quit -> process exit
)

// Engine picks a reply for the position in FEN, in UCI notation (e7e5, a2a1q)
type Engine interface {
	BestMove(ctx context.Context, fen string) (string, error)
}

type SearchParams struct {
	MaxDepth int           // 0 = unlimited
	MoveTime time.Duration // 0 with MaxDepth 0 falls back to DefaultMoveTime
}

const DefaultMoveTime = 500 * time.Millisecond

// GoCommand renders the UCI "go" line for the params
func (p SearchParams) GoCommand() string {
	var b strings.Builder
	b.WriteString("go")
	if p.MaxDepth > 0 {
		fmt.Fprintf(&b, " depth %d", p.MaxDepth)
	}
	mt := p.MoveTime
	if mt <= 0 && p.MaxDepth <= 0 {
		mt = DefaultMoveTime
	}
	if mt > 0 {
		fmt.Fprintf(&b, " movetime %d", mt.Milliseconds())
	}
	return b.String()
}
