package cli

import (
	"bufio"
	"evilboard/src"
	"evilboard/src/base"
	"evilboard/src/logic/keys"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

type CLIProcessing struct {
	session *src.Session
	draw    DrawFunc
	in      *os.File
	out     io.Writer
}

func NewCLI(s *src.Session, draw DrawFunc) *CLIProcessing {
	return &CLIProcessing{session: s, draw: draw, in: os.Stdin, out: os.Stdout}
}

const help = "Type a square (e2) to click it, a move (e2e4), 'a e2 e4' for an arrow, 'm e4' for a mark,\r\n" +
	"q/r/b/n to promote, arrows or home/end to navigate, esc to deselect, 'f' flip, 'x' threats,\r\n" +
	"'new' new game, 'moves', 'quit' or Ctrl+C to exit.\r\n"

// raw processing
// - enter a command and press Enter
// - arrow keys navigate the plies without Enter
// - redraw board after every command
func (c *CLIProcessing) Run() error {
	fd := int(c.in.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return c.RunLineMode()
	}
	defer term.Restore(fd, oldState) //nolint:errcheck

	r := bufio.NewReader(c.in)
	var inputBuf strings.Builder

	c.redraw()
	fmt.Fprint(c.out, help)

	for {
		b, err := r.ReadByte()
		if err != nil {
			return err
		}

		if b == 3 { // Ctrl+C
			fmt.Fprint(c.out, "\r\nInterrupted\r\n")
			return nil
		}
		if b == 0x1b {
			// a lone escape has nothing buffered behind it
			if r.Buffered() == 0 {
				c.key(keys.KeyEscape)
				continue
			}
			b1, err := r.ReadByte()
			if err != nil || b1 != '[' {
				continue
			}
			b2, err := r.ReadByte()
			if err != nil {
				continue
			}
			c.key(csiKey(b2))
			continue
		}

		if b == '\r' || b == '\n' {
			line := inputBuf.String()
			inputBuf.Reset()
			fmt.Fprint(c.out, "\r\n")
			if quit := c.HandleLine(line); quit {
				fmt.Fprint(c.out, "Quitting\r\n")
				return nil
			}
			continue
		}
		if b == 127 || b == 8 { // backspace
			if s := inputBuf.String(); len(s) > 0 {
				inputBuf.Reset()
				inputBuf.WriteString(s[:len(s)-1])
				fmt.Fprint(c.out, "\b \b")
			}
			continue
		}
		if b >= 32 && b <= 126 {
			inputBuf.WriteByte(b)
			fmt.Fprintf(c.out, "%c", b)
		}
	}
}

func csiKey(b byte) keys.Key {
	switch b {
	case 'A':
		return keys.KeyUp
	case 'B':
		return keys.KeyDown
	case 'C':
		return keys.KeyRight
	case 'D':
		return keys.KeyLeft
	case 'H':
		return keys.KeyHome
	case 'F':
		return keys.KeyEnd
	default:
		return keys.KeyUnknown
	}
}

func (c *CLIProcessing) key(k keys.Key) {
	if c.session.HandleKey(keys.Event{Key: k}) {
		c.redraw()
	}
}

// HandleLine runs one command. It reports whether the user asked to quit.
func (c *CLIProcessing) HandleLine(line string) bool {
	line = strings.ToLower(strings.TrimSpace(line))
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	ctrl := c.session.Board

	if ctrl.PendingPromotion() != nil && len(line) == 1 {
		if role := base.RoleFromRune(rune(line[0])); role != base.NoRole {
			ctrl.ResolvePromotion(role)
			c.afterMove()
			return false
		}
	}

	switch fields[0] {
	case "quit", "exit":
		return true
	case "q":
		if ctrl.PendingPromotion() == nil {
			return true
		}
	case "new":
		c.session.NewGame()
		c.redraw()
		return false
	case "moves":
		fmt.Fprintf(c.out, "Moves: %s\r\n", strings.Join(c.session.Builder.UCIMoves(), " "))
		return false
	case "fen":
		fmt.Fprintf(c.out, "FEN: %s\r\n", c.session.Builder.FEN())
		return false
	case "f", "x":
		c.key(keys.FromRune(rune(line[0])))
		return false
	case "a", "m":
		c.overlay(fields)
		return false
	}

	switch len(line) {
	case 2:
		if sq, ok := base.ParseSquare(line); ok {
			ctrl.ClickSquare(sq)
			c.afterMove()
			return false
		}
	case 4, 5:
		from, ok1 := base.ParseSquare(line[:2])
		to, ok2 := base.ParseSquare(line[2:4])
		if ok1 && ok2 {
			ctrl.ClickSquare(from)
			ctrl.ClickSquare(to)
			if len(line) == 5 && ctrl.PendingPromotion() != nil {
				ctrl.ResolvePromotion(base.RoleFromRune(rune(line[4])))
			}
			c.afterMove()
			return false
		}
	}
	fmt.Fprintf(c.out, "Unknown command: %s\r\n", line)
	return false
}

func (c *CLIProcessing) overlay(fields []string) {
	ctrl := c.session.Board
	switch {
	case fields[0] == "a" && len(fields) == 3:
		from, ok1 := base.ParseSquare(fields[1])
		to, ok2 := base.ParseSquare(fields[2])
		if ok1 && ok2 {
			ctrl.ToggleArrow(base.Arrow{From: from, To: to, Brush: base.BrushGreen})
		}
	case fields[0] == "m" && len(fields) == 2:
		if sq, ok := base.ParseSquare(fields[1]); ok {
			ctrl.ToggleMark(base.Mark{Square: sq, Brush: base.BrushGreen})
		}
	default:
		fmt.Fprint(c.out, "Usage: a <from> <to> | m <square>\r\n")
		return
	}
	c.redraw()
}

// afterMove syncs the session and lets the opponent reply
func (c *CLIProcessing) afterMove() {
	c.session.Sync()
	if c.session.PlayOpponent() {
		fmt.Fprintf(c.out, "Opponent: %v\r\n", c.session.Builder.LastMove())
	}
	c.redraw()
}

func (c *CLIProcessing) RunLineMode() error {
	scanner := bufio.NewScanner(c.in)
	c.redraw()
	fmt.Fprint(c.out, help)
	for scanner.Scan() {
		switch strings.TrimSpace(scanner.Text()) {
		case "undo", "prev":
			c.key(keys.KeyLeft)
			continue
		case "redo", "next":
			c.key(keys.KeyRight)
			continue
		case "esc":
			c.key(keys.KeyEscape)
			continue
		}
		if c.HandleLine(scanner.Text()) {
			return nil
		}
	}
	return scanner.Err()
}

func (c *CLIProcessing) redraw() {
	c.draw(c.out, View{
		Position: c.session.Board.Inputs().Position,
		Snapshot: c.session.Board.Snapshot(),
		Threats:  c.session.Threats(),
		Status:   c.session.Status(),
	})
}
