package gdraw

import (
	"context"
	"evilboard/src"
	"evilboard/src/base"
	"evilboard/src/board"
	"evilboard/src/logic/coords"
	"evilboard/src/logic/keys"
	"evilboard/src/logic/premove"
	"evilboard/ui/gui/gbase"
	"evilboard/ui/gui/gctx"
	"evilboard/ui/gui/ghelper"
	"evilboard/ui/gui/ghelper/gclipboard"
	"evilboard/ui/gui/ghelper/gdialog"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// the opponent waits a little so its move can be followed
const opponentDelay = 600 * time.Millisecond

// GUIPlayDrawer implements Scene for the board
type GUIPlayDrawer struct {
	// layout
	boardX, boardY int
	boardSize      int
	sqSize         int
	border         *ebiten.Image

	// buttons
	buttons     []*gbase.Button
	idxNew      int
	idxFlip     int
	idxBack     int
	idxForward  int
	idxOpen     int
	idxCopy     int
	idxPaste    int
	idxSettings int
	idxExit     int

	msg *gbase.MessageBox

	lastTick   time.Time
	lastX      int
	lastY      int
	opponentAt time.Time
	reply      <-chan src.Reply // engine search in flight
	announced  string
}

func NewGUIPlayDrawer(ctx *gctx.GUIGameContext) *GUIPlayDrawer {
	pd := &GUIPlayDrawer{
		msg:       &gbase.MessageBox{},
		lastTick:  time.Now(),
		announced: ctx.Session.Builder.Status(),
	}
	pd.recalcLayout(ctx)
	pd.makeLayoutButtons(ctx)
	return pd
}

func (pd *GUIPlayDrawer) recalcLayout(ctx *gctx.GUIGameContext) {
	x, y, size := boardLayout(ctx.Config.WindowW, ctx.Config.WindowH)
	if size != pd.boardSize || pd.border == nil {
		pd.border = ghelper.RenderRoundedRect(size+8, size+8, 6, ctx.Theme.ButtonFill, ctx.Theme.ButtonStroke, 2)
	}
	pd.boardX, pd.boardY, pd.boardSize = x, y, size
	pd.sqSize = size / 8
	ctx.Session.Board.SetBounds(pd.rect())
}

func (pd *GUIPlayDrawer) rect() coords.Rect {
	return coords.Rect{X: float64(pd.boardX), Y: float64(pd.boardY), W: float64(pd.boardSize), H: float64(pd.boardSize)}
}

func (pd *GUIPlayDrawer) makeLayoutButtons(ctx *gctx.GUIGameContext) {
	pd.buttons = []*gbase.Button{}

	addBtn := func(label string, x, y, w, h int) int {
		img := ghelper.RenderRoundedRect(w, h, 12, ctx.Theme.ButtonFill, ctx.Theme.ButtonStroke, 3)
		b := gbase.NewButton(label, x, y, w, h, img)
		idx := len(pd.buttons)
		pd.buttons = append(pd.buttons, b)
		return idx
	}

	x := pd.boardX + pd.boardSize + 30
	y := pd.boardY + 90
	w, h := 160, 40
	half := (w - 10) / 2
	pd.idxNew = addBtn(ctx.Lang.T("button.new"), x, y, w, h)
	y += h + 10
	pd.idxBack = addBtn(ctx.Lang.T("button.back"), x, y, half, h)
	pd.idxForward = addBtn(ctx.Lang.T("button.forward"), x+half+10, y, half, h)
	y += h + 10
	pd.idxFlip = addBtn(ctx.Lang.T("button.flip"), x, y, w, h)
	y += h + 24
	pd.idxOpen = addBtn(ctx.Lang.T("button.open"), x, y, w, h)
	y += h + 10
	pd.idxCopy = addBtn(ctx.Lang.T("button.copy"), x, y, half, h)
	pd.idxPaste = addBtn(ctx.Lang.T("button.paste"), x+half+10, y, half, h)
	y += h + 24
	pd.idxSettings = addBtn(ctx.Lang.T("button.settings"), x, y, w, h)
	y += h + 10
	pd.idxExit = addBtn(ctx.Lang.T("button.exit"), x, y, w, h)
}

// Update
func (pd *GUIPlayDrawer) Update(ctx *gctx.GUIGameContext) (SceneType, error) {
	pd.recalcLayout(ctx)
	// animation frames requested during the previous tick
	ctx.Frames.Flush()

	now := time.Now()
	dt := now.Sub(pd.lastTick).Seconds()
	pd.lastTick = now

	mx, my := ebiten.CursorPosition()
	justPressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	justReleased := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	pd.msg.Tick(dt)
	if pd.msg.Open {
		if justPressed && !pd.msg.Animating {
			pd.msg.Collapse()
		}
		return SceneNotChanged, nil
	}

	s := ctx.Session
	for i, b := range pd.buttons {
		clicked := b.HandleInput(mx, my, justPressed, justReleased)
		b.UpdateAnim(dt)
		if !clicked {
			continue
		}
		switch i {
		case pd.idxNew:
			s.NewGame()
			pd.announced = ""
		case pd.idxFlip:
			s.HandleKey(keys.Event{Key: keys.KeyFlip})
		case pd.idxBack:
			s.HandleKey(keys.Event{Key: keys.KeyLeft})
		case pd.idxForward:
			s.HandleKey(keys.Event{Key: keys.KeyRight})
		case pd.idxOpen:
			pd.openFile(ctx)
		case pd.idxCopy:
			pd.copyPlacement(ctx)
		case pd.idxPaste:
			pd.paste(ctx)
		case pd.idxSettings:
			return SceneSettings, nil
		case pd.idxExit:
			return SceneNotChanged, gbase.ErrExit
		}
	}

	if s.Board.PendingPromotion() != nil {
		pd.updatePromotion(ctx, mx, my, justPressed)
	} else {
		pd.updatePointer(ctx, mx, my)
		pd.updateKeys(ctx)
	}
	s.Sync()
	pd.updateOpponent(ctx, now)

	if st := s.Builder.Status(); st != pd.announced {
		pd.announced = st
		if st != "" && s.Builder.AtLatest() {
			pd.msg.Show(ctx.Lang.T("message.game_over")+": "+st, nil)
		}
	}
	return SceneNotChanged, nil
}

// updatePointer forwards mouse state to the controller as pointer events
func (pd *GUIPlayDrawer) updatePointer(ctx *gctx.GUIGameContext, mx, my int) {
	ctrl := ctx.Session.Board
	ev := board.PointerEvent{X: float64(mx), Y: float64(my), Mods: modifiers(ebiten.IsKeyPressed)}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		ev.Button = board.ButtonLeft
		ctrl.PointerDown(ev)
	} else if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		ev.Button = board.ButtonRight
		ctrl.PointerDown(ev)
	}

	if mx != pd.lastX || my != pd.lastY {
		pd.lastX, pd.lastY = mx, my
		switch {
		case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
			ev.Button = board.ButtonLeft
			ctrl.PointerMove(ev)
		case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
			ev.Button = board.ButtonRight
			ctrl.PointerMove(ev)
		}
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		ev.Button = board.ButtonLeft
		ctrl.PointerUp(ev)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) {
		ev.Button = board.ButtonRight
		ctrl.PointerUp(ev)
	}
}

func (pd *GUIPlayDrawer) updateKeys(ctx *gctx.GUIGameContext) {
	s := ctx.Session
	for ek, k := range keyTable {
		if inpututil.IsKeyJustPressed(ek) {
			s.HandleKey(keys.Event{Key: k})
		}
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		s.NewGame()
		pd.announced = ""
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		pd.openFile(ctx)
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		pd.copyPlacement(ctx)
	case inpututil.IsKeyJustPressed(ebiten.KeyV):
		pd.paste(ctx)
	}
}

// updatePromotion keeps the picker modal: a choice resolves, anything else
// cancels
func (pd *GUIPlayDrawer) updatePromotion(ctx *gctx.GUIGameContext, mx, my int, justPressed bool) {
	ctrl := ctx.Session.Board
	p := ctrl.PendingPromotion()
	for ek, role := range promoKeys {
		if inpututil.IsKeyJustPressed(ek) {
			ctrl.ResolvePromotion(role)
			return
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		ctrl.DismissPromotion()
		return
	}
	if !justPressed {
		return
	}
	cells := promotionCells(p.To, ctrl.WhiteBottom(), pd.rect())
	if role := roleAt(cells, float64(mx), float64(my)); role != base.NoRole {
		ctrl.ResolvePromotion(role)
		return
	}
	ctrl.DismissPromotion()
}

func (pd *GUIPlayDrawer) updateOpponent(ctx *gctx.GUIGameContext, now time.Time) {
	s := ctx.Session
	if pd.reply != nil {
		select {
		case r := <-pd.reply:
			pd.reply = nil
			s.ApplyReply(r)
		default:
		}
		return
	}
	if !s.OpponentToMove() {
		pd.opponentAt = time.Time{}
		return
	}
	if pd.opponentAt.IsZero() {
		pd.opponentAt = now.Add(opponentDelay)
		return
	}
	if now.After(pd.opponentAt) {
		pd.opponentAt = time.Time{}
		pd.reply = s.RequestReply(context.Background())
	}
}

func (pd *GUIPlayDrawer) openFile(ctx *gctx.GUIGameContext) {
	res, err := gdialog.OpenFile(ctx.Lang.T("button.open"))
	if gdialog.IsCancelled(err) {
		return
	}
	if err != nil {
		ctx.Logx.Errorf("error open file: %v", err)
		pd.msg.Show(ctx.Lang.T("message.load_error"), nil)
		return
	}
	pd.load(ctx, string(res.Data))
}

func (pd *GUIPlayDrawer) paste(ctx *gctx.GUIGameContext) {
	data, err := gclipboard.ReadAll()
	if err != nil {
		ctx.Logx.Errorf("error read clipboard: %v", err)
		pd.msg.Show(ctx.Lang.T("message.clipboard_error"), nil)
		return
	}
	pd.load(ctx, data)
}

func (pd *GUIPlayDrawer) load(ctx *gctx.GUIGameContext, data string) {
	if err := ctx.Session.Load(data); err != nil {
		ctx.Logx.Errorf("error load game: %v", err)
		pd.msg.Show(ctx.Lang.T("message.load_error"), nil)
		return
	}
	pd.announced = ctx.Session.Builder.Status()
}

func (pd *GUIPlayDrawer) copyPlacement(ctx *gctx.GUIGameContext) {
	if err := gclipboard.WriteAll(ctx.Session.Builder.Placement()); err != nil {
		ctx.Logx.Errorf("error write clipboard: %v", err)
		pd.msg.Show(ctx.Lang.T("message.clipboard_error"), nil)
		return
	}
	pd.msg.Show(ctx.Lang.T("message.copied"), nil)
}

// Draw
func (pd *GUIPlayDrawer) Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(pd.boardX-4), float64(pd.boardY-4))
	screen.DrawImage(pd.border, op)

	ctrl := ctx.Session.Board
	snap := ctrl.Snapshot()
	pd.drawSquares(ctx, screen, snap)
	pd.drawCoords(ctx, screen, snap.WhiteBottom)
	pd.drawDests(ctx, screen, snap)
	pd.drawPieces(ctx, screen, snap)
	pd.drawOverlays(screen, snap)
	if snap.Promotion != nil {
		pd.drawPromotion(ctx, screen, snap)
	}
	pd.drawPanel(ctx, screen)

	if pd.msg.Open || pd.msg.Animating {
		DrawModal(ctx, pd.msg.Scale, pd.msg.Text, screen)
	}
	if ctx.Config.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f", ebiten.ActualTPS()))
	}
}

// squareXY is the top-left pixel of sq on screen
func (pd *GUIPlayDrawer) squareXY(sq base.Square, whiteBottom bool) (float64, float64) {
	p, _ := coords.SquareToBoardPos(sq)
	x, y := coords.BoardPosToOffset(p, whiteBottom, float64(pd.boardSize), float64(pd.boardSize))
	return float64(pd.boardX) + x, float64(pd.boardY) + y
}

func (pd *GUIPlayDrawer) drawSquares(ctx *gctx.GUIGameContext, screen *ebiten.Image, snap board.Snapshot) {
	size := float64(pd.sqSize)
	threats := ctx.Session.Threats()
	for _, sq := range base.AllSquares() {
		x, y := pd.squareXY(sq, snap.WhiteBottom)
		col := ctx.Theme.LightSq
		if (sq.File()+sq.Rank())%2 == 0 {
			col = ctx.Theme.DarkSq
		}
		ghelper.FillRect(screen, x, y, size, size, col)

		switch {
		case sq == snap.Selected:
			ghelper.FillRect(screen, x, y, size, size, ctx.Theme.Selected)
		case sq == snap.Check:
			ghelper.DrawDot(screen, x+size/2, y+size/2, size/2, ctx.Theme.Check)
		case snap.Premove != nil && (sq == snap.Premove.From || sq == snap.Premove.To):
			ghelper.FillRect(screen, x, y, size, size, ctx.Theme.Premove)
		case snap.LastMove != nil && (sq == snap.LastMove.From || sq == snap.LastMove.To):
			ghelper.FillRect(screen, x, y, size, size, ctx.Theme.LastMove)
		}
		if premove.Contains(threats, sq) {
			ghelper.FillRect(screen, x, y, size, size, ctx.Theme.Threat)
		}
		if sq == snap.Hover && snap.Drag != nil {
			ghelper.DrawRectStroke(screen, x, y, size, size, 3, ctx.Theme.Accent)
		}
	}
}

func (pd *GUIPlayDrawer) drawCoords(ctx *gctx.GUIGameContext, screen *ebiten.Image, whiteBottom bool) {
	for i := 0; i < 8; i++ {
		file, rank := i, i
		if !whiteBottom {
			file, rank = 7-i, 7-i
		}
		fx := pd.boardX + i*pd.sqSize + pd.sqSize - 10
		text.Draw(screen, string(rune('a'+file)), ctx.Fonts.Small, fx, pd.boardY+pd.boardSize-4, ctx.Theme.ButtonStroke)
		ry := pd.boardY + (7-i)*pd.sqSize + 14
		text.Draw(screen, fmt.Sprint(rank+1), ctx.Fonts.Small, pd.boardX+3, ry, ctx.Theme.ButtonStroke)
	}
}

func (pd *GUIPlayDrawer) drawDests(ctx *gctx.GUIGameContext, screen *ebiten.Image, snap board.Snapshot) {
	pos := ctx.Session.Board.Inputs().Position
	size := float64(pd.sqSize)
	draw := func(list []base.Square, col color.RGBA) {
		for _, sq := range list {
			x, y := pd.squareXY(sq, snap.WhiteBottom)
			if _, occupied := pos.At(sq); occupied {
				ghelper.DrawRing(screen, x+size/2, y+size/2, size, col)
				continue
			}
			ghelper.DrawDot(screen, x+size/2, y+size/2, size/7, col)
		}
	}
	draw(snap.Legal, ctx.Theme.Dest)
	draw(snap.Premoves, ctx.Theme.Premove)
}

func (pd *GUIPlayDrawer) drawPiece(ctx *gctx.GUIGameContext, screen *ebiten.Image, p base.Piece, x, y float64, alpha float32) {
	img, err := ctx.Pieces.Piece(p, pd.sqSize)
	if err != nil {
		ctx.Logx.Errorf("error piece image: %v", err)
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(alpha)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

func (pd *GUIPlayDrawer) drawPieces(ctx *gctx.GUIGameContext, screen *ebiten.Image, snap board.Snapshot) {
	ctrl := ctx.Session.Board

	// captured pieces fade out under the arriving ones
	fading, rest := ctrl.Fading()
	for sq, p := range fading {
		x, y := pd.squareXY(sq, snap.WhiteBottom)
		pd.drawPiece(ctx, screen, p, x, y, float32(rest))
	}

	for sq, p := range ctrl.Inputs().Position {
		x, y := pd.squareXY(sq, snap.WhiteBottom)
		if snap.Drag != nil && snap.Drag.Origin == sq {
			pd.drawPiece(ctx, screen, p, x, y, 0.3)
			continue
		}
		dx, dy := ctrl.PieceOffset(sq)
		pd.drawPiece(ctx, screen, p, x+dx, y+dy, 1)
	}

	if d := snap.Drag; d != nil {
		half := float64(pd.sqSize) / 2
		pd.drawPiece(ctx, screen, d.Piece, d.X-half, d.Y-half, 1)
	}
}

func (pd *GUIPlayDrawer) drawOverlays(screen *ebiten.Image, snap board.Snapshot) {
	size := float64(pd.sqSize)
	center := func(sq base.Square) (float64, float64) {
		x, y := pd.squareXY(sq, snap.WhiteBottom)
		return x + size/2, y + size/2
	}
	for _, m := range snap.Marks {
		x, y := center(m.Square)
		ghelper.DrawRing(screen, x, y, size, brushColor(m.Brush, false))
	}
	for _, a := range snap.Arrows {
		x0, y0 := center(a.From)
		x1, y1 := center(a.To)
		ghelper.DrawArrow(screen, x0, y0, x1, y1, size, brushColor(a.Brush, false))
	}
	if a := snap.ArrowPreview; a != nil {
		x0, y0 := center(a.From)
		x1, y1 := center(a.To)
		ghelper.DrawArrow(screen, x0, y0, x1, y1, size, brushColor(a.Brush, true))
	}
}

func (pd *GUIPlayDrawer) drawPromotion(ctx *gctx.GUIGameContext, screen *ebiten.Image, snap board.Snapshot) {
	ghelper.FillRect(screen, float64(pd.boardX), float64(pd.boardY), float64(pd.boardSize), float64(pd.boardSize), ctx.Theme.ModalBg)
	for _, c := range promotionCells(snap.Promotion.To, snap.WhiteBottom, pd.rect()) {
		ghelper.FillRect(screen, c.Rect.X, c.Rect.Y, c.Rect.W, c.Rect.H, ctx.Theme.ButtonFill)
		ghelper.DrawRectStroke(screen, c.Rect.X, c.Rect.Y, c.Rect.W, c.Rect.H, 2, ctx.Theme.Accent)
		pd.drawPiece(ctx, screen, base.Piece{Color: snap.Promotion.Color, Role: c.Role}, c.Rect.X, c.Rect.Y, 1)
	}
}

func (pd *GUIPlayDrawer) drawPanel(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	s := ctx.Session
	x := pd.boardX + pd.boardSize + 30
	text.Draw(screen, "EvilBoard", ctx.Fonts.Bold, x, pd.boardY+24, ctx.Theme.MenuText)
	text.Draw(screen, s.Status(), ctx.Fonts.Normal, x, pd.boardY+52, ctx.Theme.MenuText)
	ply := fmt.Sprintf("%d / %d", s.Builder.MoveIndex(), s.Builder.Plies())
	text.Draw(screen, ply, ctx.Fonts.Small, x, pd.boardY+72, ctx.Theme.ButtonStroke)
	if s.Threats() != nil {
		text.Draw(screen, ctx.Lang.T("status.threats"), ctx.Fonts.Small, x+80, pd.boardY+72, ctx.Theme.Accent)
	}

	for _, b := range pd.buttons {
		b.DrawAnimated(screen, ctx.Fonts.Normal, ctx.Theme)
	}
	text.Draw(screen, ctx.Lang.T("help.keys"), ctx.Fonts.Small, pd.boardX, pd.boardY+pd.boardSize+22, ctx.Theme.ButtonStroke)
}
