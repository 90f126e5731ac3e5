package gui

import (
	"errors"
	"evilboard/src"
	"evilboard/src/board"
	"evilboard/src/engine"
	"evilboard/src/logic/anim"
	"evilboard/src/logx"
	"evilboard/ui/gui/gbase"
	"evilboard/ui/gui/gbase/gconf"
	"evilboard/ui/gui/gctx"
	"evilboard/ui/gui/gdraw"

	"github.com/hajimehoshi/ebiten/v2"
)

type GUIProcessing struct {
	current gdraw.Scene
	ctx     *gctx.GUIGameContext
}

// NewGUI builds the window; eng may be nil for a random opponent
func NewGUI(gb *src.GameBuilder, eng engine.Engine, conf *gconf.Config, logger logx.Logger) (*GUIProcessing, error) {
	frames := &anim.FrameQueue{}
	ctrl := board.NewController(gctx.BoardConfig(conf, logger), frames, logger)
	s := src.NewSession(gb, ctrl, logger)
	if eng != nil {
		s.SetEngine(eng)
	}

	ctx, err := gctx.NewGUIGameContext(s, frames, conf, logger)
	if err != nil {
		return nil, err
	}
	return &GUIProcessing{
		current: gdraw.NewGUIPlayDrawer(ctx),
		ctx:     ctx,
	}, nil
}

func (gp *GUIProcessing) Run() error {
	ebiten.SetWindowSize(gp.ctx.Config.WindowW, gp.ctx.Config.WindowH)
	ebiten.SetWindowTitle("EvilBoard")
	err := ebiten.RunGame(gp)
	if errors.Is(err, gbase.ErrExit) {
		return nil
	}
	return err
}

func (gp *GUIProcessing) Update() error {
	next, err := gp.current.Update(gp.ctx)
	if err != nil {
		if !errors.Is(err, gbase.ErrExit) {
			gp.ctx.Logx.Errorf("error update: %v", err)
		}
		return err
	}
	gp.current = next.ToScene(gp.current, gp.ctx)
	return nil
}

func (gp *GUIProcessing) Draw(screen *ebiten.Image) {
	gp.current.Draw(gp.ctx, screen)
}

func (gp *GUIProcessing) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return gp.ctx.Config.WindowW, gp.ctx.Config.WindowH
}
