package gctx

import (
	"evilboard/src"
	"evilboard/src/base"
	"evilboard/src/board"
	"evilboard/src/logic/anim"
	"evilboard/src/logx"
	"evilboard/ui/gui/gbase"
	"evilboard/ui/gui/gbase/gconf"
	"evilboard/ui/gui/ghelper/gfont"
	"evilboard/ui/gui/ghelper/gimages"
	"evilboard/ui/gui/ghelper/glang"
)

// ---- GUI Context ----

type GUIGameContext struct {
	Session *src.Session
	Config  *gconf.Config
	Theme   gbase.Palette
	Fonts   *gfont.Fonts
	Pieces  *gimages.Cache
	Lang    *glang.GUILangWorker
	Frames  *anim.FrameQueue
	Logx    logx.Logger
}

func NewGUIGameContext(s *src.Session, q *anim.FrameQueue, c *gconf.Config, l logx.Logger) (*GUIGameContext, error) {
	fonts, err := gfont.LoadFonts()
	if err != nil {
		return nil, err
	}
	lw, err := glang.NewGUILangWorker()
	if err != nil {
		return nil, err
	}
	ctx := &GUIGameContext{
		Session: s,
		Config:  c,
		Fonts:   fonts,
		Pieces:  gimages.NewCache(fonts),
		Lang:    lw,
		Frames:  q,
		Logx:    l,
	}
	if err := ctx.ApplyConfig(); err != nil {
		return nil, err
	}
	return ctx, nil
}

// ApplyConfig pushes the config into theme, language, board and session
func (ctx *GUIGameContext) ApplyConfig() error {
	ctx.Theme = gbase.PaletteFromString(ctx.Config.Theme)
	if err := ctx.Lang.SetLang(glang.LangFromString(ctx.Config.Lang)); err != nil {
		return err
	}
	ctx.Session.SetPlayer(base.ColorFromString(ctx.Config.Orientation), ctx.Config.Opponent)
	ctx.Session.SetBoardConfig(BoardConfig(ctx.Config, ctx.Logx))
	return nil
}

func BoardConfig(c *gconf.Config, l logx.Logger) board.Config {
	return board.Config{
		Dragging:   c.Dragging,
		Arrows:     c.Arrows,
		SnapArrows: c.SnapArrows,
		Premove: board.PremoveConfig{
			Enabled: c.Premoves,
			OnSet:   func(m base.Move) { l.Debugf("premove set %v", m) },
			OnUnset: func() { l.Debug("premove unset") },
		},
		ShowAnimations:    c.ShowAnimations,
		AnimationDuration: c.AnimationDuration(),
	}
}
