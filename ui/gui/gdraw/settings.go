package gdraw

import (
	"evilboard/ui/gui/gbase"
	"evilboard/ui/gui/gctx"
	"evilboard/ui/gui/ghelper"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// settingRow cycles one config value per click
type settingRow struct {
	key   string
	value func() string
	next  func()
}

type GUISettingsDrawer struct {
	rows    []settingRow
	buttons []*gbase.Button
	idxSave int
	idxBack int

	lastTick time.Time
}

func NewGUISettingsDrawer(ctx *gctx.GUIGameContext) *GUISettingsDrawer {
	sd := &GUISettingsDrawer{lastTick: time.Now()}
	sd.rows = settingRows(ctx)
	sd.makeLayoutButtons(ctx)
	return sd
}

func cycle(cur string, values ...string) string {
	for i, v := range values {
		if v == cur {
			return values[(i+1)%len(values)]
		}
	}
	return values[0]
}

func settingRows(ctx *gctx.GUIGameContext) []settingRow {
	c := ctx.Config
	onOff := func(b *bool) (func() string, func()) {
		value := func() string {
			if *b {
				return ctx.Lang.T("settings.on")
			}
			return ctx.Lang.T("settings.off")
		}
		return value, func() { *b = !*b }
	}
	str := func(s *string, values ...string) (func() string, func()) {
		return func() string { return *s }, func() { *s = cycle(*s, values...) }
	}
	row := func(key string, value func() string, next func()) settingRow {
		return settingRow{key: key, value: value, next: next}
	}

	rows := []settingRow{}
	v, n := str(&c.Theme, "light", "dark")
	rows = append(rows, row("settings.theme", v, n))
	v, n = str(&c.Lang, "en", "ru")
	rows = append(rows, row("settings.language", v, n))
	v, n = str(&c.Orientation, "white", "black", "both")
	rows = append(rows, row("settings.orientation", v, n))
	for _, f := range []struct {
		key string
		val *bool
	}{
		{"settings.animations", &c.ShowAnimations},
		{"settings.arrows", &c.Arrows},
		{"settings.snap", &c.SnapArrows},
		{"settings.premoves", &c.Premoves},
		{"settings.dragging", &c.Dragging},
		{"settings.opponent", &c.Opponent},
	} {
		v, n = onOff(f.val)
		rows = append(rows, row(f.key, v, n))
	}
	return rows
}

func (sd *GUISettingsDrawer) makeLayoutButtons(ctx *gctx.GUIGameContext) {
	sd.buttons = []*gbase.Button{}
	addBtn := func(label string, x, y, w, h int) int {
		img := ghelper.RenderRoundedRect(w, h, 12, ctx.Theme.ButtonFill, ctx.Theme.ButtonStroke, 3)
		sd.buttons = append(sd.buttons, gbase.NewButton(label, x, y, w, h, img))
		return len(sd.buttons) - 1
	}

	x := (ctx.Config.WindowW - 360) / 2
	y := 110
	for range sd.rows {
		addBtn("", x, y, 360, 40)
		y += 48
	}
	y += 20
	sd.idxSave = addBtn(ctx.Lang.T("button.save"), x, y, 170, 44)
	sd.idxBack = addBtn(ctx.Lang.T("button.back"), x+190, y, 170, 44)
}

func (sd *GUISettingsDrawer) Update(ctx *gctx.GUIGameContext) (SceneType, error) {
	now := time.Now()
	dt := now.Sub(sd.lastTick).Seconds()
	sd.lastTick = now

	mx, my := ebiten.CursorPosition()
	justPressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	justReleased := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ScenePlay, nil
	}
	for i, b := range sd.buttons {
		clicked := b.HandleInput(mx, my, justPressed, justReleased)
		b.UpdateAnim(dt)
		if !clicked {
			continue
		}
		switch {
		case i < len(sd.rows):
			sd.rows[i].next()
			if err := ctx.ApplyConfig(); err != nil {
				return SceneNotChanged, err
			}
			// theme may have changed
			sd.makeLayoutButtons(ctx)
			return SceneNotChanged, nil
		case i == sd.idxSave:
			if err := ctx.Config.Save(); err != nil {
				ctx.Logx.Errorf("error save config: %v", err)
			}
			return ScenePlay, nil
		case i == sd.idxBack:
			return ScenePlay, nil
		}
	}
	return SceneNotChanged, nil
}

func (sd *GUISettingsDrawer) Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)
	title := ctx.Lang.T("settings.title")
	tb := text.BoundString(ctx.Fonts.Bold, title)
	text.Draw(screen, title, ctx.Fonts.Bold, (ctx.Config.WindowW-tb.Dx())/2, 70, ctx.Theme.MenuText)

	for i, b := range sd.buttons {
		if i < len(sd.rows) {
			b.Label = ctx.Lang.T(sd.rows[i].key) + ": " + sd.rows[i].value()
		}
		b.DrawAnimated(screen, ctx.Fonts.Normal, ctx.Theme)
	}
}
