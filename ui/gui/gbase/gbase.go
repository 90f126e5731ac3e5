package gbase

import (
	"errors"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// ---- Exit Call ----

var ErrExit = errors.New("exit request")

// --- UI constants ---

// width reserved right of the board for status and buttons
const SidePanel int = 200

// ---- Styles (palettes) ----

type Palette struct {
	Bg           color.RGBA
	ButtonFill   color.RGBA
	ButtonStroke color.RGBA
	ButtonText   color.RGBA
	MenuText     color.RGBA
	Accent       color.RGBA
	ModalBg      color.RGBA

	// board
	LightSq  color.RGBA
	DarkSq   color.RGBA
	Selected color.RGBA
	Dest     color.RGBA
	Premove  color.RGBA
	LastMove color.RGBA
	Check    color.RGBA
	Threat   color.RGBA
}

func (p Palette) String() string {
	switch p {
	case LightPalette:
		return "light"
	case DarkPalette:
		return "dark"
	default:
	}
	return ""
}

func PaletteFromString(p string) Palette {
	switch p {
	case "dark":
		return DarkPalette
	default:
	}
	return LightPalette
}

var LightPalette = Palette{
	Bg:           color.RGBA{0xf7, 0xf7, 0xf7, 0xff},
	ButtonFill:   color.RGBA{0xff, 0xff, 0xff, 0xff},
	ButtonStroke: color.RGBA{0x88, 0x88, 0x88, 0xff},
	ButtonText:   color.RGBA{0x22, 0x22, 0x22, 0xff},
	MenuText:     color.RGBA{0x22, 0x22, 0x22, 0xff},
	Accent:       color.RGBA{0x22, 0x88, 0xcc, 0xff},
	ModalBg:      color.RGBA{0x00, 0x00, 0x00, 0x88},

	LightSq:  color.RGBA{0xf0, 0xd9, 0xb5, 0xff},
	DarkSq:   color.RGBA{0xb5, 0x88, 0x63, 0xff},
	Selected: color.RGBA{0x14, 0x55, 0x1e, 0x80},
	Dest:     color.RGBA{0x14, 0x55, 0x1e, 0x60},
	Premove:  color.RGBA{0x14, 0x1e, 0x55, 0x60},
	LastMove: color.RGBA{0x9b, 0xc7, 0x00, 0x68},
	Check:    color.RGBA{0xe0, 0x20, 0x20, 0x90},
	Threat:   color.RGBA{0xcc, 0x22, 0x22, 0x40},
}

var DarkPalette = Palette{
	Bg:           color.RGBA{0x12, 0x12, 0x12, 0xff},
	ButtonFill:   color.RGBA{0x20, 0x20, 0x20, 0xff},
	ButtonStroke: color.RGBA{0xdd, 0xdd, 0xdd, 0xff},
	ButtonText:   color.RGBA{0xee, 0xee, 0xee, 0xff},
	MenuText:     color.RGBA{0xee, 0xee, 0xee, 0xff},
	Accent:       color.RGBA{0x2a, 0xa1, 0xd1, 0xff},
	ModalBg:      color.RGBA{0x00, 0x00, 0x00, 0x99},

	LightSq:  color.RGBA{0x8c, 0xa2, 0xad, 0xff},
	DarkSq:   color.RGBA{0x4a, 0x5f, 0x6b, 0xff},
	Selected: color.RGBA{0x2a, 0xa1, 0xd1, 0x80},
	Dest:     color.RGBA{0x2a, 0xa1, 0xd1, 0x60},
	Premove:  color.RGBA{0xaa, 0x55, 0xd1, 0x60},
	LastMove: color.RGBA{0xd1, 0xc2, 0x2a, 0x58},
	Check:    color.RGBA{0xe0, 0x30, 0x30, 0x90},
	Threat:   color.RGBA{0xee, 0x44, 0x44, 0x48},
}

// ---- UI elements ----

// tween eases cur toward target exponentially
type tween struct {
	cur, target float64
}

func (t *tween) step(speed, dt float64) {
	t.cur += (t.target - t.cur) * (1 - math.Exp(-speed*dt))
}

// Button grows on hover, sinks while pressed and bounces on click
type Button struct {
	Label      string
	X, Y, W, H int
	Image      *ebiten.Image // rounded rect with stroke

	hover   bool
	pressed bool
	scale   tween
	offset  tween
	speed   float64
}

func NewButton(label string, x, y, w, h int, img *ebiten.Image) *Button {
	return &Button{Label: label, X: x, Y: y, W: w, H: h, Image: img, scale: tween{1, 1}, speed: 10}
}

func (b *Button) Contains(px, py int) bool {
	return px >= b.X && px < b.X+b.W && py >= b.Y && py < b.Y+b.H
}

// HandleInput is called every Update; it reports a click finished on the button
func (b *Button) HandleInput(px, py int, justClicked, justReleased bool) bool {
	b.hover = b.Contains(px, py)
	if justClicked && b.hover {
		b.pressed = true
	}
	clicked := false
	if justReleased {
		clicked = b.pressed && b.hover
		b.pressed = false
	}
	switch {
	case clicked:
		b.scale.target, b.offset.target = 1.03, 0
	case b.pressed:
		b.scale.target, b.offset.target = 0.96, 3
	case b.hover:
		b.scale.target, b.offset.target = 1.02, 0
	default:
		b.scale.target, b.offset.target = 1, 0
	}
	return clicked
}

func (b *Button) UpdateAnim(dt float64) {
	b.scale.step(b.speed, dt)
	b.offset.step(b.speed, dt)
}

func (b *Button) DrawAnimated(screen *ebiten.Image, face font.Face, theme Palette) {
	if b.Image == nil {
		return
	}
	cx := float64(b.X + b.W/2)
	cy := float64(b.Y+b.H/2) + b.offset.cur

	iw, ih := b.Image.Bounds().Dx(), b.Image.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(iw)/2, -float64(ih)/2)
	op.GeoM.Scale(b.scale.cur, b.scale.cur)
	op.GeoM.Translate(cx, cy)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(b.Image, op)

	bounds := text.BoundString(face, b.Label)
	text.Draw(screen, b.Label, face, int(cx)-bounds.Dx()/2, int(cy)+bounds.Dy()/2, theme.ButtonText)
}

// MessageBox is a modal note; Tick advances the open/close tween
type MessageBox struct {
	Open      bool
	Animating bool
	Scale     float64 // 0..1
	Opening   bool
	Text      string
	OnClose   func()
}

func (mb *MessageBox) Show(msg string, onClose func()) {
	mb.Text = msg
	mb.Open = true
	mb.Opening = true
	mb.Animating = true
	mb.Scale = 0
	mb.OnClose = onClose
}

func (mb *MessageBox) Collapse() {
	mb.Opening = false
	mb.Animating = true
}

func (mb *MessageBox) Tick(dt float64) {
	const speed = 6.0
	if !mb.Animating {
		return
	}
	if mb.Opening {
		mb.Scale += speed * dt
		if mb.Scale >= 1 {
			mb.Scale = 1
			mb.Animating = false
		}
		return
	}
	mb.Scale -= speed * dt
	if mb.Scale <= 0 {
		mb.Scale = 0
		mb.Animating = false
		mb.Open = false
		if mb.OnClose != nil {
			mb.OnClose()
		}
	}
}
