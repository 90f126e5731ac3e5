package ghelper

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

func RenderRoundedRect(w, h, radius int, fill color.RGBA, stroke color.RGBA, strokeW float64) *ebiten.Image {
	// create a context with alpha and draw rounded rectangle using gg (anti-aliased)
	dc := gg.NewContext(w, h)
	dc.SetRGBA255(int(fill.R), int(fill.G), int(fill.B), int(fill.A))
	dc.DrawRoundedRectangle(0, 0, float64(w), float64(h), float64(radius))
	dc.FillPreserve()
	dc.SetRGBA255(int(stroke.R), int(stroke.G), int(stroke.B), int(stroke.A))
	dc.SetLineWidth(strokeW)
	dc.Stroke()
	img := dc.Image()
	return ebiten.NewImageFromImage(img)
}

func FillRect(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), c, false)
}

func PointInRect(px, py, rx, ry, rw, rh int) bool {
	return px >= rx && px < rx+rw && py >= ry && py < ry+rh
}

func DrawRectStroke(screen *ebiten.Image, x, y, w, h, thickness float64, col color.Color) {
	if screen == nil || w <= 0 || h <= 0 || thickness <= 0 {
		return
	}
	maxTh := math.Min(w, h) / 2.0
	if thickness > maxTh {
		thickness = maxTh
	}
	// up, down, left, right
	FillRect(screen, x, y, w, thickness, col)
	FillRect(screen, x, y+h-thickness, w, thickness, col)
	FillRect(screen, x, y+thickness, thickness, h-thickness*2, col)
	FillRect(screen, x+w-thickness, y+thickness, thickness, h-thickness*2, col)
}

// DrawDot is a filled circle, used for move destinations
func DrawDot(screen *ebiten.Image, cx, cy, r float64, col color.Color) {
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(r), col, true)
}

// DrawRing strokes a circle inside a square of the given size
func DrawRing(screen *ebiten.Image, cx, cy, size float64, col color.Color) {
	w := size / 14
	vector.StrokeCircle(screen, float32(cx), float32(cy), float32(size/2-w), float32(w), col, true)
}

var whitePixel *ebiten.Image

func pixel() *ebiten.Image {
	if whitePixel == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whitePixel = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whitePixel
}

func fillTriangle(screen *ebiten.Image, pts [3][2]float64, col color.Color) {
	r, g, b, a := col.RGBA()
	vs := make([]ebiten.Vertex, 0, 3)
	for _, p := range pts {
		vs = append(vs, ebiten.Vertex{
			DstX: float32(p[0]), DstY: float32(p[1]),
			SrcX: 1.5, SrcY: 1.5,
			ColorR: float32(r) / 0xffff, ColorG: float32(g) / 0xffff,
			ColorB: float32(b) / 0xffff, ColorA: float32(a) / 0xffff,
		})
	}
	op := &ebiten.DrawTrianglesOptions{ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha, AntiAlias: true}
	screen.DrawTriangles(vs, []uint16{0, 1, 2}, pixel(), op)
}

// DrawArrow draws a shaft from (x0,y0) to (x1,y1) with the head ending at the
// target point; width scales with the square size
func DrawArrow(screen *ebiten.Image, x0, y0, x1, y1, size float64, col color.Color) {
	dx, dy := x1-x0, y1-y0
	l := math.Hypot(dx, dy)
	if l < 1 {
		return
	}
	ux, uy := dx/l, dy/l
	width := size / 6
	head := size / 2.5
	if head > l {
		head = l
	}
	// shaft ends where the head starts
	sx, sy := x1-ux*head, y1-uy*head
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(sx), float32(sy), float32(width), col, true)

	px, py := -uy, ux
	half := width * 1.4
	fillTriangle(screen, [3][2]float64{
		{x1, y1},
		{sx + px*half, sy + py*half},
		{sx - px*half, sy - py*half},
	}, col)
}
