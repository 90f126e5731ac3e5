package gimages

import (
	"evilboard/src/base"
	"evilboard/ui/gui/ghelper/gfont"
	"image"
	"strings"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// Cache renders piece images on demand and keeps them until the square size
// changes
type Cache struct {
	fonts *gfont.Fonts
	size  int
	face  font.Face
	imgs  map[base.Piece]*ebiten.Image
}

func NewCache(fonts *gfont.Fonts) *Cache {
	return &Cache{fonts: fonts, imgs: make(map[base.Piece]*ebiten.Image)}
}

func (c *Cache) Piece(p base.Piece, size int) (*ebiten.Image, error) {
	if size != c.size {
		face, err := c.fonts.BoldSized(float64(size) * 0.5)
		if err != nil {
			return nil, err
		}
		for _, img := range c.imgs {
			img.Deallocate()
		}
		c.imgs = make(map[base.Piece]*ebiten.Image)
		c.size, c.face = size, face
	}
	if img, ok := c.imgs[p]; ok {
		return img, nil
	}
	img := ebiten.NewImageFromImage(RenderPiece(p, size, c.face))
	c.imgs[p] = img
	return img, nil
}

// RenderPiece draws a disc with the piece letter; a nil face skips the letter
func RenderPiece(p base.Piece, size int, face font.Face) image.Image {
	dc := gg.NewContext(size, size)
	if !p.IsValid() || size <= 0 {
		return dc.Image()
	}
	fill, ink := "#f8f8f8", "#202020"
	if p.Color == base.Black {
		fill, ink = "#202020", "#f0f0f0"
	}
	s := float64(size)
	dc.DrawCircle(s/2, s/2, s*0.4)
	dc.SetHexColor(fill)
	dc.FillPreserve()
	dc.SetHexColor("#606060")
	dc.SetLineWidth(s / 30)
	dc.Stroke()

	if face != nil {
		dc.SetFontFace(face)
		dc.SetHexColor(ink)
		dc.DrawStringAnchored(strings.ToUpper(string(base.RuneFromPiece(p))), s/2, s/2, 0.5, 0.4)
	}
	return dc.Image()
}
