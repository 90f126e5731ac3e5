package gimages

import (
	"evilboard/src/base"
	"testing"
)

func TestRenderPiece(t *testing.T) {
	tests := []struct {
		name   string
		piece  base.Piece
		bright bool
	}{
		{"white disc", base.Piece{Color: base.White, Role: base.Rook}, true},
		{"black disc", base.Piece{Color: base.Black, Role: base.Rook}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := RenderPiece(tt.piece, 60, nil)
			if b := img.Bounds(); b.Dx() != 60 || b.Dy() != 60 {
				t.Fatalf("bounds %v", b)
			}
			if _, _, _, a := img.At(1, 1).RGBA(); a != 0 {
				t.Fatalf("corner must stay transparent")
			}
			r, _, _, a := img.At(30, 20).RGBA()
			if a == 0 {
				t.Fatalf("disc must be opaque")
			}
			if (r > 0x8000) != tt.bright {
				t.Fatalf("fill brightness %x", r)
			}
		})
	}
}

func TestRenderEmpty(t *testing.T) {
	img := RenderPiece(base.NoPiece, 40, nil)
	if _, _, _, a := img.At(20, 20).RGBA(); a != 0 {
		t.Fatalf("no piece draws nothing")
	}
}
