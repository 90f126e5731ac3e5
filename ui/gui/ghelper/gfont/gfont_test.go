package gfont

import "testing"

func TestLoadFonts(t *testing.T) {
	f, err := LoadFonts()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Small == nil || f.Normal == nil || f.Bold == nil {
		t.Fatalf("faces missing: %+v", f)
	}
	big, err := f.BoldSized(40)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if big.Metrics().Height <= f.Bold.Metrics().Height {
		t.Fatalf("sized face must be taller than the title face")
	}
}
