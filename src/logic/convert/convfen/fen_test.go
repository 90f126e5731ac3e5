package convfen

import (
	"evilboard/src/base"
	"testing"
)

func sq(t *testing.T, s string) base.Square {
	t.Helper()
	v, ok := base.ParseSquare(s)
	if !ok {
		t.Fatalf("bad square %q", s)
	}
	return v
}

func TestParseStartPlacement(t *testing.T) {
	pos := ParsePosition(base.StartPlacement + " w KQkq - 0 1")
	if len(pos) != 32 {
		t.Fatalf("expected 32 pieces, got %d", len(pos))
	}
	cases := map[string]base.Piece{
		"a1": {base.White, base.Rook},
		"e1": {base.White, base.King},
		"d8": {base.Black, base.Queen},
		"g8": {base.Black, base.Knight},
		"c2": {base.White, base.Pawn},
		"h7": {base.Black, base.Pawn},
	}
	for s, want := range cases {
		if got := pos[sq(t, s)]; got != want {
			t.Fatalf("%s: got %v want %v", s, got, want)
		}
	}
}

func TestParseFailsClosed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "", 0},
		{"garbage", "hello world", 0},
		{"unknown runes skipped", "4k3/8/8/8/8/8/8/4K2X", 2},
		{"row overflow dropped", "9/8/8/8/8/8/8/RNBQKBNRRRR", 8},
		{"too many ranks", "k7/8/8/8/8/8/8/8/K7/Q7", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(ParsePosition(tt.input)); got != tt.want {
				t.Fatalf("got %d pieces, want %d", got, tt.want)
			}
		})
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	inputs := []string{
		base.StartPlacement,
		"8/8/8/8/8/8/8/8",
		"r3k2r/pppq1ppp/2n1bn2/3p4/3P4/2N1BN2/PPPQ1PPP/R3K2R",
		"8/P7/8/8/8/8/7p/K6k",
	}
	for _, in := range inputs {
		pos := ParsePosition(in)
		out := SerializePosition(pos)
		if out != in {
			t.Fatalf("serialize(parse(%q)) = %q", in, out)
		}
		if !ParsePosition(out).Equal(pos) {
			t.Fatalf("parse(serialize(p)) != p for %q", in)
		}
	}
}

func TestSerializeCompressesRuns(t *testing.T) {
	pos := base.Position{sq(t, "e4"): {base.White, base.Knight}}
	if got, want := SerializePosition(pos), "8/8/8/8/4N3/8/8/8"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestSideToMove(t *testing.T) {
	if SideToMove(base.StartPlacement+" b - - 0 1") != base.Black {
		t.Fatalf("expected black")
	}
	if SideToMove(base.StartPlacement) != base.NoColor {
		t.Fatalf("expected no color without a turn field")
	}
}
