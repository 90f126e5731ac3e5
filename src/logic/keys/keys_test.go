package keys

import "testing"

func TestRoute(t *testing.T) {
	var got []string
	rec := func(name string) func() { return func() { got = append(got, name) } }
	h := Handlers{
		OnPrev:     rec("prev"),
		OnNext:     rec("next"),
		OnFirst:    rec("first"),
		OnLast:     rec("last"),
		OnFlip:     rec("flip"),
		OnDeselect: rec("deselect"),
	}

	tests := []struct {
		ev      Event
		handled bool
		want    string
	}{
		{Event{Key: KeyLeft}, true, "prev"},
		{Event{Key: KeyDown}, true, "prev"},
		{Event{Key: KeyRight}, true, "next"},
		{Event{Key: KeyUp}, true, "next"},
		{Event{Key: KeyHome}, true, "first"},
		{Event{Key: KeyEnd}, true, "last"},
		{Event{Key: FromRune('f')}, true, "flip"},
		{Event{Key: KeyEscape}, true, "deselect"},
		{Event{Key: KeyThreat}, false, ""}, // no handler supplied
		{Event{Key: KeyUnknown}, false, ""},
		{Event{Key: KeyLeft, TextTarget: true}, false, ""},
	}
	for _, tt := range tests {
		got = nil
		if handled := Route(tt.ev, h); handled != tt.handled {
			t.Fatalf("%+v: handled=%v want %v", tt.ev, handled, tt.handled)
		}
		if tt.want == "" && len(got) != 0 {
			t.Fatalf("%+v: unexpected call %v", tt.ev, got)
		}
		if tt.want != "" && (len(got) != 1 || got[0] != tt.want) {
			t.Fatalf("%+v: got %v want %s", tt.ev, got, tt.want)
		}
	}
}
