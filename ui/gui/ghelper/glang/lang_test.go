package glang

import "testing"

func TestT(t *testing.T) {
	lw, err := NewGUILangWorker()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tests := []struct {
		name string
		lang LangType
		key  string
		want string
	}{
		{"english", EN, "button.flip", "Flip"},
		{"russian", RU, "button.flip", "Развернуть"},
		{"missing key echoes", RU, "no.such.key", "no.such.key"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := lw.SetLang(tt.lang); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := lw.T(tt.key); got != tt.want {
				t.Fatalf("T(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestDictionariesMatch(t *testing.T) {
	en, _ := NewGUILangWorker()
	ru, _ := NewGUILangWorker()
	if err := ru.SetLang(RU); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for k := range en.dict {
		if _, ok := ru.dict[k]; !ok {
			t.Fatalf("key %q missing in ru", k)
		}
	}
	if len(en.dict) != len(ru.dict) {
		t.Fatalf("en has %d keys, ru %d", len(en.dict), len(ru.dict))
	}
	if LangFromString("ru") != RU || LangFromString("de") != EN {
		t.Fatalf("LangFromString")
	}
}
