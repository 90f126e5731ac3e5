package gdraw

import (
	"evilboard/ui/gui/gbase/gconf"
	"evilboard/ui/gui/gctx"
	"evilboard/ui/gui/ghelper/glang"
	"testing"
)

func TestCycle(t *testing.T) {
	tests := []struct {
		cur, want string
	}{
		{"white", "black"},
		{"black", "both"},
		{"both", "white"},
		{"unknown", "white"},
	}
	for _, tt := range tests {
		t.Run(tt.cur, func(t *testing.T) {
			if got := cycle(tt.cur, "white", "black", "both"); got != tt.want {
				t.Fatalf("cycle(%q) = %q, want %q", tt.cur, got, tt.want)
			}
		})
	}
}

func TestSettingRows(t *testing.T) {
	lw, err := glang.NewGUILangWorker()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	conf := &gconf.Config{Theme: "light", Lang: "en", Orientation: "white", Premoves: true}
	ctx := &gctx.GUIGameContext{Config: conf, Lang: lw}

	rows := settingRows(ctx)
	find := func(key string) settingRow {
		for _, r := range rows {
			if r.key == key {
				return r
			}
		}
		t.Fatalf("row %q missing", key)
		return settingRow{}
	}

	theme := find("settings.theme")
	theme.next()
	if conf.Theme != "dark" || theme.value() != "dark" {
		t.Fatalf("theme %q", conf.Theme)
	}
	pre := find("settings.premoves")
	if pre.value() != "on" {
		t.Fatalf("premoves shows %q", pre.value())
	}
	pre.next()
	if conf.Premoves || pre.value() != "off" {
		t.Fatalf("premoves not toggled")
	}
	if len(rows) != 9 {
		t.Fatalf("got %d rows", len(rows))
	}
}
