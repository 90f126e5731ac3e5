package gctx

import (
	"evilboard/src/logx"
	"evilboard/ui/gui/gbase/gconf"
	"testing"
	"time"
)

func TestBoardConfig(t *testing.T) {
	c := &gconf.Config{Dragging: true, Premoves: false, SnapArrows: true, ShowAnimations: true, AnimationMs: 120}
	got := BoardConfig(c, logx.NewNop())
	if !got.Dragging || got.Arrows || !got.SnapArrows || got.ViewOnly {
		t.Fatalf("flags not mapped: %+v", got)
	}
	if got.Premove.Enabled {
		t.Fatalf("premoves must follow the config")
	}
	if got.AnimationDuration != 120*time.Millisecond {
		t.Fatalf("duration %v", got.AnimationDuration)
	}
	// callbacks only log
	got.Premove.OnUnset()
}
