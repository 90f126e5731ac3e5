package engine

import (
	"testing"
	"time"
)

func TestGoCommand(t *testing.T) {
	tests := []struct {
		prm  SearchParams
		want string
	}{
		{SearchParams{}, "go movetime 500"},
		{SearchParams{MoveTime: 120 * time.Millisecond}, "go movetime 120"},
		{SearchParams{MaxDepth: 8}, "go depth 8"},
		{SearchParams{MaxDepth: 8, MoveTime: time.Second}, "go depth 8 movetime 1000"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.prm.GoCommand(); got != tt.want {
				t.Fatalf("GoCommand() = %q want %q", got, tt.want)
			}
		})
	}
}
