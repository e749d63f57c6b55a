package viz

import (
	"image/color"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestOverlayKeepsBlankCells(t *testing.T) {
	c := NewCanvas(4, 2)
	base := "abcd\nefgh"

	if got := Overlay(base, c); got != base {
		t.Errorf("empty canvas changed view: %q", got)
	}
}

func TestOverlayReplacesDrawnCells(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Set(2, 0)
	c.Set(7, 5)

	got := ansi.Strip(Overlay("abcd\nefgh", c))
	lines := strings.Split(got, "\n")
	if lines[0] != "a⠁cd" {
		t.Errorf("row 0 = %q", lines[0])
	}
	if lines[1] != "efg⠐" {
		t.Errorf("row 1 = %q", lines[1])
	}
}

func TestOverlayPadsShortLines(t *testing.T) {
	c := NewCanvas(4, 1)
	c.FillSquare(7, 1, 0.1, 0, color.White)

	got := ansi.Strip(Overlay("ab", c))
	if ansi.StringWidth(got) != 4 {
		t.Errorf("expected padded width 4, got %q", got)
	}
	if !strings.HasPrefix(got, "ab ") {
		t.Errorf("expected base kept, got %q", got)
	}
}
