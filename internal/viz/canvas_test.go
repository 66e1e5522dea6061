package viz

import (
	"strings"
	"testing"
)

func TestCanvasDot(t *testing.T) {
	c := NewCanvas(4, 2)

	c.Dot(0, 0)
	if c.Grid[0][0] == 0x2800 {
		t.Error("dot not set")
	}

	// Out of range is a no-op, not a panic.
	c.Dot(-1, 0)
	c.Dot(0, -4)
	c.Dot(100, 100)
}

func TestCanvasLineEndpoints(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Line(0, 0, 19, 39)

	if c.Grid[0][0] == 0x2800 {
		t.Error("line start not drawn")
	}
	if c.Grid[9][9] == 0x2800 {
		t.Error("line end not drawn")
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(6, 3)
	s := c.String()

	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d rows, want 3", len(lines))
	}
	for _, ln := range lines {
		if len([]rune(ln)) != 6 {
			t.Errorf("row width %d, want 6", len([]rune(ln)))
		}
	}
}

func TestCanvasMarkOverlay(t *testing.T) {
	c := NewCanvas(5, 5)
	c.Dot(4, 8) // cell (2,2)
	c.Mark(2, 2, '+')

	if !strings.ContainsRune(c.String(), '+') {
		t.Error("marker not rendered over braille cell")
	}

	c.Clear()
	if strings.ContainsRune(c.String(), '+') {
		t.Error("marker survived Clear")
	}
}
