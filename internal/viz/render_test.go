package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/fieldlab/internal/field"
	"github.com/san-kum/fieldlab/internal/scene"
	"github.com/san-kum/fieldlab/internal/vec"
)

func TestProjectCenter(t *testing.T) {
	cam := NewCamera()
	x, y, ok := cam.Project(vec.Vec3{}, 160, 96)
	if !ok {
		t.Fatal("origin should be visible")
	}
	if x != 80 || y != 48 {
		t.Errorf("origin projects to (%d,%d), want canvas center", x, y)
	}
}

func TestProjectBehindCamera(t *testing.T) {
	cam := NewCamera()
	if _, _, ok := cam.Project(vec.Vec3{Z: cam.Distance + 1}, 160, 96); ok {
		t.Error("point behind the camera should not be visible")
	}
}

func TestRenderDipole(t *testing.T) {
	snap := scene.Snapshot{
		Sources: []field.Source{
			{ID: 0, Pos: vec.Vec3{X: -1.5}, Value: 1e-9},
			{ID: 1, Pos: vec.Vec3{X: 1.5}, Value: -1e-9},
		},
		Mode: field.Electric,
	}
	frame := scene.Compute(snap, scene.Defaults())

	c := NewCanvas(80, 24)
	Render(c, NewCamera(), frame, snap.Sources, snap.Mode)
	out := c.String()

	if !strings.ContainsRune(out, '+') {
		t.Error("positive source marker missing")
	}
	if !strings.ContainsRune(out, '−') {
		t.Error("negative source marker missing")
	}
	drawn := strings.IndexFunc(out, func(r rune) bool { return r > 0x2800 && r < 0x2900 })
	if drawn < 0 {
		t.Error("no braille dots drawn for a dipole scene")
	}
}
