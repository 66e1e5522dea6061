package viz

import (
	"github.com/san-kum/fieldlab/internal/field"
	"github.com/san-kum/fieldlab/internal/scene"
)

// sourceMark picks the marker rune for a source: sign for electric charges,
// a filled dot for masses.
func sourceMark(src field.Source, mode field.Mode) rune {
	if mode == field.Gravity {
		return '●'
	}
	if src.Value < 0 {
		return '−'
	}
	return '+'
}

// Render draws one computed frame: traced field lines, sampled arrows,
// source markers and the equilibrium point when one was found.
func Render(c *Canvas, cam *Camera, frame *scene.Frame, sources []field.Source, mode field.Mode) {
	subW, subH := c.Width*2, c.Height*4

	for _, ln := range frame.Lines {
		px, py, pok := 0, 0, false
		for _, p := range ln.Points {
			x, y, ok := cam.Project(p, subW, subH)
			if ok && pok {
				c.Line(px, py, x, y)
			}
			px, py, pok = x, y, ok
		}
	}

	// Arrows: a short tick from each sample along the field direction,
	// length scaled by the normalized display strength.
	for _, s := range frame.Samples {
		tip := s.Pos.Add(s.Field.Normalize().Scale(0.25 + 0.35*s.Strength))
		x0, y0, ok0 := cam.Project(s.Pos, subW, subH)
		x1, y1, ok1 := cam.Project(tip, subW, subH)
		if ok0 && ok1 {
			c.Line(x0, y0, x1, y1)
		}
	}

	for _, src := range sources {
		if x, y, ok := cam.Project(src.Pos, subW, subH); ok {
			c.Mark(x/2, y/4, sourceMark(src, mode))
		}
	}

	if frame.Equilibrium.Found() {
		if x, y, ok := cam.Project(frame.Equilibrium.Pos, subW, subH); ok {
			c.Mark(x/2, y/4, '◎')
		}
	}
}
