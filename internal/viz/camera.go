package viz

import (
	"math"

	"github.com/san-kum/fieldlab/internal/vec"
)

// Camera projects scene-space points onto the canvas with simple rotation
// and perspective, far enough back that a default scene fits the view.
type Camera struct {
	Distance   float64
	RotX, RotY float64
	Zoom       float64
}

func NewCamera() *Camera {
	return &Camera{Distance: 30, Zoom: 1.0}
}

func (c *Camera) Rotate(dx, dy float64) {
	c.RotY += dx
	c.RotX += dy
}

func (c *Camera) ZoomIn()  { c.Zoom = math.Min(8, c.Zoom*1.2) }
func (c *Camera) ZoomOut() { c.Zoom = math.Max(0.2, c.Zoom/1.2) }

func (c *Camera) rotate(p vec.Vec3) vec.Vec3 {
	cy, sy := math.Cos(c.RotY), math.Sin(c.RotY)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy
	cx, sx := math.Cos(c.RotX), math.Sin(c.RotX)
	p.Y, p.Z = p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
	return p
}

// Project maps a scene point to sub-pixel canvas coordinates. The bool is
// false when the point falls behind the camera or outside the canvas.
func (c *Camera) Project(p vec.Vec3, subW, subH int) (int, int, bool) {
	r := c.rotate(p).Scale(c.Zoom)
	if r.Z >= c.Distance-0.1 {
		return 0, 0, false
	}
	persp := c.Distance / (c.Distance - r.Z)
	scale := float64(min(subW, subH)) / 14.0
	x := int(r.X*persp*scale) + subW/2
	y := subH/2 - int(r.Y*persp*scale)
	return x, y, x >= 0 && x < subW && y >= 0 && y < subH
}
