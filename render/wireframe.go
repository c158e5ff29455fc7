// Package render draws meshes as orthographic wireframes. It exists for
// debugging and for the command line tool's previews, so it favors a quick
// look over fidelity: no hidden line removal, no lighting.
package render

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/go-gl/mathgl/mgl64"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/meshtools/geom"
	"github.com/pkg/errors"
)

type Options struct {
	// Width and height of the square image, in pixels
	Size int
	// Rotation about the z axis, then about the x axis, in radians
	Yaw, Pitch float64
	// Empty border around the drawing, in pixels
	Padding   float64
	LineWidth float64
	// Radius of the dot drawn on every point. Zero draws no dots.
	PointRadius float64
}

func DefaultOptions() Options {
	return Options{
		Size:        512,
		Yaw:         math.Pi / 6,
		Pitch:       -math.Pi / 3,
		Padding:     32,
		LineWidth:   2,
		PointRadius: 3,
	}
}

// Rotate the points by yaw then pitch and drop the depth axis.
func Project(points []geom.Vector, yaw, pitch float64) []mgl64.Vec2 {
	rotation := mgl64.Rotate3DX(pitch).Mul3(mgl64.Rotate3DZ(yaw))
	result := make([]mgl64.Vec2, len(points))
	for i, p := range points {
		result[i] = rotation.Mul3x1(p).Vec2()
	}
	return result
}

// Draw the edges between points, fitted to the image.
func Wireframe(points []geom.Vector, edges [][2]int, opts Options) *gg.Context {
	size := float64(opts.Size)
	c := gg.NewContext(opts.Size, opts.Size)
	c.SetRGB(0, 0, 0)
	c.Clear()
	if len(points) == 0 {
		return c
	}

	projected := Project(points, opts.Yaw, opts.Pitch)
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range projected {
		minX = math.Min(minX, p[0])
		minY = math.Min(minY, p[1])
		maxX = math.Max(maxX, p[0])
		maxY = math.Max(maxY, p[1])
	}
	extent := math.Max(maxX-minX, maxY-minY)
	scale := 1.0
	if extent > 0 {
		scale = (size - 2*opts.Padding) / extent
	}
	// Center the drawing, with y pointing up
	centerX, centerY := (minX+maxX)/2, (minY+maxY)/2
	screen := func(p mgl64.Vec2) (float64, float64) {
		return size/2 + (p[0]-centerX)*scale, size/2 - (p[1]-centerY)*scale
	}

	c.SetLineWidth(opts.LineWidth)
	c.SetRGB(0, 1, 1)
	for _, e := range edges {
		x1, y1 := screen(projected[e[0]])
		x2, y2 := screen(projected[e[1]])
		c.DrawLine(x1, y1, x2, y2)
	}
	c.Stroke()

	if opts.PointRadius > 0 {
		c.SetRGB(1, 0.5, 0)
		for _, p := range projected {
			x, y := screen(p)
			c.DrawCircle(x, y, opts.PointRadius)
		}
		c.Fill()
	}
	return c
}

func SavePNG(c *gg.Context, path string) error {
	return errors.Wrapf(c.SavePNG(path), "render: saving %s", path)
}

// Save the image and write it to out as an inline image escape, which iTerm
// displays in the terminal.
func Show(c *gg.Context, path string, out io.Writer) error {
	if err := SavePNG(c, path); err != nil {
		return err
	}
	return errors.Wrapf(imgcat.CatFile(path, out), "render: showing %s", path)
}
