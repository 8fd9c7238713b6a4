package advanced

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/polycut/dbg"
)

// Debugging helpers. The polygon has no coordinates of its own, so drawings
// place the original vertices evenly on a circle, which is always convex.

type vertexKey struct {
	polygon *Polygon
	id      int
}

// Readable name for a vertex. Originals are green, clones made by cuts are cyan.
func (p *Polygon) DbgName(v VertexIndex) string {
	vertex := p.Vertices[v]
	name := fmt.Sprintf("%d:%s", vertex.Label, dbg.Name(vertexKey{p, vertex.ID}))
	if vertex.ID >= p.N {
		return aurora.Cyan(name).String()
	}
	return aurora.Green(name).String()
}

func (p *Polygon) DbgString() string {
	var builder strings.Builder
	for f := range p.Fragments {
		cycle := p.Fragment(FragmentID(f))
		names := make([]string, len(cycle))
		for i, v := range cycle {
			names[i] = p.DbgName(v)
		}
		fmt.Fprintf(&builder, "Fragment %d (%d vertices): %s\n", f, len(cycle), strings.Join(names, " -> "))
	}
	return builder.String()
}

// Fill colors for fragments, cycled when there are more fragments than colors
var fragmentColors = [][3]float64{
	{0.3, 0.2, 1},
	{1, 1, 0},
	{0, 0.8, 0.4},
	{1, 0.4, 0.2},
	{0.8, 0.2, 0.8},
	{0.2, 0.8, 1},
}

const drawPadding = 0.1

// Position of an original vertex on the drawing circle
func (p *Polygon) drawPosition(label int, size int) (x, y float64) {
	radius := float64(size) * (0.5 - drawPadding)
	angle := 2 * math.Pi * float64(label) / float64(p.N)
	return float64(size)/2 + radius*math.Cos(angle), float64(size)/2 - radius*math.Sin(angle)
}

// Draw the polygon as a size x size PNG. Fragments are filled, boundaries
// stroked, and the fan diagonals drawn dashed.
func (p *Polygon) Render(w io.Writer, size int) error {
	c := gg.NewContext(size, size)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(size), float64(size))
	c.Fill()

	for f := range p.Fragments {
		labels := p.FragmentLabels(FragmentID(f))
		c.MoveTo(p.drawPosition(labels[0], size))
		for _, label := range labels[1:] {
			c.LineTo(p.drawPosition(label, size))
		}
		c.ClosePath()
		color := fragmentColors[f%len(fragmentColors)]
		c.SetRGBA(color[0], color[1], color[2], 0.5)
		c.FillPreserve()
		c.SetRGB(0, 1, 0)
		c.SetLineWidth(3)
		c.Stroke()
	}

	c.SetRGB(1, 1, 1)
	c.SetLineWidth(1)
	c.SetDash(6, 4)
	for _, diagonal := range p.Triangulate() {
		x1, y1 := p.drawPosition(diagonal.A, size)
		x2, y2 := p.drawPosition(diagonal.B, size)
		c.DrawLine(x1, y1, x2, y2)
		c.Stroke()
	}
	c.SetDash()

	for label := 0; label < p.N; label++ {
		x, y := p.drawPosition(label, size)
		// Push labels outward so they don't sit on the boundary
		cx, cy := float64(size)/2, float64(size)/2
		x += (x - cx) * drawPadding
		y += (y - cy) * drawPadding
		c.DrawStringAnchored(fmt.Sprint(label), x, y, 0.5, 0.5)
	}

	return c.EncodePNG(w)
}

// Render to a temp file and print it to the terminal (iTerm only).
func (p *Polygon) DbgDraw(size int) error {
	path := filepath.Join(os.TempDir(), "polycut.png")
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	err = p.Render(file, size)
	file.Close()
	if err != nil {
		return err
	}
	imgcat.CatFile(path, os.Stdout)
	return nil
}
