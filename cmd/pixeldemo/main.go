// seehuhn.de/go/pixels - a software rasterizer for 2D primitives
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command pixeldemo shows the rasterizers in a window.
//
// The static part of the scene is drawn once: an ellipse and two circles,
// a flood fill and a boundary fill of the centre region, and a sine wave.
// On top of this, every frame draws a rotating textured square, its
// outline with the selected line algorithm, and a minimap of the window.
//
// Press L to cycle through the line algorithms.  With -png the first
// frame is written to a file instead of opening a window.
package main

import (
	"flag"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pixels"
	"seehuhn.de/go/pixels/testcases"
)

const (
	spinSeconds = 4
	quadSize    = 60
	minimapSize = 110
)

func main() {
	width := flag.Int("width", 500, "window width in pixels")
	height := flag.Int("height", 500, "window height in pixels")
	texFile := flag.String("texture", "", "image file to use as texture (PNG, JPEG, BMP or WebP)")
	lineName := flag.String("line", "bresenham", "line algorithm: bresenham, slope, dda or dda-aa")
	pngFile := flag.String("png", "", "write the first frame to this PNG file and exit")
	verbose := flag.Bool("v", false, "log fill statistics")
	flag.Parse()

	if *verbose {
		pixels.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	alg, err := pixels.ParseLineAlgorithm(*lineName)
	if err != nil {
		log.Fatal(err)
	}
	tex, err := loadTexture(*texFile)
	if err != nil {
		log.Fatal(err)
	}

	d, err := newDemo(*width, *height, tex, alg)
	if err != nil {
		log.Fatal(err)
	}

	if *pngFile != "" {
		if err := d.render(0); err != nil {
			log.Fatal(err)
		}
		if err := writePNG(d.frame, *pngFile); err != nil {
			log.Fatal(err)
		}
		return
	}

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("pixeldemo")
	if err := ebiten.RunGame(d); err != nil {
		log.Fatal(err)
	}
}

// demo holds the state of the running program.  It implements
// [ebiten.Game].
type demo struct {
	width, height int

	base  *pixels.Surface // static part of the scene
	frame *pixels.Surface // base plus the animated shapes
	sc    *pixels.ScanConverter

	tex  *pixels.Texture
	alg  pixels.LineAlgorithm
	spin *gween.Tween

	img *ebiten.Image
}

func newDemo(width, height int, tex *pixels.Texture, alg pixels.LineAlgorithm) (*demo, error) {
	if width < 2*minimapSize || height < 2*minimapSize {
		return nil, errors.Errorf("window %dx%d is too small", width, height)
	}
	d := &demo{
		width:  width,
		height: height,
		base:   pixels.NewSurface(width, height),
		frame:  pixels.NewSurface(width, height),
		sc:     pixels.NewScanConverter(),
		tex:    tex,
		alg:    alg,
		spin:   gween.New(0, 360, spinSeconds, ease.InOutQuad),
	}
	drawBackground(d.base)
	return d, nil
}

// drawBackground draws the static part of the scene.
func drawBackground(s *pixels.Surface) {
	cx, cy := s.Width()/2, s.Height()/2

	pixels.Ellipse(s, cx, cy, -100, 100, pixels.Blue)
	pixels.Circle(s, cx, cy, 50, pixels.Green)
	pixels.Circle(s, cx+50, cy+30, 20, pixels.Blue)

	pixels.FloodFill(s, cx, cy, pixels.Red)
	pixels.BoundaryFillSelf(s, cx, cy, pixels.Blue)

	pixels.Sine(s, 25, 0.05, pixels.Red)
}

// render draws one frame, with the textured square rotated by angle
// degrees.
func (d *demo) render(angle float64) error {
	copy(d.frame.Pix(), d.base.Pix())

	cx := float64(d.width) - quadSize
	cy := float64(quadSize)
	quad := pixels.TexturePolygon{
		Vertices: []pixels.TexVertex{
			{Pos: vec.Vec2{X: cx - quadSize/2, Y: cy - quadSize/2}, UV: vec.Vec2{X: 0, Y: 0}},
			{Pos: vec.Vec2{X: cx + quadSize/2, Y: cy - quadSize/2}, UV: vec.Vec2{X: 1, Y: 0}},
			{Pos: vec.Vec2{X: cx + quadSize/2, Y: cy + quadSize/2}, UV: vec.Vec2{X: 1, Y: 1}},
			{Pos: vec.Vec2{X: cx - quadSize/2, Y: cy + quadSize/2}, UV: vec.Vec2{X: 0, Y: 1}},
		},
		Texture: d.tex,
	}
	m := pixels.RotateAbout(pixels.Identity(), angle, cx, cy)
	spun := pixels.Transform(quad, m)
	if err := d.sc.Fill(d.frame, spun, pixels.White); err != nil {
		return errors.Wrap(err, "textured square")
	}
	if err := pixels.Outline(d.frame, spun, d.alg, pixels.White); err != nil {
		return errors.Wrap(err, "square outline")
	}

	// minimap of the whole window in the bottom right corner
	w, h := float64(d.width), float64(d.height)
	window := rect.Rect{LLx: 0, LLy: 0, URx: w, URy: h}
	viewport := rect.Rect{
		LLx: w - minimapSize - 10, LLy: h - minimapSize - 10,
		URx: w - 10, URy: h - 10,
	}
	frame := pixels.Rect(viewport.LLx, viewport.LLy, viewport.URx, viewport.URy)
	if err := d.sc.Fill(d.frame, frame, pixels.Black); err != nil {
		return errors.Wrap(err, "minimap")
	}
	for _, s := range []pixels.Shape{
		pixels.Rect(0, 0, w-1, h-1),
		ellipsePolygon(w/2, h/2, 100, 100, 32),
		spun,
	} {
		mini, err := pixels.MapWindow(s, window, viewport)
		if err != nil {
			return errors.Wrap(err, "minimap")
		}
		if err := pixels.Outline(d.frame, mini, d.alg, pixels.White); err != nil {
			return errors.Wrap(err, "minimap")
		}
	}
	return nil
}

// Update advances the rotation and handles key presses.
func (d *demo) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		d.alg = (d.alg + 1) % (pixels.DDAAntialiased + 1)
		pixels.Logger().Debug("line algorithm", "alg", d.alg)
	}

	angle, finished := d.spin.Update(1 / float32(ebiten.TPS()))
	if finished {
		d.spin.Reset()
	}
	return d.render(float64(angle))
}

// Draw copies the current frame to the screen.
func (d *demo) Draw(screen *ebiten.Image) {
	if d.img == nil {
		d.img = ebiten.NewImage(d.width, d.height)
	}
	d.img.WritePixels(d.frame.Pix())
	screen.DrawImage(d.img, nil)
}

// Layout fixes the logical screen size to the surface size.
func (d *demo) Layout(outsideWidth, outsideHeight int) (int, int) {
	return d.width, d.height
}

// ellipsePolygon approximates an ellipse by a polygon with n corners.
func ellipsePolygon(cx, cy, rx, ry float64, n int) pixels.Polygon {
	p := make(pixels.Polygon, n)
	for i := range n {
		angle := float64(i) * 2 * math.Pi / float64(n)
		p[i] = vec.Vec2{X: cx + rx*math.Cos(angle), Y: cy + ry*math.Sin(angle)}
	}
	return p
}

// loadTexture reads the texture image from fname.  If fname is empty, a
// checkerboard is used.
func loadTexture(fname string) (*pixels.Texture, error) {
	if fname == "" {
		return testcases.Checkerboard(8, 8, pixels.White, pixels.RGB(0, 96, 160)), nil
	}

	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", fname)
	}
	pixels.Logger().Debug("texture loaded", "file", fname, "format", format, "size", img.Bounds().Size())
	return pixels.TextureFromImage(img, 0, 0)
}

func writePNG(s *pixels.Surface, fname string) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return errors.Wrap(s.WritePNG(f), "encode")
}
