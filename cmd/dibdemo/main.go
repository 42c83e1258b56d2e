// Command dibdemo draws every dib primitive into each pixel format and
// writes the results as BMP files.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/gogpu/dib"
	"github.com/gogpu/dib/text"
)

var formats = []dib.Format{
	dib.Format1, dib.Format4, dib.Format8,
	dib.Format555, dib.Format565, dib.Format24, dib.Format8888,
}

func main() {
	var (
		width   = flag.Int("width", 480, "image width")
		height  = flag.Int("height", 320, "image height")
		outDir  = flag.String("out", ".", "output directory")
		verbose = flag.Bool("v", false, "log debug output")
	)
	flag.Parse()

	if *verbose {
		dib.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	source, err := text.GoRegular()
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}
	defer source.Close()
	face := source.Face(18)

	for _, f := range formats {
		s, err := dib.New(f, *width, *height)
		if err != nil {
			log.Fatalf("Failed to create %s surface: %v", f, err)
		}
		if err := render(s, face); err != nil {
			log.Fatalf("Failed to render %s: %v", f, err)
		}
		name := filepath.Join(*outDir, fmt.Sprintf("dib_%s.bmp", f))
		if err := save(name, s); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		log.Printf("Demo saved to %s (%dx%d)\n", name, *width, *height)
	}
}

func save(name string, s *dib.Surface) error {
	out, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := dib.EncodeBMP(out, s); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

func render(s *dib.Surface, face *text.Face) error {
	steps := []func(*dib.Surface) error{
		drawBackground,
		drawShapes,
		drawLines,
		drawBlits,
	}
	for _, step := range steps {
		if err := step(s); err != nil {
			return err
		}
	}
	return drawCaption(s, face)
}

func drawBackground(s *dib.Surface) error {
	b := s.Bounds()
	v := [2]dib.Vertex{
		{X: b.Min.X, Y: b.Min.Y, R: 0x1a00, G: 0x3300, B: 0x6600},
		{X: b.Max.X, Y: b.Max.Y, R: 0x8000, G: 0x8000, B: 0x9900},
	}
	return dib.GradientFill(s, v, dib.GradientVertical, nil)
}

func drawShapes(s *dib.Surface) error {
	st := dib.NewDrawState()
	st.Pen.Color = dib.RGB(0xff, 0xff, 0xff)

	st.Brush = dib.SolidBrush(dib.RGB(0xff, 0x4c, 0x4c))
	if err := dib.Ellipse(s, image.Rect(20, 20, 140, 120), st, nil); err != nil {
		return err
	}

	st.Brush = dib.HatchBrush(dib.HatchDiagCross, dib.RGB(0xff, 0xcc, 0))
	st.BkMode = dib.Transparent
	if err := dib.RoundRect(s, image.Rect(160, 20, 300, 120), 24, 24, st, nil); err != nil {
		return err
	}

	st.Brush = dib.SolidBrush(dib.RGB(0x4c, 0xff, 0x4c))
	if err := dib.Pie(s, image.Rect(320, 20, 440, 140), image.Pt(440, 80), image.Pt(380, 20), st, nil); err != nil {
		return err
	}

	// Five pointed star, filled with the nonzero rule so the center is solid.
	st.Brush = dib.SolidBrush(dib.RGB(0xff, 0xff, 0))
	st.FillMode = dib.FillWinding
	pts := make([]image.Point, 5)
	for i := range pts {
		a := float64(i*2)*2*math.Pi/5 - math.Pi/2
		pts[i] = image.Pt(80+int(math.Round(50*math.Cos(a))), 200+int(math.Round(50*math.Sin(a))))
	}
	return dib.Polygon(s, pts, st, nil)
}

func drawLines(s *dib.Surface) error {
	st := dib.NewDrawState()
	st.BkMode = dib.Transparent
	styles := []dib.PenStyle{dib.PenSolid, dib.PenDash, dib.PenDot, dib.PenDashDot, dib.PenDashDotDot}
	for i, style := range styles {
		st.Pen = dib.Pen{Style: style, Color: dib.RGB(0xff, 0xff, 0xff)}
		y := 160 + i*12
		if err := dib.Line(s, image.Pt(160, y), image.Pt(300, y+20), st, nil); err != nil {
			return err
		}
	}

	// A fan of lines clipped to two rectangles.
	clip := []image.Rectangle{image.Rect(320, 160, 380, 220), image.Rect(390, 230, 460, 300)}
	st.Pen = dib.Pen{Style: dib.PenSolid, Color: dib.RGB(0, 0xff, 0xff)}
	for a := 0; a < 360; a += 10 {
		rad := float64(a) * math.Pi / 180
		end := image.Pt(390+int(100*math.Cos(rad)), 230+int(100*math.Sin(rad)))
		if err := dib.Line(s, image.Pt(390, 230), end, st, clip); err != nil {
			return err
		}
	}
	return nil
}

func drawBlits(s *dib.Surface) error {
	icon, err := dib.New(dib.Format8888, 16, 16)
	if err != nil {
		return err
	}
	st := dib.NewDrawState()
	st.Brush = dib.HatchBrush(dib.HatchCross, dib.RGB(0xff, 0, 0xff))
	if err := dib.PatBlt(icon, icon.Bounds(), dib.PatCopy, st, nil); err != nil {
		return err
	}

	dst := dib.Coords{X: 20, Y: 260, Width: 48, Height: 48}
	if err := dib.StretchBlt(s, dst, icon, dib.Coords{Width: 16, Height: 16}, dib.SrcCopy, st, nil); err != nil {
		return err
	}
	mirrored := dib.Coords{X: 127, Y: 260, Width: -48, Height: 48}
	if err := dib.StretchBlt(s, mirrored, icon, dib.Coords{Width: 16, Height: 16}, dib.SrcInvert, st, nil); err != nil {
		return err
	}
	bf := dib.BlendFunc{ConstantAlpha: 0x80}
	return dib.AlphaBlend(s, image.Rect(140, 260, 188, 308), icon, icon.Bounds(), bf, nil)
}

func drawCaption(s *dib.Surface, face *text.Face) error {
	st := dib.NewDrawState()
	st.TextColor = dib.RGB(0xff, 0xff, 0xff)
	return text.DrawString(s, 200, 300, s.Format().String(), face, st, nil)
}
