package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"fishcatch/internal/assets"
	"fishcatch/internal/entity"
	"fishcatch/internal/gamemode"
)

const ellipseSegments = 32

// Screen implements gamemode.Renderer on an ebiten image. Begin binds the
// frame target; Present releases it.
type Screen struct {
	faces  *assets.Faces
	target *ebiten.Image

	white *ebiten.Image
	vs    []ebiten.Vertex
	is    []uint16
}

var _ gamemode.Renderer = (*Screen)(nil)

func NewScreen(faces *assets.Faces) *Screen {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &Screen{
		faces: faces,
		white: white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

func (s *Screen) Begin(dst *ebiten.Image) {
	s.target = dst
}

func (s *Screen) DrawBackground() {
	s.target.Fill(ColSky)
}

func (s *Screen) DrawFish(f *entity.Fish) {
	shape := ShapeOf(f)

	s.fillEllipse(shape.Body, shape.BodyColor)
	s.fillPolygon(shape.Tail[:], ColFin)
	s.fillPolygon(shape.Fin[:], ColFin)

	vector.DrawFilledCircle(s.target, shape.EyeOuter.Center.X, shape.EyeOuter.Center.Y, shape.EyeOuter.R, ColEyeOuter, true)
	vector.DrawFilledCircle(s.target, shape.EyeInner.Center.X, shape.EyeInner.Center.Y, shape.EyeInner.R, ColEyeInner, true)
}

func (s *Screen) DrawText(str string, at image.Point, role gamemode.ColorRole, size gamemode.TextSize) {
	scale := s.faces.PrimaryScale
	if size == gamemode.Secondary {
		scale = s.faces.SecondaryScale
	}
	clr := ColInk
	if role == gamemode.Highlight {
		clr = ColGold
	}

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(at.X), float64(at.Y))
	op.ColorScale.ScaleWithColor(clr)
	op.Filter = ebiten.FilterNearest
	text.Draw(s.target, str, s.faces.UI, op)
}

// Present drops the frame target; ebiten shows the frame once Draw returns.
func (s *Screen) Present() {
	s.target = nil
}

func (s *Screen) fillEllipse(e Ellipse, clr color.RGBA) {
	pts := make([]Point, ellipseSegments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / ellipseSegments
		pts[i] = Point{
			X: e.Center.X + e.RX*float32(math.Cos(a)),
			Y: e.Center.Y + e.RY*float32(math.Sin(a)),
		}
	}
	s.fillPolygon(pts, clr)
}

// fillPolygon fills a convex polygon as a triangle fan.
func (s *Screen) fillPolygon(pts []Point, clr color.RGBA) {
	if len(pts) < 3 {
		return
	}
	r, g, b, a := float32(clr.R)/0xff, float32(clr.G)/0xff, float32(clr.B)/0xff, float32(clr.A)/0xff

	s.vs = s.vs[:0]
	s.is = s.is[:0]
	for _, p := range pts {
		s.vs = append(s.vs, ebiten.Vertex{
			DstX: p.X, DstY: p.Y,
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		})
	}
	for i := 1; i < len(pts)-1; i++ {
		s.is = append(s.is, 0, uint16(i), uint16(i+1))
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	s.target.DrawTriangles(s.vs, s.is, s.white, op)
}
