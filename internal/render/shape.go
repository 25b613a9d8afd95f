// Package render draws a round with ebiten. It holds no game state.
package render

import (
	"image/color"

	"fishcatch/internal/entity"
)

var (
	ColSky      = color.RGBA{135, 206, 235, 0xff}
	ColInk      = color.RGBA{0, 0, 0, 0xff}
	ColGold     = color.RGBA{255, 215, 0, 0xff}
	ColSpecial  = color.RGBA{0, 200, 0, 0xff}
	ColOrdinary = color.RGBA{200, 50, 50, 0xff}
	ColFin      = color.RGBA{0, 200, 0, 0xff}
	ColEyeOuter = ColGold
	ColEyeInner = ColInk
)

type Point struct{ X, Y float32 }

type Ellipse struct {
	Center Point
	RX, RY float32
}

type Circle struct {
	Center Point
	R      float32
}

// FishShape is everything needed to paint one fish.
type FishShape struct {
	Body      Ellipse
	Tail      [3]Point
	Fin       [3]Point
	EyeOuter  Circle
	EyeInner  Circle
	BodyColor color.RGBA
}

// ShapeOf lays out a fish around its position: tail to the left of X, body
// ellipse from X, dorsal fin on top, eye near the nose.
func ShapeOf(f *entity.Fish) FishShape {
	w, h := f.Category.BodySize()
	x, cy := f.X, f.Y

	pt := func(x, y int) Point { return Point{float32(x), float32(y)} }

	tailW := w / 3
	finX := x + w/3
	eye := pt(x+w*8/10, cy)

	body := ColOrdinary
	if f.Category == entity.Special {
		body = ColSpecial
	}

	return FishShape{
		Body: Ellipse{
			Center: Point{float32(x) + float32(w)/2, float32(cy)},
			RX:     float32(w) / 2,
			RY:     float32(h) / 2,
		},
		Tail:      [3]Point{pt(x, cy), pt(x-tailW, cy-h/2), pt(x-tailW, cy+h/2)},
		Fin:       [3]Point{pt(finX, cy-h/2), pt(finX+h/2, cy-h), pt(finX+h, cy-h/2)},
		EyeOuter:  Circle{Center: eye, R: float32(h / 4)},
		EyeInner:  Circle{Center: eye, R: float32(h / 7)},
		BodyColor: body,
	}
}
