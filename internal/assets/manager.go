// Package assets builds the text faces and sounds the window front end uses.
// Nothing is loaded from disk.
package assets

import (
	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Faces is the UI text face and the scales for the two text sizes.
type Faces struct {
	UI             text.Face
	PrimaryScale   float64
	SecondaryScale float64
}

func LoadFaces() *Faces {
	return &Faces{
		UI:             text.NewGoXFace(bitmapfont.Face),
		PrimaryScale:   2.5,
		SecondaryScale: 1.75,
	}
}
