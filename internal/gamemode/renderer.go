package gamemode

import (
	"image"

	"fishcatch/internal/entity"
)

type TextSize int

const (
	Primary TextSize = iota
	Secondary
)

// ColorRole names what a piece of text means; the renderer picks the color.
type ColorRole int

const (
	Ink ColorRole = iota
	Highlight
)

// Renderer draws what the loop hands it and keeps no game state.
type Renderer interface {
	DrawBackground()
	DrawFish(f *entity.Fish)
	DrawText(s string, at image.Point, role ColorRole, size TextSize)
	Present()
}
