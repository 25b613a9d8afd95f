package gamemode

import "image"

type EventKind int

const (
	PointerDown EventKind = iota
	KeyRestart
	KeyQuit
	WindowClose
)

// Event is one input signal. Pos is set for PointerDown only.
type Event struct {
	Kind EventKind
	Pos  image.Point
}

func Click(x, y int) Event {
	return Event{Kind: PointerDown, Pos: image.Pt(x, y)}
}
