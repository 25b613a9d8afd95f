// Package entity holds the fish, the registry that moves and prunes them,
// and the per-frame spawner.
package entity

import (
	"image"
	"math/rand"
)

// Category decides whether a fish can be caught and how big it is drawn.
type Category int

const (
	Ordinary Category = iota
	Special
)

func (c Category) String() string {
	switch c {
	case Ordinary:
		return "ordinary"
	case Special:
		return "special"
	}
	return "unknown"
}

// BodySize returns the body ellipse size in pixels.
func (c Category) BodySize() (w, h int) {
	if c == Special {
		return 140, 80
	}
	return 100, 60
}

// noseReach widens the hit region past the body so clicks on the head count.
const noseReach = 40

// Field is the spawn and removal geometry shared by every fish.
type Field struct {
	Width           int
	Height          int
	SpawnX          int // x of a freshly spawned fish
	OffscreenMargin int // distance past the right edge before removal
	SafeBand        int // top and bottom rows kept clear for the HUD
	SpeedMin        int
	SpeedMax        int
}

type Fish struct {
	X, Y     int // Y is the body center line and never changes
	Speed    int
	Category Category
	Hit      image.Rectangle
}

func NewFish(x, y, speed int, category Category) *Fish {
	f := &Fish{
		X:        x,
		Y:        y,
		Speed:    speed,
		Category: category,
	}
	f.syncHit()
	return f
}

// Spawn creates a fish at the spawn edge with a random height inside the
// safe band and a random speed from the field's range.
func Spawn(rng *rand.Rand, field Field, category Category) *Fish {
	top := field.SafeBand
	bottom := field.Height - field.SafeBand
	y := top + rng.Intn(bottom-top+1)
	speed := field.SpeedMin + rng.Intn(field.SpeedMax-field.SpeedMin+1)
	return NewFish(field.SpawnX, y, speed, category)
}

func (f *Fish) Update() {
	f.X += f.Speed
	f.syncHit()
}

func (f *Fish) Offscreen(field Field) bool {
	return f.X > field.Width+field.OffscreenMargin
}

func (f *Fish) Catchable() bool {
	return f.Category == Special
}

func (f *Fish) syncHit() {
	w, h := f.Category.BodySize()
	top := f.Y - h/2
	f.Hit = image.Rect(f.X, top, f.X+w+noseReach, top+h)
}
