package entity

import (
	"image"
	"slices"
)

// Registry owns the live fish. It is touched only from the frame loop.
type Registry struct {
	field Field
	fish  []*Fish
}

func NewRegistry(field Field) *Registry {
	return &Registry{field: field}
}

func (r *Registry) Field() Field { return r.field }

func (r *Registry) Add(f *Fish) {
	r.fish = append(r.fish, f)
}

func (r *Registry) Len() int { return len(r.fish) }

// Fish returns the live fish in spawn order. The slice must not be modified.
func (r *Registry) Fish() []*Fish { return r.fish }

// Tick moves every fish, then drops the ones that swam off the right edge.
// All moves happen before any removal so no fish is skipped.
func (r *Registry) Tick() (removed int) {
	for _, f := range r.fish {
		f.Update()
	}

	alive := make([]*Fish, 0, len(r.fish))
	for _, f := range r.fish {
		if f.Offscreen(r.field) {
			removed++
			continue
		}
		alive = append(alive, f)
	}
	r.fish = alive
	return removed
}

// RemoveAt removes the first special fish whose hit region contains p.
// Ordinary fish are never removed by a click.
func (r *Registry) RemoveAt(p image.Point) bool {
	i := slices.IndexFunc(r.fish, func(f *Fish) bool {
		return f.Catchable() && p.In(f.Hit)
	})
	if i < 0 {
		return false
	}
	r.fish = slices.Delete(r.fish, i, i+1)
	return true
}

func (r *Registry) Clear() {
	r.fish = nil
}
