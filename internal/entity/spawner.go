package entity

import "math/rand"

// Spawner rolls once per frame, so spawn density follows the achieved
// frame rate rather than wall-clock time.
type Spawner struct {
	Chance        float64 // probability of a spawn on a given frame
	SpecialChance float64 // probability a spawned fish is special

	rng *rand.Rand
}

func NewSpawner(rng *rand.Rand, chance, specialChance float64) *Spawner {
	return &Spawner{
		Chance:        chance,
		SpecialChance: specialChance,
		rng:           rng,
	}
}

// MaybeSpawn adds at most one fish to r and returns it, or nil.
func (s *Spawner) MaybeSpawn(r *Registry) *Fish {
	if s.rng.Float64() >= s.Chance {
		return nil
	}
	category := Ordinary
	if s.rng.Float64() < s.SpecialChance {
		category = Special
	}
	f := Spawn(s.rng, r.Field(), category)
	r.Add(f)
	return f
}
