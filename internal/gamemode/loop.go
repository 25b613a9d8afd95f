// Package gamemode runs a timed round: input, spawning, fish movement,
// scoring, the round clock and the end screen.
package gamemode

import (
	"errors"
	"fmt"
	"image"
	"log"
	"math/rand"
	"time"

	"fishcatch/internal/config"
	"fishcatch/internal/entity"
	"fishcatch/internal/record"
)

// ErrQuit is returned by Update once the player asks to leave.
var ErrQuit = errors.New("quit")

type Phase int

const (
	Active Phase = iota
	Over
)

func (p Phase) String() string {
	if p == Over {
		return "over"
	}
	return "active"
}

// Report summarizes one Update call.
type Report struct {
	Hits    int
	Spawned int
	Removed int
}

// Loop owns all round state. Update and Render must be called from the
// same goroutine, once per frame.
type Loop struct {
	phase     Phase
	newRecord bool // set once at the Active to Over transition

	field    entity.Field
	registry *entity.Registry
	spawner  *entity.Spawner
	score    *ScoreBoard
	clock    *Clock
}

// FieldFrom converts the configured geometry into the entity field.
func FieldFrom(cfg config.Config) entity.Field {
	return entity.Field{
		Width:           cfg.Field.Width,
		Height:          cfg.Field.Height,
		SpawnX:          cfg.Field.SpawnX,
		OffscreenMargin: cfg.Field.OffscreenMargin,
		SafeBand:        cfg.Field.SafeBand,
		SpeedMin:        cfg.Spawn.SpeedMin,
		SpeedMax:        cfg.Spawn.SpeedMax,
	}
}

func New(cfg config.Config, store record.Store, rng *rand.Rand, now time.Time) *Loop {
	field := FieldFrom(cfg)
	l := &Loop{
		field:    field,
		registry: entity.NewRegistry(field),
		spawner:  entity.NewSpawner(rng, cfg.Spawn.Chance, cfg.Spawn.SpecialChance),
		score:    NewScoreBoard(store, cfg.Round.HitReward),
		clock:    NewClock(cfg.Round.Duration, now),
	}
	log.Printf("[Round] started, record %d", l.score.Record)
	return l
}

// Reset starts a fresh round in place: no fish, zero score, the record
// reloaded from the store and the clock restarted at now.
func (l *Loop) Reset(now time.Time) {
	l.registry.Clear()
	l.score.Reset()
	l.clock.Restart(now)
	l.phase = Active
	l.newRecord = false
	log.Printf("[Round] restarted, record %d", l.score.Record)
}

// Update advances one frame. Events are handled in order. It returns
// ErrQuit when the player quits or closes the window.
func (l *Loop) Update(now time.Time, events []Event) (Report, error) {
	var rep Report

	if l.phase == Over {
		for _, ev := range events {
			switch ev.Kind {
			case KeyQuit, WindowClose:
				return rep, ErrQuit
			case KeyRestart:
				// Remaining events belonged to the finished round.
				l.Reset(now)
				return rep, nil
			}
		}
		return rep, nil
	}

	for _, ev := range events {
		switch ev.Kind {
		case WindowClose:
			return rep, ErrQuit
		case PointerDown:
			if l.registry.RemoveAt(ev.Pos) {
				l.score.OnHit()
				rep.Hits++
			}
		}
	}

	if l.spawner.MaybeSpawn(l.registry) != nil {
		rep.Spawned++
	}
	rep.Removed = l.registry.Tick()

	l.clock.Tick(now)
	if l.clock.IsOver() {
		l.phase = Over
		l.newRecord = l.score.Finalize()
		log.Printf("[Round] over, score %d, record %d, new record %t",
			l.score.Score, l.score.Record, l.newRecord)
	}
	return rep, nil
}

// Render draws the current frame through r.
func (l *Loop) Render(r Renderer) {
	r.DrawBackground()

	switch l.phase {
	case Active:
		for _, f := range l.registry.Fish() {
			r.DrawFish(f)
		}
		r.DrawText(fmt.Sprintf("Score: %d", l.score.Score), image.Pt(20, 20), Ink, Primary)
		r.DrawText(fmt.Sprintf("Time: %d", l.clock.Seconds()), image.Pt(20, 60), Ink, Primary)
		r.DrawText(fmt.Sprintf("Record: %d", l.score.Record), image.Pt(20, 100), Ink, Secondary)

	case Over:
		cx, cy := l.field.Width/2, l.field.Height/2
		r.DrawText("Time's up!", image.Pt(cx-100, cy-50), Ink, Primary)
		r.DrawText(fmt.Sprintf("Final score: %d", l.score.Score), image.Pt(cx-120, cy), Ink, Primary)
		if l.newRecord {
			r.DrawText("New record!", image.Pt(cx-60, cy+40), Highlight, Secondary)
		}
		r.DrawText("Press R to restart or ESC to quit", image.Pt(cx-180, cy+80), Ink, Secondary)
	}

	r.Present()
}

func (l *Loop) Phase() Phase { return l.phase }
func (l *Loop) Score() int { return l.score.Score }
func (l *Loop) Record() int { return l.score.Record }
func (l *Loop) NewRecord() bool { return l.newRecord }
func (l *Loop) Remaining() time.Duration { return l.clock.Remaining }
func (l *Loop) Registry() *entity.Registry { return l.registry }
