package gamemode

import (
	"errors"
	"image"
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"fishcatch/internal/config"
	"fishcatch/internal/entity"
	"fishcatch/internal/record"
)

var t0 = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

const frame = time.Second / 60

func quietConfig() config.Config {
	cfg := config.Default()
	cfg.Spawn.Chance = 0
	return cfg
}

func newLoop(cfg config.Config, store record.Store) *Loop {
	return New(cfg, store, rand.New(rand.NewSource(1)), t0)
}

// run steps the loop one frame at a time until the given simulated time.
func run(t *testing.T, l *Loop, from, to time.Time) time.Time {
	t.Helper()
	now := from
	for now.Before(to) {
		now = now.Add(frame)
		if _, err := l.Update(now, nil); err != nil {
			t.Fatalf("Update at %v: %v", now.Sub(t0), err)
		}
	}
	return now
}

type failingStore struct{ saves int }

func (s *failingStore) Load() int { return 0 }
func (s *failingStore) Save(int) error {
	s.saves++
	return errors.New("disk full")
}

type textCall struct {
	s    string
	at   image.Point
	role ColorRole
	size TextSize
}

type recordingRenderer struct {
	backgrounds int
	fish        []*entity.Fish
	texts       []textCall
	presents    int
}

func (r *recordingRenderer) DrawBackground() { r.backgrounds++ }
func (r *recordingRenderer) DrawFish(f *entity.Fish) { r.fish = append(r.fish, f) }
func (r *recordingRenderer) Present() { r.presents++ }
func (r *recordingRenderer) DrawText(s string, at image.Point, role ColorRole, size TextSize) {
	r.texts = append(r.texts, textCall{s, at, role, size})
}

func (r *recordingRenderer) has(s string) bool {
	for _, c := range r.texts {
		if c.s == s {
			return true
		}
	}
	return false
}

func TestClockCountsDownAndClamps(t *testing.T) {
	c := NewClock(60*time.Second, t0)
	if c.Seconds() != 60 {
		t.Fatalf("fresh clock Seconds() = %d, want 60", c.Seconds())
	}

	prev := c.Remaining
	for ms := 0; ms <= 65000; ms += 250 {
		c.Tick(t0.Add(time.Duration(ms) * time.Millisecond))
		if c.Remaining > prev {
			t.Fatalf("Remaining grew from %v to %v", prev, c.Remaining)
		}
		if c.Remaining < 0 {
			t.Fatalf("Remaining went negative: %v", c.Remaining)
		}
		prev = c.Remaining
	}
	if !c.IsOver() || c.Remaining != 0 || c.Seconds() != 0 {
		t.Fatalf("clock after 65s: over=%t remaining=%v", c.IsOver(), c.Remaining)
	}
}

func TestClockSecondsRoundsUp(t *testing.T) {
	c := NewClock(60*time.Second, t0)
	tests := []struct {
		elapsed time.Duration
		want    int
	}{
		{500 * time.Millisecond, 60},
		{time.Second, 59},
		{59*time.Second + 500*time.Millisecond, 1},
		{60 * time.Second, 0},
	}
	for _, tt := range tests {
		c.Tick(t0.Add(tt.elapsed))
		if got := c.Seconds(); got != tt.want {
			t.Errorf("after %v Seconds() = %d, want %d", tt.elapsed, got, tt.want)
		}
	}
}

func TestClockIgnoresEarlierTimestamps(t *testing.T) {
	c := NewClock(10*time.Second, t0)
	c.Tick(t0.Add(4 * time.Second))
	c.Tick(t0.Add(time.Second))
	if c.Remaining != 6*time.Second {
		t.Fatalf("Remaining = %v, want 6s", c.Remaining)
	}
	c.Restart(t0.Add(20 * time.Second))
	if c.IsOver() || c.Remaining != 10*time.Second {
		t.Fatalf("after Restart: over=%t remaining=%v", c.IsOver(), c.Remaining)
	}
}

func TestScoreBoard(t *testing.T) {
	store := record.NewMemoryStore(50)
	s := NewScoreBoard(store, 10)
	if s.Score != 0 || s.Record != 50 {
		t.Fatalf("new board = %d/%d, want 0/50", s.Score, s.Record)
	}

	for i := 1; i <= 8; i++ {
		s.OnHit()
		if s.Score != 10*i {
			t.Fatalf("after %d hits Score = %d", i, s.Score)
		}
	}

	if !s.Finalize() {
		t.Fatal("Finalize with 80 over 50 = false")
	}
	if s.Record != 80 || store.Load() != 80 {
		t.Fatalf("record = %d, stored = %d, want 80", s.Record, store.Load())
	}

	s.Reset()
	if s.Score != 0 || s.Record != 80 {
		t.Fatalf("after Reset = %d/%d, want 0/80", s.Score, s.Record)
	}
	if s.Finalize() {
		t.Fatal("Finalize with 0 under 80 = true")
	}
}

func TestScoreBoardTieIsNotRecord(t *testing.T) {
	store := record.NewMemoryStore(20)
	s := NewScoreBoard(store, 10)
	s.OnHit()
	s.OnHit()
	if s.Finalize() {
		t.Fatal("Finalize on a tie = true")
	}
}

func TestScoreBoardSaveFailureKeepsScore(t *testing.T) {
	store := &failingStore{}
	s := NewScoreBoard(store, 10)
	s.OnHit()

	if !s.Finalize() {
		t.Fatal("Finalize = false, want true even when saving fails")
	}
	if store.saves != 1 {
		t.Fatalf("Save called %d times, want 1", store.saves)
	}
	if s.Score != 10 || s.Record != 10 {
		t.Fatalf("board = %d/%d, want 10/10", s.Score, s.Record)
	}
}

func TestRoundWithoutSpawnsEndsAtZero(t *testing.T) {
	l := newLoop(quietConfig(), record.NewMemoryStore(0))

	now := run(t, l, t0, t0.Add(59*time.Second))
	if l.Phase() != Active {
		t.Fatalf("phase at 59s = %v, want active", l.Phase())
	}
	run(t, l, now, t0.Add(60*time.Second))

	if l.Phase() != Over {
		t.Fatalf("phase at 60s = %v, want over", l.Phase())
	}
	if l.Score() != 0 || l.Registry().Len() != 0 {
		t.Fatalf("score = %d fish = %d, want 0/0", l.Score(), l.Registry().Len())
	}
	if l.NewRecord() {
		t.Fatal("NewRecord() = true for a zero score")
	}
}

func TestUnclickedSpecialFishLeaves(t *testing.T) {
	l := newLoop(quietConfig(), record.NewMemoryStore(0))
	f := entity.NewFish(-50, 300, 5, entity.Special)
	l.Registry().Add(f)

	now := t0
	for l.Registry().Len() > 0 {
		now = now.Add(frame)
		if _, err := l.Update(now, nil); err != nil {
			t.Fatal(err)
		}
	}
	if f.X <= 1200 {
		t.Fatalf("fish removed at X = %d, want > 1200", f.X)
	}
	if l.Score() != 0 {
		t.Fatalf("score = %d, want 0", l.Score())
	}
}

func TestClickSpecialFishScores(t *testing.T) {
	l := newLoop(quietConfig(), record.NewMemoryStore(0))
	l.Registry().Add(entity.NewFish(100, 300, 5, entity.Special))

	rep, err := l.Update(t0.Add(frame), []Event{Click(150, 300)})
	if err != nil {
		t.Fatal(err)
	}
	if rep.Hits != 1 || l.Score() != 10 {
		t.Fatalf("hits = %d score = %d, want 1/10", rep.Hits, l.Score())
	}
	if l.Registry().Len() != 0 {
		t.Fatalf("fish left = %d, want 0", l.Registry().Len())
	}
}

func TestClickOrdinaryFishIsIgnored(t *testing.T) {
	l := newLoop(quietConfig(), record.NewMemoryStore(0))
	l.Registry().Add(entity.NewFish(100, 300, 5, entity.Ordinary))

	rep, err := l.Update(t0.Add(frame), []Event{Click(150, 300), Click(5, 5)})
	if err != nil {
		t.Fatal(err)
	}
	if rep.Hits != 0 || l.Score() != 0 || l.Registry().Len() != 1 {
		t.Fatalf("hits = %d score = %d fish = %d, want 0/0/1", rep.Hits, l.Score(), l.Registry().Len())
	}
}

func TestRecordBeatenAndPersisted(t *testing.T) {
	store := record.NewFileStore(filepath.Join(t.TempDir(), "fish_record.json"))
	if err := store.Save(50); err != nil {
		t.Fatal(err)
	}
	l := newLoop(quietConfig(), store)
	if l.Record() != 50 {
		t.Fatalf("loaded record = %d, want 50", l.Record())
	}

	var clicks []Event
	for i := 0; i < 8; i++ {
		y := 130 + i*45
		l.Registry().Add(entity.NewFish(100, y, 2, entity.Special))
		clicks = append(clicks, Click(120, y))
	}
	if _, err := l.Update(t0.Add(frame), clicks); err != nil {
		t.Fatal(err)
	}
	if l.Score() != 80 {
		t.Fatalf("score = %d, want 80", l.Score())
	}

	run(t, l, t0.Add(frame), t0.Add(60*time.Second))
	if l.Phase() != Over || !l.NewRecord() {
		t.Fatalf("phase = %v newRecord = %t, want over/true", l.Phase(), l.NewRecord())
	}
	if got := store.Load(); got != 80 {
		t.Fatalf("stored record = %d, want 80", got)
	}
}

func TestOverIgnoresPointerAndRestarts(t *testing.T) {
	store := record.NewMemoryStore(0)
	l := newLoop(quietConfig(), store)
	l.Registry().Add(entity.NewFish(100, 300, 0, entity.Special))
	if _, err := l.Update(t0.Add(frame), []Event{Click(150, 300)}); err != nil {
		t.Fatal(err)
	}
	now := run(t, l, t0.Add(frame), t0.Add(60*time.Second))
	if l.Phase() != Over {
		t.Fatal("round did not end")
	}

	ghost := entity.NewFish(100, 300, 0, entity.Special)
	l.Registry().Add(ghost)
	if _, err := l.Update(now, []Event{Click(150, 300)}); err != nil {
		t.Fatal(err)
	}
	if l.Score() != 10 || l.Registry().Len() != 1 {
		t.Fatal("pointer input changed state during the end screen")
	}

	now = now.Add(frame)
	if _, err := l.Update(now, []Event{{Kind: KeyRestart}, {Kind: KeyQuit}}); err != nil {
		t.Fatalf("restart: %v", err)
	}
	if l.Phase() != Active || l.Score() != 0 || l.Registry().Len() != 0 {
		t.Fatalf("after restart phase = %v score = %d fish = %d", l.Phase(), l.Score(), l.Registry().Len())
	}
	if l.Record() != 10 || l.NewRecord() {
		t.Fatalf("after restart record = %d newRecord = %t, want 10/false", l.Record(), l.NewRecord())
	}
	if l.Remaining() != 60*time.Second {
		t.Fatalf("after restart remaining = %v, want 60s", l.Remaining())
	}
}

func TestQuitSignals(t *testing.T) {
	l := newLoop(quietConfig(), record.NewMemoryStore(0))

	if _, err := l.Update(t0.Add(frame), []Event{{Kind: KeyQuit}, {Kind: KeyRestart}}); err != nil {
		t.Fatalf("keys during an active round: %v", err)
	}
	if _, err := l.Update(t0.Add(2*frame), []Event{{Kind: WindowClose}}); !errors.Is(err, ErrQuit) {
		t.Fatalf("window close while active: err = %v, want ErrQuit", err)
	}

	now := run(t, l, t0.Add(2*frame), t0.Add(60*time.Second))
	if _, err := l.Update(now, []Event{{Kind: KeyQuit}}); !errors.Is(err, ErrQuit) {
		t.Fatalf("quit key on end screen: err = %v, want ErrQuit", err)
	}
}

func TestSpawningFillsRegistry(t *testing.T) {
	cfg := config.Default()
	cfg.Spawn.Chance = 1
	l := newLoop(cfg, record.NewMemoryStore(0))

	for i := 1; i <= 5; i++ {
		rep, err := l.Update(t0.Add(time.Duration(i)*frame), nil)
		if err != nil {
			t.Fatal(err)
		}
		if rep.Spawned != 1 {
			t.Fatalf("frame %d spawned %d, want 1", i, rep.Spawned)
		}
	}
	if l.Registry().Len() != 5 {
		t.Fatalf("registry len = %d, want 5", l.Registry().Len())
	}
	for _, f := range l.Registry().Fish() {
		if f.Hit.Min.X != f.X {
			t.Fatalf("hit region x %d does not track fish x %d", f.Hit.Min.X, f.X)
		}
	}
}

func TestRenderActiveHUD(t *testing.T) {
	l := newLoop(quietConfig(), record.NewMemoryStore(30))
	l.Registry().Add(entity.NewFish(0, 300, 2, entity.Ordinary))

	r := &recordingRenderer{}
	l.Render(r)

	if r.backgrounds != 1 || r.presents != 1 {
		t.Fatalf("background/present = %d/%d, want 1/1", r.backgrounds, r.presents)
	}
	if len(r.fish) != 1 {
		t.Fatalf("drew %d fish, want 1", len(r.fish))
	}
	want := []textCall{
		{"Score: 0", image.Pt(20, 20), Ink, Primary},
		{"Time: 60", image.Pt(20, 60), Ink, Primary},
		{"Record: 30", image.Pt(20, 100), Ink, Secondary},
	}
	if len(r.texts) != len(want) {
		t.Fatalf("texts = %+v, want %+v", r.texts, want)
	}
	for i := range want {
		if r.texts[i] != want[i] {
			t.Errorf("text %d = %+v, want %+v", i, r.texts[i], want[i])
		}
	}
}

func TestRenderEndScreen(t *testing.T) {
	l := newLoop(quietConfig(), record.NewMemoryStore(0))
	l.Registry().Add(entity.NewFish(100, 300, 0, entity.Special))
	l.Registry().Add(entity.NewFish(100, 200, 0, entity.Ordinary))
	if _, err := l.Update(t0.Add(frame), []Event{Click(110, 300)}); err != nil {
		t.Fatal(err)
	}
	run(t, l, t0.Add(frame), t0.Add(60*time.Second))

	r := &recordingRenderer{}
	l.Render(r)
	if len(r.fish) != 0 {
		t.Fatalf("drew %d fish on the end screen", len(r.fish))
	}
	for _, s := range []string{"Time's up!", "Final score: 10", "New record!", "Press R to restart or ESC to quit"} {
		if !r.has(s) {
			t.Errorf("end screen missing %q", s)
		}
	}

	if _, err := l.Update(t0.Add(61*time.Second), []Event{{Kind: KeyRestart}}); err != nil {
		t.Fatal(err)
	}
	run(t, l, t0.Add(61*time.Second), t0.Add(121*time.Second))
	r = &recordingRenderer{}
	l.Render(r)
	if r.has("New record!") {
		t.Fatal("new record message shown for a round that did not beat it")
	}
}
