package main

import (
	"errors"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"fishcatch/internal/assets"
	"fishcatch/internal/config"
	"fishcatch/internal/gamemode"
	"fishcatch/internal/record"
	"fishcatch/internal/render"
)

var pointerButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonMiddle,
	ebiten.MouseButtonRight,
}

// Game adapts the round loop to ebiten: it turns this frame's input into
// events, forwards them, and draws through the ebiten renderer.
type Game struct {
	cfg    config.Config
	loop   *gamemode.Loop
	screen *render.Screen
	blip   *audio.Player // nil when sound is off

	events   []gamemode.Event
	touchIDs []ebiten.TouchID
}

func NewGame(cfg config.Config, store record.Store, rng *rand.Rand) *Game {
	g := &Game{
		cfg:    cfg,
		loop:   gamemode.New(cfg, store, rng, time.Now()),
		screen: render.NewScreen(assets.LoadFaces()),
	}

	if cfg.Sound.Enabled {
		ctx := audio.NewContext(assets.SampleRate)
		g.blip = ctx.NewPlayerFromBytes(assets.Blip(880, 60*time.Millisecond))
		g.blip.SetVolume(cfg.Sound.Volume)
	}
	return g
}

// Update: Logic (TPS set from config)
func (g *Game) Update() error {
	g.events = g.pollInput(g.events[:0])

	rep, err := g.loop.Update(time.Now(), g.events)
	if errors.Is(err, gamemode.ErrQuit) {
		return ebiten.Termination
	}
	if err != nil {
		return err
	}

	if rep.Hits > 0 {
		g.playBlip()
	}
	return nil
}

func (g *Game) pollInput(events []gamemode.Event) []gamemode.Event {
	if ebiten.IsWindowBeingClosed() {
		events = append(events, gamemode.Event{Kind: gamemode.WindowClose})
	}

	for _, b := range pointerButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			x, y := ebiten.CursorPosition()
			events = append(events, gamemode.Click(x, y))
		}
	}
	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		x, y := ebiten.TouchPosition(id)
		events = append(events, gamemode.Click(x, y))
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		events = append(events, gamemode.Event{Kind: gamemode.KeyRestart})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		events = append(events, gamemode.Event{Kind: gamemode.KeyQuit})
	}
	return events
}

func (g *Game) playBlip() {
	if g.blip == nil {
		return
	}
	if err := g.blip.SetPosition(0); err != nil {
		log.Printf("[Sound] rewind failed: %v", err)
		return
	}
	g.blip.Play()
}

// Draw: Rendering (VSync)
func (g *Game) Draw(screen *ebiten.Image) {
	g.screen.Begin(screen)
	g.loop.Render(g.screen)
}

// Layout: the field is the logical screen, ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Field.Width, g.cfg.Field.Height
}

func (g *Game) Record() int {
	return g.loop.Record()
}
