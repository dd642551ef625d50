// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"math/rand"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/younwookim/relicescape/internal/application/scene"
	"github.com/younwookim/relicescape/internal/application/sim"
	"github.com/younwookim/relicescape/internal/application/state"
	"github.com/younwookim/relicescape/internal/application/system"
	"github.com/younwookim/relicescape/internal/domain/entity"
	"github.com/younwookim/relicescape/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorPlayer   = color.RGBA{100, 200, 100, 255}
	colorHurt     = color.RGBA{255, 255, 255, 200}
	colorSwing    = color.RGBA{255, 255, 255, 90}
	colorEnemy    = color.RGBA{200, 100, 100, 255}
	colorBoss     = color.RGBA{230, 60, 20, 255}
	colorDummy    = color.RGBA{190, 150, 80, 255}
	colorFlash    = color.RGBA{255, 255, 255, 255}
	colorNPC      = color.RGBA{120, 160, 230, 255}
	colorVine     = color.RGBA{40, 140, 60, 255}
	colorChest    = color.RGBA{160, 110, 40, 255}
	colorOpened   = color.RGBA{90, 70, 40, 255}
	colorDrop     = color.RGBA{255, 215, 0, 255}
	colorPuzzle   = color.RGBA{170, 90, 220, 255}
	colorHealthBG = color.RGBA{60, 60, 60, 255}
	colorHealthFG = color.RGBA{100, 200, 100, 255}
	colorOverlay  = color.RGBA{0, 0, 0, 200}
	colorGameOver = color.RGBA{100, 0, 0, 180}
)

var tileColors = [...]color.RGBA{
	entity.TileGrass:     {70, 140, 60, 255},
	entity.TileFlower:    {230, 200, 60, 255},
	entity.TileFence:     {120, 90, 60, 255},
	entity.TilePath:      {180, 160, 120, 255},
	entity.TileSign:      {150, 110, 70, 255},
	entity.TileExit:      {240, 240, 240, 255},
	entity.TileTree:      {30, 90, 40, 255},
	entity.TileWater:     {50, 90, 200, 255},
	entity.TileStone:     {120, 120, 130, 255},
	entity.TileChest:     {110, 80, 40, 255},
	entity.TileSand:      {220, 200, 140, 255},
	entity.TileCactus:    {60, 150, 70, 255},
	entity.TilePyramid:   {200, 170, 90, 255},
	entity.TileQuicksand: {160, 120, 70, 255},
	entity.TileStatue:    {140, 140, 150, 255},
	entity.TileShop:      {200, 80, 160, 255},
}

// Lava reuses the quicksand tile in the inferno.
var colorLava = color.RGBA{230, 80, 20, 255}

// Playing is the main gameplay scene
type Playing struct {
	config   *config.GameConfig
	sim      *sim.Simulation
	input    *system.InputSystem
	log      *zap.Logger
	previous system.InputState
	paused   bool
	screenW  int
	screenH  int
	tileSize int

	// Feedback
	shake      float64
	shakeDecay float64
	shakeRand  *rand.Rand // cosmetic, separate from the simulation's stream

	// Input recording
	recorder   *Recorder
	recordPath string
}

// New creates a new Playing scene running a simulation seeded with seed.
// If recordPath is not empty, gameplay will be recorded.
func New(cfg *config.GameConfig, seed int64, log *zap.Logger, recordPath string) *Playing {
	display := cfg.Settings.Display
	p := &Playing{
		config:     cfg,
		input:      system.NewInputSystem(),
		log:        log,
		screenW:    display.ScreenWidth,
		screenH:    display.ScreenHeight,
		tileSize:   cfg.Settings.World.TileSize,
		shakeDecay: display.ShakeDecay,
		shakeRand:  rand.New(rand.NewSource(1)),
		recordPath: recordPath,
	}

	p.sim = sim.New(cfg, seed, log, sim.Hooks{
		OnMessage: func(text string) {
			log.Debug("message", zap.String("text", text))
		},
		OnDamageFeedback: func(amount int) {
			p.shake += float64(amount) * display.ShakeIntensity
		},
		OnTransition: p.onTransition,
	})

	if recordPath != "" {
		p.recorder = NewRecorder(seed)
		log.Info("recording enabled", zap.String("path", recordPath), zap.Int64("seed", seed))
	}
	return p
}

// RecordConfig stores the settings directory in the recording, if any.
func (p *Playing) RecordConfig(dir string) {
	if p.recorder != nil {
		p.recorder.SetConfig(dir)
	}
}

// Sim returns the running simulation.
func (p *Playing) Sim() *sim.Simulation {
	return p.sim
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.paused = !p.paused
	}
	if p.paused {
		if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
			return nil, scene.ErrQuit
		}
		return nil, nil
	}

	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}

	p.Step(dt, p.input.Poll())
	return nil, nil // nil = stay on this scene
}

// Step advances the simulation by one frame of held actions.
func (p *Playing) Step(dt float64, current system.InputState) {
	if p.recorder != nil {
		p.recorder.RecordFrame(current)
	}
	p.sim.Update(dt, current, p.previous)
	p.previous = current
	p.shake *= p.shakeDecay
}

func (p *Playing) onTransition(from, to state.GameState, _ string) {
	switch to {
	case state.StateGameOver, state.StateVictory:
		// Auto-save recording at the end of a run
		p.saveRecording()
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}

	filename := p.recordPath
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.log.Error("failed to save recording", zap.Error(err))
		return
	}
	p.log.Info("recording saved", zap.String("path", filename), zap.Int("frames", p.recorder.FrameCount()))
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	snap := p.sim.Snapshot()

	camX, camY := p.shakeOffset()

	if snap.Grid != nil && snap.State.IsPlaying() {
		p.drawTiles(screen, snap, camX, camY)
		p.drawObjects(screen, snap, camX, camY)
		p.drawDrops(screen, snap, camX, camY)
		p.drawActors(screen, snap, camX, camY)
		p.drawPlayer(screen, snap, camX, camY)
		p.drawUI(screen, snap)
	}

	switch {
	case snap.State.IsTransition():
		p.drawCentered(screen, colorOverlay, fmt.Sprintf("Entering %s...", snap.LevelName))
	case snap.State == state.StateCutscene, snap.State == state.StateVictory:
		p.drawCentered(screen, colorOverlay, snap.Narration)
	case snap.State == state.StateGameOver:
		p.drawCentered(screen, colorGameOver, "GAME OVER\n\nPress R to restart")
	case p.paused:
		p.drawCentered(screen, colorOverlay, "PAUSED\n\nPress ESC to resume, Q to quit")
	}
}

// shakeOffset jitters the view while damage feedback decays.
func (p *Playing) shakeOffset() (float64, float64) {
	if p.shake < 0.5 {
		return 0, 0
	}
	return p.shake * (2*p.shakeRand.Float64() - 1), p.shake * (2*p.shakeRand.Float64() - 1)
}

func (p *Playing) drawTiles(screen *ebiten.Image, snap sim.Snapshot, camX, camY float64) {
	g := snap.Grid
	ts := float64(p.tileSize)
	inferno := snap.State == state.StateLevel3

	for ty := 0; ty < g.Height; ty++ {
		for tx := 0; tx < g.Width; tx++ {
			kind, ok := g.At(tx, ty)
			if !ok || int(kind) >= len(tileColors) {
				continue
			}
			c := tileColors[kind]
			if inferno && kind == entity.TileQuicksand {
				c = colorLava
			}
			ebitenutil.DrawRect(screen, float64(tx)*ts+camX, float64(ty)*ts+camY, ts, ts, c)
		}
	}
}

func (p *Playing) drawObjects(screen *ebiten.Image, snap sim.Snapshot, camX, camY float64) {
	for _, o := range snap.Objects {
		c := colorChest
		switch {
		case o.Name == entity.ObjectVine.String():
			c = colorVine
		case o.Activated:
			c = colorOpened
		}
		drawBox(screen, o.Box, camX, camY, c)
	}
	for _, n := range snap.NPCs {
		drawBox(screen, n.Box, camX, camY, colorNPC)
	}
	if pz := snap.Puzzle; pz != nil && !pz.Solved {
		drawBox(screen, pz.Box, camX, camY, colorPuzzle)
	}
}

func (p *Playing) drawDrops(screen *ebiten.Image, snap sim.Snapshot, camX, camY float64) {
	for _, d := range snap.Drops {
		drawBox(screen, d.Box, camX, camY, colorDrop)
	}
}

func (p *Playing) drawActors(screen *ebiten.Image, snap sim.Snapshot, camX, camY float64) {
	for _, d := range snap.Dummies {
		if d.State == entity.StateDead {
			continue
		}
		c := colorDummy
		if d.Flash {
			c = colorFlash
		}
		drawBox(screen, d.Box, camX, camY, c)
		drawHealthBar(screen, d, camX, camY)
	}
	for _, e := range snap.Enemies {
		drawBox(screen, e.Box, camX, camY, colorEnemy)
		drawHealthBar(screen, e, camX, camY)
	}
	if b := snap.Boss; b != nil {
		drawBox(screen, b.Box, camX, camY, colorBoss)
		drawHealthBar(screen, *b, camX, camY)
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, snap sim.Snapshot, camX, camY float64) {
	pl := snap.Player
	c := colorPlayer
	if pl.State == entity.StateHurt {
		c = colorHurt
	}
	drawBox(screen, pl.Box, camX, camY, c)

	if pl.Attacking {
		r := p.config.Settings.Player.AttackRange
		ctr := pl.Box.Center()
		ebitenutil.DrawRect(screen, ctr.X-r+camX, ctr.Y-r+camY, 2*r, 2*r, colorSwing)
	}
}

func (p *Playing) drawUI(screen *ebiten.Image, snap sim.Snapshot) {
	pl := snap.Player

	// Health bar
	barX := 10.0
	barY := float64(p.screenH - 20)
	barW := 200.0
	barH := 10.0
	ebitenutil.DrawRect(screen, barX, barY, barW, barH, colorHealthBG)
	ratio := 0.0
	if pl.MaxHealth > 0 {
		ratio = float64(pl.Health) / float64(pl.MaxHealth)
	}
	ebitenutil.DrawRect(screen, barX, barY, barW*ratio, barH, colorHealthFG)

	var hud strings.Builder
	fmt.Fprintf(&hud, "%s | HP %d/%d | %s (%d%%)", snap.LevelName, pl.Health, pl.MaxHealth, pl.Weapon.Name, pl.Weapon.Damage)
	for _, kind := range []entity.ItemKind{entity.ItemWateringCan, entity.ItemKey, entity.ItemDesertCoin, entity.ItemFireResistancePotion} {
		if n := pl.Inventory[kind]; n > 0 {
			fmt.Fprintf(&hud, " | %s x%d", kind, n)
		}
	}
	ebitenutil.DebugPrintAt(screen, hud.String(), 10, p.screenH-40)

	if len(pl.Relics) > 0 {
		names := make([]string, len(pl.Relics))
		for i, r := range pl.Relics {
			names[i] = r.String()
		}
		ebitenutil.DebugPrintAt(screen, "Relics: "+strings.Join(names, ", "), 10, p.screenH-55)
	}

	ebitenutil.DebugPrint(screen, "WASD: Move | Space: Attack | E: Interact | ESC: Pause")

	if snap.Message != "" {
		ebitenutil.DebugPrintAt(screen, snap.Message, p.screenW/2-len(snap.Message)*3, 40)
	}
	if d := snap.Dialogue; d != nil {
		ebitenutil.DrawRect(screen, 40, float64(p.screenH-180), float64(p.screenW-80), 110, colorOverlay)
		ebitenutil.DebugPrintAt(screen, d.Speaker+":\n"+d.Text, 60, p.screenH-170)
	}
	if pz := snap.Puzzle; pz != nil && pz.Active {
		text := fmt.Sprintf("%s = %d\n\n0-9: digits | -: sign | Backspace | Enter: submit", pz.Question, pz.Entry)
		ebitenutil.DebugPrintAt(screen, text, p.screenW/2-150, p.screenH/2)
	}
	if sh := snap.Shop; sh != nil && sh.Open {
		var b strings.Builder
		fmt.Fprintf(&b, "SHOP (%s x%d)\n", sh.Currency, pl.Inventory[sh.Currency])
		for i, slot := range sh.Slots {
			fmt.Fprintf(&b, "%d. %s - %d\n", i+1, slot.Name, slot.Price)
		}
		b.WriteString("TAB: close")
		ebitenutil.DebugPrintAt(screen, b.String(), p.screenW/2-100, p.screenH/2-60)
	}
}

func (p *Playing) drawCentered(screen *ebiten.Image, overlay color.Color, text string) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-120, p.screenH/2-40)
}

func drawBox(screen *ebiten.Image, r entity.Rect, camX, camY float64, c color.Color) {
	ebitenutil.DrawRect(screen, r.X+camX, r.Y+camY, r.W, r.H, c)
}

func drawHealthBar(screen *ebiten.Image, a sim.ActorView, camX, camY float64) {
	if a.MaxHealth <= 0 || a.Health >= a.MaxHealth {
		return
	}
	x, y := a.Box.X+camX, a.Box.Y+camY-6
	ebitenutil.DrawRect(screen, x, y, a.Box.W, 3, colorHealthBG)
	ebitenutil.DrawRect(screen, x, y, a.Box.W*float64(a.Health)/float64(a.MaxHealth), 3, colorHealthFG)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.log.Info("playing", zap.Int64("seed", p.sim.Seed()))
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}

