package level

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/younwookim/relicescape/internal/application/state"
	"github.com/younwookim/relicescape/internal/application/system"
	"github.com/younwookim/relicescape/internal/domain/entity"
	"github.com/younwookim/relicescape/internal/infrastructure/config"
)

// Kind selects the layout, entities and rules of a level.
type Kind int

const (
	KindTutorial Kind = iota
	KindForest
	KindDesert
	KindInferno
)

// String returns the in-game name of the level
func (k Kind) String() string {
	switch k {
	case KindTutorial:
		return "Sunflower Garden"
	case KindForest:
		return "Whispering Woods"
	case KindDesert:
		return "Desert of Echoes"
	case KindInferno:
		return "Infernal Depths"
	default:
		return "Unknown"
	}
}

// State returns the progression state that plays this level.
func (k Kind) State() state.GameState {
	switch k {
	case KindForest:
		return state.StateLevel1
	case KindDesert:
		return state.StateLevel2
	case KindInferno:
		return state.StateLevel3
	default:
		return state.StateTutorial
	}
}

// Level is one playable map with everything living on it. The player is
// borrowed: levels move and damage it but never replace it.
type Level struct {
	Kind Kind
	Grid *entity.Grid

	Enemies []*entity.Enemy
	Boss    *entity.Boss
	Dummies []*entity.TrainingDummy
	NPCs    []*entity.NPC
	Objects []*entity.InteractiveObject
	Drops   []*entity.ItemDrop
	Puzzle  *entity.MathPuzzle
	Shop    *entity.Shop

	Exit entity.TileCoord

	player *entity.Player
	cfg    *config.GameConfig
	rng    *rand.Rand
	log    *zap.Logger
	events *system.EventQueue

	input     *system.InputSystem
	collision *system.CollisionSystem
	hazards   *system.HazardSystem
	ai        *system.AISystem
	combat    *system.CombatSystem
	spawn     *system.SpawnTimer

	// Tutorial objectives
	moved         bool
	attacked      bool
	pickedUp      bool
	dummyDefeated bool
	canExit       bool

	bridgeBuilt   bool
	bossDefeated  bool
	exitRequested bool
}

// New builds a level of kind around player. Every level owns its systems;
// rng, log and events are shared with the caller.
func New(kind Kind, player *entity.Player, cfg *config.GameConfig, rng *rand.Rand, log *zap.Logger, events *system.EventQueue) *Level {
	s := cfg.Settings
	l := &Level{
		Kind:      kind,
		Grid:      entity.NewGrid(s.World.Width, s.World.Height, s.World.TileSize, entity.TileGrass),
		player:    player,
		cfg:       cfg,
		rng:       rng,
		log:       log.With(zap.String("level", kind.String())),
		events:    events,
		input:     system.NewInputSystem(),
		collision: system.NewCollisionSystem(s.World.PushStep),
		hazards:   system.NewHazardSystem(&s.Hazards),
		ai:        system.NewAISystem(&cfg.Tables.Bestiary.Wander, rng),
		combat:    system.NewCombatSystem(s.Timers.HitFlash, rng),
	}

	switch kind {
	case KindTutorial:
		l.buildTutorial()
	case KindForest:
		l.buildForest()
		l.spawn = system.NewSpawnTimer(s.Spawns.ForestRespawn)
	case KindDesert:
		l.buildDesert()
		l.spawn = system.NewSpawnTimer(s.Spawns.DesertScorpion)
	case KindInferno:
		l.buildInferno()
		l.spawn = system.NewSpawnTimer(s.Spawns.InfernoMinion)
	}

	l.log.Debug("level built",
		zap.Int("enemies", len(l.Enemies)),
		zap.Int("objects", len(l.Objects)),
		zap.Int("drops", len(l.Drops)))
	return l
}

// Player returns the borrowed player.
func (l *Level) Player() *entity.Player { return l.player }

// BridgeBuilt reports whether the forest vine has been pushed into the river.
func (l *Level) BridgeBuilt() bool { return l.bridgeBuilt }

// BossDefeated reports whether the inferno guardian has fallen.
func (l *Level) BossDefeated() bool { return l.bossDefeated }

// CanExit reports whether the tutorial objectives are complete.
func (l *Level) CanExit() bool { return l.canExit }

// ExitRequested reports whether the exit has already fired.
func (l *Level) ExitRequested() bool { return l.exitRequested }

// Entry returns the spawn point of the level in world pixels.
func (l *Level) Entry() entity.Vec2 {
	switch l.Kind {
	case KindForest, KindDesert:
		return l.Grid.TileOrigin(2, 2)
	case KindInferno:
		return l.Grid.TileOrigin(10, 2)
	default:
		return l.Grid.TileOrigin(2, 7)
	}
}

// Enter places the player at the entry point and greets them.
func (l *Level) Enter() {
	l.player.Pos = l.Entry()
	l.exitRequested = false
	if l.spawn != nil {
		l.spawn.Reset()
	}

	switch l.Kind {
	case KindForest:
		l.events.Message("Kill the snake first, you will know why...")
	case KindDesert:
		l.events.Message("Welcome to the Desert! Find keys and solve the puzzle!")
	case KindInferno:
		l.events.Message("BOSS FIGHT! Defeat the Infernal Guardian!")
	}
	l.log.Info("level entered")
}

// Update advances the level by one frame. The order is fixed: player,
// collision, hazards, AI, combat, items and interactables, spawns, exit.
func (l *Level) Update(dt float64, frame system.Frame) {
	before := l.player.Health
	defer l.damageFeedback(before)

	for _, e := range l.Enemies {
		e.JustKilled = false
	}

	l.input.UpdatePlayer(l.player, frame, dt)
	if l.Kind == KindTutorial {
		l.tutorialProgress()
	}

	l.collision.Resolve(&l.player.Body, l.Grid, l.blocking)
	l.collision.Clamp(&l.player.Body, l.Grid)

	l.applyHazards(dt)
	if l.player.IsDead() {
		return
	}

	l.updateAI(dt)
	if l.player.IsDead() {
		return
	}

	l.resolveCombat()

	for _, d := range l.Drops {
		d.Update(dt)
	}
	for _, d := range l.Dummies {
		d.Update(dt)
	}
	l.pickups(frame)
	l.interactObjects(frame)
	l.interactNPCs(frame)
	l.updatePuzzle(frame)
	l.updateShop(frame)
	if l.Kind == KindTutorial {
		l.tutorialCompletion()
	}

	l.updateSpawns(dt)
	l.checkExit()
}

func (l *Level) damageFeedback(before int) {
	if lost := before - l.player.Health; lost > 0 {
		l.events.Push(system.DamageFeedbackEvent{Amount: lost})
	}
}

func (l *Level) blocking(x, y int, kind entity.TileKind) bool {
	if l.Kind == KindForest && l.bridgeBuilt && x == bridgeTile.X && y == bridgeTile.Y {
		return false
	}
	return kind.Blocking()
}

func (l *Level) applyHazards(dt float64) {
	switch l.Kind {
	case KindDesert:
		l.hazards.ApplyQuicksand(l.player, l.Grid, entity.TileQuicksand)
	case KindInferno:
		resistant := l.player.Inventory.Has(entity.ItemFireResistancePotion)
		if dealt := l.hazards.ApplyLava(l.player, l.Grid, lavaTile, resistant, dt); dealt > 0 {
			l.events.Message("BURNING! -%d HP", dealt)
		}
	}
}

func (l *Level) updateAI(dt float64) {
	for _, e := range l.Enemies {
		l.ai.UpdateEnemy(e, l.player, dt)
	}
	if l.Boss != nil {
		l.ai.UpdateBoss(l.Boss, l.player, dt)
	}
}

func (l *Level) resolveCombat() {
	if !l.player.CanHit() {
		return
	}
	switch l.Kind {
	case KindTutorial:
		l.strikeDummies()
	case KindForest:
		l.strikeEnemies(system.ForestKeyPolicy, forestKeys)
	case KindDesert:
		l.strikeEnemies(system.AlwaysKeyPolicy, desertKeys)
	case KindInferno:
		l.strikeInferno()
	}
}

// strikeEnemies resolves a swing against regular enemies and hands out
// the loot of a kill.
func (l *Level) strikeEnemies(policy system.KeyPolicy, keysNeeded int) {
	hit, ok := l.combat.StrikeEnemies(l.player, l.Enemies)
	if !ok || !hit.Killed {
		return
	}
	e := l.Enemies[hit.Index]
	l.log.Debug("enemy slain", zap.Stringer("kind", e.Kind))

	keys := l.player.Inventory.Count(entity.ItemKey)
	if l.combat.DropKey(e, keys, policy) {
		l.drop(entity.ItemKey, e.Pos)
		l.events.Message("Key dropped! Press E to pick up (%d/%d keys)", keys, keysNeeded)
	}
	if l.Kind == KindDesert && e.Kind == entity.EnemyScorpion && l.combat.Roll(l.cfg.Settings.Drops.CoinChance) {
		l.drop(entity.ItemDesertCoin, e.Pos)
		l.events.Message("Desert Coin dropped!")
	}
}

func (l *Level) drop(kind entity.ItemKind, pos entity.Vec2) {
	l.Drops = append(l.Drops, entity.NewItemDrop(kind, pos))
}

// pickups collects every drop within reach on an interact press.
func (l *Level) pickups(frame system.Frame) {
	interact := frame.Pressed(system.ActionInteract)
	radius := l.cfg.Settings.Interact.PickupRadius

	kept := l.Drops[:0]
	for _, d := range l.Drops {
		if !system.Near(l.player.Pos, d.Pos, radius) {
			kept = append(kept, d)
			continue
		}
		if !interact {
			l.pickupHint(d)
			kept = append(kept, d)
			continue
		}
		if !l.collect(d.Kind) {
			kept = append(kept, d)
		}
	}
	for i := len(kept); i < len(l.Drops); i++ {
		l.Drops[i] = nil
	}
	l.Drops = kept
}

func (l *Level) pickupHint(d *entity.ItemDrop) {
	switch l.Kind {
	case KindTutorial:
		if !l.pickedUp {
			l.events.Message("Press E to pick up!")
		}
	case KindInferno:
		l.events.Message("Press E to pick up %s", d.Kind)
	}
}

// collect applies the pickup effect of kind. It reports whether the drop
// was consumed.
func (l *Level) collect(kind entity.ItemKind) bool {
	p := l.player
	switch kind {
	case entity.ItemWateringCan:
		p.Inventory.Add(kind, 1)
		l.events.Message("Picked up Watering Can! (%d/%d)", p.Inventory.Count(kind), tutorialCans)
		if !l.pickedUp {
			l.pickedUp = true
			l.events.Message("Great! Collect all %d Watering Cans", tutorialCans)
		}
	case entity.ItemKey:
		p.Inventory.Add(kind, 1)
		keys := p.Inventory.Count(kind)
		needed := l.keysNeeded()
		l.events.Message("Picked up Key! (%d/%d keys)", keys, needed)
		if l.Kind == KindDesert && keys >= needed {
			l.events.Message("You have both keys! Find the puzzle to claim the relic!")
		}
	case entity.ItemDesertCoin:
		p.Inventory.Add(kind, 1)
		l.events.Message("Desert Coin collected! (%d coins)", p.Inventory.Count(kind))
	case entity.ItemFireResistancePotion:
		p.Inventory.Add(kind, 1)
		l.events.Message("Fire Resistance Potion! Lava won't hurt you!")
	case entity.ItemHealthPotion:
		p.Heal(potionHeal)
		l.events.Message("Health Potion! +%d HP", potionHeal)
	default:
		if !kind.IsRelic() || !l.equip(kind) {
			return false
		}
	}
	l.log.Debug("item collected", zap.Stringer("item", kind))
	return true
}

// equip applies the items table row of a relic. A relic without a row is
// left lying in the world.
func (l *Level) equip(kind entity.ItemKind) bool {
	def, ok := l.cfg.Tables.Item(kind.String())
	if !ok {
		l.log.Warn("missing item entry", zap.Stringer("item", kind))
		return false
	}
	l.player.Equip(kind, def.Damage, def.Weapon)

	switch kind {
	case entity.ItemGardenSpade, entity.ItemSpiritvineBlade:
		l.events.Message("%s equipped! Damage increased!", kind)
	case entity.ItemScrollOfAntimatter:
		l.events.Message("Scroll of Antimatter acquired! Ultimate power unlocked!")
	case entity.ItemInfernalCore:
		l.events.Message("INFERNAL CORE ACQUIRED! Ultimate power! Head to the exit!")
	}
	l.log.Info("relic equipped", zap.Stringer("relic", kind), zap.Int("damage", l.player.Weapon.Damage))
	return true
}

func (l *Level) keysNeeded() int {
	if l.Kind == KindDesert {
		return desertKeys
	}
	return forestKeys
}

// interactObjects handles vines and chests in reach.
func (l *Level) interactObjects(frame system.Frame) {
	interact := frame.Pressed(system.ActionInteract)
	radius := l.cfg.Settings.Interact.ObjectRadius

	for _, o := range l.Objects {
		if o.Activated || !system.Near(l.player.Pos, o.Pos, radius) {
			continue
		}
		switch o.Kind {
		case entity.ObjectVine:
			if interact {
				l.pushVine(o)
			}
		case entity.ObjectChest:
			l.chest(o, interact)
		}
	}
}

func (l *Level) chest(o *entity.InteractiveObject, interact bool) {
	keys := l.player.Inventory.Count(entity.ItemKey)
	if keys < o.RequiredKey {
		l.events.Message("Need %d keys to open! (%d/%d)", o.RequiredKey, keys, o.RequiredKey)
		return
	}
	if !interact {
		if o.RequiredKey > 0 {
			l.events.Message("Press E to open chest (%d keys required)", o.RequiredKey)
		} else {
			l.events.Message("Press E to open chest")
		}
		return
	}

	o.Activated = true
	switch l.Kind {
	case KindForest:
		l.drop(entity.ItemSpiritvineBlade, o.Pos.Add(entity.Vec2{X: 20, Y: 40}))
		l.events.Message("Chest opened! Spiritvine Blade appeared! Press E to pick up")
	case KindDesert:
		drops := l.cfg.Settings.Drops
		for i := 0; i < drops.ChestCoins; i++ {
			l.drop(entity.ItemDesertCoin, l.combat.Scatter(o.Pos, drops.ChestScatter))
		}
		l.events.Message("Chest opened! Desert Coins found!")
	case KindInferno:
		l.drop(entity.ItemHealthPotion, o.Pos.Add(entity.Vec2{Y: 20}))
		l.events.Message("Chest opened! Health Potion found!")
	}
	l.log.Debug("chest opened", zap.Float64("x", o.Pos.X), zap.Float64("y", o.Pos.Y))
}

func (l *Level) interactNPCs(frame system.Frame) {
	if !frame.Pressed(system.ActionInteract) {
		return
	}
	radius := l.cfg.Settings.Interact.ObjectRadius
	for _, n := range l.NPCs {
		if system.Near(l.player.Pos, n.Pos, radius) {
			n.TalkedTo = true
			l.events.Push(system.DialogueEvent{Speaker: n.Name, Text: n.Dialogue})
		}
	}
}

func (l *Level) updateSpawns(dt float64) {
	if l.spawn == nil {
		return
	}
	switch l.Kind {
	case KindForest:
		if l.spawn.Tick(dt) {
			l.respawnForest()
		}
	case KindDesert:
		if l.spawn.Tick(dt) {
			l.spawnFromQuicksand()
		}
	case KindInferno:
		if l.Boss != nil && !l.Boss.IsDead() && l.spawn.Tick(dt) {
			l.summonMinions()
		}
	}
}

// pruneDead drops corpses that can never come back.
func (l *Level) pruneDead() {
	kept := l.Enemies[:0]
	for _, e := range l.Enemies {
		if !e.IsDead() || e.JustKilled {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(l.Enemies); i++ {
		l.Enemies[i] = nil
	}
	l.Enemies = kept
}

func (l *Level) exitReady() bool {
	switch l.Kind {
	case KindTutorial:
		return l.canExit
	case KindForest:
		return l.player.HasRelic(entity.ItemSpiritvineBlade)
	case KindDesert:
		return l.player.HasRelic(entity.ItemScrollOfAntimatter)
	case KindInferno:
		return l.bossDefeated && l.player.HasRelic(entity.ItemInfernalCore)
	}
	return false
}

// checkExit fires the level's transition once when the player steps on
// the exit holding what the level demands.
func (l *Level) checkExit() {
	if l.exitRequested || !l.exitReady() {
		return
	}
	if !l.player.Bounds().Intersects(l.Grid.TileRect(l.Exit.X, l.Exit.Y)) {
		return
	}

	l.exitRequested = true
	ev := system.TransitionEvent{}
	switch l.Kind {
	case KindTutorial:
		ev.To = state.StateTransition
	case KindForest:
		ev.To = state.StateCutscene
		ev.Text = "Welcome to the Desert of Echoes\nFind 2 keys and solve the puzzle\nto claim the Scroll of Antimatter!"
	case KindDesert:
		ev.To = state.StateCutscene
		ev.Text = "Entering the Infernal Depths...\nPrepare for the ultimate challenge!\nThe boss awaits..."
	case KindInferno:
		ev.To = state.StateVictory
		ev.Text = "ULTIMATE VICTORY!\nYou have conquered all challenges!\nThe Infernal Core is yours!\nYou are the ultimate Relic Hunter!"
	}
	l.events.Push(ev)
	l.log.Info("exit reached", zap.Stringer("to", ev.To))
}

func (l *Level) enemyStats(kind entity.EnemyKind) entity.EnemyStats {
	def, ok := l.cfg.Tables.Enemy(kind.Key())
	if !ok {
		l.log.Warn("missing bestiary entry", zap.Stringer("kind", kind))
	}
	return entity.EnemyStats{
		MaxHealth:      def.Health,
		Size:           l.cfg.Settings.Player.Size,
		Speed:          def.Speed,
		DetectionRange: def.DetectionRange,
		AttackRange:    def.AttackRange,
		Damage:         def.Damage,
		Cooldown:       def.Cooldown,
	}
}

func (l *Level) newEnemy(kind entity.EnemyKind, pos entity.Vec2, dropsKey bool) *entity.Enemy {
	e := entity.NewEnemy(kind, pos, l.enemyStats(kind))
	e.DropsKey = dropsKey
	return e
}
