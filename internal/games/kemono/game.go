// Package kemono implements the Kemono Collection virtual pet game.
// The player feeds and plays with creatures until they are collected and
// evolve. Collecting every base creature brings out the hidden ones.
package kemono

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/kemono/internal/config"
	"github.com/vovakirdan/kemono/internal/core"
	"github.com/vovakirdan/kemono/internal/games/kemono/packs"
	"github.com/vovakirdan/kemono/internal/games/kemono/pet"
	"github.com/vovakirdan/kemono/internal/registry"
)

// Minimum screen size the layout fits in.
const (
	MinScreenW = 60
	MinScreenH = 20
)

// Settings stored by the CLI before any game is created.
var (
	configPath      string
	pacePreset      config.PacePreset
	strictFavorites bool
	artDir          string
	logger          = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetPace sets the rules preset applied on top of the loaded config.
func SetPace(p config.PacePreset) {
	pacePreset = p
}

// SetStrictFavorites makes packs with unreachable favourites fail to start.
func SetStrictFavorites(strict bool) {
	strictFavorites = strict
}

// SetArtDir sets a directory of <id>.txt files that override the embedded art.
func SetArtDir(dir string) {
	artDir = dir
}

// SetLogger sets the logger sessions write milestones to.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

func init() {
	all, err := packs.Builtin()
	if err != nil {
		panic(err)
	}
	for _, p := range all {
		p := p
		registry.Register(p.ID, func() registry.Game { return New(p) })
	}
}

// RegisterDir registers every pack file under dir and returns the new ids.
// A missing directory registers nothing. Packs whose id is taken are
// skipped with a warning.
func RegisterDir(dir string) ([]string, error) {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	found, err := packs.NewLoader(dir).LoadAll()
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, p := range found {
		if registry.Exists(p.ID) {
			logger.Warn("pack id already registered, skipping", "id", p.ID, "file", p.FilePath)
			continue
		}
		p := p
		registry.Register(p.ID, func() registry.Game { return New(p) })
		ids = append(ids, p.ID)
	}
	return ids, nil
}

// Game adapts a pet.Session to the platform game loop.
type Game struct {
	pack    packs.Pack
	session *pet.Session
	runtime core.RuntimeConfig
	cfg     config.KemonoConfig
	art     AssetProvider
	log     *log.Logger

	tick       uint64
	message    string
	msgColor   core.Color
	messageTTL int

	layout   layout
	tooSmall bool
}

// New creates a game for a content pack. The session is built on Reset.
func New(p packs.Pack) *Game {
	return &Game{pack: p}
}

// NewFromFile loads a pack file and creates a game for it.
func NewFromFile(path string) (*Game, error) {
	p, err := packs.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return New(p), nil
}

// ID returns the pack id.
func (g *Game) ID() string {
	return g.pack.ID
}

// Title returns the pack title.
func (g *Game) Title() string {
	if g.pack.Title == "" {
		return g.pack.ID
	}
	return g.pack.Title
}

// Pack returns the content pack the game plays.
func (g *Game) Pack() packs.Pack {
	return g.pack
}

// Reset builds a fresh session. Progress never carries over.
func (g *Game) Reset(runtime core.RuntimeConfig) error {
	g.runtime = runtime
	g.log = logger.WithPrefix(g.pack.ID)

	cfg, err := config.LoadKemono(configPath)
	if err != nil {
		g.log.Warn("using default config", "err", err)
		cfg = config.DefaultKemonoConfig()
	}
	if pacePreset != "" {
		config.ApplyPace(&cfg, pacePreset)
	}
	g.cfg = cfg

	if g.art == nil {
		g.art = NewArtBook(artDir)
	}

	opts := []pet.Option{
		pet.WithRules(cfg.Rules.ToRules()),
		pet.WithSeed(runtime.Seed),
		pet.WithLogger(g.log),
	}
	if strictFavorites {
		opts = append(opts, pet.WithStrictFavorites())
	}
	s, err := g.pack.NewSession(opts...)
	if err != nil {
		return err
	}
	g.session = s

	g.tick = 0
	g.message = ""
	g.messageTTL = 0
	g.resize(runtime.ScreenW, runtime.ScreenH)
	g.say(fmt.Sprintf("Welcome to %s! Pick an item with 1-0.", g.Title()), core.ColorCyan)
	return nil
}

// SetAssets replaces the art source.
func (g *Game) SetAssets(a AssetProvider) {
	g.art = a
}

// Session exposes the domain session, mainly for tests and tools.
func (g *Game) Session() *pet.Session {
	return g.session
}

// Config returns the configuration the session was built with.
func (g *Game) Config() config.KemonoConfig {
	return g.cfg
}

func (g *Game) resize(w, h int) {
	g.runtime.ScreenW, g.runtime.ScreenH = w, h
	g.tooSmall = w < MinScreenW || h < MinScreenH
	if g.session == nil {
		g.layout = computeLayout(w, h, 0, 0)
		return
	}
	g.layout = computeLayout(w, h, g.session.Catalog().Len(), g.session.Browser().PageSize())
}

// Step applies the queued inputs in order, then advances animations.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var res core.StepResult
	if g.session == nil {
		return res
	}

	if !g.tooSmall {
		for _, input := range in.Inputs {
			g.handle(input, &res)
		}
	}

	g.session.Tick()
	g.tick++
	if g.messageTTL > 0 {
		g.messageTTL--
	}

	res.State = g.State()
	return res
}

func (g *Game) handle(in core.Input, res *core.StepResult) {
	s := g.session
	switch in.Action {
	case core.ActionPickItem:
		g.pickSlot(in.Slot)
	case core.ActionPrevItem:
		g.stepItem(-1)
	case core.ActionNextItem:
		g.stepItem(1)
	case core.ActionApply:
		g.report(s.ApplySelectedItem(), res)
	case core.ActionDeselect:
		s.DeselectItem()
		g.say("Hands empty.", core.ColorGray)
	case core.ActionSwitch:
		g.switchCreature(res)
	case core.ActionToggleCollection:
		s.ToggleCollectionView()
	case core.ActionPageNext:
		s.PageForward()
	case core.ActionPagePrev:
		s.PageBackward()
	case core.ActionPointer:
		g.press(in.Pointer, res)
	}
}

// heldSlot returns the tray slot of the held item, or -1.
func (g *Game) heldSlot() int {
	it, ok := g.session.SelectedItem()
	if !ok {
		return -1
	}
	return g.session.Catalog().IndexOf(it.Name())
}

// stepItem moves the held item along the tray, wrapping around.
// With nothing held it starts from the first or last slot.
func (g *Game) stepItem(delta int) {
	n := g.session.Catalog().Len()
	if n == 0 {
		return
	}
	slot := g.heldSlot()
	switch {
	case slot < 0 && delta < 0:
		slot = n - 1
	case slot < 0:
		slot = 0
	default:
		slot = ((slot+delta)%n + n) % n
	}
	g.pickSlot(slot)
}

// pickSlot selects the item in a tray slot. Empty slots are ignored.
func (g *Game) pickSlot(slot int) {
	item, ok := g.session.Catalog().At(slot)
	if !ok {
		return
	}
	if err := g.session.SelectItem(item.Name()); err != nil {
		g.log.Error("select item", "err", err)
		return
	}
	g.say(fmt.Sprintf("Holding %s.", item), core.ColorWhite)
}

func (g *Game) switchCreature(res *core.StepResult) {
	res.Cues = append(res.Cues, g.session.CycleSelectedCreature())
	g.say(fmt.Sprintf("Say hi to %s!", g.session.SelectedCreature().Name()), core.ColorWhite)
}

// press maps a mouse press: left on a tray slot picks it, left on a
// collection card selects that creature, left elsewhere uses the held
// item and right switches creature.
func (g *Game) press(p core.Pointer, res *core.StepResult) {
	if p.Button == core.PointerRight {
		g.switchCreature(res)
		return
	}
	if slot := g.layout.slotAt(p.X, p.Y); slot >= 0 {
		g.pickSlot(slot)
		return
	}
	if g.session.Browser().Visible() {
		if card := g.layout.cardAt(p.X, p.Y); card >= 0 {
			page := g.session.PageCreatures()
			if card < len(page) {
				if err := g.session.SelectCreature(page[card].Name()); err != nil {
					g.log.Error("select creature", "err", err)
					return
				}
				g.say(fmt.Sprintf("Say hi to %s!", page[card].Name()), core.ColorWhite)
			}
			return
		}
	}
	g.report(g.session.ApplySelectedItem(), res)
}

// report turns an outcome into cues, events and the status message.
func (g *Game) report(out pet.Outcome, res *core.StepResult) {
	res.Cues = append(res.Cues, out.Cues...)
	res.Events = append(res.Events, out.Events()...)

	switch out.Kind {
	case pet.OutcomeNoItemSelected:
		g.say("Pick an item first (1-0).", core.ColorGray)
	case pet.OutcomeMismatch:
		g.say(fmt.Sprintf("%s doesn't want the %s.", out.Creature, out.Item), core.ColorOrange)
	case pet.OutcomeFavorite:
		switch {
		case out.Unlocked:
			g.say("Hidden creatures appeared! Press C to see them.", core.ColorMagenta)
		case out.Transition.Evolved:
			g.say(fmt.Sprintf("%s evolved!", out.Creature), core.ColorGold)
		case out.Transition.Collected:
			g.say(fmt.Sprintf("%s joined your collection!", out.Creature), core.ColorCyan)
		case out.Delta == 0:
			g.say(fmt.Sprintf("%s loves the %s!", out.Creature, out.Item), core.ColorPink)
		default:
			g.say(fmt.Sprintf("%s loves the %s! +%d", out.Creature, out.Item, out.Delta), core.ColorPink)
		}
	}
}

func (g *Game) say(msg string, c core.Color) {
	g.message = msg
	g.msgColor = c
	g.messageTTL = g.cfg.Display.MessageTicks
}

// State returns the collection summary.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	r := g.session.Roster()
	return core.GameState{
		Collected:      r.CollectedCount(),
		Evolved:        r.EvolvedCount(),
		Active:         len(r.Active()),
		HiddenUnlocked: r.HiddenUnlocked(),
		CollectionOpen: g.session.Browser().Visible(),
		Paused:         g.tooSmall,
	}
}
