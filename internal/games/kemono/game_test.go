package kemono

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/kemono/internal/core"
	"github.com/vovakirdan/kemono/internal/registry"
)

func newGame(t *testing.T, id string, w, h int) *Game {
	t.Helper()
	rg, err := registry.Create(id)
	if err != nil {
		t.Fatalf("Create(%q): %v", id, err)
	}
	g := rg.(*Game)
	if err := g.Reset(core.RuntimeConfig{ScreenW: w, ScreenH: h, TickRate: 60, Seed: 42}); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	return g
}

func step(g *Game, build func(f *core.InputFrame)) core.StepResult {
	f := core.NewInputFrame()
	build(&f)
	return g.Step(f)
}

func feed(g *Game, slot, times int) []core.StepResult {
	var out []core.StepResult
	for i := 0; i < times; i++ {
		out = append(out, step(g, func(f *core.InputFrame) {
			f.PickSlot(slot)
			f.Set(core.ActionApply)
		}))
	}
	return out
}

func TestBuiltinPacksRegistered(t *testing.T) {
	for _, id := range []string{"classic", "starter"} {
		if !registry.Exists(id) {
			t.Errorf("pack %q not registered", id)
		}
	}
}

func TestPickThenApplyInOneFrame(t *testing.T) {
	g := newGame(t, "classic", 80, 24)

	res := feed(g, 0, 1)[0]
	cat := g.Session().SelectedCreature()
	if cat.Affection() != 5 {
		t.Fatalf("affection = %d, expected 5", cat.Affection())
	}
	if len(res.Cues) != 1 || res.Cues[0] != core.CueHappy {
		t.Errorf("Cues = %v, expected [happy]", res.Cues)
	}

	// Apply before pick uses whatever was held before.
	res = step(g, func(f *core.InputFrame) {
		f.Set(core.ActionApply)
		f.PickSlot(1)
	})
	if cat.Affection() != 10 {
		t.Errorf("apply should use the held Fish first, affection = %d", cat.Affection())
	}
	if it, _ := g.Session().SelectedItem(); it.Name() != "Meat" {
		t.Errorf("held = %q, expected Meat", it.Name())
	}
}

func TestMismatchCue(t *testing.T) {
	g := newGame(t, "classic", 80, 24)
	res := feed(g, 4, 1)[0] // Bone
	if len(res.Cues) != 1 || res.Cues[0] != core.CueToyMismatch {
		t.Errorf("Cues = %v, expected [toyMismatch]", res.Cues)
	}
	if g.Session().SelectedCreature().Affection() != 0 {
		t.Error("mismatch changed affection")
	}
}

func TestApplyWithoutItemHasNoCue(t *testing.T) {
	g := newGame(t, "classic", 80, 24)
	res := step(g, func(f *core.InputFrame) { f.Set(core.ActionApply) })
	if len(res.Cues) != 0 {
		t.Errorf("Cues = %v, expected none", res.Cues)
	}
	if !strings.Contains(g.message, "Pick an item first") {
		t.Errorf("message = %q", g.message)
	}
}

func TestItemStepping(t *testing.T) {
	g := newGame(t, "starter", 80, 24)
	held := func() string {
		it, _ := g.Session().SelectedItem()
		return it.Name()
	}

	step(g, func(f *core.InputFrame) { f.Set(core.ActionPrevItem) })
	if held() != "Sun" {
		t.Errorf("prev from empty = %q, expected the last item", held())
	}
	step(g, func(f *core.InputFrame) { f.Set(core.ActionNextItem) })
	if held() != "Berry" {
		t.Errorf("next from last = %q, expected wrap to Berry", held())
	}

	// Slot 0 key (tenth slot) is empty in a three item pack.
	step(g, func(f *core.InputFrame) { f.PickSlot(9) })
	if held() != "Berry" {
		t.Errorf("empty slot changed the held item to %q", held())
	}

	step(g, func(f *core.InputFrame) { f.Set(core.ActionDeselect) })
	if _, ok := g.Session().SelectedItem(); ok {
		t.Error("deselect kept the item")
	}
}

func TestPointerMapping(t *testing.T) {
	g := newGame(t, "classic", 80, 24)

	ball := g.layout.slots[3]
	step(g, func(f *core.InputFrame) { f.Press(core.Pointer{X: ball.X + 1, Y: ball.Y, Button: core.PointerLeft}) })
	if it, ok := g.Session().SelectedItem(); !ok || it.Name() != "Ball" {
		t.Fatalf("click on slot 3 held %q", it.Name())
	}

	cx, cy := g.layout.panel.Center()
	res := step(g, func(f *core.InputFrame) { f.Press(core.Pointer{X: cx, Y: cy, Button: core.PointerLeft}) })
	if g.Session().SelectedCreature().Affection() != 5 {
		t.Errorf("left click elsewhere should apply, affection = %d", g.Session().SelectedCreature().Affection())
	}
	if len(res.Cues) != 1 || res.Cues[0] != core.CueHappy {
		t.Errorf("Cues = %v", res.Cues)
	}

	res = step(g, func(f *core.InputFrame) { f.Press(core.Pointer{X: cx, Y: cy, Button: core.PointerRight}) })
	if g.Session().SelectedCreature().Name() != "Rabbit" {
		t.Errorf("right click should switch creature, selected %s", g.Session().SelectedCreature().Name())
	}
	if len(res.Cues) != 1 || res.Cues[0] != core.CueSwitch {
		t.Errorf("Cues = %v, expected [switch]", res.Cues)
	}
}

func TestPointerSelectsCollectionCard(t *testing.T) {
	g := newGame(t, "classic", 80, 24)
	step(g, func(f *core.InputFrame) { f.Set(core.ActionToggleCollection) })
	if !g.State().CollectionOpen {
		t.Fatal("collection should be open")
	}

	card := g.layout.cards[2]
	step(g, func(f *core.InputFrame) { f.Press(core.Pointer{X: card.X + 1, Y: card.Y + 1}) })
	if name := g.Session().SelectedCreature().Name(); name != "Dog" {
		t.Errorf("card click selected %s, expected Dog", name)
	}
}

func TestCollectEvolveEvents(t *testing.T) {
	g := newGame(t, "classic", 80, 24)
	results := feed(g, 0, 20)

	var kinds []core.EventKind
	for _, r := range results {
		for _, e := range r.Events {
			kinds = append(kinds, e.Kind)
		}
	}
	want := []core.EventKind{core.EventCollected, core.EventEvolved}
	if !reflect.DeepEqual(kinds, want) {
		t.Fatalf("events = %v, expected %v", kinds, want)
	}
	if ev := results[19].Events[0]; ev.Creature != "Cat" || ev.Form != "cat-universe" {
		t.Errorf("evolve event = %+v", ev)
	}

	st := g.State()
	if st.Collected != 1 || st.Evolved != 1 || st.Active != 7 {
		t.Errorf("state = %+v", st)
	}
}

func TestUnlockThroughSteps(t *testing.T) {
	g := newGame(t, "starter", 80, 24)

	var unlocked int
	for creature := 0; creature < 2; creature++ {
		for _, r := range feed(g, 0, 5) { // Berry, potency 10
			for _, e := range r.Events {
				if e.Kind == core.EventUnlocked {
					unlocked++
				}
			}
		}
		step(g, func(f *core.InputFrame) { f.Set(core.ActionSwitch) })
	}
	if unlocked != 1 {
		t.Fatalf("unlock events = %d, expected 1", unlocked)
	}
	st := g.State()
	if !st.HiddenUnlocked || st.Active != 3 {
		t.Errorf("state = %+v", st)
	}
}

func TestCollectionPagingActions(t *testing.T) {
	g := newGame(t, "classic", 80, 24)
	b := g.Session().Browser()

	step(g, func(f *core.InputFrame) { f.Set(core.ActionPageNext) })
	if b.Page() != 0 {
		t.Errorf("single page should not advance, page = %d", b.Page())
	}
	step(g, func(f *core.InputFrame) {
		f.Set(core.ActionToggleCollection)
		f.Set(core.ActionToggleCollection)
	})
	if b.Visible() {
		t.Error("two toggles in one frame should cancel out")
	}
}

func TestReplayIsDeterministic(t *testing.T) {
	script := func(g *Game) Snapshot {
		feed(g, 0, 20)
		step(g, func(f *core.InputFrame) { f.Set(core.ActionSwitch) })
		feed(g, 2, 3)
		for i := 0; i < 10; i++ {
			g.Step(core.NewInputFrame())
		}
		return g.Snapshot()
	}

	a := script(newGame(t, "classic", 80, 24))
	b := script(newGame(t, "classic", 80, 24))
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("snapshots differ:\n%+v\n%+v", a, b)
	}
	if a.Selected != "Rabbit" || a.Creatures[1].Affection != 15 || a.Creatures[0].Form != "cat-universe" {
		t.Errorf("snapshot = %+v", a)
	}
	if len(a.Creatures[0].Sparkles) != 50 {
		t.Errorf("sparkles = %d", len(a.Creatures[0].Sparkles))
	}
}

func TestRenderEvolution(t *testing.T) {
	g := newGame(t, "classic", 80, 24)
	feed(g, 0, 20)

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	text := scr.String()

	for _, want := range []string{"Cat evolved!", "♥ 100/100", "Cat · evolved", "Collected 1/7"} {
		if !strings.Contains(text, want) {
			t.Errorf("screen missing %q:\n%s", want, text)
		}
	}
	if !strings.ContainsRune(text, SparkleChar) {
		t.Error("sparkles should be drawn while the evolution animation plays")
	}
}

func TestRenderCollectionOverlay(t *testing.T) {
	g := newGame(t, "classic", 80, 24)
	step(g, func(f *core.InputFrame) { f.Set(core.ActionToggleCollection) })

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	text := scr.String()
	for _, want := range []string{"Collection  0/7 collected", "??? hidden", "Wolf", "Page 1/1"} {
		if !strings.Contains(text, want) {
			t.Errorf("overlay missing %q:\n%s", want, text)
		}
	}
}

func TestTooSmallScreen(t *testing.T) {
	g := newGame(t, "classic", 40, 12)
	feed(g, 0, 1)

	if !g.State().Paused {
		t.Error("small screen should pause the game")
	}
	if g.Session().SelectedCreature().Affection() != 0 {
		t.Error("input should be ignored while the screen is too small")
	}

	scr := core.NewScreen(40, 12)
	g.Render(scr)
	if !strings.Contains(scr.String(), "Terminal too small") {
		t.Error("expected the too-small notice")
	}

	// Growing the screen resumes play.
	g.Render(core.NewScreen(80, 24))
	feed(g, 0, 1)
	if g.Session().SelectedCreature().Affection() != 5 {
		t.Error("input should resume after resize")
	}
}

func TestArtBook(t *testing.T) {
	book := NewArtBook("")

	if sp := book.Sprite("cat", spriteW, spriteH); sp.Placeholder || len(sp.Lines) == 0 {
		t.Errorf("cat art missing: %+v", sp)
	}

	big := book.Sprite("no-such-creature", spriteW, spriteH)
	if !big.Placeholder || big.Color != core.ColorRed {
		t.Errorf("large placeholder = %+v, expected red", big)
	}
	if w, h := big.Size(); w != spriteW || h != spriteH {
		t.Errorf("placeholder size = %dx%d", w, h)
	}

	icon := book.Sprite("berry", iconW, iconH)
	if !icon.Placeholder || icon.Color != core.ColorGreen {
		t.Errorf("icon placeholder = %+v, expected green", icon)
	}

	if sp := book.Sprite("../cat", 2, 2); !sp.Placeholder {
		t.Error("path-like ids must not resolve")
	}
}

func TestArtBookOverride(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "cat.txt"), []byte("=^.^=\n\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	book := NewArtBook(dir)

	sp := book.Sprite("cat", spriteW, spriteH)
	if len(sp.Lines) != 1 || sp.Lines[0] != "=^.^=" {
		t.Errorf("override lines = %q", sp.Lines)
	}
	if !book.Has("dog") {
		t.Error("embedded art should still be used when the directory lacks a file")
	}
}

func TestAllClassicAssetsHaveArt(t *testing.T) {
	g := newGame(t, "classic", 80, 24)
	book := NewArtBook("")

	r := g.Session().Roster()
	for _, c := range append(r.Base(), r.Hidden()...) {
		ids := append([]string{c.BaseAsset()}, c.Evolution().Forms()...)
		for _, id := range ids {
			if !book.Has(id) {
				t.Errorf("%s: no art for %q", c.Name(), id)
			}
		}
	}
	for _, it := range g.Session().Catalog().Items() {
		if !book.Has(it.Icon()) {
			t.Errorf("no icon for %s", it.Name())
		}
	}
}

func TestRegisterDir(t *testing.T) {
	dir := t.TempDir()
	pack := "id: zz-garden\ntitle: Garden\nitems:\n  - {name: Seed, category: food}\ncreatures:\n  - {name: Finch, food: Seed, toy: Seed, evolution: {form: finch-gold}}\n"
	if err := os.WriteFile(filepath.Join(dir, "garden.yaml"), []byte(pack), 0o644); err != nil {
		t.Fatal(err)
	}
	// Builtin ids are never replaced
	dup := "id: classic\nitems:\n  - {name: Seed, category: food}\ncreatures:\n  - {name: Finch, food: Seed, toy: Seed}\n"
	if err := os.WriteFile(filepath.Join(dir, "dup.yaml"), []byte(dup), 0o644); err != nil {
		t.Fatal(err)
	}

	ids, err := RegisterDir(dir)
	if err != nil {
		t.Fatalf("RegisterDir: %v", err)
	}
	if !reflect.DeepEqual(ids, []string{"zz-garden"}) {
		t.Errorf("ids = %v", ids)
	}
	g := newGame(t, "zz-garden", 80, 24)
	if g.Title() != "Garden" || g.Session().SelectedCreature().Name() != "Finch" {
		t.Errorf("registered pack = %s / %s", g.Title(), g.Session().SelectedCreature().Name())
	}

	if ids, err := RegisterDir(filepath.Join(dir, "missing")); err != nil || ids != nil {
		t.Errorf("missing dir = %v, %v", ids, err)
	}
}
