package kemono

import (
	"fmt"

	"github.com/vovakirdan/kemono/internal/core"
	"github.com/vovakirdan/kemono/internal/games/kemono/pet"
)

// Visual characters for rendering
const (
	HeartChar      = '♥'
	MeterFullChar  = '█'
	MeterEmptyChar = '░'
	SparkleChar    = '✦'
	meterWidth     = 20
)

// Requested placeholder sizes when a sprite has no art.
const (
	spriteW = 12
	spriteH = 5
	iconW   = 3
	iconH   = 1
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() != g.layout.w || dst.Height() != g.layout.h {
		g.resize(dst.Width(), dst.Height())
	}
	if g.session == nil {
		return
	}

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Terminal too small", core.ColorRed)
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Need %dx%d, have %dx%d", MinScreenW, MinScreenH, dst.Width(), dst.Height()), core.ColorGray)
		return
	}

	g.drawHeader(dst)
	g.drawCreature(dst)
	g.drawMessage(dst)
	g.drawTray(dst)
	g.drawFooter(dst)

	if g.session.Browser().Visible() {
		g.drawCollection(dst)
	}
}

func (g *Game) drawHeader(dst *core.Screen) {
	dst.DrawTextColored(1, 0, g.Title(), core.ColorCyan)

	st := g.State()
	status := fmt.Sprintf("Collected %d/%d  Evolved %d", st.Collected, st.Active, st.Evolved)
	if st.HiddenUnlocked {
		status = "✦ " + status
	}
	dst.DrawTextColored(dst.Width()-len([]rune(status))-1, 0, status, core.ColorWhite)
}

func (g *Game) drawCreature(dst *core.Screen) {
	p := g.layout.panel
	c := g.session.SelectedCreature()
	color := stageColor(c.Stage())

	dst.DrawBox(p, core.ColorGray)
	dst.DrawTextCentered(p.Y+1, fmt.Sprintf("%s · %s", c.Name(), c.Stage()), color)

	sp := g.art.Sprite(c.Asset(), spriteW, spriteH)
	if sp.Color != core.ColorDefault {
		color = sp.Color
	}
	w, h := sp.Size()
	x := p.X + (p.W-w)/2
	y := p.Y + (p.H-h)/2
	if a := c.Animation(); a.Playing && a.Progress() < 0.5 {
		y-- // Bounce
	}
	dst.Blit(x, y, sp.Lines, color)

	if c.Evolved() && c.Animation().Playing && g.cfg.Display.Sparkles {
		g.drawSparkles(dst, c)
	}

	if c.Evolution().Kind() == pet.EvolutionMultiForm && !c.Evolved() {
		counters := fmt.Sprintf("fire %d · sun %d", c.Counter(pet.TagFire), c.Counter(pet.TagSun))
		dst.DrawTextCentered(p.Bottom()-3, counters, core.ColorOrange)
	}
	g.drawMeter(dst, p.Bottom()-2, c)
}

// drawSparkles projects the evolution sparkles onto the creature panel.
// A third of them blink off at a time.
func (g *Game) drawSparkles(dst *core.Screen, c *pet.Creature) {
	inner := core.NewRect(g.layout.panel.X+1, g.layout.panel.Y+2, g.layout.panel.W-2, g.layout.panel.H-4)
	phase := int(g.tick / 4)
	for i, s := range c.Sparkles() {
		if (i+phase)%3 == 0 {
			continue
		}
		x, y := inner.Project(s.X, s.Y, pet.CanvasW, pet.CanvasH)
		dst.SetColored(x, y, SparkleChar, core.ColorGold)
	}
}

func (g *Game) drawMeter(dst *core.Screen, y int, c *pet.Creature) {
	label := fmt.Sprintf("%c %d/%d ", HeartChar, c.Affection(), c.MaxAffection())
	total := len([]rune(label)) + meterWidth
	x := (dst.Width() - total) / 2

	dst.DrawTextColored(x, y, label, core.ColorPink)
	x += len([]rune(label))

	filled := c.Affection() * meterWidth / max(c.MaxAffection(), 1)
	for i := 0; i < meterWidth; i++ {
		if i < filled {
			dst.SetColored(x+i, y, MeterFullChar, core.ColorPink)
		} else {
			dst.SetColored(x+i, y, MeterEmptyChar, core.ColorGray)
		}
	}
}

func (g *Game) drawMessage(dst *core.Screen) {
	if g.messageTTL <= 0 || g.message == "" {
		return
	}
	dst.DrawTextCentered(g.layout.messageY, g.message, g.msgColor)
}

func (g *Game) drawTray(dst *core.Screen) {
	dst.DrawBox(g.layout.tray, core.ColorGray)

	held := g.heldSlot()
	items := g.session.Catalog().Items()
	for i, r := range g.layout.slots {
		if i >= len(items) {
			break
		}
		it := items[i]
		label := truncate(fmt.Sprintf("%s %s", slotKey(i), it.Name()), r.W-1)

		color := core.ColorGreen
		if it.Category() == pet.CategoryToy {
			color = core.ColorCyan
		}
		if i == held {
			color = core.ColorYellow
			dst.DrawRect(r, ' ', color)
			label = truncate("▸"+label, r.W)
		}
		dst.DrawTextColored(r.X, r.Y, label, color)
	}
}

func (g *Game) drawFooter(dst *core.Screen) {
	it, ok := g.session.SelectedItem()
	if !ok {
		dst.DrawTextColored(1, g.layout.footerY, "Empty hands", core.ColorGray)
		return
	}

	dst.DrawTextColored(1, g.layout.footerY, "Holding", core.ColorGray)
	icon := g.art.Sprite(it.Icon(), iconW, iconH)
	iconColor := icon.Color
	if iconColor == core.ColorDefault {
		iconColor = core.ColorYellow
	}
	dst.Blit(9, g.layout.footerY, icon.Lines[:1], iconColor)
	w, _ := icon.Size()
	dst.DrawText(10+w, g.layout.footerY, it.String())
}

func (g *Game) drawCollection(dst *core.Screen) {
	ov := g.layout.overlay
	b := g.session.Browser()
	st := g.State()

	dst.DrawRect(ov, ' ', core.ColorDefault)
	dst.DrawBox(ov, core.ColorMagenta)

	title := fmt.Sprintf("Collection  %d/%d collected", st.Collected, st.Active)
	if !st.HiddenUnlocked && len(g.session.Roster().Hidden()) > 0 {
		title += "  · ??? hidden"
	}
	dst.DrawTextCentered(ov.Y+1, title, core.ColorMagenta)

	selected := g.session.SelectedCreature()
	for i, c := range g.session.PageCreatures() {
		if i >= len(g.layout.cards) {
			break
		}
		r := g.layout.cards[i]
		color := stageColor(c.Stage())
		if c == selected {
			color = core.ColorYellow
		}
		dst.DrawBox(r, color)
		dst.DrawTextColored(r.X+1, r.Y+1, truncate(c.Name(), r.W-2), color)
		if r.H > 3 {
			dst.DrawTextColored(r.X+1, r.Y+2, truncate(fmt.Sprintf("%c %d", HeartChar, c.Affection()), r.W-2), core.ColorPink)
		}
		if r.H > 4 {
			dst.DrawTextColored(r.X+1, r.Y+3, truncate(c.Stage().String(), r.W-2), core.ColorGray)
		}
	}

	nav := fmt.Sprintf("← Page %d/%d →", b.Page()+1, b.PageCount())
	dst.DrawTextCentered(ov.Bottom()-2, nav, core.ColorGray)
}

func stageColor(s pet.Stage) core.Color {
	switch s {
	case pet.StageBonding:
		return core.ColorPink
	case pet.StageCollected:
		return core.ColorCyan
	case pet.StageEvolved:
		return core.ColorGold
	default:
		return core.ColorWhite
	}
}

// slotKey is the number key for a tray slot: 1..9 then 0.
func slotKey(i int) string {
	switch {
	case i < 9:
		return fmt.Sprint(i + 1)
	case i == 9:
		return "0"
	default:
		return "·"
	}
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
