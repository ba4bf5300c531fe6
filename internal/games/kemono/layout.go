package kemono

import "github.com/vovakirdan/kemono/internal/core"

// Cards per row of the collection overlay.
const collectionColumns = 4

// layout holds the screen regions computed from the screen size.
// Pointer presses are hit-tested against it.
type layout struct {
	w, h     int
	panel    core.Rect   // Selected creature
	messageY int         // Status message row
	tray     core.Rect   // Item tray box
	slots    []core.Rect // One per item, inside the tray
	footerY  int         // Held item row
	overlay  core.Rect   // Collection browser
	cards    []core.Rect // One per creature of a page
}

func computeLayout(w, h, items, pageSize int) layout {
	l := layout{
		w:        w,
		h:        h,
		panel:    core.NewRect(0, 1, w, max(h-6, 0)),
		messageY: h - 5,
		tray:     core.NewRect(0, h-4, w, 3),
		footerY:  h - 1,
	}

	if items > 0 {
		slotW := max(1, (w-2)/items)
		l.slots = make([]core.Rect, items)
		for i := range l.slots {
			l.slots[i] = core.NewRect(1+i*slotW, h-3, slotW, 1)
		}
	}

	l.overlay = core.NewRect(l.panel.X+2, l.panel.Y+1, max(l.panel.W-4, 0), max(l.panel.H-2, 0))
	if pageSize > 0 {
		rows := core.CeilDiv(pageSize, collectionColumns)
		areaW := max(l.overlay.W-2, 0)
		areaH := max(l.overlay.H-4, 0)
		cardW := areaW / collectionColumns
		cardH := max(3, areaH/rows)
		l.cards = make([]core.Rect, pageSize)
		for i := range l.cards {
			col, row := i%collectionColumns, i/collectionColumns
			l.cards[i] = core.NewRect(l.overlay.X+1+col*cardW, l.overlay.Y+2+row*cardH, cardW, cardH)
		}
	}
	return l
}

// slotAt returns the tray slot under (x, y), or -1.
func (l layout) slotAt(x, y int) int {
	for i, r := range l.slots {
		if r.Contains(x, y) {
			return i
		}
	}
	return -1
}

// cardAt returns the collection card under (x, y), or -1.
func (l layout) cardAt(x, y int) int {
	for i, r := range l.cards {
		if r.Contains(x, y) {
			return i
		}
	}
	return -1
}
