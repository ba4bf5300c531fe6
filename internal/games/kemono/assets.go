package kemono

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/vovakirdan/kemono/internal/core"
)

//go:embed art/*.txt
var artFS embed.FS

// Placeholder blocks: large sprites are red, item icons green.
const (
	PlaceholderRune = '█'
	iconMaxW        = 4
	iconMaxH        = 1
)

// Sprite is drawable art for an asset id.
type Sprite struct {
	Lines       []string
	Color       core.Color // ColorDefault lets the renderer pick
	Placeholder bool
}

// Size returns the sprite bounds in cells.
func (s Sprite) Size() (w, h int) {
	for _, l := range s.Lines {
		w = max(w, len([]rune(l)))
	}
	return w, len(s.Lines)
}

// AssetProvider resolves asset ids to art. It never fails: unknown ids
// get a placeholder of the requested size.
type AssetProvider interface {
	Sprite(id string, w, h int) Sprite
}

// ArtBook serves embedded ASCII art, optionally overridden by <id>.txt
// files from a directory.
type ArtBook struct {
	dir string

	mu    sync.Mutex
	cache map[string][]string
}

// NewArtBook creates an art book. dir may be empty.
func NewArtBook(dir string) *ArtBook {
	return &ArtBook{dir: dir, cache: make(map[string][]string)}
}

// Sprite returns the art for id or a placeholder block of w x h.
func (a *ArtBook) Sprite(id string, w, h int) Sprite {
	if lines, ok := a.lookup(id); ok {
		return Sprite{Lines: lines}
	}
	return Placeholder(w, h)
}

// Has reports whether real art exists for id.
func (a *ArtBook) Has(id string) bool {
	_, ok := a.lookup(id)
	return ok
}

func (a *ArtBook) lookup(id string) ([]string, bool) {
	if id == "" || strings.ContainsAny(id, `/\`) {
		return nil, false
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if lines, ok := a.cache[id]; ok {
		return lines, lines != nil
	}

	lines, err := a.load(id)
	if err != nil {
		a.cache[id] = nil
		return nil, false
	}
	a.cache[id] = lines
	return lines, true
}

func (a *ArtBook) load(id string) ([]string, error) {
	name := id + ".txt"
	if a.dir != "" {
		data, err := os.ReadFile(filepath.Join(a.dir, name))
		if err == nil {
			return parseArt(data)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	data, err := artFS.ReadFile(path.Join("art", name))
	if err != nil {
		return nil, err
	}
	return parseArt(data)
}

func parseArt(data []byte) ([]string, error) {
	raw := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		lines = append(lines, strings.TrimRight(l, " \t"))
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, errors.New("empty art")
	}
	return lines, nil
}

// Placeholder returns a solid block of w x h. Icon-sized blocks are green,
// anything larger is red.
func Placeholder(w, h int) Sprite {
	w, h = max(w, 1), max(h, 1)
	color := core.ColorRed
	if w <= iconMaxW && h <= iconMaxH {
		color = core.ColorGreen
	}
	lines := make([]string, h)
	for i := range lines {
		lines[i] = strings.Repeat(string(PlaceholderRune), w)
	}
	return Sprite{Lines: lines, Color: color, Placeholder: true}
}
