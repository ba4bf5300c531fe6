package packs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/kemono/internal/games/kemono/packs/formats"
)

// Loader handles loading packs from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new pack loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all pack files.
// Returns packs sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Pack, error) {
	var packs []Pack

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !isSupportedExtension(ext) {
			return nil
		}

		p, err := LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}

		packs = append(packs, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("packs: walking directory %s: %w", l.Root, err)
	}

	sort.Slice(packs, func(i, j int) bool {
		return packs[i].ID < packs[j].ID
	})
	return packs, nil
}

// LoadByID loads a specific pack by ID.
func (l *Loader) LoadByID(id string) (Pack, error) {
	packs, err := l.LoadAll()
	if err != nil {
		return Pack{}, err
	}
	for _, p := range packs {
		if p.ID == id {
			return p, nil
		}
	}
	return Pack{}, fmt.Errorf("packs: pack not found: %s", id)
}

// LoadFile loads a single pack file.
func LoadFile(path string) (Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Pack{}, fmt.Errorf("packs: reading file %s: %w", path, err)
	}

	fp, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return Pack{}, fmt.Errorf("packs: parsing file %s: %w", path, err)
	}
	if fp.ID == "" {
		fp.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return FromFile(fp, path), nil
}

// Parse decodes pack data in the format named by ext.
func Parse(data []byte, ext string) (formats.FilePack, error) {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	case ".toml":
		return formats.ParseTOML(data)
	default:
		return formats.FilePack{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}

func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
