// Package packs loads creature and item content for kemono sessions.
// This package depends on pet but pet does not depend on packs.
package packs

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/kemono/internal/games/kemono/packs/formats"
	"github.com/vovakirdan/kemono/internal/games/kemono/pet"
)

// Pack is a complete content pack.
type Pack struct {
	ID          string
	Title       string
	Description string
	Raw         formats.FilePack
	FilePath    string // Empty for builtin packs
}

// FromFile wraps a parsed file.
func FromFile(fp formats.FilePack, path string) Pack {
	return Pack{
		ID:          fp.ID,
		Title:       fp.Title,
		Description: fp.Description,
		Raw:         fp,
		FilePath:    path,
	}
}

// Builtin reports whether the pack ships inside the binary.
func (p Pack) Builtin() bool {
	return p.FilePath == ""
}

// Counts returns the number of items, base and hidden creatures.
func (p Pack) Counts() (items, base, hidden int) {
	return len(p.Raw.Items), len(p.Raw.Creatures), len(p.Raw.Hidden)
}

// Definition converts the pack into the domain definition a session is built from.
func (p Pack) Definition() (pet.Definition, error) {
	var def pet.Definition
	var errs []error

	for _, fi := range p.Raw.Items {
		cat, err := pet.ParseCategory(fi.Category)
		if err != nil {
			errs = append(errs, fmt.Errorf("item %q: %w", fi.Name, err))
			continue
		}
		icon := fi.Icon
		if icon == "" {
			icon = fi.Name
		}
		item, err := pet.NewItem(fi.Name, cat, fi.Potency, icon)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		def.Items = append(def.Items, item)
	}

	def.Base = creatureDefs(p.Raw.Creatures)
	def.Hidden = creatureDefs(p.Raw.Hidden)

	if len(errs) > 0 {
		return pet.Definition{}, fmt.Errorf("packs: %s: %w", p.ID, errors.Join(errs...))
	}
	return def, nil
}

// NewSession builds a fresh session from the pack.
func (p Pack) NewSession(opts ...pet.Option) (*pet.Session, error) {
	def, err := p.Definition()
	if err != nil {
		return nil, err
	}
	s, err := pet.NewSession(def, opts...)
	if err != nil {
		return nil, fmt.Errorf("packs: %s: %w", p.ID, err)
	}
	return s, nil
}

func creatureDefs(in []formats.FileCreature) []pet.CreatureDef {
	out := make([]pet.CreatureDef, 0, len(in))
	for _, fc := range in {
		asset := fc.Asset
		if asset == "" {
			asset = fc.Name
		}
		out = append(out, pet.CreatureDef{
			Name:         fc.Name,
			FavoriteFood: fc.Food,
			FavoriteToy:  fc.Toy,
			BaseAsset:    asset,
			Evolution:    evolutionSpec(fc.Evolution),
		})
	}
	return out
}

func evolutionSpec(fe formats.FileEvolution) pet.EvolutionSpec {
	if fe.MultiForm() {
		return pet.MultiForm(fe.Forms, fe.Dual)
	}
	return pet.Fixed(fe.Form)
}
