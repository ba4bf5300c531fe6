package packs

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"sync"
)

//go:embed builtin/*.yaml builtin/*.toml
var builtinFS embed.FS

var (
	builtinOnce  sync.Once
	builtinPacks []Pack
	builtinErr   error
)

// Builtin returns the packs embedded in the binary, sorted by ID.
func Builtin() ([]Pack, error) {
	builtinOnce.Do(func() {
		builtinPacks, builtinErr = loadBuiltin()
	})
	if builtinErr != nil {
		return nil, builtinErr
	}
	return append([]Pack(nil), builtinPacks...), nil
}

// BuiltinByID returns one embedded pack.
func BuiltinByID(id string) (Pack, error) {
	all, err := Builtin()
	if err != nil {
		return Pack{}, err
	}
	ids := make([]string, 0, len(all))
	for _, p := range all {
		if p.ID == id {
			return p, nil
		}
		ids = append(ids, p.ID)
	}
	return Pack{}, unknownPack(id, ids)
}

func loadBuiltin() ([]Pack, error) {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil, fmt.Errorf("packs: reading builtin packs: %w", err)
	}

	var out []Pack
	for _, e := range entries {
		name := path.Join("builtin", e.Name())
		data, err := builtinFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("packs: reading %s: %w", name, err)
		}
		fp, err := Parse(data, path.Ext(name))
		if err != nil {
			return nil, fmt.Errorf("packs: parsing builtin %s: %w", name, err)
		}
		out = append(out, FromFile(fp, ""))
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}
