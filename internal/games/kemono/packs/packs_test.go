package packs

import (
	"strings"
	"testing"

	"github.com/vovakirdan/kemono/internal/games/kemono/pet"
)

func TestBuiltinPacks(t *testing.T) {
	all, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin: %v", err)
	}
	if len(all) != 2 || all[0].ID != "classic" || all[1].ID != "starter" {
		t.Fatalf("builtin packs = %v", all)
	}

	tests := []struct {
		id                  string
		items, base, hidden int
	}{
		{"classic", 10, 7, 2},
		{"starter", 3, 2, 1},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			p, err := BuiltinByID(tt.id)
			if err != nil {
				t.Fatal(err)
			}
			items, base, hidden := p.Counts()
			if items != tt.items || base != tt.base || hidden != tt.hidden {
				t.Errorf("counts = %d/%d/%d, expected %d/%d/%d", items, base, hidden, tt.items, tt.base, tt.hidden)
			}
			if !p.Builtin() {
				t.Error("builtin pack should have no file path")
			}
			if HasErrors(Validate(p)) {
				t.Errorf("builtin pack has errors: %v", Validate(p))
			}
			if _, err := p.NewSession(pet.WithSeed(1)); err != nil {
				t.Errorf("NewSession: %v", err)
			}
		})
	}
}

func TestClassicPhoenixIsMultiForm(t *testing.T) {
	p, err := BuiltinByID("classic")
	if err != nil {
		t.Fatal(err)
	}
	def, err := p.Definition()
	if err != nil {
		t.Fatal(err)
	}
	phoenix := def.Hidden[1]
	if phoenix.Name != "Phoenix" || phoenix.Evolution.Kind() != pet.EvolutionMultiForm {
		t.Fatalf("Phoenix = %+v", phoenix)
	}
	forms := phoenix.Evolution.Forms()
	want := []string{"phoenix-flame", "phoenix-sun", "phoenix-reborn"}
	for i := range want {
		if forms[i] != want[i] {
			t.Errorf("forms = %v, expected %v", forms, want)
			break
		}
	}
}

func TestClassicWarnings(t *testing.T) {
	p, err := BuiltinByID("classic")
	if err != nil {
		t.Fatal(err)
	}
	issues := Validate(p)
	if len(issues) != 3 {
		t.Fatalf("issues = %v, expected 3 favourite warnings", issues)
	}
	for _, is := range issues {
		if is.Severity != SeverityWarning {
			t.Errorf("unexpected error %s", is)
		}
	}
}

func TestBuiltinByIDSuggests(t *testing.T) {
	_, err := BuiltinByID("clasic")
	if err == nil || !strings.Contains(err.Error(), `did you mean "classic"`) {
		t.Errorf("err = %v, expected a suggestion", err)
	}
}

func TestLoaderLoadAll(t *testing.T) {
	loader := NewLoader("testdata")

	all, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	// broken.yaml is skipped, notes.txt is ignored.
	if len(all) != 2 || all[0].ID != "mini" || all[1].ID != "typos" {
		t.Fatalf("loaded = %v", all)
	}
}

func TestLoadTOMLDefaults(t *testing.T) {
	p, err := LoadFile("testdata/mini.toml")
	if err != nil {
		t.Fatal(err)
	}
	if p.Raw.Items[0].Potency != 5 {
		t.Errorf("default potency = %d, expected 5", p.Raw.Items[0].Potency)
	}
	def, err := p.Definition()
	if err != nil {
		t.Fatal(err)
	}
	if def.Base[0].BaseAsset != "Cat" {
		t.Errorf("asset should default to the name, got %q", def.Base[0].BaseAsset)
	}
}

func TestValidateTypos(t *testing.T) {
	p, err := LoadFile("testdata/typos.yaml")
	if err != nil {
		t.Fatal(err)
	}
	issues := Validate(p)
	if !HasErrors(issues) {
		t.Fatalf("expected errors, got %v", issues)
	}

	var text []string
	for _, is := range issues {
		text = append(text, is.String())
	}
	joined := strings.Join(text, "\n")
	for _, want := range []string{
		`unknown evolution tag "fir" (did you mean "fire"?)`,
		`favourite food "Fsh" is not in the catalog (did you mean "Fish"?)`,
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("missing %q in:\n%s", want, joined)
		}
	}
	if issues[0].Severity != SeverityError {
		t.Error("errors should sort before warnings")
	}
}

func TestParseUnsupported(t *testing.T) {
	if _, err := Parse([]byte("{}"), ".json"); err == nil {
		t.Error("expected unsupported extension error")
	}
}
