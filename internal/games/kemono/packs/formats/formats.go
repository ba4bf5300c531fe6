// Package formats provides pluggable content pack file parsers.
package formats

// FilePack is the on-disk layout of a content pack, shared by every format.
type FilePack struct {
	ID          string         `yaml:"id" toml:"id"`
	Title       string         `yaml:"title" toml:"title"`
	Description string         `yaml:"description,omitempty" toml:"description,omitempty"`
	Items       []FileItem     `yaml:"items" toml:"items"`
	Creatures   []FileCreature `yaml:"creatures" toml:"creatures"`
	Hidden      []FileCreature `yaml:"hidden,omitempty" toml:"hidden,omitempty"`
}

// FileItem is one item entry.
type FileItem struct {
	Name     string `yaml:"name" toml:"name"`
	Category string `yaml:"category" toml:"category"`
	Potency  int    `yaml:"potency,omitempty" toml:"potency,omitempty"`
	Icon     string `yaml:"icon,omitempty" toml:"icon,omitempty"`
}

// FileCreature is one creature entry.
type FileCreature struct {
	Name      string        `yaml:"name" toml:"name"`
	Food      string        `yaml:"food" toml:"food"`
	Toy       string        `yaml:"toy" toml:"toy"`
	Asset     string        `yaml:"asset,omitempty" toml:"asset,omitempty"`
	Evolution FileEvolution `yaml:"evolution" toml:"evolution"`
}

// FileEvolution holds either a single form or a tag-keyed set of forms
// with a dual form.
type FileEvolution struct {
	Form  string            `yaml:"form,omitempty" toml:"form,omitempty"`
	Forms map[string]string `yaml:"forms,omitempty" toml:"forms,omitempty"`
	Dual  string            `yaml:"dual,omitempty" toml:"dual,omitempty"`
}

// MultiForm reports whether the entry describes a tag-driven evolution.
func (e FileEvolution) MultiForm() bool {
	return len(e.Forms) > 0 || e.Dual != ""
}

// DefaultPotency is used when an item leaves potency out.
const DefaultPotency = 5

func (p *FilePack) applyDefaults() {
	for i := range p.Items {
		if p.Items[i].Potency == 0 {
			p.Items[i].Potency = DefaultPotency
		}
	}
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".toml"}
}
