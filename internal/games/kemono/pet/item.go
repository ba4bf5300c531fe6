package pet

import (
	"fmt"
	"strings"
)

// Category says whether an item is eaten or played with.
type Category string

const (
	CategoryFood Category = "food"
	CategoryToy  Category = "toy"
)

// ParseCategory parses "food" or "toy", case-insensitively.
func ParseCategory(s string) (Category, error) {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryFood:
		return CategoryFood, nil
	case CategoryToy:
		return CategoryToy, nil
	}
	return "", fmt.Errorf("pet: %w: category %q is neither food nor toy", ErrInvalidArgument, s)
}

// Item is an immutable consumable. Potency is the affection a favourite use grants.
type Item struct {
	name     string
	category Category
	potency  int
	icon     string
}

// NewItem validates and creates an item. The icon is an opaque asset id.
func NewItem(name string, category Category, potency int, icon string) (Item, error) {
	if strings.TrimSpace(name) == "" {
		return Item{}, fmt.Errorf("pet: %w: item name is empty", ErrInvalidArgument)
	}
	if category != CategoryFood && category != CategoryToy {
		return Item{}, fmt.Errorf("pet: %w: item %q has category %q", ErrInvalidArgument, name, category)
	}
	if potency <= 0 {
		return Item{}, fmt.Errorf("pet: %w: item %q potency must be positive, got %d", ErrInvalidArgument, name, potency)
	}
	return Item{name: name, category: category, potency: potency, icon: icon}, nil
}

func (i Item) Name() string       { return i.name }
func (i Item) Category() Category { return i.category }
func (i Item) Potency() int       { return i.potency }
func (i Item) Icon() string       { return i.icon }
func (i Item) String() string     { return fmt.Sprintf("%s (%s, +%d)", i.name, i.category, i.potency) }

// Catalog is the ordered, read-only set of items of a session.
type Catalog struct {
	items []Item
	index map[string]int
}

// NewCatalog builds a catalog. Item names must be unique.
func NewCatalog(items ...Item) (*Catalog, error) {
	c := &Catalog{
		items: make([]Item, 0, len(items)),
		index: make(map[string]int, len(items)),
	}
	for _, it := range items {
		if it.name == "" {
			return nil, fmt.Errorf("pet: %w: zero item in catalog", ErrInvalidArgument)
		}
		if _, dup := c.index[it.name]; dup {
			return nil, fmt.Errorf("pet: %w: duplicate item %q", ErrInvalidArgument, it.name)
		}
		c.index[it.name] = len(c.items)
		c.items = append(c.items, it)
	}
	return c, nil
}

// Lookup finds an item by name.
func (c *Catalog) Lookup(name string) (Item, error) {
	i, ok := c.index[name]
	if !ok {
		return Item{}, unknownName(ErrUnknownItem, name, c.Names())
	}
	return c.items[i], nil
}

// Has reports whether an item with this name and category exists.
func (c *Catalog) Has(name string, category Category) bool {
	i, ok := c.index[name]
	return ok && c.items[i].category == category
}

// At returns the item in tray slot i.
func (c *Catalog) At(i int) (Item, bool) {
	if i < 0 || i >= len(c.items) {
		return Item{}, false
	}
	return c.items[i], true
}

// IndexOf returns the tray slot of an item name, or -1.
func (c *Catalog) IndexOf(name string) int {
	if i, ok := c.index[name]; ok {
		return i
	}
	return -1
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Items returns a copy of the items in tray order.
func (c *Catalog) Items() []Item {
	return append([]Item(nil), c.items...)
}

// Names returns the item names in tray order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.items))
	for i, it := range c.items {
		names[i] = it.name
	}
	return names
}
