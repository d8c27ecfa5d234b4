// Package units holds the built-in, read-only catalog of unit categories.
package units

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

//go:embed embedded/*
var embedded embed.FS

// ErrUnknownCategory is returned when a category name is not part of the
// catalog.
var ErrUnknownCategory = errors.New("unknown category")

// Category is a named group of compatible measurement units.
type Category struct {
	Name  string   `yaml:"name"`
	Units []string `yaml:"units"`
}

// Catalog is an ordered, immutable set of categories. Accessors always
// return copies so callers can never mutate the shared table.
type Catalog struct {
	categories []Category
	byName     map[string]int
}

var builtin = mustLoad(embedded, "embedded/categories.yaml")

// Builtin returns the catalog compiled into the binary.
func Builtin() *Catalog {
	return builtin
}

// Parse decodes a YAML list of categories and validates it.
func Parse(data []byte) (*Catalog, error) {
	var cats []Category
	if err := yaml.Unmarshal(data, &cats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog: %w", err)
	}
	if len(cats) == 0 {
		return nil, errors.New("catalog must define at least one category")
	}

	c := &Catalog{byName: make(map[string]int, len(cats))}
	for i, cat := range cats {
		if cat.Name == "" {
			return nil, fmt.Errorf("category #%d has no name", i)
		}
		if _, dup := c.byName[cat.Name]; dup {
			return nil, fmt.Errorf("duplicate category %q", cat.Name)
		}
		if len(cat.Units) == 0 {
			return nil, fmt.Errorf("category %q has no units", cat.Name)
		}
		seen := make(map[string]struct{}, len(cat.Units))
		for _, u := range cat.Units {
			if u == "" {
				return nil, fmt.Errorf("category %q has an empty unit", cat.Name)
			}
			if _, dup := seen[u]; dup {
				return nil, fmt.Errorf("category %q lists unit %q twice", cat.Name, u)
			}
			seen[u] = struct{}{}
		}
		c.byName[cat.Name] = i
		c.categories = append(c.categories, Category{Name: cat.Name, Units: append([]string(nil), cat.Units...)})
	}
	return c, nil
}

// the catalog is embedded, so a broken file is a build defect.
func mustLoad(fsys fs.FS, name string) *Catalog {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		panic(fmt.Sprintf("units: %v", err))
	}
	c, err := Parse(data)
	if err != nil {
		panic(fmt.Sprintf("units: %s: %v", name, err))
	}
	return c
}

// Categories returns the category names in catalog order.
func (c *Catalog) Categories() []string {
	names := make([]string, len(c.categories))
	for i, cat := range c.categories {
		names[i] = cat.Name
	}
	return names
}

// Units returns the ordered unit labels of category.
func (c *Catalog) Units(category string) ([]string, error) {
	i, ok := c.byName[category]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	return append([]string(nil), c.categories[i].Units...), nil
}

// Contains reports whether unit belongs to category.
func (c *Catalog) Contains(category, unit string) bool {
	i, ok := c.byName[category]
	if !ok {
		return false
	}
	for _, u := range c.categories[i].Units {
		if u == unit {
			return true
		}
	}
	return false
}
