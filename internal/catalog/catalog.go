package catalog

import (
	"fmt"
	"os"
	"strings"

	"github.com/atomicstack/tabpick/internal/picker/state"
	"go.yaml.in/yaml/v3"
)

// Option is one selectable catalog entry as it appears in the catalog file.
type Option struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
	Hint  string `yaml:"hint"`
}

// Category is a named, ordered group of options.
type Category struct {
	Name    string   `yaml:"name"`
	Options []Option `yaml:"options"`
}

// Catalog holds the prompt message and the ordered category list.
type Catalog struct {
	Message    string     `yaml:"message"`
	Categories []Category `yaml:"categories"`
}

// Load reads and parses a catalog file.
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes catalog YAML and validates it. Option values must be unique
// across the whole catalog; labels default to the value when omitted. Empty
// categories are allowed and render as empty tabs.
func Parse(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}
	seen := make(map[string]string, 16)
	for ci := range c.Categories {
		cat := &c.Categories[ci]
		cat.Name = strings.TrimSpace(cat.Name)
		if cat.Name == "" {
			return Catalog{}, fmt.Errorf("category %d has no name", ci)
		}
		if strings.EqualFold(cat.Name, state.AllTabID) {
			return Catalog{}, fmt.Errorf("category name %q is reserved", cat.Name)
		}
		for oi := range cat.Options {
			opt := &cat.Options[oi]
			opt.Value = strings.TrimSpace(opt.Value)
			if opt.Value == "" {
				return Catalog{}, fmt.Errorf("category %q option %d has no value", cat.Name, oi)
			}
			if prev, dup := seen[opt.Value]; dup {
				return Catalog{}, fmt.Errorf("duplicate option value %q in categories %q and %q", opt.Value, prev, cat.Name)
			}
			seen[opt.Value] = cat.Name
			if opt.Label == "" {
				opt.Label = opt.Value
			}
		}
	}
	return c, nil
}

// Groups converts the catalog into picker groups, precomputing each option's
// search haystack.
func (c Catalog) Groups() []state.Group[string] {
	groups := make([]state.Group[string], 0, len(c.Categories))
	for _, cat := range c.Categories {
		opts := make([]state.Option[string], 0, len(cat.Options))
		for _, o := range cat.Options {
			opts = append(opts, state.NewOption(o.Value, o.Label, o.Hint))
		}
		groups = append(groups, state.Group[string]{Name: cat.Name, Options: opts})
	}
	return groups
}

// TotalOptions returns the number of options across every category.
func (c Catalog) TotalOptions() int {
	n := 0
	for _, cat := range c.Categories {
		n += len(cat.Options)
	}
	return n
}

// SplitPreselect partitions the requested preselect values into those present
// in the catalog (in request order) and those unknown to it.
func (c Catalog) SplitPreselect(values []string) (known, unknown []string) {
	present := make(map[string]struct{}, c.TotalOptions())
	for _, cat := range c.Categories {
		for _, o := range cat.Options {
			present[o.Value] = struct{}{}
		}
	}
	for _, v := range values {
		if _, ok := present[v]; ok {
			known = append(known, v)
		} else {
			unknown = append(unknown, v)
		}
	}
	return known, unknown
}
