package manifest

import (
	"bytes"
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/avisek-yorkie/cursor-rules/internal/messages"
)

//go:embed manifests.toml
var builtinCatalog []byte

// Catalog is the read-only set of install variants compiled into the binary.
type Catalog struct {
	defaultName string
	variants    []Manifest
}

type catalogFile struct {
	Default  string     `toml:"default"`
	Variants []Manifest `toml:"variants"`
}

// Load returns the built-in catalog.
func Load() (Catalog, error) {
	return Parse(builtinCatalog)
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) (Catalog, error) {
	var file catalogFile
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		return Catalog{}, fmt.Errorf(messages.ManifestDecodeFmt, err)
	}
	if len(file.Variants) == 0 {
		return Catalog{}, fmt.Errorf(messages.ManifestCatalogEmpty)
	}
	names := make(map[string]struct{}, len(file.Variants))
	for _, variant := range file.Variants {
		if err := variant.Validate(); err != nil {
			return Catalog{}, err
		}
		if _, ok := names[variant.Name]; ok {
			return Catalog{}, fmt.Errorf(messages.ManifestDuplicateNameFmt, variant.Name)
		}
		names[variant.Name] = struct{}{}
	}
	if _, ok := names[file.Default]; !ok {
		return Catalog{}, fmt.Errorf(messages.ManifestDefaultMissingFmt, file.Default)
	}
	return Catalog{defaultName: file.Default, variants: file.Variants}, nil
}

// DefaultName returns the name of the variant used when none is requested.
func (c Catalog) DefaultName() string {
	return c.defaultName
}

// Default returns the default variant.
func (c Catalog) Default() Manifest {
	m, _ := c.Lookup(c.defaultName)
	return m
}

// Lookup returns the named variant. Names are matched case-insensitively.
func (c Catalog) Lookup(name string) (Manifest, error) {
	want := strings.TrimSpace(name)
	for _, variant := range c.variants {
		if strings.EqualFold(variant.Name, want) {
			return variant.Clone(), nil
		}
	}
	return Manifest{}, fmt.Errorf(messages.ManifestUnknownVariantFmt, name, strings.Join(c.Names(), ", "))
}

// Names returns the variant names in sorted order.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c.variants))
	for _, variant := range c.variants {
		names = append(names, variant.Name)
	}
	sort.Strings(names)
	return names
}

// Variants returns copies of all variants in declaration order.
func (c Catalog) Variants() []Manifest {
	out := make([]Manifest, 0, len(c.variants))
	for _, variant := range c.variants {
		out = append(out, variant.Clone())
	}
	return out
}
