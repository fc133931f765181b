// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package catalog provides the lists of attributes available
// for each slot of a planet, together with the filesystem
// holding their images.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/core/base/iox/yamlx"
	"cogentcore.org/planetgen/attribute"
	"cogentcore.org/planetgen/base/iox/imagex"
	"cogentcore.org/planetgen/base/keylist"
	"cogentcore.org/planetgen/planet"
)

//go:embed assets
var assets embed.FS

// DefaultManifest is the name of the manifest of the bundled catalog.
const DefaultManifest = "catalog.toml"

// Manifest is the file representation of a catalog.
type Manifest struct {

	// Layout is the name of the layout the catalog is made for.
	Layout string `toml:"layout" yaml:"layout"`

	Categories []Category `toml:"categories" yaml:"categories"`
}

// Category is the list of attributes of one slot in a [Manifest].
type Category struct {
	Slot       planet.Slot    `toml:"slot" yaml:"slot"`
	Attributes attribute.List `toml:"attributes" yaml:"attributes"`
}

// Catalog holds one ordered, name-keyed list of attributes per slot.
// It is safe for concurrent use.
type Catalog struct {

	// Layout is the layout the catalog is made for.
	Layout *planet.Layout

	lists [planet.SlotsN]*keylist.List[string, attribute.Attribute]
	fsys  fs.FS
	mu    sync.RWMutex
}

func nameOf(a attribute.Attribute) string { return a.Name }

// New returns an empty catalog for the given layout,
// whose image paths are resolved in fsys, which may be nil
// if all of the images are data URIs.
func New(layout *planet.Layout, fsys fs.FS) *Catalog {
	c := &Catalog{Layout: layout, fsys: fsys}
	for i := range c.lists {
		c.lists[i] = keylist.New[string, attribute.Attribute]()
	}
	return c
}

// Default returns a new catalog holding the bundled attributes.
func Default() (*Catalog, error) {
	sub, err := fs.Sub(assets, "assets")
	if err != nil {
		return nil, err
	}
	return OpenFS(sub, DefaultManifest)
}

// Open opens the catalog with the given manifest file. Image paths
// are relative to the directory of the manifest.
func Open(manifest string) (*Catalog, error) {
	dir, file := filepath.Split(manifest)
	if dir == "" {
		dir = "."
	}
	return OpenFS(os.DirFS(dir), file)
}

// OpenFS opens the catalog with the given manifest file in fsys.
// The manifest is read as YAML for a .yaml or .yml extension,
// and as TOML otherwise. Every image path must exist.
func OpenFS(fsys fs.FS, manifest string) (*Catalog, error) {
	m := &Manifest{}
	var err error
	switch strings.ToLower(path.Ext(manifest)) {
	case ".yaml", ".yml":
		err = yamlx.OpenFS(m, fsys, manifest)
	default:
		err = tomlx.OpenFS(m, fsys, manifest)
	}
	if err != nil {
		return nil, fmt.Errorf("catalog: reading manifest %q: %w", manifest, err)
	}
	if dir := path.Dir(manifest); dir != "." {
		fsys, err = fs.Sub(fsys, dir)
		if err != nil {
			return nil, err
		}
	}
	return FromManifest(m, fsys)
}

// FromManifest returns a new catalog holding the attributes of the
// given manifest, with image paths resolved in fsys.
func FromManifest(m *Manifest, fsys fs.FS) (*Catalog, error) {
	layout, err := planet.LayoutByName(m.Layout)
	if err != nil {
		return nil, err
	}
	c := New(layout, fsys)
	for _, cat := range m.Categories {
		if !cat.Slot.IsValid() {
			return nil, fmt.Errorf("catalog: invalid slot %v", cat.Slot)
		}
		kl := c.lists[cat.Slot]
		for _, a := range cat.Attributes {
			if a.Name == "" || a.Name == attribute.NoneName {
				return nil, fmt.Errorf("catalog: %s: invalid attribute name %q", cat.Slot.Plural(), a.Name)
			}
			if err := c.checkImage(a); err != nil {
				return nil, fmt.Errorf("catalog: %s: %q: %w", cat.Slot.Plural(), a.Name, err)
			}
			if err := kl.Add(a.Name, a); err != nil {
				return nil, fmt.Errorf("catalog: %s: %w", cat.Slot.Plural(), err)
			}
		}
	}
	slog.Debug("opened catalog", "layout", layout.Name, "attributes", c.total())
	return c, nil
}

// checkImage returns an error if the image of the attribute
// is neither a data URI nor a file in the catalog filesystem.
func (c *Catalog) checkImage(a attribute.Attribute) error {
	if a.IsEmpty() || imagex.IsDataURI(a.Image) {
		return nil
	}
	if c.fsys == nil {
		return fmt.Errorf("no asset filesystem for image %q", a.Image)
	}
	_, err := fs.Stat(c.fsys, a.Image)
	return err
}

func (c *Catalog) total() int {
	n := 0
	for _, kl := range c.lists {
		n += kl.Len()
	}
	return n
}

// FS returns the filesystem in which image paths are resolved.
func (c *Catalog) FS() fs.FS {
	return c.fsys
}

// Decoder returns a decoder for the images of the catalog.
func (c *Catalog) Decoder() *planet.FSDecoder {
	return planet.NewFSDecoder(c.fsys)
}

// List returns a copy of the attributes of the given slot, in order.
func (c *Catalog) List(slot planet.Slot) attribute.List {
	if !slot.IsValid() {
		return nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return attribute.List(c.lists[slot].Values).Clone()
}

// Len returns the number of attributes of the given slot.
func (c *Catalog) Len(slot planet.Slot) int {
	if !slot.IsValid() {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lists[slot].Len()
}

// Set replaces the attributes of the given slot. Later attributes
// replace earlier ones with the same name.
func (c *Catalog) Set(slot planet.Slot, l attribute.List) error {
	if !slot.IsValid() {
		return fmt.Errorf("catalog: invalid slot %v", slot)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lists[slot] = keylist.FromValues(l, nameOf)
	return nil
}

// Extend appends the attributes to those of the given slot.
// An attribute with the name of an existing one replaces it in place.
func (c *Catalog) Extend(slot planet.Slot, l attribute.List) error {
	if !slot.IsValid() {
		return fmt.Errorf("catalog: invalid slot %v", slot)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	kl := c.lists[slot]
	for _, a := range l {
		kl.Set(a.Name, a)
	}
	return nil
}

// Manifest returns the manifest of the current contents of the catalog,
// with a category for each slot of its layout that has attributes.
func (c *Catalog) Manifest() *Manifest {
	c.mu.RLock()
	defer c.mu.RUnlock()
	m := &Manifest{Layout: c.Layout.Name}
	for _, s := range planet.Slots() {
		if c.lists[s].Len() == 0 {
			continue
		}
		m.Categories = append(m.Categories, Category{Slot: s, Attributes: attribute.List(c.lists[s].Values).Clone()})
	}
	return m
}

// SaveManifest saves the manifest of the catalog to the given file,
// as YAML for a .yaml or .yml extension and as TOML otherwise.
func (c *Catalog) SaveManifest(filename string) error {
	m := c.Manifest()
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return yamlx.Save(m, filename)
	}
	return tomlx.Save(m, filename)
}
