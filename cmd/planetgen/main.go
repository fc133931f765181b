// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command planetgen renders random or chosen planet avatars to image files.
package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/cli"
	"cogentcore.org/planetgen/base/iox/imagex"
	"cogentcore.org/planetgen/base/randx"
	"cogentcore.org/planetgen/canvas"
	"cogentcore.org/planetgen/catalog"
	"cogentcore.org/planetgen/planet"
	"cogentcore.org/planetgen/selection"
	"cogentcore.org/planetgen/upload"
	"github.com/mitchellh/go-homedir"
	"github.com/muesli/termenv"
)

// Config is the configuration information for the planetgen cli.
type Config struct {

	// Catalog is the manifest file (TOML or YAML) of the attribute
	// catalog to use. The bundled catalog is used if it is empty.
	Catalog string

	// Layout overrides the layout of the catalog: classic or extended.
	Layout string

	// Uploads is a directory with one subdirectory of image files per
	// category (backgrounds, bodies, faces, ...) to add to the catalog.
	Uploads string

	// Output is the image file to save the rendered planet to.
	// When rendering more than one planet, the index of each
	// is inserted before the extension.
	Output string `default:"planet.png" flag:"o,output"`

	// Size is the width and height of the rendered planet in pixels.
	Size int `default:"128"`

	// Count is the number of planets to render.
	Count int `default:"1" flag:"n,count"`

	// Seed is the random seed of the first planet, with each
	// further planet using the next seed. A new seed is chosen
	// from the time if it is 0.
	Seed int64

	// Scaler is the image scaling method for layouts that
	// scale their layers: bilinear or lanczos.
	Scaler string `default:"bilinear"`

	// Sets are the attributes to set after randomizing, as slot=name
	// pairs, for example orbit=Laika or hand=None.
	Sets []string `cmd:"render" posarg:"leftover" required:"-"`

	// Slot is the slot whose attributes are listed.
	// All of the slots of the layout are listed if it is empty.
	Slot string `cmd:"list" posarg:"0" required:"-"`

	// Debug shows debug log messages.
	Debug bool

	// Silent only shows errors.
	Silent bool
}

func main() {
	opts := cli.DefaultOptions("planetgen", "Planetgen renders planet avatars from layered attribute images.")
	cli.Run(opts, &Config{},
		&cli.Cmd[*Config]{Func: Render, Name: "render", Doc: "Render renders planets with random attributes, then applies the given slot=name settings.", Root: true},
		&cli.Cmd[*Config]{Func: List, Name: "list", Doc: "List lists the attributes available for each slot."},
	)
}

// Render renders planets to image files.
func Render(c *Config) error {
	setLogLevel(c)
	cat, err := openCatalog(c)
	if err != nil {
		return err
	}
	if c.Uploads != "" {
		dir, err := homedir.Expand(c.Uploads)
		if err != nil {
			return err
		}
		uploadDir(cat, dir)
	}
	sc, err := imagex.ScalerByName(c.Scaler)
	if err != nil {
		return err
	}
	out, err := homedir.Expand(c.Output)
	if err != nil {
		return err
	}
	sets, err := parseSets(c.Sets)
	if err != nil {
		return err
	}
	if c.Size <= 0 {
		c.Size = planet.DefaultSize
	}
	if msg := sizeWarning(cat.Layout, c.Size); msg != "" {
		slog.Warn(msg)
	}
	n := max(c.Count, 1)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	var seeds randx.Seeds
	seeds.Init(n, c.Seed)
	if c.Seed == 0 {
		seeds.NewSeeds()
	}
	cv := canvas.New(c.Size, c.Size)
	defer cv.Release()
	r := planet.NewRenderer(cv)
	st := selection.NewState(cat)
	for i := range n {
		st.Rand = seeds.Set(i)
		sel, err := st.Next(st.Initial(), selection.Randomize{})
		if err != nil {
			return err
		}
		for _, ev := range sets {
			if sel, err = st.Next(sel, ev); err != nil {
				return err
			}
		}
		p := sel.Planet(cat.Decoder()).SetScaler(sc)
		if err := r.Render(ctx, p, c.Size); err != nil {
			return err
		}
		fn := outputName(out, i, n)
		if err := cv.Save(fn); err != nil {
			return err
		}
		slog.Info("rendered planet", "file", fn, "seed", seeds[i], "layers", len(cv.Layers()))
	}
	return nil
}

// List lists the attributes of the catalog.
func List(c *Config) error {
	setLogLevel(c)
	cat, err := openCatalog(c)
	if err != nil {
		return err
	}
	slots := cat.Layout.Order
	if c.Slot != "" {
		s, err := planet.SlotFromString(c.Slot)
		if err != nil {
			return err
		}
		slots = []planet.Slot{s}
	}
	out := termenv.NewOutput(os.Stdout)
	st := selection.NewState(cat)
	for _, s := range slots {
		title := fmt.Sprintf("%s (%s): %d", s.Label(), s.Plural(), cat.Len(s))
		fmt.Fprintln(out, out.String(title).Bold())
		for _, a := range st.Options(s) {
			fmt.Fprintln(out, "  "+a.Name)
		}
	}
	return nil
}

func setLogLevel(c *Config) {
	logx.UserLevel = logx.LevelFromFlags(c.Debug, !c.Silent, c.Silent)
	logx.SetDefaultLogger()
}

func openCatalog(c *Config) (*catalog.Catalog, error) {
	var cat *catalog.Catalog
	var err error
	if c.Catalog == "" {
		cat, err = catalog.Default()
	} else {
		var fn string
		fn, err = homedir.Expand(c.Catalog)
		if err != nil {
			return nil, err
		}
		cat, err = catalog.Open(fn)
	}
	if err != nil {
		return nil, err
	}
	if c.Layout != "" {
		cat.Layout, err = planet.LayoutByName(c.Layout)
		if err != nil {
			return nil, err
		}
	}
	return cat, nil
}

// uploadDir adds the image files of each category subdirectory
// of dir to the catalog. Rejected files are logged and skipped.
func uploadDir(cat *catalog.Catalog, dir string) {
	for _, s := range planet.Slots() {
		sub := filepath.Join(dir, s.Plural())
		if _, err := os.Stat(sub); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		files, err := upload.ReadDir(sub)
		if errors.Log(err) != nil {
			continue
		}
		items, err := upload.Batch(cat.List(s), files)
		if err != nil {
			slog.Warn(upload.Message(err), "category", s.Plural())
		}
		if errors.Log(cat.Set(s, items)) != nil {
			continue
		}
		slog.Info(fmt.Sprintf("%d %s uploaded", cat.Len(s), s.Plural()))
	}
}

// sizeWarning returns a message if the layout draws its layers unscaled
// and the size differs from that of the bundled images, in which case
// the planet is cropped or does not fill the canvas.
func sizeWarning(layout *planet.Layout, size int) string {
	if layout.Scale || size == planet.DefaultSize {
		return ""
	}
	return fmt.Sprintf("the %s layout does not scale layers: images sized %dx%d will be cropped or undersized at size %d", layout.Name, planet.DefaultSize, planet.DefaultSize, size)
}

// parseSets parses slot=name pairs into events.
func parseSets(args []string) ([]selection.Event, error) {
	evs := make([]selection.Event, 0, len(args))
	for _, arg := range args {
		slot, name, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("invalid setting %q: must be slot=name", arg)
		}
		s, err := planet.SlotFromString(strings.TrimSpace(slot))
		if err != nil {
			return nil, err
		}
		evs = append(evs, selection.Set{Slot: s, Name: strings.TrimSpace(name)})
	}
	return evs, nil
}

// outputName returns the file name of the planet with the given
// index out of n.
func outputName(out string, i, n int) string {
	if n == 1 {
		return out
	}
	ext := filepath.Ext(out)
	return fmt.Sprintf("%s_%d%s", strings.TrimSuffix(out, ext), i, ext)
}
