// Package forcing stages the data files a command file refers to. Each data
// grid names the input field it carries and a glob pattern selecting its
// files; staging copies the matches into the run directory so READINP file
// names resolve relative to it.
package forcing

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/c360studio/swanconfig/types"
)

// DataGrid selects the files backing one input grid.
type DataGrid struct {
	// Var is the input field the files carry (bottom, wind, ice, ...).
	Var types.GridOption `yaml:"var"`
	// Dir is the directory searched for data files.
	Dir string `yaml:"dir"`
	// Pattern is a glob matched against paths below Dir. Double-star
	// patterns descend into subdirectories ("**/*.nc").
	Pattern string `yaml:"pattern"`
}

// Validate checks the field name, directory and pattern.
func (d DataGrid) Validate() error {
	if err := d.Var.Validate(); err != nil {
		return err
	}
	if d.Dir == "" {
		return fmt.Errorf("dir is required")
	}
	if d.Pattern == "" {
		return fmt.Errorf("pattern is required")
	}
	if !doublestar.ValidatePattern(d.Pattern) {
		return fmt.Errorf("invalid pattern %q", d.Pattern)
	}
	return nil
}

// Select returns the data file paths matching the grid's pattern, relative
// to its directory.
func (d DataGrid) Select() ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(d.Dir), d.Pattern)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", d.Var, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%s: no files match %q under %s", d.Var, d.Pattern, d.Dir)
	}
	return matches, nil
}

// Stage copies the grid's data files into destdir and returns the staged
// paths.
func (d DataGrid) Stage(destdir string) ([]string, error) {
	matches, err := d.Select()
	if err != nil {
		return nil, err
	}
	staged := make([]string, 0, len(matches))
	for _, match := range matches {
		dst := filepath.Join(destdir, filepath.Base(match))
		if err := copyFile(filepath.Join(d.Dir, match), dst); err != nil {
			return nil, fmt.Errorf("%s: %w", d.Var, err)
		}
		slog.Info("staged forcing file",
			slog.String("var", string(d.Var)), slog.String("path", dst))
		staged = append(staged, dst)
	}
	return staged, nil
}

// Data gathers the data grids of a run. The bottom grid is kept apart so it
// is always staged first.
type Data struct {
	Bottom *DataGrid  `yaml:"bottom"`
	Input  []DataGrid `yaml:"input"`
}

// Validate requires a unique input field per grid.
func (d Data) Validate() error {
	seen := make(map[types.GridOption]bool)
	for _, grid := range d.grids() {
		if err := grid.Validate(); err != nil {
			return fmt.Errorf("%s: %w", grid.Var, err)
		}
		if seen[grid.Var] {
			return fmt.Errorf("each var must be unique, got %q more than once", grid.Var)
		}
		seen[grid.Var] = true
	}
	return nil
}

func (d Data) grids() []DataGrid {
	var grids []DataGrid
	if d.Bottom != nil {
		grids = append(grids, *d.Bottom)
	}
	return append(grids, d.Input...)
}

// Stage copies every grid's data files into destdir, bottom first.
func (d Data) Stage(destdir string) ([]string, error) {
	var staged []string
	for _, grid := range d.grids() {
		paths, err := grid.Stage(destdir)
		if err != nil {
			return nil, err
		}
		staged = append(staged, paths...)
	}
	return staged, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()
	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
