// Package document assembles a full SWAN command file from the component
// tree. A Config gathers one node per command-file section; Generate
// resolves run-dependent times, stages the forcing data and renders the
// sections in the canonical order.
package document

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/swanconfig/component"
	"github.com/c360studio/swanconfig/forcing"
	"github.com/c360studio/swanconfig/render"
	"github.com/c360studio/swanconfig/runtime"
	"github.com/c360studio/swanconfig/subcomponent"
)

// Config is the top-level configuration tree. The computational grid is the
// only required section; every other section is rendered only when
// prescribed.
type Config struct {
	Startup  *component.Startup       `yaml:"startup"`
	CGrid    *component.CGridUnion    `yaml:"cgrid"`
	Inpgrid  *component.Inpgrids      `yaml:"inpgrid"`
	Boundary *component.BoundaryUnion `yaml:"boundary"`
	Initial  *component.Initial       `yaml:"initial"`
	Physics  *component.Physics       `yaml:"physics"`
	Prop     *component.Prop          `yaml:"prop"`
	Numeric  *component.Numeric       `yaml:"numeric"`
	Output   *component.Output        `yaml:"output"`
	Lockup   *component.Lockup        `yaml:"lockup"`
	Forcing  *forcing.Data            `yaml:"forcing"`
}

// Load reads and validates a configuration tree from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// validateSection validates a section whose resolved variant carries its own
// checks, wrapping errors with the section name.
func validateSection(name string, m any) error {
	v, ok := m.(interface{ Validate() error })
	if !ok {
		return nil
	}
	if err := v.Validate(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// Validate checks every prescribed section.
func (c *Config) Validate() error {
	if c.CGrid == nil || c.CGrid.CGrid == nil {
		return fmt.Errorf("cgrid is required")
	}
	if err := validateSection("cgrid", c.CGrid.CGrid); err != nil {
		return err
	}
	if c.Boundary != nil {
		if err := validateSection("boundary", c.Boundary.Boundary); err != nil {
			return err
		}
	}
	if c.Startup != nil {
		if err := c.Startup.Validate(); err != nil {
			return fmt.Errorf("startup: %w", err)
		}
	}
	if c.Inpgrid != nil {
		if err := c.Inpgrid.Validate(); err != nil {
			return fmt.Errorf("inpgrid: %w", err)
		}
	}
	if c.Physics != nil {
		if err := c.Physics.Validate(); err != nil {
			return fmt.Errorf("physics: %w", err)
		}
	}
	if c.Numeric != nil {
		if err := c.Numeric.Validate(); err != nil {
			return fmt.Errorf("numeric: %w", err)
		}
	}
	if c.Output != nil {
		if err := c.Output.Validate(); err != nil {
			return fmt.Errorf("output: %w", err)
		}
	}
	if c.Lockup != nil {
		if err := c.Lockup.Validate(); err != nil {
			return fmt.Errorf("lockup: %w", err)
		}
	}
	if c.Forcing != nil {
		if err := c.Forcing.Validate(); err != nil {
			return fmt.Errorf("forcing: %w", err)
		}
	}
	return nil
}

// Section is one named block of the final command file.
type Section struct {
	Name string
	Text string
}

// Rendered is the assembled command file.
type Rendered struct {
	// RunID names the run the document was generated for.
	RunID string
	// Generated is the generation timestamp written into the banner.
	Generated time.Time
	// Sections holds the rendered blocks in command-file order.
	Sections []Section
}

// banner draws a SWAN comment block naming the generating run.
func (r *Rendered) banner() string {
	rule := "$" + strings.Repeat("*", 68)
	lines := []string{
		rule,
		"$",
		"$ SWAN command file generated by swanconfig",
	}
	if r.RunID != "" {
		lines = append(lines, fmt.Sprintf("$ Run: %s", r.RunID))
	}
	if !r.Generated.IsZero() {
		lines = append(lines, fmt.Sprintf("$ Generated: %s", r.Generated.Format(time.RFC3339)))
	}
	lines = append(lines, "$", rule)
	return strings.Join(lines, "\n")
}

// Input returns the final command-file text.
func (r *Rendered) Input() string {
	parts := []string{r.banner()}
	for _, section := range r.Sections {
		parts = append(parts, section.Text)
	}
	return strings.Join(parts, "\n\n") + "\n"
}

// Generate validates the tree, resolves unset times against the run period,
// stages the forcing data into the run directory and renders the command
// file sections in canonical order.
func (c *Config) Generate(rt *runtime.Context) (*Rendered, error) {
	if err := rt.Validate(); err != nil {
		return nil, fmt.Errorf("runtime: %w", err)
	}
	c.resolveTimes(rt.Period)
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if c.Forcing != nil {
		if err := rt.EnsureStagingDir(); err != nil {
			return nil, err
		}
		staged, err := c.Forcing.Stage(rt.StagingDir)
		if err != nil {
			return nil, fmt.Errorf("forcing: %w", err)
		}
		slog.Info("staged forcing data",
			slog.String("run", rt.ID), slog.Int("files", len(staged)))
	}

	doc := &Rendered{RunID: rt.ID, Generated: time.Now()}
	add := func(name, text string) {
		if text != "" {
			doc.Sections = append(doc.Sections, Section{Name: name, Text: text})
		}
	}
	if c.Startup != nil {
		add("startup", c.Startup.Render())
	}
	add("cgrid", render.Render(c.CGrid))
	if c.Inpgrid != nil {
		add("inpgrid", c.Inpgrid.Render())
	}
	if c.Boundary != nil {
		add("boundary", render.Render(c.Boundary))
	}
	if c.Initial != nil {
		add("initial", render.Render(c.Initial))
	}
	if c.Physics != nil {
		add("physics", c.Physics.Render())
	}
	if c.Prop != nil {
		add("prop", render.Render(c.Prop))
	}
	if c.Numeric != nil {
		add("numeric", render.Render(c.Numeric))
	}
	if c.Output != nil {
		add("output", c.Output.Render())
	}
	if c.Lockup != nil {
		add("lockup", render.Render(c.Lockup))
	}
	return doc, nil
}

// resolveTimes fills unset output and compute times from the run period.
// Times the user prescribed are left alone.
func (c *Config) resolveTimes(period runtime.Period) {
	start := period.Start
	end := period.End()
	interval := time.Duration(period.Interval)

	if c.Output != nil {
		for _, b := range c.Output.Blocks {
			b.Times = resolveOpen(b.Times, start, interval)
		}
		if c.Output.Table != nil {
			c.Output.Table.Times = resolveOpen(c.Output.Table.Times, start, interval)
		}
		if c.Output.SpecOut != nil {
			c.Output.SpecOut.Times = resolveOpen(c.Output.SpecOut.Times, start, interval)
		}
		if c.Output.NestOut != nil {
			c.Output.NestOut.Times = resolveOpen(c.Output.NestOut.Times, start, interval)
		}
	}

	if c.Lockup == nil {
		return
	}
	switch compute := c.Lockup.Compute.ComputeCmd.(type) {
	case *component.ComputeStat:
		switch times := compute.Times.ComputeTimes.(type) {
		case subcomponent.Stationary:
			if times.Time.IsZero() {
				times.Time = start
			}
			compute.Times.ComputeTimes = times
		case subcomponent.Nonstationary:
			times.TimeRangeClosed = times.WithDefaults(start, end, interval)
			times.Suffix = "c"
			compute.Times.ComputeTimes = times
		}
	case *component.ComputeNonstat:
		compute.Times.TimeRangeClosed = compute.Times.WithDefaults(start, end, interval)
		compute.Times.Suffix = "c"
	case component.Compute:
		if compute.Times == nil {
			break
		}
		switch times := compute.Times.ComputeTimes.(type) {
		case subcomponent.Stationary:
			if times.Time.IsZero() {
				times.Time = start
				compute.Times.ComputeTimes = times
			}
		case subcomponent.Nonstationary:
			times.TimeRangeClosed = times.WithDefaults(start, end, interval)
			times.Suffix = "c"
			compute.Times.ComputeTimes = times
		}
	}
}

// resolveOpen fills the unset fields of a writer time range.
func resolveOpen(t *subcomponent.TimeRangeOpen, tbeg time.Time, delt time.Duration) *subcomponent.TimeRangeOpen {
	if t == nil {
		return nil
	}
	resolved := t.WithDefaults(tbeg, delt)
	return &resolved
}
