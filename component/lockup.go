package component

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/swanconfig/subcomponent"
	"github.com/c360studio/swanconfig/variant"
)

// ComputeTimes is implemented by the STATIONARY and NONSTATIONARY time
// specifications of the COMPUTE commands.
type ComputeTimes interface {
	Render() string
	// Times enumerates the computation instants.
	Times() []time.Time
	// Format returns the tfmt identifier for the rendered times.
	Format() int
}

var computeTimesRegistry = variant.New[ComputeTimes]("compute times")

func init() {
	variant.Register(computeTimesRegistry, "stationary",
		func(t subcomponent.Stationary) ComputeTimes { return t })
	variant.Register(computeTimesRegistry, "nonstationary",
		func(t subcomponent.Nonstationary) ComputeTimes {
			// COMPUTE carries the "c" variable suffix (tbegc, deltc, tendc).
			t.Suffix = "c"
			return t
		})
}

// ComputeTimesUnion holds a resolved computation time specification.
type ComputeTimesUnion struct {
	ComputeTimes
}

// UnmarshalYAML resolves the times by their model_type tag.
func (u *ComputeTimesUnion) UnmarshalYAML(node *yaml.Node) error {
	t, err := computeTimesRegistry.Resolve(node)
	if err != nil {
		return err
	}
	u.ComputeTimes = t
	return nil
}

// Compute starts a single computation: COMPUTE (STATIONARY|NONSTATIONARY).
// In nonstationary mode several COMPUTE commands may follow each other, the
// wave state at the end of one being the initial state of the next.
type Compute struct {
	Times *ComputeTimesUnion `yaml:"times"`
}

// Cmd renders the COMPUTE command.
func (c Compute) Cmd() []string {
	repr := "COMPUTE"
	if c.Times != nil && c.Times.ComputeTimes != nil {
		repr += " " + c.Times.Render()
	}
	return []string{repr}
}

// Hotfile writes the entire wave field at the end of a computation for use
// as the initial condition of a subsequent run:
// HOTFILE 'fname' FREE|UNFORMATTED. Must directly follow a COMPUTE command.
type Hotfile struct {
	Fname  string  `yaml:"fname"`
	Format *string `yaml:"format"`
}

// Validate checks the file name and format keyword.
func (c Hotfile) Validate() error {
	if c.Fname == "" || len(c.Fname) > 36 {
		return fmt.Errorf("fname is required and must be at most 36 characters")
	}
	if c.Format != nil {
		switch *c.Format {
		case "free", "unformatted":
		default:
			return fmt.Errorf("format must be free or unformatted, got %q", *c.Format)
		}
	}
	return nil
}

// Cmd renders the HOTFILE command.
func (c Hotfile) Cmd() []string {
	repr := fmt.Sprintf("HOTFILE fname='%s'", c.Fname)
	if c.Format != nil {
		repr += " " + strings.ToUpper(*c.Format)
	}
	return []string{repr}
}

// stamped returns a copy with the timestamp spliced into the file name
// before the extension.
func (c Hotfile) stamped(t time.Time, layout string) Hotfile {
	ext := filepath.Ext(c.Fname)
	stem := strings.TrimSuffix(c.Fname, ext)
	c.Fname = stem + t.Format(layout) + ext
	return c
}

// HotTime selects an instant at which to write a hotfile, either by the
// index of a computation step (negative counts from the end) or by the
// timestamp itself.
type HotTime struct {
	Index *int
	Time  *time.Time
}

// UnmarshalYAML accepts an integer index or a timestamp.
func (h *HotTime) UnmarshalYAML(node *yaml.Node) error {
	var i int
	if err := node.Decode(&i); err == nil {
		h.Index = &i
		return nil
	}
	var t time.Time
	if err := node.Decode(&t); err != nil {
		return fmt.Errorf("hottime must be a step index or a timestamp: %w", err)
	}
	h.Time = &t
	return nil
}

// resolveHotIDs maps the configured hotfile times onto indices of the
// computation steps.
func resolveHotIDs(hottimes []HotTime, steps []time.Time) (map[int]bool, error) {
	ids := make(map[int]bool, len(hottimes))
	for _, ht := range hottimes {
		switch {
		case ht.Time != nil:
			found := -1
			for i, step := range steps {
				if step.Equal(*ht.Time) {
					found = i
					break
				}
			}
			if found == -1 {
				return nil, fmt.Errorf("hottime %s is not a computation step", ht.Time)
			}
			ids[found] = true
		case ht.Index != nil:
			i := *ht.Index
			if i < 0 {
				i += len(steps)
			}
			if i < 0 || i >= len(steps) {
				return nil, fmt.Errorf(
					"hotfile requested for step %d but there are only %d steps",
					*ht.Index, len(steps))
			}
			ids[i] = true
		}
	}
	return ids, nil
}

// DefaultHotfileSuffix is the timestamp layout spliced into hotfile names.
const DefaultHotfileSuffix = "_20060102T150405"

// ComputeStat expands a time range into a sequence of stationary
// computations, writing hotfiles at the requested instants:
//
//	COMPUTE STATIONARY [time]
//	HOTFILE 'fname' FREE|UNFORMATTED
//	COMPUTE STATIONARY [time]
//	...
type ComputeStat struct {
	Times    ComputeTimesUnion `yaml:"times"`
	Hotfile  *Hotfile          `yaml:"hotfile"`
	Hottimes []HotTime         `yaml:"hottimes"`
	Suffix   string            `yaml:"suffix"`
}

// Validate warns about hotfile settings that cannot take effect.
func (c *ComputeStat) Validate() error {
	if c.Suffix == "" {
		c.Suffix = DefaultHotfileSuffix
	}
	if len(c.Hottimes) > 0 && c.Hotfile == nil {
		slog.Warn("hotfile not specified, hottimes will be ignored")
	}
	if c.Hotfile != nil && len(c.Hottimes) == 0 {
		slog.Warn("hottimes not specified, hotfile will be ignored")
	}
	if c.Hotfile != nil {
		if err := c.Hotfile.Validate(); err != nil {
			return fmt.Errorf("hotfile: %w", err)
		}
	}
	if err := validateMember("times", c.times()); err != nil {
		return err
	}
	_, err := resolveHotIDs(c.Hottimes, c.times().Times())
	return err
}

func (c *ComputeStat) times() ComputeTimes {
	if c.Times.ComputeTimes == nil {
		return subcomponent.Stationary{}
	}
	return c.Times.ComputeTimes
}

func (c *ComputeStat) hotIDs() (map[int]bool, error) {
	return resolveHotIDs(c.Hottimes, c.times().Times())
}

// Cmd renders one COMPUTE STATIONARY per step with hotfiles interleaved.
func (c *ComputeStat) Cmd() []string {
	ids, err := c.hotIDs()
	if err != nil {
		ids = nil
	}
	suffix := c.Suffix
	if suffix == "" {
		suffix = DefaultHotfileSuffix
	}
	times := c.times()
	var repr []string
	for i, t := range times.Times() {
		stat := subcomponent.Stationary{Time: t, Tfmt: times.Format()}
		repr = append(repr, "COMPUTE "+stat.Render())
		if ids[i] && c.Hotfile != nil {
			repr = append(repr, c.Hotfile.stamped(t, suffix).Cmd()...)
		}
	}
	return repr
}

// ComputeNonstat splits a nonstationary time range at the requested hotfile
// instants, one COMPUTE NONSTATIONARY per span:
//
//	COMPUTE NONSTATIONARY [tbegc] [deltc] SEC|MIN|HR|DAY [tendc]
//	HOTFILE 'fname' FREE|UNFORMATTED
//	COMPUTE NONSTATIONARY [tbegc] [deltc] SEC|MIN|HR|DAY [tendc]
//	...
type ComputeNonstat struct {
	Times    subcomponent.Nonstationary `yaml:"times"`
	Hotfile  *Hotfile                   `yaml:"hotfile"`
	Hottimes []HotTime                  `yaml:"hottimes"`
	Suffix   string                     `yaml:"suffix"`
	// Initstat runs a stationary computation at the initial time to
	// prescribe initial conditions for the nonstationary computation.
	Initstat bool `yaml:"initstat"`
}

// Validate warns about hotfile settings that cannot take effect.
func (c *ComputeNonstat) Validate() error {
	c.Times.Suffix = "c"
	if c.Suffix == "" {
		c.Suffix = DefaultHotfileSuffix
	}
	if len(c.Hottimes) > 0 && c.Hotfile == nil {
		slog.Warn("hotfile not specified, hottimes will be ignored")
	}
	if c.Hotfile != nil && len(c.Hottimes) == 0 {
		slog.Warn("hottimes not specified, hotfile will be ignored")
	}
	if c.Hotfile != nil {
		if err := c.Hotfile.Validate(); err != nil {
			return fmt.Errorf("hotfile: %w", err)
		}
	}
	if err := validateMember("times", c.Times); err != nil {
		return err
	}
	_, err := resolveHotIDs(c.Hottimes, c.Times.Times())
	return err
}

func (c *ComputeNonstat) span(tbeg, tend time.Time) subcomponent.Nonstationary {
	times := c.Times
	times.Tbeg = tbeg
	times.Tend = tend
	times.Suffix = "c"
	return times
}

// Cmd renders the COMPUTE NONSTATIONARY spans with hotfiles interleaved.
func (c *ComputeNonstat) Cmd() []string {
	c.Times.Suffix = "c"
	steps := c.Times.Times()
	if len(steps) == 0 {
		return nil
	}
	ids, err := resolveHotIDs(c.Hottimes, steps)
	if err != nil {
		ids = nil
	}
	suffix := c.Suffix
	if suffix == "" {
		suffix = DefaultHotfileSuffix
	}

	var repr []string
	tbeg := steps[0]
	if c.Initstat {
		stat := subcomponent.Stationary{Time: tbeg, Tfmt: c.Times.Tfmt}
		repr = append(repr, "COMPUTE "+stat.Render())
	}
	last := -1
	for i := 0; i < len(steps); i++ {
		if !ids[i] {
			continue
		}
		tend := steps[i]
		repr = append(repr, "COMPUTE "+c.span(tbeg, tend).Render())
		if c.Hotfile != nil {
			repr = append(repr, c.Hotfile.stamped(tend, suffix).Cmd()...)
		}
		tbeg = tend
		last = i
	}
	if last < len(steps)-1 {
		tend := c.Times.Tend
		if tend.IsZero() {
			tend = steps[len(steps)-1]
		}
		repr = append(repr, "COMPUTE "+c.span(tbeg, tend).Render())
	}
	return repr
}

// Stop marks the end of the command file: STOP. Anything after it is
// ignored by the model.
type Stop struct{}

// Cmd renders the STOP command.
func (c Stop) Cmd() []string { return []string{"STOP"} }
