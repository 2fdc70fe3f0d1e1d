// Package runtime carries the run-level context a command file is generated
// for: the simulation period, the staging directory the forcing data is
// copied into, and a unique run identifier.
package runtime

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/c360studio/swanconfig/subcomponent"
)

// Period is the time window a model run covers. Interval is the step used
// for computation spans and output times that do not prescribe their own.
type Period struct {
	Start    time.Time             `yaml:"start"`
	Duration subcomponent.Duration `yaml:"duration"`
	Interval subcomponent.Duration `yaml:"interval"`
}

// End returns the last instant of the period.
func (p Period) End() time.Time {
	return p.Start.Add(time.Duration(p.Duration))
}

// Validate checks the period is usable for resolving times.
func (p Period) Validate() error {
	if p.Start.IsZero() {
		return fmt.Errorf("start is required")
	}
	if p.Duration <= 0 {
		return fmt.Errorf("duration must be positive")
	}
	if p.Interval <= 0 {
		return fmt.Errorf("interval must be positive")
	}
	return nil
}

// Context identifies a single generation run.
type Context struct {
	// ID uniquely names the run; it appears in logs and staged artefacts.
	ID string `yaml:"id"`
	// Period is the simulation window times are resolved against.
	Period Period `yaml:"period"`
	// StagingDir is where forcing data files are copied and where the
	// command file is written.
	StagingDir string `yaml:"staging_dir"`
}

// New creates a run context with a fresh run ID.
func New(period Period, stagingDir string) *Context {
	return &Context{
		ID:         uuid.NewString(),
		Period:     period,
		StagingDir: stagingDir,
	}
}

// Validate checks the period and staging directory.
func (c *Context) Validate() error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if err := c.Period.Validate(); err != nil {
		return fmt.Errorf("period: %w", err)
	}
	if c.StagingDir == "" {
		return fmt.Errorf("staging_dir is required")
	}
	return nil
}

// EnsureStagingDir creates the staging directory if it does not exist.
func (c *Context) EnsureStagingDir() error {
	if err := os.MkdirAll(c.StagingDir, 0755); err != nil {
		return fmt.Errorf("failed to create staging dir: %w", err)
	}
	return nil
}
