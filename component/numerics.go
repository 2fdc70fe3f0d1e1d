package component

import (
	"github.com/c360studio/swanconfig/subcomponent"
)

// Prop selects the propagation scheme: PROP BSBT|GSE.
type Prop struct {
	Scheme *subcomponent.SchemeUnion `yaml:"scheme"`
}

// Cmd renders the PROP command.
func (c Prop) Cmd() []string {
	repr := "PROP"
	if c.Scheme != nil {
		repr += " " + c.Scheme.Render()
	}
	return []string{repr}
}

// Numeric tunes the numerical properties of the computation:
// NUMERIC STOPC|ACCUR DIRIMPL SIGIMPL CTHETA CSIGMA SETUP.
type Numeric struct {
	Stop    *subcomponent.StopUnion   `yaml:"stop"`
	DirImpl *subcomponent.DirImpl     `yaml:"dirimpl"`
	SigImpl *subcomponent.SigImpl     `yaml:"sigimpl"`
	CTheta  *subcomponent.CTheta      `yaml:"ctheta"`
	CSigma  *subcomponent.CSigma      `yaml:"csigma"`
	Setup   *subcomponent.SetupSolver `yaml:"setup"`
}

// Validate checks the configured clauses.
func (c Numeric) Validate() error {
	if c.Stop != nil {
		if err := validateMember("stop", c.Stop.Stop); err != nil {
			return err
		}
	}
	if c.SigImpl != nil {
		if err := validateMember("sigimpl", c.SigImpl); err != nil {
			return err
		}
	}
	if c.Setup != nil {
		if err := validateMember("setup", c.Setup); err != nil {
			return err
		}
	}
	return nil
}

// Cmd renders the NUMERIC command with every configured clause.
func (c Numeric) Cmd() []string {
	repr := "NUMERIC"
	if c.Stop != nil {
		repr += " " + c.Stop.Render()
	}
	if c.DirImpl != nil {
		repr += " " + c.DirImpl.Render()
	}
	if c.SigImpl != nil {
		repr += " " + c.SigImpl.Render()
	}
	if c.CTheta != nil {
		repr += " " + c.CTheta.Render()
	}
	if c.CSigma != nil {
		repr += " " + c.CSigma.Render()
	}
	if c.Setup != nil {
		repr += " " + c.Setup.Render()
	}
	return []string{repr}
}
