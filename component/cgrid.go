package component

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/swanconfig/render"
	"github.com/c360studio/swanconfig/subcomponent"
	"github.com/c360studio/swanconfig/variant"
)

// CGrid is implemented by the computational grid commands:
// CGRID REGULAR|CURVILINEAR|UNSTRUCTURED.
type CGrid interface {
	render.Renderer
}

var cgridRegistry = variant.New[CGrid]("cgrid")

func init() {
	variant.Register(cgridRegistry, "regular", func(c CGridRegular) CGrid { return &c })
	variant.Register(cgridRegistry, "curvilinear", func(c CGridCurvilinear) CGrid { return &c })
	variant.Register(cgridRegistry, "unstructured", func(c CGridUnstructured) CGrid { return &c })
}

// CGridUnion holds a resolved computational grid command.
type CGridUnion struct {
	CGrid
}

// UnmarshalYAML resolves the grid by its model_type tag.
func (u *CGridUnion) UnmarshalYAML(node *yaml.Node) error {
	c, err := cgridRegistry.Resolve(node)
	if err != nil {
		return err
	}
	u.CGrid = c
	return nil
}

// CGridRegular defines a regular computational grid:
// CGRID REGULAR [xpc] [ypc] [alpc] [xlenc] [ylenc] [mxc] [myc] CIRCLE|SECTOR ...
type CGridRegular struct {
	Grid     subcomponent.GridRegular `yaml:"grid"`
	Spectrum subcomponent.Spectrum    `yaml:"spectrum"`
}

// Validate pins the grid variable suffix to "c" and checks the nested fields.
func (c *CGridRegular) Validate() error {
	c.Grid.Suffix = "c"
	if err := c.Grid.Validate(); err != nil {
		return fmt.Errorf("grid: %w", err)
	}
	if err := c.Spectrum.Validate(); err != nil {
		return fmt.Errorf("spectrum: %w", err)
	}
	return nil
}

// Cmd renders the CGRID REGULAR command.
func (c *CGridRegular) Cmd() []string {
	return []string{fmt.Sprintf("CGRID REGULAR %s %s", c.Grid.Render(), c.Spectrum.Render())}
}

// CGridCurvilinear defines a curvilinear computational grid, paired with a
// READGRID COORDINATES command that reads the grid point coordinates.
type CGridCurvilinear struct {
	Mxc       int                   `yaml:"mxc"`
	Myc       int                   `yaml:"myc"`
	Xexc      *float64              `yaml:"xexc"`
	Yexc      *float64              `yaml:"yexc"`
	ReadCoord subcomponent.ReadCoord `yaml:"readcoord"`
	Spectrum  subcomponent.Spectrum  `yaml:"spectrum"`
}

// Validate requires the exception values to be given together.
func (c *CGridCurvilinear) Validate() error {
	if (c.Xexc == nil) != (c.Yexc == nil) {
		return fmt.Errorf("xexc and yexc must be specified together")
	}
	if err := c.ReadCoord.Validate(); err != nil {
		return fmt.Errorf("readcoord: %w", err)
	}
	if err := c.Spectrum.Validate(); err != nil {
		return fmt.Errorf("spectrum: %w", err)
	}
	return nil
}

// Cmd renders the CGRID CURVILINEAR and READGRID COORDINATES commands.
func (c *CGridCurvilinear) Cmd() []string {
	repr := fmt.Sprintf("CGRID CURVILINEAR mxc=%d myc=%d", c.Mxc, c.Myc)
	if c.Xexc != nil {
		repr += fmt.Sprintf(" EXCEPTION xexc=%s yexc=%s",
			render.Float(*c.Xexc), render.Float(*c.Yexc))
	}
	repr += " " + c.Spectrum.Render()
	return []string{repr, c.ReadCoord.Render()}
}

// CGridUnstructured defines an unstructured computational grid, paired with a
// READGRID UNSTRUCTURED command. ADCIRC grids are read from fort.14 and take
// no file name; triangle and easymesh grids require one.
type CGridUnstructured struct {
	GridType string                `yaml:"grid_type"`
	Fname    *string               `yaml:"fname"`
	Spectrum subcomponent.Spectrum `yaml:"spectrum"`
}

// Validate checks the grid type and file name pairing.
func (c *CGridUnstructured) Validate() error {
	switch c.gridType() {
	case "adcirc":
		if c.Fname != nil {
			return fmt.Errorf("fname must not be specified for adcirc grid")
		}
	case "triangle", "easymesh":
		if c.Fname == nil {
			return fmt.Errorf("fname must be specified for %s grid", c.gridType())
		}
		if len(*c.Fname) > 36 {
			return fmt.Errorf("fname must be at most 36 characters")
		}
	default:
		return fmt.Errorf("grid_type must be adcirc, triangle or easymesh, got %q", c.GridType)
	}
	if err := c.Spectrum.Validate(); err != nil {
		return fmt.Errorf("spectrum: %w", err)
	}
	return nil
}

func (c *CGridUnstructured) gridType() string {
	if c.GridType == "" {
		return "adcirc"
	}
	return c.GridType
}

// Cmd renders the CGRID UNSTRUCTURED and READGRID UNSTRUCTURED commands.
func (c *CGridUnstructured) Cmd() []string {
	read := "READGRID UNSTRUCTURED " + strings.ToUpper(c.gridType())
	if c.Fname != nil {
		read += fmt.Sprintf(" fname=%s", render.Quote(*c.Fname))
	}
	return []string{
		"CGRID UNSTRUCTURED " + c.Spectrum.Render(),
		read,
	}
}
