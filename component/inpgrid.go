package component

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/swanconfig/render"
	"github.com/c360studio/swanconfig/subcomponent"
	"github.com/c360studio/swanconfig/types"
	"github.com/c360studio/swanconfig/variant"
)

// InpGrid is implemented by the input grid commands:
// INPGRID [grid_type] REGULAR|CURVILINEAR|UNSTRUCTURED.
type InpGrid interface {
	render.Renderer
	// Type reports which input field the grid carries.
	Type() types.GridOption
}

var inpgridRegistry = variant.New[InpGrid]("inpgrid")

func init() {
	variant.Register(inpgridRegistry, "regular", func(c InpGridRegular) InpGrid { return &c })
	variant.Register(inpgridRegistry, "curvilinear", func(c InpGridCurvilinear) InpGrid { return &c })
	variant.Register(inpgridRegistry, "unstructured", func(c InpGridUnstructured) InpGrid { return &c })
}

// InpGridUnion holds a resolved input grid command.
type InpGridUnion struct {
	InpGrid
}

// UnmarshalYAML resolves the grid by its model_type tag.
func (u *InpGridUnion) UnmarshalYAML(node *yaml.Node) error {
	c, err := inpgridRegistry.Resolve(node)
	if err != nil {
		return err
	}
	u.InpGrid = c
	return nil
}

// inpGridBase carries the fields shared by all input grid kinds. The reader
// grid type and the nonstationary variable suffix are derived from the grid
// during validation rather than set by the user.
type inpGridBase struct {
	GridType      types.GridOption            `yaml:"grid_type"`
	Excval        *float64                    `yaml:"excval"`
	Nonstationary *subcomponent.Nonstationary `yaml:"nonstationary"`
	ReadInp       subcomponent.ReadInp        `yaml:"readinp"`
}

func (c *inpGridBase) Type() types.GridOption { return c.GridType }

func (c *inpGridBase) validate() error {
	if err := c.GridType.Validate(); err != nil {
		return err
	}
	c.ReadInp.GridType = c.GridType
	if err := c.ReadInp.Validate(); err != nil {
		return fmt.Errorf("readinp: %w", err)
	}
	if c.Nonstationary != nil {
		c.Nonstationary.Suffix = "inp"
		if err := c.Nonstationary.Validate(); err != nil {
			return fmt.Errorf("nonstationary: %w", err)
		}
	}
	return nil
}

// tail renders the optional EXCEPTION and NONSTATIONARY clauses.
func (c *inpGridBase) tail() string {
	var repr string
	if c.Excval != nil {
		repr += fmt.Sprintf(" EXCEPTION excval=%s", render.Float(*c.Excval))
	}
	if c.Nonstationary != nil {
		repr += " " + c.Nonstationary.Render()
	}
	return repr
}

func (c *inpGridBase) prefix() string {
	return "INPGRID " + strings.ToUpper(string(c.GridType))
}

// InpGridRegular defines a regular input grid:
// INPGRID [grid_type] REGULAR [xpinp] [ypinp] [alpinp] [mxinp] [myinp]
// [dxinp] [dyinp], paired with a READINP command.
type InpGridRegular struct {
	inpGridBase `yaml:",inline"`
	Xpinp       float64 `yaml:"xpinp"`
	Ypinp       float64 `yaml:"ypinp"`
	Alpinp      float64 `yaml:"alpinp"`
	Mxinp       int     `yaml:"mxinp"`
	Myinp       int     `yaml:"myinp"`
	Dxinp       float64 `yaml:"dxinp"`
	Dyinp       float64 `yaml:"dyinp"`
}

// Validate checks the shared and reader fields.
func (c *InpGridRegular) Validate() error { return c.validate() }

// Cmd renders the INPGRID REGULAR and READINP commands.
func (c *InpGridRegular) Cmd() []string {
	repr := fmt.Sprintf(
		"%s REGULAR xpinp=%s ypinp=%s alpinp=%s mxinp=%d myinp=%d dxinp=%s dyinp=%s",
		c.prefix(), render.Float(c.Xpinp), render.Float(c.Ypinp), render.Float(c.Alpinp),
		c.Mxinp, c.Myinp, render.Float(c.Dxinp), render.Float(c.Dyinp),
	)
	return []string{repr + c.tail(), c.ReadInp.Render()}
}

// InpGridCurvilinear defines a curvilinear input grid staggered with respect
// to the computational grid, paired with a READINP command.
type InpGridCurvilinear struct {
	inpGridBase `yaml:",inline"`
	Stagrx      float64 `yaml:"stagrx"`
	Stagry      float64 `yaml:"stagry"`
	Mxinp       int     `yaml:"mxinp"`
	Myinp       int     `yaml:"myinp"`
}

// Validate checks the shared and reader fields.
func (c *InpGridCurvilinear) Validate() error { return c.validate() }

// Cmd renders the INPGRID CURVILINEAR and READINP commands.
func (c *InpGridCurvilinear) Cmd() []string {
	repr := fmt.Sprintf(
		"%s CURVILINEAR stagrx=%s stagry=%s mxinp=%d myinp=%d",
		c.prefix(), render.Float(c.Stagrx), render.Float(c.Stagry), c.Mxinp, c.Myinp,
	)
	return []string{repr + c.tail(), c.ReadInp.Render()}
}

// InpGridUnstructured defines an input grid on the unstructured
// computational mesh, paired with a READINP command.
type InpGridUnstructured struct {
	inpGridBase `yaml:",inline"`
}

// Validate checks the shared and reader fields.
func (c *InpGridUnstructured) Validate() error { return c.validate() }

// Cmd renders the INPGRID UNSTRUCTURED and READINP commands.
func (c *InpGridUnstructured) Cmd() []string {
	return []string{c.prefix() + " UNSTRUCTURED" + c.tail(), c.ReadInp.Render()}
}

// Wind defines a constant wind field: WIND [vel] [dir].
type Wind struct {
	Vel float64 `yaml:"vel"`
	Dir float64 `yaml:"dir"`
}

// Validate checks the velocity and direction ranges.
func (c Wind) Validate() error {
	if c.Vel < 0 {
		return fmt.Errorf("vel must not be negative")
	}
	if c.Dir < -180 || c.Dir > 360 {
		return fmt.Errorf("dir must be in the range [-180, 360]")
	}
	return nil
}

// Cmd renders the WIND command.
func (c Wind) Cmd() []string {
	return []string{fmt.Sprintf("WIND vel=%s dir=%s", render.Float(c.Vel), render.Float(c.Dir))}
}

// Ice defines constant ice fields: ICE [aice] [hice].
type Ice struct {
	Aice float64 `yaml:"aice"`
	Hice float64 `yaml:"hice"`
}

// Validate checks the ice fraction and thickness ranges.
func (c Ice) Validate() error {
	if c.Aice < 0 || c.Aice > 1 {
		return fmt.Errorf("aice must be in the range [0, 1]")
	}
	if c.Hice < 0 {
		return fmt.Errorf("hice must not be negative")
	}
	return nil
}

// Cmd renders the ICE command.
func (c Ice) Cmd() []string {
	return []string{fmt.Sprintf("ICE aice=%s hice=%s", render.Float(c.Aice), render.Float(c.Hice))}
}
