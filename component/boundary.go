package component

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/swanconfig/render"
	"github.com/c360studio/swanconfig/subcomponent"
	"github.com/c360studio/swanconfig/variant"
)

// Boundary is implemented by the boundary condition commands:
// BOUNDSPEC and BOUNDNEST1|2|3.
type Boundary interface {
	render.Renderer
}

var boundaryRegistry = variant.New[Boundary]("boundary")

func init() {
	variant.Register(boundaryRegistry, "boundspec", func(c BoundSpec) Boundary { return &c })
	variant.Register(boundaryRegistry, "boundnest1", func(c BoundNest1) Boundary { return &c })
	variant.Register(boundaryRegistry, "boundnest2", func(c BoundNest2) Boundary { return &c })
	variant.Register(boundaryRegistry, "boundnest3", func(c BoundNest3) Boundary { return &c })
}

// BoundaryUnion holds a resolved boundary condition command.
type BoundaryUnion struct {
	Boundary
}

// UnmarshalYAML resolves the boundary by its model_type tag.
func (u *BoundaryUnion) UnmarshalYAML(node *yaml.Node) error {
	c, err := boundaryRegistry.Resolve(node)
	if err != nil {
		return err
	}
	u.Boundary = c
	return nil
}

// Initial specifies initial conditions: INITIAL DEFAULT|ZERO|HOTSTART.
// Stationary computations accept HOTSTART only; the override of the default
// initialization is most useful for nonstationary runs.
type Initial struct {
	Kind subcomponent.InitialUnion `yaml:"kind"`
}

// Cmd renders the INITIAL command.
func (c Initial) Cmd() []string {
	kind := c.Kind.InitialKind
	if kind == nil {
		kind = subcomponent.Default{}
	}
	return []string{"INITIAL " + kind.Render()}
}

// BoundSpec defines parametric spectra along a side or segment of the
// boundary: BOUNDSPEC SIDE|SEGMENT CONSTANT|VARIABLE PAR|FILE. Only the
// incoming components of the prescribed spectra take part in the computation.
type BoundSpec struct {
	ShapeSpec subcomponent.ShapeSpec     `yaml:"shapespec"`
	Location  subcomponent.LocationUnion `yaml:"location"`
	Data      subcomponent.DataUnion     `yaml:"data"`
}

// Validate requires a location and data prescription.
func (c *BoundSpec) Validate() error {
	if c.Location.Location == nil {
		return fmt.Errorf("location is required")
	}
	if c.Data.Data == nil {
		return fmt.Errorf("data is required")
	}
	return nil
}

// Cmd renders the BOUND SHAPESPEC and BOUNDSPEC commands. A point list
// location already ends in a line break, so the data clause follows it
// directly; a side clause is joined with a space.
func (c *BoundSpec) Cmd() []string {
	loc := c.Location.Render()
	if !strings.HasSuffix(loc, "\n") {
		loc += " "
	}
	return []string{
		c.ShapeSpec.Render(),
		"BOUNDSPEC " + loc + c.Data.Render(),
	}
}

// BoundNest1 reads boundary spectra from a coarser run of this model:
// BOUNDNEST1 NEST 'fname' CLOSED|OPEN. The file is generated by NESTOUT in
// the coarse run; spectra are interpolated onto the nested resolution.
type BoundNest1 struct {
	Fname     string `yaml:"fname"`
	Rectangle string `yaml:"rectangle"`
}

// Validate checks the file name and rectangle keyword.
func (c *BoundNest1) Validate() error {
	if c.Fname == "" || len(c.Fname) > 36 {
		return fmt.Errorf("fname is required and must be at most 36 characters")
	}
	switch c.Rectangle {
	case "", "closed", "open":
		return nil
	}
	return fmt.Errorf("rectangle must be closed or open, got %q", c.Rectangle)
}

// Cmd renders the BOUNDNEST1 command.
func (c *BoundNest1) Cmd() []string {
	rectangle := c.Rectangle
	if rectangle == "" {
		rectangle = "closed"
	}
	return []string{fmt.Sprintf("BOUNDNEST1 NEST fname=%s %s",
		render.Quote(c.Fname), strings.ToUpper(rectangle))}
}

// BoundNest2 reads boundary spectra from a coarse WAM run:
// BOUNDNEST2 WAMNEST 'fname' FREE|UNFORMATTED CRAY|WKSTAT [xgc] [ygc] [lwdate].
type BoundNest2 struct {
	Fname  string   `yaml:"fname"`
	Format string   `yaml:"format"`
	Xgc    *float64 `yaml:"xgc"`
	Ygc    *float64 `yaml:"ygc"`
	Lwdate *int     `yaml:"lwdate"`
}

// Validate checks the file name, format and date-string length.
func (c *BoundNest2) Validate() error {
	if c.Fname == "" || len(c.Fname) > 36 {
		return fmt.Errorf("fname is required and must be at most 36 characters")
	}
	switch c.Format {
	case "cray", "wkstat", "free":
	default:
		return fmt.Errorf("format must be cray, wkstat or free, got %q", c.Format)
	}
	if c.Lwdate != nil {
		switch *c.Lwdate {
		case 10, 12, 14:
		default:
			return fmt.Errorf("lwdate must be 10, 12 or 14, got %d", *c.Lwdate)
		}
	}
	return nil
}

func (c *BoundNest2) formatClause() string {
	switch c.Format {
	case "cray":
		return "UNFORMATTED CRAY"
	case "wkstat":
		return "UNFORMATTED WKSTAT"
	default:
		return "FREE"
	}
}

// Cmd renders the BOUNDNEST2 command.
func (c *BoundNest2) Cmd() []string {
	repr := fmt.Sprintf("BOUNDNEST2 WAMNEST fname=%s %s", render.Quote(c.Fname), c.formatClause())
	if c.Xgc != nil {
		repr += fmt.Sprintf(" xgc=%s", render.Float(*c.Xgc))
	}
	if c.Ygc != nil {
		repr += fmt.Sprintf(" ygc=%s", render.Float(*c.Ygc))
	}
	lwdate := 12
	if c.Lwdate != nil {
		lwdate = *c.Lwdate
	}
	return []string{fmt.Sprintf("%s lwdate=%d", repr, lwdate)}
}

// BoundNest3 reads boundary spectra from a coarse WAVEWATCH III run:
// BOUNDNEST3 WW3 'fname' FREE|UNFORMATTED CLOSED|OPEN [xgc] [ygc].
type BoundNest3 struct {
	Fname     string   `yaml:"fname"`
	Format    string   `yaml:"format"`
	Rectangle string   `yaml:"rectangle"`
	Xgc       *float64 `yaml:"xgc"`
	Ygc       *float64 `yaml:"ygc"`
}

// Validate checks the file name, format and rectangle keyword.
func (c *BoundNest3) Validate() error {
	if c.Fname == "" || len(c.Fname) > 36 {
		return fmt.Errorf("fname is required and must be at most 36 characters")
	}
	switch c.Format {
	case "unformatted", "free":
	default:
		return fmt.Errorf("format must be unformatted or free, got %q", c.Format)
	}
	switch c.Rectangle {
	case "", "closed", "open":
		return nil
	}
	return fmt.Errorf("rectangle must be closed or open, got %q", c.Rectangle)
}

// Cmd renders the BOUNDNEST3 command.
func (c *BoundNest3) Cmd() []string {
	rectangle := c.Rectangle
	if rectangle == "" {
		rectangle = "closed"
	}
	repr := fmt.Sprintf("BOUNDNEST3 WW3 fname=%s %s %s",
		render.Quote(c.Fname), strings.ToUpper(c.Format), strings.ToUpper(rectangle))
	if c.Xgc != nil {
		repr += fmt.Sprintf(" xgc=%s", render.Float(*c.Xgc))
	}
	if c.Ygc != nil {
		repr += fmt.Sprintf(" ygc=%s", render.Float(*c.Ygc))
	}
	return []string{repr}
}
