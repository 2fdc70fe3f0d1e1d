// Package component implements the full SWAN commands of the model
// definition: startup settings, computational and input grids, boundary and
// initial conditions, physics processes, numerics, output requests and the
// compute lockup. Each command validates its own fields at the
// deserialization boundary and renders through the render package.
package component

import (
	"fmt"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/swanconfig/render"
	"github.com/c360studio/swanconfig/variant"
)

// Project identifies the run in the print and plot files:
// PROJECT 'name' 'nr' 'title1' 'title2' 'title3'.
type Project struct {
	Name   *string `yaml:"name"`
	Nr     string  `yaml:"nr"`
	Title1 *string `yaml:"title1"`
	Title2 *string `yaml:"title2"`
	Title3 *string `yaml:"title3"`
}

// Validate enforces the field length limits of the print file layout.
func (c Project) Validate() error {
	if c.Nr == "" || len(c.Nr) > 4 {
		return fmt.Errorf("nr is required and must be at most 4 characters")
	}
	if c.Name != nil && len(*c.Name) > 16 {
		return fmt.Errorf("name must be at most 16 characters")
	}
	for field, title := range map[string]*string{
		"title1": c.Title1, "title2": c.Title2, "title3": c.Title3,
	} {
		if title != nil && len(*title) > 72 {
			return fmt.Errorf("%s must be at most 72 characters", field)
		}
	}
	return nil
}

// Cmd renders the PROJECT command.
func (c Project) Cmd() []string {
	l := render.NewLine("PROJECT").
		StrOpt("name", c.Name).
		Str("nr", c.Nr).
		StrOpt("title1", c.Title1).
		StrOpt("title2", c.Title2).
		StrOpt("title3", c.Title3)
	return []string{l.String()}
}

// Set assigns values to general model parameters:
// SET [level] [nor] [depmin] [maxmes] [maxerr] [grav] [rho] [cdcap]
// [inrhog] [hsrerr] NAUTICAL|CARTESIAN [pwtail] [froudmax] [icewind].
type Set struct {
	Level               *float64 `yaml:"level"`
	Nor                 *float64 `yaml:"nor"`
	Depmin              *float64 `yaml:"depmin"`
	Maxmes              *int     `yaml:"maxmes"`
	Maxerr              *int     `yaml:"maxerr"`
	Grav                *float64 `yaml:"grav"`
	Rho                 *float64 `yaml:"rho"`
	Cdcap               *float64 `yaml:"cdcap"`
	Inrhog              *int     `yaml:"inrhog"`
	Hsrerr              *float64 `yaml:"hsrerr"`
	DirectionConvention string   `yaml:"direction_convention"`
	Pwtail              *float64 `yaml:"pwtail"`
	Froudmax            *float64 `yaml:"froudmax"`
	Icewind             *float64 `yaml:"icewind"`
}

// Validate checks the parameter ranges. Setting pwtail here is advisory
// only: it takes effect only when given after the GEN command, so a warning
// is logged rather than an error returned.
func (c Set) Validate() error {
	if c.Nor != nil && (*c.Nor < -360 || *c.Nor > 360) {
		return fmt.Errorf("nor must be in the range [-360, 360]")
	}
	if c.Depmin != nil && *c.Depmin < 0 {
		return fmt.Errorf("depmin must not be negative")
	}
	if c.Maxerr != nil && (*c.Maxerr < 1 || *c.Maxerr > 3) {
		return fmt.Errorf("maxerr must be 1, 2 or 3")
	}
	if c.Inrhog != nil && (*c.Inrhog != 0 && *c.Inrhog != 1) {
		return fmt.Errorf("inrhog must be 0 or 1")
	}
	switch c.DirectionConvention {
	case "", "nautical", "cartesian":
	default:
		return fmt.Errorf("direction_convention must be nautical or cartesian, got %q",
			c.DirectionConvention)
	}
	if c.Pwtail != nil {
		slog.Warn("pwtail only has effect if set after the GEN command",
			slog.Float64("pwtail", *c.Pwtail))
	}
	return nil
}

// Cmd renders the SET command.
func (c Set) Cmd() []string {
	l := render.NewLine("SET").
		FloatOpt("level", c.Level).
		FloatOpt("nor", c.Nor).
		FloatOpt("depmin", c.Depmin).
		IntOpt("maxmes", c.Maxmes).
		IntOpt("maxerr", c.Maxerr).
		FloatOpt("grav", c.Grav).
		FloatOpt("rho", c.Rho).
		FloatOpt("cdcap", c.Cdcap).
		IntOpt("inrhog", c.Inrhog).
		FloatOpt("hsrerr", c.Hsrerr)
	if c.DirectionConvention != "" {
		l.Keyword(c.DirectionConvention)
	}
	l.FloatOpt("pwtail", c.Pwtail).
		FloatOpt("froudmax", c.Froudmax).
		FloatOpt("icewind", c.Icewind)
	return []string{l.String()}
}

// Mode selects the computation mode: MODE STATIONARY|NONSTATIONARY
// ONEDIMENSIONAL|TWODIMENSIONAL.
type Mode struct {
	Kind string `yaml:"kind"`
	Dim  string `yaml:"dim"`
}

// Validate checks the mode keywords.
func (c Mode) Validate() error {
	switch c.Kind {
	case "", "stationary", "nonstationary":
	default:
		return fmt.Errorf("kind must be stationary or nonstationary, got %q", c.Kind)
	}
	switch c.Dim {
	case "", "onedimensional", "twodimensional":
	default:
		return fmt.Errorf("dim must be onedimensional or twodimensional, got %q", c.Dim)
	}
	return nil
}

// Cmd renders the MODE command. Stationary two-dimensional is the default.
func (c Mode) Cmd() []string {
	kind := c.Kind
	if kind == "" {
		kind = "stationary"
	}
	dim := c.Dim
	if dim == "" {
		dim = "twodimensional"
	}
	return []string{fmt.Sprintf("MODE %s %s", strings.ToUpper(kind), strings.ToUpper(dim))}
}

// CoordKind is implemented by the coordinate system clauses of COORDINATES.
type CoordKind interface {
	Render() string
}

var coordKindRegistry = variant.New[CoordKind]("coordinates kind")

func init() {
	variant.Register(coordKindRegistry, "cartesian", func(k Cartesian) CoordKind { return k })
	variant.Register(coordKindRegistry, "spherical", func(k Spherical) CoordKind { return k })
	coordKindRegistry.SetDefault("cartesian")
}

// CoordKindUnion holds a resolved coordinate system clause.
type CoordKindUnion struct {
	CoordKind
}

// UnmarshalYAML resolves the kind by its model_type tag.
func (u *CoordKindUnion) UnmarshalYAML(node *yaml.Node) error {
	k, err := coordKindRegistry.Resolve(node)
	if err != nil {
		return err
	}
	u.CoordKind = k
	return nil
}

// Cartesian selects user-defined Cartesian coordinates in metres.
type Cartesian struct{}

// Render formats the CARTESIAN keyword.
func (k Cartesian) Render() string { return "CARTESIAN" }

// Spherical selects longitude/latitude coordinates: SPHERICAL CCM|QC.
type Spherical struct {
	Projection string `yaml:"projection"`
}

// Validate checks the projection method.
func (k Spherical) Validate() error {
	switch k.Projection {
	case "", "ccm", "qc":
		return nil
	}
	return fmt.Errorf("projection must be ccm or qc, got %q", k.Projection)
}

// Render formats the SPHERICAL clause.
func (k Spherical) Render() string {
	projection := k.Projection
	if projection == "" {
		projection = "ccm"
	}
	return "SPHERICAL " + strings.ToUpper(projection)
}

// Coordinates chooses the coordinate system:
// COORDINATES CARTESIAN|SPHERICAL [REPEATING].
type Coordinates struct {
	Kind      CoordKindUnion `yaml:"kind"`
	Repeating bool           `yaml:"repeating"`
}

// Cmd renders the COORDINATES command.
func (c Coordinates) Cmd() []string {
	kind := c.Kind.CoordKind
	if kind == nil {
		kind = Cartesian{}
	}
	repr := "COORDINATES " + kind.Render()
	if c.Repeating {
		repr += " REPEATING"
	}
	return []string{repr}
}
