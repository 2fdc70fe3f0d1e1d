package subcomponent

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/swanconfig/render"
	"github.com/c360studio/swanconfig/variant"
)

// Spectrum renders the spectral grid clause of CGRID:
// CIRCLE|SECTOR ([dir1] [dir2]) [mdc] [flow] [fhigh] [msc].
type Spectrum struct {
	Mdc   int      `yaml:"mdc"`
	Flow  *float64 `yaml:"flow"`
	Fhigh *float64 `yaml:"fhigh"`
	Msc   *int     `yaml:"msc"`
	Dir1  *float64 `yaml:"dir1"`
	Dir2  *float64 `yaml:"dir2"`
}

// Validate enforces the directional and frequency rules: SECTOR needs both
// dir1 and dir2, at least two of flow/fhigh/msc must be given, and flow must
// be below fhigh.
func (s Spectrum) Validate() error {
	if (s.Dir1 == nil) != (s.Dir2 == nil) {
		return fmt.Errorf("dir1 and dir2 must be specified together")
	}
	given := 0
	for _, set := range []bool{s.Flow != nil, s.Fhigh != nil, s.Msc != nil} {
		if set {
			given++
		}
	}
	if given < 2 {
		return fmt.Errorf("at least 2 of flow, fhigh and msc must be specified")
	}
	if s.Flow != nil && s.Fhigh != nil && *s.Flow >= *s.Fhigh {
		return fmt.Errorf("flow must be less than fhigh")
	}
	if s.Msc != nil && *s.Msc < 3 {
		return fmt.Errorf("msc must be at least 3, got %d", *s.Msc)
	}
	return nil
}

// Render formats the spectral grid clause.
func (s Spectrum) Render() string {
	var l *render.Line
	if s.Dir1 != nil && s.Dir2 != nil {
		l = render.NewLine("SECTOR").
			Add(render.Float(*s.Dir1)).
			Add(render.Float(*s.Dir2))
	} else {
		l = render.NewLine("CIRCLE")
	}
	l.Int("mdc", s.Mdc).
		FloatOpt("flow", s.Flow).
		FloatOpt("fhigh", s.Fhigh).
		IntOpt("msc", s.Msc)
	return l.String()
}

// Shape is implemented by the parametric spectral shapes usable in
// BOUND SHAPESPEC.
type Shape interface {
	Render() string
}

// shapeRegistry resolves the spectral shape union. JONSWAP is assumed when
// no model_type is given, matching the SWAN default.
var shapeRegistry = variant.New[Shape]("shape")

func init() {
	variant.Register(shapeRegistry, "jonswap", func(s Jonswap) Shape { return s })
	variant.Register(shapeRegistry, "tma", func(s TMA) Shape { return s })
	variant.Register(shapeRegistry, "gauss", func(s Gauss) Shape { return s })
	variant.Register(shapeRegistry, "pm", func(s PM) Shape { return s })
	variant.Register(shapeRegistry, "bin", func(s Bin) Shape { return s })
	shapeRegistry.SetDefault("jonswap")
}

// ShapeUnion holds a resolved spectral shape.
type ShapeUnion struct {
	Shape
}

// UnmarshalYAML resolves the shape by its model_type tag.
func (u *ShapeUnion) UnmarshalYAML(node *yaml.Node) error {
	shape, err := shapeRegistry.Resolve(node)
	if err != nil {
		return err
	}
	u.Shape = shape
	return nil
}

// Jonswap is the JONSWAP spectral shape.
type Jonswap struct {
	Gamma float64 `yaml:"gamma"`
}

// Validate checks the peak enhancement factor.
func (s Jonswap) Validate() error {
	if s.Gamma < 0 {
		return fmt.Errorf("gamma must be positive")
	}
	return nil
}

// Render formats the JONSWAP clause.
func (s Jonswap) Render() string {
	gamma := s.Gamma
	if gamma == 0 {
		gamma = 3.3
	}
	return "JONSWAP gamma=" + render.Float(gamma)
}

// TMA is the depth-limited JONSWAP shape.
type TMA struct {
	Gamma float64 `yaml:"gamma"`
	D     float64 `yaml:"d"`
}

// Validate checks the peak enhancement factor and the reference depth.
func (s TMA) Validate() error {
	if s.D <= 0 {
		return fmt.Errorf("d must be positive")
	}
	return Jonswap{Gamma: s.Gamma}.Validate()
}

// Render formats the TMA clause.
func (s TMA) Render() string {
	gamma := s.Gamma
	if gamma == 0 {
		gamma = 3.3
	}
	return fmt.Sprintf("TMA gamma=%s d=%s", render.Float(gamma), render.Float(s.D))
}

// Gauss is the Gaussian-shaped frequency spectrum.
type Gauss struct {
	Sigfr float64 `yaml:"sigfr"`
}

// Validate checks the spectral width.
func (s Gauss) Validate() error {
	if s.Sigfr <= 0 {
		return fmt.Errorf("sigfr must be positive")
	}
	return nil
}

// Render formats the GAUSS clause.
func (s Gauss) Render() string {
	return "GAUSS sigfr=" + render.Float(s.Sigfr)
}

// PM is the Pierson-Moskowitz shape.
type PM struct{}

// Render formats the PM keyword.
func (s PM) Render() string { return "PM" }

// Bin is a single frequency bin.
type Bin struct{}

// Render formats the BIN keyword.
func (s Bin) Render() string { return "BIN" }

// ShapeSpec renders "BOUND SHAPESPEC <shape> PEAK|MEAN DSPR POWER|DEGREES".
type ShapeSpec struct {
	Shape    ShapeUnion `yaml:"shape"`
	PerType  string     `yaml:"per_type"`
	DsprType string     `yaml:"dspr_type"`
}

// Validate checks the period and spreading conventions.
func (s ShapeSpec) Validate() error {
	switch s.PerType {
	case "", "peak", "mean":
	default:
		return fmt.Errorf("per_type must be peak or mean, got %q", s.PerType)
	}
	switch s.DsprType {
	case "", "power", "degrees":
	default:
		return fmt.Errorf("dspr_type must be power or degrees, got %q", s.DsprType)
	}
	return nil
}

// Render formats the SHAPESPEC clause.
func (s ShapeSpec) Render() string {
	shape := s.Shape.Shape
	if shape == nil {
		shape = Jonswap{}
	}
	perType := s.PerType
	if perType == "" {
		perType = "peak"
	}
	dsprType := s.DsprType
	if dsprType == "" {
		dsprType = "power"
	}
	return fmt.Sprintf("BOUND SHAPESPEC %s %s DSPR %s",
		shape.Render(), strings.ToUpper(perType), strings.ToUpper(dsprType))
}
