package subcomponent

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/swanconfig/render"
	"github.com/c360studio/swanconfig/variant"
)

// SourceTerms is implemented by the wind input and whitecapping source term
// packages of GEN3.
type SourceTerms interface {
	Render() string
}

var sourceTermsRegistry = variant.New[SourceTerms]("source terms")

func init() {
	variant.Register(sourceTermsRegistry, "janssen", func(s Janssen) SourceTerms { return s })
	variant.Register(sourceTermsRegistry, "komen", func(s Komen) SourceTerms { return s })
	variant.Register(sourceTermsRegistry, "westhuysen", func(s Westhuysen) SourceTerms { return s })
	variant.Register(sourceTermsRegistry, "st6", func(s ST6) SourceTerms { return s })
	variant.Register(sourceTermsRegistry, "st6c1", func(s st6Preset) SourceTerms { return s.preset(1) })
	variant.Register(sourceTermsRegistry, "st6c2", func(s st6Preset) SourceTerms { return s.preset(2) })
	variant.Register(sourceTermsRegistry, "st6c3", func(s st6Preset) SourceTerms { return s.preset(3) })
	variant.Register(sourceTermsRegistry, "st6c4", func(s st6Preset) SourceTerms { return s.preset(4) })
	variant.Register(sourceTermsRegistry, "st6c5", func(s st6Preset) SourceTerms { return s.preset(5) })
	sourceTermsRegistry.SetDefault("westhuysen")
}

// SourceTermsUnion holds a resolved source term package.
type SourceTermsUnion struct {
	SourceTerms
}

// UnmarshalYAML resolves the package by its model_type tag.
func (u *SourceTermsUnion) UnmarshalYAML(node *yaml.Node) error {
	s, err := sourceTermsRegistry.Resolve(node)
	if err != nil {
		return err
	}
	u.SourceTerms = s
	return nil
}

// windGrowth carries the wind drag and wave growth options shared by the
// JANSSEN, KOMEN and WESTHUYSEN packages.
type windGrowth struct {
	WindDrag string   `yaml:"wind_drag"`
	Agrow    bool     `yaml:"agrow"`
	A        *float64 `yaml:"a"`
}

func (w windGrowth) validate() error {
	switch w.WindDrag {
	case "", "wu", "fit":
		return nil
	}
	return fmt.Errorf("wind_drag must be wu or fit, got %q", w.WindDrag)
}

func (w windGrowth) tail(l *render.Line) string {
	drag := w.WindDrag
	if drag == "" {
		drag = "wu"
	}
	l.Add("DRAG " + strings.ToUpper(drag))
	if w.Agrow {
		l.Add("AGROW")
		l.FloatOpt("a", w.A)
	}
	return l.String()
}

// Janssen is the Janssen (1989, 1991) wind input and whitecapping package.
type Janssen struct {
	Cds1       *float64 `yaml:"cds1"`
	Delta      *float64 `yaml:"delta"`
	windGrowth `yaml:",inline"`
}

// Validate checks the wind growth options.
func (s Janssen) Validate() error { return s.validate() }

// Render formats the JANSSEN clause.
func (s Janssen) Render() string {
	l := render.NewLine("JANSSEN").
		FloatOpt("cds1", s.Cds1).
		FloatOpt("delta", s.Delta)
	return s.tail(l)
}

// Komen is the Komen et al. (1984) wind input and whitecapping package.
type Komen struct {
	Cds2       *float64 `yaml:"cds2"`
	Stpm       *float64 `yaml:"stpm"`
	windGrowth `yaml:",inline"`
}

// Validate checks the wind growth options.
func (s Komen) Validate() error { return s.validate() }

// Render formats the KOMEN clause.
func (s Komen) Render() string {
	l := render.NewLine("KOMEN").
		FloatOpt("cds2", s.Cds2).
		FloatOpt("stpm", s.Stpm)
	return s.tail(l)
}

// Westhuysen is the van der Westhuysen et al. (2007) nonlinear saturation
// based whitecapping package.
type Westhuysen struct {
	Cds2       *float64 `yaml:"cds2"`
	Br         *float64 `yaml:"br"`
	windGrowth `yaml:",inline"`
}

// Validate checks the wind growth options.
func (s Westhuysen) Validate() error { return s.validate() }

// Render formats the WESTHUYSEN clause.
func (s Westhuysen) Render() string {
	l := render.NewLine("WESTHUYSEN").
		FloatOpt("cds2", s.Cds2).
		FloatOpt("br", s.Br)
	return s.tail(l)
}

// ST6 is the Rogers et al. (2012) observation-based package.
type ST6 struct {
	A1sds         float64  `yaml:"a1sds"`
	A2sds         float64  `yaml:"a2sds"`
	P1sds         *float64 `yaml:"p1sds"`
	P2sds         *float64 `yaml:"p2sds"`
	Normalization string   `yaml:"normalization"`
	WindDrag      string   `yaml:"wind_drag"`
	Tau           string   `yaml:"tau"`
	U10           string   `yaml:"u10"`
	Windscaling   *float64 `yaml:"windscaling"`
	Cdfac         *float64 `yaml:"cdfac"`
	Agrow         bool     `yaml:"agrow"`
	A             *float64 `yaml:"a"`
}

// Validate checks the required calibration coefficients and keywords.
func (s ST6) Validate() error {
	if s.A1sds == 0 || s.A2sds == 0 {
		return fmt.Errorf("a1sds and a2sds are required")
	}
	switch s.Normalization {
	case "", "up", "down":
	default:
		return fmt.Errorf("normalization must be up or down, got %q", s.Normalization)
	}
	switch s.WindDrag {
	case "", "hwang", "fan", "ecmwf":
	default:
		return fmt.Errorf("wind_drag must be hwang, fan or ecmwf, got %q", s.WindDrag)
	}
	switch s.Tau {
	case "", "vectau", "scatau":
	default:
		return fmt.Errorf("tau must be vectau or scatau, got %q", s.Tau)
	}
	switch s.U10 {
	case "", "u10proxy", "true10":
	default:
		return fmt.Errorf("u10 must be u10proxy or true10, got %q", s.U10)
	}
	return nil
}

// Render formats the ST6 clause.
func (s ST6) Render() string {
	l := render.NewLine("ST6").
		Float("a1sds", s.A1sds).
		Float("a2sds", s.A2sds).
		FloatOpt("p1sds", s.P1sds).
		FloatOpt("p2sds", s.P2sds)
	l.Keyword(orDefault(s.Normalization, "up"))
	l.Keyword(orDefault(s.WindDrag, "hwang"))
	l.Keyword(orDefault(s.Tau, "vectau"))
	if orDefault(s.U10, "u10proxy") == "true10" {
		l.Add("TRUE10")
	} else {
		windscaling := 32.0
		if s.Windscaling != nil {
			windscaling = *s.Windscaling
		}
		l.Add("U10PROXY windscaling=" + render.Float(windscaling))
	}
	if s.Cdfac != nil {
		l.Add("DEBIAS cdfac=" + render.Float(*s.Cdfac))
	}
	if s.Agrow {
		l.Add("AGROW")
		l.FloatOpt("a", s.A)
	}
	return l.String()
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// st6Preset decodes the published ST6 calibrations (st6c1..st6c5). Fields
// given in the config override the preset values.
type st6Preset struct {
	ST6 `yaml:",inline"`
}

func (s st6Preset) preset(n int) ST6 {
	out := s.ST6
	// Calibration 1 values are the baseline the others adjust.
	setIfZero(&out.A1sds, 4.7e-7)
	setIfZero(&out.A2sds, 6.6e-6)
	if out.P1sds == nil {
		out.P1sds = render.Ptr(4.0)
	}
	if out.P2sds == nil {
		out.P2sds = render.Ptr(4.0)
	}
	if out.Windscaling == nil {
		out.Windscaling = render.Ptr(28.0)
	}
	out.Agrow = true
	switch n {
	case 2:
		out.WindDrag = orDefault(out.WindDrag, "fan")
	case 3:
		out.A1sds = 2.8e-6
		out.A2sds = 3.5e-5
		out.Windscaling = render.Ptr(32.0)
	case 4:
		if out.Cdfac == nil {
			out.Cdfac = render.Ptr(0.89)
		}
	case 5:
		if out.Cdfac == nil {
			out.Cdfac = render.Ptr(0.89)
		}
		out.A1sds = 6.5e-6
		out.A2sds = 8.5e-5
		out.Windscaling = render.Ptr(35.0)
	}
	return out
}

func setIfZero(v *float64, fallback float64) {
	if *v == 0 {
		*v = fallback
	}
}

// Biphase is implemented by the biphase parameterisations of the TRIAD
// commands.
type Biphase interface {
	Render() string
}

var biphaseRegistry = variant.New[Biphase]("biphase")

func init() {
	variant.Register(biphaseRegistry, "eldeberky", func(b Eldeberky) Biphase { return b })
	variant.Register(biphaseRegistry, "dewit", func(b DeWit) Biphase { return b })
}

// BiphaseUnion holds a resolved biphase parameterisation.
type BiphaseUnion struct {
	Biphase
}

// UnmarshalYAML resolves the biphase by its model_type tag.
func (u *BiphaseUnion) UnmarshalYAML(node *yaml.Node) error {
	b, err := biphaseRegistry.Resolve(node)
	if err != nil {
		return err
	}
	u.Biphase = b
	return nil
}

// Eldeberky is the Ursell-number based biphase of Eldeberky (1999).
type Eldeberky struct {
	Urcrit *float64 `yaml:"urcrit"`
}

// Render formats the BIPHASE ELDEBERKY clause.
func (b Eldeberky) Render() string {
	return render.NewLine("BIPHASE ELDEBERKY").FloatOpt("urcrit", b.Urcrit).String()
}

// DeWit is the local bed slope based biphase of De Wit (2022).
type DeWit struct {
	Lpar *float64 `yaml:"lpar"`
}

// Render formats the BIPHASE DEWIT clause.
func (b DeWit) Render() string {
	return render.NewLine("BIPHASE DEWIT").FloatOpt("lpar", b.Lpar).String()
}
