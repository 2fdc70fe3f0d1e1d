package subcomponent

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/swanconfig/render"
	"github.com/c360studio/swanconfig/variant"
)

// Transmission is implemented by the wave transmission clauses of OBSTACLE.
type Transmission interface {
	Render() string
}

var transmissionRegistry = variant.New[Transmission]("transmission")

func init() {
	variant.Register(transmissionRegistry, "transm", func(t Transm) Transmission { return t })
	variant.Register(transmissionRegistry, "trans1d", func(t Trans1D) Transmission { return t })
	variant.Register(transmissionRegistry, "trans2d", func(t Trans2D) Transmission { return t })
	variant.Register(transmissionRegistry, "goda", func(t Goda) Transmission { return t })
	variant.Register(transmissionRegistry, "dangremond", func(t Dangremond) Transmission { return t })
}

// TransmissionUnion holds a resolved transmission clause.
type TransmissionUnion struct {
	Transmission
}

// UnmarshalYAML resolves the transmission by its model_type tag.
func (u *TransmissionUnion) UnmarshalYAML(node *yaml.Node) error {
	t, err := transmissionRegistry.Resolve(node)
	if err != nil {
		return err
	}
	u.Transmission = t
	return nil
}

// Transm is a constant transmission coefficient: TRANSM [trcoef].
type Transm struct {
	Trcoef *float64 `yaml:"trcoef"`
}

// Validate checks the coefficient range.
func (t Transm) Validate() error {
	if t.Trcoef != nil && (*t.Trcoef < 0 || *t.Trcoef > 1) {
		return fmt.Errorf("trcoef must be in the range [0, 1]")
	}
	return nil
}

// Render formats the TRANSM clause.
func (t Transm) Render() string {
	return render.NewLine("TRANSM").FloatOpt("trcoef", t.Trcoef).String()
}

// Trans1D is a frequency-dependent transmission coefficient.
type Trans1D struct {
	Trcoef []float64 `yaml:"trcoef"`
}

// Validate checks every coefficient is a fraction.
func (t Trans1D) Validate() error {
	for _, v := range t.Trcoef {
		if v < 0 || v > 1 {
			return fmt.Errorf("trcoef values must be in the range [0, 1]")
		}
	}
	return nil
}

// Render formats the TRANS1D clause.
func (t Trans1D) Render() string {
	repr := "TRANS1D"
	for _, v := range t.Trcoef {
		repr += " " + render.Float(v)
	}
	return repr
}

// Trans2D is a frequency-direction transmission coefficient table.
type Trans2D struct {
	Trcoef [][]float64 `yaml:"trcoef"`
}

// Validate checks every coefficient is a fraction.
func (t Trans2D) Validate() error {
	for _, row := range t.Trcoef {
		for _, v := range row {
			if v < 0 || v > 1 {
				return fmt.Errorf("trcoef values must be in the range [0, 1]")
			}
		}
	}
	return nil
}

// Render formats one continuation line per direction row.
func (t Trans2D) Render() string {
	repr := "TRANS2D"
	for _, row := range t.Trcoef {
		repr += " &\n\t"
		for i, v := range row {
			if i > 0 {
				repr += " "
			}
			repr += render.Float(v)
		}
	}
	return repr + " &\n\t"
}

// Goda is the Goda/Seelig (1979) dam transmission formula:
// DAM GODA hgt=... [alpha] [beta].
type Goda struct {
	Hgt   float64  `yaml:"hgt"`
	Alpha *float64 `yaml:"alpha"`
	Beta  *float64 `yaml:"beta"`
}

// Render formats the DAM GODA clause.
func (t Goda) Render() string {
	return render.NewLine("DAM GODA").
		Float("hgt", t.Hgt).
		FloatOpt("alpha", t.Alpha).
		FloatOpt("beta", t.Beta).
		String()
}

// Dangremond is the d'Angremond et al. (1996) dam transmission formula:
// DAM DANGREMOND hgt=... slope=... Bk=...
type Dangremond struct {
	Hgt   float64 `yaml:"hgt"`
	Slope float64 `yaml:"slope"`
	Bk    float64 `yaml:"bk"`
}

// Render formats the DAM DANGREMOND clause.
func (t Dangremond) Render() string {
	return fmt.Sprintf("DAM DANGREMOND hgt=%s slope=%s Bk=%s",
		render.Float(t.Hgt), render.Float(t.Slope), render.Float(t.Bk))
}

// Refl is the constant reflection coefficient clause: REFL [reflc].
type Refl struct {
	Reflc *float64 `yaml:"reflc"`
}

// Render formats the REFL clause.
func (r Refl) Render() string {
	return render.NewLine("REFL").FloatOpt("reflc", r.Reflc).String()
}

// ReflType is implemented by the specular/diffuse reflection clauses.
type ReflType interface {
	Render() string
}

var reflTypeRegistry = variant.New[ReflType]("reflection type")

func init() {
	variant.Register(reflTypeRegistry, "rspec", func(r RSpec) ReflType { return r })
	variant.Register(reflTypeRegistry, "rdiff", func(r RDiff) ReflType { return r })
}

// ReflTypeUnion holds a resolved reflection type.
type ReflTypeUnion struct {
	ReflType
}

// UnmarshalYAML resolves the reflection type by its model_type tag.
func (u *ReflTypeUnion) UnmarshalYAML(node *yaml.Node) error {
	r, err := reflTypeRegistry.Resolve(node)
	if err != nil {
		return err
	}
	u.ReflType = r
	return nil
}

// RSpec selects specular reflection.
type RSpec struct{}

// Render formats the RSPEC keyword.
func (r RSpec) Render() string { return "RSPEC" }

// RDiff selects diffuse reflection: RDIFF [pown].
type RDiff struct {
	Pown *float64 `yaml:"pown"`
}

// Render formats the RDIFF clause.
func (r RDiff) Render() string {
	return render.NewLine("RDIFF").FloatOpt("pown", r.Pown).String()
}

// Freeboard accounts for the obstacle crest height relative to the water
// level: FREEBOARD hgt=... [gammat] [gammar] [QUAY].
type Freeboard struct {
	Hgt    float64  `yaml:"hgt"`
	Gammat *float64 `yaml:"gammat"`
	Gammar *float64 `yaml:"gammar"`
	Quay   bool     `yaml:"quay"`
}

// Validate checks the scaling factors.
func (f Freeboard) Validate() error {
	if f.Gammat != nil && *f.Gammat <= 0 {
		return fmt.Errorf("gammat must be positive")
	}
	if f.Gammar != nil && *f.Gammar <= 0 {
		return fmt.Errorf("gammar must be positive")
	}
	return nil
}

// Render formats the FREEBOARD clause.
func (f Freeboard) Render() string {
	l := render.NewLine("FREEBOARD").
		Float("hgt", f.Hgt).
		FloatOpt("gammat", f.Gammat).
		FloatOpt("gammar", f.Gammar)
	if f.Quay {
		l.Add("QUAY")
	}
	return l.String()
}

// Line is the obstacle location: LINE x1 y1 x2 y2 ...
type Line struct {
	Xp []float64 `yaml:"xp"`
	Yp []float64 `yaml:"yp"`
}

// Validate requires at least two corner points with matching coordinates.
func (o Line) Validate() error {
	if len(o.Xp) != len(o.Yp) {
		return fmt.Errorf("xp and yp must be the same size")
	}
	if len(o.Xp) < 2 {
		return fmt.Errorf("at least two points are required")
	}
	return nil
}

// Render formats the LINE clause.
func (o Line) Render() string {
	repr := "LINE"
	for i := range o.Xp {
		repr += " " + render.Float(o.Xp[i]) + " " + render.Float(o.Yp[i])
	}
	return repr
}
