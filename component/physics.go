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

// Gen is implemented by the wave generation commands GEN1, GEN2 and GEN3.
type Gen interface {
	render.Renderer
	// SourceTerms returns the third-generation source terms, or nil for the
	// first and second generation formulations.
	SourceTerms() subcomponent.SourceTerms
}

var genRegistry = variant.New[Gen]("gen")

func init() {
	genRegistry.SetDefault("gen3")
	variant.Register(genRegistry, "gen1", func(c Gen1) Gen { return &c })
	variant.Register(genRegistry, "gen2", func(c Gen2) Gen { return &c })
	variant.Register(genRegistry, "gen3", func(c Gen3) Gen { return &c })
}

// GenUnion holds a resolved wave generation command.
type GenUnion struct {
	Gen
}

// UnmarshalYAML resolves the generation command by its model_type tag.
func (u *GenUnion) UnmarshalYAML(node *yaml.Node) error {
	c, err := genRegistry.Resolve(node)
	if err != nil {
		return err
	}
	u.Gen = c
	return nil
}

// Gen1 activates first-generation wave growth and dissipation:
// GEN1 [cf10] [cf20] [cf30] [cf40] [edmlpm] [cdrag] [umin] [cfpm].
type Gen1 struct {
	Cf10   *float64 `yaml:"cf10"`
	Cf20   *float64 `yaml:"cf20"`
	Cf30   *float64 `yaml:"cf30"`
	Cf40   *float64 `yaml:"cf40"`
	Edmlpm *float64 `yaml:"edmlpm"`
	Cdrag  *float64 `yaml:"cdrag"`
	Umin   *float64 `yaml:"umin"`
	Cfpm   *float64 `yaml:"cfpm"`
}

func (c *Gen1) SourceTerms() subcomponent.SourceTerms { return nil }

// Cmd renders the GEN1 command.
func (c *Gen1) Cmd() []string {
	l := render.NewLine("GEN1").
		FloatOpt("cf10", c.Cf10).
		FloatOpt("cf20", c.Cf20).
		FloatOpt("cf30", c.Cf30).
		FloatOpt("cf40", c.Cf40).
		FloatOpt("edmlpm", c.Edmlpm).
		FloatOpt("cdrag", c.Cdrag).
		FloatOpt("umin", c.Umin).
		FloatOpt("cfpm", c.Cfpm)
	return []string{l.String()}
}

// Gen2 activates second-generation wave growth and dissipation, extending
// the first-generation coefficients with cf50 and cf60.
type Gen2 struct {
	Gen1 `yaml:",inline"`
	Cf50 *float64 `yaml:"cf50"`
	Cf60 *float64 `yaml:"cf60"`
}

func (c *Gen2) SourceTerms() subcomponent.SourceTerms { return nil }

// Cmd renders the GEN2 command.
func (c *Gen2) Cmd() []string {
	l := render.NewLine("GEN2").
		FloatOpt("cf10", c.Cf10).
		FloatOpt("cf20", c.Cf20).
		FloatOpt("cf30", c.Cf30).
		FloatOpt("cf40", c.Cf40).
		FloatOpt("cf50", c.Cf50).
		FloatOpt("cf60", c.Cf60).
		FloatOpt("edmlpm", c.Edmlpm).
		FloatOpt("cdrag", c.Cdrag).
		FloatOpt("umin", c.Umin).
		FloatOpt("cfpm", c.Cfpm)
	return []string{l.String()}
}

// Gen3 activates third-generation wave growth and dissipation:
// GEN3 JANSSEN|KOMEN|WESTHUYSEN|ST6 (...) AGROW [a].
type Gen3 struct {
	Terms subcomponent.SourceTermsUnion `yaml:"source_terms"`
}

func (c *Gen3) SourceTerms() subcomponent.SourceTerms { return c.Terms.SourceTerms }

// Cmd renders the GEN3 command. Westhuysen source terms are the default.
func (c *Gen3) Cmd() []string {
	terms := c.Terms.SourceTerms
	if terms == nil {
		terms = subcomponent.Westhuysen{}
	}
	return []string{"GEN3 " + terms.Render()}
}

// NegatInp activates negative wind input for swell dissipation:
// NEGATINP [rdcoef]. Intended for use with the ZIEGER swell dissipation.
type NegatInp struct {
	Rdcoef *float64 `yaml:"rdcoef"`
}

// Validate checks the counter-wind coefficient range.
func (c NegatInp) Validate() error {
	if c.Rdcoef != nil && (*c.Rdcoef < 0 || *c.Rdcoef > 1) {
		return fmt.Errorf("rdcoef must be in the range [0, 1]")
	}
	return nil
}

// Cmd renders the NEGATINP command.
func (c NegatInp) Cmd() []string {
	return []string{render.NewLine("NEGATINP").FloatOpt("rdcoef", c.Rdcoef).String()}
}

// Sswell is implemented by the swell dissipation commands SSWELL
// ROGERS|ARDHUIN|ZIEGER.
type Sswell interface {
	render.Renderer
}

var sswellRegistry = variant.New[Sswell]("sswell")

func init() {
	variant.Register(sswellRegistry, "rogers", func(c SswellRogers) Sswell { return &c })
	variant.Register(sswellRegistry, "ardhuin", func(c SswellArdhuin) Sswell { return &c })
	variant.Register(sswellRegistry, "zieger", func(c SswellZieger) Sswell { return &c })
}

// SswellUnion holds a resolved swell dissipation command.
type SswellUnion struct {
	Sswell
}

// UnmarshalYAML resolves the swell dissipation by its model_type tag.
func (u *SswellUnion) UnmarshalYAML(node *yaml.Node) error {
	c, err := sswellRegistry.Resolve(node)
	if err != nil {
		return err
	}
	u.Sswell = c
	return nil
}

// SswellRogers renders SSWELL ROGERS [cdsv] [feswell].
type SswellRogers struct {
	Cdsv    *float64 `yaml:"cdsv"`
	Feswell *float64 `yaml:"feswell"`
}

// Cmd renders the SSWELL ROGERS command.
func (c *SswellRogers) Cmd() []string {
	l := render.NewLine("SSWELL ROGERS").
		FloatOpt("cdsv", c.Cdsv).
		FloatOpt("feswell", c.Feswell)
	return []string{l.String()}
}

// SswellArdhuin renders SSWELL ARDHUIN [cdsv].
type SswellArdhuin struct {
	Cdsv *float64 `yaml:"cdsv"`
}

// Cmd renders the SSWELL ARDHUIN command.
func (c *SswellArdhuin) Cmd() []string {
	return []string{render.NewLine("SSWELL ARDHUIN").FloatOpt("cdsv", c.Cdsv).String()}
}

// SswellZieger renders SSWELL ZIEGER [b1]. Nonbreaking dissipation after
// Young et al. (2013) updated by Zieger et al. (2015).
type SswellZieger struct {
	B1 *float64 `yaml:"b1"`
}

// Cmd renders the SSWELL ZIEGER command.
func (c *SswellZieger) Cmd() []string {
	return []string{render.NewLine("SSWELL ZIEGER").FloatOpt("b1", c.B1).String()}
}

// Wcapping is implemented by the whitecapping commands WCAPPING KOMEN|AB.
type Wcapping interface {
	render.Renderer
}

var wcappingRegistry = variant.New[Wcapping]("wcapping")

func init() {
	variant.Register(wcappingRegistry, "komen", func(c WcappingKomen) Wcapping { return &c })
	variant.Register(wcappingRegistry, "ab", func(c WcappingAB) Wcapping { return &c })
}

// WcappingUnion holds a resolved whitecapping command.
type WcappingUnion struct {
	Wcapping
}

// UnmarshalYAML resolves the whitecapping by its model_type tag.
func (u *WcappingUnion) UnmarshalYAML(node *yaml.Node) error {
	c, err := wcappingRegistry.Resolve(node)
	if err != nil {
		return err
	}
	u.Wcapping = c
	return nil
}

// WcappingKomen renders WCAPPING KOMEN [cds2] [stpm] [powst] [delta] [powk].
type WcappingKomen struct {
	Cds2  *float64 `yaml:"cds2"`
	Stpm  *float64 `yaml:"stpm"`
	Powst *float64 `yaml:"powst"`
	Delta *float64 `yaml:"delta"`
	Powk  *float64 `yaml:"powk"`
}

// Cmd renders the WCAPPING KOMEN command.
func (c *WcappingKomen) Cmd() []string {
	l := render.NewLine("WCAPPING KOMEN").
		FloatOpt("cds2", c.Cds2).
		FloatOpt("stpm", c.Stpm).
		FloatOpt("powst", c.Powst).
		FloatOpt("delta", c.Delta).
		FloatOpt("powk", c.Powk)
	return []string{l.String()}
}

// WcappingAB renders WCAPPING AB [cds2] [br] CURRENT [cds3]: whitecapping
// after Alves and Banner (2003).
type WcappingAB struct {
	Cds2    *float64 `yaml:"cds2"`
	Br      *float64 `yaml:"br"`
	Current bool     `yaml:"current"`
	Cds3    *float64 `yaml:"cds3"`
}

// Cmd renders the WCAPPING AB command.
func (c *WcappingAB) Cmd() []string {
	l := render.NewLine("WCAPPING AB").
		FloatOpt("cds2", c.Cds2).
		FloatOpt("br", c.Br)
	if c.Current {
		l.Keyword("current")
	}
	l.FloatOpt("cds3", c.Cds3)
	return []string{l.String()}
}

// Quadrupl activates quadruplet wave interactions:
// QUADRUPL [iquad] [lambda] [cnl4] [csh1] [csh2] [csh3].
type Quadrupl struct {
	Iquad *int     `yaml:"iquad"`
	Lambd *float64 `yaml:"lambd"`
	Cnl4  *float64 `yaml:"cnl4"`
	Csh1  *float64 `yaml:"csh1"`
	Csh2  *float64 `yaml:"csh2"`
	Csh3  *float64 `yaml:"csh3"`
}

// Validate checks the quadruplet integration method.
func (c Quadrupl) Validate() error {
	if c.Iquad != nil {
		switch *c.Iquad {
		case 1, 2, 3, 8, 4, 51, 52, 53:
		default:
			return fmt.Errorf("iquad must be one of 1, 2, 3, 8, 4, 51, 52, 53, got %d", *c.Iquad)
		}
	}
	return nil
}

// Cmd renders the QUADRUPL command.
func (c Quadrupl) Cmd() []string {
	l := render.NewLine("QUADRUPL").
		IntOpt("iquad", c.Iquad).
		FloatOpt("lambda", c.Lambd).
		FloatOpt("cnl4", c.Cnl4).
		FloatOpt("csh1", c.Csh1).
		FloatOpt("csh2", c.Csh2).
		FloatOpt("csh3", c.Csh3)
	return []string{l.String()}
}

// Breaking is implemented by the depth-induced breaking commands
// BREAKING CONSTANT|BKD.
type Breaking interface {
	render.Renderer
}

var breakingRegistry = variant.New[Breaking]("breaking")

func init() {
	variant.Register(breakingRegistry, "constant", func(c BreakingConstant) Breaking { return &c })
	variant.Register(breakingRegistry, "bkd", func(c BreakingBKD) Breaking { return &c })
}

// BreakingUnion holds a resolved breaking command.
type BreakingUnion struct {
	Breaking
}

// UnmarshalYAML resolves the breaking by its model_type tag.
func (u *BreakingUnion) UnmarshalYAML(node *yaml.Node) error {
	c, err := breakingRegistry.Resolve(node)
	if err != nil {
		return err
	}
	u.Breaking = c
	return nil
}

// BreakingConstant renders BREAKING CONSTANT [alpha] [gamma].
type BreakingConstant struct {
	Alpha *float64 `yaml:"alpha"`
	Gamma *float64 `yaml:"gamma"`
}

// Cmd renders the BREAKING CONSTANT command.
func (c *BreakingConstant) Cmd() []string {
	l := render.NewLine("BREAKING CONSTANT").
		FloatOpt("alpha", c.Alpha).
		FloatOpt("gamma", c.Gamma)
	return []string{l.String()}
}

// BreakingBKD renders BREAKING BKD [alpha] [gamma0] [a1] [a2] [a3]: a
// breaker index scaled on the local bottom slope.
type BreakingBKD struct {
	Alpha  *float64 `yaml:"alpha"`
	Gamma0 *float64 `yaml:"gamma0"`
	A1     *float64 `yaml:"a1"`
	A2     *float64 `yaml:"a2"`
	A3     *float64 `yaml:"a3"`
}

// Cmd renders the BREAKING BKD command.
func (c *BreakingBKD) Cmd() []string {
	l := render.NewLine("BREAKING BKD").
		FloatOpt("alpha", c.Alpha).
		FloatOpt("gamma0", c.Gamma0).
		FloatOpt("a1", c.A1).
		FloatOpt("a2", c.A2).
		FloatOpt("a3", c.A3)
	return []string{l.String()}
}

// Friction is implemented by the bottom friction commands
// FRICTION JONSWAP|COLLINS|MADSEN|RIPPLES.
type Friction interface {
	render.Renderer
}

var frictionRegistry = variant.New[Friction]("friction")

func init() {
	variant.Register(frictionRegistry, "jonswap", func(c FrictionJonswap) Friction { return &c })
	variant.Register(frictionRegistry, "collins", func(c FrictionCollins) Friction { return &c })
	variant.Register(frictionRegistry, "madsen", func(c FrictionMadsen) Friction { return &c })
	variant.Register(frictionRegistry, "ripples", func(c FrictionRipples) Friction { return &c })
}

// FrictionUnion holds a resolved bottom friction command.
type FrictionUnion struct {
	Friction
}

// UnmarshalYAML resolves the friction by its model_type tag.
func (u *FrictionUnion) UnmarshalYAML(node *yaml.Node) error {
	c, err := frictionRegistry.Resolve(node)
	if err != nil {
		return err
	}
	u.Friction = c
	return nil
}

// FrictionJonswap renders FRICTION JONSWAP CONSTANT [cfjon].
type FrictionJonswap struct {
	Cfjon *float64 `yaml:"cfjon"`
}

// Cmd renders the FRICTION JONSWAP command.
func (c *FrictionJonswap) Cmd() []string {
	return []string{render.NewLine("FRICTION JONSWAP CONSTANT").FloatOpt("cfjon", c.Cfjon).String()}
}

// FrictionCollins renders FRICTION COLLINS [cfw].
type FrictionCollins struct {
	Cfw *float64 `yaml:"cfw"`
}

// Cmd renders the FRICTION COLLINS command.
func (c *FrictionCollins) Cmd() []string {
	return []string{render.NewLine("FRICTION COLLINS").FloatOpt("cfw", c.Cfw).String()}
}

// FrictionMadsen renders FRICTION MADSEN [kn].
type FrictionMadsen struct {
	Kn *float64 `yaml:"kn"`
}

// Cmd renders the FRICTION MADSEN command.
func (c *FrictionMadsen) Cmd() []string {
	return []string{render.NewLine("FRICTION MADSEN").FloatOpt("kn", c.Kn).String()}
}

// FrictionRipples renders FRICTION RIPPLES [S] [D]: the ripples-based
// formulation of Smith et al. (2011).
type FrictionRipples struct {
	S *float64 `yaml:"s"`
	D *float64 `yaml:"d"`
}

// Cmd renders the FRICTION RIPPLES command.
func (c *FrictionRipples) Cmd() []string {
	l := render.NewLine("FRICTION RIPPLES").
		FloatOpt("S", c.S).
		FloatOpt("D", c.D)
	return []string{l.String()}
}

// Triad is implemented by the triad interaction commands
// TRIAD, TRIAD DCTA|LTA|SPB.
type Triad interface {
	render.Renderer
}

var triadRegistry = variant.New[Triad]("triad")

func init() {
	variant.Register(triadRegistry, "triad", func(c TriadDefault) Triad { return &c })
	variant.Register(triadRegistry, "dcta", func(c TriadDCTA) Triad { return &c })
	variant.Register(triadRegistry, "lta", func(c TriadLTA) Triad { return &c })
	variant.Register(triadRegistry, "spb", func(c TriadSPB) Triad { return &c })
}

// TriadUnion holds a resolved triad interaction command.
type TriadUnion struct {
	Triad
}

// UnmarshalYAML resolves the triad by its model_type tag.
func (u *TriadUnion) UnmarshalYAML(node *yaml.Node) error {
	c, err := triadRegistry.Resolve(node)
	if err != nil {
		return err
	}
	u.Triad = c
	return nil
}

// TriadDefault renders TRIAD [itriad] [trfac] [cutfr] [a] [b] [urcrit]
// [urslim]: the generic triad command with method selection by itriad.
type TriadDefault struct {
	Itriad *int     `yaml:"itriad"`
	Trfac  *float64 `yaml:"trfac"`
	Cutfr  *float64 `yaml:"cutfr"`
	A      *float64 `yaml:"a"`
	B      *float64 `yaml:"b"`
	Ucrit  *float64 `yaml:"ucrit"`
	Urslim *float64 `yaml:"urslim"`
}

// Validate checks the triad method selector.
func (c *TriadDefault) Validate() error {
	if c.Itriad != nil && (*c.Itriad < 1 || *c.Itriad > 2) {
		return fmt.Errorf("itriad must be 1 or 2, got %d", *c.Itriad)
	}
	return nil
}

// Cmd renders the TRIAD command.
func (c *TriadDefault) Cmd() []string {
	l := render.NewLine("TRIAD").
		IntOpt("itriad", c.Itriad).
		FloatOpt("trfac", c.Trfac).
		FloatOpt("cutfr", c.Cutfr).
		FloatOpt("a", c.A).
		FloatOpt("b", c.B).
		FloatOpt("urcrit", c.Ucrit).
		FloatOpt("urslim", c.Urslim)
	return []string{l.String()}
}

// TriadDCTA renders TRIAD DCTA [trfac] [p] COLL|NONC BIPHASE: the
// distributed collinear triad approximation of Booij et al. (2009).
type TriadDCTA struct {
	Trfac       *float64                  `yaml:"trfac"`
	P           *float64                  `yaml:"p"`
	Noncolinear bool                      `yaml:"noncolinear"`
	Biphase     *subcomponent.BiphaseUnion `yaml:"biphase"`
}

// Cmd renders the TRIAD DCTA command.
func (c *TriadDCTA) Cmd() []string {
	l := render.NewLine("TRIAD DCTA").
		FloatOpt("trfac", c.Trfac).
		FloatOpt("p", c.P)
	if c.Noncolinear {
		l.Keyword("nonc")
	} else {
		l.Keyword("coll")
	}
	repr := l.String()
	if c.Biphase != nil {
		repr += " " + c.Biphase.Render()
	}
	return []string{repr}
}

// TriadLTA renders TRIAD LTA [trfac] [cutfr] BIPHASE: the lumped triad
// approximation of Eldeberky (1996).
type TriadLTA struct {
	Trfac   *float64                  `yaml:"trfac"`
	Cutfr   *float64                  `yaml:"cutfr"`
	Biphase *subcomponent.BiphaseUnion `yaml:"biphase"`
}

// Cmd renders the TRIAD LTA command.
func (c *TriadLTA) Cmd() []string {
	repr := render.NewLine("TRIAD LTA").
		FloatOpt("trfac", c.Trfac).
		FloatOpt("cutfr", c.Cutfr).
		String()
	if c.Biphase != nil {
		repr += " " + c.Biphase.Render()
	}
	return []string{repr}
}

// TriadSPB renders TRIAD SPB [trfac] [a] [b] BIPHASE: the stochastic
// parametric model of Becq-Girard et al. (1999).
type TriadSPB struct {
	Trfac   *float64                  `yaml:"trfac"`
	A       *float64                  `yaml:"a"`
	B       *float64                  `yaml:"b"`
	Biphase *subcomponent.BiphaseUnion `yaml:"biphase"`
}

// Cmd renders the TRIAD SPB command.
func (c *TriadSPB) Cmd() []string {
	repr := render.NewLine("TRIAD SPB").
		FloatOpt("trfac", c.Trfac).
		FloatOpt("a", c.A).
		FloatOpt("b", c.B).
		String()
	if c.Biphase != nil {
		repr += " " + c.Biphase.Render()
	}
	return []string{repr}
}

// Vegetation activates dissipation by aquatic vegetation:
// VEGETATION [iveg] < [height] [diamtr] [nstems] [drag] >, one quadruple
// per vertical layer.
type Vegetation struct {
	Iveg   *int      `yaml:"iveg"`
	Height []float64 `yaml:"height"`
	Diamtr []float64 `yaml:"diamtr"`
	Nstems []int     `yaml:"nstems"`
	Drag   []float64 `yaml:"drag"`
}

// Validate requires one parameter set per layer.
func (c Vegetation) Validate() error {
	if c.Iveg != nil && (*c.Iveg < 1 || *c.Iveg > 2) {
		return fmt.Errorf("iveg must be 1 or 2, got %d", *c.Iveg)
	}
	if len(c.Height) == 0 {
		return fmt.Errorf("at least one vegetation layer is required")
	}
	if len(c.Diamtr) != len(c.Height) || len(c.Nstems) != len(c.Height) ||
		len(c.Drag) != len(c.Height) {
		return fmt.Errorf("height, diamtr, nstems and drag must have the same size")
	}
	return nil
}

// Cmd renders the VEGETATION command.
func (c Vegetation) Cmd() []string {
	iveg := 1
	if c.Iveg != nil {
		iveg = *c.Iveg
	}
	repr := fmt.Sprintf("VEGETATION iveg=%d", iveg)
	for i := range c.Height {
		repr += fmt.Sprintf(" height=%s diamtr=%s nstems=%d drag=%s",
			render.Float(c.Height[i]), render.Float(c.Diamtr[i]),
			c.Nstems[i], render.Float(c.Drag[i]))
	}
	return []string{repr}
}

// Mud activates dissipation by a fluid mud layer:
// MUD [layer] [rhom] [viscm].
type Mud struct {
	Layer *float64 `yaml:"layer"`
	Rhom  *float64 `yaml:"rhom"`
	Viscm *float64 `yaml:"viscm"`
}

// Cmd renders the MUD command.
func (c Mud) Cmd() []string {
	l := render.NewLine("MUD").
		FloatOpt("layer", c.Layer).
		FloatOpt("rhom", c.Rhom).
		FloatOpt("viscm", c.Viscm)
	return []string{l.String()}
}

// Sice is implemented by the sea ice dissipation commands
// SICE [R19|D15|M18|R21B].
type Sice interface {
	render.Renderer
}

var siceRegistry = variant.New[Sice]("sice")

func init() {
	variant.Register(siceRegistry, "sice", func(c SiceDefault) Sice { return &c })
	variant.Register(siceRegistry, "r19", func(c SiceR19) Sice { return &c })
	variant.Register(siceRegistry, "d15", func(c SiceD15) Sice { return &c })
	variant.Register(siceRegistry, "m18", func(c SiceM18) Sice { return &c })
	variant.Register(siceRegistry, "r21b", func(c SiceR21B) Sice { return &c })
}

// SiceUnion holds a resolved sea ice command.
type SiceUnion struct {
	Sice
}

// UnmarshalYAML resolves the sea ice command by its model_type tag.
func (u *SiceUnion) UnmarshalYAML(node *yaml.Node) error {
	c, err := siceRegistry.Resolve(node)
	if err != nil {
		return err
	}
	u.Sice = c
	return nil
}

// siceBase carries the constant areal ice fraction shared by all methods.
type siceBase struct {
	Aice *float64 `yaml:"aice"`
}

func (c siceBase) validate() error {
	if c.Aice != nil && (*c.Aice < 0 || *c.Aice > 1) {
		return fmt.Errorf("aice must be in the range [0, 1]")
	}
	return nil
}

func (c siceBase) prefix() string {
	return render.NewLine("SICE").FloatOpt("aice", c.Aice).String()
}

// SiceDefault renders SICE [aice] with the default dissipation method.
type SiceDefault struct {
	siceBase `yaml:",inline"`
}

// Validate checks the ice fraction range.
func (c *SiceDefault) Validate() error { return c.validate() }

// Cmd renders the SICE command.
func (c *SiceDefault) Cmd() []string { return []string{c.prefix()} }

// SiceR19 renders SICE [aice] R19 [c0]..[c6]: the polynomial dissipation
// fit of Rogers et al. (2019).
type SiceR19 struct {
	siceBase `yaml:",inline"`
	C0       *float64 `yaml:"c0"`
	C1       *float64 `yaml:"c1"`
	C2       *float64 `yaml:"c2"`
	C3       *float64 `yaml:"c3"`
	C4       *float64 `yaml:"c4"`
	C5       *float64 `yaml:"c5"`
	C6       *float64 `yaml:"c6"`
}

// Validate checks the ice fraction range.
func (c *SiceR19) Validate() error { return c.validate() }

// Cmd renders the SICE R19 command.
func (c *SiceR19) Cmd() []string {
	l := render.NewLine(c.prefix() + " R19").
		FloatOpt("c0", c.C0).
		FloatOpt("c1", c.C1).
		FloatOpt("c2", c.C2).
		FloatOpt("c3", c.C3).
		FloatOpt("c4", c.C4).
		FloatOpt("c5", c.C5).
		FloatOpt("c6", c.C6)
	return []string{l.String()}
}

// SiceD15 renders SICE [aice] D15 [chf]: Doble et al. (2015).
type SiceD15 struct {
	siceBase `yaml:",inline"`
	Chf      *float64 `yaml:"chf"`
}

// Validate checks the ice fraction range.
func (c *SiceD15) Validate() error { return c.validate() }

// Cmd renders the SICE D15 command.
func (c *SiceD15) Cmd() []string {
	return []string{render.NewLine(c.prefix() + " D15").FloatOpt("chf", c.Chf).String()}
}

// SiceM18 renders SICE [aice] M18 [chf]: Meylan et al. (2018).
type SiceM18 struct {
	siceBase `yaml:",inline"`
	Chf      *float64 `yaml:"chf"`
}

// Validate checks the ice fraction range.
func (c *SiceM18) Validate() error { return c.validate() }

// Cmd renders the SICE M18 command.
func (c *SiceM18) Cmd() []string {
	return []string{render.NewLine(c.prefix() + " M18").FloatOpt("chf", c.Chf).String()}
}

// SiceR21B renders SICE [aice] R21B [chf] [npf]: Rogers et al. (2021).
type SiceR21B struct {
	siceBase `yaml:",inline"`
	Chf      *float64 `yaml:"chf"`
	Npf      *float64 `yaml:"npf"`
}

// Validate checks the ice fraction range.
func (c *SiceR21B) Validate() error { return c.validate() }

// Cmd renders the SICE R21B command.
func (c *SiceR21B) Cmd() []string {
	l := render.NewLine(c.prefix() + " R21B").
		FloatOpt("chf", c.Chf).
		FloatOpt("npf", c.Npf)
	return []string{l.String()}
}

// Turbulence activates turbulent viscosity dissipation:
// TURBULENCE [ctb] (CURRENT [tbcur]).
type Turbulence struct {
	Ctb     *float64 `yaml:"ctb"`
	Current *bool    `yaml:"current"`
	Tbcur   *float64 `yaml:"tbcur"`
}

// Validate requires CURRENT for the tbcur factor.
func (c Turbulence) Validate() error {
	if c.Tbcur != nil && !c.current() {
		return fmt.Errorf("tbcur only applies with the current option")
	}
	return nil
}

func (c Turbulence) current() bool {
	// Turbulence production from the current field is on unless disabled.
	return c.Current == nil || *c.Current
}

// Cmd renders the TURBULENCE command.
func (c Turbulence) Cmd() []string {
	l := render.NewLine("TURBULENCE").FloatOpt("ctb", c.Ctb)
	if c.current() {
		l.Keyword("current")
	}
	l.FloatOpt("tbcur", c.Tbcur)
	return []string{l.String()}
}

// Bragg is implemented by the Bragg scattering commands BRAGG [FT|FILE].
type Bragg interface {
	render.Renderer
}

var braggRegistry = variant.New[Bragg]("bragg")

func init() {
	variant.Register(braggRegistry, "bragg", func(c BraggDefault) Bragg { return &c })
	variant.Register(braggRegistry, "ft", func(c BraggFT) Bragg { return &c })
	variant.Register(braggRegistry, "file", func(c BraggFile) Bragg { return &c })
}

// BraggUnion holds a resolved Bragg scattering command.
type BraggUnion struct {
	Bragg
}

// UnmarshalYAML resolves the Bragg command by its model_type tag.
func (u *BraggUnion) UnmarshalYAML(node *yaml.Node) error {
	c, err := braggRegistry.Resolve(node)
	if err != nil {
		return err
	}
	u.Bragg = c
	return nil
}

// braggBase carries the fields shared by all Bragg scattering methods.
type braggBase struct {
	Ibrag  *int     `yaml:"ibrag"`
	Nreg   *int     `yaml:"nreg"`
	Cutoff *float64 `yaml:"cutoff"`
}

func (c braggBase) validate() error {
	if c.Ibrag != nil && (*c.Ibrag < 1 || *c.Ibrag > 3) {
		return fmt.Errorf("ibrag must be 1, 2 or 3, got %d", *c.Ibrag)
	}
	return nil
}

func (c braggBase) prefix() string {
	return render.NewLine("BRAGG").
		IntOpt("ibrag", c.Ibrag).
		IntOpt("nreg", c.Nreg).
		FloatOpt("cutoff", c.Cutoff).
		String()
}

// BraggDefault renders BRAGG [ibrag] [nreg] [cutoff].
type BraggDefault struct {
	braggBase `yaml:",inline"`
}

// Validate checks the method selector.
func (c *BraggDefault) Validate() error { return c.validate() }

// Cmd renders the BRAGG command.
func (c *BraggDefault) Cmd() []string { return []string{c.prefix()} }

// BraggFT reads the bottom spectrum from the Fourier transform of the
// bottom input grid: BRAGG ... FT.
type BraggFT struct {
	braggBase `yaml:",inline"`
}

// Validate checks the method selector.
func (c *BraggFT) Validate() error { return c.validate() }

// Cmd renders the BRAGG FT command.
func (c *BraggFT) Cmd() []string { return []string{c.prefix() + " FT"} }

// BraggFile reads the bottom spectrum from file:
// BRAGG ... FILE 'fname' [idla] [mkx] [mky] [dkx] [dky].
type BraggFile struct {
	braggBase `yaml:",inline"`
	Fname     string     `yaml:"fname"`
	Idla      *types.IDLA `yaml:"idla"`
	Mkx       int        `yaml:"mkx"`
	Mky       *int       `yaml:"mky"`
	Dkx       float64    `yaml:"dkx"`
	Dky       *float64   `yaml:"dky"`
}

// Validate checks the file name and layout identifier.
func (c *BraggFile) Validate() error {
	if err := c.validate(); err != nil {
		return err
	}
	if c.Fname == "" || len(c.Fname) > 36 {
		return fmt.Errorf("fname is required and must be at most 36 characters")
	}
	if c.Idla != nil {
		return c.Idla.Validate()
	}
	return nil
}

// Cmd renders the BRAGG FILE command.
func (c *BraggFile) Cmd() []string {
	repr := fmt.Sprintf("%s FILE fname=%s", c.prefix(), render.Quote(c.Fname))
	if c.Idla != nil {
		repr += fmt.Sprintf(" idla=%d", int(*c.Idla))
	}
	repr += fmt.Sprintf(" mkx=%d", c.Mkx)
	if c.Mky != nil {
		repr += fmt.Sprintf(" mky=%d", *c.Mky)
	}
	repr += fmt.Sprintf(" dkx=%s", render.Float(c.Dkx))
	if c.Dky != nil {
		repr += fmt.Sprintf(" dky=%s", render.Float(*c.Dky))
	}
	return []string{repr}
}

// Limiter caps the Ursell-based action density change per iteration:
// LIMITER [ursell] [qb].
type Limiter struct {
	Ursell *float64 `yaml:"ursell"`
	Qb     *float64 `yaml:"qb"`
}

// Cmd renders the LIMITER command.
func (c Limiter) Cmd() []string {
	l := render.NewLine("LIMITER").
		FloatOpt("ursell", c.Ursell).
		FloatOpt("qb", c.Qb)
	return []string{l.String()}
}

// ObstacleCmd is implemented by the sub-grid obstacle commands
// OBSTACLE and OBSTACLE FIG.
type ObstacleCmd interface {
	render.Renderer
}

var obstacleRegistry = variant.New[ObstacleCmd]("obstacle")

func init() {
	variant.Register(obstacleRegistry, "obstacle", func(c Obstacle) ObstacleCmd { return &c })
	variant.Register(obstacleRegistry, "fig", func(c ObstacleFig) ObstacleCmd { return &c })
}

// ObstacleUnion holds a resolved obstacle command.
type ObstacleUnion struct {
	ObstacleCmd
}

// UnmarshalYAML resolves the obstacle by its model_type tag.
func (u *ObstacleUnion) UnmarshalYAML(node *yaml.Node) error {
	c, err := obstacleRegistry.Resolve(node)
	if err != nil {
		return err
	}
	u.ObstacleCmd = c
	return nil
}

// Obstacle defines a sub-grid obstacle line with transmission, reflection
// and freeboard behaviour:
// OBSTACLE TRANSM|TRANS1D|TRANS2D|DAM (REFL [RSPEC|RDIFF]) (FREEBOARD) LINE.
type Obstacle struct {
	Transmission   *subcomponent.TransmissionUnion `yaml:"transmission"`
	Reflection     *subcomponent.Refl              `yaml:"reflection"`
	ReflectionType *subcomponent.ReflTypeUnion     `yaml:"reflection_type"`
	Freeboard      *subcomponent.Freeboard         `yaml:"freeboard"`
	Line           subcomponent.Line               `yaml:"line"`
}

// Validate requires a reflection clause before a reflection type and checks
// the obstacle line.
func (c *Obstacle) Validate() error {
	if c.ReflectionType != nil && c.Reflection == nil {
		return fmt.Errorf("reflection_type requires reflection to be set")
	}
	return c.Line.Validate()
}

// Cmd renders the OBSTACLE command.
func (c *Obstacle) Cmd() []string {
	repr := "OBSTACLE"
	if c.Transmission != nil {
		repr += " " + c.Transmission.Render()
	}
	if c.Reflection != nil {
		repr += " " + c.Reflection.Render()
	}
	if c.ReflectionType != nil {
		repr += " " + c.ReflectionType.Render()
	}
	if c.Freeboard != nil {
		repr += " " + c.Freeboard.Render()
	}
	return []string{repr + " " + c.Line.Render()}
}

// ObstacleFig defines free infragravity energy transmission over an
// obstacle: OBSTACLE FIG [alpha1] [hss] [tss] (REFL) LINE.
type ObstacleFig struct {
	Alpha1     float64            `yaml:"alpha1"`
	Hss        float64            `yaml:"hss"`
	Tss        float64            `yaml:"tss"`
	Reflection *subcomponent.Refl `yaml:"reflection"`
	Line       subcomponent.Line  `yaml:"line"`
}

// Validate checks the sea state parameters and the obstacle line.
func (c *ObstacleFig) Validate() error {
	if c.Hss < 0 {
		return fmt.Errorf("hss must not be negative")
	}
	if c.Tss < 0 {
		return fmt.Errorf("tss must not be negative")
	}
	return c.Line.Validate()
}

// Cmd renders the OBSTACLE FIG command.
func (c *ObstacleFig) Cmd() []string {
	repr := fmt.Sprintf("OBSTACLE FIG alpha1=%s hss=%s tss=%s",
		render.Float(c.Alpha1), render.Float(c.Hss), render.Float(c.Tss))
	if c.Reflection != nil {
		repr += " " + c.Reflection.Render()
	}
	return []string{repr + " " + c.Line.Render()}
}

// Setup activates the wave-induced setup computation: SETUP [supcor].
type Setup struct {
	Supcor *float64 `yaml:"supcor"`
}

// Cmd renders the SETUP command.
func (c Setup) Cmd() []string {
	return []string{render.NewLine("SETUP").FloatOpt("supcor", c.Supcor).String()}
}

// Diffraction activates phase-decoupled diffraction:
// DIFFRACTION [idiffr] [smpar] [smnum] [cgmod].
type Diffraction struct {
	Idiffr *bool    `yaml:"idiffr"`
	Smpar  *float64 `yaml:"smpar"`
	Smnum  *int     `yaml:"smnum"`
	Cgmod  *float64 `yaml:"cgmod"`
}

// Cmd renders the DIFFRACTION command. The on/off indicator renders as an
// integer flag.
func (c Diffraction) Cmd() []string {
	repr := "DIFFRACTION"
	if c.Idiffr != nil {
		flag := 0
		if *c.Idiffr {
			flag = 1
		}
		repr += fmt.Sprintf(" idiffr=%d", flag)
	}
	l := render.NewLine(repr).
		FloatOpt("smpar", c.Smpar).
		IntOpt("smnum", c.Smnum).
		FloatOpt("cgmod", c.Cgmod)
	return []string{l.String()}
}

// Surfbeat activates the infragravity energy coupling:
// SURFBEAT [df] [nmax] [emin] UNIFORM|LOGARITHMIC.
type Surfbeat struct {
	Df      *float64 `yaml:"df"`
	Nmax    *int     `yaml:"nmax"`
	Emin    *float64 `yaml:"emin"`
	Spacing *string  `yaml:"spacing"`
}

// Validate checks the frequency spacing keyword.
func (c Surfbeat) Validate() error {
	if c.Spacing != nil {
		switch *c.Spacing {
		case "uniform", "logarithmic":
			return nil
		}
		return fmt.Errorf("spacing must be uniform or logarithmic, got %q", *c.Spacing)
	}
	return nil
}

// Cmd renders the SURFBEAT command.
func (c Surfbeat) Cmd() []string {
	l := render.NewLine("SURFBEAT").
		FloatOpt("df", c.Df).
		IntOpt("nmax", c.Nmax).
		FloatOpt("emin", c.Emin)
	if c.Spacing != nil {
		l.Keyword(*c.Spacing)
	}
	return []string{l.String()}
}

// Scat activates scattering by QC modelling:
// SCAT [iqcm] (GRID [rfac]) (TRUNC [alpha] [qmax]).
type Scat struct {
	Iqcm  *int     `yaml:"iqcm"`
	Rfac  *float64 `yaml:"rfac"`
	Alpha *float64 `yaml:"alpha"`
	Qmax  *float64 `yaml:"qmax"`
}

// Validate checks the method selector and grid refinement factor.
func (c Scat) Validate() error {
	if c.Iqcm != nil && (*c.Iqcm < 0 || *c.Iqcm > 2) {
		return fmt.Errorf("iqcm must be 0, 1 or 2, got %d", *c.Iqcm)
	}
	if c.Rfac != nil && *c.Rfac < 1 {
		return fmt.Errorf("rfac must be at least 1")
	}
	return nil
}

// Cmd renders the SCAT command.
func (c Scat) Cmd() []string {
	repr := render.NewLine("SCAT").IntOpt("iqcm", c.Iqcm).String()
	if c.Rfac != nil {
		repr += fmt.Sprintf(" GRID rfac=%s", render.Float(*c.Rfac))
	}
	if c.Alpha != nil || c.Qmax != nil {
		repr += " TRUNC"
		if c.Alpha != nil {
			repr += fmt.Sprintf(" alpha=%s", render.Float(*c.Alpha))
		}
		if c.Qmax != nil {
			repr += fmt.Sprintf(" qmax=%s", render.Float(*c.Qmax))
		}
	}
	return []string{repr}
}

// Off deactivates a physics process: OFF WINDGROWTH|QUADRUPL|WCAPPING|
// BREAKING|REFRAC|FSHIFT|BNDCHK.
type Off struct {
	Physics types.PhysicsOff `yaml:"physics"`
}

// Validate checks the process keyword.
func (c Off) Validate() error { return c.Physics.Validate() }

// Cmd renders the OFF command.
func (c Off) Cmd() []string {
	return []string{"OFF " + strings.ToUpper(string(c.Physics))}
}
