package subcomponent

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/swanconfig/render"
	"github.com/c360studio/swanconfig/variant"
)

// Scheme is implemented by the propagation scheme clauses of PROP.
type Scheme interface {
	Render() string
}

var schemeRegistry = variant.New[Scheme]("propagation scheme")

func init() {
	variant.Register(schemeRegistry, "bsbt", func(s BSBT) Scheme { return s })
	variant.Register(schemeRegistry, "gse", func(s GSE) Scheme { return s })
}

// SchemeUnion holds a resolved propagation scheme.
type SchemeUnion struct {
	Scheme
}

// UnmarshalYAML resolves the scheme by its model_type tag.
func (u *SchemeUnion) UnmarshalYAML(node *yaml.Node) error {
	s, err := schemeRegistry.Resolve(node)
	if err != nil {
		return err
	}
	u.Scheme = s
	return nil
}

// BSBT selects the first order backward-space backward-time scheme.
type BSBT struct{}

// Render formats the BSBT keyword.
func (s BSBT) Render() string { return "BSBT" }

// GSE counteracts the garden-sprinkler effect by adding diffusion scaled to
// the wave age.
type GSE struct {
	Waveage *Delt `yaml:"waveage"`
}

// Validate checks the wave age interval.
func (s GSE) Validate() error {
	if s.Waveage != nil {
		return s.Waveage.Validate()
	}
	return nil
}

// Render formats the GSE clause.
func (s GSE) Render() string {
	repr := "GSE"
	if s.Waveage != nil {
		repr += " waveage=" + s.Waveage.Render()
	}
	return repr
}

// IterMode is implemented by the STATIONARY/NONSTATIONARY iteration clauses
// of STOPC and ACCUR.
type IterMode interface {
	Render() string
}

var iterModeRegistry = variant.New[IterMode]("iteration mode")

func init() {
	variant.Register(iterModeRegistry, "stat", func(m IterStat) IterMode { return m })
	variant.Register(iterModeRegistry, "nonstat", func(m IterNonstat) IterMode { return m })
}

// IterModeUnion holds a resolved iteration mode.
type IterModeUnion struct {
	IterMode
}

// UnmarshalYAML resolves the mode by its model_type tag.
func (u *IterModeUnion) UnmarshalYAML(node *yaml.Node) error {
	m, err := iterModeRegistry.Resolve(node)
	if err != nil {
		return err
	}
	u.IterMode = m
	return nil
}

// IterStat caps the iterations of stationary computations.
type IterStat struct {
	Mxitst *int     `yaml:"mxitst"`
	Alfa   *float64 `yaml:"alfa"`
}

// Render formats the STATIONARY iteration clause.
func (m IterStat) Render() string {
	return render.NewLine("STATIONARY").
		IntOpt("mxitst", m.Mxitst).
		FloatOpt("alfa", m.Alfa).
		String()
}

// IterNonstat caps the iterations per time step of nonstationary
// computations.
type IterNonstat struct {
	Mxitns *int `yaml:"mxitns"`
}

// Render formats the NONSTATIONARY iteration clause.
func (m IterNonstat) Render() string {
	return render.NewLine("NONSTATIONARY").IntOpt("mxitns", m.Mxitns).String()
}

// Stop is implemented by the iteration termination criteria of NUMERIC.
type Stop interface {
	Render() string
}

var stopRegistry = variant.New[Stop]("stopping criterion")

func init() {
	variant.Register(stopRegistry, "stopc", func(s StopC) Stop { return s })
	variant.Register(stopRegistry, "accur", func(s Accur) Stop { return s })
	stopRegistry.SetDefault("stopc")
}

// StopUnion holds a resolved stopping criterion.
type StopUnion struct {
	Stop
}

// UnmarshalYAML resolves the criterion by its model_type tag.
func (u *StopUnion) UnmarshalYAML(node *yaml.Node) error {
	s, err := stopRegistry.Resolve(node)
	if err != nil {
		return err
	}
	u.Stop = s
	return nil
}

// StopC is the curvature-based stopping criterion:
// STOPC [dabs] [drel] [curvat] [npnts] STAT|NONSTAT [limiter].
type StopC struct {
	Dabs    *float64       `yaml:"dabs"`
	Drel    *float64       `yaml:"drel"`
	Curvat  *float64       `yaml:"curvat"`
	Npnts   *float64       `yaml:"npnts"`
	Mode    *IterModeUnion `yaml:"mode"`
	Limiter *float64       `yaml:"limiter"`
}

// Render formats the STOPC clause.
func (s StopC) Render() string {
	l := render.NewLine("STOPC").
		FloatOpt("dabs", s.Dabs).
		FloatOpt("drel", s.Drel).
		FloatOpt("curvat", s.Curvat).
		FloatOpt("npnts", s.Npnts)
	if s.Mode != nil && s.Mode.IterMode != nil {
		l.Add(s.Mode.Render())
	}
	return l.FloatOpt("limiter", s.Limiter).String()
}

// Accur is the accuracy-based stopping criterion, obsolete since SWAN 41.01
// but still accepted:
// ACCUR [drel] [dhoval] [dtoval] [npnts] STAT|NONSTAT [limiter].
type Accur struct {
	Drel    *float64       `yaml:"drel"`
	Dhoval  *float64       `yaml:"dhoval"`
	Dtoval  *float64       `yaml:"dtoval"`
	Npnts   *float64       `yaml:"npnts"`
	Mode    *IterModeUnion `yaml:"mode"`
	Limiter *float64       `yaml:"limiter"`
}

// Render formats the ACCUR clause.
func (s Accur) Render() string {
	l := render.NewLine("ACCUR").
		FloatOpt("drel", s.Drel).
		FloatOpt("dhoval", s.Dhoval).
		FloatOpt("dtoval", s.Dtoval).
		FloatOpt("npnts", s.Npnts)
	if s.Mode != nil && s.Mode.IterMode != nil {
		l.Add(s.Mode.Render())
	}
	return l.FloatOpt("limiter", s.Limiter).String()
}

// DirImpl controls the numerical scheme for refraction: DIRIMPL [cdd].
type DirImpl struct {
	Cdd *float64 `yaml:"cdd"`
}

// Render formats the DIRIMPL clause.
func (s DirImpl) Render() string {
	return render.NewLine("DIRIMPL").FloatOpt("cdd", s.Cdd).String()
}

// SigImpl controls frequency shifting accuracy and the SIP solver:
// SIGIMPL [css] [eps2] [outp] [niter].
type SigImpl struct {
	Css   *float64 `yaml:"css"`
	Eps2  *float64 `yaml:"eps2"`
	Outp  *int     `yaml:"outp"`
	Niter *int     `yaml:"niter"`
}

// Validate checks the solver output level.
func (s SigImpl) Validate() error {
	if s.Outp != nil && (*s.Outp < 0 || *s.Outp > 3) {
		return fmt.Errorf("outp must be in the range 0-3, got %d", *s.Outp)
	}
	return nil
}

// Render formats the SIGIMPL clause.
func (s SigImpl) Render() string {
	return render.NewLine("SIGIMPL").
		FloatOpt("css", s.Css).
		FloatOpt("eps2", s.Eps2).
		IntOpt("outp", s.Outp).
		IntOpt("niter", s.Niter).
		String()
}

// CTheta limits the directional turning rate: CTHETA [cfl].
type CTheta struct {
	Cfl *float64 `yaml:"cfl"`
}

// Render formats the CTHETA clause.
func (s CTheta) Render() string {
	return render.NewLine("CTHETA").FloatOpt("cfl", s.Cfl).String()
}

// CSigma limits the frequency shifting rate: CSIGMA [cfl].
type CSigma struct {
	Cfl *float64 `yaml:"cfl"`
}

// Render formats the CSIGMA clause.
func (s CSigma) Render() string {
	return render.NewLine("CSIGMA").FloatOpt("cfl", s.Cfl).String()
}

// SetupSolver controls the SOR solver for wave-induced set-up:
// SETUP [eps2] [outp] [niter].
type SetupSolver struct {
	Eps2  *float64 `yaml:"eps2"`
	Outp  *int     `yaml:"outp"`
	Niter *int     `yaml:"niter"`
}

// Validate checks the solver output level.
func (s SetupSolver) Validate() error {
	if s.Outp != nil && (*s.Outp < 0 || *s.Outp > 3) {
		return fmt.Errorf("outp must be in the range 0-3, got %d", *s.Outp)
	}
	return nil
}

// Render formats the SETUP solver clause.
func (s SetupSolver) Render() string {
	return render.NewLine("SETUP").
		FloatOpt("eps2", s.Eps2).
		IntOpt("outp", s.Outp).
		IntOpt("niter", s.Niter).
		String()
}
