package component

import (
	"fmt"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/swanconfig/render"
	"github.com/c360studio/swanconfig/types"
	"github.com/c360studio/swanconfig/variant"
)

// renderGroup renders each member command node on its own paragraph. Group
// components use it to emit one blank-line separated block per member.
func renderGroup(members []render.Renderer) string {
	parts := make([]string, 0, len(members))
	for _, m := range members {
		parts = append(parts, render.Render(m))
	}
	return strings.Join(parts, "\n\n")
}

// validateMember validates a union member when its resolved variant carries
// its own checks, wrapping errors with the member path.
func validateMember(path string, m any) error {
	v, ok := m.(interface{ Validate() error })
	if !ok {
		return nil
	}
	if err := v.Validate(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Startup groups the model startup commands:
//
//	PROJECT ...
//	SET ...
//	MODE ...
//	COORDINATES ...
//
// Only members that are explicitly prescribed are rendered.
type Startup struct {
	Project     *Project     `yaml:"project"`
	Set         *Set         `yaml:"set"`
	Mode        *Mode        `yaml:"mode"`
	Coordinates *Coordinates `yaml:"coordinates"`
}

// Validate checks each prescribed member.
func (g *Startup) Validate() error {
	if g.Project != nil {
		if err := g.Project.Validate(); err != nil {
			return fmt.Errorf("project: %w", err)
		}
	}
	if g.Set != nil {
		if err := g.Set.Validate(); err != nil {
			return fmt.Errorf("set: %w", err)
		}
	}
	if g.Mode != nil {
		if err := g.Mode.Validate(); err != nil {
			return fmt.Errorf("mode: %w", err)
		}
	}
	return nil
}

// Render writes the startup commands, one per paragraph.
func (g *Startup) Render() string {
	var members []render.Renderer
	if g.Project != nil {
		members = append(members, g.Project)
	}
	if g.Set != nil {
		members = append(members, g.Set)
	}
	if g.Mode != nil {
		members = append(members, g.Mode)
	}
	if g.Coordinates != nil {
		members = append(members, g.Coordinates)
	}
	return renderGroup(members)
}

// Inpgrids groups the input grid commands, each rendered with its reader:
//
//	INPGRID ...
//	READINP ...
//
//	INPGRID ...
//	READINP ...
//
// Constant wind and ice fields may be appended after the grids.
type Inpgrids struct {
	Inpgrids []InpGridUnion `yaml:"inpgrids"`
	Wind     *Wind          `yaml:"wind"`
	Ice      *Ice           `yaml:"ice"`
}

// Validate requires at least one input grid and a unique grid type per grid.
func (g *Inpgrids) Validate() error {
	if len(g.Inpgrids) == 0 {
		return fmt.Errorf("at least one input grid is required")
	}
	seen := make(map[types.GridOption]bool, len(g.Inpgrids))
	for i, inp := range g.Inpgrids {
		if seen[inp.Type()] {
			return fmt.Errorf("each grid type must be unique, got %q more than once", inp.Type())
		}
		seen[inp.Type()] = true
		if err := validateMember(fmt.Sprintf("inpgrid[%d]", i), inp.InpGrid); err != nil {
			return err
		}
	}
	if g.Wind != nil {
		if err := g.Wind.Validate(); err != nil {
			return fmt.Errorf("wind: %w", err)
		}
	}
	if g.Ice != nil {
		if err := g.Ice.Validate(); err != nil {
			return fmt.Errorf("ice: %w", err)
		}
	}
	return nil
}

// Render writes one paragraph per input grid, then the constant fields.
func (g *Inpgrids) Render() string {
	var members []render.Renderer
	for _, inp := range g.Inpgrids {
		members = append(members, inp)
	}
	if g.Wind != nil {
		members = append(members, g.Wind)
	}
	if g.Ice != nil {
		members = append(members, g.Ice)
	}
	return renderGroup(members)
}

// Physics groups the physics commands so related processes can be prescribed
// together and checked for consistency. Only members that are explicitly
// prescribed are rendered.
type Physics struct {
	Gen         *GenUnion       `yaml:"gen"`
	Sswell      *SswellUnion    `yaml:"sswell"`
	Negatinp    *NegatInp       `yaml:"negatinp"`
	Wcapping    *WcappingUnion  `yaml:"wcapping"`
	Quadrupl    *Quadrupl       `yaml:"quadrupl"`
	Breaking    *BreakingUnion  `yaml:"breaking"`
	Friction    *FrictionUnion  `yaml:"friction"`
	Triad       *TriadUnion     `yaml:"triad"`
	Vegetation  *Vegetation     `yaml:"vegetation"`
	Mud         *Mud            `yaml:"mud"`
	Sice        *SiceUnion      `yaml:"sice"`
	Turbulence  *Turbulence     `yaml:"turbulence"`
	Bragg       *BraggUnion     `yaml:"bragg"`
	Limiter     *Limiter        `yaml:"limiter"`
	Obstacles   []ObstacleUnion `yaml:"obstacle"`
	Setup       *Setup          `yaml:"setup"`
	Diffraction *Diffraction    `yaml:"diffraction"`
	Surfbeat    *Surfbeat       `yaml:"surfbeat"`
	Scat        *Scat           `yaml:"scat"`
	Deactivate  []Off           `yaml:"deactivate"`
}

// sswellName reports the swell dissipation formulation for log messages.
func sswellName(s Sswell) string {
	switch s.(type) {
	case *SswellRogers:
		return "ROGERS"
	case *SswellArdhuin:
		return "ARDHUIN"
	case *SswellZieger:
		return "ZIEGER"
	default:
		return "UNKNOWN"
	}
}

// Validate checks each prescribed member and warns when NEGATINP is used
// without the SSWELL ZIEGER formulation it is intended for.
func (g *Physics) Validate() error {
	if g.Negatinp != nil {
		if err := g.Negatinp.Validate(); err != nil {
			return fmt.Errorf("negatinp: %w", err)
		}
		if g.Sswell == nil {
			slog.Warn("the negative wind input NEGATINP is only intended to use with " +
				"the swell dissipation SSWELL ZIEGER but no SSWELL has been specified")
		} else if _, ok := g.Sswell.Sswell.(*SswellZieger); !ok {
			slog.Warn("the negative wind input NEGATINP is only intended to use with "+
				"the swell dissipation SSWELL ZIEGER",
				"sswell", sswellName(g.Sswell.Sswell))
		}
	}
	if g.Gen != nil {
		if err := validateMember("gen", g.Gen.Gen); err != nil {
			return err
		}
	}
	if g.Sswell != nil {
		if err := validateMember("sswell", g.Sswell.Sswell); err != nil {
			return err
		}
	}
	if g.Wcapping != nil {
		if err := validateMember("wcapping", g.Wcapping.Wcapping); err != nil {
			return err
		}
	}
	if g.Quadrupl != nil {
		if err := g.Quadrupl.Validate(); err != nil {
			return fmt.Errorf("quadrupl: %w", err)
		}
	}
	if g.Breaking != nil {
		if err := validateMember("breaking", g.Breaking.Breaking); err != nil {
			return err
		}
	}
	if g.Friction != nil {
		if err := validateMember("friction", g.Friction.Friction); err != nil {
			return err
		}
	}
	if g.Triad != nil {
		if err := validateMember("triad", g.Triad.Triad); err != nil {
			return err
		}
	}
	if g.Sice != nil {
		if err := validateMember("sice", g.Sice.Sice); err != nil {
			return err
		}
	}
	if g.Bragg != nil {
		if err := validateMember("bragg", g.Bragg.Bragg); err != nil {
			return err
		}
	}
	for i, obs := range g.Obstacles {
		if err := validateMember(fmt.Sprintf("obstacle[%d]", i), obs.ObstacleCmd); err != nil {
			return err
		}
	}
	if g.Vegetation != nil {
		if err := g.Vegetation.Validate(); err != nil {
			return fmt.Errorf("vegetation: %w", err)
		}
	}
	if g.Turbulence != nil {
		if err := g.Turbulence.Validate(); err != nil {
			return fmt.Errorf("turbulence: %w", err)
		}
	}
	if g.Surfbeat != nil {
		if err := g.Surfbeat.Validate(); err != nil {
			return fmt.Errorf("surfbeat: %w", err)
		}
	}
	if g.Scat != nil {
		if err := g.Scat.Validate(); err != nil {
			return fmt.Errorf("scat: %w", err)
		}
	}
	for i, off := range g.Deactivate {
		if err := off.Validate(); err != nil {
			return fmt.Errorf("deactivate[%d]: %w", i, err)
		}
	}
	return nil
}

// Render writes the physics commands in their canonical order, one per
// paragraph.
func (g *Physics) Render() string {
	var members []render.Renderer
	if g.Gen != nil {
		members = append(members, g.Gen)
	}
	if g.Sswell != nil {
		members = append(members, g.Sswell)
	}
	if g.Negatinp != nil {
		members = append(members, g.Negatinp)
	}
	if g.Wcapping != nil {
		members = append(members, g.Wcapping)
	}
	if g.Quadrupl != nil {
		members = append(members, g.Quadrupl)
	}
	if g.Breaking != nil {
		members = append(members, g.Breaking)
	}
	if g.Friction != nil {
		members = append(members, g.Friction)
	}
	if g.Triad != nil {
		members = append(members, g.Triad)
	}
	if g.Vegetation != nil {
		members = append(members, g.Vegetation)
	}
	if g.Mud != nil {
		members = append(members, g.Mud)
	}
	if g.Sice != nil {
		members = append(members, g.Sice)
	}
	if g.Turbulence != nil {
		members = append(members, g.Turbulence)
	}
	if g.Bragg != nil {
		members = append(members, g.Bragg)
	}
	if g.Limiter != nil {
		members = append(members, g.Limiter)
	}
	for _, obs := range g.Obstacles {
		members = append(members, obs)
	}
	if g.Setup != nil {
		members = append(members, g.Setup)
	}
	if g.Diffraction != nil {
		members = append(members, g.Diffraction)
	}
	if g.Surfbeat != nil {
		members = append(members, g.Surfbeat)
	}
	if g.Scat != nil {
		members = append(members, g.Scat)
	}
	for _, off := range g.Deactivate {
		members = append(members, off)
	}
	return renderGroup(members)
}

// Output groups the output location and write commands. The members are
// checked for consistency:
//
//   - the sname of each location component must be unique
//   - the sname a write component refers to must be defined
//   - BLOCK may only refer to a FRAME or GROUP location
//   - ISOLINE requires the RAY it refers to by rname
//   - NGRID and NESTOUT must be defined together with the same sname
type Output struct {
	Frame         *Frame          `yaml:"frame"`
	Group         *Group          `yaml:"group"`
	Curves        []*Curve        `yaml:"curve"`
	Ray           *Ray            `yaml:"ray"`
	Isoline       *Isoline        `yaml:"isoline"`
	Points        *PointsLocUnion `yaml:"points"`
	NGrid         *NGridUnion     `yaml:"ngrid"`
	Quantities    []Quantity      `yaml:"quantity"`
	OutputOptions *OutputOptions  `yaml:"output_options"`
	Blocks        []*Block        `yaml:"block"`
	Table         *Table          `yaml:"table"`
	SpecOut       *SpecOut        `yaml:"specout"`
	NestOut       *NestOut        `yaml:"nestout"`
	Test          *Test           `yaml:"test"`
}

// locations returns the prescribed location components in render order.
func (g *Output) locations() []Location {
	var locs []Location
	if g.Frame != nil {
		locs = append(locs, g.Frame)
	}
	if g.Group != nil {
		locs = append(locs, g.Group)
	}
	for _, c := range g.Curves {
		locs = append(locs, c)
	}
	if g.Isoline != nil {
		locs = append(locs, g.Isoline)
	}
	if g.Points != nil {
		locs = append(locs, g.Points.Location)
	}
	if g.NGrid != nil {
		locs = append(locs, g.NGrid.NGrid)
	}
	return locs
}

// writers returns the prescribed write components.
func (g *Output) writers() []Writer {
	var writers []Writer
	for _, b := range g.Blocks {
		writers = append(writers, b)
	}
	if g.Table != nil {
		writers = append(writers, g.Table)
	}
	if g.SpecOut != nil {
		writers = append(writers, g.SpecOut)
	}
	if g.NestOut != nil {
		writers = append(writers, g.NestOut)
	}
	return writers
}

// findLocation returns the location defined with the given sname, or nil.
func (g *Output) findLocation(sname string) Location {
	for _, loc := range g.locations() {
		if loc.SName() == sname {
			return loc
		}
	}
	return nil
}

// Validate checks each prescribed member and the consistency rules between
// locations and write components.
func (g *Output) Validate() error {
	if err := g.validateMembers(); err != nil {
		return err
	}

	seen := make(map[string]bool)
	for _, loc := range g.locations() {
		if seen[loc.SName()] {
			return fmt.Errorf("sname %q is used by more than one set of output locations", loc.SName())
		}
		seen[loc.SName()] = true
	}

	for _, w := range g.writers() {
		if _, ok := w.(*NestOut); ok {
			// NESTOUT pairs with NGRID, checked below.
			continue
		}
		sname := w.SName()
		if IsSpecialName(sname) {
			continue
		}
		if g.findLocation(sname) == nil {
			return fmt.Errorf("write component refers to sname %q but no location with that name is defined", sname)
		}
	}

	for _, b := range g.Blocks {
		if b.Sname == "BOTTGRID" || b.Sname == "COMPGRID" {
			continue
		}
		switch g.findLocation(b.Sname).(type) {
		case *Frame, *Group:
		default:
			return fmt.Errorf("block sname %q must refer to a FRAME or GROUP location", b.Sname)
		}
	}

	if g.Isoline != nil {
		if g.Ray == nil {
			return fmt.Errorf("isoline rname %q requires a RAY component but none is defined", g.Isoline.Rname)
		}
		if g.Ray.Rname != g.Isoline.Rname {
			return fmt.Errorf("isoline rname %q does not match the ray rname %q", g.Isoline.Rname, g.Ray.Rname)
		}
	}

	switch {
	case g.NGrid != nil && g.NestOut == nil:
		return fmt.Errorf("ngrid is specified but no nestout is defined")
	case g.NGrid == nil && g.NestOut != nil:
		return fmt.Errorf("nestout is specified but no ngrid is defined")
	case g.NGrid != nil && g.NestOut != nil:
		if g.NGrid.SName() != g.NestOut.Sname {
			return fmt.Errorf("ngrid sname %q does not match the nestout sname %q",
				g.NGrid.SName(), g.NestOut.Sname)
		}
	}
	return nil
}

func (g *Output) validateMembers() error {
	if g.Frame != nil {
		if err := g.Frame.Validate(); err != nil {
			return fmt.Errorf("frame: %w", err)
		}
	}
	if g.Group != nil {
		if err := g.Group.Validate(); err != nil {
			return fmt.Errorf("group: %w", err)
		}
	}
	for i, c := range g.Curves {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("curve[%d]: %w", i, err)
		}
	}
	if g.Ray != nil {
		if err := g.Ray.Validate(); err != nil {
			return fmt.Errorf("ray: %w", err)
		}
	}
	if g.Isoline != nil {
		if err := g.Isoline.Validate(); err != nil {
			return fmt.Errorf("isoline: %w", err)
		}
	}
	if g.Points != nil {
		if err := validateMember("points", g.Points.Location); err != nil {
			return err
		}
	}
	if g.NGrid != nil {
		if err := validateMember("ngrid", g.NGrid.NGrid); err != nil {
			return err
		}
	}
	for i, q := range g.Quantities {
		if err := q.Validate(); err != nil {
			return fmt.Errorf("quantity[%d]: %w", i, err)
		}
	}
	if g.OutputOptions != nil {
		if err := g.OutputOptions.Validate(); err != nil {
			return fmt.Errorf("output_options: %w", err)
		}
	}
	for i, b := range g.Blocks {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("block[%d]: %w", i, err)
		}
	}
	if g.Table != nil {
		if err := g.Table.Validate(); err != nil {
			return fmt.Errorf("table: %w", err)
		}
	}
	if g.SpecOut != nil {
		if err := g.SpecOut.Validate(); err != nil {
			return fmt.Errorf("specout: %w", err)
		}
	}
	if g.NestOut != nil {
		if err := g.NestOut.Validate(); err != nil {
			return fmt.Errorf("nestout: %w", err)
		}
	}
	if g.Test != nil {
		if err := g.Test.Validate(); err != nil {
			return fmt.Errorf("test: %w", err)
		}
	}
	return nil
}

// Render writes the locations first, then the write commands, one per
// paragraph.
func (g *Output) Render() string {
	var members []render.Renderer
	if g.Frame != nil {
		members = append(members, g.Frame)
	}
	if g.Group != nil {
		members = append(members, g.Group)
	}
	for _, c := range g.Curves {
		members = append(members, c)
	}
	if g.Ray != nil {
		members = append(members, g.Ray)
	}
	if g.Isoline != nil {
		members = append(members, g.Isoline)
	}
	if g.Points != nil {
		members = append(members, g.Points)
	}
	if g.NGrid != nil {
		members = append(members, g.NGrid)
	}
	for _, q := range g.Quantities {
		members = append(members, q)
	}
	if g.OutputOptions != nil {
		members = append(members, g.OutputOptions)
	}
	for _, b := range g.Blocks {
		members = append(members, b)
	}
	if g.Table != nil {
		members = append(members, g.Table)
	}
	if g.SpecOut != nil {
		members = append(members, g.SpecOut)
	}
	if g.NestOut != nil {
		members = append(members, g.NestOut)
	}
	if g.Test != nil {
		members = append(members, g.Test)
	}
	return renderGroup(members)
}

// ComputeCmd is implemented by the compute sequence components.
type ComputeCmd interface {
	render.Renderer
}

var computeRegistry = variant.New[ComputeCmd]("compute")

func init() {
	variant.Register(computeRegistry, "compute", func(c Compute) ComputeCmd { return c })
	variant.Register(computeRegistry, "stat", func(c ComputeStat) ComputeCmd { return &c })
	variant.Register(computeRegistry, "nonstat", func(c ComputeNonstat) ComputeCmd { return &c })
}

// ComputeCmdUnion holds a resolved compute sequence.
type ComputeCmdUnion struct {
	ComputeCmd
}

// UnmarshalYAML resolves the compute sequence by its model_type tag.
func (u *ComputeCmdUnion) UnmarshalYAML(node *yaml.Node) error {
	c, err := computeRegistry.Resolve(node)
	if err != nil {
		return err
	}
	u.ComputeCmd = c
	return nil
}

// Lockup closes the command file with the compute sequence and the final
// STOP command:
//
//	COMPUTE ...
//	HOTFILE ...
//	COMPUTE ...
//	STOP
type Lockup struct {
	Compute ComputeCmdUnion `yaml:"compute"`
}

// Validate requires a compute sequence.
func (g *Lockup) Validate() error {
	if g.Compute.ComputeCmd == nil {
		return fmt.Errorf("compute is required")
	}
	return validateMember("compute", g.Compute.ComputeCmd)
}

// Cmd renders the compute commands followed by STOP.
func (g *Lockup) Cmd() []string {
	return append(g.Compute.Cmd(), Stop{}.Cmd()...)
}
