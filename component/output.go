package component

import (
	"fmt"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/swanconfig/render"
	"github.com/c360studio/swanconfig/subcomponent"
	"github.com/c360studio/swanconfig/types"
	"github.com/c360studio/swanconfig/variant"
)

// specialNames are location names with a fixed meaning in the output
// commands. They cannot be redefined by a location component and only BLOCK
// may write to them.
var specialNames = []string{"BOTTGRID", "COMPGRID", "BOUNDARY", "BOUND_"}

// IsSpecialName reports whether sname is one of the reserved location names.
func IsSpecialName(sname string) bool {
	for _, name := range specialNames {
		if sname == name {
			return true
		}
	}
	return false
}

// validateSname enforces the shared location name rules.
func validateSname(sname string) error {
	if sname == "" || len(sname) > 8 {
		return fmt.Errorf("sname is required and must be at most 8 characters")
	}
	if IsSpecialName(sname) {
		return fmt.Errorf("sname %q is a reserved output name", sname)
	}
	return nil
}

// Location is implemented by the output location components. Each defines a
// named set of points that write components refer to by name.
type Location interface {
	render.Renderer
	// SName returns the location name assigned by the component.
	SName() string
}

// Frame defines output locations on a rectangular uniform grid:
// FRAME 'sname' [xpfr] [ypfr] [alpfr] [xlenfr] [ylenfr] [mxfr] [myfr].
type Frame struct {
	Sname string                   `yaml:"sname"`
	Grid  subcomponent.GridRegular `yaml:"grid"`
}

func (c *Frame) SName() string { return c.Sname }

// Validate pins the grid variable suffix to "fr" and checks the name.
func (c *Frame) Validate() error {
	if err := validateSname(c.Sname); err != nil {
		return err
	}
	c.Grid.Suffix = "fr"
	return c.Grid.Validate()
}

// Cmd renders the FRAME command.
func (c *Frame) Cmd() []string {
	return []string{fmt.Sprintf("FRAME sname=%s %s", render.Quote(c.Sname), c.Grid.Render())}
}

// Group defines output locations on a rectangular subset of the
// computational grid: GROUP 'sname' SUBGRID [ix1] [iy1] [ix2] [iy2].
// Not available for unstructured grids.
type Group struct {
	Sname string `yaml:"sname"`
	Ix1   int    `yaml:"ix1"`
	Iy1   int    `yaml:"iy1"`
	Ix2   int    `yaml:"ix2"`
	Iy2   int    `yaml:"iy2"`
}

func (c *Group) SName() string { return c.Sname }

// Validate checks the name and index ranges.
func (c *Group) Validate() error {
	if err := validateSname(c.Sname); err != nil {
		return err
	}
	if c.Ix1 < 0 || c.Iy1 < 0 || c.Ix2 < 0 || c.Iy2 < 0 {
		return fmt.Errorf("grid indices must not be negative")
	}
	return nil
}

// Cmd renders the GROUP command.
func (c *Group) Cmd() []string {
	return []string{fmt.Sprintf("GROUP sname=%s SUBGRID ix1=%d iy1=%d ix2=%d iy2=%d",
		render.Quote(c.Sname), c.Ix1, c.Iy1, c.Ix2, c.Iy2)}
}

// Curve defines output locations along a polyline:
// CURVE 'sname' [xp1] [yp1] < [int] [xp] [yp] >.
type Curve struct {
	Sname string    `yaml:"sname"`
	Xp1   float64   `yaml:"xp1"`
	Yp1   float64   `yaml:"yp1"`
	Npts  []int     `yaml:"npts"`
	Xp    []float64 `yaml:"xp"`
	Yp    []float64 `yaml:"yp"`
}

func (c *Curve) SName() string { return c.Sname }

// Validate requires one segment resolution per curve point.
func (c *Curve) Validate() error {
	if err := validateSname(c.Sname); err != nil {
		return err
	}
	if len(c.Npts) == 0 {
		return fmt.Errorf("at least one curve segment is required")
	}
	if len(c.Xp) != len(c.Npts) || len(c.Yp) != len(c.Npts) {
		return fmt.Errorf("npts, xp and yp must have the same size")
	}
	return nil
}

// Cmd renders the CURVE command with one continuation line per segment.
func (c *Curve) Cmd() []string {
	repr := fmt.Sprintf("CURVE sname=%s xp1=%s yp1=%s",
		render.Quote(c.Sname), render.Float(c.Xp1), render.Float(c.Yp1))
	for i := range c.Npts {
		repr += fmt.Sprintf("\nint=%d xp=%s yp=%s",
			c.Npts[i], render.Float(c.Xp[i]), render.Float(c.Yp[i]))
	}
	return []string{repr}
}

// Ray defines a set of master rays from which an ISOLINE traces a depth
// contour: RAY 'rname' [xp1] [yp1] [xq1] [yq1] < [int] [xp] [yp] [xq] [yq] >.
type Ray struct {
	Rname string    `yaml:"rname"`
	Xp1   float64   `yaml:"xp1"`
	Yp1   float64   `yaml:"yp1"`
	Xq1   float64   `yaml:"xq1"`
	Yq1   float64   `yaml:"yq1"`
	Npts  []int     `yaml:"npts"`
	Xp    []float64 `yaml:"xp"`
	Yp    []float64 `yaml:"yp"`
	Xq    []float64 `yaml:"xq"`
	Yq    []float64 `yaml:"yq"`
}

// Validate requires one ray resolution per master ray.
func (c *Ray) Validate() error {
	if c.Rname == "" || len(c.Rname) > 8 {
		return fmt.Errorf("rname is required and must be at most 8 characters")
	}
	if len(c.Npts) == 0 {
		return fmt.Errorf("at least one ray segment is required")
	}
	if len(c.Xp) != len(c.Npts) || len(c.Yp) != len(c.Npts) ||
		len(c.Xq) != len(c.Npts) || len(c.Yq) != len(c.Npts) {
		return fmt.Errorf("npts, xp, yp, xq and yq must have the same size")
	}
	return nil
}

// Cmd renders the RAY command with one continuation line per master ray.
func (c *Ray) Cmd() []string {
	repr := fmt.Sprintf("RAY rname=%s xp1=%s yp1=%s xq1=%s yq1=%s",
		render.Quote(c.Rname), render.Float(c.Xp1), render.Float(c.Yp1),
		render.Float(c.Xq1), render.Float(c.Yq1))
	for i := range c.Npts {
		repr += fmt.Sprintf("\nint=%d xp=%s yp=%s xq=%s yq=%s",
			c.Npts[i], render.Float(c.Xp[i]), render.Float(c.Yp[i]),
			render.Float(c.Xq[i]), render.Float(c.Yq[i]))
	}
	return []string{repr}
}

// Isoline defines output locations along a depth or bottom contour crossed
// by a set of rays: ISOLINE 'sname' 'rname' DEPTH|BOTTOM [dep].
type Isoline struct {
	Sname   string  `yaml:"sname"`
	Rname   string  `yaml:"rname"`
	DepType string  `yaml:"dep_type"`
	Dep     float64 `yaml:"dep"`
}

func (c *Isoline) SName() string { return c.Sname }

// Validate checks the names and contour type.
func (c *Isoline) Validate() error {
	if err := validateSname(c.Sname); err != nil {
		return err
	}
	if c.Rname == "" {
		return fmt.Errorf("rname is required")
	}
	switch c.DepType {
	case "", "depth", "bottom":
		return nil
	}
	return fmt.Errorf("dep_type must be depth or bottom, got %q", c.DepType)
}

// Cmd renders the ISOLINE command.
func (c *Isoline) Cmd() []string {
	depType := c.DepType
	if depType == "" {
		depType = "depth"
	}
	return []string{fmt.Sprintf("ISOLINE sname=%s rname=%s %s dep=%s",
		render.Quote(c.Sname), render.Quote(c.Rname),
		strings.ToUpper(depType), render.Float(c.Dep))}
}

// Points defines isolated output locations: POINTS 'sname' < [xp] [yp] >.
type Points struct {
	Sname string    `yaml:"sname"`
	Xp    []float64 `yaml:"xp"`
	Yp    []float64 `yaml:"yp"`
}

func (c *Points) SName() string { return c.Sname }

// Validate requires matching coordinate lists.
func (c *Points) Validate() error {
	if err := validateSname(c.Sname); err != nil {
		return err
	}
	if len(c.Xp) == 0 || len(c.Xp) != len(c.Yp) {
		return fmt.Errorf("xp and yp must be non-empty and the same size")
	}
	return nil
}

// Cmd renders the POINTS command with one continuation line per point.
func (c *Points) Cmd() []string {
	repr := fmt.Sprintf("POINTS sname=%s", render.Quote(c.Sname))
	for i := range c.Xp {
		repr += fmt.Sprintf("\nxp=%s yp=%s", render.Float(c.Xp[i]), render.Float(c.Yp[i]))
	}
	return []string{repr}
}

// PointsFile reads isolated output locations from file:
// POINTS 'sname' FILE 'fname'.
type PointsFile struct {
	Sname string `yaml:"sname"`
	Fname string `yaml:"fname"`
}

func (c *PointsFile) SName() string { return c.Sname }

// Validate checks the name and file name.
func (c *PointsFile) Validate() error {
	if err := validateSname(c.Sname); err != nil {
		return err
	}
	if c.Fname == "" || len(c.Fname) > 36 {
		return fmt.Errorf("fname is required and must be at most 36 characters")
	}
	return nil
}

// Cmd renders the POINTS FILE command.
func (c *PointsFile) Cmd() []string {
	return []string{fmt.Sprintf("POINTS sname=%s fname=%s",
		render.Quote(c.Sname), render.Quote(c.Fname))}
}

var pointsLocRegistry = variant.New[Location]("points")

func init() {
	variant.Register(pointsLocRegistry, "points", func(c Points) Location { return &c })
	variant.Register(pointsLocRegistry, "points_file", func(c PointsFile) Location { return &c })
	pointsLocRegistry.SetDefault("points")
}

// PointsLocUnion holds a resolved points location, either inline coordinates
// or a points file.
type PointsLocUnion struct {
	Location
}

// UnmarshalYAML resolves the points location by its model_type tag.
func (u *PointsLocUnion) UnmarshalYAML(node *yaml.Node) error {
	c, err := pointsLocRegistry.Resolve(node)
	if err != nil {
		return err
	}
	u.Location = c
	return nil
}

// NGrid is implemented by the nested grid boundary commands NGRID and
// NGRID UNSTRUCTURED.
type NGrid interface {
	Location
}

var ngridRegistry = variant.New[NGrid]("ngrid")

func init() {
	variant.Register(ngridRegistry, "ngrid", func(c NGridRegular) NGrid { return &c })
	variant.Register(ngridRegistry, "unstructured", func(c NGridUnstructured) NGrid { return &c })
}

// NGridUnion holds a resolved nested grid boundary command.
type NGridUnion struct {
	NGrid
}

// UnmarshalYAML resolves the nested grid by its model_type tag.
func (u *NGridUnion) UnmarshalYAML(node *yaml.Node) error {
	c, err := ngridRegistry.Resolve(node)
	if err != nil {
		return err
	}
	u.NGrid = c
	return nil
}

// NGridRegular defines the boundary of a regular nested grid:
// NGRID 'sname' [xpn] [ypn] [alpn] [xlenn] [ylenn] [mxn] [myn].
type NGridRegular struct {
	Sname string                   `yaml:"sname"`
	Grid  subcomponent.GridRegular `yaml:"grid"`
}

func (c *NGridRegular) SName() string { return c.Sname }

// Validate pins the grid variable suffix to "n" and checks the name.
func (c *NGridRegular) Validate() error {
	if err := validateSname(c.Sname); err != nil {
		return err
	}
	c.Grid.Suffix = "n"
	return c.Grid.Validate()
}

// Cmd renders the NGRID command.
func (c *NGridRegular) Cmd() []string {
	return []string{fmt.Sprintf("NGRID sname=%s %s", render.Quote(c.Sname), c.Grid.Render())}
}

// NGridUnstructured defines the boundary of an unstructured nested grid:
// NGRID 'sname' UNSTRUCTURED TRIANGLE|EASYMESH 'fname'.
type NGridUnstructured struct {
	Sname string `yaml:"sname"`
	Kind  string `yaml:"kind"`
	Fname string `yaml:"fname"`
}

func (c *NGridUnstructured) SName() string { return c.Sname }

// Validate checks the name, mesh kind and file name.
func (c *NGridUnstructured) Validate() error {
	if err := validateSname(c.Sname); err != nil {
		return err
	}
	switch c.Kind {
	case "", "triangle", "easymesh":
	default:
		return fmt.Errorf("kind must be triangle or easymesh, got %q", c.Kind)
	}
	if c.Fname == "" || len(c.Fname) > 36 {
		return fmt.Errorf("fname is required and must be at most 36 characters")
	}
	return nil
}

// Cmd renders the NGRID UNSTRUCTURED command.
func (c *NGridUnstructured) Cmd() []string {
	kind := c.Kind
	if kind == "" {
		kind = "triangle"
	}
	return []string{fmt.Sprintf("NGRID sname=%s UNSTRUCTURED %s fname=%s",
		render.Quote(c.Sname), strings.ToUpper(kind), render.Quote(c.Fname))}
}

// Quantity overrides properties of the output quantities:
// QUANTITY < output > 'short' [power] 'ref' [fswell] [fmin] [fmax] [hexp]
// [excv] FRAME|PROBLEMCOORD.
type Quantity struct {
	Output []types.OutputQuantity `yaml:"output"`
	Short  *string                `yaml:"short"`
	Power  *float64               `yaml:"power"`
	Ref    *string                `yaml:"ref"`
	Fswell *float64               `yaml:"fswell"`
	Fmin   *float64               `yaml:"fmin"`
	Fmax   *float64               `yaml:"fmax"`
	Hexp   *float64               `yaml:"hexp"`
	Excv   *float64               `yaml:"excv"`
	Coord  *string                `yaml:"coord"`
}

// Validate checks the quantity names and frequency range.
func (c Quantity) Validate() error {
	if len(c.Output) == 0 {
		return fmt.Errorf("at least one output quantity is required")
	}
	if err := types.ValidateQuantities(c.Output); err != nil {
		return err
	}
	if c.Fmin != nil && c.Fmax != nil && *c.Fmin >= *c.Fmax {
		return fmt.Errorf("fmin must be smaller than fmax")
	}
	if c.Coord != nil {
		switch *c.Coord {
		case "frame", "problem":
		default:
			return fmt.Errorf("coord must be frame or problem, got %q", *c.Coord)
		}
	}
	return nil
}

// Cmd renders the QUANTITY command.
func (c Quantity) Cmd() []string {
	tokens := make([]string, len(c.Output))
	for i, q := range c.Output {
		tokens[i] = strings.ToUpper(string(q))
	}
	l := render.NewLine("QUANTITY " + strings.Join(tokens, " ")).
		StrOpt("short", c.Short).
		FloatOpt("power", c.Power).
		StrOpt("ref", c.Ref).
		FloatOpt("fswell", c.Fswell).
		FloatOpt("fmin", c.Fmin).
		FloatOpt("fmax", c.Fmax).
		FloatOpt("hexp", c.Hexp).
		FloatOpt("excv", c.Excv)
	if c.Coord != nil {
		if *c.Coord == "frame" {
			l.Keyword("frame")
		} else {
			l.Keyword("problemcoord")
		}
	}
	return []string{l.String()}
}

// OutputOptions overrides the format of the output files:
// OUTPUT OPTIONS 'comment' (TABLE [field]) (BLOCK [ndec] [len]) (SPEC [ndec]).
type OutputOptions struct {
	Comment   *string `yaml:"comment"`
	Field     *int    `yaml:"field"`
	NdecBlock *int    `yaml:"ndec_block"`
	Len       *int    `yaml:"len"`
	NdecSpec  *int    `yaml:"ndec_spec"`
}

// Validate checks the column and decimal ranges.
func (c OutputOptions) Validate() error {
	if c.Comment != nil && len(*c.Comment) != 1 {
		return fmt.Errorf("comment must be a single character")
	}
	if c.Field != nil && (*c.Field < 4 || *c.Field > 9999) {
		return fmt.Errorf("field must be in the range [4, 9999]")
	}
	for name, v := range map[string]*int{"ndec_block": c.NdecBlock, "ndec_spec": c.NdecSpec} {
		if v != nil && (*v < 0 || *v > 9) {
			return fmt.Errorf("%s must be in the range [0, 9]", name)
		}
	}
	return nil
}

// Cmd renders the OUTPUT OPTIONS command.
func (c OutputOptions) Cmd() []string {
	repr := "OUTPUT OPTIONS"
	if c.Comment != nil {
		repr += fmt.Sprintf(" comment=%s", render.Quote(*c.Comment))
	}
	if c.Field != nil {
		repr += fmt.Sprintf(" TABLE field=%d", *c.Field)
	}
	if c.NdecBlock != nil || c.Len != nil {
		repr += " BLOCK"
		if c.NdecBlock != nil {
			repr += fmt.Sprintf(" ndec=%d", *c.NdecBlock)
		}
		if c.Len != nil {
			repr += fmt.Sprintf(" len=%d", *c.Len)
		}
	}
	if c.NdecSpec != nil {
		repr += fmt.Sprintf(" SPEC ndec=%d", *c.NdecSpec)
	}
	return []string{repr}
}

// Writer is implemented by the write components. Each writes quantities for
// a named set of output locations.
type Writer interface {
	render.Renderer
	// SName returns the location name the writer refers to.
	SName() string
}

// Block writes spatial distributions on a FRAME or GROUP location:
// BLOCK 'sname' HEADER|NOHEADER 'fname' (LAYOUT [idla]) < output > [unit]
// (OUTPUT [tbegblk] [deltblk] SEC|MIN|HR|DAY).
type Block struct {
	Sname  string                      `yaml:"sname"`
	Header *bool                       `yaml:"header"`
	Fname  string                      `yaml:"fname"`
	Idla   *types.IDLA                 `yaml:"idla"`
	Output []types.OutputQuantity      `yaml:"output"`
	Unit   *string                     `yaml:"unit"`
	Times  *subcomponent.TimeRangeOpen `yaml:"times"`
}

func (c *Block) SName() string { return c.Sname }

// Validate checks the target name, file and quantities. Reserved names are
// allowed here since BLOCK is the one writer that may use them.
func (c *Block) Validate() error {
	if c.Sname == "" {
		return fmt.Errorf("sname is required")
	}
	if c.Fname == "" || len(c.Fname) > 36 {
		return fmt.Errorf("fname is required and must be at most 36 characters")
	}
	if len(c.Output) == 0 {
		return fmt.Errorf("at least one output quantity is required")
	}
	if err := types.ValidateQuantities(c.Output); err != nil {
		return err
	}
	if c.Idla != nil {
		if err := c.Idla.Validate(); err != nil {
			return err
		}
	}
	if c.Times != nil {
		c.Times.Suffix = "blk"
	}
	return nil
}

// Cmd renders the BLOCK command.
func (c *Block) Cmd() []string {
	repr := fmt.Sprintf("BLOCK sname=%s", render.Quote(c.Sname))
	if c.Header != nil {
		if *c.Header {
			repr += " HEADER"
		} else {
			repr += " NOHEADER"
		}
	}
	repr += fmt.Sprintf(" fname=%s", render.Quote(c.Fname))
	if c.Idla != nil {
		repr += fmt.Sprintf(" LAYOUT idla=%d", int(*c.Idla))
	}
	for _, q := range c.Output {
		if len(c.Output) > 1 {
			repr += "\n"
		} else {
			repr += " "
		}
		repr += strings.ToUpper(string(q))
	}
	if c.Unit != nil {
		repr += "\nunit=" + *c.Unit
	}
	if c.Times != nil {
		repr += "\nOUTPUT " + c.Times.Render()
	}
	return []string{repr}
}

// Table writes quantities at isolated locations:
// TABLE 'sname' HEADER|NOHEADER|INDEXED 'fname' < output >
// (OUTPUT [tbegtbl] [delttbl] SEC|MIN|HR|DAY).
type Table struct {
	Sname  string                      `yaml:"sname"`
	Format *string                     `yaml:"format"`
	Fname  string                      `yaml:"fname"`
	Output []types.OutputQuantity      `yaml:"output"`
	Times  *subcomponent.TimeRangeOpen `yaml:"times"`
}

func (c *Table) SName() string { return c.Sname }

// Validate checks the target name, format keyword, file and quantities.
func (c *Table) Validate() error {
	if c.Sname == "" {
		return fmt.Errorf("sname is required")
	}
	if c.Format != nil {
		switch *c.Format {
		case "header", "noheader", "indexed":
		default:
			return fmt.Errorf("format must be header, noheader or indexed, got %q", *c.Format)
		}
	}
	if c.Fname == "" || len(c.Fname) > 36 {
		return fmt.Errorf("fname is required and must be at most 36 characters")
	}
	if len(c.Output) == 0 {
		return fmt.Errorf("at least one output quantity is required")
	}
	if err := types.ValidateQuantities(c.Output); err != nil {
		return err
	}
	if c.Times != nil {
		c.Times.Suffix = "tbl"
	}
	return nil
}

// Cmd renders the TABLE command, one quantity per line when more than one
// is requested.
func (c *Table) Cmd() []string {
	repr := fmt.Sprintf("TABLE sname=%s", render.Quote(c.Sname))
	if c.Format != nil {
		repr += " " + strings.ToUpper(*c.Format)
	}
	repr += fmt.Sprintf(" fname=%s", render.Quote(c.Fname))
	for _, q := range c.Output {
		if len(c.Output) > 1 {
			repr += "\n"
		} else {
			repr += " "
		}
		repr += strings.ToUpper(string(q))
	}
	if c.Times != nil {
		repr += "\nOUTPUT " + c.Times.Render()
	}
	return []string{repr}
}

// SpecDim is implemented by the spectral dimension clauses SPEC1D and
// SPEC2D of SPECOUT.
type SpecDim interface {
	Render() string
}

var specDimRegistry = variant.New[SpecDim]("specout dim")

func init() {
	specDimRegistry.SetDefault("spec2d")
	variant.Register(specDimRegistry, "spec1d", func(d Spec1D) SpecDim { return d })
	variant.Register(specDimRegistry, "spec2d", func(d Spec2D) SpecDim { return d })
}

// SpecDimUnion holds a resolved spectral dimension clause.
type SpecDimUnion struct {
	SpecDim
}

// UnmarshalYAML resolves the dimension by its model_type tag.
func (u *SpecDimUnion) UnmarshalYAML(node *yaml.Node) error {
	d, err := specDimRegistry.Resolve(node)
	if err != nil {
		return err
	}
	u.SpecDim = d
	return nil
}

// Spec1D selects frequency spectra output.
type Spec1D struct{}

// Render formats the SPEC1D keyword.
func (d Spec1D) Render() string { return "SPEC1D" }

// Spec2D selects direction-frequency spectra output.
type Spec2D struct{}

// Render formats the SPEC2D keyword.
func (d Spec2D) Render() string { return "SPEC2D" }

// SpecFreq is implemented by the frequency type clauses ABS and REL of
// SPECOUT.
type SpecFreq interface {
	Render() string
}

var specFreqRegistry = variant.New[SpecFreq]("specout freq")

func init() {
	specFreqRegistry.SetDefault("abs")
	variant.Register(specFreqRegistry, "abs", func(f FreqAbs) SpecFreq { return f })
	variant.Register(specFreqRegistry, "rel", func(f FreqRel) SpecFreq { return f })
}

// SpecFreqUnion holds a resolved frequency type clause.
type SpecFreqUnion struct {
	SpecFreq
}

// UnmarshalYAML resolves the frequency type by its model_type tag.
func (u *SpecFreqUnion) UnmarshalYAML(node *yaml.Node) error {
	f, err := specFreqRegistry.Resolve(node)
	if err != nil {
		return err
	}
	u.SpecFreq = f
	return nil
}

// FreqAbs selects absolute frequency spectra (as measured in a fixed point).
type FreqAbs struct{}

// Render formats the ABS keyword.
func (f FreqAbs) Render() string { return "ABS" }

// FreqRel selects relative frequency spectra (as moving with the current).
type FreqRel struct{}

// Render formats the REL keyword.
func (f FreqRel) Render() string { return "REL" }

// SpecOut writes wave spectra at a set of locations:
// SPECOUT 'sname' SPEC1D|SPEC2D ABS|REL 'fname'
// (OUTPUT [tbegspc] [deltspc] SEC|MIN|HR|DAY).
type SpecOut struct {
	Sname string                      `yaml:"sname"`
	Dim   SpecDimUnion                `yaml:"dim"`
	Freq  SpecFreqUnion               `yaml:"freq"`
	Fname string                      `yaml:"fname"`
	Times *subcomponent.TimeRangeOpen `yaml:"times"`
}

func (c *SpecOut) SName() string { return c.Sname }

// Validate checks the target name and file.
func (c *SpecOut) Validate() error {
	if c.Sname == "" {
		return fmt.Errorf("sname is required")
	}
	if c.Fname == "" || len(c.Fname) > 36 {
		return fmt.Errorf("fname is required and must be at most 36 characters")
	}
	if c.Times != nil {
		c.Times.Suffix = "spc"
	}
	return nil
}

// Cmd renders the SPECOUT command.
func (c *SpecOut) Cmd() []string {
	dim := c.Dim.SpecDim
	if dim == nil {
		dim = Spec2D{}
	}
	freq := c.Freq.SpecFreq
	if freq == nil {
		freq = FreqAbs{}
	}
	repr := fmt.Sprintf("SPECOUT sname=%s %s %s fname=%s",
		render.Quote(c.Sname), dim.Render(), freq.Render(), render.Quote(c.Fname))
	if c.Times != nil {
		repr += " OUTPUT " + c.Times.Render()
	}
	return []string{repr}
}

// NestOut writes 2D action density spectra along a nested grid boundary
// defined by NGRID: NESTOUT 'sname' 'fname'
// (OUTPUT [tbegnst] [deltnst] SEC|MIN|HR|DAY).
type NestOut struct {
	Sname string                      `yaml:"sname"`
	Fname string                      `yaml:"fname"`
	Times *subcomponent.TimeRangeOpen `yaml:"times"`
}

func (c *NestOut) SName() string { return c.Sname }

// Validate checks the target name and file.
func (c *NestOut) Validate() error {
	if c.Sname == "" {
		return fmt.Errorf("sname is required")
	}
	if c.Fname == "" || len(c.Fname) > 36 {
		return fmt.Errorf("fname is required and must be at most 36 characters")
	}
	if c.Times != nil {
		c.Times.Suffix = "nst"
	}
	return nil
}

// Cmd renders the NESTOUT command.
func (c *NestOut) Cmd() []string {
	repr := fmt.Sprintf("NESTOUT sname=%s fname=%s", render.Quote(c.Sname), render.Quote(c.Fname))
	if c.Times != nil {
		repr += " OUTPUT " + c.Times.Render()
	}
	return []string{repr}
}

// Test writes intermediate results at a set of points for debugging the
// model setup: TEST [itest] [itrace] POINTS XY|IJ < points >
// (PAR 'fname') (S1D 'fname') (S2D 'fname').
type Test struct {
	Itest    *int                      `yaml:"itest"`
	Itrace   *int                      `yaml:"itrace"`
	Points   subcomponent.PointsUnion  `yaml:"points"`
	FnamePar *string                   `yaml:"fname_par"`
	FnameS1D *string                   `yaml:"fname_s1d"`
	FnameS2D *string                   `yaml:"fname_s2d"`
}

// Validate caps the number of test points and warns when no output file is
// requested, in which case the command has no visible effect.
func (c *Test) Validate() error {
	if c.Points.Points == nil {
		return fmt.Errorf("points is required")
	}
	if c.Points.Size() > 50 {
		return fmt.Errorf("at most 50 test points are supported, got %d", c.Points.Size())
	}
	if c.FnamePar == nil && c.FnameS1D == nil && c.FnameS2D == nil {
		slog.Warn("test command defines points but no output file")
	}
	return nil
}

// Cmd renders the TEST command. The point list starts with a line break of
// its own, so the output files land on a continuation line.
func (c *Test) Cmd() []string {
	repr := "TEST"
	if c.Itest != nil {
		repr += fmt.Sprintf(" itest=%d", *c.Itest)
	}
	if c.Itrace != nil {
		repr += fmt.Sprintf(" itrace=%d", *c.Itrace)
	}
	repr += fmt.Sprintf(" POINTS %s%s", c.Points.Kind(), c.Points.Render())
	var files []string
	if c.FnamePar != nil {
		files = append(files, "PAR fname="+render.Quote(*c.FnamePar))
	}
	if c.FnameS1D != nil {
		files = append(files, "S1D fname="+render.Quote(*c.FnameS1D))
	}
	if c.FnameS2D != nil {
		files = append(files, "S2D fname="+render.Quote(*c.FnameS2D))
	}
	repr += strings.Join(files, " ")
	return []string{repr}
}
