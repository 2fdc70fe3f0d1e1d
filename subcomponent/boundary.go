package subcomponent

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/swanconfig/render"
	"github.com/c360studio/swanconfig/types"
	"github.com/c360studio/swanconfig/variant"
)

// Location places boundary data on the grid: either a full SIDE or an
// explicit SEGMENT of points.
type Location interface {
	Render() string
}

var locationRegistry = variant.New[Location]("boundary location")

func init() {
	variant.Register(locationRegistry, "side", func(s Side) Location { return s })
	variant.Register(locationRegistry, "segment", func(s Segment) Location { return s })
}

// LocationUnion holds a resolved boundary location.
type LocationUnion struct {
	Location
}

// UnmarshalYAML resolves the location by its model_type tag.
func (u *LocationUnion) UnmarshalYAML(node *yaml.Node) error {
	loc, err := locationRegistry.Resolve(node)
	if err != nil {
		return err
	}
	u.Location = loc
	return nil
}

// Side renders "SIDE NORTH|NW|...|NE CCW|CLOCKWISE". Not valid with
// curvilinear grids.
type Side struct {
	Side      types.Side `yaml:"side"`
	Direction string     `yaml:"direction"`
}

// Validate checks the side name and traversal direction.
func (s Side) Validate() error {
	if err := s.Side.Validate(); err != nil {
		return err
	}
	switch s.Direction {
	case "", "ccw", "clockwise":
		return nil
	}
	return fmt.Errorf("direction must be ccw or clockwise, got %q", s.Direction)
}

// Render formats the side clause.
func (s Side) Render() string {
	direction := s.Direction
	if direction == "" {
		direction = "ccw"
	}
	return fmt.Sprintf("SIDE %s %s",
		strings.ToUpper(string(s.Side)), strings.ToUpper(direction))
}

// Segment renders "SEGMENT XY < [x] [y] >" or "SEGMENT IJ < [i] [j] >".
type Segment struct {
	Points PointsUnion `yaml:"points"`
}

// Render formats the segment clause.
func (s Segment) Render() string {
	// The point list starts with a line break of its own.
	return fmt.Sprintf("SEGMENT %s%s", s.Points.Kind(), s.Points.Render())
}

// Points is the XY-or-IJ union used by SEGMENT and TEST.
type Points interface {
	Render() string
	Size() int
}

var pointsRegistry = variant.New[Points]("points")

func init() {
	variant.Register(pointsRegistry, "xy", func(p XY) Points { return p })
	variant.Register(pointsRegistry, "ij", func(p IJ) Points { return p })
}

// PointsUnion holds a resolved point list.
type PointsUnion struct {
	Points
}

// Kind returns the rendered keyword for the point list type.
func (u PointsUnion) Kind() string {
	if _, ok := u.Points.(IJ); ok {
		return "IJ"
	}
	return "XY"
}

// UnmarshalYAML resolves the point list by its model_type tag.
func (u *PointsUnion) UnmarshalYAML(node *yaml.Node) error {
	p, err := pointsRegistry.Resolve(node)
	if err != nil {
		return err
	}
	u.Points = p
	return nil
}

// Data is implemented by the boundary data prescriptions of BOUNDSPEC.
type Data interface {
	Render() string
}

var dataRegistry = variant.New[Data]("boundary data")

func init() {
	variant.Register(dataRegistry, "constantpar", func(d ConstantPar) Data { return d })
	variant.Register(dataRegistry, "variablepar", func(d VariablePar) Data { return d })
	variant.Register(dataRegistry, "constantfile", func(d ConstantFile) Data { return d })
	variant.Register(dataRegistry, "variablefile", func(d VariableFile) Data { return d })
}

// DataUnion holds a resolved boundary data prescription.
type DataUnion struct {
	Data
}

// UnmarshalYAML resolves the data prescription by its model_type tag.
func (u *DataUnion) UnmarshalYAML(node *yaml.Node) error {
	d, err := dataRegistry.Resolve(node)
	if err != nil {
		return err
	}
	u.Data = d
	return nil
}

// ConstantPar renders "CONSTANT PAR [hs] [per] [dir] ([dd])": one parametric
// spectrum applied over the whole boundary.
type ConstantPar struct {
	Hs  float64  `yaml:"hs"`
	Per float64  `yaml:"per"`
	Dir float64  `yaml:"dir"`
	Dd  *float64 `yaml:"dd"`
}

// Validate checks the parametric spectrum values.
func (d ConstantPar) Validate() error {
	if d.Hs <= 0 {
		return fmt.Errorf("hs must be positive")
	}
	if d.Per <= 0 {
		return fmt.Errorf("per must be positive")
	}
	if d.Dir < -360 || d.Dir > 360 {
		return fmt.Errorf("dir must be in the range [-360, 360]")
	}
	if d.Dd != nil && (*d.Dd < 0 || *d.Dd > 360) {
		return fmt.Errorf("dd must be in the range [0, 360]")
	}
	return nil
}

// Render formats the constant parametric clause.
func (d ConstantPar) Render() string {
	return render.NewLine("CONSTANT PAR").
		Float("hs", d.Hs).
		Float("per", d.Per).
		Float("dir", d.Dir).
		FloatOpt("dd", d.Dd).
		String()
}

// VariablePar renders "VARIABLE PAR < [len] [hs] [per] [dir] [dd] >": a
// parametric spectrum per distance along the boundary.
type VariablePar struct {
	Hs   []float64 `yaml:"hs"`
	Per  []float64 `yaml:"per"`
	Dir  []float64 `yaml:"dir"`
	Dd   []float64 `yaml:"dd"`
	Dist []float64 `yaml:"len"`
}

// Validate requires all parameter lists to align with the distances.
func (d VariablePar) Validate() error {
	for name, values := range map[string][]float64{
		"hs": d.Hs, "per": d.Per, "dir": d.Dir, "dd": d.Dd,
	} {
		if len(values) != len(d.Dist) {
			return fmt.Errorf("size of len and %s must be the same", name)
		}
	}
	return nil
}

// Render formats one continuation line per boundary point.
func (d VariablePar) Render() string {
	repr := "VARIABLE PAR"
	for i := range d.Dist {
		repr += fmt.Sprintf(" &\n\tlen=%s hs=%s per=%s dir=%s dd=%s",
			render.Float(d.Dist[i]), render.Float(d.Hs[i]),
			render.Float(d.Per[i]), render.Float(d.Dir[i]), render.Float(d.Dd[i]))
	}
	return repr
}

// ConstantFile renders "CONSTANT FILE 'fname' [seq]": spectra from a single
// TPAR or spectral file.
type ConstantFile struct {
	Fname string `yaml:"fname"`
	Seq   *int   `yaml:"seq"`
}

// Validate checks the file name length and sequence number.
func (d ConstantFile) Validate() error {
	if d.Fname == "" || len(d.Fname) > 36 {
		return fmt.Errorf("fname is required and must be at most 36 characters")
	}
	if d.Seq != nil && *d.Seq < 1 {
		return fmt.Errorf("seq must be at least 1")
	}
	return nil
}

// Render formats the constant file clause.
func (d ConstantFile) Render() string {
	repr := fmt.Sprintf("CONSTANT FILE fname='%s'", d.Fname)
	if d.Seq != nil {
		repr += fmt.Sprintf(" seq=%d", *d.Seq)
	}
	return repr
}

// VariableFile renders "VARIABLE FILE < [len] 'fname' [seq] >": one spectral
// file per distance along the boundary.
type VariableFile struct {
	Fname []string  `yaml:"fname"`
	Seq   []int     `yaml:"seq"`
	Dist  []float64 `yaml:"len"`
}

// Validate requires the file list (and seq, when given) to align with the
// distances.
func (d VariableFile) Validate() error {
	if len(d.Fname) != len(d.Dist) {
		return fmt.Errorf("size of len and fname must be the same")
	}
	if d.Seq != nil && len(d.Seq) != len(d.Dist) {
		return fmt.Errorf("size of len and seq must be the same")
	}
	for _, fname := range d.Fname {
		if len(fname) > 36 {
			return fmt.Errorf("fname %q must be at most 36 characters", fname)
		}
	}
	return nil
}

// Render formats one continuation line per boundary point.
func (d VariableFile) Render() string {
	repr := "VARIABLE FILE"
	for i := range d.Dist {
		seq := 1
		if d.Seq != nil {
			seq = d.Seq[i]
		}
		repr += fmt.Sprintf(" &\n\tlen=%s fname='%s' seq=%d",
			render.Float(d.Dist[i]), d.Fname[i], seq)
	}
	return repr
}

// InitialKind is implemented by the initial-condition prescriptions of the
// INITIAL command.
type InitialKind interface {
	Render() string
}

var initialRegistry = variant.New[InitialKind]("initial conditions")

func init() {
	variant.Register(initialRegistry, "default", func(d Default) InitialKind { return d })
	variant.Register(initialRegistry, "zero", func(d Zero) InitialKind { return d })
	variant.Register(initialRegistry, "hotsingle", func(d HotSingle) InitialKind { return d })
	variant.Register(initialRegistry, "hotmultiple", func(d HotMultiple) InitialKind { return d })
	initialRegistry.SetDefault("default")
}

// InitialUnion holds a resolved initial-condition prescription.
type InitialUnion struct {
	InitialKind
}

// UnmarshalYAML resolves the initial conditions by their model_type tag.
func (u *InitialUnion) UnmarshalYAML(node *yaml.Node) error {
	k, err := initialRegistry.Resolve(node)
	if err != nil {
		return err
	}
	u.InitialKind = k
	return nil
}

// Default selects initial spectra computed from the local wind.
type Default struct{}

// Render formats the DEFAULT keyword.
func (d Default) Render() string { return "DEFAULT" }

// Zero selects zero initial spectral densities.
type Zero struct{}

// Render formats the ZERO keyword.
func (d Zero) Render() string { return "ZERO" }

// hotFormat validates the hotfile format option shared by HOTSTART kinds.
func hotFormat(format string) (string, error) {
	switch format {
	case "":
		return "FREE", nil
	case "free", "unformatted":
		return strings.ToUpper(format), nil
	}
	return "", fmt.Errorf("format must be free or unformatted, got %q", format)
}

// HotSingle reads the initial wave field from a single concatenated
// hotfile.
type HotSingle struct {
	Fname  string `yaml:"fname"`
	Format string `yaml:"format"`
}

// Validate checks the file name and format.
func (d HotSingle) Validate() error {
	if d.Fname == "" || len(d.Fname) > 36 {
		return fmt.Errorf("fname is required and must be at most 36 characters")
	}
	_, err := hotFormat(d.Format)
	return err
}

// Render formats the HOTSTART SINGLE clause.
func (d HotSingle) Render() string {
	format, _ := hotFormat(d.Format)
	return fmt.Sprintf("HOTSTART SINGLE fname='%s' %s", d.Fname, format)
}

// HotMultiple reads the initial wave field from per-processor hotfiles of a
// previous parallel run.
type HotMultiple struct {
	Fname  string `yaml:"fname"`
	Format string `yaml:"format"`
}

// Validate checks the file name and format.
func (d HotMultiple) Validate() error {
	return HotSingle(d).Validate()
}

// Render formats the HOTSTART MULTIPLE clause.
func (d HotMultiple) Render() string {
	format, _ := hotFormat(d.Format)
	return fmt.Sprintf("HOTSTART MULTIPLE fname='%s' %s", d.Fname, format)
}
