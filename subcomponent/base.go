package subcomponent

import "fmt"

// XY is a list of points in problem coordinates. Each pair renders on its
// own continuation line, with a trailing break so following tokens start a
// fresh line.
type XY struct {
	X   []float64 `yaml:"x"`
	Y   []float64 `yaml:"y"`
	Fmt string    `yaml:"fmt"`
}

// Size returns the number of points.
func (p XY) Size() int { return len(p.X) }

// Validate requires matching coordinate lists.
func (p XY) Validate() error {
	if len(p.X) != len(p.Y) {
		return fmt.Errorf("x and y must be the same size, got %d and %d", len(p.X), len(p.Y))
	}
	return nil
}

// Render formats one "x y" pair per line.
func (p XY) Render() string {
	format := p.Fmt
	if format == "" {
		format = "%.8f"
	}
	var repr string
	for i := range p.X {
		repr += "\n" + fmt.Sprintf(format, p.X[i]) + " " + fmt.Sprintf(format, p.Y[i])
	}
	return repr + "\n"
}

// IJ is a list of points in grid index coordinates. Each pair renders on
// its own continuation line, with a trailing break so following tokens start
// a fresh line.
type IJ struct {
	I []int `yaml:"i"`
	J []int `yaml:"j"`
}

// Size returns the number of index pairs.
func (p IJ) Size() int { return len(p.I) }

// Validate requires matching index lists.
func (p IJ) Validate() error {
	if len(p.I) != len(p.J) {
		return fmt.Errorf("i and j must be the same size, got %d and %d", len(p.I), len(p.J))
	}
	return nil
}

// Render formats one "i= j=" pair per line.
func (p IJ) Render() string {
	var repr string
	for i := range p.I {
		repr += fmt.Sprintf("\ni=%d j=%d", p.I[i], p.J[i])
	}
	return repr + "\n"
}
