package subcomponent

import (
	"fmt"
	"strings"

	"github.com/c360studio/swanconfig/render"
	"github.com/c360studio/swanconfig/types"
)

// GridRegular renders the "xp yp alp xlen ylen mx my" token group shared by
// computational, input and output grids. The suffix distinguishes the owner
// (xpc for CGRID, xpinp for INPGRID, xpfr for FRAME, xpn for NGRID).
type GridRegular struct {
	Xp     float64 `yaml:"xp"`
	Yp     float64 `yaml:"yp"`
	Alp    float64 `yaml:"alp"`
	Xlen   float64 `yaml:"xlen"`
	Ylen   float64 `yaml:"ylen"`
	Mx     int     `yaml:"mx"`
	My     int     `yaml:"my"`
	Suffix string  `yaml:"-"`
}

// Validate checks the mesh counts.
func (g GridRegular) Validate() error {
	if g.Mx <= 0 || g.My <= 0 {
		return fmt.Errorf("mx and my must be positive, got mx=%d my=%d", g.Mx, g.My)
	}
	return nil
}

// Dx returns the mesh size in the x-direction.
func (g GridRegular) Dx() float64 { return g.Xlen / float64(g.Mx) }

// Dy returns the mesh size in the y-direction.
func (g GridRegular) Dy() float64 { return g.Ylen / float64(g.My) }

// Render formats the suffixed grid tokens.
func (g GridRegular) Render() string {
	s := g.Suffix
	return fmt.Sprintf("xp%s=%s yp%s=%s alp%s=%s xlen%s=%s ylen%s=%s mx%s=%d my%s=%d",
		s, render.Float(g.Xp), s, render.Float(g.Yp), s, render.Float(g.Alp),
		s, render.Float(g.Xlen), s, render.Float(g.Ylen), s, g.Mx, s, g.My)
}

// ReadGrid carries the file-reading options shared by READGRID COORDINATES
// and READINP: scale factor, lay-out identifier, header counts and the
// Fortran format clause.
type ReadGrid struct {
	Fac     float64    `yaml:"fac"`
	Idla    types.IDLA `yaml:"idla"`
	Nhedf   int        `yaml:"nhedf"`
	Nhedvec int        `yaml:"nhedvec"`
	Format  string     `yaml:"format"`
	Form    *string    `yaml:"form"`
	Idfm    *int       `yaml:"idfm"`
}

// normalized returns the reader with unset fields at SWAN defaults.
func (r ReadGrid) normalized() ReadGrid {
	if r.Fac == 0 {
		r.Fac = 1.0
	}
	if r.Idla == 0 {
		r.Idla = 1
	}
	if r.Format == "" {
		r.Format = "free"
	}
	return r
}

// Validate checks the scale factor, lay-out and format clause. A fixed
// format needs exactly one of form or idfm; the other formats take neither.
func (r ReadGrid) Validate() error {
	r = r.normalized()
	if r.Fac <= 0 {
		return fmt.Errorf("fac must be positive, got %s", render.Float(r.Fac))
	}
	if err := r.Idla.Validate(); err != nil {
		return err
	}
	if r.Nhedf < 0 || r.Nhedvec < 0 {
		return fmt.Errorf("header line counts must not be negative")
	}
	switch r.Format {
	case "free", "unformatted":
		if r.Form != nil || r.Idfm != nil {
			return fmt.Errorf("form and idfm are only valid with the fixed format")
		}
	case "fixed":
		if r.Form == nil && r.Idfm == nil {
			return fmt.Errorf("fixed format requires one of form or idfm")
		}
		if r.Form != nil && r.Idfm != nil {
			return fmt.Errorf("fixed format accepts only one of form or idfm")
		}
		if r.Idfm != nil {
			switch *r.Idfm {
			case 1, 5, 6, 8:
			default:
				return fmt.Errorf("idfm must be one of 1, 5, 6, 8, got %d", *r.Idfm)
			}
		}
	default:
		return fmt.Errorf("format must be one of free, fixed, unformatted, got %q", r.Format)
	}
	return nil
}

// formatClause renders the trailing FREE|FORMAT|UNFORMATTED tokens.
func (r ReadGrid) formatClause() string {
	switch {
	case r.Format == "fixed" && r.Form != nil:
		return fmt.Sprintf("FORMAT form='%s'", *r.Form)
	case r.Format == "fixed" && r.Idfm != nil:
		return fmt.Sprintf("FORMAT idfm=%d", *r.Idfm)
	case r.Format == "unformatted":
		return "UNFORMATTED"
	default:
		return "FREE"
	}
}

// ReadCoord renders "READGRID COORDINATES ..." for curvilinear grids.
type ReadCoord struct {
	ReadGrid `yaml:",inline"`
	Fname    string `yaml:"fname"`
}

// Validate checks the reader options and the file name.
func (r ReadCoord) Validate() error {
	if r.Fname == "" {
		return fmt.Errorf("fname is required")
	}
	return r.ReadGrid.Validate()
}

// Render formats the coordinate reader command.
func (r ReadCoord) Render() string {
	g := r.ReadGrid.normalized()
	return fmt.Sprintf("READGRID COORDINATES fac=%s fname='%s' idla=%d nhedf=%d nhedvec=%d %s",
		render.Float(g.Fac), r.Fname, g.Idla, g.Nhedf, g.Nhedvec, g.formatClause())
}

// ReadInp renders "READINP GRID_TYPE ..." for input grid data files. The
// grid type is set by the owning INPGRID command.
type ReadInp struct {
	ReadGrid `yaml:",inline"`
	GridType types.GridOption `yaml:"grid_type"`
	Fname1   string           `yaml:"fname1"`
	Fname2   *string          `yaml:"fname2"`
	Nhedt    int              `yaml:"nhedt"`
}

// Validate checks the reader options, grid type and file names.
func (r ReadInp) Validate() error {
	if r.GridType != "" {
		if err := r.GridType.Validate(); err != nil {
			return err
		}
	}
	if r.Fname1 == "" {
		return fmt.Errorf("fname1 is required")
	}
	if r.Nhedt < 0 {
		return fmt.Errorf("nhedt must not be negative")
	}
	return r.ReadGrid.Validate()
}

// Render formats the input reader command.
func (r ReadInp) Render() string {
	g := r.ReadGrid.normalized()
	repr := fmt.Sprintf("READINP %s fac=%s fname1='%s'",
		strings.ToUpper(string(r.GridType)), render.Float(g.Fac), r.Fname1)
	if r.Fname2 != nil {
		repr += fmt.Sprintf(" SERIES fname2='%s'", *r.Fname2)
	}
	repr += fmt.Sprintf(" idla=%d nhedf=%d nhedt=%d nhedvec=%d %s",
		g.Idla, g.Nhedf, r.Nhedt, g.Nhedvec, g.formatClause())
	return repr
}
