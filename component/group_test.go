package component

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/c360studio/swanconfig/render"
	"github.com/c360studio/swanconfig/subcomponent"
	"github.com/c360studio/swanconfig/types"
)

func TestStartupGroupRender(t *testing.T) {
	startup := Startup{
		Project:     &Project{Nr: "01"},
		Set:         &Set{Level: render.Ptr(0.5), DirectionConvention: "nautical"},
		Mode:        &Mode{Kind: "nonstationary", Dim: "twodimensional"},
		Coordinates: &Coordinates{Kind: CoordKindUnion{Spherical{}}},
	}
	require.NoError(t, startup.Validate())
	assert.Equal(t,
		"PROJECT nr='01'\n\n"+
			"SET level=0.5 NAUTICAL\n\n"+
			"MODE NONSTATIONARY TWODIMENSIONAL\n\n"+
			"COORDINATES SPHERICAL CCM",
		startup.Render())

	partial := Startup{Mode: &Mode{}}
	require.NoError(t, partial.Validate())
	assert.Equal(t, "MODE STATIONARY TWODIMENSIONAL", partial.Render())
}

func TestStartupGroupValidate(t *testing.T) {
	err := (&Startup{Project: &Project{}}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project:")

	err = (&Startup{Mode: &Mode{Kind: "transient"}}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mode:")
}

func testInpGrid(gridType string) InpGridUnion {
	return InpGridUnion{&InpGridRegular{
		inpGridBase: inpGridBase{
			GridType: types.GridOption(gridType),
			ReadInp:  subcomponent.ReadInp{Fname1: gridType + ".txt"},
		},
		Mxinp: 10,
		Myinp: 10,
		Dxinp: 0.1,
		Dyinp: 0.1,
	}}
}

func TestInpgridsValidate(t *testing.T) {
	assert.Error(t, (&Inpgrids{}).Validate())

	dup := Inpgrids{Inpgrids: []InpGridUnion{testInpGrid("wind"), testInpGrid("wind")}}
	err := dup.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unique")

	bad := Inpgrids{Inpgrids: []InpGridUnion{
		{&InpGridRegular{inpGridBase: inpGridBase{GridType: "bottom"}}},
	}}
	err = bad.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inpgrid[0]: readinp:")
}

func TestInpgridsRender(t *testing.T) {
	grids := Inpgrids{
		Inpgrids: []InpGridUnion{testInpGrid("bottom"), testInpGrid("wind")},
		Wind:     &Wind{Vel: 10.0, Dir: 270.0},
		Ice:      &Ice{Aice: 0.5, Hice: 0.1},
	}
	require.NoError(t, grids.Validate())
	paragraphs := strings.Split(grids.Render(), "\n\n")
	require.Len(t, paragraphs, 4)
	assert.True(t, strings.HasPrefix(paragraphs[0], "INPGRID BOTTOM REGULAR"))
	assert.Contains(t, paragraphs[0], "\nREADINP BOTTOM")
	assert.True(t, strings.HasPrefix(paragraphs[1], "INPGRID WIND REGULAR"))
	assert.Equal(t, "WIND vel=10.0 dir=270.0", paragraphs[2])
	assert.Equal(t, "ICE aice=0.5 hice=0.1", paragraphs[3])
}

func TestPhysicsGroupRender(t *testing.T) {
	phys := Physics{
		Gen:      &GenUnion{&Gen3{}},
		Sswell:   &SswellUnion{&SswellZieger{B1: render.Ptr(0.00025)}},
		Negatinp: &NegatInp{Rdcoef: render.Ptr(0.04)},
		Friction: &FrictionUnion{&FrictionJonswap{Cfjon: render.Ptr(0.038)}},
		Deactivate: []Off{
			{Physics: "quadrupl"},
			{Physics: "windgrowth"},
		},
	}
	require.NoError(t, phys.Validate())
	paragraphs := strings.Split(phys.Render(), "\n\n")
	require.Len(t, paragraphs, 6)
	assert.Equal(t, "GEN3 WESTHUYSEN DRAG WU", paragraphs[0])
	assert.Equal(t, "SSWELL ZIEGER b1=0.00025", paragraphs[1])
	assert.Equal(t, "NEGATINP rdcoef=0.04", paragraphs[2])
	assert.Equal(t, "FRICTION JONSWAP CONSTANT cfjon=0.038", paragraphs[3])
	assert.Equal(t, "OFF QUADRUPL", paragraphs[4])
	assert.Equal(t, "OFF WINDGROWTH", paragraphs[5])
}

func TestPhysicsGroupValidate(t *testing.T) {
	// NEGATINP without SSWELL ZIEGER only warns.
	ok := Physics{Negatinp: &NegatInp{}, Sswell: &SswellUnion{&SswellArdhuin{}}}
	assert.NoError(t, ok.Validate())

	err := (&Physics{Negatinp: &NegatInp{Rdcoef: render.Ptr(1.5)}}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negatinp:")

	err = (&Physics{Sice: &SiceUnion{&SiceDefault{
		siceBase: siceBase{Aice: render.Ptr(1.5)},
	}}}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sice:")

	err = (&Physics{Obstacles: []ObstacleUnion{
		{&Obstacle{Line: subcomponent.Line{Xp: []float64{1.0}, Yp: []float64{1.0}}}},
	}}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "obstacle[0]:")
}

func testOutputFrame(sname string) *Frame {
	return &Frame{Sname: sname, Grid: subcomponent.GridRegular{Mx: 19, My: 19}}
}

func testOutputPoints(sname string) *PointsLocUnion {
	return &PointsLocUnion{&Points{
		Sname: sname,
		Xp:    []float64{172.3},
		Yp:    []float64{-39.0},
	}}
}

func TestOutputGroupUniqueSnames(t *testing.T) {
	out := Output{
		Frame: testOutputFrame("outgrid"),
		Group: &Group{Sname: "outgrid", Ix2: 10, Iy2: 10},
	}
	err := out.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "more than one set of output locations")
}

func TestOutputGroupWriterSname(t *testing.T) {
	out := Output{
		Table: &Table{
			Sname:  "outpts",
			Fname:  "./table.nc",
			Output: []types.OutputQuantity{"hsign"},
		},
	}
	err := out.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no location with that name is defined")

	// Special names refer to grids defined outside the output group.
	special := Output{
		Blocks: []*Block{{
			Sname:  "COMPGRID",
			Fname:  "./block.nc",
			Output: []types.OutputQuantity{"depth"},
		}},
	}
	assert.NoError(t, special.Validate())
}

func TestOutputGroupBlockTarget(t *testing.T) {
	out := Output{
		Points: testOutputPoints("outpts"),
		Blocks: []*Block{{
			Sname:  "outpts",
			Fname:  "./block.nc",
			Output: []types.OutputQuantity{"depth"},
		}},
	}
	err := out.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must refer to a FRAME or GROUP location")

	ok := Output{
		Frame: testOutputFrame("outgrid"),
		Blocks: []*Block{{
			Sname:  "outgrid",
			Fname:  "./block.nc",
			Output: []types.OutputQuantity{"depth"},
		}},
	}
	assert.NoError(t, ok.Validate())
}

func TestOutputGroupIsolineRay(t *testing.T) {
	isoline := &Isoline{Sname: "outcurve", Rname: "outray", DepType: "depth", Dep: 12.0}
	ray := &Ray{
		Rname: "outray",
		Xp1:   172.0, Yp1: -40.0, Xq1: 172.0, Yq1: -39.0,
		Npts: []int{3},
		Xp:   []float64{173.0},
		Yp:   []float64{-40.0},
		Xq:   []float64{173.0},
		Yq:   []float64{-39.0},
	}

	err := (&Output{Isoline: isoline}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires a RAY")

	other := *ray
	other.Rname = "otherray"
	err = (&Output{Isoline: isoline, Ray: &other}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match the ray rname")

	assert.NoError(t, (&Output{Isoline: isoline, Ray: ray}).Validate())
}

func TestOutputGroupNestPairing(t *testing.T) {
	ngrid := &NGridUnion{&NGridRegular{
		Sname: "outnest",
		Grid:  subcomponent.GridRegular{Mx: 19, My: 19},
	}}

	err := (&Output{NGrid: ngrid}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no nestout is defined")

	nestout := &NestOut{Sname: "outnest", Fname: "./nestout.swn"}
	err = (&Output{NestOut: nestout}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no ngrid is defined")

	wrong := &NestOut{Sname: "othernst", Fname: "./nestout.swn"}
	err = (&Output{NGrid: ngrid, NestOut: wrong}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match the nestout sname")

	assert.NoError(t, (&Output{NGrid: ngrid, NestOut: nestout}).Validate())
}

func TestOutputGroupRenderOrder(t *testing.T) {
	out := Output{
		Frame:  testOutputFrame("outgrid"),
		Points: testOutputPoints("outpts"),
		Blocks: []*Block{{
			Sname:  "outgrid",
			Fname:  "./block.nc",
			Output: []types.OutputQuantity{"depth"},
		}},
		Table: &Table{
			Sname:  "outpts",
			Fname:  "./table.nc",
			Output: []types.OutputQuantity{"hsign"},
		},
	}
	require.NoError(t, out.Validate())
	paragraphs := strings.Split(out.Render(), "\n\n")
	require.Len(t, paragraphs, 4)
	assert.True(t, strings.HasPrefix(paragraphs[0], "FRAME sname='outgrid'"))
	assert.True(t, strings.HasPrefix(paragraphs[1], "POINTS sname='outpts'"))
	assert.True(t, strings.HasPrefix(paragraphs[2], "BLOCK sname='outgrid'"))
	assert.True(t, strings.HasPrefix(paragraphs[3], "TABLE sname='outpts'"))
}

func TestLockupCmd(t *testing.T) {
	lockup := Lockup{Compute: ComputeCmdUnion{&ComputeStat{
		Times: ComputeTimesUnion{ComputeTimes: subcomponent.Stationary{
			Time: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		}},
	}}}
	require.NoError(t, lockup.Validate())
	cmds := lockup.Cmd()
	require.Len(t, cmds, 2)
	assert.Equal(t, "COMPUTE STATIONARY time=19900101.000000", cmds[0])
	assert.Equal(t, "STOP", cmds[1])
}

func TestLockupSingleCompute(t *testing.T) {
	var union ComputeCmdUnion
	require.NoError(t, yaml.Unmarshal([]byte(
		"model_type: compute\ntimes:\n  model_type: stationary\n  time: 1990-01-01T00:00:00Z\n",
	), &union))

	lockup := Lockup{Compute: union}
	require.NoError(t, lockup.Validate())
	assert.Equal(t,
		[]string{"COMPUTE STATIONARY time=19900101.000000", "STOP"},
		lockup.Cmd())
}

func TestLockupValidate(t *testing.T) {
	assert.Error(t, (&Lockup{}).Validate())

	bad := Lockup{Compute: ComputeCmdUnion{&ComputeStat{
		Times: ComputeTimesUnion{ComputeTimes: subcomponent.Stationary{
			Time: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		}},
		Hotfile:  &Hotfile{Fname: "hotfile"},
		Hottimes: []HotTime{{Index: render.Ptr(5)}},
	}}}
	err := bad.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compute:")
}
