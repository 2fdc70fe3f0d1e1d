package component

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/swanconfig/render"
	"github.com/c360studio/swanconfig/subcomponent"
	"github.com/c360studio/swanconfig/types"
)

func testWriterTimes() *subcomponent.TimeRangeOpen {
	return &subcomponent.TimeRangeOpen{
		Tbeg: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		Delt: subcomponent.Duration(time.Hour),
		Dfmt: "hr",
	}
}

func TestFrameRender(t *testing.T) {
	frame := Frame{
		Sname: "outgrid",
		Grid: subcomponent.GridRegular{
			Xp: 173.0, Yp: -40.0, Xlen: 2.0, Ylen: 2.0, Mx: 19, My: 19,
		},
	}
	require.NoError(t, frame.Validate())
	assert.Equal(t,
		"FRAME sname='outgrid' xpfr=173.0 ypfr=-40.0 alpfr=0.0 "+
			"xlenfr=2.0 ylenfr=2.0 mxfr=19 myfr=19",
		render.Render(&frame))
}

func TestSnameRules(t *testing.T) {
	long := Frame{Sname: "outputlocations", Grid: subcomponent.GridRegular{Mx: 1, My: 1}}
	assert.Error(t, long.Validate())

	for _, sname := range specialNames {
		frame := Frame{Sname: sname, Grid: subcomponent.GridRegular{Mx: 1, My: 1}}
		assert.Error(t, frame.Validate(), sname)
	}
}

func TestGroupRender(t *testing.T) {
	group := Group{Sname: "subgrid", Ix1: 20, Iy1: 0, Ix2: 50, Iy2: 100}
	require.NoError(t, group.Validate())
	assert.Equal(t, "GROUP sname='subgrid' SUBGRID ix1=20 iy1=0 ix2=50 iy2=100",
		render.Render(&group))
}

func TestCurveRender(t *testing.T) {
	curve := Curve{
		Sname: "outcurve",
		Xp1:   172.0, Yp1: -40.0,
		Npts: []int{3, 3},
		Xp:   []float64{172.5, 173.0},
		Yp:   []float64{-40.0, -39.5},
	}
	require.NoError(t, curve.Validate())
	assert.Equal(t,
		"CURVE sname='outcurve' xp1=172.0 yp1=-40.0 &\n"+
			"    int=3 xp=172.5 yp=-40.0 &\n"+
			"    int=3 xp=173.0 yp=-39.5",
		render.Render(&curve))

	curve.Npts = nil
	assert.Error(t, curve.Validate())
}

func TestRayIsolineRender(t *testing.T) {
	ray := Ray{
		Rname: "outray",
		Xp1:   172.0, Yp1: -40.0, Xq1: 172.0, Yq1: -39.0,
		Npts: []int{3},
		Xp:   []float64{173.0},
		Yp:   []float64{-40.0},
		Xq:   []float64{173.0},
		Yq:   []float64{-39.0},
	}
	require.NoError(t, ray.Validate())
	assert.Equal(t,
		"RAY rname='outray' xp1=172.0 yp1=-40.0 xq1=172.0 yq1=-39.0 &\n"+
			"    int=3 xp=173.0 yp=-40.0 xq=173.0 yq=-39.0",
		render.Render(&ray))

	isoline := Isoline{Sname: "outcurve", Rname: "outray", DepType: "depth", Dep: 12.0}
	require.NoError(t, isoline.Validate())
	assert.Equal(t, "ISOLINE sname='outcurve' rname='outray' DEPTH dep=12.0",
		render.Render(&isoline))

	assert.Error(t, (&Isoline{Sname: "outcurve", Rname: "outray", DepType: "contour"}).Validate())
}

func TestPointsRender(t *testing.T) {
	points := Points{Sname: "outpts", Xp: []float64{172.3, 172.4}, Yp: []float64{-39.0, -39.0}}
	require.NoError(t, points.Validate())
	rendered := render.Render(&points)
	assert.True(t, strings.HasPrefix(rendered, "POINTS sname='outpts' &"))
	assert.Contains(t, rendered, "xp=172.3 yp=-39.0")

	file := PointsFile{Sname: "outpts", Fname: "./output_points.nc"}
	require.NoError(t, file.Validate())
	assert.Equal(t, "POINTS sname='outpts' fname='./output_points.nc'", render.Render(&file))
}

func TestNGridRender(t *testing.T) {
	ngrid := NGridRegular{
		Sname: "outnest",
		Grid: subcomponent.GridRegular{
			Xp: 173.0, Yp: -40.0, Xlen: 2.0, Ylen: 2.0, Mx: 19, My: 19,
		},
	}
	require.NoError(t, ngrid.Validate())
	assert.Equal(t,
		"NGRID sname='outnest' xpn=173.0 ypn=-40.0 alpn=0.0 xlenn=2.0 ylenn=2.0 "+
			"mxn=19 myn=19",
		render.Render(&ngrid))

	unstructured := NGridUnstructured{Sname: "outnest", Kind: "triangle", Fname: "./ngrid.txt"}
	require.NoError(t, unstructured.Validate())
	assert.Equal(t, "NGRID sname='outnest' UNSTRUCTURED TRIANGLE fname='./ngrid.txt'",
		render.Render(&unstructured))
}

func TestQuantityRender(t *testing.T) {
	quant := Quantity{
		Output: []types.OutputQuantity{"hsign", "tm02", "fspr"},
		Fmin:   render.Ptr(0.03),
		Fmax:   render.Ptr(0.5),
	}
	require.NoError(t, quant.Validate())
	assert.Equal(t, "QUANTITY HSIGN TM02 FSPR fmin=0.03 fmax=0.5", render.Render(quant))

	swell := Quantity{Output: []types.OutputQuantity{"hswell"}, Fswell: render.Ptr(0.125)}
	require.NoError(t, swell.Validate())
	assert.Equal(t, "QUANTITY HSWELL fswell=0.125", render.Render(swell))

	frame := Quantity{Output: []types.OutputQuantity{"transp", "force"}, Coord: render.Ptr("frame")}
	require.NoError(t, frame.Validate())
	assert.Equal(t, "QUANTITY TRANSP FORCE FRAME", render.Render(frame))
}

func TestQuantityValidate(t *testing.T) {
	assert.Error(t, Quantity{}.Validate())
	assert.Error(t, Quantity{Output: []types.OutputQuantity{"hsign", "notvalid"}}.Validate())
	assert.Error(t, Quantity{
		Output: []types.OutputQuantity{"hsign"},
		Fmin:   render.Ptr(0.5), Fmax: render.Ptr(0.03),
	}.Validate())
}

func TestOutputOptionsRender(t *testing.T) {
	opts := OutputOptions{
		Comment:   render.Ptr("!"),
		Field:     render.Ptr(10),
		NdecBlock: render.Ptr(4),
		Len:       render.Ptr(20),
		NdecSpec:  render.Ptr(6),
	}
	require.NoError(t, opts.Validate())
	assert.Equal(t, "OUTPUT OPTIONS comment='!' TABLE field=10 BLOCK ndec=4 len=20 SPEC ndec=6",
		render.Render(opts))

	assert.Error(t, OutputOptions{Comment: render.Ptr("!!")}.Validate())
	assert.Error(t, OutputOptions{Field: render.Ptr(3)}.Validate())
	assert.Error(t, OutputOptions{NdecSpec: render.Ptr(10)}.Validate())
}

func TestBlockRender(t *testing.T) {
	block := Block{Sname: "outgrid", Fname: "./depth-frame.nc", Output: []types.OutputQuantity{"depth"}}
	require.NoError(t, block.Validate())
	assert.Equal(t, "BLOCK sname='outgrid' fname='./depth-frame.nc' DEPTH", render.Render(&block))

	block = Block{
		Sname:  "outgrid",
		Header: render.Ptr(true),
		Fname:  "./out.nc",
		Output: []types.OutputQuantity{"depth", "hsign"},
		Unit:   render.Ptr("m"),
	}
	require.NoError(t, block.Validate())
	assert.Equal(t,
		"BLOCK sname='outgrid' HEADER fname='./out.nc' &\n"+
			"    DEPTH &\n    HSIGN &\n    unit=m",
		render.Render(&block))

	block.Header = render.Ptr(false)
	assert.Contains(t, render.Render(&block), "BLOCK sname='outgrid' NOHEADER fname=")
}

func TestBlockNonstationary(t *testing.T) {
	block := Block{
		Sname:  "outgrid",
		Fname:  "./swangrid.nc",
		Output: []types.OutputQuantity{"depth", "hsign"},
		Times:  testWriterTimes(),
	}
	require.NoError(t, block.Validate())
	assert.Contains(t, render.Render(&block), "OUTPUT tbegblk=19900101.000000 deltblk=1.0 HR")
}

func TestTableRender(t *testing.T) {
	table := Table{
		Sname:  "outpts",
		Format: render.Ptr("noheader"),
		Fname:  "./output_table.nc",
		Output: []types.OutputQuantity{"hsign", "hswell", "dir", "tps"},
		Times:  testWriterTimes(),
	}
	require.NoError(t, table.Validate())
	rendered := render.Render(&table)
	assert.True(t, strings.HasPrefix(rendered,
		"TABLE sname='outpts' NOHEADER fname='./output_table.nc' &"))
	assert.Contains(t, rendered, " &\n    HSIGN &\n    HSWELL &\n    DIR &\n    TPS &\n")
	assert.Contains(t, rendered, "OUTPUT tbegtbl=19900101.000000 delttbl=1.0 HR")

	single := Table{Sname: "outpts", Fname: "./t.nc", Output: []types.OutputQuantity{"depth"}}
	require.NoError(t, single.Validate())
	assert.Equal(t, "TABLE sname='outpts' fname='./t.nc' DEPTH", render.Render(&single))

	assert.Error(t, (&Table{Sname: "outpts", Format: render.Ptr("csv"), Fname: "t.nc",
		Output: []types.OutputQuantity{"hsign"}}).Validate())
}

func TestSpecOutRender(t *testing.T) {
	specout := SpecOut{
		Sname: "outpts",
		Freq:  SpecFreqUnion{FreqRel{}},
		Fname: "./specout.nc",
		Times: testWriterTimes(),
	}
	require.NoError(t, specout.Validate())
	assert.Equal(t,
		"SPECOUT sname='outpts' SPEC2D REL fname='./specout.nc' "+
			"OUTPUT tbegspc=19900101.000000 deltspc=1.0 HR",
		render.Render(&specout))

	spec1d := SpecOut{Sname: "outpts", Dim: SpecDimUnion{Spec1D{}}, Fname: "./specout.nc"}
	require.NoError(t, spec1d.Validate())
	assert.Equal(t, "SPECOUT sname='outpts' SPEC1D ABS fname='./specout.nc'",
		render.Render(&spec1d))
}

func TestNestOutRender(t *testing.T) {
	nestout := NestOut{Sname: "outnest", Fname: "./nestout.swn", Times: testWriterTimes()}
	require.NoError(t, nestout.Validate())
	assert.Equal(t,
		"NESTOUT sname='outnest' fname='./nestout.swn' "+
			"OUTPUT tbegnst=19900101.000000 deltnst=1.0 HR",
		render.Render(&nestout))
}

func TestTestRender(t *testing.T) {
	xy := Test{
		Points: subcomponent.PointsUnion{Points: subcomponent.XY{
			X: []float64{172.8, 172.95}, Y: []float64{-40.0, -40.0},
		}},
		FnamePar: render.Ptr("integral_parameters.test"),
	}
	require.NoError(t, xy.Validate())
	rendered := render.Render(&xy)
	assert.True(t, strings.HasPrefix(rendered, "TEST POINTS XY &"))
	assert.Contains(t, rendered, "PAR fname='integral_parameters.test'")

	ij := Test{
		Itest:    render.Ptr(10),
		Points:   subcomponent.PointsUnion{Points: subcomponent.IJ{I: []int{0, 0}, J: []int{10, 20}}},
		FnameS2D: render.Ptr("2d_variance_density.test"),
	}
	require.NoError(t, ij.Validate())
	assert.True(t, strings.HasPrefix(render.Render(&ij), "TEST itest=10 POINTS IJ &"))
}

func TestTestValidate(t *testing.T) {
	assert.Error(t, (&Test{}).Validate())

	many := make([]float64, 51)
	over := Test{Points: subcomponent.PointsUnion{Points: subcomponent.XY{X: many, Y: many}}}
	assert.Error(t, over.Validate())
}
