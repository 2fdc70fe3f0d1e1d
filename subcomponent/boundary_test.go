package subcomponent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/swanconfig/render"
)

func TestSideRender(t *testing.T) {
	assert.Equal(t, "SIDE WEST CCW", Side{Side: "west"}.Render())
	assert.Equal(t, "SIDE NW CLOCKWISE", Side{Side: "nw", Direction: "clockwise"}.Render())
	assert.Error(t, Side{Side: "west", Direction: "widdershins"}.Validate())
	assert.Error(t, Side{Side: "up"}.Validate())
}

func TestSegmentRenderXY(t *testing.T) {
	seg := Segment{Points: PointsUnion{Points: XY{
		X: []float64{172.0, 172.5},
		Y: []float64{-40.0, -40.0},
	}}}
	assert.Equal(t,
		"SEGMENT XY\n172.00000000 -40.00000000\n172.50000000 -40.00000000\n",
		seg.Render())
}

func TestSegmentRenderIJ(t *testing.T) {
	seg := Segment{Points: PointsUnion{Points: IJ{I: []int{0, 0}, J: []int{0, 10}}}}
	assert.Equal(t, "SEGMENT IJ\ni=0 j=0\ni=0 j=10\n", seg.Render())
}

func TestPointsValidate(t *testing.T) {
	assert.Error(t, XY{X: []float64{1.0}, Y: []float64{1.0, 2.0}}.Validate())
	assert.Error(t, IJ{I: []int{1}, J: []int{}}.Validate())
	assert.Equal(t, 2, XY{X: []float64{1, 2}, Y: []float64{3, 4}}.Size())
}

func TestConstantParRender(t *testing.T) {
	data := ConstantPar{Hs: 1.0, Per: 10.0, Dir: 0.0, Dd: render.Ptr(10.0)}
	require.NoError(t, data.Validate())
	assert.Equal(t, "CONSTANT PAR hs=1.0 per=10.0 dir=0.0 dd=10.0", data.Render())
}

func TestConstantParValidate(t *testing.T) {
	assert.Error(t, ConstantPar{Hs: 0, Per: 10.0}.Validate())
	assert.Error(t, ConstantPar{Hs: 1.0, Per: 0}.Validate())
	assert.Error(t, ConstantPar{Hs: 1.0, Per: 10.0, Dir: 400.0}.Validate())
	assert.Error(t, ConstantPar{Hs: 1.0, Per: 10.0, Dd: render.Ptr(400.0)}.Validate())
}

func TestVariableParRender(t *testing.T) {
	data := VariablePar{
		Hs:   []float64{1.0, 1.5},
		Per:  []float64{10.0, 12.0},
		Dir:  []float64{0.0, 15.0},
		Dd:   []float64{10.0, 10.0},
		Dist: []float64{0.0, 0.5},
	}
	require.NoError(t, data.Validate())
	assert.Equal(t,
		"VARIABLE PAR &\n\tlen=0.0 hs=1.0 per=10.0 dir=0.0 dd=10.0"+
			" &\n\tlen=0.5 hs=1.5 per=12.0 dir=15.0 dd=10.0",
		data.Render())

	data.Hs = data.Hs[:1]
	assert.Error(t, data.Validate())
}

func TestConstantFileRender(t *testing.T) {
	data := ConstantFile{Fname: "boundary.txt", Seq: render.Ptr(2)}
	require.NoError(t, data.Validate())
	assert.Equal(t, "CONSTANT FILE fname='boundary.txt' seq=2", data.Render())
	assert.Error(t, ConstantFile{}.Validate())
	assert.Error(t, ConstantFile{Fname: "f.txt", Seq: render.Ptr(0)}.Validate())
}

func TestVariableFileRender(t *testing.T) {
	data := VariableFile{
		Fname: []string{"bnd1.txt", "bnd2.txt"},
		Dist:  []float64{0.0, 1.0},
	}
	require.NoError(t, data.Validate())
	assert.Equal(t,
		"VARIABLE FILE &\n\tlen=0.0 fname='bnd1.txt' seq=1 &\n\tlen=1.0 fname='bnd2.txt' seq=1",
		data.Render())

	data.Seq = []int{1}
	assert.Error(t, data.Validate())
}

func TestHotstartRender(t *testing.T) {
	single := HotSingle{Fname: "hotfile.txt", Format: "unformatted"}
	require.NoError(t, single.Validate())
	assert.Equal(t, "HOTSTART SINGLE fname='hotfile.txt' UNFORMATTED", single.Render())

	multiple := HotMultiple{Fname: "hotfile"}
	require.NoError(t, multiple.Validate())
	assert.Equal(t, "HOTSTART MULTIPLE fname='hotfile' FREE", multiple.Render())

	assert.Error(t, HotSingle{Fname: "hotfile", Format: "netcdf"}.Validate())
}
