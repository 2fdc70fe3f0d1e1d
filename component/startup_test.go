package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/swanconfig/render"
)

func TestProjectRender(t *testing.T) {
	proj := Project{
		Name:   render.Ptr("Test project"),
		Nr:     "0001",
		Title1: render.Ptr("Title 1"),
		Title2: render.Ptr("Title 2"),
		Title3: render.Ptr("Title 3"),
	}
	require.NoError(t, proj.Validate())
	assert.Equal(t,
		"PROJECT name='Test project' nr='0001' title1='Title 1' title2='Title 2' title3='Title 3'",
		render.Render(proj))
}

func TestProjectValidate(t *testing.T) {
	tests := []struct {
		name string
		proj Project
	}{
		{"missing nr", Project{}},
		{"nr too long", Project{Nr: "00001"}},
		{"name too long", Project{Nr: "01", Name: render.Ptr("A name longer than sixteen")}},
		{"title too long", Project{Nr: "01", Title2: render.Ptr(string(make([]byte, 73)))}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.proj.Validate())
		})
	}
}

func TestSetRender(t *testing.T) {
	set := Set{DirectionConvention: "nautical"}
	require.NoError(t, set.Validate())
	assert.Equal(t, "SET NAUTICAL", render.Render(set))

	set.Level = render.Ptr(0.5)
	assert.Equal(t, "SET level=0.5 NAUTICAL", render.Render(set))
}

func TestSetValidate(t *testing.T) {
	assert.Error(t, Set{Nor: render.Ptr(361.0)}.Validate())
	assert.Error(t, Set{Depmin: render.Ptr(-1.0)}.Validate())
	assert.Error(t, Set{Maxerr: render.Ptr(4)}.Validate())
	assert.Error(t, Set{Inrhog: render.Ptr(2)}.Validate())
	assert.Error(t, Set{DirectionConvention: "magnetic"}.Validate())
	assert.NoError(t, Set{DirectionConvention: "cartesian", Inrhog: render.Ptr(1)}.Validate())
}

func TestModeRender(t *testing.T) {
	assert.Equal(t, "MODE STATIONARY TWODIMENSIONAL", render.Render(Mode{}))
	assert.Equal(t, "MODE STATIONARY TWODIMENSIONAL",
		render.Render(Mode{Kind: "stationary", Dim: "twodimensional"}))
	assert.Equal(t, "MODE STATIONARY ONEDIMENSIONAL",
		render.Render(Mode{Kind: "stationary", Dim: "onedimensional"}))
	assert.Equal(t, "MODE NONSTATIONARY TWODIMENSIONAL",
		render.Render(Mode{Kind: "nonstationary", Dim: "twodimensional"}))
}

func TestModeValidate(t *testing.T) {
	assert.Error(t, Mode{Kind: "transient"}.Validate())
	assert.Error(t, Mode{Dim: "threedimensional"}.Validate())
}

func TestCoordinatesRender(t *testing.T) {
	assert.Equal(t, "COORDINATES CARTESIAN", render.Render(Coordinates{}))
	assert.Equal(t, "COORDINATES SPHERICAL CCM",
		render.Render(Coordinates{Kind: CoordKindUnion{Spherical{}}}))
	assert.Equal(t, "COORDINATES SPHERICAL QC",
		render.Render(Coordinates{Kind: CoordKindUnion{Spherical{Projection: "qc"}}}))
	assert.Equal(t, "COORDINATES CARTESIAN REPEATING",
		render.Render(Coordinates{Kind: CoordKindUnion{Cartesian{}}, Repeating: true}))
}

func TestSphericalValidate(t *testing.T) {
	assert.NoError(t, Spherical{Projection: "ccm"}.Validate())
	assert.Error(t, Spherical{Projection: "mercator"}.Validate())
}
