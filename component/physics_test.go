package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/swanconfig/render"
	"github.com/c360studio/swanconfig/subcomponent"
)

func TestGenRender(t *testing.T) {
	assert.Equal(t, "GEN1", render.Render(&Gen1{}))
	assert.Equal(t, "GEN1 cf10=188.0 cf20=0.59",
		render.Render(&Gen1{Cf10: render.Ptr(188.0), Cf20: render.Ptr(0.59)}))
	assert.Equal(t, "GEN2", render.Render(&Gen2{}))
	assert.Equal(t, "GEN2 cf50=0.0023 cf60=-0.223",
		render.Render(&Gen2{Cf50: render.Ptr(0.0023), Cf60: render.Ptr(-0.223)}))
}

func TestGen3Render(t *testing.T) {
	assert.Equal(t, "GEN3 WESTHUYSEN DRAG WU", render.Render(&Gen3{}))

	st6 := Gen3{Terms: subcomponent.SourceTermsUnion{SourceTerms: subcomponent.ST6{
		A1sds: 4.7e-7,
		A2sds: 6.6e-6,
	}}}
	assert.Equal(t,
		"GEN3 ST6 a1sds=4.7e-07 a2sds=6.6e-06 UP HWANG VECTAU U10PROXY windscaling=32.0",
		render.Render(&st6))
}

func TestNegatInp(t *testing.T) {
	assert.Equal(t, "NEGATINP rdcoef=0.04", render.Render(NegatInp{Rdcoef: render.Ptr(0.04)}))
	assert.Error(t, NegatInp{Rdcoef: render.Ptr(1.5)}.Validate())
}

func TestSswellRender(t *testing.T) {
	assert.Equal(t, "SSWELL ROGERS cdsv=1.2", render.Render(&SswellRogers{Cdsv: render.Ptr(1.2)}))
	assert.Equal(t, "SSWELL ARDHUIN", render.Render(&SswellArdhuin{}))
	assert.Equal(t, "SSWELL ZIEGER b1=0.00025", render.Render(&SswellZieger{B1: render.Ptr(0.00025)}))
}

func TestWcappingRender(t *testing.T) {
	assert.Equal(t, "WCAPPING KOMEN", render.Render(&WcappingKomen{}))
	assert.Equal(t, "WCAPPING KOMEN cds2=2.36e-05 stpm=0.00302",
		render.Render(&WcappingKomen{Cds2: render.Ptr(2.36e-5), Stpm: render.Ptr(3.02e-3)}))
	assert.Equal(t, "WCAPPING AB cds2=5e-05 br=0.00175 CURRENT cds3=0.8",
		render.Render(&WcappingAB{
			Cds2: render.Ptr(5e-5), Br: render.Ptr(1.75e-3),
			Current: true, Cds3: render.Ptr(0.8),
		}))
}

func TestQuadrupl(t *testing.T) {
	assert.Equal(t, "QUADRUPL", render.Render(Quadrupl{}))
	assert.Equal(t, "QUADRUPL iquad=3", render.Render(Quadrupl{Iquad: render.Ptr(3)}))
	assert.Error(t, Quadrupl{Iquad: render.Ptr(7)}.Validate())
}

func TestBreakingRender(t *testing.T) {
	assert.Equal(t, "BREAKING CONSTANT alpha=1.0 gamma=0.73",
		render.Render(&BreakingConstant{Alpha: render.Ptr(1.0), Gamma: render.Ptr(0.73)}))
	assert.Equal(t, "BREAKING BKD alpha=1.0 gamma0=0.54 a1=7.59 a2=-8.06 a3=8.09",
		render.Render(&BreakingBKD{
			Alpha: render.Ptr(1.0), Gamma0: render.Ptr(0.54),
			A1: render.Ptr(7.59), A2: render.Ptr(-8.06), A3: render.Ptr(8.09),
		}))
}

func TestFrictionRender(t *testing.T) {
	assert.Equal(t, "FRICTION JONSWAP CONSTANT cfjon=0.038",
		render.Render(&FrictionJonswap{Cfjon: render.Ptr(0.038)}))
	assert.Equal(t, "FRICTION COLLINS cfw=0.015",
		render.Render(&FrictionCollins{Cfw: render.Ptr(0.015)}))
	assert.Equal(t, "FRICTION MADSEN kn=0.05",
		render.Render(&FrictionMadsen{Kn: render.Ptr(0.05)}))
	assert.Equal(t, "FRICTION RIPPLES S=2.65 D=0.0001",
		render.Render(&FrictionRipples{S: render.Ptr(2.65), D: render.Ptr(0.0001)}))
}

func TestTriadRender(t *testing.T) {
	dewit := &subcomponent.BiphaseUnion{Biphase: subcomponent.DeWit{Lpar: render.Ptr(0.0)}}

	assert.Equal(t, "TRIAD", render.Render(&TriadDefault{}))
	assert.Equal(t, "TRIAD DCTA COLL", render.Render(&TriadDCTA{}))
	assert.Equal(t, "TRIAD DCTA trfac=4.4 p=1.3 NONC BIPHASE DEWIT lpar=0.0",
		render.Render(&TriadDCTA{
			Trfac: render.Ptr(4.4), P: render.Ptr(1.3),
			Noncolinear: true, Biphase: dewit,
		}))
	assert.Equal(t, "TRIAD LTA", render.Render(&TriadLTA{}))
	assert.Equal(t, "TRIAD LTA trfac=0.8 cutfr=2.5 BIPHASE DEWIT lpar=0.0",
		render.Render(&TriadLTA{Trfac: render.Ptr(0.8), Cutfr: render.Ptr(2.5), Biphase: dewit}))
	assert.Equal(t, "TRIAD SPB", render.Render(&TriadSPB{}))
	assert.Equal(t, "TRIAD SPB trfac=0.9 a=0.95 b=0.0 BIPHASE DEWIT lpar=0.0",
		render.Render(&TriadSPB{
			Trfac: render.Ptr(0.9), A: render.Ptr(0.95), B: render.Ptr(0.0),
			Biphase: dewit,
		}))

	assert.Error(t, (&TriadDefault{Itriad: render.Ptr(3)}).Validate())
}

func TestVegetationRender(t *testing.T) {
	veg := Vegetation{
		Height: []float64{1.2},
		Diamtr: []float64{0.1},
		Nstems: []int{10},
		Drag:   []float64{0.5},
	}
	require.NoError(t, veg.Validate())
	assert.Equal(t, "VEGETATION iveg=1 height=1.2 diamtr=0.1 nstems=10 drag=0.5",
		render.Render(veg))

	veg.Diamtr = nil
	assert.Error(t, veg.Validate())
	assert.Error(t, Vegetation{}.Validate())
}

func TestMudRender(t *testing.T) {
	assert.Equal(t, "MUD", render.Render(Mud{}))
	assert.Equal(t, "MUD layer=2.0 rhom=1300.0 viscm=0.0076",
		render.Render(Mud{
			Layer: render.Ptr(2.0), Rhom: render.Ptr(1300.0), Viscm: render.Ptr(0.0076),
		}))
}

func TestSiceRender(t *testing.T) {
	assert.Equal(t, "SICE", render.Render(&SiceDefault{}))
	assert.Equal(t, "SICE aice=0.5",
		render.Render(&SiceDefault{siceBase: siceBase{Aice: render.Ptr(0.5)}}))
	assert.Equal(t, "SICE R19", render.Render(&SiceR19{}))
	assert.Equal(t, "SICE D15", render.Render(&SiceD15{}))
	assert.Equal(t, "SICE aice=0.5 D15 chf=0.1",
		render.Render(&SiceD15{siceBase: siceBase{Aice: render.Ptr(0.5)}, Chf: render.Ptr(0.1)}))
	assert.Equal(t, "SICE aice=0.5 M18 chf=0.059",
		render.Render(&SiceM18{siceBase: siceBase{Aice: render.Ptr(0.5)}, Chf: render.Ptr(0.059)}))
	assert.Equal(t, "SICE aice=0.5 R21B chf=2.9 npf=4.5",
		render.Render(&SiceR21B{
			siceBase: siceBase{Aice: render.Ptr(0.5)},
			Chf:      render.Ptr(2.9), Npf: render.Ptr(4.5),
		}))
	assert.Error(t, (&SiceDefault{siceBase: siceBase{Aice: render.Ptr(1.5)}}).Validate())
}

func TestTurbulenceRender(t *testing.T) {
	assert.Equal(t, "TURBULENCE CURRENT tbcur=0.004",
		render.Render(Turbulence{Tbcur: render.Ptr(0.004)}))
	assert.Equal(t, "TURBULENCE ctb=0.01",
		render.Render(Turbulence{Ctb: render.Ptr(0.01), Current: render.Ptr(false)}))
	assert.Error(t, Turbulence{Tbcur: render.Ptr(0.004), Current: render.Ptr(false)}.Validate())
}

func TestBraggRender(t *testing.T) {
	assert.Equal(t, "BRAGG nreg=200",
		render.Render(&BraggDefault{braggBase: braggBase{Nreg: render.Ptr(200)}}))
	assert.Equal(t, "BRAGG ibrag=1 nreg=200 cutoff=5.0",
		render.Render(&BraggDefault{braggBase: braggBase{
			Ibrag: render.Ptr(1), Nreg: render.Ptr(200), Cutoff: render.Ptr(5.0),
		}}))
	assert.Equal(t, "BRAGG nreg=200 FT",
		render.Render(&BraggFT{braggBase: braggBase{Nreg: render.Ptr(200)}}))
	assert.Equal(t, "BRAGG nreg=200 FILE fname='bragg.txt' mkx=200 dkx=0.1",
		render.Render(&BraggFile{
			braggBase: braggBase{Nreg: render.Ptr(200)},
			Fname:     "bragg.txt",
			Mkx:       200,
			Dkx:       0.1,
		}))
	assert.Error(t, (&BraggDefault{braggBase: braggBase{Ibrag: render.Ptr(4)}}).Validate())
	assert.Error(t, (&BraggFile{Mkx: 200, Dkx: 0.1}).Validate())
}

func TestLimiterRender(t *testing.T) {
	assert.Equal(t, "LIMITER", render.Render(Limiter{}))
	assert.Equal(t, "LIMITER ursell=10.0 qb=1.0",
		render.Render(Limiter{Ursell: render.Ptr(10.0), Qb: render.Ptr(1.0)}))
}

func TestObstacleRender(t *testing.T) {
	obs := Obstacle{Line: subcomponent.Line{
		Xp: []float64{174.1, 174.2, 174.3},
		Yp: []float64{-39.1, -39.1, -39.1},
	}}
	require.NoError(t, obs.Validate())
	assert.Equal(t, "OBSTACLE LINE 174.1 -39.1 174.2 -39.1 174.3 -39.1", render.Render(&obs))

	dam := Obstacle{
		Transmission: &subcomponent.TransmissionUnion{Transmission: subcomponent.Goda{Hgt: 3.0}},
		Reflection:   &subcomponent.Refl{Reflc: render.Ptr(0.5)},
		Line:         subcomponent.Line{Xp: []float64{0.0, 1.0}, Yp: []float64{0.0, 0.0}},
	}
	require.NoError(t, dam.Validate())
	assert.Equal(t, "OBSTACLE DAM GODA hgt=3.0 REFL reflc=0.5 LINE 0.0 0.0 1.0 0.0",
		render.Render(&dam))
}

func TestObstacleValidate(t *testing.T) {
	short := Obstacle{Line: subcomponent.Line{Xp: []float64{1.0}, Yp: []float64{1.0}}}
	assert.Error(t, short.Validate())

	reflType := Obstacle{
		ReflectionType: &subcomponent.ReflTypeUnion{ReflType: subcomponent.RSpec{}},
		Line:           subcomponent.Line{Xp: []float64{0.0, 1.0}, Yp: []float64{0.0, 0.0}},
	}
	assert.Error(t, reflType.Validate())
}

func TestObstacleFigRender(t *testing.T) {
	fig := ObstacleFig{
		Alpha1: 1.0,
		Hss:    2.5,
		Tss:    10.3,
		Line:   subcomponent.Line{Xp: []float64{0.0, 1.0}, Yp: []float64{0.0, 0.0}},
	}
	require.NoError(t, fig.Validate())
	assert.Equal(t, "OBSTACLE FIG alpha1=1.0 hss=2.5 tss=10.3 LINE 0.0 0.0 1.0 0.0",
		render.Render(&fig))
}

func TestSetupDiffractionRender(t *testing.T) {
	assert.Equal(t, "SETUP", render.Render(Setup{}))
	assert.Equal(t, "SETUP supcor=0.5", render.Render(Setup{Supcor: render.Ptr(0.5)}))
	assert.Equal(t, "DIFFRACTION", render.Render(Diffraction{}))
	assert.Equal(t, "DIFFRACTION idiffr=1 smpar=0.0 smnum=1",
		render.Render(Diffraction{
			Idiffr: render.Ptr(true), Smpar: render.Ptr(0.0), Smnum: render.Ptr(1),
		}))
}

func TestSurfbeatRender(t *testing.T) {
	assert.Equal(t, "SURFBEAT", render.Render(Surfbeat{}))
	assert.Equal(t, "SURFBEAT df=0.01 nmax=50 emin=0.05 LOGARITHMIC",
		render.Render(Surfbeat{
			Df: render.Ptr(0.01), Nmax: render.Ptr(50), Emin: render.Ptr(0.05),
			Spacing: render.Ptr("logarithmic"),
		}))
	assert.Error(t, Surfbeat{Spacing: render.Ptr("linear")}.Validate())
}

func TestScatRender(t *testing.T) {
	assert.Equal(t, "SCAT", render.Render(Scat{}))
	assert.Equal(t, "SCAT iqcm=2 GRID rfac=1.5 TRUNC alpha=1.0 qmax=2.5",
		render.Render(Scat{
			Iqcm: render.Ptr(2), Rfac: render.Ptr(1.5),
			Alpha: render.Ptr(1.0), Qmax: render.Ptr(2.5),
		}))
	assert.Error(t, Scat{Iqcm: render.Ptr(3)}.Validate())
	assert.Error(t, Scat{Rfac: render.Ptr(0.5)}.Validate())
}

func TestOffRender(t *testing.T) {
	off := Off{Physics: "windgrowth"}
	require.NoError(t, off.Validate())
	assert.Equal(t, "OFF WINDGROWTH", render.Render(off))
	assert.Error(t, Off{Physics: "gravity"}.Validate())
}
