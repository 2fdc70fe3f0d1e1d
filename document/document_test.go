package document

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/c360studio/swanconfig/component"
	"github.com/c360studio/swanconfig/forcing"
	"github.com/c360studio/swanconfig/render"
	"github.com/c360studio/swanconfig/runtime"
	"github.com/c360studio/swanconfig/subcomponent"
	"github.com/c360studio/swanconfig/types"
)

func testPeriod() runtime.Period {
	return runtime.Period{
		Start:    time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		Duration: subcomponent.Duration(24 * time.Hour),
		Interval: subcomponent.Duration(time.Hour),
	}
}

func testContext(t *testing.T) *runtime.Context {
	t.Helper()
	return runtime.New(testPeriod(), t.TempDir())
}

func testConfig() *Config {
	return &Config{
		Startup: &component.Startup{
			Project: &component.Project{Nr: "01"},
			Set:     &component.Set{DirectionConvention: "nautical"},
		},
		CGrid: &component.CGridUnion{CGrid: &component.CGridRegular{
			Grid: subcomponent.GridRegular{Xlen: 100.0, Ylen: 100.0, Mx: 10, My: 10},
			Spectrum: subcomponent.Spectrum{
				Mdc:   36,
				Flow:  render.Ptr(0.04),
				Fhigh: render.Ptr(0.4),
			},
		}},
		Lockup: &component.Lockup{
			Compute: component.ComputeCmdUnion{ComputeCmd: &component.ComputeStat{
				Times: component.ComputeTimesUnion{ComputeTimes: subcomponent.Stationary{}},
			}},
		},
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	text := `
startup:
  project:
    nr: "01"
cgrid:
  model_type: regular
  grid:
    xlen: 100.0
    ylen: 100.0
    mx: 10
    my: 10
  spectrum:
    mdc: 36
    flow: 0.04
    fhigh: 0.4
`
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		t.Fatal(err)
	}
	config, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if config.Startup == nil || config.Startup.Project == nil {
		t.Fatal("startup project not parsed")
	}
	if got := config.Startup.Project.Nr; got != "01" {
		t.Errorf("project nr = %q, want %q", got, "01")
	}
	if _, ok := config.CGrid.CGrid.(*component.CGridRegular); !ok {
		t.Errorf("cgrid resolved to %T, want *component.CGridRegular", config.CGrid.CGrid)
	}
}

func TestLoadMissingCGrid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("startup: {}\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for config without cgrid")
	}
}

func TestLoadBadFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestGenerateValidatesNumeric(t *testing.T) {
	config := testConfig()
	config.Numeric = &component.Numeric{
		SigImpl: &subcomponent.SigImpl{Outp: render.Ptr(4)},
	}
	_, err := config.Generate(testContext(t))
	if err == nil || !strings.Contains(err.Error(), "numeric") {
		t.Fatalf("Generate() error = %v, want numeric validation failure", err)
	}

	config.Numeric = &component.Numeric{
		SigImpl: &subcomponent.SigImpl{Css: render.Ptr(0.5)},
	}
	if _, err := config.Generate(testContext(t)); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
}

func TestGenerateSections(t *testing.T) {
	config := testConfig()
	doc, err := config.Generate(testContext(t))
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	var names []string
	for _, section := range doc.Sections {
		names = append(names, section.Name)
	}
	want := []string{"startup", "cgrid", "lockup"}
	if len(names) != len(want) {
		t.Fatalf("sections = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("sections = %v, want %v", names, want)
		}
	}

	input := doc.Input()
	if !strings.HasPrefix(input, "$"+strings.Repeat("*", 68)) {
		t.Errorf("input does not start with the banner rule:\n%s", input)
	}
	if !strings.Contains(input, "$ Run: "+doc.RunID) {
		t.Errorf("banner does not name the run:\n%s", input)
	}
	if !strings.Contains(input, "PROJECT nr='01'") {
		t.Errorf("input is missing the startup section:\n%s", input)
	}
	if !strings.HasSuffix(input, "STOP\n") {
		t.Errorf("input does not end with STOP:\n%s", input)
	}
}

func TestGenerateResolvesComputeTime(t *testing.T) {
	config := testConfig()
	doc, err := config.Generate(testContext(t))
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if !strings.Contains(doc.Input(), "COMPUTE STATIONARY time=19900101.000000") {
		t.Errorf("compute time not resolved from the run period:\n%s", doc.Input())
	}
}

func TestGenerateResolvesNonstatRange(t *testing.T) {
	config := testConfig()
	config.Lockup = &component.Lockup{
		Compute: component.ComputeCmdUnion{ComputeCmd: &component.ComputeNonstat{}},
	}
	doc, err := config.Generate(testContext(t))
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	want := "COMPUTE NONSTATIONARY tbegc=19900101.000000 deltc=3600.0 SEC tendc=19900102.000000"
	if !strings.Contains(doc.Input(), want) {
		t.Errorf("input is missing %q:\n%s", want, doc.Input())
	}
}

func TestGenerateResolvesWriterTimes(t *testing.T) {
	config := testConfig()
	config.Output = &component.Output{
		Points: &component.PointsLocUnion{Location: &component.Points{
			Sname: "outpts",
			Xp:    []float64{172.3},
			Yp:    []float64{-39.0},
		}},
		Table: &component.Table{
			Sname:  "outpts",
			Fname:  "./table.nc",
			Output: []types.OutputQuantity{"hsign"},
			Times:  &subcomponent.TimeRangeOpen{},
		},
	}
	doc, err := config.Generate(testContext(t))
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if !strings.Contains(doc.Input(), "OUTPUT tbegtbl=19900101.000000 delttbl=3600.0 SEC") {
		t.Errorf("table times not resolved from the run period:\n%s", doc.Input())
	}
}

func TestGenerateKeepsPrescribedTimes(t *testing.T) {
	config := testConfig()
	config.Output = &component.Output{
		Points: &component.PointsLocUnion{Location: &component.Points{
			Sname: "outpts",
			Xp:    []float64{172.3},
			Yp:    []float64{-39.0},
		}},
		Table: &component.Table{
			Sname:  "outpts",
			Fname:  "./table.nc",
			Output: []types.OutputQuantity{"hsign"},
			Times: &subcomponent.TimeRangeOpen{
				Tbeg: time.Date(1990, 1, 1, 12, 0, 0, 0, time.UTC),
				Delt: subcomponent.Duration(30 * time.Minute),
				Dfmt: "min",
			},
		},
	}
	doc, err := config.Generate(testContext(t))
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if !strings.Contains(doc.Input(), "OUTPUT tbegtbl=19900101.120000 delttbl=30.0 MIN") {
		t.Errorf("prescribed table times were overridden:\n%s", doc.Input())
	}
}

func TestGenerateInvalidRuntime(t *testing.T) {
	config := testConfig()
	rt := &runtime.Context{Period: testPeriod()}
	if _, err := config.Generate(rt); err == nil {
		t.Fatal("expected error for context without staging dir")
	} else if !strings.Contains(err.Error(), "runtime:") {
		t.Errorf("error %q does not name the runtime section", err)
	}
}

func TestGenerateStagesForcing(t *testing.T) {
	datadir := t.TempDir()
	if err := os.WriteFile(filepath.Join(datadir, "bathy.nc"), []byte("depths"), 0644); err != nil {
		t.Fatal(err)
	}

	config := testConfig()
	config.Forcing = &forcing.Data{
		Bottom: &forcing.DataGrid{Var: "bottom", Dir: datadir, Pattern: "*.nc"},
	}
	rt := testContext(t)
	if _, err := config.Generate(rt); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	staged := filepath.Join(rt.StagingDir, "bathy.nc")
	data, err := os.ReadFile(staged)
	if err != nil {
		t.Fatalf("staged file not found: %v", err)
	}
	if string(data) != "depths" {
		t.Errorf("staged file content = %q, want %q", data, "depths")
	}
}
