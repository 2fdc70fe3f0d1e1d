// Package subcomponent holds the reusable fragments that SWAN commands embed
// inline: time specifications, grid readers, spectral shapes, boundary data
// and numerical scheme parameters. Fragments render to bare token strings;
// the owning command decides placement and line folding.
package subcomponent

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/swanconfig/render"
)

// DefaultTime is used when a time range is created without an explicit
// begin time, so callers can fill times in later from the run period.
var DefaultTime = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)

// DefaultDelt is the fallback output interval.
const DefaultDelt = time.Hour

// timeFormats maps the SWAN tfmt identifiers to Go layouts.
var timeFormats = map[int]string{
	1: "20060102.150405",
	2: "'02-Jan-06 15:04:05'",
	3: "01/02/06.15:04:05",
	4: "15:04:05",
	5: "06/01/02 15:04:05'",
	6: "0601021504",
}

// TimeFormat returns the Go layout for a SWAN tfmt identifier. Identifier 1
// (ISO notation 19870530.153000) is the default.
func TimeFormat(tfmt int) (string, error) {
	if tfmt == 0 {
		tfmt = 1
	}
	layout, ok := timeFormats[tfmt]
	if !ok {
		return "", fmt.Errorf("tfmt must be in the range 1-6, got %d", tfmt)
	}
	return layout, nil
}

// Time renders a single [time] token in one of the SWAN time formats.
type Time struct {
	Time time.Time `yaml:"time"`
	Tfmt int       `yaml:"tfmt"`
}

// Validate checks the format identifier.
func (t Time) Validate() error {
	_, err := TimeFormat(t.Tfmt)
	return err
}

// Render formats the time token.
func (t Time) Render() string {
	layout, err := TimeFormat(t.Tfmt)
	if err != nil {
		layout = timeFormats[1]
	}
	return t.Time.Format(layout)
}

// Duration wraps time.Duration with YAML support for Go duration strings
// ("1h30m"), ISO 8601 durations ("PT1H") and plain numbers of seconds.
type Duration time.Duration

// UnmarshalYAML accepts the supported duration spellings.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParseDuration(raw)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// ParseDuration parses the duration spellings accepted in config files.
func ParseDuration(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("empty duration")
	}
	if secs, err := strconv.ParseFloat(raw, 64); err == nil {
		return time.Duration(secs * float64(time.Second)), nil
	}
	if strings.HasPrefix(raw, "P") || strings.HasPrefix(raw, "-P") {
		return parseISODuration(raw)
	}
	return time.ParseDuration(raw)
}

// parseISODuration handles the ISO 8601 subset used in run definitions:
// [-]P[nD][T[nH][nM][nS]].
func parseISODuration(raw string) (time.Duration, error) {
	orig := raw
	negative := strings.HasPrefix(raw, "-")
	raw = strings.TrimPrefix(raw, "-")
	raw = strings.TrimPrefix(raw, "P")

	datePart, timePart, _ := strings.Cut(raw, "T")
	var total time.Duration
	parse := func(part string, units map[byte]time.Duration) error {
		for part != "" {
			i := strings.IndexAny(part, "DHMS")
			if i == -1 {
				return fmt.Errorf("invalid ISO 8601 duration %q", orig)
			}
			unit, ok := units[part[i]]
			if !ok {
				return fmt.Errorf("invalid ISO 8601 duration %q", orig)
			}
			value, err := strconv.ParseFloat(part[:i], 64)
			if err != nil {
				return fmt.Errorf("invalid ISO 8601 duration %q", orig)
			}
			total += time.Duration(value * float64(unit))
			part = part[i+1:]
		}
		return nil
	}
	if err := parse(datePart, map[byte]time.Duration{'D': 24 * time.Hour}); err != nil {
		return 0, err
	}
	err := parse(timePart, map[byte]time.Duration{
		'H': time.Hour, 'M': time.Minute, 'S': time.Second,
	})
	if err != nil {
		return 0, err
	}
	if negative {
		total = -total
	}
	return total, nil
}

// Delt renders a time interval as "[delt] SEC|MIN|HR|DAY".
type Delt struct {
	Delt Duration `yaml:"delt"`
	Dfmt string   `yaml:"dfmt"`
}

var deltScaling = map[string]float64{
	"sec": 1, "min": 60, "hr": 3600, "day": 86400,
}

// Validate checks the interval unit.
func (d Delt) Validate() error {
	if d.Dfmt == "" {
		return nil
	}
	if _, ok := deltScaling[d.Dfmt]; !ok {
		return fmt.Errorf("dfmt must be one of sec, min, hr, day, got %q", d.Dfmt)
	}
	return nil
}

// Render formats the interval value in the configured unit.
func (d Delt) Render() string {
	dfmt := d.Dfmt
	if dfmt == "" {
		dfmt = "sec"
	}
	value := time.Duration(d.Delt).Seconds() / deltScaling[dfmt]
	return render.Float(value) + " " + strings.ToUpper(dfmt)
}

// TimeRangeOpen renders "tbeg= delt=" tokens. The suffix is appended to the
// token names so the same range serves tbegblk/deltblk, tbegtbl/delttbl and
// the other per-writer spellings.
type TimeRangeOpen struct {
	Tbeg   time.Time `yaml:"tbeg"`
	Delt   Duration  `yaml:"delt"`
	Tfmt   int       `yaml:"tfmt"`
	Dfmt   string    `yaml:"dfmt"`
	Suffix string    `yaml:"-"`
}

// Validate checks the time and interval formats.
func (t TimeRangeOpen) Validate() error {
	if _, err := TimeFormat(t.Tfmt); err != nil {
		return err
	}
	return Delt{Delt: t.Delt, Dfmt: t.Dfmt}.Validate()
}

// WithDefaults fills unset times from the given period values.
func (t TimeRangeOpen) WithDefaults(tbeg time.Time, delt time.Duration) TimeRangeOpen {
	if t.Tbeg.IsZero() {
		t.Tbeg = tbeg
	}
	if t.Delt == 0 {
		t.Delt = Duration(delt)
	}
	return t
}

// Render formats the open-ended time range.
func (t TimeRangeOpen) Render() string {
	tbeg := t.Tbeg
	if tbeg.IsZero() {
		tbeg = DefaultTime
	}
	delt := t.Delt
	if delt == 0 {
		delt = Duration(DefaultDelt)
	}
	return fmt.Sprintf("tbeg%s=%s delt%s=%s",
		t.Suffix, Time{Time: tbeg, Tfmt: t.Tfmt}.Render(),
		t.Suffix, Delt{Delt: delt, Dfmt: t.Dfmt}.Render())
}

// TimeRangeClosed renders "tbeg= delt= tend=" tokens.
type TimeRangeClosed struct {
	Tbeg   time.Time `yaml:"tbeg"`
	Tend   time.Time `yaml:"tend"`
	Delt   Duration  `yaml:"delt"`
	Tfmt   int       `yaml:"tfmt"`
	Dfmt   string    `yaml:"dfmt"`
	Suffix string    `yaml:"-"`
}

// Validate checks the time and interval formats and the range ordering.
func (t TimeRangeClosed) Validate() error {
	if err := (TimeRangeOpen{Tbeg: t.Tbeg, Delt: t.Delt, Tfmt: t.Tfmt, Dfmt: t.Dfmt}).Validate(); err != nil {
		return err
	}
	if !t.Tbeg.IsZero() && !t.Tend.IsZero() && !t.Tend.After(t.Tbeg) {
		return fmt.Errorf("tend must be after tbeg")
	}
	return nil
}

// WithDefaults fills unset times from the given period values.
func (t TimeRangeClosed) WithDefaults(tbeg, tend time.Time, delt time.Duration) TimeRangeClosed {
	if t.Tbeg.IsZero() {
		t.Tbeg = tbeg
	}
	if t.Tend.IsZero() {
		t.Tend = tend
	}
	if t.Delt == 0 {
		t.Delt = Duration(delt)
	}
	return t
}

// Render formats the closed time range.
func (t TimeRangeClosed) Render() string {
	tend := t.Tend
	if tend.IsZero() {
		tend = DefaultTime.Add(24 * time.Hour)
	}
	open := TimeRangeOpen{Tbeg: t.Tbeg, Delt: t.Delt, Tfmt: t.Tfmt, Dfmt: t.Dfmt, Suffix: t.Suffix}
	return fmt.Sprintf("%s tend%s=%s",
		open.Render(), t.Suffix, Time{Time: tend, Tfmt: t.Tfmt}.Render())
}

// Times enumerates the instants of the range from tbeg to tend inclusive,
// stepping by delt. Unset fields fall back to the render defaults.
func (t TimeRangeClosed) Times() []time.Time {
	tbeg := t.Tbeg
	if tbeg.IsZero() {
		tbeg = DefaultTime
	}
	tend := t.Tend
	if tend.IsZero() {
		tend = DefaultTime.Add(24 * time.Hour)
	}
	delt := time.Duration(t.Delt)
	if delt <= 0 {
		delt = DefaultDelt
	}
	var out []time.Time
	for cur := tbeg; !cur.After(tend); cur = cur.Add(delt) {
		out = append(out, cur)
	}
	return out
}

// Stationary renders "STATIONARY time=...".
type Stationary struct {
	Time time.Time `yaml:"time"`
	Tfmt int       `yaml:"tfmt"`
}

// Validate checks the time format.
func (s Stationary) Validate() error {
	_, err := TimeFormat(s.Tfmt)
	return err
}

// Render formats the stationary time specification.
func (s Stationary) Render() string {
	t := s.Time
	if t.IsZero() {
		t = DefaultTime
	}
	return "STATIONARY time=" + Time{Time: t, Tfmt: s.Tfmt}.Render()
}

// Times returns the single computation instant.
func (s Stationary) Times() []time.Time {
	t := s.Time
	if t.IsZero() {
		t = DefaultTime
	}
	return []time.Time{t}
}

// Format returns the tfmt identifier for the rendered times.
func (s Stationary) Format() int { return s.Tfmt }

// Nonstationary renders "NONSTATIONARY tbeg= delt= tend=".
type Nonstationary struct {
	TimeRangeClosed `yaml:",inline"`
}

// Render formats the nonstationary time specification.
func (n Nonstationary) Render() string {
	return "NONSTATIONARY " + n.TimeRangeClosed.Render()
}

// Format returns the tfmt identifier for the rendered times.
func (n Nonstationary) Format() int { return n.Tfmt }
