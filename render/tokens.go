package render

import (
	"fmt"
	"strconv"
	"strings"
)

// Float formats a float the way SWAN command files expect: always with a
// decimal point or exponent, never as a bare integer (173 renders as 173.0).
func Float(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if i := strings.IndexAny(s, "eE"); i >= 0 && !strings.Contains(s, "Inf") {
		// Plain decimal notation up to 1e16; exponents only below 1e-4.
		if exp, err := strconv.Atoi(s[i+1:]); err == nil && exp >= 0 && exp < 16 {
			s = strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	if !strings.ContainsAny(s, ".eE") && !strings.Contains(s, "Inf") {
		s += ".0"
	}
	return s
}

// Quote wraps a string value in the single quotes the command grammar uses.
func Quote(s string) string {
	return "'" + s + "'"
}

// Line accumulates the space-separated tokens of one command. Optional
// fields append nothing when nil, so unset values leave no trace in the
// rendered command.
type Line struct {
	b strings.Builder
}

// NewLine starts a command with its leading keyword(s).
func NewLine(keyword string) *Line {
	l := &Line{}
	l.b.WriteString(keyword)
	return l
}

// Add appends a raw token.
func (l *Line) Add(token string) *Line {
	l.b.WriteString(" ")
	l.b.WriteString(token)
	return l
}

// Addf appends a formatted token.
func (l *Line) Addf(format string, args ...any) *Line {
	return l.Add(fmt.Sprintf(format, args...))
}

// Keyword appends an uppercase keyword token.
func (l *Line) Keyword(kw string) *Line {
	return l.Add(strings.ToUpper(kw))
}

// Float appends name=value for a required float field.
func (l *Line) Float(name string, v float64) *Line {
	return l.Add(name + "=" + Float(v))
}

// FloatOpt appends name=value when the optional float is set.
func (l *Line) FloatOpt(name string, v *float64) *Line {
	if v != nil {
		l.Float(name, *v)
	}
	return l
}

// Int appends name=value for a required integer field.
func (l *Line) Int(name string, v int) *Line {
	return l.Add(name + "=" + strconv.Itoa(v))
}

// IntOpt appends name=value when the optional integer is set.
func (l *Line) IntOpt(name string, v *int) *Line {
	if v != nil {
		l.Int(name, *v)
	}
	return l
}

// Str appends name='value' for a required string field.
func (l *Line) Str(name, v string) *Line {
	return l.Add(name + "=" + Quote(v))
}

// StrOpt appends name='value' when the optional string is set.
func (l *Line) StrOpt(name string, v *string) *Line {
	if v != nil {
		l.Str(name, *v)
	}
	return l
}

// String returns the assembled command.
func (l *Line) String() string {
	return l.b.String()
}

// Ptr returns a pointer to v. It keeps literals terse when populating
// optional fields in tests and builders.
func Ptr[T any](v T) *T {
	return &v
}
