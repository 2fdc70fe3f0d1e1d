// Package render turns command nodes into SWAN command-file text.
//
// Every node in the configuration tree implements Renderer. A node's Cmd
// returns one or more raw command strings; Render folds each of them into
// the command-file form, replacing embedded newlines with SWAN line
// continuations and splitting lines that exceed the maximum width.
package render

import "strings"

const (
	// MaxLineLength is the widest line SWAN accepts in a command file.
	MaxLineLength = 180

	// Indent is the number of spaces prefixed to continuation lines.
	Indent = 4
)

// Renderer is implemented by every command node in the configuration tree.
type Renderer interface {
	// Cmd returns the raw command strings for the node. Most nodes return a
	// single string; multi-command nodes (e.g. a list of OBSTACLE lines or a
	// COMPUTE/HOTFILE sequence) return one string per command.
	Cmd() []string
}

// Render produces the final command-file text for a node. Each command from
// Cmd is split into continuation lines and the commands are joined with
// newlines.
func Render(r Renderer) string {
	cmds := r.Cmd()
	lines := make([]string, 0, len(cmds))
	for _, cmd := range cmds {
		lines = append(lines, fold(cmd))
	}
	return strings.Join(lines, "\n")
}

// fold rewrites a single raw command into command-file lines. Embedded
// newlines mark points where the author wants a continuation; overlong
// segments are further split at the last space that fits.
func fold(cmd string) string {
	var parts []string
	for _, segment := range strings.Split(cmd, "\n") {
		parts = append(parts, split(segment)...)
	}
	return strings.Join(parts, " &\n"+strings.Repeat(" ", Indent))
}

// split breaks a segment at the last space before the maximum width,
// recursively, leaving room for the continuation marker and indent.
func split(segment string) []string {
	if len(segment) <= MaxLineLength {
		return []string{segment}
	}
	at := strings.LastIndex(segment[:MaxLineLength-1-Indent], " ")
	if at == -1 {
		at = MaxLineLength
	}
	return append([]string{segment[:at]}, split(segment[at+1:])...)
}
