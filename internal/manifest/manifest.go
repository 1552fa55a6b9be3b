package manifest

import (
	"strings"
)

// Entry is one permitted command: the label shown in the menu, the absolute
// path of the executable, fixed trailing arguments supplied by the
// administrator, and whether the user may append arguments of their own.
type Entry struct {
	Prompt    string `yaml:"prompt"`
	Path      string `yaml:"path"`
	Defaults  string `yaml:"defaults"`
	AllowArgs bool   `yaml:"allow_args"`
}

// Manifest is the ordered list of permitted commands for one identity.
// Order in the file is display order.
type Manifest struct {
	Entries []Entry
	// Source is the resolved file the entries were loaded from.
	Source string
}

// CommandLine renders the line recorded in the audit trail: path, the
// administrator defaults, then the user arguments, single-space separated
// with surrounding whitespace trimmed.
func (e Entry) CommandLine(userArgs string) string {
	line := e.Path + " " + e.Defaults + " " + userArgs
	return strings.Join(strings.Fields(line), " ")
}

// Argv builds the argument vector used for execution. The child is invoked
// directly, without a shell, so defaults and user arguments are split on
// whitespace. Neither may contain quoting: defaults come from the manifest
// and user arguments have already passed the allow-list.
func (e Entry) Argv(userArgs string) []string {
	argv := []string{e.Path}
	argv = append(argv, strings.Fields(e.Defaults)...)
	argv = append(argv, strings.Fields(userArgs)...)
	return argv
}

// Prompts returns the menu labels in display order.
func (m *Manifest) Prompts() []string {
	prompts := make([]string, len(m.Entries))
	for i, e := range m.Entries {
		prompts[i] = e.Prompt
	}
	return prompts
}
