package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
	"gopkg.in/yaml.v3"
)

// FallbackName is the menu file used when no per-identity file exists.
const FallbackName = "__default__"

// ErrNoMenu is returned when neither a per-identity menu nor the shared
// fallback can be read.
var ErrNoMenu = errors.New("No menu definition found")

// Resolve picks the menu file for an identity: <dir>/<identity> when it
// exists, otherwise <dir>/__default__. An existing per-identity file is
// always the chosen one; if it then proves unreadable, Load fails rather
// than silently serving the shared menu.
func Resolve(dir, identity string) (string, error) {
	for _, p := range []string{
		filepath.Join(dir, identity),
		filepath.Join(dir, FallbackName),
	} {
		if info, err := os.Stat(p); err == nil && info.Mode().IsRegular() {
			return p, nil
		}
	}
	return "", ErrNoMenu
}

// Load reads, parses and validates the menu file at path. Validation is
// fail-closed: any invalid entry rejects the whole manifest, so a menu is
// either fully runnable or the session never starts.
func Load(path string) (*Manifest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNoMenu, path)
	}

	var entries []Entry
	if err := yaml.Unmarshal(b, &entries); err != nil {
		return nil, fmt.Errorf("Bad command menu format: %w", err)
	}

	m := &Manifest{Entries: entries, Source: path}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate checks every entry before any entry is used: prompts and paths
// must be non-empty, and every path must be an executable regular file.
func (m *Manifest) Validate() error {
	for _, e := range m.Entries {
		if e.Prompt == "" || e.Path == "" {
			return errors.New("Bad command menu format")
		}
	}
	for _, e := range m.Entries {
		if !executable(e.Path) {
			return fmt.Errorf("Invalid command: %s", e.Path)
		}
	}
	return nil
}

// executable reports whether path is a regular file the current process may
// execute. Access checks effective permissions, which matters when the
// shell runs setgid or under group-based menu dirs.
func executable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	return unix.Access(path, unix.X_OK) == nil
}
