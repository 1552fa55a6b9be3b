package manifest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEntry_CommandLine(t *testing.T) {
	tests := []struct {
		name     string
		entry    Entry
		userArgs string
		want     string
	}{
		{
			name:     "defaults and user args",
			entry:    Entry{Path: "/bin/echo", Defaults: "hello", AllowArgs: true},
			userArgs: "world",
			want:     "/bin/echo hello world",
		},
		{
			name:  "bare path",
			entry: Entry{Path: "/bin/date"},
			want:  "/bin/date",
		},
		{
			name:  "defaults only",
			entry: Entry{Path: "/bin/ping", Defaults: "-c 4"},
			want:  "/bin/ping -c 4",
		},
		{
			name:     "user args only",
			entry:    Entry{Path: "/bin/ls", AllowArgs: true},
			userArgs: "/tmp",
			want:     "/bin/ls /tmp",
		},
		{
			name:     "whitespace collapsed and trimmed",
			entry:    Entry{Path: "/bin/echo", Defaults: " hello  "},
			userArgs: "  world ",
			want:     "/bin/echo hello world",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.entry.CommandLine(tt.userArgs))
		})
	}
}

func TestEntry_Argv(t *testing.T) {
	e := Entry{Path: "/bin/ping", Defaults: "-c 4", AllowArgs: true}
	require.Equal(t, []string{"/bin/ping", "-c", "4", "example.com"}, e.Argv("example.com"))

	bare := Entry{Path: "/bin/date"}
	require.Equal(t, []string{"/bin/date"}, bare.Argv(""))
}

func TestManifest_Prompts(t *testing.T) {
	m := &Manifest{Entries: []Entry{
		{Prompt: "First", Path: "/bin/true"},
		{Prompt: "Second", Path: "/bin/true"},
	}}
	require.Equal(t, []string{"First", "Second"}, m.Prompts())
}
