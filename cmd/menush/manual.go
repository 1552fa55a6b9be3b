package main

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

const manualText = `# menush

A restricted shell. The user picks from a fixed menu; nothing outside the
menu ever runs.

## Menu files

Menus are YAML files in the menu directory, named after the user they
apply to. When no per-user file exists, ` + "`__default__`" + ` is used.
A menu is an ordered list of entries:

    - prompt: Show interface status
      path: /sbin/ip
      defaults: addr show
    - prompt: Ping a host
      path: /bin/ping
      defaults: -c 4
      allow_args: true

| key | required | meaning |
|---|---|---|
| prompt | yes | menu label |
| path | yes | absolute path to an executable |
| defaults | no | fixed arguments, appended verbatim |
| allow_args | no | prompt the user for extra arguments |

Validation is fail-closed: one invalid entry rejects the whole menu and
the session never starts.

## Arguments

When ` + "`allow_args`" + ` is set, user input is accepted only if every
character is in ` + "`[A-Za-z0-9 .+=_/,-]`" + `. Anything else re-prompts.
Commands are invoked directly, without a shell.

## Audit

Every menu load, composed command line, nonzero exit status and fatal
error is recorded to the system log (auth facility) under the ` + "`menush`" + ` tag.
`

// getManualCommand returns the manual command.
func getManualCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "manual",
		Short: "Show the menu file format and usage manual",
		RunE: func(cmd *cobra.Command, args []string) error {
			term, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(80),
			)
			if err != nil {
				fmt.Print(manualText)
				return nil
			}
			out, err := term.Render(manualText)
			if err != nil {
				// Fall back to the raw text
				fmt.Print(manualText)
				return nil
			}
			fmt.Print(out)
			return nil
		},
	}
}
