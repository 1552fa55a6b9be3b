// Package identity resolves the name of the authenticated user the menu
// belongs to.
package identity

import (
	"fmt"
	"os/user"
)

// Current returns the username of the authenticated user running the
// shell. The menu file is chosen by this name, so it comes from the
// process credentials, never from the environment.
func Current() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("cannot resolve current user: %w", err)
	}
	return u.Username, nil
}
