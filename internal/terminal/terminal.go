package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrCancelled indicates input was interrupted or closed before a choice
// was made.
var ErrCancelled = errors.New("input cancelled")

// Prompter is the plain line-oriented front end: a numbered choice list
// read with bufio, matching classic restricted-shell behavior.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// New creates a prompter. Nil readers/writers default to the process
// stdio (the nil split exists for tests).
func New(in io.Reader, out io.Writer) *Prompter {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Clear homes the cursor and clears the terminal.
func (p *Prompter) Clear() {
	fmt.Fprint(p.out, "\033[H\033[2J")
}

// Notice prints a single informational line.
func (p *Prompter) Notice(msg string) {
	fmt.Fprintln(p.out, msg)
}

// Select renders choices as a numbered list and reads one selection,
// returning its zero-based index. Out-of-range or non-numeric input
// re-prompts; interrupted input returns ErrCancelled.
func (p *Prompter) Select(choices []string) (int, error) {
	for i, c := range choices {
		fmt.Fprintf(p.out, "%d) %s\n", i+1, c)
	}

	for {
		fmt.Fprintf(p.out, "[1-%d]: ", len(choices))
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || n < 1 || n > len(choices) {
			continue
		}
		return n - 1, nil
	}
}

// ReadArgs prompts for free-text command arguments and re-prompts until
// valid accepts the whole line.
func (p *Prompter) ReadArgs(valid func(string) bool) (string, error) {
	for {
		fmt.Fprint(p.out, "Command arguments: ")
		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		line = strings.TrimSpace(line)
		if !valid(line) {
			fmt.Fprintln(p.out, "Invalid characters in arguments.")
			continue
		}
		return line, nil
	}
}

// Pause blocks until the user presses Enter. There is no timeout.
func (p *Prompter) Pause() error {
	fmt.Fprint(p.out, "Press Return/Enter key to continue...")
	_, err := p.readLine()
	return err
}

func (p *Prompter) readLine() (string, error) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("%w: %v", ErrCancelled, err)
		}
		return "", ErrCancelled
	}
	return p.in.Text(), nil
}
