// Package shell runs the interactive user agent menu.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/agux/uagen/internal/conf"
	"github.com/agux/uagen/internal/logging"
	"github.com/agux/uagen/internal/ua"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
)

var log = logging.Logger

// defaultMaxRetry is the write attempt limit used unless WithMaxRetry says otherwise.
const defaultMaxRetry = 3

type state int

const (
	stateMenu state = iota
	stateSingle
	stateMultiple
	stateExit
)

func (s state) String() string {
	switch s {
	case stateMenu:
		return "menu"
	case stateSingle:
		return "single"
	case stateMultiple:
		return "multiple"
	case stateExit:
		return "exit"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Shell reads menu choices line by line and prints generated agents.
type Shell struct {
	in          *bufio.Reader
	out         io.Writer
	gen         *ua.Generator
	defaultFile string
	maxRetry    int
	title       lipgloss.Style
}

// Option customizes a Shell.
type Option func(*Shell)

// WithDefaultFile sets the file used when the user leaves the file name blank.
func WithDefaultFile(name string) Option {
	return func(s *Shell) {
		if name != "" {
			s.defaultFile = name
		}
	}
}

// WithMaxRetry caps the attempts made to write the output file.
func WithMaxRetry(n int) Option {
	return func(s *Shell) {
		if n > 0 {
			s.maxRetry = n
		}
	}
}

// New creates a Shell saving to conf.DefaultOutputFile unless told otherwise.
// A nil gen uses a generator on the process-wide random source.
func New(in io.Reader, out io.Writer, gen *ua.Generator, opts ...Option) *Shell {
	if gen == nil {
		gen = ua.NewGenerator(nil)
	}
	s := &Shell{
		in:          bufio.NewReader(in),
		out:         out,
		gen:         gen,
		defaultFile: conf.DefaultOutputFile,
		maxRetry:    defaultMaxRetry,
		title:       lipgloss.NewRenderer(out).NewStyle().Bold(true),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Run loops over the menu until the user exits or input ends.
func (s *Shell) Run() error {
	st := stateMenu
	for st != stateExit {
		var e error
		prev := st
		switch st {
		case stateMenu:
			st, e = s.menu()
		case stateSingle:
			st = s.single()
		case stateMultiple:
			st, e = s.multiple()
		}
		if e != nil {
			return e
		}
		log.Debugf("shell: %s -> %s", prev, st)
	}
	return nil
}

func (s *Shell) menu() (state, error) {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, s.title.Render("User Agent Generator"))
	fmt.Fprintln(s.out, "1. Create a single user agent")
	fmt.Fprintln(s.out, "2. Create multiple user agents")
	fmt.Fprintln(s.out, "0. Exit")
	choice, e := s.prompt("Enter your choice: ")
	if e != nil {
		return s.onReadError(e)
	}
	switch choice {
	case "1":
		return stateSingle, nil
	case "2":
		return stateMultiple, nil
	case "0":
		fmt.Fprintln(s.out, "Exiting the program.")
		return stateExit, nil
	}
	fmt.Fprintln(s.out, "Invalid choice. Please enter 1, 2, or 0.")
	return stateMenu, nil
}

func (s *Shell) single() state {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Generated User Agent:")
	fmt.Fprintln(s.out, s.gen.One())
	return stateMenu
}

func (s *Shell) multiple() (state, error) {
	text, e := s.prompt("Enter the number of user agents to generate: ")
	if e != nil {
		return s.onReadError(e)
	}
	n, e := parseCount(text)
	if e != nil {
		fmt.Fprintf(s.out, "Invalid input: %s\n", e)
		return stateMenu, nil
	}

	agents := s.gen.Many(n)
	fmt.Fprintln(s.out)
	fmt.Fprintf(s.out, "Generated %d User Agents:\n", n)
	for _, a := range agents {
		fmt.Fprintln(s.out, a)
	}

	answer, e := s.prompt("\nDo you want to save the user agents to a .txt file? (yes/no): ")
	if e != nil {
		return s.onReadError(e)
	}
	switch strings.ToLower(answer) {
	case "yes", "y":
	default:
		return stateMenu, nil
	}

	name, e := s.prompt(fmt.Sprintf("Enter the filename (default '%s'): ", s.defaultFile))
	if e != nil {
		return s.onReadError(e)
	}
	if name == "" {
		name = s.defaultFile
	}
	if e = SaveAgents(name, agents, s.maxRetry); e != nil {
		log.Warnf("%+v", e)
		fmt.Fprintf(s.out, "An error occurred while saving the file: %v\n", e)
		return stateMenu, nil
	}
	log.Infof("saved %d user agents to %s", len(agents), name)
	fmt.Fprintf(s.out, "User agents saved to '%s'.\n", name)
	return stateMenu, nil
}

// prompt writes p and returns the next input line with surrounding space trimmed.
// A final line without a newline is still returned; io.EOF is only reported
// once nothing is left to read.
func (s *Shell) prompt(p string) (string, error) {
	fmt.Fprint(s.out, p)
	line, e := s.in.ReadString('\n')
	if e != nil {
		if e == io.EOF && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", e
	}
	return strings.TrimSpace(line), nil
}

// onReadError ends the loop quietly on EOF and fails on anything else.
func (s *Shell) onReadError(e error) (state, error) {
	if e == io.EOF {
		fmt.Fprintln(s.out)
		return stateExit, nil
	}
	return stateExit, errors.Wrap(e, "failed to read input")
}

func parseCount(text string) (int, error) {
	n, e := strconv.Atoi(text)
	if e != nil {
		return 0, errors.Errorf("'%s' is not a valid number.", text)
	}
	if n <= 0 {
		return 0, errors.New("Number must be positive.")
	}
	return n, nil
}
