// Package script runs line-oriented simulator scripts. Each line is split
// shell-style and dispatched to a named handler; '#' starts a comment.
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/google/shlex"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("bad arguments")
)

// Handler runs one command. args excludes the command name.
type Handler func(args []string) error

// Command is a registered script command
type Command struct {
	Name    string
	Usage   string // argument synopsis for help
	Handler Handler
}

// Registry maps command names to handlers
type Registry struct {
	mu       sync.RWMutex
	commands map[string]*Command
	order    []string
}

func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]*Command)}
}

// Register adds a command. Registering a name again replaces its handler.
func (r *Registry) Register(name, usage string, handler Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.commands[name]; !exists {
		r.order = append(r.order, name)
	}
	r.commands[name] = &Command{Name: name, Usage: usage, Handler: handler}
}

// Lookup retrieves a command by name
func (r *Registry) Lookup(name string) (*Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.commands[name]
	return cmd, ok
}

// Count returns the number of registered commands
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.commands)
}

// Help lists the commands in registration order
func (r *Registry) Help() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var b strings.Builder
	for _, name := range r.order {
		cmd := r.commands[name]
		b.WriteString(name)
		if cmd.Usage != "" {
			b.WriteString(" " + cmd.Usage)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Exec runs one line. Blank and comment-only lines do nothing.
func (r *Registry) Exec(line string) error {
	words, err := shlex.Split(line)
	if err != nil {
		return err
	}
	if len(words) == 0 {
		return nil
	}
	cmd, ok := r.Lookup(words[0])
	if !ok {
		return fmt.Errorf("%s: %w", words[0], ErrUnknownCommand)
	}
	if err := cmd.Handler(words[1:]); err != nil {
		if errors.Is(err, ErrUsage) && cmd.Usage != "" {
			return fmt.Errorf("%s: %w (usage: %s %s)", cmd.Name, err, cmd.Name, cmd.Usage)
		}
		return fmt.Errorf("%s: %w", cmd.Name, err)
	}
	return nil
}

// Run executes every line of rd and stops at the first error
func (r *Registry) Run(rd io.Reader) error {
	scanner := bufio.NewScanner(rd)
	for n := 1; scanner.Scan(); n++ {
		if err := r.Exec(scanner.Text()); err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
	}
	return scanner.Err()
}
