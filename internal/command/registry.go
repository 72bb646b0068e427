package command

import (
	"errors"
	"fmt"
	"sort"
)

type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("command name %q is already registered", e.Name)
}

type DuplicateAliasError struct {
	Alias   string
	Command string
}

func (e *DuplicateAliasError) Error() string {
	return fmt.Sprintf("alias %q of command %q is already registered", e.Alias, e.Command)
}

type registered struct {
	Command
	descriptor Descriptor
}

func (r registered) Descriptor() Descriptor {
	return r.descriptor
}

// Registry maps command names and aliases to commands. It is populated once at
// startup and only read afterwards.
type Registry struct {
	commands map[string]registered
	aliases  map[string]string
}

func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]registered),
		aliases:  make(map[string]string),
	}
}

// Register adds cmd. The registry is left untouched when an error is returned.
func (r *Registry) Register(cmd Command) error {
	d := cmd.Descriptor().withDefaults()
	if d.Name == "" {
		return errors.New("command name is required")
	}

	if r.taken(d.Name) {
		return &DuplicateNameError{Name: d.Name}
	}

	seen := map[string]struct{}{d.Name: {}}
	for _, alias := range d.Aliases {
		if _, ok := seen[alias]; ok || r.taken(alias) {
			return &DuplicateAliasError{Alias: alias, Command: d.Name}
		}
		seen[alias] = struct{}{}
	}

	r.commands[d.Name] = registered{Command: cmd, descriptor: d}
	for _, alias := range d.Aliases {
		r.aliases[alias] = d.Name
	}

	return nil
}

func (r *Registry) taken(token string) bool {
	if _, ok := r.commands[token]; ok {
		return true
	}
	_, ok := r.aliases[token]
	return ok
}

// Lookup resolves token as a name first and as an alias second. Matching is case-sensitive.
func (r *Registry) Lookup(token string) (Command, bool) {
	if cmd, ok := r.commands[token]; ok {
		return cmd, true
	}
	if name, ok := r.aliases[token]; ok {
		return r.commands[name], true
	}
	return nil, false
}

// All returns every command sorted by category, then name.
func (r *Registry) All() []Command {
	out := make([]Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		out = append(out, cmd)
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Descriptor(), out[j].Descriptor()
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		return a.Name < b.Name
	})
	return out
}

func (r *Registry) Len() int {
	return len(r.commands)
}
