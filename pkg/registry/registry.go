// Package registry names the toolkit's operations so the CLI, HTTP, and MCP
// surfaces can expose one catalog instead of three hand-maintained lists.
package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Handler executes one operation. It receives a context and a map of loosely
// typed arguments, and returns a result or error.
type Handler func(ctx context.Context, args map[string]any) (any, error)

// Arg describes a single argument of an operation. Type is informational
// ("string", "int", "float", "bool") and feeds transport schemas.
type Arg struct {
	Name     string
	Type     string
	Required bool
	Help     string
}

// Operation couples a handler with the metadata transports need to list and
// document it.
type Operation struct {
	Name    string
	Group   string
	Summary string
	Args    []Arg
	Handler Handler
}

var (
	// ErrNotFound reports an operation name the registry does not know.
	ErrNotFound = errors.New("operation not found")

	// ErrMissingArg reports a required argument absent from an Execute call.
	ErrMissingArg = errors.New("missing required argument")
)

// Registry manages the available operations.
type Registry struct {
	mu  sync.RWMutex
	ops map[string]Operation
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		ops: make(map[string]Operation),
	}
}

// Register adds an operation to the registry.
// If an operation with the same name exists, it is overwritten.
func (r *Registry) Register(op Operation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops[op.Name] = op
}

// Get returns the named operation.
func (r *Registry) Get(name string) (Operation, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	op, ok := r.ops[name]
	return op, ok
}

// List returns every registered operation, sorted by name.
func (r *Registry) List() []Operation {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ops := make([]Operation, 0, len(r.ops))
	for _, op := range r.ops {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i].Name < ops[j].Name })
	return ops
}

// Execute looks up an operation by name, checks that every required argument
// is present, and runs the handler.
func (r *Registry) Execute(ctx context.Context, name string, args map[string]any) (any, error) {
	op, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	for _, a := range op.Args {
		if !a.Required {
			continue
		}
		if _, present := args[a.Name]; !present {
			return nil, fmt.Errorf("operation %q: %w: %s", name, ErrMissingArg, a.Name)
		}
	}
	return op.Handler(ctx, args)
}
