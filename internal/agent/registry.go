package agent

import (
	"fmt"
	"sort"
)

// Registry maps agent names to instances. It is built once at startup and
// read-only afterwards.
type Registry struct {
	agents map[string]Agent
}

// NewRegistry registers agents by name. Duplicate names are an error.
func NewRegistry(agents ...Agent) (*Registry, error) {
	r := &Registry{agents: make(map[string]Agent, len(agents))}
	for _, a := range agents {
		if _, dup := r.agents[a.Name()]; dup {
			return nil, fmt.Errorf("agent %q registered twice", a.Name())
		}
		r.agents[a.Name()] = a
	}
	return r, nil
}

func (r *Registry) Get(name string) (Agent, bool) {
	a, ok := r.agents[name]
	return a, ok
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.agents))
	for name := range r.agents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
