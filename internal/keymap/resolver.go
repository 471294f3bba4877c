package keymap

import "github.com/samber/lo"

// Resolver maps key strings to actions.
type Resolver struct {
	bindings []Binding
	byKey    map[string]Action   // key -> action
	byAction map[Action][]string // action -> keys (for help)
}

// NewResolver creates a resolver from bindings. When two bindings share a
// key, the later one wins.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		bindings: bindings,
		byKey:    make(map[string]Action),
		byAction: make(map[Action][]string),
	}
	for _, b := range bindings {
		for _, key := range b.Keys {
			r.byKey[normalize(key)] = b.Action
		}
		r.byAction[b.Action] = append(r.byAction[b.Action], b.Keys...)
	}
	for action, keys := range r.byAction {
		r.byAction[action] = lo.Uniq(keys)
	}
	return r
}

// Resolve returns the action bound to key (a tea.KeyMsg string).
func (r *Resolver) Resolve(key string) (Action, bool) {
	a, ok := r.byKey[normalize(key)]
	return a, ok
}

// KeysFor returns the keys bound to an action.
func (r *Resolver) KeysFor(action Action) []string {
	return r.byAction[action]
}

// Bindings returns the bindings the resolver was built from.
func (r *Resolver) Bindings() []Binding {
	return r.bindings
}

// normalize maps bubbletea's space key string to its binding name.
func normalize(key string) string {
	if key == " " {
		return "space"
	}
	return key
}
