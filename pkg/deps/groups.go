package deps

import "slices"

// Groups is an insertion-ordered set of dependency group (scope) names.
// The zero value is not usable; create one with NewGroups.
type Groups struct {
	order []string
	seen  map[string]struct{}
}

// NewGroups creates a set holding names in the given order. Duplicates
// keep their first position.
func NewGroups(names ...string) *Groups {
	g := &Groups{seen: make(map[string]struct{}, len(names))}
	for _, n := range names {
		g.Add(n)
	}
	return g
}

// Add appends name unless it is already present. It reports whether the
// set changed.
func (g *Groups) Add(name string) bool {
	if _, ok := g.seen[name]; ok {
		return false
	}
	g.seen[name] = struct{}{}
	g.order = append(g.order, name)
	return true
}

// Has reports whether name is in the set.
func (g *Groups) Has(name string) bool {
	if g == nil {
		return false
	}
	_, ok := g.seen[name]
	return ok
}

// Len returns the number of groups. A nil set is empty.
func (g *Groups) Len() int {
	if g == nil {
		return 0
	}
	return len(g.order)
}

// Values returns the groups in insertion order.
func (g *Groups) Values() []string {
	if g == nil {
		return nil
	}
	return slices.Clone(g.order)
}
