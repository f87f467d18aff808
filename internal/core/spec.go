package core

import (
	"iter"
	"slices"
)

// Spec is the ordered name → member mapping an interface promises.
// Dunder-framed names are never included.
type Spec struct {
	iface   *Interface
	names   []string
	members map[string]Member
}

// All iterates the members in spec order.
func (s *Spec) All() iter.Seq2[string, Member] {
	return func(yield func(string, Member) bool) {
		for _, name := range s.names {
			if !yield(name, s.members[name]) {
				return
			}
		}
	}
}

// Get returns the member named name.
func (s *Spec) Get(name string) (Member, bool) {
	member, ok := s.members[name]

	return member, ok
}

// Interface returns the interface the spec was extracted from.
func (s *Spec) Interface() *Interface {
	return s.iface
}

// Len returns the number of members.
func (s *Spec) Len() int {
	return len(s.names)
}

// Names returns the member names in spec order.
func (s *Spec) Names() []string {
	return slices.Clone(s.names)
}

func (s *Spec) String() string {
	return "Spec(" + s.iface.String() + ")"
}

// extractMode values.
const (
	// modeFull includes every member reachable through the interface's MRO.
	modeFull extractMode = iota
	// modePartial includes only the interface's own declarations.
	modePartial
)

type extractMode int

// extractSpec builds the spec of iface. Within each type, declaration order is
// kept; across types, the MRO decides and the first declaration of a name wins.
func extractSpec(iface *Interface, mode extractMode) *Spec {
	sources := []Type{iface}
	if mode == modeFull {
		sources = iface.MRO()
	}

	spec := &Spec{iface: iface, members: make(map[string]Member)}

	for _, source := range sources {
		for _, member := range source.Members() {
			if IsDunder(member.Name) {
				continue
			}

			if _, seen := spec.members[member.Name]; seen {
				continue
			}

			spec.names = append(spec.names, member.Name)
			spec.members[member.Name] = member
		}
	}

	return spec
}
