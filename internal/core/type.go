package core

import (
	"fmt"
	"slices"
)

// Type is a class-like entity: an *Interface or a *Class.
// Members are looked up statically; nothing is ever invoked.
type Type interface {
	fmt.Stringer

	// Name returns the declared name.
	Name() string
	// Members returns the type's own declared members, in declaration order.
	Members() []Member
	// MRO returns the type followed by its ancestors in resolution order.
	MRO() []Type
	// LookupStatic resolves name through the MRO without evaluating anything.
	LookupStatic(name string) (Member, bool)

	ownMember(name string) (Member, bool)
}

// namespace is the body of a type declaration.
type namespace struct {
	name    string
	order   []string
	members map[string]Member
}

// Members returns the declared members in declaration order.
func (ns *namespace) Members() []Member {
	out := make([]Member, 0, len(ns.order))
	for _, name := range ns.order {
		out = append(out, ns.members[name])
	}

	return out
}

// Name returns the declared name.
func (ns *namespace) Name() string {
	return ns.name
}

func (ns *namespace) ownMember(name string) (Member, bool) {
	member, ok := ns.members[name]

	return member, ok
}

// linearize computes the C3 resolution order of head given its direct bases.
// mroOf returns an already-linearized base's order, starting with the base itself.
func linearize[T comparable](head T, bases []T, mroOf func(T) []T) ([]T, error) {
	seqs := make([][]T, 0, len(bases)+1)
	for _, base := range bases {
		seqs = append(seqs, slices.Clone(mroOf(base)))
	}

	seqs = append(seqs, slices.Clone(bases))

	result := []T{head}

	for {
		seqs = slices.DeleteFunc(seqs, func(seq []T) bool { return len(seq) == 0 })
		if len(seqs) == 0 {
			return result, nil
		}

		next, ok := c3Head(seqs)
		if !ok {
			return nil, ErrInconsistentHierarchy
		}

		result = append(result, next)

		for i, seq := range seqs {
			if seq[0] == next {
				seqs[i] = seq[1:]
			}
		}
	}
}

// c3Head picks the first sequence head that appears in no other sequence's tail.
func c3Head[T comparable](seqs [][]T) (T, bool) {
	for _, seq := range seqs {
		candidate := seq[0]

		inTail := slices.ContainsFunc(seqs, func(other []T) bool {
			return slices.Contains(other[1:], candidate)
		})
		if !inTail {
			return candidate, true
		}
	}

	var zero T

	return zero, false
}

// lookupStatic walks mro and returns the first declaration of name.
func lookupStatic(mro []Type, name string) (Member, bool) {
	for _, t := range mro {
		if member, ok := t.ownMember(name); ok {
			return member, true
		}
	}

	return Member{}, false
}

// newNamespace validates a declaration body.
func newNamespace(name string, members []Member) (namespace, error) {
	if name == "" {
		return namespace{}, &InvalidArgumentError{Value: name, Reason: "type name must not be empty"}
	}

	ns := namespace{
		name:    name,
		order:   make([]string, 0, len(members)),
		members: make(map[string]Member, len(members)),
	}

	for _, member := range members {
		if member.Name == "" {
			return namespace{}, &InvalidArgumentError{Value: member, Reason: "member name must not be empty"}
		}

		if _, dup := ns.members[member.Name]; dup {
			return namespace{}, fmt.Errorf("%w: %q declared twice in %s", ErrDuplicateMember, member.Name, name)
		}

		ns.order = append(ns.order, member.Name)
		ns.members[member.Name] = member
	}

	return ns, nil
}

// typesOf converts a typed slice to a []Type.
func typesOf[T Type](items []T) []Type {
	out := make([]Type, len(items))
	for i, item := range items {
		out[i] = item
	}

	return out
}
