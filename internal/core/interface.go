package core

import (
	"fmt"
	"log/slog"
	"slices"
)

// Interface is a named, immutable capability declaration. It can be extended
// by other interfaces but never instantiated, and a descendant may not
// redeclare a member name any ancestor already promises.
type Interface struct {
	namespace

	bases    []*Interface
	mro      []*Interface
	registry *Registry
}

// Bases returns the direct ancestor interfaces.
func (i *Interface) Bases() []*Interface {
	return slices.Clone(i.bases)
}

// LookupStatic resolves name through the MRO.
func (i *Interface) LookupStatic(name string) (Member, bool) {
	return lookupStatic(i.MRO(), name)
}

// MRO returns the interface followed by its ancestors in C3 order.
func (i *Interface) MRO() []Type {
	return typesOf(i.mro)
}

// Spec returns the interface's full spec from the registry it was defined with.
func (i *Interface) Spec() *Spec {
	return i.registry.Spec(i)
}

func (i *Interface) String() string {
	return "interface " + i.name
}

// NewInterface declares an interface extending bases with the given members.
// It fails with an *OverloadError if any member redeclares a name already in a
// direct or indirect ancestor.
func NewInterface(name string, bases []*Interface, members []Member, opts ...Option) (*Interface, error) {
	cfg := applyOptions(opts)

	if cfg.implementsSet {
		return nil, &InvalidArgumentError{Value: cfg.implements, Reason: "interfaces extend other interfaces and cannot declare implementations"}
	}

	if slices.Contains(bases, nil) {
		return nil, &InvalidArgumentError{Value: bases, Reason: "interface bases must be non-nil interfaces"}
	}

	ns, err := newNamespace(name, members)
	if err != nil {
		return nil, err
	}

	iface := &Interface{
		namespace: ns,
		bases:     slices.Clone(bases),
		registry:  cfg.registry,
	}

	iface.mro, err = linearize(iface, iface.bases, func(base *Interface) []*Interface { return base.mro })
	if err != nil {
		return nil, fmt.Errorf("interface %s: %w", name, err)
	}

	err = preventOverloads(iface, cfg.registry)
	if err != nil {
		return nil, err
	}

	cfg.logger.Debug("defined interface",
		slog.String("interface", name),
		slog.Int("bases", len(bases)),
		slog.Int("members", len(members)),
	)

	return iface, nil
}

// preventOverloads compares the interface's own names against each direct base's full spec.
func preventOverloads(iface *Interface, registry *Registry) error {
	own := extractSpec(iface, modePartial)

	for _, base := range iface.bases {
		var clashes []string

		for name := range registry.Spec(base).All() {
			if _, ok := own.Get(name); ok {
				clashes = append(clashes, name)
			}
		}

		if len(clashes) > 0 {
			slices.Sort(clashes)

			return &OverloadError{Members: clashes, Ancestor: base, Descendant: iface}
		}
	}

	return nil
}
