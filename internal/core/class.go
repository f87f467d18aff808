package core

import (
	"fmt"
	"log/slog"
	"slices"
)

// Class is an ordinary, instantiable entity. It has no required relationship to
// any interface; conformance is always judged structurally.
type Class struct {
	namespace

	bases      []*Class
	mro        []*Class
	implements []*Interface
}

// Bases returns the direct base classes.
func (c *Class) Bases() []*Class {
	return slices.Clone(c.bases)
}

// Implements returns the interfaces the class declared and was checked against.
func (c *Class) Implements() []*Interface {
	return slices.Clone(c.implements)
}

// LookupStatic resolves name through the MRO.
func (c *Class) LookupStatic(name string) (Member, bool) {
	return lookupStatic(c.MRO(), name)
}

// MRO returns the class followed by its ancestors in C3 order.
func (c *Class) MRO() []Type {
	return typesOf(c.mro)
}

func (c *Class) String() string {
	return "class " + c.name
}

// NewClass defines a class. Every interface passed through Implements is
// checked before the class is returned; the first unmet interface aborts the
// definition with a *NotImplementedError and later interfaces are not checked.
// A value that is not an interface fails with an *InvalidArgumentError before
// any conformance work starts.
func NewClass(name string, bases []*Class, members []Member, opts ...Option) (*Class, error) {
	cfg := applyOptions(opts)

	ifaces, err := interfacesOf(cfg.implements)
	if err != nil {
		return nil, err
	}

	if slices.Contains(bases, nil) {
		return nil, &InvalidArgumentError{Value: bases, Reason: "class bases must be non-nil classes"}
	}

	ns, err := newNamespace(name, members)
	if err != nil {
		return nil, err
	}

	class := &Class{
		namespace: ns,
		bases:     slices.Clone(bases),
	}

	class.mro, err = linearize(class, class.bases, func(base *Class) []*Class { return base.mro })
	if err != nil {
		return nil, fmt.Errorf("class %s: %w", name, err)
	}

	checker := cfg.checker()

	for _, iface := range ifaces {
		err = checker.Check(class, iface)
		if err != nil {
			return nil, err
		}
	}

	class.implements = ifaces

	cfg.logger.Debug("defined class",
		slog.String("class", name),
		slog.Int("implements", len(ifaces)),
	)

	return class, nil
}

// interfacesOf checks that every declared value is a non-nil *Interface.
func interfacesOf(types []Type) ([]*Interface, error) {
	ifaces := make([]*Interface, 0, len(types))

	for _, t := range types {
		iface, ok := t.(*Interface)
		if !ok || iface == nil {
			return nil, &InvalidArgumentError{Value: t, Reason: "arguments to Implements must be interfaces"}
		}

		ifaces = append(ifaces, iface)
	}

	return ifaces, nil
}
