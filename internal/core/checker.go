package core

import (
	"log/slog"
	"slices"
)

// Checker runs structural conformance checks against a spec registry.
// The zero value is not usable; use NewChecker or DefaultChecker.
type Checker struct {
	registry *Registry
	logger   *slog.Logger
}

// Check returns nil if candidate satisfies every member of iface, and a
// *NotImplementedError for the first member it does not. Members are looked
// up statically and compared by kind and signature only.
func (c *Checker) Check(candidate Type, iface *Interface) error {
	if isNil(candidate) {
		return &InvalidArgumentError{Value: candidate, Reason: "candidate must be a class or interface"}
	}

	if iface == nil {
		return &InvalidArgumentError{Value: iface, Reason: "conformance is checked against an interface"}
	}

	for name, want := range c.registry.Spec(iface).All() {
		got, ok := candidate.LookupStatic(name)
		if !ok {
			return c.fail(candidate, iface, want, nil)
		}

		if !want.Equivalent(got) {
			return c.fail(candidate, iface, want, &got)
		}
	}

	c.logger.Debug("candidate conforms",
		slog.String("candidate", candidate.Name()),
		slog.String("interface", iface.Name()),
	)

	return nil
}

// Conforms reports whether candidate satisfies iface.
func (c *Checker) Conforms(candidate Type, iface *Interface) bool {
	return c.Check(candidate, iface) == nil
}

// ConformsAll reports whether candidate satisfies every interface in ifaces,
// stopping at the first one it does not.
func (c *Checker) ConformsAll(candidate Type, ifaces ...*Interface) bool {
	for _, iface := range ifaces {
		if !c.Conforms(candidate, iface) {
			return false
		}
	}

	return true
}

// IsSubclass answers a subclass query the structural way: against an
// interface target it checks conformance, against a class target it checks
// nominal ancestry. It reports whether any target matches.
func (c *Checker) IsSubclass(candidate Type, targets ...Type) bool {
	if isNil(candidate) {
		return false
	}

	for _, target := range targets {
		switch typed := target.(type) {
		case *Interface:
			if typed != nil && c.Conforms(candidate, typed) {
				return true
			}
		case *Class:
			if typed != nil && slices.Contains(candidate.MRO(), Type(typed)) {
				return true
			}
		}
	}

	return false
}

// Registry returns the registry the checker reads specs from.
func (c *Checker) Registry() *Registry {
	return c.registry
}

func (c *Checker) fail(candidate Type, iface *Interface, want Member, got *Member) error {
	c.logger.Debug("candidate does not conform",
		slog.String("candidate", candidate.Name()),
		slog.String("interface", iface.Name()),
		slog.String("member", want.Name),
	)

	return &NotImplementedError{
		Candidate: candidate,
		Member:    want.Name,
		Interface: iface,
		Want:      want,
		Got:       got,
	}
}

// DefaultChecker returns a checker backed by the default registry.
func DefaultChecker() *Checker {
	return defaultChecker
}

// NewChecker creates a checker. WithRegistry and WithLogger are honoured.
func NewChecker(opts ...Option) *Checker {
	return applyOptions(opts).checker()
}

// isNil reports whether t is nil or a typed nil pointer.
func isNil(t Type) bool {
	switch typed := t.(type) {
	case nil:
		return true
	case *Interface:
		return typed == nil
	case *Class:
		return typed == nil
	default:
		return false
	}
}

// unexported variables.
var (
	//nolint:gochecknoglobals // Checker over the process-wide registry
	defaultChecker = &Checker{registry: defaultRegistry, logger: discardLogger}
)
