// Package match provides gomega matchers for structural conformance.
// It is designed to be dot-imported alongside gomega:
//
//	import (
//	    . "github.com/onsi/gomega"
//	    . "github.com/toejough/implements/match"
//	)
//
//	Expect(class).To(Implement(reader, writer))
package match

import (
	"errors"
	"fmt"

	"github.com/onsi/gomega/types"
	"github.com/toejough/implements/internal/core"
)

// BeInstantiable succeeds for classes and for *core.Object values' classes, and
// fails for interfaces.
func BeInstantiable() types.GomegaMatcher {
	return &instantiableMatcher{}
}

// BeSubclassOf succeeds when the actual type is a structural subclass of any target.
func BeSubclassOf(targets ...core.Type) types.GomegaMatcher {
	return &subclassMatcher{targets: targets, checker: core.DefaultChecker()}
}

// Implement succeeds when the actual type satisfies every interface.
// The failure message names the first unmet member.
func Implement(ifaces ...*core.Interface) types.GomegaMatcher {
	return ImplementWith(core.DefaultChecker(), ifaces...)
}

// ImplementWith is Implement using a specific checker.
func ImplementWith(checker *core.Checker, ifaces ...*core.Interface) types.GomegaMatcher {
	return &implementMatcher{ifaces: ifaces, checker: checker}
}

// unexported variables.
var (
	errNotAType = errors.New("expected a class, an interface or an object")
)

type implementMatcher struct {
	ifaces  []*core.Interface
	checker *core.Checker
	lastErr error
}

func (m *implementMatcher) FailureMessage(actual any) string {
	if m.lastErr == nil {
		return fmt.Sprintf("Expected\n\t%v\nto implement %v", actual, m.ifaces)
	}

	var notImpl *core.NotImplementedError
	if errors.As(m.lastErr, &notImpl) {
		return fmt.Sprintf("Expected\n\t%v\nto implement %v\n%v\n%s", actual, m.ifaces, notImpl, notImpl.Diff())
	}

	return fmt.Sprintf("Expected\n\t%v\nto implement %v\n%v", actual, m.ifaces, m.lastErr)
}

func (m *implementMatcher) Match(actual any) (bool, error) {
	candidate, err := typeOf(actual)
	if err != nil {
		return false, err
	}

	for _, iface := range m.ifaces {
		m.lastErr = m.checker.Check(candidate, iface)
		if m.lastErr != nil {
			return false, nil
		}
	}

	return true, nil
}

func (m *implementMatcher) NegatedFailureMessage(actual any) string {
	return fmt.Sprintf("Expected\n\t%v\nnot to implement %v", actual, m.ifaces)
}

type instantiableMatcher struct{}

func (m *instantiableMatcher) FailureMessage(actual any) string {
	return fmt.Sprintf("Expected\n\t%v\nto be instantiable", actual)
}

func (m *instantiableMatcher) Match(actual any) (bool, error) {
	candidate, err := typeOf(actual)
	if err != nil {
		return false, err
	}

	_, err = core.Instantiate(candidate)

	return err == nil, nil
}

func (m *instantiableMatcher) NegatedFailureMessage(actual any) string {
	return fmt.Sprintf("Expected\n\t%v\nnot to be instantiable", actual)
}

type subclassMatcher struct {
	targets []core.Type
	checker *core.Checker
}

func (m *subclassMatcher) FailureMessage(actual any) string {
	return fmt.Sprintf("Expected\n\t%v\nto be a subclass of one of %v", actual, m.targets)
}

func (m *subclassMatcher) Match(actual any) (bool, error) {
	candidate, err := typeOf(actual)
	if err != nil {
		return false, err
	}

	return m.checker.IsSubclass(candidate, m.targets...), nil
}

func (m *subclassMatcher) NegatedFailureMessage(actual any) string {
	return fmt.Sprintf("Expected\n\t%v\nnot to be a subclass of any of %v", actual, m.targets)
}

// typeOf accepts a core.Type or an *core.Object, whose class is used.
func typeOf(actual any) (core.Type, error) {
	switch typed := actual.(type) {
	case *core.Object:
		if typed != nil {
			return typed.Class(), nil
		}
	case *core.Class:
		if typed != nil {
			return typed, nil
		}
	case *core.Interface:
		if typed != nil {
			return typed, nil
		}
	}

	return nil, fmt.Errorf("%w, got %T", errNotAType, actual)
}
