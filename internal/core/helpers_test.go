package core_test

import (
	"testing"

	"github.com/toejough/implements/internal/core"
)

func mustClass(t *testing.T, name string, bases []*core.Class, members []core.Member, opts ...core.Option) *core.Class {
	t.Helper()

	class, err := core.NewClass(name, bases, members, opts...)
	if err != nil {
		t.Fatalf("defining class %s: %v", name, err)
	}

	return class
}

func mustInterface(
	t *testing.T, name string, bases []*core.Interface, members []core.Member, opts ...core.Option,
) *core.Interface {
	t.Helper()

	iface, err := core.NewInterface(name, bases, members, opts...)
	if err != nil {
		t.Fatalf("defining interface %s: %v", name, err)
	}

	return iface
}

// methodTakingAttr is "method(self, attr: attrType) -> int".
func methodTakingAttr(attrType core.Annotation) core.Member {
	return core.Method("method", core.Sig(core.TypeOf[int](), core.Arg("self", nil), core.Arg("attr", attrType)))
}

// names returns each type's name, in order.
func names(types []core.Type) []string {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = t.Name()
	}

	return out
}
