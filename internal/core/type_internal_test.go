package core

import (
	"errors"
	"testing"

	"pgregory.net/rapid"
)

func TestLinearize(t *testing.T) {
	t.Parallel()

	// Each entry lists a node's direct bases.
	graph := map[string][]string{
		"O":  nil,
		"A":  {"O"},
		"B":  {"O"},
		"C":  {"O"},
		"D":  {"O"},
		"E":  {"O"},
		"K1": {"A", "B", "C"},
		"K2": {"D", "B", "E"},
		"K3": {"D", "A"},
		"Z":  {"K1", "K2", "K3"},
	}

	order := map[string][]string{}

	var mroOf func(string) []string
	mroOf = func(node string) []string {
		if mro, ok := order[node]; ok {
			return mro
		}

		mro, err := linearize(node, graph[node], mroOf)
		if err != nil {
			t.Fatalf("linearize(%s): %v", node, err)
		}

		order[node] = mro

		return mro
	}

	tests := []struct {
		node string
		want []string
	}{
		{node: "O", want: []string{"O"}},
		{node: "A", want: []string{"A", "O"}},
		{node: "K1", want: []string{"K1", "A", "B", "C", "O"}},
		{node: "K3", want: []string{"K3", "D", "A", "O"}},
		{node: "Z", want: []string{"Z", "K1", "K2", "K3", "D", "A", "B", "C", "E", "O"}},
	}

	for _, testCase := range tests {
		got := mroOf(testCase.node)
		if len(got) != len(testCase.want) {
			t.Errorf("mro(%s) = %v, want %v", testCase.node, got, testCase.want)

			continue
		}

		for i := range got {
			if got[i] != testCase.want[i] {
				t.Errorf("mro(%s) = %v, want %v", testCase.node, got, testCase.want)

				break
			}
		}
	}
}

func TestLinearize_InconsistentOrder(t *testing.T) {
	t.Parallel()

	mros := map[string][]string{
		"X": {"X"},
		"Y": {"Y"},
		"P": {"P", "X", "Y"},
		"Q": {"Q", "Y", "X"},
	}

	_, err := linearize("R", []string{"P", "Q"}, func(node string) []string { return mros[node] })
	if !errors.Is(err, ErrInconsistentHierarchy) {
		t.Errorf("expected ErrInconsistentHierarchy, got %v", err)
	}
}

// TestLinearize_ChainProperty_Rapid verifies a single-inheritance chain
// linearizes to the chain itself.
func TestLinearize_ChainProperty_Rapid(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		depth := rapid.IntRange(1, 20).Draw(rt, "depth")

		mros := map[int][]int{0: {0}}
		for node := 1; node < depth; node++ {
			mro, err := linearize(node, []int{node - 1}, func(n int) []int { return mros[n] })
			if err != nil {
				rt.Fatalf("linearize(%d): %v", node, err)
			}

			mros[node] = mro
		}

		top := mros[depth-1]
		for i, node := range top {
			if node != depth-1-i {
				rt.Fatalf("chain of depth %d linearized to %v", depth, top)
			}
		}
	})
}

func TestIsDunder(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"__init__":   true,
		"__x__":      true,
		"____":       true,
		"__":         true,
		"_private":   false,
		"__mangled":  false,
		"trailing__": false,
		"method":     false,
	}

	for name, want := range tests {
		if got := IsDunder(name); got != want {
			t.Errorf("IsDunder(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestExtractSpec_PartialOnlyOwnMembers(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	base, err := NewInterface("Base", nil, []Member{Method("a", Sig(nil))}, WithRegistry(registry))
	if err != nil {
		t.Fatal(err)
	}

	child, err := NewInterface("Child", []*Interface{base},
		[]Member{Method("__init__", Sig(nil)), Method("b", Sig(nil))}, WithRegistry(registry))
	if err != nil {
		t.Fatal(err)
	}

	partial := extractSpec(child, modePartial).Names()
	full := extractSpec(child, modeFull).Names()

	if len(partial) != 1 || partial[0] != "b" {
		t.Errorf("partial spec = %v, want [b]", partial)
	}

	if len(full) != 2 || full[0] != "b" || full[1] != "a" {
		t.Errorf("full spec = %v, want [b a]", full)
	}
}
