package astutil_test

import (
	"testing"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
	"github.com/toejough/implements/internal/astutil"
)

// TestTypeString verifies that TypeString converts DST expression nodes to
// their Go source representation.
//
//nolint:funlen // table-driven test with comprehensive test cases
func TestTypeString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    dst.Expr
		expected string
	}{
		{
			name:     "nil expression",
			input:    nil,
			expected: "",
		},
		{
			name:     "ident",
			input:    &dst.Ident{Name: "MyType"},
			expected: "MyType",
		},
		{
			name:     "resolved ident",
			input:    &dst.Ident{Name: "Duration", Path: "time"},
			expected: "time.Duration",
		},
		{
			name: "selector expr",
			input: &dst.SelectorExpr{
				X:   &dst.Ident{Name: "io"},
				Sel: &dst.Ident{Name: "Reader"},
			},
			expected: "io.Reader",
		},
		{
			name:     "star expr",
			input:    &dst.StarExpr{X: &dst.Ident{Name: "string"}},
			expected: "*string",
		},
		{
			name:     "slice type",
			input:    &dst.ArrayType{Elt: &dst.Ident{Name: "int"}},
			expected: "[]int",
		},
		{
			name: "array type with length",
			input: &dst.ArrayType{
				Len: &dst.BasicLit{Value: "10"},
				Elt: &dst.Ident{Name: "byte"},
			},
			expected: "[10]byte",
		},
		{
			name: "map type",
			input: &dst.MapType{
				Key:   &dst.Ident{Name: "string"},
				Value: &dst.Ident{Name: "int"},
			},
			expected: "map[string]int",
		},
		{
			name:     "bidirectional chan",
			input:    &dst.ChanType{Dir: dst.SEND | dst.RECV, Value: &dst.Ident{Name: "int"}},
			expected: "chan int",
		},
		{
			name:     "send-only chan",
			input:    &dst.ChanType{Dir: dst.SEND, Value: &dst.Ident{Name: "int"}},
			expected: "chan<- int",
		},
		{
			name:     "receive-only chan",
			input:    &dst.ChanType{Dir: dst.RECV, Value: &dst.Ident{Name: "int"}},
			expected: "<-chan int",
		},
		{
			name:     "ellipsis",
			input:    &dst.Ellipsis{Elt: &dst.Ident{Name: "string"}},
			expected: "...string",
		},
		{
			name: "generic instantiation",
			input: &dst.IndexListExpr{
				X:       &dst.Ident{Name: "Pair"},
				Indices: []dst.Expr{&dst.Ident{Name: "K"}, &dst.Ident{Name: "V"}},
			},
			expected: "Pair[K, V]",
		},
		{
			name:     "empty interface",
			input:    &dst.InterfaceType{Methods: &dst.FieldList{}},
			expected: "interface{}",
		},
		{
			name:     "empty struct",
			input:    &dst.StructType{Fields: &dst.FieldList{}},
			expected: "struct{}",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			if got := astutil.TypeString(testCase.input); got != testCase.expected {
				t.Errorf("TypeString() = %q, want %q", got, testCase.expected)
			}
		})
	}
}

// TestTypeString_ParsedDeclarations round-trips types written in source.
func TestTypeString_ParsedDeclarations(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"A": "func(int, ...string) (bool, error)",
		"B": "func() error",
		"C": "interface{ Read([]byte) (int, error); fmt.Stringer }",
		"D": "struct{ X, Y int; Name string `json:\"name\"`; *bytes.Buffer }",
		"E": "map[string][]*Node[int]",
		"F": "func(func(int) bool)",
		"G": "interface{ ~int | ~float64 | string }",
	}

	src := "package p\n\ntype (\n"
	for name, typeText := range tests {
		src += "\t" + name + " " + typeText + "\n"
	}

	src += ")\n"

	file, err := decorator.Parse(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	for _, spec := range file.Decls[0].(*dst.GenDecl).Specs {
		typeSpec := spec.(*dst.TypeSpec)
		want := tests[typeSpec.Name.Name]

		if got := astutil.TypeString(typeSpec.Type); got != want {
			t.Errorf("%s: TypeString() = %q, want %q", typeSpec.Name.Name, got, want)
		}
	}
}

func TestFieldTypes(t *testing.T) {
	t.Parallel()

	fields := &dst.FieldList{List: []*dst.Field{
		{Names: []*dst.Ident{{Name: "a"}, {Name: "b"}}, Type: &dst.Ident{Name: "int"}},
		{Type: &dst.Ident{Name: "error"}},
	}}

	got := astutil.FieldTypes(fields)
	want := []string{"int", "int", "error"}

	if len(got) != len(want) {
		t.Fatalf("FieldTypes() = %v, want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("FieldTypes()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if astutil.FieldTypes(nil) != nil {
		t.Errorf("FieldTypes(nil) should be nil")
	}
}
