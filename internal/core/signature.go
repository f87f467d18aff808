package core

import (
	"fmt"
	"reflect"
	"strings"
)

// ParamKind values.
const (
	PositionalOnly ParamKind = iota
	PositionalOrKeyword
	VarPositional
	KeywordOnly
	VarKeyword
)

// Annotation is the declared type of a parameter or return value.
// A nil Annotation means "not annotated". Annotations compare by exact value:
// two independently constructed type variables with the same name are different.
type Annotation = any

// Param is a single parameter of a Signature.
type Param struct {
	Name       string
	Kind       ParamKind
	Annotation Annotation
	HasDefault bool
}

// Equal reports whether two parameters have the same name, kind, default
// presence and annotation.
func (p Param) Equal(other Param) bool {
	return p.Name == other.Name &&
		p.Kind == other.Kind &&
		p.HasDefault == other.HasDefault &&
		AnnotationsEqual(p.Annotation, other.Annotation)
}

// String renders the parameter the way it appears in a declaration.
func (p Param) String() string {
	var buf strings.Builder

	switch p.Kind {
	case VarPositional:
		buf.WriteString("*")
	case VarKeyword:
		buf.WriteString("**")
	case PositionalOnly, PositionalOrKeyword, KeywordOnly:
	}

	buf.WriteString(p.Name)

	if p.Annotation != nil {
		buf.WriteString(": ")
		buf.WriteString(FormatAnnotation(p.Annotation))
	}

	if p.HasDefault {
		buf.WriteString(" = ...")
	}

	return buf.String()
}

// ParamKind says how an argument binds to a parameter.
type ParamKind int

// String returns the kind name.
func (k ParamKind) String() string {
	switch k {
	case PositionalOnly:
		return "positional-only"
	case PositionalOrKeyword:
		return "positional-or-keyword"
	case VarPositional:
		return "var-positional"
	case KeywordOnly:
		return "keyword-only"
	case VarKeyword:
		return "var-keyword"
	default:
		return fmt.Sprintf("ParamKind(%d)", int(k))
	}
}

// Signature is the ordered parameter list and return annotation of a callable.
type Signature struct {
	Params []Param
	Return Annotation
}

// Equal reports whether the signatures match exactly: same parameter order,
// names, kinds, default presence and annotations, and the same return annotation.
func (s Signature) Equal(other Signature) bool {
	if len(s.Params) != len(other.Params) {
		return false
	}

	for i := range s.Params {
		if !s.Params[i].Equal(other.Params[i]) {
			return false
		}
	}

	return AnnotationsEqual(s.Return, other.Return)
}

// String renders the signature as "(a: T, *rest) -> R".
//
//nolint:cyclop // separator placement depends on neighbouring kinds
func (s Signature) String() string {
	parts := make([]string, 0, len(s.Params)+2) //nolint:mnd // room for "/" and "*" markers

	sawKeywordOnly := false

	for i, param := range s.Params {
		if param.Kind == VarPositional {
			sawKeywordOnly = true
		}

		if param.Kind == KeywordOnly && !sawKeywordOnly {
			parts = append(parts, "*")
			sawKeywordOnly = true
		}

		parts = append(parts, param.String())

		lastPositionalOnly := param.Kind == PositionalOnly &&
			(i == len(s.Params)-1 || s.Params[i+1].Kind != PositionalOnly)
		if lastPositionalOnly {
			parts = append(parts, "/")
		}
	}

	out := "(" + strings.Join(parts, ", ") + ")"
	if s.Return != nil {
		out += " -> " + FormatAnnotation(s.Return)
	}

	return out
}

// TypeVar is a named type variable. Each call to NewTypeVar yields a distinct
// variable, even when the names are equal.
type TypeVar struct {
	name string
}

// Name returns the variable's name.
func (v *TypeVar) Name() string {
	return v.name
}

// String returns the variable's name prefixed with "~".
func (v *TypeVar) String() string {
	return "~" + v.name
}

// AnnotationsEqual reports whether two annotations are the same value.
// Values of non-comparable types are never equal to anything, themselves included.
func AnnotationsEqual(a, b Annotation) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}

	// Comparable checks dynamic values, so a struct holding a slice in an
	// interface field is caught here rather than panicking on ==.
	return reflect.ValueOf(a).Comparable() && a == b
}

// Arg returns a positional-or-keyword parameter.
func Arg(name string, ann Annotation) Param {
	return Param{Name: name, Kind: PositionalOrKeyword, Annotation: ann}
}

// FormatAnnotation renders an annotation for messages.
func FormatAnnotation(ann Annotation) string {
	switch typed := ann.(type) {
	case nil:
		return ""
	case reflect.Type:
		return typed.String()
	case fmt.Stringer:
		return typed.String()
	case string:
		return typed
	default:
		return fmt.Sprintf("%v", typed)
	}
}

// KeywordOnlyParam returns a keyword-only parameter.
func KeywordOnlyParam(name string, ann Annotation) Param {
	return Param{Name: name, Kind: KeywordOnly, Annotation: ann}
}

// NewTypeVar returns a fresh type variable.
func NewTypeVar(name string) *TypeVar {
	return &TypeVar{name: name}
}

// OptionalArg returns a positional-or-keyword parameter that has a default.
func OptionalArg(name string, ann Annotation) Param {
	return Param{Name: name, Kind: PositionalOrKeyword, Annotation: ann, HasDefault: true}
}

// Sig builds a Signature from a return annotation and parameters.
func Sig(ret Annotation, params ...Param) Signature {
	return Signature{Params: params, Return: ret}
}

// TypeOf returns the annotation for the Go type T.
func TypeOf[T any]() Annotation {
	return reflect.TypeFor[T]()
}

// VarArgs returns a var-positional parameter.
func VarArgs(name string, ann Annotation) Param {
	return Param{Name: name, Kind: VarPositional, Annotation: ann}
}

// VarKwargs returns a var-keyword parameter.
func VarKwargs(name string, ann Annotation) Param {
	return Param{Name: name, Kind: VarKeyword, Annotation: ann}
}
