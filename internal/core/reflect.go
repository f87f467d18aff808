package core

import (
	"fmt"
	"reflect"
	"strings"
)

// Results is the annotation of a Go method with more than one result.
// Results built from the same types are equal.
type Results struct {
	fn reflect.Type
}

func (r Results) String() string {
	parts := make([]string, r.fn.NumOut())
	for i := range parts {
		parts[i] = r.fn.Out(i).String()
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

// ClassFromType builds a class from the exported method set of a Go type.
// Use a pointer type to include pointer-receiver methods.
func ClassFromType(goType reflect.Type, opts ...Option) (*Class, error) {
	if goType == nil {
		return nil, &InvalidArgumentError{Value: goType, Reason: "a Go type is required"}
	}

	if goType.Kind() == reflect.Interface {
		return nil, &InvalidArgumentError{Value: goType, Reason: "use InterfaceFromType for Go interface types"}
	}

	return NewClass(goTypeName(goType), nil, methodMembers(goType, true), opts...)
}

// InterfaceFromType builds an interface from the method set of a Go interface type.
// Embedded interfaces are flattened into the new interface's own members.
// Unexported methods are left out, matching what ClassFromType can see.
func InterfaceFromType(goType reflect.Type, opts ...Option) (*Interface, error) {
	if goType == nil || goType.Kind() != reflect.Interface {
		return nil, &InvalidArgumentError{Value: goType, Reason: "a Go interface type is required"}
	}

	return NewInterface(goTypeName(goType), nil, methodMembers(goType, false), opts...)
}

// ResultsOf returns the annotation for a multi-value result list.
func ResultsOf(types ...reflect.Type) Results {
	return Results{fn: reflect.FuncOf(nil, types, false)}
}

func goTypeName(goType reflect.Type) string {
	if goType.Name() != "" {
		return goType.Name()
	}

	return goType.String()
}

// methodMembers converts a method set to members. Go parameters are
// positional-only and unnamed, so they are named by position.
func methodMembers(goType reflect.Type, hasReceiver bool) []Member {
	members := make([]Member, 0, goType.NumMethod())

	for i := range goType.NumMethod() {
		method := goType.Method(i)
		if !method.IsExported() {
			continue
		}

		members = append(members, Method(method.Name, funcSignature(method.Type, hasReceiver)))
	}

	return members
}

func funcSignature(fn reflect.Type, hasReceiver bool) Signature {
	first := 0
	if hasReceiver {
		first = 1
	}

	params := make([]Param, 0, fn.NumIn()-first)

	for i := first; i < fn.NumIn(); i++ {
		param := Param{
			Name:       fmt.Sprintf("_%d", i-first),
			Kind:       PositionalOnly,
			Annotation: fn.In(i),
		}
		if fn.IsVariadic() && i == fn.NumIn()-1 {
			param.Kind = VarPositional
			param.Annotation = fn.In(i).Elem()
		}

		params = append(params, param)
	}

	var ret Annotation

	switch fn.NumOut() {
	case 0:
	case 1:
		ret = fn.Out(0)
	default:
		outs := make([]reflect.Type, fn.NumOut())
		for i := range outs {
			outs[i] = fn.Out(i)
		}

		ret = ResultsOf(outs...)
	}

	return Signature{Params: params, Return: ret}
}
