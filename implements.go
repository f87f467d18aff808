// Package implements checks structural interface conformance.
// An interface is a named set of method and property signatures; a class
// satisfies it when it declares every member with an identical signature,
// with or without any declared relationship to the interface.
//
// This is the public API entry point. Implementation lives in internal/core.
package implements

import (
	"log/slog"
	"reflect"

	"github.com/toejough/implements/internal/core"
)

// ParamKind values.
const (
	PositionalOnly      = core.PositionalOnly
	PositionalOrKeyword = core.PositionalOrKeyword
	VarPositional       = core.VarPositional
	KeywordOnly         = core.KeywordOnly
	VarKeyword          = core.VarKeyword
)

// MemberKind values.
const (
	KindMethod   = core.KindMethod
	KindProperty = core.KindProperty
)

// Errors re-exported from internal/core.
var (
	ErrDuplicateMember       = core.ErrDuplicateMember
	ErrInconsistentHierarchy = core.ErrInconsistentHierarchy
	ErrInstantiation         = core.ErrInstantiation
	ErrInvalidArgument       = core.ErrInvalidArgument
	ErrNotImplemented        = core.ErrNotImplemented
	ErrOverloaded            = core.ErrOverloaded
)

// Annotation is the declared type of a parameter or return value; nil means none.
type Annotation = core.Annotation

// Checker runs conformance checks against a spec registry.
type Checker = core.Checker

// Class is an ordinary, instantiable entity.
type Class = core.Class

// InstantiationError reports an attempt to instantiate an interface.
type InstantiationError = core.InstantiationError

// Interface is a named, uninstantiable capability declaration.
type Interface = core.Interface

// InvalidArgumentError reports a value of the wrong kind.
type InvalidArgumentError = core.InvalidArgumentError

// Member is a method or property declaration.
type Member = core.Member

// MemberKind distinguishes methods from properties.
type MemberKind = core.MemberKind

// NotImplementedError identifies the first member a candidate fails to provide.
type NotImplementedError = core.NotImplementedError

// Object is an instance of a Class.
type Object = core.Object

// Option configures definitions, checkers and registries.
type Option = core.Option

// OverloadError reports a descendant interface redeclaring an ancestor's member.
type OverloadError = core.OverloadError

// Param is one parameter of a Signature.
type Param = core.Param

// ParamKind says how an argument binds to a parameter.
type ParamKind = core.ParamKind

// Registry memoizes interface specs.
type Registry = core.Registry

// Results annotates a multi-value Go result list.
type Results = core.Results

// Signature is a parameter list plus return annotation.
type Signature = core.Signature

// Spec is the ordered member mapping of an interface.
type Spec = core.Spec

// Type is an *Interface or a *Class.
type Type = core.Type

// TypeVar is a named type variable compared by identity.
type TypeVar = core.TypeVar

// Arg returns a positional-or-keyword parameter.
func Arg(name string, ann Annotation) Param {
	return core.Arg(name, ann)
}

// Check returns nil if candidate satisfies iface, or a *NotImplementedError
// naming the first member it does not, using the default checker.
func Check(candidate Type, iface *Interface) error {
	return core.DefaultChecker().Check(candidate, iface)
}

// ClassFromType builds a class from a Go type's exported method set.
func ClassFromType(goType reflect.Type, opts ...Option) (*Class, error) {
	return core.ClassFromType(goType, opts...)
}

// Conforms reports whether candidate satisfies iface, using the default checker.
func Conforms(candidate Type, iface *Interface) bool {
	return core.DefaultChecker().Conforms(candidate, iface)
}

// DefaultChecker returns the checker over the process-wide registry.
func DefaultChecker() *Checker {
	return core.DefaultChecker()
}

// DefaultRegistry returns the process-wide spec registry.
func DefaultRegistry() *Registry {
	return core.DefaultRegistry()
}

// Implements declares the interfaces a class must satisfy at definition time.
func Implements(types ...Type) Option {
	return core.Implements(types...)
}

// InterfaceFromType builds an interface from a Go interface type's method set.
func InterfaceFromType(goType reflect.Type, opts ...Option) (*Interface, error) {
	return core.InterfaceFromType(goType, opts...)
}

// Instantiate constructs an instance of a class. Interfaces always fail.
func Instantiate(t Type) (*Object, error) {
	return core.Instantiate(t)
}

// IsImplementation reports whether candidate satisfies every interface given.
// It never fails; an unmet member just yields false.
func IsImplementation(candidate Type, ifaces ...*Interface) bool {
	return core.DefaultChecker().ConformsAll(candidate, ifaces...)
}

// IsSubclass reports whether candidate is a structural subclass of any target:
// conformance for interface targets, ancestry for class targets.
func IsSubclass(candidate Type, targets ...Type) bool {
	return core.DefaultChecker().IsSubclass(candidate, targets...)
}

// KeywordOnlyParam returns a keyword-only parameter.
func KeywordOnlyParam(name string, ann Annotation) Param {
	return core.KeywordOnlyParam(name, ann)
}

// Method returns a method member.
func Method(name string, sig Signature) Member {
	return core.Method(name, sig)
}

// NewChecker creates a checker.
func NewChecker(opts ...Option) *Checker {
	return core.NewChecker(opts...)
}

// NewClass defines a class, enforcing any Implements declarations before returning it.
func NewClass(name string, bases []*Class, members []Member, opts ...Option) (*Class, error) {
	return core.NewClass(name, bases, members, opts...)
}

// NewInterface declares an interface. Redeclaring an ancestor's member fails.
func NewInterface(name string, bases []*Interface, members []Member, opts ...Option) (*Interface, error) {
	return core.NewInterface(name, bases, members, opts...)
}

// NewRegistry creates an empty spec registry.
func NewRegistry(opts ...Option) *Registry {
	return core.NewRegistry(opts...)
}

// NewTypeVar returns a fresh type variable.
func NewTypeVar(name string) *TypeVar {
	return core.NewTypeVar(name)
}

// OptionalArg returns a positional-or-keyword parameter with a default.
func OptionalArg(name string, ann Annotation) Param {
	return core.OptionalArg(name, ann)
}

// Property returns a property member; nil accessors are undefined.
func Property(name string, getter, setter, deleter *Signature) Member {
	return core.Property(name, getter, setter, deleter)
}

// ReadOnlyProperty returns a getter-only property.
func ReadOnlyProperty(name string, getter Signature) Member {
	return core.ReadOnlyProperty(name, getter)
}

// ResultsOf returns the annotation for a multi-value result list.
func ResultsOf(types ...reflect.Type) Results {
	return core.ResultsOf(types...)
}

// Sig builds a Signature.
func Sig(ret Annotation, params ...Param) Signature {
	return core.Sig(ret, params...)
}

// TypeOf returns the annotation for the Go type T.
func TypeOf[T any]() Annotation {
	return core.TypeOf[T]()
}

// VarArgs returns a var-positional parameter.
func VarArgs(name string, ann Annotation) Param {
	return core.VarArgs(name, ann)
}

// VarKwargs returns a var-keyword parameter.
func VarKwargs(name string, ann Annotation) Param {
	return core.VarKwargs(name, ann)
}

// WithLogger routes debug records to logger.
func WithLogger(logger *slog.Logger) Option {
	return core.WithLogger(logger)
}

// WithRegistry selects the spec registry.
func WithRegistry(registry *Registry) Option {
	return core.WithRegistry(registry)
}
