package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/akedrou/textdiff"
)

// Exported variables.
var (
	// ErrDuplicateMember is returned when one declaration lists a member name twice.
	ErrDuplicateMember = errors.New("duplicate member")
	// ErrInconsistentHierarchy is returned when the bases admit no consistent resolution order.
	ErrInconsistentHierarchy = errors.New("cannot create a consistent member resolution order")
	// ErrInstantiation is wrapped by every *InstantiationError.
	ErrInstantiation = errors.New("interfaces cannot be instantiated")
	// ErrInvalidArgument is wrapped by every *InvalidArgumentError.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotImplemented is wrapped by every *NotImplementedError.
	ErrNotImplemented = errors.New("interface member not implemented")
	// ErrOverloaded is wrapped by every *OverloadError.
	ErrOverloaded = errors.New("interface member overloaded")
)

// InstantiationError reports an attempt to construct an instance of an interface.
type InstantiationError struct {
	Interface *Interface
}

func (e *InstantiationError) Error() string {
	return fmt.Sprintf("attempted to create an instance of %s, which is not allowed", e.Interface)
}

func (e *InstantiationError) Unwrap() error {
	return ErrInstantiation
}

// InvalidArgumentError reports a value of the wrong kind, such as a class
// passed where an interface is required.
type InvalidArgumentError struct {
	Value  any
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s, not %v (%T)", e.Reason, e.Value, e.Value)
}

func (e *InvalidArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// NotImplementedError identifies the first interface member a candidate fails to provide.
// Got is nil when the candidate has no member of that name at all.
type NotImplementedError struct {
	Candidate Type
	Member    string
	Interface *Interface
	Want      Member
	Got       *Member
}

// Diff returns a unified diff between the required declaration and the candidate's.
func (e *NotImplementedError) Diff() string {
	got := ""
	if e.Got != nil {
		got = e.Got.String() + "\n"
	}

	return textdiff.Unified(
		e.Interface.Name()+"."+e.Member,
		e.Candidate.Name()+"."+e.Member,
		e.Want.String()+"\n",
		got,
	)
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("%s must fully implement %s %q of %s", e.Candidate, e.Want.Kind, e.Member, e.Interface)
}

func (e *NotImplementedError) Unwrap() error {
	return ErrNotImplemented
}

// OverloadError reports a descendant interface redeclaring names its ancestor already promises.
type OverloadError struct {
	Members    []string
	Ancestor   *Interface
	Descendant *Interface
}

func (e *OverloadError) Error() string {
	return fmt.Sprintf("%s redeclares %s already declared by ancestor %s",
		e.Descendant, strings.Join(e.Members, ", "), e.Ancestor)
}

func (e *OverloadError) Unwrap() error {
	return ErrOverloaded
}
