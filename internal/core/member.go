package core

import (
	"fmt"
	"strings"
)

// MemberKind values.
const (
	KindMethod MemberKind = iota
	KindProperty
)

// Member describes one named entry of a type's namespace: a method with a
// single signature, or a property with up to three accessor signatures.
// A nil accessor means the property does not define it.
type Member struct {
	Name      string
	Kind      MemberKind
	Signature Signature
	Getter    *Signature
	Setter    *Signature
	Deleter   *Signature
}

// Equivalent reports whether candidate satisfies m when m is the required member.
// Methods need exactly equal signatures. Properties need every accessor that m
// defines to be present on candidate with an equal signature. Any kind mismatch fails.
func (m Member) Equivalent(candidate Member) bool {
	if m.Kind != candidate.Kind {
		return false
	}

	switch m.Kind {
	case KindMethod:
		return m.Signature.Equal(candidate.Signature)
	case KindProperty:
		return accessorSatisfied(m.Getter, candidate.Getter) &&
			accessorSatisfied(m.Setter, candidate.Setter) &&
			accessorSatisfied(m.Deleter, candidate.Deleter)
	default:
		return false
	}
}

// String renders the member as a one-line declaration.
func (m Member) String() string {
	switch m.Kind {
	case KindMethod:
		return "def " + m.Name + m.Signature.String()
	case KindProperty:
		accessors := make([]string, 0, 3) //nolint:mnd // getter, setter, deleter

		for _, acc := range []struct {
			label string
			sig   *Signature
		}{{"get", m.Getter}, {"set", m.Setter}, {"del", m.Deleter}} {
			if acc.sig != nil {
				accessors = append(accessors, acc.label+acc.sig.String())
			}
		}

		return "property " + m.Name + " {" + strings.Join(accessors, "; ") + "}"
	default:
		return fmt.Sprintf("%s <%s>", m.Name, m.Kind)
	}
}

// MemberKind distinguishes methods from properties.
type MemberKind int

// String returns the kind name.
func (k MemberKind) String() string {
	switch k {
	case KindMethod:
		return "method"
	case KindProperty:
		return "property"
	default:
		return fmt.Sprintf("MemberKind(%d)", int(k))
	}
}

// IsDunder reports whether name is framed by double underscores, like "__init__".
// Such names never take part in interface specs.
func IsDunder(name string) bool {
	return strings.HasPrefix(name, "__") && strings.HasSuffix(name, "__")
}

// Method returns a method member.
func Method(name string, sig Signature) Member {
	return Member{Name: name, Kind: KindMethod, Signature: sig}
}

// Property returns a property member. Pass nil for accessors the property does not define.
func Property(name string, getter, setter, deleter *Signature) Member {
	return Member{Name: name, Kind: KindProperty, Getter: getter, Setter: setter, Deleter: deleter}
}

// ReadOnlyProperty returns a property that only defines a getter.
func ReadOnlyProperty(name string, getter Signature) Member {
	return Property(name, &getter, nil, nil)
}

// accessorSatisfied checks one property accessor slot.
func accessorSatisfied(required, candidate *Signature) bool {
	if required == nil {
		return true
	}

	if candidate == nil {
		return false
	}

	return required.Equal(*candidate)
}
