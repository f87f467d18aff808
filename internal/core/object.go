package core

// Object is an instance of a Class.
type Object struct {
	class *Class
}

// Class returns the object's class.
func (o *Object) Class() *Class {
	return o.class
}

// Lookup resolves name through the object's class.
func (o *Object) Lookup(name string) (Member, bool) {
	return o.class.LookupStatic(name)
}

// Instantiate constructs an instance of t. Interfaces, including ones that
// only extend other interfaces, always fail with an *InstantiationError.
func Instantiate(t Type) (*Object, error) {
	switch typed := t.(type) {
	case *Interface:
		return nil, &InstantiationError{Interface: typed}
	case *Class:
		if typed != nil {
			return &Object{class: typed}, nil
		}
	}

	return nil, &InvalidArgumentError{Value: t, Reason: "only classes can be instantiated"}
}
