package apidoc

// Kind identifies what sort of object a [Documentable] describes.
type Kind int

const (
	KindModule Kind = iota
	KindClass
	KindFunction
	KindMethod
)

// String implements [fmt.Stringer].
func (k Kind) String() string {
	switch k {
	case KindModule:
		return "module"
	case KindClass:
		return "class"
	case KindFunction:
		return "function"
	case KindMethod:
		return "method"
	}
	return "unknown"
}

// Parameter is a single entry in a callable's signature.
type Parameter struct {
	Name string
	// Annotation is the parameter's type, empty if unknown.
	// Variadic parameters carry the "..." prefix and occupy
	// a single trailing entry.
	Annotation string
	// Default is the parameter's default value rendered as text,
	// empty if the parameter has none.
	Default string
	// Description holds the prose attached to the parameter in the
	// object's documentation, if any.
	Description string
}

// Signature is the ordered parameter list and return annotation of a callable.
type Signature struct {
	Params []Parameter
	Return string
}

// Documentable is one node in the documentation tree: a module, class,
// function or method eligible for inclusion in the generated document.
//
// Trees are built either by hand from pre-extracted metadata or by the
// introspect loader from live Go packages. Children of modules and classes
// must be listed in definition order; the generator preserves that order.
type Documentable struct {
	// Name is the object's own name, without any parent qualifier.
	Name string
	Kind Kind
	// Doc is the object's raw documentation text. It may contain a
	// "Parameters"/"Returns" contract section which the validator
	// checks against Signature.
	Doc string
	// Signature is set for functions and methods. For classes it holds
	// the constructor's signature.
	Signature Signature
	// Constructor marks the child of a class that constructs it. A class
	// flagged as minimal retains only this child.
	Constructor bool
	// Parents lists a class's base or embedded types, rendered inside
	// the class signature block.
	Parents string
	// Children are member objects in definition order.
	Children []*Documentable

	// QualifiedName is the object's canonical dotted name. Builders may
	// pre-set it; the collector then uses it as the visited-set key, so
	// an object re-exported under several paths, or a circular
	// reference, is emitted exactly once. When empty it is derived from
	// the ancestor chain during collection.
	QualifiedName string

	// contract caches the parsed documentation contract on collected nodes.
	contract docContract
}
