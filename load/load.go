// Package load builds interfaces and classes from Go source.
//
// Go interface types become interfaces; embedded interfaces become their bases.
// Struct types, together with the methods declared on them, become classes;
// embedded structs become their bases. A struct preceded by a directive comment
//
//	//implements:Reader,Writer
//
// is defined with those interfaces enforced, exactly as NewClass with Implements.
//
// Parameter names are part of a signature, so an interface method and its
// implementation must use the same names. Receivers are not part of it.
package load

import (
	"errors"
	"fmt"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
	"github.com/toejough/implements/internal/astutil"
	"github.com/toejough/implements/internal/core"
)

// Exported constants.
const (
	// Directive prefixes the comment that lists the interfaces a struct implements.
	Directive = "//implements:"
)

// Package holds the declarations built from one Go package, in source order.
type Package struct {
	Name       string
	Interfaces []*core.Interface
	Classes    []*core.Class
}

// Class returns the class declared under name.
func (p *Package) Class(name string) (*core.Class, bool) {
	idx := slices.IndexFunc(p.Classes, func(c *core.Class) bool { return c.Name() == name })
	if idx < 0 {
		return nil, false
	}

	return p.Classes[idx], true
}

// Interface returns the interface declared under name.
func (p *Package) Interface(name string) (*core.Interface, bool) {
	idx := slices.IndexFunc(p.Interfaces, func(i *core.Interface) bool { return i.Name() == name })
	if idx < 0 {
		return nil, false
	}

	return p.Interfaces[idx], true
}

// TypeRef is the annotation for a written Go type. Within one loaded package,
// every occurrence of the same type text shares a single *TypeRef.
type TypeRef struct {
	expr string
}

func (r *TypeRef) String() string {
	return r.expr
}

// Dir loads the non-test .go files of dir as one package.
func Dir(dir string, opts ...core.Option) (*Package, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	fset := token.NewFileSet()
	dec := decorator.NewDecorator(fset)
	files := make([]*dst.File, 0, len(entries))
	names := make([]string, 0, len(entries))

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}

		path := filepath.Join(dir, name)

		file, err := dec.ParseFile(path, nil, parser.ParseComments)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}

		files = append(files, file)
		names = append(names, path)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no .go files in %s", errNoSource, dir)
	}

	return build(files, names, opts)
}

// Source loads a single file's source text.
func Source(filename, src string, opts ...core.Option) (*Package, error) {
	dec := decorator.NewDecorator(token.NewFileSet())

	file, err := dec.ParseFile(filename, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	return build([]*dst.File{file}, []string{filename}, opts)
}

// unexported variables.
var (
	errCycle           = errors.New("embedding cycle")
	errNoSource        = errors.New("no source files")
	errUnknownEmbed    = errors.New("embedded interface is not declared in this package")
	errUnknownDeclared = errors.New("implements directive names an unknown interface")
)

// builder turns collected declarations into core types, bases first.
type builder struct {
	opts        []core.Option
	refs        map[string]*TypeRef
	ifaceDecls  map[string]*ifaceDecl
	classDecls  map[string]*classDecl
	ifaceOrder  []string
	classOrder  []string
	ifaces      map[string]*core.Interface
	classes     map[string]*core.Class
	building    map[string]bool
	constraints map[string]bool
}

func (b *builder) annotation(expr dst.Expr) core.Annotation {
	return b.ref(astutil.TypeString(expr))
}

func (b *builder) buildClass(name string) (*core.Class, error) {
	if class, ok := b.classes[name]; ok {
		return class, nil
	}

	decl := b.classDecls[name]
	if b.building["class "+name] {
		return nil, fmt.Errorf("%s: %w through struct %s", decl.file, errCycle, name)
	}

	b.building["class "+name] = true
	defer delete(b.building, "class "+name)

	var bases []*core.Class

	for _, embed := range decl.embeds {
		if embedded, local := b.classDecls[embed]; !local || !embedded.declared {
			continue
		}

		base, err := b.buildClass(embed)
		if err != nil {
			return nil, err
		}

		bases = append(bases, base)
	}

	declared := make([]core.Type, 0, len(decl.implements))

	for _, ifaceName := range decl.implements {
		if _, ok := b.ifaceDecls[ifaceName]; !ok {
			return nil, fmt.Errorf("%s: struct %s: %w: %s", decl.file, name, errUnknownDeclared, ifaceName)
		}

		iface, err := b.buildInterface(ifaceName)
		if err != nil {
			return nil, err
		}

		declared = append(declared, iface)
	}

	members := make([]core.Member, 0, len(decl.methods))
	for _, method := range decl.methods {
		members = append(members, core.Method(method.Name.Name, b.signature(method.Type)))
	}

	opts := append(slices.Clone(b.opts), core.Implements(declared...))

	class, err := core.NewClass(name, bases, members, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: struct %s: %w", decl.file, name, err)
	}

	b.classes[name] = class

	return class, nil
}

func (b *builder) buildInterface(name string) (*core.Interface, error) {
	if iface, ok := b.ifaces[name]; ok {
		return iface, nil
	}

	decl := b.ifaceDecls[name]
	if b.building["interface "+name] {
		return nil, fmt.Errorf("%s: %w through interface %s", decl.file, errCycle, name)
	}

	b.building["interface "+name] = true
	defer delete(b.building, "interface "+name)

	var (
		bases   []*core.Interface
		members []core.Member
	)

	for _, field := range decl.fields {
		funcType, isMethod := field.Type.(*dst.FuncType)
		if isMethod && len(field.Names) > 0 {
			members = append(members, core.Method(field.Names[0].Name, b.signature(funcType)))

			continue
		}

		embed := astutil.TypeString(field.Type)
		if _, local := b.ifaceDecls[embed]; !local {
			return nil, fmt.Errorf("%s: interface %s: %w: %s", decl.file, name, errUnknownEmbed, embed)
		}

		base, err := b.buildInterface(embed)
		if err != nil {
			return nil, err
		}

		bases = append(bases, base)
	}

	iface, err := core.NewInterface(name, bases, members, b.opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: interface %s: %w", decl.file, name, err)
	}

	b.ifaces[name] = iface

	return iface, nil
}

func (b *builder) collect(file *dst.File, filename string) {
	for _, decl := range file.Decls {
		switch typed := decl.(type) {
		case *dst.GenDecl:
			if typed.Tok != token.TYPE {
				continue
			}

			for _, spec := range typed.Specs {
				typeSpec, ok := spec.(*dst.TypeSpec)
				if !ok {
					continue
				}

				// A directive above a grouped declaration belongs to no single spec.
				decs := []dst.Decorations{typeSpec.Decs.Start}
				if !typed.Lparen {
					decs = append(decs, typed.Decs.Start)
				}

				b.collectType(typeSpec, filename, directives(decs...))
			}
		case *dst.FuncDecl:
			b.collectMethod(typed)
		}
	}
}

func (b *builder) collectMethod(fn *dst.FuncDecl) {
	if fn.Recv == nil || len(fn.Recv.List) == 0 {
		return
	}

	recv := receiverName(fn.Recv.List[0].Type)

	decl, ok := b.classDecls[recv]
	if !ok {
		// Methods may precede their struct; park them under a placeholder.
		decl = &classDecl{}
		b.classDecls[recv] = decl
	}

	decl.methods = append(decl.methods, fn)
}

func (b *builder) collectType(spec *dst.TypeSpec, filename string, implements []string) {
	name := spec.Name.Name

	switch typed := spec.Type.(type) {
	case *dst.InterfaceType:
		var fields []*dst.Field
		if typed.Methods != nil {
			fields = typed.Methods.List
		}

		b.ifaceDecls[name] = &ifaceDecl{file: filename, fields: fields}
		b.ifaceOrder = append(b.ifaceOrder, name)
	default:
		if spec.Assign {
			return
		}

		decl, ok := b.classDecls[name]
		if !ok {
			decl = &classDecl{}
			b.classDecls[name] = decl
		}

		decl.file = filename
		decl.declared = true
		decl.implements = implements
		b.classOrder = append(b.classOrder, name)

		if structType, isStruct := typed.(*dst.StructType); isStruct {
			decl.embeds = embeddedNames(structType)
		}
	}
}

// dropConstraints removes interfaces that carry type terms, directly or
// through an embedded constraint. They describe type sets, not method sets.
func (b *builder) dropConstraints() {
	for changed := true; changed; {
		changed = false

		for name, decl := range b.ifaceDecls {
			if slices.ContainsFunc(decl.fields, b.isTypeTerm) {
				delete(b.ifaceDecls, name)
				b.constraints[name] = true

				changed = true
			}
		}
	}

	b.ifaceOrder = slices.DeleteFunc(b.ifaceOrder, func(name string) bool {
		_, kept := b.ifaceDecls[name]

		return !kept
	})
}

// isTypeTerm reports whether an interface element is a type term rather
// than a method or an embedded method-set interface.
func (b *builder) isTypeTerm(field *dst.Field) bool {
	if len(field.Names) > 0 {
		return false
	}

	switch typed := field.Type.(type) {
	case *dst.UnaryExpr, *dst.BinaryExpr:
		return true
	case *dst.Ident:
		if typed.Path != "" {
			return false
		}

		if _, local := b.ifaceDecls[typed.Name]; local {
			return false
		}

		if decl, local := b.classDecls[typed.Name]; local && decl.declared {
			return true
		}

		if b.constraints[typed.Name] {
			return true
		}

		obj, predeclared := types.Universe.Lookup(typed.Name).(*types.TypeName)

		return predeclared && (typed.Name == "comparable" || !types.IsInterface(obj.Type()))
	default:
		return false
	}
}

func (b *builder) ref(expr string) *TypeRef {
	if ref, ok := b.refs[expr]; ok {
		return ref
	}

	ref := &TypeRef{expr: expr}
	b.refs[expr] = ref

	return ref
}

func (b *builder) signature(funcType *dst.FuncType) core.Signature {
	var params []core.Param

	if funcType.Params != nil {
		for _, field := range funcType.Params.List {
			kind := core.PositionalOrKeyword
			typeExpr := field.Type

			if ellipsis, ok := typeExpr.(*dst.Ellipsis); ok {
				kind = core.VarPositional
				typeExpr = ellipsis.Elt
			}

			ann := b.annotation(typeExpr)

			if len(field.Names) == 0 {
				params = append(params, core.Param{Kind: kind, Annotation: ann})

				continue
			}

			for _, name := range field.Names {
				params = append(params, core.Param{Name: name.Name, Kind: kind, Annotation: ann})
			}
		}
	}

	var ret core.Annotation

	results := astutil.FieldTypes(funcType.Results)

	switch len(results) {
	case 0:
	case 1:
		ret = b.ref(results[0])
	default:
		ret = b.ref("(" + strings.Join(results, ", ") + ")")
	}

	return core.Signature{Params: params, Return: ret}
}

type classDecl struct {
	file       string
	declared   bool
	implements []string
	embeds     []string
	methods    []*dst.FuncDecl
}

type ifaceDecl struct {
	file   string
	fields []*dst.Field
}

func build(files []*dst.File, filenames []string, opts []core.Option) (*Package, error) {
	b := &builder{
		opts:        opts,
		refs:        make(map[string]*TypeRef),
		ifaceDecls:  make(map[string]*ifaceDecl),
		classDecls:  make(map[string]*classDecl),
		ifaces:      make(map[string]*core.Interface),
		classes:     make(map[string]*core.Class),
		building:    make(map[string]bool),
		constraints: make(map[string]bool),
	}

	for i, file := range files {
		b.collect(file, filenames[i])
	}

	b.dropConstraints()

	pkg := &Package{Name: files[0].Name.Name}

	for _, name := range b.ifaceOrder {
		iface, err := b.buildInterface(name)
		if err != nil {
			return nil, err
		}

		pkg.Interfaces = append(pkg.Interfaces, iface)
	}

	for _, name := range b.classOrder {
		class, err := b.buildClass(name)
		if err != nil {
			return nil, err
		}

		pkg.Classes = append(pkg.Classes, class)
	}

	return pkg, nil
}

// directives extracts interface names from //implements: comments.
func directives(decorations ...dst.Decorations) []string {
	var names []string

	for _, decs := range decorations {
		for _, line := range decs {
			list, ok := strings.CutPrefix(strings.TrimSpace(line), Directive)
			if !ok {
				continue
			}

			for name := range strings.SplitSeq(list, ",") {
				if name = strings.TrimSpace(name); name != "" {
					names = append(names, name)
				}
			}
		}
	}

	return names
}

// embeddedNames returns the type names of a struct's embedded fields, pointers stripped.
func embeddedNames(structType *dst.StructType) []string {
	if structType.Fields == nil {
		return nil
	}

	var names []string

	for _, field := range structType.Fields.List {
		if len(field.Names) == 0 {
			names = append(names, receiverName(field.Type))
		}
	}

	return names
}

// receiverName strips pointers and type arguments from a receiver or embed type.
func receiverName(expr dst.Expr) string {
	for {
		switch typed := expr.(type) {
		case *dst.StarExpr:
			expr = typed.X
		case *dst.IndexExpr:
			expr = typed.X
		case *dst.IndexListExpr:
			expr = typed.X
		default:
			return astutil.TypeString(expr)
		}
	}
}
