// Package introspect converts live Go packages into documentation trees.
//
// It is the Go counterpart of runtime reflection over modules: the
// surrounding module is loaded with type-annotated syntax and each
// matched package becomes one module tree of classes (named types),
// constructors, methods and functions, in definition order. Doc comments
// are carried verbatim so that documented parameter listings survive for
// signature validation.
package introspect

import (
	"go/ast"
	"go/doc/comment"
	"go/token"
	"go/types"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/tools/go/packages"

	"github.com/vyrjana/go-api-documenter/internal/pathutils"
	"github.com/vyrjana/go-api-documenter/pkg/apidoc"
)

// Load resolves the given package patterns relative to the enclosing
// module root and converts each matched package into a module tree.
// Objects whose signature cannot be resolved are skipped, not fatal.
func Load(patterns ...string) ([]*apidoc.Documentable, error) {
	root, err := pathutils.FindModuleRoot()
	if err != nil {
		return nil, err
	}
	// Load complete type information for the specified packages,
	// along with type-annotated syntax.
	conf := &packages.Config{
		Dir: root,
		Mode: packages.NeedName |
			packages.NeedFiles |
			packages.NeedCompiledGoFiles |
			packages.NeedImports |
			packages.NeedTypes |
			packages.NeedSyntax |
			packages.NeedTypesInfo,
	}
	pkgs, err := packages.Load(conf, patterns...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load packages")
	}
	if len(pkgs) == 0 {
		return nil, errors.Errorf("no packages matched %v", patterns)
	}
	if err = checkForPackageErrors(pkgs); err != nil {
		return nil, err
	}
	modules := make([]*apidoc.Documentable, 0, len(pkgs))
	for _, pkg := range pkgs {
		modules = append(modules, buildModule(pkg))
	}
	qualifyModules(modules, pkgs)
	return modules, nil
}

// qualifyModules assigns each module its canonical name. The package
// base name is used when unique among the loaded set; packages sharing
// a base name fall back to the shortest dotted import-path suffix that
// tells them apart. Without a unique key the collector would treat two
// same-named packages as one object and drop the second one whole.
func qualifyModules(modules []*apidoc.Documentable, pkgs []*packages.Package) {
	byName := make(map[string][]int)
	for i, pkg := range pkgs {
		byName[pkg.Name] = append(byName[pkg.Name], i)
	}
	for name, indices := range byName {
		if len(indices) == 1 {
			modules[indices[0]].QualifiedName = name
			continue
		}
		maxSegments := 0
		for _, i := range indices {
			if n := strings.Count(pkgs[i].PkgPath, "/") + 1; n > maxSegments {
				maxSegments = n
			}
		}
		for n := 2; ; n++ {
			suffixes := make(map[string]struct{}, len(indices))
			for _, i := range indices {
				suffixes[pathSuffix(pkgs[i].PkgPath, n)] = struct{}{}
			}
			if len(suffixes) == len(indices) || n >= maxSegments {
				for _, i := range indices {
					modules[i].QualifiedName = pathSuffix(pkgs[i].PkgPath, n)
				}
				break
			}
		}
	}
}

// pathSuffix joins the last n segments of an import path with dots.
func pathSuffix(path string, n int) string {
	segments := strings.Split(path, "/")
	if len(segments) > n {
		segments = segments[len(segments)-n:]
	}
	return strings.Join(segments, ".")
}

// member pairs a node with its source position so that module and class
// children can be ordered by definition, not by discovery.
type member struct {
	pos  token.Pos
	node *apidoc.Documentable
}

func buildModule(pkg *packages.Package) *apidoc.Documentable {
	module := &apidoc.Documentable{
		Name: pkg.Name,
		Kind: apidoc.KindModule,
		Doc:  packageDoc(pkg),
	}

	classes := make(map[string]*apidoc.Documentable)
	classMembers := make(map[string][]member)
	var entries []member

	// First pass: every exported named type becomes a class.
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			genDecl, ok := decl.(*ast.GenDecl)
			if !ok || genDecl.Tok != token.TYPE {
				continue
			}
			for _, spec := range genDecl.Specs {
				typeSpec, ok := spec.(*ast.TypeSpec)
				if !ok || !typeSpec.Name.IsExported() {
					continue
				}
				class := &apidoc.Documentable{
					Name:    typeSpec.Name.Name,
					Kind:    apidoc.KindClass,
					Doc:     typeDocText(genDecl, typeSpec),
					Parents: embeddedParents(typeSpec),
				}
				classes[class.Name] = class
				entries = append(entries, member{pos: typeSpec.Pos(), node: class})
			}
		}
	}

	// Second pass: attach constructors, methods and free functions.
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			funcDecl, ok := decl.(*ast.FuncDecl)
			if !ok || !funcDecl.Name.IsExported() {
				continue
			}
			sig, err := signatureOf(funcDecl.Type)
			if err != nil {
				continue // Signature unavailable, skip the object.
			}
			node := &apidoc.Documentable{
				Name:      funcDecl.Name.Name,
				Doc:       funcDecl.Doc.Text(),
				Signature: sig,
			}
			switch {
			case funcDecl.Recv != nil:
				recv := receiverTypeName(funcDecl.Recv)
				class, found := classes[recv]
				if !found {
					continue // Method on an unexported type.
				}
				node.Kind = apidoc.KindMethod
				classMembers[class.Name] = append(classMembers[class.Name], member{pos: funcDecl.Pos(), node: node})
			case constructorTarget(funcDecl.Name.Name, classes) != nil:
				class := constructorTarget(funcDecl.Name.Name, classes)
				node.Kind = apidoc.KindMethod
				node.Constructor = true
				class.Signature = sig
				classMembers[class.Name] = append(classMembers[class.Name], member{pos: funcDecl.Pos(), node: node})
			default:
				node.Kind = apidoc.KindFunction
				entries = append(entries, member{pos: funcDecl.Pos(), node: node})
			}
		}
	}

	for name, members := range classMembers {
		sort.SliceStable(members, func(i, j int) bool { return members[i].pos < members[j].pos })
		for _, m := range members {
			classes[name].Children = append(classes[name].Children, m.node)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].pos < entries[j].pos })
	for _, entry := range entries {
		module.Children = append(module.Children, entry.node)
	}
	return module
}

// constructorTarget resolves "NewWidget" to the Widget class, if any.
func constructorTarget(funcName string, classes map[string]*apidoc.Documentable) *apidoc.Documentable {
	const prefix = "New"
	if len(funcName) <= len(prefix) || funcName[:len(prefix)] != prefix {
		return nil
	}
	return classes[funcName[len(prefix):]]
}

func receiverTypeName(recv *ast.FieldList) string {
	if recv == nil || len(recv.List) == 0 {
		return ""
	}
	expr := recv.List[0].Type
	for {
		switch t := expr.(type) {
		case *ast.StarExpr:
			expr = t.X
		case *ast.IndexExpr:
			expr = t.X
		case *ast.IndexListExpr:
			expr = t.X
		case *ast.Ident:
			return t.Name
		default:
			return ""
		}
	}
}

// signatureOf extracts the parameter list and return annotation from a
// function type. Variadic parameters keep their "..." prefix and occupy a
// single trailing entry.
func signatureOf(funcType *ast.FuncType) (apidoc.Signature, error) {
	if funcType == nil {
		return apidoc.Signature{}, errors.New("signature unavailable")
	}
	var sig apidoc.Signature
	if funcType.Params != nil {
		for _, field := range funcType.Params.List {
			annotation := types.ExprString(field.Type)
			if len(field.Names) == 0 {
				sig.Params = append(sig.Params, apidoc.Parameter{Name: "_", Annotation: annotation})
				continue
			}
			for _, name := range field.Names {
				sig.Params = append(sig.Params, apidoc.Parameter{Name: name.Name, Annotation: annotation})
			}
		}
	}
	sig.Return = returnAnnotation(funcType.Results)
	return sig, nil
}

func returnAnnotation(results *ast.FieldList) string {
	if results == nil || len(results.List) == 0 {
		return ""
	}
	var parts []string
	for _, field := range results.List {
		annotation := types.ExprString(field.Type)
		n := len(field.Names)
		if n == 0 {
			n = 1
		}
		for i := 0; i < n; i++ {
			parts = append(parts, annotation)
		}
	}
	if len(parts) == 1 {
		return parts[0]
	}
	out := "("
	for i, part := range parts {
		if i > 0 {
			out += ", "
		}
		out += part
	}
	return out + ")"
}

// typeDocText prefers the doc attached to the type spec itself and falls
// back to the declaration group's doc.
func typeDocText(decl *ast.GenDecl, spec *ast.TypeSpec) string {
	if spec.Doc != nil {
		return spec.Doc.Text()
	}
	return decl.Doc.Text()
}

// embeddedParents lists the embedded types of a struct or interface,
// mirroring a class's base types.
func embeddedParents(spec *ast.TypeSpec) string {
	var fields *ast.FieldList
	switch t := spec.Type.(type) {
	case *ast.StructType:
		fields = t.Fields
	case *ast.InterfaceType:
		fields = t.Methods
	default:
		return ""
	}
	if fields == nil {
		return ""
	}
	var parents string
	for _, field := range fields.List {
		if len(field.Names) != 0 {
			continue
		}
		if _, isFunc := field.Type.(*ast.FuncType); isFunc {
			continue
		}
		if parents != "" {
			parents += ", "
		}
		parents += types.ExprString(field.Type)
	}
	return parents
}

// packageDoc renders the package comment as Markdown, resolving doc
// links against pkg.go.dev.
func packageDoc(pkg *packages.Package) string {
	var text string
	for _, file := range pkg.Syntax {
		if file.Doc != nil {
			text = file.Doc.Text()
			break
		}
	}
	if text == "" {
		return ""
	}
	return docCommentToMarkdown(pkg, text)
}

const docLinkBaseURL = "https://pkg.go.dev"

func docCommentToMarkdown(pkg *packages.Package, text string) string {
	parser := newCommentParser(pkg)
	printer := comment.Printer{
		DocLinkURL: func(link *comment.DocLink) string {
			if link.ImportPath == "" {
				link.ImportPath = pkg.PkgPath
			}
			return link.DefaultURL(docLinkBaseURL)
		},
	}
	return string(printer.Markdown(parser.Parse(text)))
}

func newCommentParser(pkg *packages.Package) *comment.Parser {
	return &comment.Parser{
		LookupPackage: func(name string) (importPath string, ok bool) {
			for path, imported := range pkg.Imports {
				if imported.Name == name {
					return path, true
				}
			}
			return "", false
		},
		LookupSym: func(recv, name string) (ok bool) {
			if pkg.Types == nil {
				return false
			}
			if recv == "" {
				return pkg.Types.Scope().Lookup(name) != nil
			}
			obj := pkg.Types.Scope().Lookup(recv)
			if obj == nil {
				return false
			}
			switch u := obj.Type().Underlying().(type) {
			case *types.Struct:
				for field := range u.Fields() {
					if field.Name() == name {
						return true
					}
				}
				return false
			default:
				return false
			}
		},
	}
}

func checkForPackageErrors(pkgs []*packages.Package) (err error) {
	packages.Visit(pkgs, func(pkg *packages.Package) bool {
		for _, pkgErr := range pkg.Errors {
			err = errors.Wrapf(pkgErr, "package %s has reported an error", pkg.PkgPath)
			return false
		}
		return true
	}, nil)
	return err
}
