// Package gomodel projects Go packages into the semantic model consumed by
// the reflector. Packages become compilation units, named types become
// aggregates, method sets become impl blocks, and Go shapes with no
// spelling in the target grammar (interfaces, signatures, channels, maps)
// land in the unsupported set and degrade to the inference placeholder.
package gomodel

import (
	"fmt"
	"go/types"

	"github.com/semweave/refract/internal/model"
	"github.com/semweave/refract/internal/semtype"
)

// Model is a semantic model built from type-checked Go packages. It
// implements reflect.Context and is read-only after construction.
type Model struct {
	local     model.UnitID
	unitNames map[model.UnitID]string
	defs      map[model.DefID]*defRecord
	byObject  map[types.Object]model.DefID
	byName    map[string]model.DefID
	roots     map[model.UnitID]model.DefID
}

type defRecord struct {
	unit      model.UnitID
	kind      model.DefKind
	path      model.PathData
	parent    model.DefID
	hasParent bool
	generics  model.Generics
	typ       semtype.Type
	constVal  uint64
	hasConst  bool
	constBody model.ConstBody
}

// FromPackage builds a model with pkg as the local unit. Definitions from
// imported packages are added lazily as references to them are converted.
func FromPackage(pkg *types.Package) *Model {
	m := &Model{
		unitNames: map[model.UnitID]string{},
		defs:      map[model.DefID]*defRecord{},
		byObject:  map[types.Object]model.DefID{},
		byName:    map[string]model.DefID{},
		roots:     map[model.UnitID]model.DefID{},
	}
	m.local = m.unitFor(pkg)

	scope := pkg.Scope()
	for _, name := range scope.Names() {
		m.addObject(pkg, scope.Lookup(name))
	}
	return m
}

// DefID resolves a package-qualified name ("pkgname.Ident" or
// "pkgname.Type.method") to its definition identifier.
func (m *Model) DefID(qualified string) (model.DefID, bool) {
	id, ok := m.byName[qualified]
	return id, ok
}

func (m *Model) unitFor(pkg *types.Package) model.UnitID {
	unit := model.DeriveUnitID(pkg.Path())
	if _, ok := m.unitNames[unit]; !ok {
		m.unitNames[unit] = pkg.Name()
		root := model.DeriveDefID(unit, "crate-root")
		m.defs[root] = &defRecord{unit: unit, kind: model.KindCrateRoot, path: model.CrateRoot{}}
		m.roots[unit] = root
	}
	return unit
}

// addObject registers a top-level object and, for named types, its method
// set as an impl block.
func (m *Model) addObject(pkg *types.Package, obj types.Object) model.DefID {
	if id, ok := m.byObject[obj]; ok {
		return id
	}
	unit := m.unitFor(pkg)
	root := m.roots[unit]
	id := model.DeriveDefID(unit, "def:"+obj.Name())
	rec := &defRecord{unit: unit, parent: root, hasParent: true}
	m.defs[id] = rec
	m.byObject[obj] = id
	m.byName[pkg.Name()+"."+obj.Name()] = id

	switch o := obj.(type) {
	case *types.TypeName:
		rec.kind = model.KindStruct
		if o.IsAlias() {
			rec.kind = model.KindTypeAlias
		} else if named, ok := o.Type().(*types.Named); ok {
			if _, isIface := named.Underlying().(*types.Interface); isIface {
				rec.kind = model.KindTrait
			}
			rec.generics = typeParamKinds(named.TypeParams())
			m.addImpl(pkg, named, id)
		}
		rec.path = model.TypeNS{Name: o.Name()}
		rec.typ = m.convertType(o.Type())

	case *types.Func:
		rec.kind = model.KindFn
		rec.path = model.ValueNS{Name: o.Name()}
		rec.generics = typeParamKinds(o.Type().(*types.Signature).TypeParams())
		rec.typ = semtype.Unsupported{Kind: semtype.UnsupFnDef}

	case *types.Const:
		rec.kind = model.KindConst
		rec.path = model.ValueNS{Name: o.Name()}
		rec.typ = m.convertType(o.Type())
		if v, ok := constUint64(o); ok {
			rec.constVal, rec.hasConst = v, true
			rec.constBody = model.LitBody{Value: v}
		}

	case *types.Var:
		rec.kind = model.KindStatic
		rec.path = model.ValueNS{Name: o.Name()}
		rec.typ = m.convertType(o.Type())

	default:
		rec.kind = model.KindMod
		rec.path = model.NonPrintable{Sub: model.SubMisc}
	}
	return id
}

// addImpl models the method set of a named type as one impl block whose
// self type is the named type applied to its own parameters.
func (m *Model) addImpl(pkg *types.Package, named *types.Named, typeDef model.DefID) {
	if named.NumMethods() == 0 {
		return
	}
	unit := m.unitFor(pkg)
	typeName := named.Obj().Name()

	implID := model.DeriveDefID(unit, "impl:"+typeName)
	selfArgs := make([]semtype.Type, 0, named.TypeParams().Len())
	for i := 0; i < named.TypeParams().Len(); i++ {
		tp := named.TypeParams().At(i)
		selfArgs = append(selfArgs, semtype.Param{Index: i, Name: tp.Obj().Name()})
	}
	m.defs[implID] = &defRecord{
		unit:      unit,
		kind:      model.KindImpl,
		path:      model.Impl{},
		parent:    m.roots[unit],
		hasParent: true,
		generics:  typeParamKinds(named.TypeParams()),
		typ:       semtype.Adt{Def: typeDef, Args: selfArgs},
	}

	for i := 0; i < named.NumMethods(); i++ {
		fn := named.Method(i)
		id := model.DeriveDefID(unit, fmt.Sprintf("method:%s.%s", typeName, fn.Name()))
		m.defs[id] = &defRecord{
			unit:      unit,
			kind:      model.KindMethod,
			path:      model.ValueNS{Name: fn.Name()},
			parent:    implID,
			hasParent: true,
			typ:       semtype.Unsupported{Kind: semtype.UnsupFnDef},
		}
		m.byObject[fn] = id
		m.byName[pkg.Name()+"."+typeName+"."+fn.Name()] = id
	}
}

// convertType maps a Go type into the semantic type model.
func (m *Model) convertType(t types.Type) semtype.Type {
	switch ty := t.(type) {
	case *types.Basic:
		return basicType(ty)
	case *types.Pointer:
		return semtype.RawPtr{Mut: true, Elem: m.convertType(ty.Elem())}
	case *types.Slice:
		return semtype.Slice{Elem: m.convertType(ty.Elem())}
	case *types.Array:
		return semtype.Array{
			Elem: m.convertType(ty.Elem()),
			Len:  semtype.KnownConst(uint64(ty.Len())),
		}
	case *types.Named:
		obj := ty.Obj()
		if obj.Pkg() == nil {
			// Universe types (error, comparable) have no definition here.
			return semtype.Unsupported{Kind: semtype.UnsupOpaque}
		}
		def := m.addObject(obj.Pkg(), obj)
		args := make([]semtype.Type, 0, ty.TypeArgs().Len())
		for i := 0; i < ty.TypeArgs().Len(); i++ {
			args = append(args, m.convertType(ty.TypeArgs().At(i)))
		}
		if len(args) == 0 {
			// Uninstantiated generic: the type of the definition itself is
			// the type applied to its own parameters.
			for i := 0; i < ty.TypeParams().Len(); i++ {
				tp := ty.TypeParams().At(i)
				args = append(args, semtype.Param{Index: i, Name: tp.Obj().Name()})
			}
		}
		return semtype.Adt{Def: def, Args: args}
	case *types.TypeParam:
		return semtype.Param{Index: ty.Index(), Name: ty.Obj().Name()}
	case *types.Signature:
		return semtype.Unsupported{Kind: semtype.UnsupFnPtr}
	case *types.Interface:
		return semtype.Unsupported{Kind: semtype.UnsupDynamic}
	case *types.Struct:
		// Anonymous struct: no definition to name it by.
		return semtype.Unsupported{Kind: semtype.UnsupOpaque}
	default:
		return semtype.Unsupported{Kind: semtype.UnsupOpaque}
	}
}

func basicType(t *types.Basic) semtype.Type {
	switch t.Kind() {
	case types.Bool, types.UntypedBool:
		return semtype.Prim{Kind: semtype.Bool}
	case types.String, types.UntypedString:
		return semtype.Prim{Kind: semtype.Str}
	case types.Int, types.UntypedInt:
		return semtype.Prim{Kind: semtype.ISize}
	case types.Int8:
		return semtype.Prim{Kind: semtype.I8}
	case types.Int16:
		return semtype.Prim{Kind: semtype.I16}
	case types.Int32, types.UntypedRune:
		return semtype.Prim{Kind: semtype.I32}
	case types.Int64:
		return semtype.Prim{Kind: semtype.I64}
	case types.Uint, types.Uintptr:
		return semtype.Prim{Kind: semtype.USize}
	case types.Uint8:
		return semtype.Prim{Kind: semtype.U8}
	case types.Uint16:
		return semtype.Prim{Kind: semtype.U16}
	case types.Uint32:
		return semtype.Prim{Kind: semtype.U32}
	case types.Uint64:
		return semtype.Prim{Kind: semtype.U64}
	case types.Float32:
		return semtype.Prim{Kind: semtype.F32}
	case types.Float64, types.UntypedFloat:
		return semtype.Prim{Kind: semtype.F64}
	default:
		return semtype.Unsupported{Kind: semtype.UnsupOpaque}
	}
}

func typeParamKinds(params *types.TypeParamList) model.Generics {
	if params == nil || params.Len() == 0 {
		return nil
	}
	g := make(model.Generics, params.Len())
	for i := range g {
		g[i] = model.ParamType
	}
	return g
}

// --- reflect.Context ---

func (m *Model) TypeOf(def model.DefID) semtype.Type {
	if r := m.defs[def]; r != nil && r.typ != nil {
		return r.typ
	}
	return semtype.Unsupported{Kind: semtype.UnsupError}
}

func (m *Model) GenericsOf(def model.DefID) model.Generics {
	if r := m.defs[def]; r != nil {
		return r.generics
	}
	return nil
}

func (m *Model) DefKindOf(def model.DefID) model.DefKind {
	if r := m.defs[def]; r != nil {
		return r.kind
	}
	return ""
}

func (m *Model) PathDataOf(def model.DefID) model.PathData {
	if r := m.defs[def]; r != nil {
		return r.path
	}
	return nil
}

func (m *Model) Parent(def model.DefID) (model.DefID, bool) {
	if r := m.defs[def]; r != nil && r.hasParent {
		return r.parent, true
	}
	return model.DefID{}, false
}

// VisibleParent always reports false: Go has no re-exports, so structural
// nesting is already the shortest reachable path.
func (m *Model) VisibleParent(def model.DefID) (model.DefID, bool) {
	return model.DefID{}, false
}

func (m *Model) UnitOf(def model.DefID) model.UnitID {
	if r := m.defs[def]; r != nil {
		return r.unit
	}
	return model.UnitID{}
}

func (m *Model) LocalUnit() model.UnitID { return m.local }

func (m *Model) UnitName(unit model.UnitID) string { return m.unitNames[unit] }

func (m *Model) EvalConst(def model.DefID) uint64 {
	if r := m.defs[def]; r != nil && r.hasConst {
		return r.constVal
	}
	return 0
}

func (m *Model) ConstBodyOf(def model.DefID) (model.ConstBody, bool) {
	if r := m.defs[def]; r != nil && r.constBody != nil {
		return r.constBody, true
	}
	return nil, false
}
