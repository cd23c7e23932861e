package snapshot

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/semweave/refract/internal/model"
	"github.com/semweave/refract/internal/semtype"
)

// Load parses a YAML snapshot and resolves it into a Model. Every
// cross-reference (parents, visible parents, aggregate defs, length defs)
// must name a def declared in the same file.
func Load(data []byte) (*Model, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	return build(&file)
}

// LoadFile reads and loads a snapshot from disk.
func LoadFile(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	m, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

func build(file *File) (*Model, error) {
	if file.Local == "" {
		return nil, fmt.Errorf("snapshot: missing local unit name")
	}

	m := &Model{
		local:     model.DeriveUnitID(file.Local),
		unitNames: map[model.UnitID]string{},
		defs:      map[model.DefID]*defRecord{},
		byKey:     map[string]model.DefID{},
		nodes:     map[model.NodeID]model.NodeKind{},
	}
	m.unitNames[m.local] = file.Local

	// First pass: mint identifiers so later references resolve regardless
	// of declaration order.
	for i := range file.Defs {
		spec := &file.Defs[i]
		if spec.ID == "" {
			return nil, fmt.Errorf("snapshot: def %d: missing id", i)
		}
		if spec.Unit == "" {
			return nil, fmt.Errorf("snapshot: def %q: missing unit", spec.ID)
		}
		if _, dup := m.byKey[spec.ID]; dup {
			return nil, fmt.Errorf("snapshot: duplicate def id %q", spec.ID)
		}
		unit := model.DeriveUnitID(spec.Unit)
		m.unitNames[unit] = spec.Unit
		m.byKey[spec.ID] = model.DeriveDefID(unit, spec.ID)
	}

	for i := range file.Defs {
		spec := &file.Defs[i]
		rec, err := buildDef(m, spec)
		if err != nil {
			return nil, fmt.Errorf("snapshot: def %q: %w", spec.ID, err)
		}
		m.defs[m.byKey[spec.ID]] = rec
	}

	// Wire children under structural and visible parents for Resolve.
	for id, rec := range m.defs {
		if rec.name == "" {
			continue
		}
		for _, parent := range []struct {
			id model.DefID
			ok bool
		}{{rec.parent, rec.hasParent}, {rec.visible, rec.hasVisible}} {
			if !parent.ok {
				continue
			}
			p := m.defs[parent.id]
			if p.children == nil {
				p.children = map[string]model.DefID{}
			}
			p.children[rec.name] = id
		}
	}

	for _, n := range file.Nodes {
		m.nodes[model.NodeID(n.ID)] = model.NodeKind(n.Kind)
	}
	return m, nil
}

func buildDef(m *Model, spec *DefSpec) (*defRecord, error) {
	rec := &defRecord{
		key:  spec.ID,
		unit: model.DeriveUnitID(spec.Unit),
		kind: model.DefKind(spec.Kind),
		name: spec.Name,
	}

	path, err := pathDataFor(spec)
	if err != nil {
		return nil, err
	}
	rec.path = path

	if spec.Parent != "" {
		id, ok := m.byKey[spec.Parent]
		if !ok {
			return nil, fmt.Errorf("unknown parent %q", spec.Parent)
		}
		rec.parent, rec.hasParent = id, true
	}
	if spec.VisibleParent != "" {
		id, ok := m.byKey[spec.VisibleParent]
		if !ok {
			return nil, fmt.Errorf("unknown visible-parent %q", spec.VisibleParent)
		}
		rec.visible, rec.hasVisible = id, true
	}

	for _, g := range spec.Generics {
		switch k := model.GenericParamKind(g); k {
		case model.ParamLifetime, model.ParamType, model.ParamConst:
			rec.generics = append(rec.generics, k)
		default:
			return nil, fmt.Errorf("unknown generic parameter kind %q", g)
		}
	}

	if spec.Type != nil {
		typ, err := buildType(m, spec.Type)
		if err != nil {
			return nil, err
		}
		rec.typ = typ
	}
	if spec.ConstValue != nil {
		rec.constVal, rec.hasConst = *spec.ConstValue, true
	}
	if spec.ConstBody != nil {
		body, err := buildBody(spec.ConstBody)
		if err != nil {
			return nil, err
		}
		rec.constBody = body
	}
	return rec, nil
}

// pathDataFor derives the path-component kind, preferring an explicit
// path field over the default implied by the def kind.
func pathDataFor(spec *DefSpec) (model.PathData, error) {
	kind := spec.Path
	if kind == "" {
		kind = defaultPathKind(model.DefKind(spec.Kind))
	}
	switch kind {
	case "crate-root":
		return model.CrateRoot{}, nil
	case "impl":
		return model.Impl{}, nil
	case "value-ns":
		return model.ValueNS{Name: spec.Name}, nil
	case "type-ns":
		return model.TypeNS{Name: spec.Name}, nil
	case "non-printable":
		sub := model.NonPrintableSub(spec.Sub)
		if sub == "" {
			sub = defaultSub(model.DefKind(spec.Kind))
		}
		return model.NonPrintable{Sub: sub}, nil
	default:
		return nil, fmt.Errorf("unknown path kind %q", kind)
	}
}

func defaultPathKind(kind model.DefKind) string {
	switch kind {
	case model.KindCrateRoot:
		return "crate-root"
	case model.KindImpl:
		return "impl"
	case model.KindFn, model.KindMethod, model.KindConst, model.KindStatic,
		model.KindField:
		return "value-ns"
	case model.KindMod, model.KindStruct, model.KindUnion, model.KindEnum,
		model.KindVariant, model.KindTrait, model.KindTraitAlias,
		model.KindTypeAlias, model.KindForeignTy, model.KindOpaqueTy,
		model.KindAssocTy, model.KindTyParam:
		return "type-ns"
	case model.KindCtor, model.KindAnonConst, model.KindMacro:
		return "non-printable"
	default:
		return ""
	}
}

func defaultSub(kind model.DefKind) model.NonPrintableSub {
	switch kind {
	case model.KindCtor:
		return model.SubCtor
	case model.KindAnonConst:
		return model.SubAnonConst
	case model.KindMacro:
		return model.SubMacro
	default:
		return model.SubMisc
	}
}

func buildType(m *Model, spec *TypeSpec) (semtype.Type, error) {
	switch {
	case spec == nil:
		return nil, fmt.Errorf("missing type")
	case spec.Prim != "":
		return semtype.Prim{Kind: semtype.PrimKind(spec.Prim)}, nil
	case spec.Adt != nil:
		def, ok := m.byKey[spec.Adt.Def]
		if !ok {
			return nil, fmt.Errorf("unknown def %q in adt type", spec.Adt.Def)
		}
		args := make([]semtype.Type, len(spec.Adt.Args))
		for i, a := range spec.Adt.Args {
			arg, err := buildType(m, a)
			if err != nil {
				return nil, err
			}
			args[i] = arg
		}
		return semtype.Adt{Def: def, Args: args}, nil
	case spec.Foreign != "":
		def, ok := m.byKey[spec.Foreign]
		if !ok {
			return nil, fmt.Errorf("unknown def %q in foreign type", spec.Foreign)
		}
		return semtype.Foreign{Def: def}, nil
	case spec.Ref != nil:
		elem, err := buildType(m, spec.Ref.Elem)
		if err != nil {
			return nil, err
		}
		return semtype.Ref{Mut: spec.Ref.Mut, Elem: elem}, nil
	case spec.Ptr != nil:
		elem, err := buildType(m, spec.Ptr.Elem)
		if err != nil {
			return nil, err
		}
		return semtype.RawPtr{Mut: spec.Ptr.Mut, Elem: elem}, nil
	case spec.Array != nil:
		elem, err := buildType(m, spec.Array.Elem)
		if err != nil {
			return nil, err
		}
		var length semtype.Const
		switch {
		case spec.Array.Len != nil:
			length = semtype.KnownConst(*spec.Array.Len)
		case spec.Array.LenDef != "":
			def, ok := m.byKey[spec.Array.LenDef]
			if !ok {
				return nil, fmt.Errorf("unknown def %q in array length", spec.Array.LenDef)
			}
			length = semtype.DeferredConst(def)
		default:
			return nil, fmt.Errorf("array type needs len or len-def")
		}
		return semtype.Array{Elem: elem, Len: length}, nil
	case spec.Slice != nil:
		elem, err := buildType(m, spec.Slice)
		if err != nil {
			return nil, err
		}
		return semtype.Slice{Elem: elem}, nil
	case spec.Tuple != nil:
		elems := make([]semtype.Type, len(spec.Tuple))
		for i, e := range spec.Tuple {
			elem, err := buildType(m, e)
			if err != nil {
				return nil, err
			}
			elems[i] = elem
		}
		return semtype.Tuple{Elems: elems}, nil
	case spec.Never:
		return semtype.Never{}, nil
	case spec.Param != nil:
		return semtype.Param{Index: spec.Param.Index, Name: spec.Param.Name}, nil
	case spec.Unsupported != "":
		return semtype.Unsupported{Kind: semtype.UnsupportedKind(spec.Unsupported)}, nil
	default:
		return nil, fmt.Errorf("empty type spec")
	}
}

func buildBody(spec *BodySpec) (model.ConstBody, error) {
	switch {
	case spec.Lit != nil:
		return model.LitBody{Value: spec.Lit.Value, Suffix: spec.Lit.Suffix}, nil
	case spec.Unary != nil:
		operand, err := buildBody(spec.Unary.Operand)
		if err != nil {
			return nil, err
		}
		return model.UnaryBody{Op: spec.Unary.Op, Operand: operand}, nil
	case spec.Binary != nil:
		lhs, err := buildBody(spec.Binary.Lhs)
		if err != nil {
			return nil, err
		}
		rhs, err := buildBody(spec.Binary.Rhs)
		if err != nil {
			return nil, err
		}
		return model.BinaryBody{Op: spec.Binary.Op, Lhs: lhs, Rhs: rhs}, nil
	case spec.Opaque != "":
		return model.OpaqueBody{Shape: spec.Opaque}, nil
	default:
		return nil, fmt.Errorf("empty const body")
	}
}
