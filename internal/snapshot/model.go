package snapshot

import (
	"github.com/semweave/refract/internal/config"
	"github.com/semweave/refract/internal/model"
	"github.com/semweave/refract/internal/semtype"
	"github.com/semweave/refract/internal/syntax"
)

// Model is an in-memory semantic model. It implements reflect.Context and
// reflect.NodeSource and is read-only after Load returns.
type Model struct {
	local     model.UnitID
	unitNames map[model.UnitID]string
	defs      map[model.DefID]*defRecord
	byKey     map[string]model.DefID
	nodes     map[model.NodeID]model.NodeKind
}

type defRecord struct {
	key        string
	unit       model.UnitID
	kind       model.DefKind
	name       string
	path       model.PathData
	parent     model.DefID
	hasParent  bool
	visible    model.DefID
	hasVisible bool
	generics   model.Generics
	typ        semtype.Type
	constVal   uint64
	hasConst   bool
	constBody  model.ConstBody
	children   map[string]model.DefID
}

// DefID resolves a snapshot-local id key to its definition identifier.
func (m *Model) DefID(key string) (model.DefID, bool) {
	id, ok := m.byKey[key]
	return id, ok
}

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

func (m *Model) VisibleParent(def model.DefID) (model.DefID, bool) {
	if r := m.defs[def]; r != nil && r.hasVisible {
		return r.visible, true
	}
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
	r := m.defs[def]
	if r == nil {
		return 0
	}
	if r.hasConst {
		return r.constVal
	}
	if lit, ok := r.constBody.(model.LitBody); ok {
		return lit.Value
	}
	return 0
}

func (m *Model) ConstBodyOf(def model.DefID) (model.ConstBody, bool) {
	if r := m.defs[def]; r != nil && r.constBody != nil {
		return r.constBody, true
	}
	return nil, false
}

func (m *Model) NodeKindOf(id model.NodeID) (model.NodeKind, bool) {
	kind, ok := m.nodes[id]
	return kind, ok
}

// Resolve walks a reflected path back to the definition it denotes,
// following names through the definition hierarchy. Qualified paths and
// relative tails cannot be resolved this way and report false.
func (m *Model) Resolve(path *syntax.Path) (model.DefID, bool) {
	if path == nil || path.QSelf != nil || len(path.Segments) == 0 {
		return model.DefID{}, false
	}
	segs := path.Segments

	var cur model.DefID
	switch segs[0].Name {
	case config.SelfSegmentName:
		root, ok := m.unitRoot(m.local)
		if !ok {
			return model.DefID{}, false
		}
		cur, segs = root, segs[1:]
	case config.PathRootSegmentName:
		if len(segs) < 2 {
			return model.DefID{}, false
		}
		root, ok := m.unitRootByName(segs[1].Name)
		if !ok {
			return model.DefID{}, false
		}
		cur, segs = root, segs[2:]
	default:
		return model.DefID{}, false
	}

	for _, seg := range segs {
		r := m.defs[cur]
		if r == nil {
			return model.DefID{}, false
		}
		next, ok := r.children[seg.Name]
		if !ok {
			return model.DefID{}, false
		}
		cur = next
	}
	return cur, true
}

func (m *Model) unitRoot(unit model.UnitID) (model.DefID, bool) {
	for id, r := range m.defs {
		if r.unit == unit {
			if _, ok := r.path.(model.CrateRoot); ok {
				return id, true
			}
		}
	}
	return model.DefID{}, false
}

func (m *Model) unitRootByName(name string) (model.DefID, bool) {
	for unit, unitName := range m.unitNames {
		if unitName == name {
			return m.unitRoot(unit)
		}
	}
	return model.DefID{}, false
}
