// Package reflect rebuilds source-level syntax from the resolved semantic
// model: a type expression for a semantic type, a path for a definition.
// It is the inverse of name resolution, restricted to what the surface
// grammar can actually spell; unspeakable kinds degrade to the inference
// placeholder.
package reflect

import (
	"github.com/semweave/refract/internal/model"
	"github.com/semweave/refract/internal/semtype"
)

// Context is the read-only semantic model the reflector walks. All queries
// must be side-effect-free; implementations are expected to memoize.
type Context interface {
	// TypeOf returns the resolved type of a definition. For impl blocks
	// this is the implementing self type.
	TypeOf(def model.DefID) semtype.Type

	// GenericsOf returns the generic parameters the definition declares
	// itself, outermost-first.
	GenericsOf(def model.DefID) model.Generics

	// DefKindOf classifies the definition.
	DefKindOf(def model.DefID) model.DefKind

	// PathDataOf returns the definition's path-component kind, or nil when
	// the identifier does not denote a path-bearing entity.
	PathDataOf(def model.DefID) model.PathData

	// Parent returns the structural parent of a definition.
	Parent(def model.DefID) (model.DefID, bool)

	// VisibleParent consults the precomputed reachability table: the
	// nearest ancestor through which the definition is externally visible.
	// May diverge from the structural parent, e.g. for re-exports.
	VisibleParent(def model.DefID) (model.DefID, bool)

	// UnitOf returns the compilation unit owning a definition.
	UnitOf(def model.DefID) model.UnitID

	// LocalUnit returns the unit the transformation is running in.
	LocalUnit() model.UnitID

	// UnitName returns a unit's declared name.
	UnitName(unit model.UnitID) string

	// EvalConst evaluates an anonymous constant to an unsigned integer.
	EvalConst(def model.DefID) uint64

	// ConstBodyOf returns the evaluated body of an anonymous constant.
	ConstBodyOf(def model.DefID) (model.ConstBody, bool)
}

// NodeSource is the syntax-node lookup facility backing CanReflectPath.
type NodeSource interface {
	// NodeKindOf returns the syntactic category of a node, reporting false
	// for unknown identifiers.
	NodeKindOf(id model.NodeID) (model.NodeKind, bool)
}
