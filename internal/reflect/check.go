package reflect

import (
	"github.com/semweave/refract/internal/model"
)

// CanReflectPath reports whether the entity a syntax node denotes
// structurally has a path. It is the mandatory gate before PathFor and
// PathWithArgs, which panic when called on anything else.
func CanReflectPath(nodes NodeSource, id model.NodeID) bool {
	kind, ok := nodes.NodeKindOf(id)
	if !ok {
		return false
	}
	switch kind {
	case model.NodeItem,
		model.NodeForeignItem,
		model.NodeTraitItem,
		model.NodeImplItem,
		model.NodeVariant,
		model.NodeField,
		model.NodeBinding,
		model.NodeLocal,
		model.NodeMacroDef,
		model.NodeCtor,
		model.NodeGenericParam:
		return true

	case model.NodeAnonConst,
		model.NodeExpr,
		model.NodeStmt,
		model.NodePathSegment,
		model.NodeType,
		model.NodeTraitRef,
		model.NodePat,
		model.NodeArm,
		model.NodeParam,
		model.NodeBlock,
		model.NodeLifetime,
		model.NodeVisibility,
		model.NodeCrate:
		return false
	}
	return false
}
