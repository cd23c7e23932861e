package model

// NodeID identifies a node in the syntax tree of the program being
// transformed. Node identifiers are scoped to the host's syntax arena and,
// unlike DefIDs, carry no cross-unit meaning.
type NodeID uint32

// InvalidNode is the zero NodeID; no real node carries it.
const InvalidNode NodeID = 0

// NodeKind is the syntactic category of a node, as reported by the host's
// syntax-node lookup facility.
type NodeKind string

const (
	NodeItem         NodeKind = "item"
	NodeForeignItem  NodeKind = "foreign-item"
	NodeTraitItem    NodeKind = "trait-item"
	NodeImplItem     NodeKind = "impl-item"
	NodeVariant      NodeKind = "variant"
	NodeField        NodeKind = "field"
	NodeBinding      NodeKind = "binding"
	NodeLocal        NodeKind = "local"
	NodeMacroDef     NodeKind = "macro-def"
	NodeCtor         NodeKind = "ctor"
	NodeGenericParam NodeKind = "generic-param"
	NodeAnonConst    NodeKind = "anon-const"
	NodeExpr         NodeKind = "expr"
	NodeStmt         NodeKind = "stmt"
	NodePathSegment  NodeKind = "path-segment"
	NodeType         NodeKind = "type"
	NodeTraitRef     NodeKind = "trait-ref"
	NodePat          NodeKind = "pat"
	NodeArm          NodeKind = "arm"
	NodeParam        NodeKind = "param"
	NodeBlock        NodeKind = "block"
	NodeLifetime     NodeKind = "lifetime"
	NodeVisibility   NodeKind = "visibility"
	NodeCrate        NodeKind = "crate"
)
