// Package snapshot loads a YAML description of a semantic model into an
// in-memory implementation of the reflector's Context. Snapshots double as
// test fixtures and as input to the refract CLI.
package snapshot

// File is the top-level YAML document.
type File struct {
	// Local names the compilation unit the transformation runs in.
	Local string `yaml:"local"`

	// Defs lists every definition in the model. Order is irrelevant;
	// references go by the unit-local id key.
	Defs []DefSpec `yaml:"defs"`

	// Nodes lists syntax nodes with their categories, for the
	// reflectability check.
	Nodes []NodeSpec `yaml:"nodes,omitempty"`
}

// DefSpec describes one definition.
type DefSpec struct {
	ID   string `yaml:"id"`
	Unit string `yaml:"unit"`
	Kind string `yaml:"kind"`
	Name string `yaml:"name,omitempty"`

	// Path overrides the path-component kind derived from Kind. One of:
	// crate-root, impl, value-ns, type-ns, non-printable.
	Path string `yaml:"path,omitempty"`

	// Sub is the non-printable subkind (misc, lifetime, macro, closure,
	// ctor, anon-const, impl-trait).
	Sub string `yaml:"sub,omitempty"`

	Parent string `yaml:"parent,omitempty"`

	// VisibleParent is this definition's reachability-table entry.
	VisibleParent string `yaml:"visible-parent,omitempty"`

	// Generics lists the definition's own generic parameters in order:
	// lifetime, type or const.
	Generics []string `yaml:"generics,omitempty"`

	// Type is the definition's resolved type; for impl blocks, the
	// implementing self type.
	Type *TypeSpec `yaml:"type,omitempty"`

	// ConstValue is the evaluated value of an anonymous constant.
	ConstValue *uint64 `yaml:"const-value,omitempty"`

	// ConstBody is the body of an anonymous constant, restricted to the
	// grammar the expression reflector supports.
	ConstBody *BodySpec `yaml:"const-body,omitempty"`
}

// NodeSpec describes one syntax node.
type NodeSpec struct {
	ID   uint32 `yaml:"id"`
	Kind string `yaml:"kind"`
}

// TypeSpec describes a semantic type. Exactly one field must be set.
type TypeSpec struct {
	Prim        string       `yaml:"prim,omitempty"`
	Adt         *AdtSpec     `yaml:"adt,omitempty"`
	Foreign     string       `yaml:"foreign,omitempty"`
	Ref         *PointeeSpec `yaml:"ref,omitempty"`
	Ptr         *PointeeSpec `yaml:"ptr,omitempty"`
	Array       *ArraySpec   `yaml:"array,omitempty"`
	Slice       *TypeSpec    `yaml:"slice,omitempty"`
	Tuple       []*TypeSpec  `yaml:"tuple,omitempty"`
	Never       bool         `yaml:"never,omitempty"`
	Param       *ParamSpec   `yaml:"param,omitempty"`
	Unsupported string       `yaml:"unsupported,omitempty"`
}

// AdtSpec references an aggregate definition with its generic arguments.
type AdtSpec struct {
	Def  string      `yaml:"def"`
	Args []*TypeSpec `yaml:"args,omitempty"`
}

// PointeeSpec describes the target of a reference or raw pointer.
type PointeeSpec struct {
	Mut  bool      `yaml:"mut,omitempty"`
	Elem *TypeSpec `yaml:"elem"`
}

// ArraySpec describes an array type. Len is an inline value; LenDef refers
// to an anonymous-constant definition evaluated through the model.
type ArraySpec struct {
	Elem   *TypeSpec `yaml:"elem"`
	Len    *uint64   `yaml:"len,omitempty"`
	LenDef string    `yaml:"len-def,omitempty"`
}

// ParamSpec describes a generic type parameter occurring in a type.
type ParamSpec struct {
	Index int    `yaml:"index"`
	Name  string `yaml:"name"`
}

// BodySpec describes a constant body. Exactly one field must be set.
type BodySpec struct {
	Lit    *LitSpec    `yaml:"lit,omitempty"`
	Unary  *UnarySpec  `yaml:"unary,omitempty"`
	Binary *BinarySpec `yaml:"binary,omitempty"`
	Opaque string      `yaml:"opaque,omitempty"`
}

// LitSpec is an unsigned integer literal.
type LitSpec struct {
	Value  uint64 `yaml:"value"`
	Suffix string `yaml:"suffix,omitempty"`
}

// UnarySpec is a unary operation.
type UnarySpec struct {
	Op      string    `yaml:"op"`
	Operand *BodySpec `yaml:"operand"`
}

// BinarySpec is a binary operation.
type BinarySpec struct {
	Op  string    `yaml:"op"`
	Lhs *BodySpec `yaml:"lhs"`
	Rhs *BodySpec `yaml:"rhs"`
}
