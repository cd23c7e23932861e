// Package syntax holds the source-level nodes the reflection engine
// produces: type expressions, paths and the restricted expression grammar
// used for anonymous constants. Nodes are built exclusively through the
// constructors in builder.go and rendered by the prettyprinter.
package syntax

// TypeExpr is a source-level type expression.
type TypeExpr interface {
	typeExpr()
}

// PathType is a (possibly qualified) named type, e.g. geometry::Point<i32>
// or <[u8] as Encode>::Output.
type PathType struct {
	Path *Path
}

// RefType is a reference type, e.g. &T or &mut T.
type RefType struct {
	Mut  bool
	Elem TypeExpr
}

// PtrType is a raw pointer type, e.g. *const T or *mut T.
type PtrType struct {
	Mut  bool
	Elem TypeExpr
}

// ArrayType is a fixed-length array type, e.g. [T; 4usize].
type ArrayType struct {
	Elem TypeExpr
	Len  Expr
}

// SliceType is a slice type, e.g. [T].
type SliceType struct {
	Elem TypeExpr
}

// TupleType is a tuple type, e.g. (A, B). Zero elements spell the unit type.
type TupleType struct {
	Elems []TypeExpr
}

// NeverType is the never type, spelled !.
type NeverType struct{}

// InferType is the inference placeholder, spelled _.
type InferType struct{}

func (*PathType) typeExpr()  {}
func (*RefType) typeExpr()   {}
func (*PtrType) typeExpr()   {}
func (*ArrayType) typeExpr() {}
func (*SliceType) typeExpr() {}
func (*TupleType) typeExpr() {}
func (*NeverType) typeExpr() {}
func (*InferType) typeExpr() {}

// Path is a scoped sequence of named segments, optionally rooted in an
// explicit self-type qualifier. Segments are stored outermost-first.
type Path struct {
	// QSelf, when non-nil, qualifies the whole path with a self type that
	// has no named spelling of its own, e.g. <[u8; 4usize]>::len.
	QSelf    TypeExpr
	Segments []*PathSegment
}

// PathSegment is one named step of a path, optionally carrying generic
// arguments.
type PathSegment struct {
	Name string
	Args []TypeExpr
}

// Expr is a source-level expression from the restricted grammar the
// anonymous-constant reflector supports.
type Expr interface {
	expr()
}

// IntLit is an unsigned integer literal with an optional size suffix.
type IntLit struct {
	Value  uint64
	Suffix string
}

// UnaryExpr is a unary operation.
type UnaryExpr struct {
	Op      string
	Operand Expr
}

// BinaryExpr is a binary operation.
type BinaryExpr struct {
	Op  string
	Lhs Expr
	Rhs Expr
}

func (*IntLit) expr()     {}
func (*UnaryExpr) expr()  {}
func (*BinaryExpr) expr() {}
