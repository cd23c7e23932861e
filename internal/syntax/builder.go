package syntax

// Construction facility for syntax nodes. Reflection code never assembles
// node structs by hand; it goes through these constructors so that shape
// invariants (non-nil paths, copied segment slices) hold everywhere.

// IdentTy builds an unqualified single-segment named type, e.g. bool or T.
func IdentTy(name string) *PathType {
	return &PathType{Path: PathOf(Segment(name))}
}

// PathTy wraps a path as a type expression.
func PathTy(p *Path) *PathType {
	return &PathType{Path: p}
}

// RefTy builds &elem or &mut elem.
func RefTy(mut bool, elem TypeExpr) *RefType {
	return &RefType{Mut: mut, Elem: elem}
}

// PtrTy builds *const elem or *mut elem.
func PtrTy(mut bool, elem TypeExpr) *PtrType {
	return &PtrType{Mut: mut, Elem: elem}
}

// ArrayTy builds [elem; len].
func ArrayTy(elem TypeExpr, length Expr) *ArrayType {
	return &ArrayType{Elem: elem, Len: length}
}

// SliceTy builds [elem].
func SliceTy(elem TypeExpr) *SliceType {
	return &SliceType{Elem: elem}
}

// TupleTy builds (elems...).
func TupleTy(elems []TypeExpr) *TupleType {
	return &TupleType{Elems: elems}
}

// NeverTy builds the never type.
func NeverTy() *NeverType {
	return &NeverType{}
}

// InferTy builds the inference placeholder.
func InferTy() *InferType {
	return &InferType{}
}

// Segment builds a path segment without generic arguments.
func Segment(name string) *PathSegment {
	return &PathSegment{Name: name}
}

// SegmentArgs builds a path segment carrying generic arguments.
func SegmentArgs(name string, args []TypeExpr) *PathSegment {
	return &PathSegment{Name: name, Args: args}
}

// PathOf builds an unqualified path from outermost-first segments.
func PathOf(segs ...*PathSegment) *Path {
	return &Path{Segments: segs}
}

// QPathOf builds a path with an explicit self-type qualifier.
func QPathOf(qself TypeExpr, segs ...*PathSegment) *Path {
	return &Path{QSelf: qself, Segments: segs}
}

// UintLit builds an unsigned integer literal, e.g. 4usize.
func UintLit(v uint64, suffix string) *IntLit {
	return &IntLit{Value: v, Suffix: suffix}
}

// Unary builds a unary expression.
func Unary(op string, operand Expr) *UnaryExpr {
	return &UnaryExpr{Op: op, Operand: operand}
}

// Binary builds a binary expression.
func Binary(op string, lhs, rhs Expr) *BinaryExpr {
	return &BinaryExpr{Op: op, Lhs: lhs, Rhs: rhs}
}
