package model

// ConstBody is the evaluated body of an anonymous constant, restricted to
// the shapes the expression reflector can convert back to source syntax.
type ConstBody interface {
	constBody()
}

// LitBody is an unsigned integer literal, optionally with a size suffix.
type LitBody struct {
	Value  uint64
	Suffix string
}

// UnaryBody is a unary operation over a supported body.
type UnaryBody struct {
	Op      string
	Operand ConstBody
}

// BinaryBody is a binary operation over two supported bodies.
type BinaryBody struct {
	Op  string
	Lhs ConstBody
	Rhs ConstBody
}

// OpaqueBody stands for any body shape outside of the supported grammar.
// Reflecting it is a hard failure, never a silent approximation.
type OpaqueBody struct {
	Shape string
}

func (LitBody) constBody()    {}
func (UnaryBody) constBody()  {}
func (BinaryBody) constBody() {}
func (OpaqueBody) constBody() {}
