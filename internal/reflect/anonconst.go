package reflect

import (
	"fmt"

	"github.com/semweave/refract/internal/model"
	"github.com/semweave/refract/internal/syntax"
)

// ConstExprFor converts the evaluated body of an anonymous constant (e.g.
// an array-length expression) back into a source-level expression.
//
// Only a restricted grammar is supported: literals plus unary and binary
// operations over supported bodies. Any other shape is an error, never a
// silent approximation.
func ConstExprFor(ctx Context, id model.DefID) (syntax.Expr, error) {
	body, ok := ctx.ConstBodyOf(id)
	if !ok {
		return nil, fmt.Errorf("reflect: %s has no constant body", id)
	}
	return constExpr(body)
}

func constExpr(body model.ConstBody) (syntax.Expr, error) {
	switch b := body.(type) {
	case model.LitBody:
		return syntax.UintLit(b.Value, b.Suffix), nil
	case model.UnaryBody:
		operand, err := constExpr(b.Operand)
		if err != nil {
			return nil, err
		}
		return syntax.Unary(b.Op, operand), nil
	case model.BinaryBody:
		lhs, err := constExpr(b.Lhs)
		if err != nil {
			return nil, err
		}
		rhs, err := constExpr(b.Rhs)
		if err != nil {
			return nil, err
		}
		return syntax.Binary(b.Op, lhs, rhs), nil
	case model.OpaqueBody:
		return nil, fmt.Errorf("reflect: unsupported constant shape %q", b.Shape)
	default:
		return nil, fmt.Errorf("reflect: unsupported constant shape %T", body)
	}
}
