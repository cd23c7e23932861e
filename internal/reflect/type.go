package reflect

import (
	"github.com/semweave/refract/internal/config"
	"github.com/semweave/refract/internal/semtype"
	"github.com/semweave/refract/internal/syntax"
)

// TypeFor builds a type expression denoting t, with aggregate generic
// arguments spelled out. It is total: semantic kinds with no surface
// spelling come back as the inference placeholder.
func TypeFor(ctx Context, t semtype.Type) syntax.TypeExpr {
	return typeFor(ctx, t, false)
}

// typeFor is the shared worker. With inferArgs set, aggregate arguments and
// type parameters become inference placeholders; the path reflector uses
// this mode when it only needs an impl self type's name and defers argument
// substitution to the caller.
func typeFor(ctx Context, t semtype.Type, inferArgs bool) syntax.TypeExpr {
	switch ty := t.(type) {
	case semtype.Prim:
		return syntax.IdentTy(string(ty.Kind))
	case semtype.Adt:
		if inferArgs {
			return syntax.PathTy(PathFor(ctx, ty.Def))
		}
		return syntax.PathTy(PathWithArgs(ctx, ty.Def, ty.Args))
	case semtype.Foreign:
		return syntax.PathTy(PathFor(ctx, ty.Def))
	case semtype.Ref:
		return syntax.RefTy(ty.Mut, TypeFor(ctx, ty.Elem))
	case semtype.RawPtr:
		return syntax.PtrTy(ty.Mut, TypeFor(ctx, ty.Elem))
	case semtype.Array:
		length := ty.Len.Value
		if !ty.Len.Known {
			length = ctx.EvalConst(ty.Len.Def)
		}
		return syntax.ArrayTy(TypeFor(ctx, ty.Elem), syntax.UintLit(length, config.UsizeSuffix))
	case semtype.Slice:
		return syntax.SliceTy(TypeFor(ctx, ty.Elem))
	case semtype.Tuple:
		elems := make([]syntax.TypeExpr, len(ty.Elems))
		for i, e := range ty.Elems {
			elems[i] = TypeFor(ctx, e)
		}
		return syntax.TupleTy(elems)
	case semtype.Never:
		return syntax.NeverTy()
	case semtype.Param:
		if inferArgs {
			return syntax.InferTy()
		}
		return syntax.IdentTy(ty.Name)
	case semtype.Unsupported:
		// Fn items, fn pointers, trait objects, closures, generators,
		// projections and opaques have no reconstructible surface spelling.
		return syntax.InferTy()
	default:
		return syntax.InferTy()
	}
}
