package reflect

import (
	"fmt"

	"github.com/semweave/refract/internal/config"
	"github.com/semweave/refract/internal/model"
	"github.com/semweave/refract/internal/semtype"
	"github.com/semweave/refract/internal/syntax"
)

// PathFor builds a path denoting the given definition, without spelling out
// generic arguments.
//
// The definition must be path-bearing; gate calls with CanReflectPath.
// Violating the precondition panics.
func PathFor(ctx Context, id model.DefID) *syntax.Path {
	return pathFor(ctx, id, nil, false)
}

// PathWithArgs builds a path denoting the given definition with generic
// arguments attached to its segments. args is the flat argument window,
// outermost-first, covering the definition and all generic-bearing scopes
// above it; the walk consumes it from the trailing (innermost) end.
//
// Same precondition as PathFor.
func PathWithArgs(ctx Context, id model.DefID, args []semtype.Type) *syntax.Path {
	return pathFor(ctx, id, args, true)
}

func pathFor(ctx Context, id model.DefID, window []semtype.Type, haveWindow bool) *syntax.Path {
	var segs []*syntax.PathSegment
	var qself syntax.TypeExpr

	// Build the path in reverse order: the current definition's name first,
	// then its parent's, and so on. Flip once at the end.
walk:
	for {
		pd := ctx.PathDataOf(id)
		if pd == nil {
			panic(fmt.Sprintf("reflect: definition %s has no path; gate with CanReflectPath", id))
		}

		switch d := pd.(type) {
		case model.CrateRoot:
			if ctx.UnitOf(id) == ctx.LocalUnit() {
				segs = append(segs, syntax.Segment(config.SelfSegmentName))
			} else {
				// An external unit is referenced by its declared name under
				// an explicit root segment.
				segs = append(segs, syntax.Segment(ctx.UnitName(ctx.UnitOf(id))))
				segs = append(segs, syntax.Segment(config.PathRootSegmentName))
			}
			break walk

		case model.Impl:
			qself = reflectImplSelf(ctx, id, window, haveWindow, &segs)
			break walk

		case model.ValueNS:
			if len(segs) == 0 {
				if d.Name != "" {
					segs = append(segs, syntax.Segment(d.Name))
				}
			} else {
				// A value-namespace ancestor (an enclosing function) cannot
				// syntactically prefix the tail built so far. Keep the
				// relative path; it is valid exactly where the definition
				// is visible.
				break walk
			}

		case model.TypeNS:
			if d.Name != "" {
				segs = append(segs, syntax.Segment(d.Name))
			}

		case model.NonPrintable:
			// Contributes no segment.
		}

		if np, ok := pd.(model.NonPrintable); ok && np.Sub == model.SubCtor {
			// The reachability table maps a constructor past its owning
			// struct or variant. Jump to the structural parent instead so
			// the owner's name is captured on the next iteration.
			if parent, ok := ctx.Parent(id); ok {
				id = parent
				continue
			}
			break walk
		}

		window = attachArgs(ctx, id, segs, window, haveWindow)

		if parent, ok := ctx.VisibleParent(id); ok {
			id = parent
		} else if parent, ok := ctx.Parent(id); ok {
			id = parent
		} else {
			break walk
		}
	}

	reverse(segs)
	return &syntax.Path{QSelf: qself, Segments: segs}
}

// reflectImplSelf resolves an impl block into path form. Impl blocks are
// transparent: when the self type has a named path its segments are spliced
// straight into the accumulator (Struct::method, not a qualifier on Struct).
// Self types without a name (primitives, references, ...) become an explicit
// qualifier instead. Returns the qualifier, nil if none.
func reflectImplSelf(ctx Context, id model.DefID, window []semtype.Type, haveWindow bool, segs *[]*syntax.PathSegment) syntax.TypeExpr {
	selfTy := ctx.TypeOf(id)
	own := ctx.GenericsOf(id).TypeParamCount()

	var ast syntax.TypeExpr
	if haveWindow && len(window) == own {
		// The remaining window is exactly the impl's own parameters:
		// substitute them into the self type and reflect concretely.
		ast = TypeFor(ctx, selfTy.Apply(semtype.Subst(window)))
	} else {
		ast = typeFor(ctx, selfTy, true)
	}

	if pt, ok := ast.(*syntax.PathType); ok {
		for i := len(pt.Path.Segments) - 1; i >= 0; i-- {
			*segs = append(*segs, pt.Path.Segments[i])
		}
		return pt.Path.QSelf
	}
	return ast
}

// attachArgs consumes the trailing end of the argument window for a
// definition that declares its own generic parameters and attaches the
// reflected types to the segment just emitted. Returns the shrunk window.
func attachArgs(ctx Context, id model.DefID, segs []*syntax.PathSegment, window []semtype.Type, haveWindow bool) []semtype.Type {
	if !haveWindow || len(window) == 0 || len(segs) == 0 {
		return window
	}
	kind := ctx.DefKindOf(id)
	if !kind.CanHaveTypeParams() {
		return window
	}
	own := ctx.GenericsOf(id).TypeParamCount()
	if own == 0 {
		return window
	}
	if len(window) < own {
		panic(fmt.Sprintf("reflect: argument window underflow for %s: have %d, need %d", id, len(window), own))
	}
	start := len(window) - own
	args := make([]syntax.TypeExpr, own)
	for i, t := range window[start:] {
		args[i] = TypeFor(ctx, t)
	}
	segs[len(segs)-1].Args = args
	return window[:start]
}

func reverse(segs []*syntax.PathSegment) {
	for i, j := 0, len(segs)-1; i < j; i, j = i+1, j-1 {
		segs[i], segs[j] = segs[j], segs[i]
	}
}
