package semtype

import (
	"fmt"
	"strings"

	"github.com/semweave/refract/internal/model"
)

// Type is the interface for all resolved semantic types. Values are
// transient: produced fresh by a model query and consumed within one
// reflection call.
type Type interface {
	String() string
	Apply(Subst) Type
}

// PrimKind is the canonical spelling of a primitive type. The spelling is
// fixed; the reflector emits it verbatim.
type PrimKind string

const (
	Bool PrimKind = "bool"
	Char PrimKind = "char"
	Str  PrimKind = "str"

	I8    PrimKind = "i8"
	I16   PrimKind = "i16"
	I32   PrimKind = "i32"
	I64   PrimKind = "i64"
	I128  PrimKind = "i128"
	ISize PrimKind = "isize"

	U8    PrimKind = "u8"
	U16   PrimKind = "u16"
	U32   PrimKind = "u32"
	U64   PrimKind = "u64"
	U128  PrimKind = "u128"
	USize PrimKind = "usize"

	F32 PrimKind = "f32"
	F64 PrimKind = "f64"
)

// Prim is a primitive type.
type Prim struct {
	Kind PrimKind
}

func (t Prim) String() string   { return string(t.Kind) }
func (t Prim) Apply(Subst) Type { return t }

// Adt is an aggregate (struct, enum or union) with its resolved generic
// arguments. Args covers the definition and all its generic-bearing
// ancestors, outermost-first.
type Adt struct {
	Def  model.DefID
	Args []Type
}

func (t Adt) String() string {
	if len(t.Args) == 0 {
		return fmt.Sprintf("adt(%s)", shortID(t.Def))
	}
	parts := make([]string, len(t.Args))
	for i, a := range t.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("adt(%s)<%s>", shortID(t.Def), strings.Join(parts, ", "))
}

func (t Adt) Apply(s Subst) Type {
	args := make([]Type, len(t.Args))
	for i, a := range t.Args {
		args[i] = a.Apply(s)
	}
	return Adt{Def: t.Def, Args: args}
}

// Foreign is a type declared in a foreign block. It never carries generic
// arguments.
type Foreign struct {
	Def model.DefID
}

func (t Foreign) String() string   { return fmt.Sprintf("foreign(%s)", shortID(t.Def)) }
func (t Foreign) Apply(Subst) Type { return t }

// Ref is a reference type.
type Ref struct {
	Mut  bool
	Elem Type
}

func (t Ref) String() string {
	if t.Mut {
		return "&mut " + t.Elem.String()
	}
	return "&" + t.Elem.String()
}

func (t Ref) Apply(s Subst) Type { return Ref{Mut: t.Mut, Elem: t.Elem.Apply(s)} }

// RawPtr is a raw pointer type.
type RawPtr struct {
	Mut  bool
	Elem Type
}

func (t RawPtr) String() string {
	if t.Mut {
		return "*mut " + t.Elem.String()
	}
	return "*const " + t.Elem.String()
}

func (t RawPtr) Apply(s Subst) Type { return RawPtr{Mut: t.Mut, Elem: t.Elem.Apply(s)} }

// Array is a fixed-length array type.
type Array struct {
	Elem Type
	Len  Const
}

func (t Array) String() string {
	return fmt.Sprintf("[%s; %s]", t.Elem.String(), t.Len.String())
}

func (t Array) Apply(s Subst) Type { return Array{Elem: t.Elem.Apply(s), Len: t.Len} }

// Slice is a dynamically sized slice type.
type Slice struct {
	Elem Type
}

func (t Slice) String() string     { return fmt.Sprintf("[%s]", t.Elem.String()) }
func (t Slice) Apply(s Subst) Type { return Slice{Elem: t.Elem.Apply(s)} }

// Tuple is a tuple type. An empty Tuple is the unit type.
type Tuple struct {
	Elems []Type
}

func (t Tuple) String() string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (t Tuple) Apply(s Subst) Type {
	elems := make([]Type, len(t.Elems))
	for i, e := range t.Elems {
		elems[i] = e.Apply(s)
	}
	return Tuple{Elems: elems}
}

// Never is the never type.
type Never struct{}

func (Never) String() string     { return "!" }
func (t Never) Apply(Subst) Type { return t }

// Param is a generic type parameter occurring positionally inside another
// type, e.g. the T in the self type of impl<T>.
type Param struct {
	Index int
	Name  string
}

func (t Param) String() string { return t.Name }

func (t Param) Apply(s Subst) Type {
	if t.Index >= 0 && t.Index < len(s) && s[t.Index] != nil {
		return s[t.Index]
	}
	return t
}

// Unsupported covers semantic kinds with no direct surface syntax. The
// reflector degrades them to an inference placeholder instead of failing.
type Unsupported struct {
	Kind UnsupportedKind
}

func (t Unsupported) String() string   { return string(t.Kind) }
func (t Unsupported) Apply(Subst) Type { return t }

// UnsupportedKind names the semantic kind that could not be spelled.
type UnsupportedKind string

const (
	UnsupFnDef            UnsupportedKind = "fn-def"
	UnsupFnPtr            UnsupportedKind = "fn-ptr"
	UnsupDynamic          UnsupportedKind = "dyn-trait"
	UnsupClosure          UnsupportedKind = "closure"
	UnsupGenerator        UnsupportedKind = "generator"
	UnsupGeneratorWitness UnsupportedKind = "generator-witness"
	UnsupProjection       UnsupportedKind = "projection"
	UnsupOpaque           UnsupportedKind = "opaque"
	UnsupBound            UnsupportedKind = "bound"
	UnsupPlaceholder      UnsupportedKind = "placeholder"
	UnsupInfer            UnsupportedKind = "infer"
	UnsupError            UnsupportedKind = "error"
)

// Subst is a positional substitution of type parameters. Entry i replaces
// Param{Index: i}; a nil entry leaves the parameter in place.
type Subst []Type

func shortID(id model.DefID) string {
	s := id.String()
	if len(s) > 8 {
		return s[:8]
	}
	return s
}
