package semtype

import (
	"testing"

	"github.com/semweave/refract/internal/model"
)

func TestApplySubstitution(t *testing.T) {
	unit := model.DeriveUnitID("app")
	pointDef := model.DeriveDefID(unit, "Point")

	i32 := Prim{Kind: I32}
	f64 := Prim{Kind: F64}

	tests := []struct {
		name  string
		typ   Type
		subst Subst
		want  string
	}{
		{
			name:  "param replaced by index",
			typ:   Param{Index: 0, Name: "T"},
			subst: Subst{i32},
			want:  "i32",
		},
		{
			name:  "param out of range stays",
			typ:   Param{Index: 2, Name: "U"},
			subst: Subst{i32},
			want:  "U",
		},
		{
			name:  "nil entry stays",
			typ:   Param{Index: 0, Name: "T"},
			subst: Subst{nil},
			want:  "T",
		},
		{
			name:  "substitution recurses through references",
			typ:   Ref{Mut: true, Elem: Param{Index: 0, Name: "T"}},
			subst: Subst{i32},
			want:  "&mut i32",
		},
		{
			name:  "substitution recurses through tuples",
			typ:   Tuple{Elems: []Type{Param{Index: 0, Name: "T"}, Param{Index: 1, Name: "U"}}},
			subst: Subst{i32, f64},
			want:  "(i32, f64)",
		},
		{
			name: "substitution recurses through aggregate args",
			typ: Adt{Def: pointDef, Args: []Type{
				Slice{Elem: Param{Index: 0, Name: "T"}},
			}},
			subst: Subst{f64},
			want:  "adt(" + shortID(pointDef) + ")<[f64]>",
		},
		{
			name:  "primitives are fixed points",
			typ:   i32,
			subst: Subst{f64},
			want:  "i32",
		},
		{
			name:  "never is a fixed point",
			typ:   Never{},
			subst: Subst{i32},
			want:  "!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.typ.Apply(tt.subst).String()
			if got != tt.want {
				t.Errorf("Apply() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestConstString(t *testing.T) {
	if got := KnownConst(4).String(); got != "4" {
		t.Errorf("KnownConst(4).String() = %s, want 4", got)
	}
	def := model.DeriveDefID(model.DeriveUnitID("app"), "len")
	c := DeferredConst(def)
	if c.Known {
		t.Errorf("DeferredConst should not be known")
	}
	if c.Def != def {
		t.Errorf("DeferredConst should keep the definition")
	}
}

func TestPointerSpellings(t *testing.T) {
	u8 := Prim{Kind: U8}

	tests := []struct {
		typ  Type
		want string
	}{
		{Ref{Elem: u8}, "&u8"},
		{Ref{Mut: true, Elem: u8}, "&mut u8"},
		{RawPtr{Elem: u8}, "*const u8"},
		{RawPtr{Mut: true, Elem: u8}, "*mut u8"},
		{Array{Elem: u8, Len: KnownConst(16)}, "[u8; 16]"},
		{Slice{Elem: u8}, "[u8]"},
	}

	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("String() = %s, want %s", got, tt.want)
		}
	}
}
