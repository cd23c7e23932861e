package gomodel

import (
	"go/constant"
	"go/token"
	"go/types"
	"testing"

	"github.com/semweave/refract/internal/model"
	"github.com/semweave/refract/internal/prettyprinter"
	"github.com/semweave/refract/internal/reflect"
	"github.com/semweave/refract/internal/semtype"
)

// testPackage assembles a small synthetic package:
//
//	package geo // example.com/geo
//
//	type Point struct{}
//	func (Point) Norm() {}
//	type Wrapper[T any] struct{}
//	const Max = 7
//	var Buf []byte
//	func Dist() {}
func testPackage() *types.Package {
	pkg := types.NewPackage("example.com/geo", "geo")
	scope := pkg.Scope()

	pointObj := types.NewTypeName(token.NoPos, pkg, "Point", nil)
	point := types.NewNamed(pointObj, types.NewStruct(nil, nil), nil)
	recv := types.NewVar(token.NoPos, pkg, "", point)
	norm := types.NewFunc(token.NoPos, pkg, "Norm",
		types.NewSignatureType(recv, nil, nil, nil, nil, false))
	point.AddMethod(norm)
	scope.Insert(pointObj)

	wrapperObj := types.NewTypeName(token.NoPos, pkg, "Wrapper", nil)
	wrapper := types.NewNamed(wrapperObj, types.NewStruct(nil, nil), nil)
	tp := types.NewTypeParam(types.NewTypeName(token.NoPos, pkg, "T", nil),
		types.NewInterfaceType(nil, nil))
	wrapper.SetTypeParams([]*types.TypeParam{tp})
	scope.Insert(wrapperObj)

	scope.Insert(types.NewConst(token.NoPos, pkg, "Max",
		types.Typ[types.Int], constant.MakeUint64(7)))
	scope.Insert(types.NewVar(token.NoPos, pkg, "Buf",
		types.NewSlice(types.Typ[types.Uint8])))
	scope.Insert(types.NewFunc(token.NoPos, pkg, "Dist",
		types.NewSignatureType(nil, nil, nil, nil, nil, false)))

	return pkg
}

func lookup(t *testing.T, m *Model, qualified string) model.DefID {
	t.Helper()
	id, ok := m.DefID(qualified)
	if !ok {
		t.Fatalf("no definition for %q", qualified)
	}
	return id
}

func TestFromPackagePaths(t *testing.T) {
	m := FromPackage(testPackage())

	tests := []struct {
		qualified string
		want      string
	}{
		{"geo.Point", "self::Point"},
		{"geo.Point.Norm", "self::Point::Norm"},
		{"geo.Wrapper", "self::Wrapper"},
		{"geo.Max", "self::Max"},
		{"geo.Buf", "self::Buf"},
		{"geo.Dist", "self::Dist"},
	}
	for _, tt := range tests {
		t.Run(tt.qualified, func(t *testing.T) {
			path := reflect.PathFor(m, lookup(t, m, tt.qualified))
			if got := prettyprinter.New().Path(path); got != tt.want {
				t.Errorf("PathFor(%s) = %q, want %q", tt.qualified, got, tt.want)
			}
		})
	}
}

func TestFromPackageKinds(t *testing.T) {
	m := FromPackage(testPackage())

	tests := []struct {
		qualified string
		want      model.DefKind
	}{
		{"geo.Point", model.KindStruct},
		{"geo.Point.Norm", model.KindMethod},
		{"geo.Max", model.KindConst},
		{"geo.Buf", model.KindStatic},
		{"geo.Dist", model.KindFn},
	}
	for _, tt := range tests {
		if got := m.DefKindOf(lookup(t, m, tt.qualified)); got != tt.want {
			t.Errorf("DefKindOf(%s) = %q, want %q", tt.qualified, got, tt.want)
		}
	}
}

func TestGenericTypeCarriesItsParameters(t *testing.T) {
	m := FromPackage(testPackage())
	wrapper := lookup(t, m, "geo.Wrapper")

	if got := m.GenericsOf(wrapper).TypeParamCount(); got != 1 {
		t.Fatalf("Wrapper has %d type params, want 1", got)
	}

	// The type of the definition is the aggregate applied to its own
	// parameters, so reflecting it spells them out.
	printed := prettyprinter.New().Type(reflect.TypeFor(m, m.TypeOf(wrapper)))
	if printed != "self::Wrapper<T>" {
		t.Errorf("TypeOf(Wrapper) reflected to %q, want self::Wrapper<T>", printed)
	}
}

func TestConstProjection(t *testing.T) {
	m := FromPackage(testPackage())
	max := lookup(t, m, "geo.Max")

	if got := m.EvalConst(max); got != 7 {
		t.Errorf("EvalConst(Max) = %d, want 7", got)
	}
	expr, err := reflect.ConstExprFor(m, max)
	if err != nil {
		t.Fatalf("ConstExprFor(Max): %v", err)
	}
	if got := prettyprinter.New().Expr(expr); got != "7" {
		t.Errorf("ConstExprFor(Max) = %q, want 7", got)
	}
}

func TestConvertType(t *testing.T) {
	pkg := testPackage()
	m := FromPackage(pkg)

	dep := types.NewPackage("example.com/dep", "dep")
	shapeObj := types.NewTypeName(token.NoPos, dep, "Shape", nil)
	shape := types.NewNamed(shapeObj, types.NewStruct(nil, nil), nil)
	dep.Scope().Insert(shapeObj)

	tests := []struct {
		name string
		typ  types.Type
		want string
	}{
		{"bool", types.Typ[types.Bool], "bool"},
		{"string", types.Typ[types.String], "str"},
		{"int", types.Typ[types.Int], "isize"},
		{"int32", types.Typ[types.Int32], "i32"},
		{"uint8", types.Typ[types.Uint8], "u8"},
		{"uintptr", types.Typ[types.Uintptr], "usize"},
		{"float64", types.Typ[types.Float64], "f64"},
		{"pointer", types.NewPointer(types.Typ[types.Int]), "*mut isize"},
		{"slice", types.NewSlice(types.Typ[types.Uint8]), "[u8]"},
		{"array", types.NewArray(types.Typ[types.Uint8], 4), "[u8; 4usize]"},
		{
			"signature",
			types.NewSignatureType(nil, nil, nil, nil, nil, false),
			"_",
		},
		{"interface", types.NewInterfaceType(nil, nil), "_"},
		{"anonymous struct", types.NewStruct(nil, nil), "_"},
		{"universe error", types.Universe.Lookup("error").Type(), "_"},
		{"complex number", types.Typ[types.Complex128], "_"},
		{"imported named type", shape, "::dep::Shape"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := prettyprinter.New().Type(reflect.TypeFor(m, m.convertType(tt.typ)))
			if got != tt.want {
				t.Errorf("convertType(%s) reflected to %q, want %q", tt.typ, got, tt.want)
			}
		})
	}
}

func TestImplProjection(t *testing.T) {
	m := FromPackage(testPackage())
	norm := lookup(t, m, "geo.Point.Norm")

	impl, ok := m.Parent(norm)
	if !ok {
		t.Fatalf("method has no parent")
	}
	if got := m.DefKindOf(impl); got != model.KindImpl {
		t.Fatalf("method parent kind = %q, want impl", got)
	}
	self, ok := m.TypeOf(impl).(semtype.Adt)
	if !ok {
		t.Fatalf("impl self type = %#v, want an aggregate", m.TypeOf(impl))
	}
	point := lookup(t, m, "geo.Point")
	if self.Def != point {
		t.Errorf("impl self type names %s, want Point", self.Def)
	}
}

func TestVisibleParentNeverReported(t *testing.T) {
	m := FromPackage(testPackage())
	if _, ok := m.VisibleParent(lookup(t, m, "geo.Point")); ok {
		t.Errorf("Go model should never report a visible parent")
	}
}
