package snapshot

import (
	"strings"
	"testing"

	"github.com/semweave/refract/internal/model"
	"github.com/semweave/refract/internal/semtype"
	"github.com/semweave/refract/internal/syntax"
)

func mustLoad(t *testing.T, src string) *Model {
	t.Helper()
	m, err := Load([]byte(src))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return m
}

func mustDef(t *testing.T, m *Model, key string) model.DefID {
	t.Helper()
	id, ok := m.DefID(key)
	if !ok {
		t.Fatalf("no def %q", key)
	}
	return id
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{
			"missing local unit",
			`defs: [{id: a, unit: app, kind: mod, name: a}]`,
			"missing local unit",
		},
		{
			"missing def id",
			"local: app\ndefs:\n  - {unit: app, kind: mod, name: a}",
			"missing id",
		},
		{
			"missing def unit",
			"local: app\ndefs:\n  - {id: a, kind: mod, name: a}",
			"missing unit",
		},
		{
			"duplicate def id",
			"local: app\ndefs:\n  - {id: a, unit: app, kind: mod, name: a}\n  - {id: a, unit: app, kind: mod, name: b}",
			"duplicate def id",
		},
		{
			"unknown parent",
			"local: app\ndefs:\n  - {id: a, unit: app, kind: mod, name: a, parent: missing}",
			`unknown parent "missing"`,
		},
		{
			"unknown visible parent",
			"local: app\ndefs:\n  - {id: a, unit: app, kind: mod, name: a, visible-parent: missing}",
			`unknown visible-parent "missing"`,
		},
		{
			"unknown generic kind",
			"local: app\ndefs:\n  - {id: a, unit: app, kind: struct, name: A, generics: [shape]}",
			"unknown generic parameter kind",
		},
		{
			"kind without a path form",
			"local: app\ndefs:\n  - {id: a, unit: app, kind: gizmo, name: a}",
			"unknown path kind",
		},
		{
			"adt referencing unknown def",
			"local: app\ndefs:\n  - id: a\n    unit: app\n    kind: static\n    name: a\n    type: {adt: {def: missing}}",
			"unknown def",
		},
		{
			"array without a length",
			"local: app\ndefs:\n  - id: a\n    unit: app\n    kind: static\n    name: a\n    type: {array: {elem: {prim: u8}}}",
			"needs len or len-def",
		},
		{
			"empty type spec",
			"local: app\ndefs:\n  - id: a\n    unit: app\n    kind: static\n    name: a\n    type: {}",
			"empty type spec",
		},
		{
			"empty const body",
			"local: app\ndefs:\n  - id: a\n    unit: app\n    kind: anon-const\n    const-body: {}",
			"empty const body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.src))
			if err == nil {
				t.Fatalf("Load succeeded, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultPathKinds(t *testing.T) {
	m := mustLoad(t, `
local: app
defs:
  - {id: root, unit: app, kind: crate-root}
  - {id: m, unit: app, kind: mod, name: m}
  - {id: s, unit: app, kind: struct, name: S}
  - {id: f, unit: app, kind: fn, name: f}
  - {id: i, unit: app, kind: impl}
  - {id: c, unit: app, kind: ctor, sub: ctor}
  - {id: ac, unit: app, kind: anon-const}
`)

	tests := []struct {
		key  string
		want model.PathData
	}{
		{"root", model.CrateRoot{}},
		{"m", model.TypeNS{Name: "m"}},
		{"s", model.TypeNS{Name: "S"}},
		{"f", model.ValueNS{Name: "f"}},
		{"i", model.Impl{}},
		{"c", model.NonPrintable{Sub: model.SubCtor}},
		{"ac", model.NonPrintable{Sub: model.SubAnonConst}},
	}
	for _, tt := range tests {
		if got := m.PathDataOf(mustDef(t, m, tt.key)); got != tt.want {
			t.Errorf("PathDataOf(%s) = %#v, want %#v", tt.key, got, tt.want)
		}
	}
}

func TestExplicitPathOverridesKindDefault(t *testing.T) {
	m := mustLoad(t, `
local: app
defs:
  - {id: s, unit: app, kind: struct, name: S, path: value-ns}
`)
	want := model.ValueNS{Name: "S"}
	if got := m.PathDataOf(mustDef(t, m, "s")); got != want {
		t.Errorf("PathDataOf = %#v, want %#v", got, want)
	}
}

func TestEvalConst(t *testing.T) {
	m := mustLoad(t, `
local: app
defs:
  - {id: pre, unit: app, kind: anon-const, const-value: 7}
  - id: lit
    unit: app
    kind: anon-const
    const-body: {lit: {value: 3}}
  - id: both
    unit: app
    kind: anon-const
    const-value: 9
    const-body: {lit: {value: 3}}
  - {id: none, unit: app, kind: anon-const}
`)

	tests := []struct {
		key  string
		want uint64
	}{
		{"pre", 7},  // precomputed value
		{"lit", 3},  // falls back to the literal body
		{"both", 9}, // precomputed value wins
		{"none", 0},
	}
	for _, tt := range tests {
		if got := m.EvalConst(mustDef(t, m, tt.key)); got != tt.want {
			t.Errorf("EvalConst(%s) = %d, want %d", tt.key, got, tt.want)
		}
	}

	if got := m.EvalConst(model.NewDefID()); got != 0 {
		t.Errorf("EvalConst on unknown def = %d, want 0", got)
	}
}

func TestTypeOfDefaultsToErrorType(t *testing.T) {
	m := mustLoad(t, `
local: app
defs:
  - {id: s, unit: app, kind: struct, name: S}
`)
	got := m.TypeOf(mustDef(t, m, "s"))
	if got != (semtype.Unsupported{Kind: semtype.UnsupError}) {
		t.Errorf("TypeOf without a declared type = %#v", got)
	}
}

func pathOf(names ...string) *syntax.Path {
	segs := make([]*syntax.PathSegment, len(names))
	for i, n := range names {
		segs[i] = syntax.Segment(n)
	}
	return syntax.PathOf(segs...)
}

func TestResolve(t *testing.T) {
	m := mustLoad(t, `
local: app
defs:
  - {id: app, unit: app, kind: crate-root}
  - {id: dep, unit: dep, kind: crate-root}
  - {id: geo, unit: app, kind: mod, name: geometry, parent: app}
  - {id: pt, unit: app, kind: struct, name: Point, parent: geo}
  - {id: shape, unit: dep, kind: enum, name: Shape, parent: dep}
  - {id: w, unit: app, kind: struct, name: Widget, parent: geo, visible-parent: app}
`)

	tests := []struct {
		name string
		path *syntax.Path
		want string
		ok   bool
	}{
		{"local nested", pathOf("self", "geometry", "Point"), "pt", true},
		{"local root only", pathOf("self"), "app", true},
		{"external", pathOf("{{root}}", "dep", "Shape"), "shape", true},
		{"through structural parent", pathOf("self", "geometry", "Widget"), "w", true},
		{"through visible parent", pathOf("self", "Widget"), "w", true},
		{"unknown name", pathOf("self", "geometry", "Missing"), "", false},
		{"relative tail", pathOf("Point"), "", false},
		{"unknown unit", pathOf("{{root}}", "ghost", "X"), "", false},
		{"empty", &syntax.Path{}, "", false},
		{"nil", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := m.Resolve(tt.path)
			if ok != tt.ok {
				t.Fatalf("Resolve ok = %v, want %v", ok, tt.ok)
			}
			if tt.ok && got != mustDef(t, m, tt.want) {
				t.Errorf("Resolve = %s, want def %q", got, tt.want)
			}
		})
	}

	qualified := &syntax.Path{
		QSelf:    syntax.SliceTy(syntax.IdentTy("u8")),
		Segments: []*syntax.PathSegment{syntax.Segment("len")},
	}
	if _, ok := m.Resolve(qualified); ok {
		t.Errorf("qualified paths should not resolve")
	}
}

func TestNodeKinds(t *testing.T) {
	m := mustLoad(t, `
local: app
nodes:
  - {id: 1, kind: expr}
  - {id: 2, kind: item}
`)

	if kind, ok := m.NodeKindOf(1); !ok || kind != model.NodeExpr {
		t.Errorf("NodeKindOf(1) = %q, %v", kind, ok)
	}
	if _, ok := m.NodeKindOf(9); ok {
		t.Errorf("NodeKindOf(9) should report false")
	}
}

func TestLoadFileWrapsPath(t *testing.T) {
	if _, err := LoadFile("testdata/does-not-exist.yaml"); err == nil {
		t.Errorf("LoadFile on a missing file should fail")
	}
}
