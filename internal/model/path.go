package model

// PathData describes how a definition contributes to a source-level path.
// Exactly one variant applies to each definition.
type PathData interface {
	pathData()
}

// CrateRoot marks the root of a compilation unit.
type CrateRoot struct{}

// Impl marks an impl block. Impl blocks have no name of their own; a path
// through one is spelled via the implementing self type.
type Impl struct{}

// ValueNS is a named entry in the value namespace (functions, constants,
// statics).
type ValueNS struct {
	Name string
}

// TypeNS is a named entry in the type namespace (modules, structs, enums,
// traits, type aliases).
type TypeNS struct {
	Name string
}

// NonPrintable covers definitions that never contribute a path segment.
type NonPrintable struct {
	Sub NonPrintableSub
}

func (CrateRoot) pathData()    {}
func (Impl) pathData()         {}
func (ValueNS) pathData()      {}
func (TypeNS) pathData()       {}
func (NonPrintable) pathData() {}

// NonPrintableSub distinguishes the unnamed definition kinds.
type NonPrintableSub string

const (
	SubMisc      NonPrintableSub = "misc"
	SubLifetime  NonPrintableSub = "lifetime"
	SubMacro     NonPrintableSub = "macro"
	SubClosure   NonPrintableSub = "closure"
	SubCtor      NonPrintableSub = "ctor"
	SubAnonConst NonPrintableSub = "anon-const"
	SubImplTrait NonPrintableSub = "impl-trait"
)
