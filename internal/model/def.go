package model

import (
	"github.com/google/uuid"
)

// DefID is an opaque, globally unique reference to a named program entity.
// It stays valid across compilation-unit boundaries.
type DefID struct {
	id uuid.UUID
}

// NewDefID returns a fresh random definition identifier.
func NewDefID() DefID {
	return DefID{id: uuid.New()}
}

// DeriveDefID derives a stable definition identifier from a unit and a
// unit-local key. The same (unit, key) pair always yields the same DefID,
// which keeps serialized models and in-memory models in agreement.
func DeriveDefID(unit UnitID, key string) DefID {
	return DefID{id: uuid.NewSHA1(unit.id, []byte(key))}
}

func (d DefID) IsZero() bool { return d.id == uuid.Nil }

func (d DefID) String() string { return d.id.String() }

// UnitID identifies a compilation unit.
type UnitID struct {
	id uuid.UUID
}

// DeriveUnitID derives a stable unit identifier from the unit's declared name.
func DeriveUnitID(name string) UnitID {
	return UnitID{id: uuid.NewSHA1(unitNamespace, []byte(name))}
}

func (u UnitID) IsZero() bool { return u.id == uuid.Nil }

func (u UnitID) String() string { return u.id.String() }

var unitNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("refract/unit"))

// DefKind classifies a definition.
type DefKind string

const (
	KindMod        DefKind = "mod"
	KindStruct     DefKind = "struct"
	KindUnion      DefKind = "union"
	KindEnum       DefKind = "enum"
	KindVariant    DefKind = "variant"
	KindTrait      DefKind = "trait"
	KindTraitAlias DefKind = "trait-alias"
	KindTypeAlias  DefKind = "type-alias"
	KindForeignTy  DefKind = "foreign-type"
	KindOpaqueTy   DefKind = "opaque-type"
	KindAssocTy    DefKind = "assoc-type"
	KindTyParam    DefKind = "type-param"
	KindFn         DefKind = "fn"
	KindMethod     DefKind = "method"
	KindCtor       DefKind = "ctor"
	KindImpl       DefKind = "impl"
	KindConst      DefKind = "const"
	KindAnonConst  DefKind = "anon-const"
	KindStatic     DefKind = "static"
	KindField      DefKind = "field"
	KindMacro      DefKind = "macro"
	KindCrateRoot  DefKind = "crate-root"
)

// CanHaveTypeParams reports whether definitions of this kind declare their
// own generic parameters. Querying generics of any other kind is undefined
// for non-local definitions, so the path walk consults this set first.
func (k DefKind) CanHaveTypeParams() bool {
	switch k {
	case KindStruct, KindUnion, KindEnum, KindVariant, KindTrait,
		KindOpaqueTy, KindTypeAlias, KindForeignTy, KindTraitAlias,
		KindAssocTy, KindTyParam, KindFn, KindMethod, KindCtor:
		return true
	}
	return false
}
