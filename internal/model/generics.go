package model

// GenericParamKind classifies one declared generic parameter.
type GenericParamKind string

const (
	ParamLifetime GenericParamKind = "lifetime"
	ParamType     GenericParamKind = "type"
	ParamConst    GenericParamKind = "const"
)

// Generics is the ordered list of generic parameters a definition declares
// itself, outermost-first, excluding parameters of enclosing scopes.
type Generics []GenericParamKind

// TypeParamCount returns how many of the parameters are type parameters.
// Lifetime and const parameters never consume generic-argument entries.
func (g Generics) TypeParamCount() int {
	n := 0
	for _, k := range g {
		if k == ParamType {
			n++
		}
	}
	return n
}
