package semtype

import (
	"strconv"

	"github.com/semweave/refract/internal/model"
)

// Const is a constant occurring inside a type, e.g. an array length. It is
// either already evaluated or refers to an anonymous-constant definition
// that the model can evaluate on demand.
type Const struct {
	Known bool
	Value uint64
	Def   model.DefID
}

// KnownConst returns an already evaluated constant.
func KnownConst(v uint64) Const {
	return Const{Known: true, Value: v}
}

// DeferredConst returns a constant that must be evaluated through the model.
func DeferredConst(def model.DefID) Const {
	return Const{Def: def}
}

func (c Const) String() string {
	if c.Known {
		return strconv.FormatUint(c.Value, 10)
	}
	return "const(" + shortID(c.Def) + ")"
}
