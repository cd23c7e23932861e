package gomodel

import (
	"fmt"
	"go/constant"
	"go/types"
	"strings"

	"golang.org/x/tools/go/packages"
)

// Load type-checks the package matched by pattern (in dir, "" for the
// current directory) and builds a model with it as the local unit.
func Load(dir, pattern string) (*Model, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName |
			packages.NeedTypes |
			packages.NeedTypesInfo |
			packages.NeedImports |
			packages.NeedDeps,
		Dir: dir,
	}

	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("loading packages: %w", err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages matched %q", pattern)
	}

	var errs []string
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, fmt.Sprintf("%s: %s", pkg.PkgPath, e.Msg))
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors:\n  %s", strings.Join(errs, "\n  "))
	}

	return FromPackage(pkgs[0].Types), nil
}

func constUint64(c *types.Const) (uint64, bool) {
	if c.Val().Kind() != constant.Int {
		return 0, false
	}
	v, exact := constant.Uint64Val(c.Val())
	if !exact {
		return 0, false
	}
	return v, true
}
