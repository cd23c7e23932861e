package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/semweave/refract/internal/gomodel"
	"github.com/semweave/refract/internal/prettyprinter"
	"github.com/semweave/refract/internal/reflect"
)

// NewGoCmd creates "refract go": reflect a symbol out of a type-checked Go
// package instead of a snapshot file.
func NewGoCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "go <package-pattern> <qualified-name>",
		Short: "Reflect a symbol from a Go package",
		Long: "Loads the Go package matched by the pattern and reflects the named\n" +
			"symbol (\"pkg.Ident\" or \"pkg.Type.method\") into a path and a type\n" +
			"expression.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			m, err := gomodel.Load(dir, args[0])
			if err != nil {
				return err
			}
			def, ok := m.DefID(args[1])
			if !ok {
				return fmt.Errorf("no symbol %q in %s", args[1], args[0])
			}

			defer recoverReflect(&err)
			printer := prettyprinter.New()
			printResult(cmd.OutOrStdout(), "path: "+printer.Path(reflect.PathFor(m, def)))
			printResult(cmd.OutOrStdout(), "type: "+printer.Type(reflect.TypeFor(m, m.TypeOf(def))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "C", "", "directory to resolve the package pattern in")
	return cmd
}
