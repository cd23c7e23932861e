package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/semweave/refract/internal/model"
	"github.com/semweave/refract/internal/prettyprinter"
	"github.com/semweave/refract/internal/reflect"
	"github.com/semweave/refract/internal/snapshot"
)

// NewPathCmd creates "refract path": reflect a definition into a path.
func NewPathCmd() *cobra.Command {
	var modelPath string

	cmd := &cobra.Command{
		Use:   "path <def-id>",
		Short: "Reflect a definition into a source-level path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			m, def, err := lookupDef(modelPath, args[0])
			if err != nil {
				return err
			}
			defer recoverReflect(&err)
			path := reflect.PathFor(m, def)
			printResult(cmd.OutOrStdout(), prettyprinter.New().Path(path))
			return nil
		},
	}

	cmd.Flags().StringVarP(&modelPath, "model", "m", "", "snapshot model file (required)")
	_ = cmd.MarkFlagRequired("model")
	return cmd
}

// NewTypeCmd creates "refract type": reflect a definition's type.
func NewTypeCmd() *cobra.Command {
	var modelPath string

	cmd := &cobra.Command{
		Use:   "type <def-id>",
		Short: "Reflect a definition's resolved type into a type expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			m, def, err := lookupDef(modelPath, args[0])
			if err != nil {
				return err
			}
			defer recoverReflect(&err)
			ty := reflect.TypeFor(m, m.TypeOf(def))
			printResult(cmd.OutOrStdout(), prettyprinter.New().Type(ty))
			return nil
		},
	}

	cmd.Flags().StringVarP(&modelPath, "model", "m", "", "snapshot model file (required)")
	_ = cmd.MarkFlagRequired("model")
	return cmd
}

// NewConstCmd creates "refract const": reflect an anonymous constant body.
func NewConstCmd() *cobra.Command {
	var modelPath string

	cmd := &cobra.Command{
		Use:   "const <def-id>",
		Short: "Reflect an anonymous constant's body into an expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, def, err := lookupDef(modelPath, args[0])
			if err != nil {
				return err
			}
			expr, err := reflect.ConstExprFor(m, def)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), prettyprinter.New().Expr(expr))
			return nil
		},
	}

	cmd.Flags().StringVarP(&modelPath, "model", "m", "", "snapshot model file (required)")
	_ = cmd.MarkFlagRequired("model")
	return cmd
}

// NewCheckCmd creates "refract check": run the reflectability check on a
// syntax node.
func NewCheckCmd() *cobra.Command {
	var modelPath string

	cmd := &cobra.Command{
		Use:   "check <node-id>",
		Short: "Check whether a syntax node denotes a path-bearing entity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := snapshot.LoadFile(modelPath)
			if err != nil {
				return err
			}
			n, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid node id %q", args[0])
			}
			if reflect.CanReflectPath(m, model.NodeID(n)) {
				printResult(cmd.OutOrStdout(), "reflectable")
			} else {
				printNote(cmd.OutOrStdout(), "not reflectable")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&modelPath, "model", "m", "", "snapshot model file (required)")
	_ = cmd.MarkFlagRequired("model")
	return cmd
}

func lookupDef(modelPath, key string) (*snapshot.Model, model.DefID, error) {
	m, err := snapshot.LoadFile(modelPath)
	if err != nil {
		return nil, model.DefID{}, err
	}
	def, ok := m.DefID(key)
	if !ok {
		return nil, model.DefID{}, fmt.Errorf("no definition %q in model", key)
	}
	return m, def, nil
}

// recoverReflect converts a reflection contract violation into a command
// error instead of crashing the CLI.
func recoverReflect(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%v", r)
	}
}
