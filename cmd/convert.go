package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/benz9527/xlinear/lib/expr"
)

func NewPostfixCommand() *cobra.Command {
	return newConvertCommand("postfix", expr.ToPostfix)
}

func NewPrefixCommand() *cobra.Command {
	return newConvertCommand("prefix", expr.ToPrefix)
}

func newConvertCommand(notation string, convert func(string, ...expr.Precedence) (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   notation + " <infix>",
		Short: "Convert an infix expression into a " + notation + " expression",
		Long: `The ` + notation + ` command converts an infix expression with the operators + - * /
and parentheses. Every operand is a single symbol.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			defer func() { _ = logger.Sync() }()

			converted, err := convert(args[0])
			if err != nil {
				logger.ErrorStack(err, "convert failed", zap.String("infix", args[0]))
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), converted)
			return err
		},
	}
}
