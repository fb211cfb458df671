package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/benz9527/xlinear/lib/expr"
)

const (
	pairsFlag = "pairs"
)

func NewBalanceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance <expression>",
		Short: "Check that every bracket of the expression is matched",
		Long: `The balance command prints -1 if every bracket is matched. Otherwise it prints
the index of the first unmatched closing bracket, or the index of the last symbol
if some opening brackets are left unclosed.`,
		Args: cobra.ExactArgs(1),
		RunE: runBalance,
		PreRun: func(cmd *cobra.Command, args []string) {
			mustBindPFlag(pairsFlag, cmd.Flags().Lookup(pairsFlag))
		},
	}

	cmd.Flags().String(pairsFlag, expr.DefaultBracketPairs, "the opening and closing bracket pairs")

	return cmd
}

func runBalance(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	pairs := viper.GetString(pairsFlag)
	index, err := expr.CheckBalance(args[0], pairs)
	if err != nil {
		logger.ErrorStack(err, "check balance failed", zap.String(pairsFlag, pairs))
		return err
	}
	logger.Debug("balance checked", zap.String("expression", args[0]), zap.Int("index", index))
	_, err = fmt.Fprintln(cmd.OutOrStdout(), index)
	return err
}
