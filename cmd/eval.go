package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/benz9527/xlinear/calc"
)

const (
	notationFlag = "notation"
	workersFlag  = "workers"
)

func NewEvalCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <expression>...",
		Short: "Evaluate one-digit arithmetic expressions",
		Long: `The eval command evaluates every expression concurrently and prints one line
per expression in the input order. It fails if any expression fails.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runEval,
		PreRun: func(cmd *cobra.Command, args []string) {
			flags := cmd.Flags()

			mustBindPFlag(notationFlag, flags.Lookup(notationFlag))
			mustBindPFlag(workersFlag, flags.Lookup(workersFlag))
		},
	}

	flags := cmd.Flags()

	flags.String(notationFlag, calc.Infix.String(), "the notation of the expressions (infix, postfix, prefix)")
	flags.Int(workersFlag, 0, "the size of the worker pool (if omitted the number of CPUs will be used)")

	// NOTE: if you add a new flag here, add the binding in PreRun

	return cmd
}

func runEval(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	notation, err := calc.ParseNotation(viper.GetString(notationFlag))
	if err != nil {
		return err
	}
	evaluator, err := calc.NewEvaluator(
		calc.WithNotation(notation),
		calc.WithWorkers(viper.GetInt(workersFlag)),
		calc.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	defer evaluator.Release()

	results, evalErr := evaluator.EvaluateAll(cmd.Context(), args)
	out := cmd.OutOrStdout()
	for _, r := range results {
		if r.Err != nil {
			_, err = fmt.Fprintf(out, "%s\terror: %v\n", r.Expression, r.Err)
		} else {
			_, err = fmt.Fprintf(out, "%s\t%s\n", r.Expression, strconv.FormatFloat(r.Value, 'g', -1, 64))
		}
		if err != nil {
			return err
		}
	}
	return evalErr
}
