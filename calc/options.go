package calc

import (
	"runtime"

	"github.com/benz9527/xlinear/lib/expr"
	"github.com/benz9527/xlinear/lib/infra"
	"github.com/benz9527/xlinear/xlog"
)

const (
	defaultMinWorkerPoolSize = 1
)

type evaluatorOption struct {
	logger     xlog.XLogger
	precedence expr.Precedence
	operators  expr.Operators
	workers    int
	notation   Notation
}

func (opt *evaluatorOption) getWorkerPoolSize() int {
	if opt.workers < defaultMinWorkerPoolSize {
		return runtime.NumCPU()
	}
	return opt.workers
}

func (opt *evaluatorOption) getLogger() xlog.XLogger {
	if opt.logger == nil {
		return xlog.NewXLogger(
			xlog.WithXLoggerWriter(xlog.StdErr),
			xlog.WithXLoggerLevel(xlog.LogLevelWarn),
		)
	}
	return opt.logger
}

func (opt *evaluatorOption) getPrecedence() expr.Precedence {
	if opt.precedence == nil {
		return expr.DefaultPrecedence()
	}
	return opt.precedence
}

// getOperators returns the operators for the configured notation.
func (opt *evaluatorOption) getOperators() expr.Operators {
	ops := opt.operators
	if ops == nil {
		ops = expr.DefaultOperators()
	}
	if opt.notation == Prefix {
		return expr.SwapOperands(ops)
	}
	return ops
}

type EvaluatorOption func(opt *evaluatorOption) error

func WithNotation(notation Notation) EvaluatorOption {
	return func(opt *evaluatorOption) error {
		if notation >= _notationMax {
			return infra.WrapErrorStackWithMessage(expr.ErrInvalidArgument, "unknown notation")
		}
		opt.notation = notation
		return nil
	}
}

// WithWorkers sets the pool size, a non-positive size means runtime.NumCPU().
func WithWorkers(workers int) EvaluatorOption {
	return func(opt *evaluatorOption) error {
		opt.workers = workers
		return nil
	}
}

func WithLogger(logger xlog.XLogger) EvaluatorOption {
	return func(opt *evaluatorOption) error {
		opt.logger = logger
		return nil
	}
}

func WithPrecedence(precedence expr.Precedence) EvaluatorOption {
	return func(opt *evaluatorOption) error {
		if precedence == nil {
			return infra.WrapErrorStackWithMessage(expr.ErrInvalidArgument, "precedence must be a non-nil map")
		}
		opt.precedence = precedence
		return nil
	}
}

// WithOperators sets the operators in the left to right orientation,
// f(a, b) = a OP b. The prefix notation swaps them internally.
func WithOperators(operators expr.Operators) EvaluatorOption {
	return func(opt *evaluatorOption) error {
		if operators == nil {
			return infra.WrapErrorStackWithMessage(expr.ErrInvalidArgument, "operators must be a non-nil map")
		}
		opt.operators = operators
		return nil
	}
}
