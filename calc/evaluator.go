package calc

import (
	"context"
	"strconv"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/samber/lo"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/benz9527/xlinear/lib/expr"
	"github.com/benz9527/xlinear/lib/infra"
	"github.com/benz9527/xlinear/xlog"
)

// Result is the outcome of one expression in a batch.
type Result struct {
	Err        error
	Expression string
	Index      int
	Value      float64
}

// Evaluator evaluates expressions of one notation. The tables are only
// read after construction, so a single Evaluator serves concurrent calls.
type Evaluator struct {
	logger     xlog.XLogger
	pool       *ants.Pool
	precedence expr.Precedence
	operators  expr.Operators
	notation   Notation
}

func NewEvaluator(opts ...EvaluatorOption) (*Evaluator, error) {
	opt := &evaluatorOption{}
	for _, o := range opts {
		if err := o(opt); err != nil {
			return nil, err
		}
	}
	logger := opt.getLogger().Named("calc")
	pool, err := ants.NewPool(
		opt.getWorkerPoolSize(),
		ants.WithPreAlloc(true),
		ants.WithLogger(xlog.NewAntsXLogger(logger)),
	)
	if err != nil {
		return nil, infra.WrapErrorStackWithMessage(err, "[calc] unable to create the worker pool")
	}
	return &Evaluator{
		logger:     logger,
		pool:       pool,
		precedence: opt.getPrecedence(),
		operators:  opt.getOperators(),
		notation:   opt.notation,
	}, nil
}

func (e *Evaluator) Notation() Notation {
	return e.notation
}

// Evaluate evaluates a single expression synchronously.
func (e *Evaluator) Evaluate(expression string) (float64, error) {
	switch e.notation {
	case Postfix:
		return expr.EvalPostfix(expression, e.operators)
	case Prefix:
		return expr.EvalPrefix(expression, e.operators)
	case Infix:
		fallthrough
	default:
	}
	if index, err := expr.CheckBalance(expression, "()"); err != nil {
		return 0, err
	} else if index >= 0 {
		return 0, infra.WrapErrorStackWithMessage(expr.ErrInvalidExpression,
			"unbalanced parentheses at "+strconv.Itoa(index))
	}
	postfix, err := expr.ToPostfix(expression, e.precedence)
	if err != nil {
		return 0, err
	}
	return expr.EvalPostfix(postfix, e.operators)
}

// EvaluateAll evaluates the expressions on the worker pool. The results keep
// the input order. The returned error combines every failed result, use
// multierr.Errors to inspect them one by one.
// Once ctx is done, the remaining expressions are not submitted and fail
// with the context error.
func (e *Evaluator) EvaluateAll(ctx context.Context, expressions []string) ([]Result, error) {
	results := make([]Result, len(expressions))
	wg := sync.WaitGroup{}
	for i, expression := range expressions {
		results[i] = Result{Index: i, Expression: expression}
		if err := ctx.Err(); err != nil {
			results[i].Err = err
			continue
		}
		wg.Add(1)
		err := e.pool.Submit(func() {
			defer wg.Done()
			value, err := e.Evaluate(expression)
			results[i].Value, results[i].Err = value, err
		})
		if err != nil {
			wg.Done()
			e.logger.ErrorStack(infra.WrapErrorStack(err), "submit expression failed", zap.Int("index", i))
			results[i].Err = err
		}
	}
	wg.Wait()

	var merr error
	failed := lo.Filter(results, func(r Result, _ int) bool { return r.Err != nil })
	for _, r := range failed {
		e.logger.Error(r.Err, "evaluate expression failed",
			zap.Int("index", r.Index),
			zap.String("expression", r.Expression),
		)
		merr = multierr.Append(merr, infra.WrapErrorStackWithMessage(r.Err,
			"expression #"+strconv.Itoa(r.Index)+" "+strconv.Quote(r.Expression)))
	}
	e.logger.Debug("batch evaluated",
		zap.String("notation", e.notation.String()),
		zap.Int("total", len(results)),
		zap.Int("failed", len(failed)),
	)
	return results, merr
}

func (e *Evaluator) Release() {
	if e == nil || e.pool == nil {
		return
	}
	e.pool.Release()
}
