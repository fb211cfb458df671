package expr

import (
	"github.com/samber/lo"

	"github.com/benz9527/xlinear/lib/infra"
)

// Operator is a pure binary numeric function.
type Operator interface {
	Apply(a, b float64) float64
}

// OperatorFunc adapts an ordinary function to an Operator.
type OperatorFunc func(a, b float64) float64

func (fn OperatorFunc) Apply(a, b float64) float64 {
	return fn(a, b)
}

type BinaryOp uint8

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	// OpDiv does not truncate, dividing by zero yields ±Inf or NaN.
	OpDiv
	_opMax
)

func (op BinaryOp) Apply(a, b float64) float64 {
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		return a / b
	default:
	}
	panic("[expr] unknown binary operator")
}

func (op BinaryOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
	}
	return "unknown"
}

type swappedOp struct {
	op Operator
}

func (s swappedOp) Apply(a, b float64) float64 {
	return s.op.Apply(b, a)
}

// Swap returns an operator computing op(b, a).
func Swap(op Operator) Operator {
	if s, ok := op.(swappedOp); ok {
		return s.op
	}
	return swappedOp{op: op}
}

// Operators maps an operator symbol to its function.
type Operators map[rune]Operator

// DefaultOperators returns {+, -, *, /} computing f(a, b) = a OP b.
func DefaultOperators() Operators {
	return Operators{
		'+': OpAdd,
		'-': OpSub,
		'*': OpMul,
		'/': OpDiv,
	}
}

// DefaultPrefixOperators returns {+, -, *, /} computing f(a, b) = b OP a.
// Prefix evaluation reverses the expression, which flips the
// encounter order of the operands.
func DefaultPrefixOperators() Operators {
	return SwapOperands(DefaultOperators())
}

// SwapOperands returns a copy of ops with every operator swapped.
func SwapOperands(ops Operators) Operators {
	if ops == nil {
		return nil
	}
	return lo.MapValues(ops, func(op Operator, _ rune) Operator {
		return Swap(op)
	})
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func validateOperators(ops Operators) error {
	if ops == nil {
		return infra.WrapErrorStackWithMessage(ErrInvalidArgument, "operators must be a non-nil map")
	}
	for sym, op := range ops {
		if sym == openParen || sym == closeParen || isDigit(sym) {
			return infra.WrapErrorStackWithMessage(ErrInvalidArgument, "symbol "+string(sym)+" can not be an operator")
		}
		if !isValidOperator(op) {
			return infra.WrapErrorStackWithMessage(ErrInvalidArgument, "operator "+string(sym)+" has no function")
		}
	}
	return nil
}

// isValidOperator rejects typed nil functions and unknown binary operators
// as well as the untyped nil.
func isValidOperator(op Operator) bool {
	switch o := op.(type) {
	case nil:
		return false
	case OperatorFunc:
		return o != nil
	case BinaryOp:
		return o < _opMax
	case swappedOp:
		return isValidOperator(o.op)
	default:
	}
	return true
}

func operatorsOrDefault(defaults func() Operators, operators ...Operators) (Operators, error) {
	if len(operators) == 0 {
		return defaults(), nil
	}
	if err := validateOperators(operators[0]); err != nil {
		return nil, err
	}
	return operators[0], nil
}
