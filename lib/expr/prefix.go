package expr

import (
	"strconv"

	"github.com/benz9527/xlinear/lib/infra"
	"github.com/benz9527/xlinear/lib/stack"
)

func itoa(i int) string {
	return strconv.Itoa(i)
}

type prefixBuilder struct {
	operands  stack.Stack[string]
	operators stack.Stack[rune]
}

// reduceOne pops the operands b then a and an operator op, and pushes
// the prefix form op+a+b.
func (pb *prefixBuilder) reduceOne() error {
	if pb.operands.Len() < 2 || pb.operators.Len() < 1 {
		return infra.WrapErrorStackWithMessage(ErrInvalidExpression, "not enough operands or operators to reduce")
	}
	op, _ := pb.operators.Pop()
	if op == openParen {
		return infra.WrapErrorStackWithMessage(ErrInvalidExpression, "unmatched "+string(openParen))
	}
	b, _ := pb.operands.Pop()
	a, _ := pb.operands.Pop()
	pb.operands.Push(string(op) + a + b)
	return nil
}

// ToPrefix converts an infix expression into a prefix expression. O(n)
//
// Sub-expressions are built as strings on an operand stack, so every
// operand and operator must be a single symbol. Unlike ToPostfix, the
// infix is checked: it must reduce to exactly one operand.
func ToPrefix(infix string, precedence ...Precedence) (string, error) {
	declared, err := precedenceOrDefault(precedence...)
	if err != nil {
		return "", err
	}
	ranks := withGroupSentinel(declared)

	pb := &prefixBuilder{
		operands:  stack.NewLinkedStack[string](),
		operators: stack.NewLinkedStack[rune](),
	}
	for _, symbol := range infix {
		switch {
		case isOperator(declared, symbol):
			for pb.operators.Len() != 0 {
				top, _ := pb.operators.Peek()
				if ranks[top] < ranks[symbol] {
					break
				}
				if err = pb.reduceOne(); err != nil {
					return "", err
				}
			}
			pb.operators.Push(symbol)
		case symbol == openParen:
			pb.operators.Push(symbol)
		case symbol == closeParen:
			for {
				top, err := pb.operators.Peek()
				if err != nil {
					return "", infra.WrapErrorStackWithMessage(err, "unmatched "+string(closeParen))
				}
				if top == openParen {
					break
				}
				if err = pb.reduceOne(); err != nil {
					return "", err
				}
			}
			_, _ = pb.operators.Pop()
		default:
			pb.operands.Push(string(symbol))
		}
	}
	for pb.operators.Len() != 0 {
		if err = pb.reduceOne(); err != nil {
			return "", err
		}
	}
	if pb.operands.Len() != 1 {
		return "", infra.WrapErrorStackWithMessage(ErrInvalidExpression,
			"expected exactly one operand, got "+itoa(int(pb.operands.Len())))
	}
	return pb.operands.Pop()
}

// EvalPrefix evaluates a prefix expression of one-digit integers. O(n)
//
// The prefix is reversed symbol by symbol and evaluated as a postfix, so
// the operators receive their operands swapped. The defaults are
// DefaultPrefixOperators, custom operators have to be swapped by the
// caller, see SwapOperands.
func EvalPrefix(prefix string, operators ...Operators) (float64, error) {
	ops, err := operatorsOrDefault(DefaultPrefixOperators, operators...)
	if err != nil {
		return 0, err
	}
	reversed := stack.Reverse([]rune(prefix))
	return evalPostfix(string(reversed), ops)
}
