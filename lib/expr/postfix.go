package expr

import (
	"strings"

	"github.com/benz9527/xlinear/lib/infra"
	"github.com/benz9527/xlinear/lib/stack"
)

// ToPostfix converts an infix expression into a postfix expression by the
// shunting-yard algorithm. O(n)
//
// Every symbol is one operand, one operator or one parenthesis. Operators
// of equal precedence are left associative, "a+b+c" becomes "ab+c+".
// The infix is not validated, a malformed infix yields a malformed postfix,
// except that an unmatched ')' fails with stack.ErrEmptyStack.
func ToPostfix(infix string, precedence ...Precedence) (string, error) {
	declared, err := precedenceOrDefault(precedence...)
	if err != nil {
		return "", err
	}
	ranks := withGroupSentinel(declared)

	operators := stack.NewLinkedStack[rune]()
	postfix := strings.Builder{}
	postfix.Grow(len(infix))
	for _, symbol := range infix {
		switch {
		case symbol == openParen:
			operators.Push(symbol)
		case symbol == closeParen:
			for {
				op, err := operators.Pop()
				if err != nil {
					return "", infra.WrapErrorStackWithMessage(err, "unmatched "+string(closeParen))
				}
				if op == openParen {
					break
				}
				postfix.WriteRune(op)
			}
		case isOperator(declared, symbol):
			for operators.Len() != 0 {
				top, _ := operators.Peek()
				if ranks[top] < ranks[symbol] {
					break
				}
				_, _ = operators.Pop()
				postfix.WriteRune(top)
			}
			operators.Push(symbol)
		default:
			postfix.WriteRune(symbol)
		}
	}
	for operators.Len() != 0 {
		op, _ := operators.Pop()
		postfix.WriteRune(op)
	}
	return postfix.String(), nil
}

func isOperator(precedence Precedence, symbol rune) bool {
	_, ok := precedence[symbol]
	return ok
}

func validateSymbols(expression string, operators Operators) error {
	for i, symbol := range []rune(expression) {
		if isDigit(symbol) || symbol == openParen || symbol == closeParen {
			continue
		}
		if _, ok := operators[symbol]; ok {
			continue
		}
		return infra.WrapErrorStackWithMessage(ErrInvalidExpression,
			"unexpected symbol "+string(symbol)+" at "+itoa(i))
	}
	return nil
}

// EvalPostfix evaluates a postfix expression of one-digit integers. O(n)
//
// Only digits, parentheses and the symbols of operators may appear.
// Parentheses carry no meaning in postfix and are skipped.
// For an operator the right operand b is popped first, then the left
// operand a, and op(a, b) is pushed back.
func EvalPostfix(postfix string, operators ...Operators) (float64, error) {
	ops, err := operatorsOrDefault(DefaultOperators, operators...)
	if err != nil {
		return 0, err
	}
	return evalPostfix(postfix, ops)
}

func evalPostfix(postfix string, ops Operators) (float64, error) {
	if err := validateSymbols(postfix, ops); err != nil {
		return 0, err
	}

	operands := stack.NewArrayStack[float64](len(postfix))
	for _, symbol := range postfix {
		if op, ok := ops[symbol]; ok {
			if operands.Len() < 2 {
				return 0, infra.WrapErrorStackWithMessage(ErrInvalidExpression,
					"operator "+string(symbol)+" requires two operands")
			}
			b, _ := operands.Pop()
			a, _ := operands.Pop()
			operands.Push(op.Apply(a, b))
		} else if isDigit(symbol) {
			operands.Push(float64(symbol - '0'))
		}
	}
	if operands.Len() != 1 {
		return 0, infra.WrapErrorStackWithMessage(ErrInvalidExpression,
			"expected exactly one result, got "+itoa(int(operands.Len())))
	}
	return operands.Pop()
}
