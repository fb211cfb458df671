package expr

import (
	"math"

	"github.com/samber/lo"

	"github.com/benz9527/xlinear/lib/infra"
)

const (
	openParen  = '('
	closeParen = ')'
	// The sentinel rank of '(' is below every real operator, so a pop
	// loop never crosses a group boundary.
	groupSentinel = math.MinInt
)

// Precedence maps an operator symbol to its rank. A higher rank binds tighter.
type Precedence map[rune]int

// DefaultPrecedence returns {+:1, -:1, *:2, /:2}.
func DefaultPrecedence() Precedence {
	return Precedence{
		'+': 1,
		'-': 1,
		'*': 2,
		'/': 2,
	}
}

func validatePrecedence(p Precedence) error {
	if p == nil {
		return infra.WrapErrorStackWithMessage(ErrInvalidArgument, "precedence must be a non-nil map")
	}
	for op, rank := range p {
		if op == openParen || op == closeParen {
			return infra.WrapErrorStackWithMessage(ErrInvalidArgument, "grouping symbol "+string(op)+" can not be an operator")
		}
		if rank <= groupSentinel {
			return infra.WrapErrorStackWithMessage(ErrInvalidArgument, "rank of "+string(op)+" must be above the group sentinel")
		}
	}
	return nil
}

// precedenceOrDefault picks the optional table.
func precedenceOrDefault(precedence ...Precedence) (Precedence, error) {
	if len(precedence) == 0 {
		return DefaultPrecedence(), nil
	}
	if err := validatePrecedence(precedence[0]); err != nil {
		return nil, err
	}
	return precedence[0], nil
}

// withGroupSentinel copies p and extends the copy with the '(' sentinel.
// The caller's table is never mutated.
func withGroupSentinel(p Precedence) Precedence {
	return lo.Assign(map[rune]int(p), map[rune]int{openParen: groupSentinel})
}
