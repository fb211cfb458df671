package calc

import (
	"strings"

	"github.com/benz9527/xlinear/lib/expr"
	"github.com/benz9527/xlinear/lib/infra"
)

type Notation uint8

const (
	Infix Notation = iota
	Postfix
	Prefix
	_notationMax
)

func (n Notation) String() string {
	switch n {
	case Infix:
		return "infix"
	case Postfix:
		return "postfix"
	case Prefix:
		return "prefix"
	default:
	}
	return "unknown"
}

func ParseNotation(notation string) (Notation, error) {
	switch strings.ToLower(strings.TrimSpace(notation)) {
	case "", "infix":
		return Infix, nil
	case "postfix":
		return Postfix, nil
	case "prefix":
		return Prefix, nil
	default:
	}
	return _notationMax, infra.WrapErrorStackWithMessage(expr.ErrInvalidArgument, "unknown notation "+notation)
}
