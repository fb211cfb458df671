package expr

import "errors"

var (
	// ErrInvalidArgument reports a malformed configuration table:
	// precedence, operators or bracket pairs. Fix the call site.
	ErrInvalidArgument = errors.New("[expr] invalid argument")
	// ErrInvalidExpression reports an expression which can not be
	// resolved to a single result. Fix the input data.
	ErrInvalidExpression = errors.New("[expr] invalid expression")
)
