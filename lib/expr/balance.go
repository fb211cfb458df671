package expr

import (
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/benz9527/xlinear/lib/infra"
	"github.com/benz9527/xlinear/lib/stack"
)

// DefaultBracketPairs are the supported opening and closing pairs.
const DefaultBracketPairs = "()[]{}"

type bracketPairs struct {
	opening          map[rune]struct{}
	closing          map[rune]struct{}
	openingToClosing map[rune]rune
}

func parseBracketPairs(pairs string) (*bracketPairs, error) {
	symbols := []rune(pairs)
	if len(symbols) == 0 || len(symbols)%2 != 0 {
		return nil, infra.WrapErrorStackWithMessage(ErrInvalidArgument, "bracket pairs must be an even number of symbols: "+pairs)
	}
	bp := &bracketPairs{
		opening:          make(map[rune]struct{}, len(symbols)/2),
		closing:          make(map[rune]struct{}, len(symbols)/2),
		openingToClosing: make(map[rune]rune, len(symbols)/2),
	}
	for _, pair := range lo.Chunk(symbols, 2) {
		bp.opening[pair[0]] = struct{}{}
		bp.closing[pair[1]] = struct{}{}
		bp.openingToClosing[pair[0]] = pair[1]
	}
	return bp, nil
}

// CheckBalance returns the symbol index where the expression stops being
// balanced, or -1 if every bracket is matched. O(n)
//
// An unmatched or mismatched closing bracket reports its own index.
// Unclosed opening brackets at the end report the index of the last
// symbol, not the position of the opener.
// Symbols are counted as runes. Only a malformed pairs argument fails.
func CheckBalance(expression string, pairs ...string) (int, error) {
	supported := DefaultBracketPairs
	if len(pairs) > 0 {
		supported = pairs[0]
	}
	bp, err := parseBracketPairs(supported)
	if err != nil {
		return -1, err
	}

	openings := stack.NewArrayStack[rune]()
	index := 0
	for _, symbol := range expression {
		if _, ok := bp.opening[symbol]; ok {
			openings.Push(symbol)
		} else if _, ok := bp.closing[symbol]; ok {
			lastOpening, err := openings.Pop()
			if err != nil {
				return index, nil
			}
			if bp.openingToClosing[lastOpening] != symbol {
				return index, nil
			}
		}
		index++
	}
	if openings.Len() != 0 {
		return utf8.RuneCountInString(expression) - 1, nil
	}
	return -1, nil
}
