package parser

import (
	"fmt"
	"strconv"
	"unicode"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokPlus
	tokMinus
	tokTimes
	tokMod
	tokPow
	tokBang
	tokPipe
	tokLParen
	tokRParen
	tokEquals
)

type token struct {
	kind tokenKind
	num  int64
	pos  int
}

// lex splits an equation string into tokens. The alphabet is the
// solver's own output grammar: digits, + - × % ^ ! | ( ) =, with ASCII
// * and − accepted as aliases for × and -.
func lex(input string) ([]token, error) {
	var toks []token
	runes := []rune(input)
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case unicode.IsDigit(r):
			start := i
			for i < len(runes) && unicode.IsDigit(runes[i]) {
				i++
			}
			n, err := strconv.ParseInt(string(runes[start:i]), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("number too large at position %d", start)
			}
			toks = append(toks, token{kind: tokNumber, num: n, pos: start})
		default:
			kind, ok := symbolKind(r)
			if !ok {
				return nil, fmt.Errorf("unexpected character %q at position %d", r, i)
			}
			toks = append(toks, token{kind: kind, pos: i})
			i++
		}
	}
	toks = append(toks, token{kind: tokEOF, pos: len(runes)})
	return toks, nil
}

func symbolKind(r rune) (tokenKind, bool) {
	switch r {
	case '+':
		return tokPlus, true
	case '-', '−':
		return tokMinus, true
	case '×', '*':
		return tokTimes, true
	case '%':
		return tokMod, true
	case '^':
		return tokPow, true
	case '!':
		return tokBang, true
	case '|':
		return tokPipe, true
	case '(':
		return tokLParen, true
	case ')':
		return tokRParen, true
	case '=':
		return tokEquals, true
	}
	return tokEOF, false
}
