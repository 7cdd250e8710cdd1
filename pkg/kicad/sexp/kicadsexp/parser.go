package kicadsexp

import (
	"fmt"
	"io"
)

// Parser parses S-expressions from a lexer
type Parser struct {
	lexer   *Lexer
	current Token
}

// NewParser creates a new parser from an io.Reader
func NewParser(r io.Reader) *Parser {
	return &Parser{
		lexer: NewLexer(r),
	}
}

// ParseAll parses all top-level S-expressions from the input
func (p *Parser) ParseAll() ([]Sexp, error) {
	var result []Sexp

	if err := p.advance(); err != nil {
		return nil, err
	}

	for p.current.Type != TokenEOF {
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		result = append(result, expr)

		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func (p *Parser) advance() error {
	tok, err := p.lexer.NextToken()
	if err != nil {
		return err
	}
	p.current = tok
	return nil
}

func (p *Parser) errorf(format string, args ...any) error {
	return &SyntaxError{Line: p.current.Line, Col: p.current.Col, Msg: fmt.Sprintf(format, args...)}
}

// parseExpr parses a single S-expression starting at the current token
func (p *Parser) parseExpr() (Sexp, error) {
	switch p.current.Type {
	case TokenLeftParen:
		return p.parseList()
	case TokenSymbol:
		return Symbol(p.current.Value), nil
	case TokenString:
		return String(p.current.Value), nil
	case TokenRightParen:
		return nil, p.errorf("unexpected ')'")
	case TokenEOF:
		return nil, p.errorf("unexpected EOF")
	default:
		return nil, p.errorf("unexpected token %v", p.current.Type)
	}
}

// parseList parses a list: ( ... )
func (p *Parser) parseList() (Sexp, error) {
	var elements []Sexp

	for {
		if err := p.advance(); err != nil {
			return nil, err
		}

		switch p.current.Type {
		case TokenRightParen:
			return &List{elements: elements}, nil
		case TokenEOF:
			return nil, p.errorf("unexpected EOF in list")
		}

		elem, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		elements = append(elements, elem)
	}
}
